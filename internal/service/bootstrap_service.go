package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"marketplace/internal/auth"
	apperrors "marketplace/internal/errors"
	"marketplace/internal/model"
	"marketplace/internal/repository"
)

// AdminUsername is the reserved bootstrap admin account name.
const AdminUsername = "admin"

// CatalogProduct is one product entry in a catalog import payload.
type CatalogProduct struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// CatalogSeller is one seller entry, with its products, in a catalog
// import payload.
type CatalogSeller struct {
	Name              string           `json:"name"`
	CommissionPercent decimal.Decimal  `json:"commission_percent"`
	Products          []CatalogProduct `json:"products"`
}

// BootstrapService ensures the default admin account and seed reference
// data exist. All operations are idempotent create-if-absent.
type BootstrapService interface {
	EnsureDefaults(ctx context.Context) error
	ImportCatalog(ctx context.Context, sellers []CatalogSeller) (created, updated int, err error)
}

type bootstrapService struct {
	users         repository.UserRepository
	sellers       repository.SellerRepository
	products      repository.ProductRepository
	adminEmail    string
	adminPassword string
}

// NewBootstrapService creates a new bootstrap service.
func NewBootstrapService(
	users repository.UserRepository,
	sellers repository.SellerRepository,
	products repository.ProductRepository,
	adminEmail, adminPassword string,
) BootstrapService {
	return &bootstrapService{
		users:         users,
		sellers:       sellers,
		products:      products,
		adminEmail:    adminEmail,
		adminPassword: adminPassword,
	}
}

// defaultCatalog is the seed reference data ensured at process start.
var defaultCatalog = []CatalogSeller{
	{
		Name:              "Acme Goods",
		CommissionPercent: decimal.NewFromInt(10),
		Products: []CatalogProduct{
			{Name: "Notebook", Price: decimal.NewFromFloat(4.50)},
			{Name: "Desk Lamp", Price: decimal.NewFromFloat(23.90)},
		},
	},
	{
		Name:              "Northwind Traders",
		CommissionPercent: decimal.NewFromInt(15),
		Products: []CatalogProduct{
			{Name: "Coffee Beans 1kg", Price: decimal.NewFromFloat(17.25)},
		},
	},
}

// EnsureDefaults creates the bootstrap admin account if absent, promotes an
// existing admin-named account that lacks the admin flag, and seeds the
// default catalog.
func (s *bootstrapService) EnsureDefaults(ctx context.Context) error {
	err := s.users.WithTransaction(ctx, func(ctx context.Context, users repository.UserRepository) error {
		existing, err := users.FindByUsername(ctx, AdminUsername)
		if err == nil {
			if existing.IsAdmin {
				return nil
			}
			existing.IsAdmin = true
			return users.Update(ctx, existing)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		hashed, err := auth.HashPassword(s.adminPassword)
		if err != nil {
			return fmt.Errorf("hash admin password: %w", err)
		}
		return users.Create(ctx, &model.User{
			Username:     AdminUsername,
			Email:        s.adminEmail,
			PasswordHash: hashed,
			IsAdmin:      true,
		})
	})
	if err != nil {
		return fmt.Errorf("ensure admin account: %w", err)
	}

	if _, _, err := s.ImportCatalog(ctx, defaultCatalog); err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}
	return nil
}

// ImportCatalog creates or updates sellers and their products, keyed by
// name. Validation matches the API layer: commission in [0,100], price > 0.
func (s *bootstrapService) ImportCatalog(ctx context.Context, sellers []CatalogSeller) (created, updated int, err error) {
	for _, entry := range sellers {
		if entry.CommissionPercent.IsNegative() || entry.CommissionPercent.GreaterThan(maxCommissionPercent) {
			return created, updated, apperrors.ErrInvalidCommission
		}

		seller, err := s.sellers.FindByName(ctx, entry.Name)
		switch {
		case err == nil:
			if !seller.CommissionPercent.Equal(entry.CommissionPercent) {
				seller.CommissionPercent = entry.CommissionPercent
				if err := s.sellers.Update(ctx, seller); err != nil {
					return created, updated, fmt.Errorf("update seller %q: %w", entry.Name, err)
				}
				updated++
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			seller = &model.Seller{
				Name:              entry.Name,
				CommissionPercent: entry.CommissionPercent,
			}
			if err := s.sellers.Create(ctx, seller); err != nil {
				return created, updated, fmt.Errorf("create seller %q: %w", entry.Name, err)
			}
			created++
		default:
			return created, updated, fmt.Errorf("find seller %q: %w", entry.Name, err)
		}

		for _, item := range entry.Products {
			if item.Price.Sign() <= 0 {
				return created, updated, apperrors.ErrInvalidPrice
			}

			product, err := s.products.FindByName(ctx, item.Name)
			switch {
			case err == nil:
				if !product.Price.Equal(item.Price) || product.SellerID != seller.ID {
					product.Price = item.Price
					product.SellerID = seller.ID
					if err := s.products.Update(ctx, product); err != nil {
						return created, updated, fmt.Errorf("update product %q: %w", item.Name, err)
					}
					updated++
				}
			case errors.Is(err, gorm.ErrRecordNotFound):
				product = &model.Product{
					Name:     item.Name,
					Price:    item.Price,
					SellerID: seller.ID,
				}
				if err := s.products.Create(ctx, product); err != nil {
					return created, updated, fmt.Errorf("create product %q: %w", item.Name, err)
				}
				created++
			default:
				return created, updated, fmt.Errorf("find product %q: %w", item.Name, err)
			}
		}
	}
	return created, updated, nil
}
