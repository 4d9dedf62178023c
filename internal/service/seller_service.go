package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "marketplace/internal/errors"
	"marketplace/internal/model"
	"marketplace/internal/repository"
)

var maxCommissionPercent = decimal.NewFromInt(100)

// SellerService handles seller management. Creation and deletion are
// admin-only; the handler layer enforces that through the guard.
type SellerService interface {
	Create(ctx context.Context, name string, commissionPercent decimal.Decimal) (*model.Seller, error)
	Get(ctx context.Context, id uint) (*model.Seller, error)
	List(ctx context.Context, offset, limit int) ([]model.Seller, error)
	Delete(ctx context.Context, id uint) error
}

type sellerService struct {
	sellers repository.SellerRepository
}

// NewSellerService creates a new seller service.
func NewSellerService(sellers repository.SellerRepository) SellerService {
	return &sellerService{sellers: sellers}
}

func (s *sellerService) Create(ctx context.Context, name string, commissionPercent decimal.Decimal) (*model.Seller, error) {
	if commissionPercent.IsNegative() || commissionPercent.GreaterThan(maxCommissionPercent) {
		return nil, apperrors.ErrInvalidCommission
	}

	seller := &model.Seller{
		Name:              name,
		CommissionPercent: commissionPercent,
	}
	if err := s.sellers.Create(ctx, seller); err != nil {
		return nil, fmt.Errorf("create seller: %w", err)
	}
	return seller, nil
}

func (s *sellerService) Get(ctx context.Context, id uint) (*model.Seller, error) {
	seller, err := s.sellers.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSellerNotFound
		}
		return nil, err
	}
	return seller, nil
}

func (s *sellerService) List(ctx context.Context, offset, limit int) ([]model.Seller, error) {
	return s.sellers.List(ctx, offset, limit)
}

func (s *sellerService) Delete(ctx context.Context, id uint) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.sellers.Delete(ctx, id)
}
