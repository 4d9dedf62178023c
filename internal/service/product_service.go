package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"marketplace/internal/cache"
	apperrors "marketplace/internal/errors"
	"marketplace/internal/model"
	"marketplace/internal/repository"
)

const productCacheTTL = 5 * time.Minute

// ProductService handles catalog operations. Reads are public and served
// through the cache; writes are admin-only at the handler layer.
type ProductService interface {
	Create(ctx context.Context, name string, price decimal.Decimal, sellerID uint) (*model.Product, error)
	Update(ctx context.Context, id uint, name string, price decimal.Decimal, sellerID uint) (*model.Product, error)
	Get(ctx context.Context, id uint) (*model.Product, error)
	List(ctx context.Context, offset, limit int) ([]model.Product, error)
	Delete(ctx context.Context, id uint) error
}

type productService struct {
	products repository.ProductRepository
	sellers  repository.SellerRepository
	cache    *cache.Client
}

// NewProductService creates a new product service.
func NewProductService(products repository.ProductRepository, sellers repository.SellerRepository, cache *cache.Client) ProductService {
	return &productService{
		products: products,
		sellers:  sellers,
		cache:    cache,
	}
}

func (s *productService) cacheKey(id uint) string {
	return fmt.Sprintf("product:%d", id)
}

func (s *productService) validate(ctx context.Context, price decimal.Decimal, sellerID uint) error {
	if price.Sign() <= 0 {
		return apperrors.ErrInvalidPrice
	}
	if _, err := s.sellers.FindByID(ctx, sellerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrSellerNotFound
		}
		return err
	}
	return nil
}

func (s *productService) Create(ctx context.Context, name string, price decimal.Decimal, sellerID uint) (*model.Product, error) {
	if err := s.validate(ctx, price, sellerID); err != nil {
		return nil, err
	}

	product := &model.Product{
		Name:     name,
		Price:    price,
		SellerID: sellerID,
	}
	if err := s.products.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return product, nil
}

func (s *productService) Update(ctx context.Context, id uint, name string, price decimal.Decimal, sellerID uint) (*model.Product, error) {
	product, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.validate(ctx, price, sellerID); err != nil {
		return nil, err
	}

	product.Name = name
	product.Price = price
	product.SellerID = sellerID
	if err := s.products.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}

	s.cache.Delete(ctx, s.cacheKey(id))
	return product, nil
}

// Get retrieves a product by id, trying the cache first.
func (s *productService) Get(ctx context.Context, id uint) (*model.Product, error) {
	var cached model.Product
	if s.cache.GetJSON(ctx, s.cacheKey(id), &cached) {
		return &cached, nil
	}

	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProductNotFound
		}
		return nil, err
	}

	s.cache.SetJSON(ctx, s.cacheKey(id), product, productCacheTTL)
	return product, nil
}

func (s *productService) List(ctx context.Context, offset, limit int) ([]model.Product, error) {
	return s.products.List(ctx, offset, limit)
}

func (s *productService) Delete(ctx context.Context, id uint) error {
	if _, err := s.products.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrProductNotFound
		}
		return err
	}
	if err := s.products.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}
