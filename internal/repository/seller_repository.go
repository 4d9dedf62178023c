package repository

import (
	"context"

	"gorm.io/gorm"

	"marketplace/internal/model"
)

// SellerRepository defines seller persistence operations.
type SellerRepository interface {
	Create(ctx context.Context, seller *model.Seller) error
	Update(ctx context.Context, seller *model.Seller) error
	FindByID(ctx context.Context, id uint) (*model.Seller, error)
	FindByName(ctx context.Context, name string) (*model.Seller, error)
	List(ctx context.Context, offset, limit int) ([]model.Seller, error)
	Delete(ctx context.Context, id uint) error
}

type sellerRepository struct {
	db *gorm.DB
}

// NewSellerRepository builds a GORM-backed seller repository.
func NewSellerRepository(db *gorm.DB) SellerRepository {
	return &sellerRepository{db: db}
}

func (r *sellerRepository) Create(ctx context.Context, seller *model.Seller) error {
	return r.db.WithContext(ctx).Create(seller).Error
}

func (r *sellerRepository) Update(ctx context.Context, seller *model.Seller) error {
	return r.db.WithContext(ctx).Save(seller).Error
}

func (r *sellerRepository) FindByID(ctx context.Context, id uint) (*model.Seller, error) {
	var seller model.Seller
	if err := r.db.WithContext(ctx).First(&seller, id).Error; err != nil {
		return nil, err
	}
	return &seller, nil
}

func (r *sellerRepository) FindByName(ctx context.Context, name string) (*model.Seller, error) {
	var seller model.Seller
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&seller).Error; err != nil {
		return nil, err
	}
	return &seller, nil
}

func (r *sellerRepository) List(ctx context.Context, offset, limit int) ([]model.Seller, error) {
	var sellers []model.Seller
	if err := r.db.WithContext(ctx).Offset(offset).Limit(limit).Order("id").Find(&sellers).Error; err != nil {
		return nil, err
	}
	return sellers, nil
}

func (r *sellerRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Seller{}, id).Error
}
