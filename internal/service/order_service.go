package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "marketplace/internal/errors"
	"marketplace/internal/model"
	"marketplace/internal/repository"
)

// OrderService handles order operations. Orders belong to exactly one user;
// only the owner may read or delete an order, except that an admin
// (checked against the live user record, not the token) may access any.
type OrderService interface {
	Create(ctx context.Context, userID, productID uint, count int) (*model.Order, error)
	Get(ctx context.Context, requesterID, orderID uint) (*model.Order, error)
	List(ctx context.Context, requesterID uint, offset, limit int) ([]model.Order, error)
	Delete(ctx context.Context, requesterID, orderID uint) error
}

type orderService struct {
	orders   repository.OrderRepository
	products repository.ProductRepository
	users    repository.UserRepository
}

// NewOrderService creates a new order service.
func NewOrderService(orders repository.OrderRepository, products repository.ProductRepository, users repository.UserRepository) OrderService {
	return &orderService{
		orders:   orders,
		products: products,
		users:    users,
	}
}

// Create places an order for the requesting user.
func (s *orderService) Create(ctx context.Context, userID, productID uint, count int) (*model.Order, error) {
	if count < 1 {
		return nil, apperrors.ErrInvalidOrderCount
	}

	if _, err := s.products.FindByID(ctx, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProductNotFound
		}
		return nil, err
	}

	order := &model.Order{
		UserID:    userID,
		ProductID: productID,
		Count:     count,
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	return order, nil
}

func (s *orderService) Get(ctx context.Context, requesterID, orderID uint) (*model.Order, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrderNotFound
		}
		return nil, err
	}

	if order.UserID != requesterID {
		admin, err := s.isAdmin(ctx, requesterID)
		if err != nil {
			return nil, err
		}
		if !admin {
			return nil, apperrors.ErrOrderAccessDenied
		}
	}
	return order, nil
}

// List returns the requester's own orders; an admin sees all orders.
func (s *orderService) List(ctx context.Context, requesterID uint, offset, limit int) ([]model.Order, error) {
	admin, err := s.isAdmin(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	if admin {
		return s.orders.List(ctx, offset, limit)
	}
	return s.orders.ListByUser(ctx, requesterID, offset, limit)
}

func (s *orderService) Delete(ctx context.Context, requesterID, orderID uint) error {
	if _, err := s.Get(ctx, requesterID, orderID); err != nil {
		return err
	}
	return s.orders.Delete(ctx, orderID)
}

// isAdmin consults the live user record. A missing record counts as
// non-admin rather than failing the whole request.
func (s *orderService) isAdmin(ctx context.Context, userID uint) (bool, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return user.IsAdmin, nil
}
