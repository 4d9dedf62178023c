package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	apperrors "marketplace/internal/errors"
	"marketplace/internal/model"
)

func TestOrderService_Create_InvalidCount(t *testing.T) {
	svc := NewOrderService(new(MockOrderRepository), new(MockProductRepository), new(MockUserRepository))
	ctx := context.Background()

	_, err := svc.Create(ctx, 1, 1, 0)
	assert.ErrorIs(t, err, apperrors.ErrInvalidOrderCount)

	_, err = svc.Create(ctx, 1, 1, -3)
	assert.ErrorIs(t, err, apperrors.ErrInvalidOrderCount)
}

func TestOrderService_Create_UnknownProduct(t *testing.T) {
	products := new(MockProductRepository)
	products.On("FindByID", mock.Anything, uint(77)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewOrderService(new(MockOrderRepository), products, new(MockUserRepository))

	_, err := svc.Create(context.Background(), 1, 77, 2)
	assert.ErrorIs(t, err, apperrors.ErrProductNotFound)
}

func TestOrderService_Create_Success(t *testing.T) {
	products := new(MockProductRepository)
	products.On("FindByID", mock.Anything, uint(7)).Return(&model.Product{ID: 7}, nil)

	orders := new(MockOrderRepository)
	orders.On("Create", mock.Anything, mock.AnythingOfType("*model.Order")).Return(nil)

	svc := NewOrderService(orders, products, new(MockUserRepository))

	order, err := svc.Create(context.Background(), 3, 7, 2)
	require.NoError(t, err)
	assert.Equal(t, uint(3), order.UserID)
	assert.Equal(t, uint(7), order.ProductID)
	assert.Equal(t, 2, order.Count)
}

func TestOrderService_Get_OwnerOnly(t *testing.T) {
	orders := new(MockOrderRepository)
	orders.On("FindByID", mock.Anything, uint(10)).Return(&model.Order{ID: 10, UserID: 1}, nil)

	users := new(MockUserRepository)
	users.On("FindByID", mock.Anything, uint(2)).Return(&model.User{ID: 2, IsAdmin: false}, nil)

	svc := NewOrderService(orders, new(MockProductRepository), users)

	// owner reads fine
	order, err := svc.Get(context.Background(), 1, 10)
	require.NoError(t, err)
	assert.Equal(t, uint(10), order.ID)

	// another regular user is rejected
	_, err = svc.Get(context.Background(), 2, 10)
	assert.ErrorIs(t, err, apperrors.ErrOrderAccessDenied)
}

func TestOrderService_Get_AdminMayAccessAny(t *testing.T) {
	orders := new(MockOrderRepository)
	orders.On("FindByID", mock.Anything, uint(10)).Return(&model.Order{ID: 10, UserID: 1}, nil)

	users := new(MockUserRepository)
	users.On("FindByID", mock.Anything, uint(9)).Return(&model.User{ID: 9, IsAdmin: true}, nil)

	svc := NewOrderService(orders, new(MockProductRepository), users)

	order, err := svc.Get(context.Background(), 9, 10)
	require.NoError(t, err)
	assert.Equal(t, uint(10), order.ID)
}

func TestOrderService_List_AdminSeesAll(t *testing.T) {
	orders := new(MockOrderRepository)
	orders.On("List", mock.Anything, 0, 50).Return([]model.Order{{ID: 1}, {ID: 2}}, nil)
	orders.On("ListByUser", mock.Anything, uint(2), 0, 50).Return([]model.Order{{ID: 2, UserID: 2}}, nil)

	users := new(MockUserRepository)
	users.On("FindByID", mock.Anything, uint(9)).Return(&model.User{ID: 9, IsAdmin: true}, nil)
	users.On("FindByID", mock.Anything, uint(2)).Return(&model.User{ID: 2, IsAdmin: false}, nil)

	svc := NewOrderService(orders, new(MockProductRepository), users)
	ctx := context.Background()

	all, err := svc.List(ctx, 9, 0, 50)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	own, err := svc.List(ctx, 2, 0, 50)
	require.NoError(t, err)
	assert.Len(t, own, 1)
}

func TestOrderService_Delete_Scoped(t *testing.T) {
	orders := new(MockOrderRepository)
	orders.On("FindByID", mock.Anything, uint(10)).Return(&model.Order{ID: 10, UserID: 1}, nil)
	orders.On("Delete", mock.Anything, uint(10)).Return(nil)

	users := new(MockUserRepository)
	users.On("FindByID", mock.Anything, uint(2)).Return(&model.User{ID: 2, IsAdmin: false}, nil)

	svc := NewOrderService(orders, new(MockProductRepository), users)
	ctx := context.Background()

	err := svc.Delete(ctx, 2, 10)
	assert.ErrorIs(t, err, apperrors.ErrOrderAccessDenied)

	err = svc.Delete(ctx, 1, 10)
	require.NoError(t, err)
	orders.AssertCalled(t, "Delete", mock.Anything, uint(10))
}

func TestOrderService_Delete_NotFound(t *testing.T) {
	orders := new(MockOrderRepository)
	orders.On("FindByID", mock.Anything, uint(404)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewOrderService(orders, new(MockProductRepository), new(MockUserRepository))

	err := svc.Delete(context.Background(), 1, 404)
	assert.ErrorIs(t, err, apperrors.ErrOrderNotFound)
}
