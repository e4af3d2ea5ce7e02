package shop

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/wcoetsee/pricescout/internal/domain"
	"github.com/wcoetsee/pricescout/internal/pkg/logger"
)

// MockShopRepository is a mock implementation of domain.ShopRepository
type MockShopRepository struct {
	mock.Mock
}

func (m *MockShopRepository) Create(ctx context.Context, shop *domain.Shop) error {
	args := m.Called(ctx, shop)
	return args.Error(0)
}

func (m *MockShopRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Shop, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shop), args.Error(1)
}

func (m *MockShopRepository) FindByName(ctx context.Context, name string) (*domain.Shop, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shop), args.Error(1)
}

func (m *MockShopRepository) SearchByName(ctx context.Context, name string) ([]*domain.Shop, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Shop), args.Error(1)
}

func (m *MockShopRepository) Update(ctx context.Context, shop *domain.Shop) error {
	args := m.Called(ctx, shop)
	return args.Error(0)
}

func (m *MockShopRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func validShop() *domain.Shop {
	return &domain.Shop{
		Name: "Checkers Hyper",
		Location: &domain.Location{
			Address:   "123 Main Road",
			Longitude: 28.0473,
			Latitude:  -26.2041,
		},
	}
}

func TestService_Add_Success(t *testing.T) {
	mockRepo := new(MockShopRepository)
	log := logger.New("test")
	service := NewService(mockRepo, log)

	shop := validShop()

	mockRepo.On("FindByName", mock.Anything, shop.Name).Return(nil, domain.ErrNotFound)
	mockRepo.On("Create", mock.Anything, shop).Return(nil)

	created, err := service.Add(context.Background(), shop)

	assert.NoError(t, err)
	assert.Equal(t, shop, created)
	mockRepo.AssertExpectations(t)
}

func TestService_Add_DuplicateName(t *testing.T) {
	mockRepo := new(MockShopRepository)
	log := logger.New("test")
	service := NewService(mockRepo, log)

	shop := validShop()

	mockRepo.On("FindByName", mock.Anything, shop.Name).Return(validShop(), nil)

	created, err := service.Add(context.Background(), shop)

	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Nil(t, created)
	mockRepo.AssertNotCalled(t, "Create")
}

func TestService_Add_RequiresName(t *testing.T) {
	mockRepo := new(MockShopRepository)
	log := logger.New("test")
	service := NewService(mockRepo, log)

	shop := validShop()
	shop.Name = "   "

	created, err := service.Add(context.Background(), shop)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Nil(t, created)
	mockRepo.AssertNotCalled(t, "Create")
}

func TestService_Add_RequiresLocation(t *testing.T) {
	mockRepo := new(MockShopRepository)
	log := logger.New("test")
	service := NewService(mockRepo, log)

	shop := validShop()
	shop.Location = nil
	shop.LocationID = uuid.Nil

	created, err := service.Add(context.Background(), shop)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Nil(t, created)
	mockRepo.AssertNotCalled(t, "Create")
}

func TestService_Get_MissYieldsNil(t *testing.T) {
	mockRepo := new(MockShopRepository)
	log := logger.New("test")
	service := NewService(mockRepo, log)

	id := uuid.New()
	mockRepo.On("GetByID", mock.Anything, id).Return(nil, domain.ErrNotFound)

	shop, err := service.Get(context.Background(), id)

	assert.NoError(t, err)
	assert.Nil(t, shop)
	mockRepo.AssertExpectations(t)
}

func TestService_SearchByName(t *testing.T) {
	mockRepo := new(MockShopRepository)
	log := logger.New("test")
	service := NewService(mockRepo, log)

	expected := []*domain.Shop{validShop()}
	mockRepo.On("SearchByName", mock.Anything, "Check").Return(expected, nil)

	shops, err := service.SearchByName(context.Background(), "Check")

	assert.NoError(t, err)
	assert.Equal(t, expected, shops)
	mockRepo.AssertExpectations(t)
}

func TestService_Update_Success(t *testing.T) {
	mockRepo := new(MockShopRepository)
	log := logger.New("test")
	service := NewService(mockRepo, log)

	id := uuid.New()
	createdBy := uuid.New()
	locationID := uuid.New()

	existing := validShop()
	existing.ID = id
	existing.CreatedBy = createdBy
	existing.LocationID = locationID

	incoming := &domain.Shop{Name: "Checkers Hyper Sandton", LocationID: locationID}
	incoming.ID = id

	mockRepo.On("GetByID", mock.Anything, id).Return(existing, nil)
	mockRepo.On("FindByName", mock.Anything, incoming.Name).Return(nil, domain.ErrNotFound)
	mockRepo.On("Update", mock.Anything, existing).Return(nil)

	updated, err := service.Update(context.Background(), incoming)

	assert.NoError(t, err)
	assert.Equal(t, "Checkers Hyper Sandton", updated.Name)
	assert.Equal(t, createdBy, updated.CreatedBy, "audit fields must survive the merge")
	mockRepo.AssertExpectations(t)
}

func TestService_Update_SameNameSkipsConflictCheck(t *testing.T) {
	mockRepo := new(MockShopRepository)
	log := logger.New("test")
	service := NewService(mockRepo, log)

	id := uuid.New()
	existing := validShop()
	existing.ID = id
	existing.LocationID = uuid.New()

	incoming := &domain.Shop{Name: existing.Name, LocationID: existing.LocationID}
	incoming.ID = id

	mockRepo.On("GetByID", mock.Anything, id).Return(existing, nil)
	mockRepo.On("Update", mock.Anything, existing).Return(nil)

	_, err := service.Update(context.Background(), incoming)

	assert.NoError(t, err)
	mockRepo.AssertNotCalled(t, "FindByName")
}

func TestService_Update_RenameCollision(t *testing.T) {
	mockRepo := new(MockShopRepository)
	log := logger.New("test")
	service := NewService(mockRepo, log)

	id := uuid.New()
	existing := validShop()
	existing.ID = id

	incoming := &domain.Shop{Name: "Woolworths", LocationID: uuid.New()}
	incoming.ID = id

	mockRepo.On("GetByID", mock.Anything, id).Return(existing, nil)
	mockRepo.On("FindByName", mock.Anything, "Woolworths").Return(validShop(), nil)

	updated, err := service.Update(context.Background(), incoming)

	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Nil(t, updated)
	mockRepo.AssertNotCalled(t, "Update")
}

func TestService_Delete_Success(t *testing.T) {
	mockRepo := new(MockShopRepository)
	log := logger.New("test")
	service := NewService(mockRepo, log)

	id := uuid.New()
	existing := validShop()
	existing.ID = id

	mockRepo.On("GetByID", mock.Anything, id).Return(existing, nil)
	mockRepo.On("Delete", mock.Anything, id).Return(nil)

	err := service.Delete(context.Background(), id)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestService_Delete_NotFound(t *testing.T) {
	mockRepo := new(MockShopRepository)
	log := logger.New("test")
	service := NewService(mockRepo, log)

	id := uuid.New()
	mockRepo.On("GetByID", mock.Anything, id).Return(nil, domain.ErrNotFound)

	err := service.Delete(context.Background(), id)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	mockRepo.AssertNotCalled(t, "Delete")
}
