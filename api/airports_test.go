package api

import (
	"context"
	"net/http"
	"testing"

	"flightdesk/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockAirportUseCase struct {
	mock.Mock
}

func (m *MockAirportUseCase) List(ctx context.Context) ([]domain.IATACode, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.IATACode), args.Error(1)
}

func (m *MockAirportUseCase) GetByID(ctx context.Context, id string) (*domain.IATACode, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.IATACode), args.Error(1)
}

func (m *MockAirportUseCase) Create(ctx context.Context, code *domain.IATACode) (*domain.IATACode, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.IATACode), args.Error(1)
}

func (m *MockAirportUseCase) Update(ctx context.Context, id string, code *domain.IATACode) (*domain.IATACode, error) {
	args := m.Called(ctx, id, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.IATACode), args.Error(1)
}

func (m *MockAirportUseCase) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newAirportRouter(service *MockAirportUseCase) *gin.Engine {
	router := gin.New()
	NewAirportHandler(service).Register(router.Group("/api/iata-codes"))
	return router
}

func TestAirportHandler_List(t *testing.T) {
	service := &MockAirportUseCase{}
	router := newAirportRouter(service)

	codes := []domain.IATACode{{ID: "bdfd25cf-82b1-4d35-a91c-5a73d4a1c6ea", IataCode: "KUL", AirportName: "Kuala Lumpur International Airport", City: "Sepang", Country: "Malaysia"}}
	service.On("List", mock.Anything).Return(codes, nil).Once()

	w := performRequest(router, http.MethodGet, "/api/iata-codes", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	service.AssertExpectations(t)
}

func TestAirportHandler_Create_FlattenedResponse(t *testing.T) {
	service := &MockAirportUseCase{}
	router := newAirportRouter(service)

	created := &domain.IATACode{ID: "bdfd25cf-82b1-4d35-a91c-5a73d4a1c6ea", IataCode: "KUL", AirportName: "Kuala Lumpur International Airport", City: "Sepang", Country: "Malaysia"}
	service.On("Create", mock.Anything, mock.AnythingOfType("*domain.IATACode")).Return(created, nil).Once()

	w := performRequest(router, http.MethodPost, "/api/iata-codes", map[string]interface{}{
		"iataCode": "KUL", "airportName": "Kuala Lumpur International Airport", "city": "Sepang", "country": "Malaysia",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	// record fields sit at the top level next to the message
	assert.Equal(t, "IATA code created successfully", body["message"])
	assert.Equal(t, "bdfd25cf-82b1-4d35-a91c-5a73d4a1c6ea", body["_id"])
	assert.Equal(t, "KUL", body["iataCode"])
	assert.Equal(t, "Malaysia", body["country"])
	service.AssertExpectations(t)
}

func TestAirportHandler_Create_MissingFields(t *testing.T) {
	service := &MockAirportUseCase{}
	router := newAirportRouter(service)

	service.On("Create", mock.Anything, mock.Anything).Return(nil, domain.Invalid("All fields are required")).Once()

	w := performRequest(router, http.MethodPost, "/api/iata-codes", map[string]interface{}{"iataCode": "KUL"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "All fields are required", decodeBody(t, w)["message"])
}

func TestAirportHandler_Get_InvalidIDFormat(t *testing.T) {
	service := &MockAirportUseCase{}
	router := newAirportRouter(service)

	service.On("GetByID", mock.Anything, "not-a-uuid").Return(nil, domain.Invalid("Invalid ID format")).Once()

	w := performRequest(router, http.MethodGet, "/api/iata-codes/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid ID format", decodeBody(t, w)["message"])
}

func TestAirportHandler_Update_FlattenedResponse(t *testing.T) {
	service := &MockAirportUseCase{}
	router := newAirportRouter(service)

	updated := &domain.IATACode{ID: "bdfd25cf-82b1-4d35-a91c-5a73d4a1c6ea", IataCode: "PEN", AirportName: "Penang International Airport", City: "Penang", Country: "Malaysia"}
	service.On("Update", mock.Anything, "bdfd25cf-82b1-4d35-a91c-5a73d4a1c6ea", mock.AnythingOfType("*domain.IATACode")).Return(updated, nil).Once()

	w := performRequest(router, http.MethodPut, "/api/iata-codes/bdfd25cf-82b1-4d35-a91c-5a73d4a1c6ea", map[string]interface{}{
		"iataCode": "PEN", "airportName": "Penang International Airport", "city": "Penang", "country": "Malaysia",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "IATA code updated successfully", body["message"])
	assert.Equal(t, "PEN", body["iataCode"])
	service.AssertExpectations(t)
}

func TestAirportHandler_Delete(t *testing.T) {
	service := &MockAirportUseCase{}
	router := newAirportRouter(service)

	service.On("Delete", mock.Anything, "bdfd25cf-82b1-4d35-a91c-5a73d4a1c6ea").Return(nil).Once()

	w := performRequest(router, http.MethodDelete, "/api/iata-codes/bdfd25cf-82b1-4d35-a91c-5a73d4a1c6ea", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "IATA code deleted successfully", decodeBody(t, w)["message"])
}

func TestAirportHandler_Delete_NotFound(t *testing.T) {
	service := &MockAirportUseCase{}
	router := newAirportRouter(service)

	service.On("Delete", mock.Anything, "bdfd25cf-82b1-4d35-a91c-5a73d4a1c6ea").Return(domain.ErrNotFound).Once()

	w := performRequest(router, http.MethodDelete, "/api/iata-codes/bdfd25cf-82b1-4d35-a91c-5a73d4a1c6ea", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "IATA code not found", decodeBody(t, w)["message"])
}
