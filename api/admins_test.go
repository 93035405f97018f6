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

type MockAdminUseCase struct {
	mock.Mock
}

func (m *MockAdminUseCase) List(ctx context.Context) ([]domain.Admin, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Admin), args.Error(1)
}

func (m *MockAdminUseCase) Create(ctx context.Context, email, password string) (*domain.Admin, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Admin), args.Error(1)
}

func (m *MockAdminUseCase) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAdminUseCase) Login(ctx context.Context, email, secret string) (*domain.Admin, string, error) {
	args := m.Called(ctx, email, secret)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*domain.Admin), args.String(1), args.Error(2)
}

func newAdminRouter(service *MockAdminUseCase) *gin.Engine {
	router := gin.New()
	NewAdminHandler(service).Register(router.Group("/api"))
	return router
}

func TestAdminHandler_Create(t *testing.T) {
	service := &MockAdminUseCase{}
	router := newAdminRouter(service)

	created := &domain.Admin{ID: "admin1700000000000000000", Email: "ops@example.com"}
	service.On("Create", mock.Anything, "ops@example.com", "secret").Return(created, nil).Once()

	w := performRequest(router, http.MethodPost, "/api/admins", map[string]interface{}{
		"email": "ops@example.com", "password": "secret",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Admin created successfully", body["message"])
	assert.Equal(t, "admin1700000000000000000", body["adminId"])
	service.AssertExpectations(t)
}

func TestAdminHandler_Create_Duplicate(t *testing.T) {
	service := &MockAdminUseCase{}
	router := newAdminRouter(service)

	service.On("Create", mock.Anything, "ops@example.com", "secret").Return(nil, domain.ErrDuplicate).Once()

	w := performRequest(router, http.MethodPost, "/api/admins", map[string]interface{}{
		"email": "ops@example.com", "password": "secret",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Admin already exists", decodeBody(t, w)["message"])
}

func TestAdminHandler_List_NoPasswordHash(t *testing.T) {
	service := &MockAdminUseCase{}
	router := newAdminRouter(service)

	sanitized := []domain.Admin{{ID: "admin1", Email: "ops@example.com"}}
	service.On("List", mock.Anything).Return(sanitized, nil).Once()

	w := performRequest(router, http.MethodGet, "/api/admins", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "passwordHash")
}

func TestAdminHandler_Delete(t *testing.T) {
	service := &MockAdminUseCase{}
	router := newAdminRouter(service)

	service.On("Delete", mock.Anything, "admin1").Return(nil).Once()

	w := performRequest(router, http.MethodDelete, "/api/admins/admin1", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Admin deleted successfully", body["message"])
	assert.Equal(t, "admin1", body["deletedId"])
}

func TestAdminHandler_Delete_NotFound(t *testing.T) {
	service := &MockAdminUseCase{}
	router := newAdminRouter(service)

	service.On("Delete", mock.Anything, "admin999").Return(domain.ErrNotFound).Once()

	w := performRequest(router, http.MethodDelete, "/api/admins/admin999", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Admin not found", decodeBody(t, w)["message"])
}

func TestAdminHandler_Login(t *testing.T) {
	service := &MockAdminUseCase{}
	router := newAdminRouter(service)

	sanitized := &domain.Admin{ID: "admin1", Email: "ops@example.com"}
	service.On("Login", mock.Anything, "ops@example.com", "secret").Return(sanitized, "signed.jwt.token", nil).Once()

	w := performRequest(router, http.MethodPost, "/api/admin/login", map[string]interface{}{
		"email": "ops@example.com", "passwordHash": "secret",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Admin login successful", body["message"])
	assert.Equal(t, "signed.jwt.token", body["token"])
	service.AssertExpectations(t)
}

func TestAdminHandler_Login_InvalidCredentials(t *testing.T) {
	service := &MockAdminUseCase{}
	router := newAdminRouter(service)

	service.On("Login", mock.Anything, "ops@example.com", "wrong").Return(nil, "", domain.ErrInvalidCredentials).Once()

	w := performRequest(router, http.MethodPost, "/api/admin/login", map[string]interface{}{
		"email": "ops@example.com", "passwordHash": "wrong",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid email or password", decodeBody(t, w)["message"])
}
