package users

import (
	"context"
	"regexp"
	"testing"

	"flightdesk/internal/auth"
	"flightdesk/internal/domain"
	"flightdesk/internal/notify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockEmitter struct {
	mock.Mock
}

func (m *MockEmitter) Emit(ctx context.Context, name string, payload interface{}) {
	m.Called(ctx, name, payload)
}

type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) Issue(accountID, role string) (string, error) {
	args := m.Called(accountID, role)
	return args.String(0), args.Error(1)
}

func validUserInput() CreateUserInput {
	return CreateUserInput{
		Name:         "Alice Tan",
		Email:        "alice@example.com",
		PasswordHash: "client-side-digest",
		Phone:        "0123456789",
		Address:      "1 Jalan Besar, Kuala Lumpur",
		IdentityNo:   "900101-14-1234",
	}
}

func TestUserService_Create_Success(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := NewUserService(mockRepo, nil, nil)

	ctx := context.Background()
	mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil).Once()

	user, err := service.Create(ctx, validUserInput())

	assert.NoError(t, err)
	assert.NotNil(t, user)
	assert.Regexp(t, regexp.MustCompile(`^user\d+$`), user.ID)
	// stored digest is bcrypt over the submitted secret, never the secret itself
	assert.NotEqual(t, "client-side-digest", user.PasswordHash)
	assert.True(t, auth.CheckPassword(user.PasswordHash, "client-side-digest"))

	mockRepo.AssertExpectations(t)
}

func TestUserService_Create_MissingFields(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := NewUserService(mockRepo, nil, nil)
	ctx := context.Background()

	testCases := []struct {
		name   string
		mutate func(*CreateUserInput)
	}{
		{"empty name", func(in *CreateUserInput) { in.Name = "" }},
		{"empty email", func(in *CreateUserInput) { in.Email = "" }},
		{"empty password", func(in *CreateUserInput) { in.PasswordHash = "" }},
		{"empty phone", func(in *CreateUserInput) { in.Phone = "" }},
		{"empty address", func(in *CreateUserInput) { in.Address = "" }},
		{"empty identity number", func(in *CreateUserInput) { in.IdentityNo = "" }},
		{"whitespace name", func(in *CreateUserInput) { in.Name = "   " }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			input := validUserInput()
			tc.mutate(&input)

			user, err := service.Create(ctx, input)

			assert.Error(t, err)
			assert.Nil(t, user)
			assert.True(t, domain.IsValidation(err))
			assert.Equal(t, "All fields are required", err.Error())
		})
	}

	mockRepo.AssertNotCalled(t, "Create")
}

func TestUserService_Create_DuplicateEmail(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := NewUserService(mockRepo, nil, nil)

	ctx := context.Background()
	mockRepo.On("Create", ctx, mock.Anything).Return(domain.ErrDuplicate).Once()

	user, err := service.Create(ctx, validUserInput())

	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Nil(t, user)
	mockRepo.AssertExpectations(t)
}

func TestUserService_List_StripsPasswordHash(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := NewUserService(mockRepo, nil, nil)

	ctx := context.Background()
	stored := []domain.User{
		{ID: "user1", Name: "Alice Tan", Email: "alice@example.com", PasswordHash: "$2a$10$digest"},
		{ID: "user2", Name: "Bob Lee", Email: "bob@example.com", PasswordHash: "$2a$10$digest2"},
	}
	mockRepo.On("List", ctx).Return(stored, nil).Once()

	users, err := service.List(ctx)

	assert.NoError(t, err)
	assert.Len(t, users, 2)
	for _, u := range users {
		assert.Empty(t, u.PasswordHash)
	}
	mockRepo.AssertExpectations(t)
}

func TestUserService_Delete_EmitsEvent(t *testing.T) {
	mockRepo := &MockUserRepository{}
	mockEmitter := &MockEmitter{}
	service := NewUserService(mockRepo, mockEmitter, nil)

	ctx := context.Background()
	mockRepo.On("Delete", ctx, "user1700000000000000000").Return(nil).Once()
	mockEmitter.On("Emit", ctx, notify.EventUserDeleted, map[string]string{
		"userId": "user1700000000000000000",
	}).Once()

	err := service.Delete(ctx, "user1700000000000000000")

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
	mockEmitter.AssertExpectations(t)
}

func TestUserService_Delete_NotFound(t *testing.T) {
	mockRepo := &MockUserRepository{}
	mockEmitter := &MockEmitter{}
	service := NewUserService(mockRepo, mockEmitter, nil)

	ctx := context.Background()
	mockRepo.On("Delete", ctx, "user999").Return(domain.ErrNotFound).Once()

	err := service.Delete(ctx, "user999")

	assert.ErrorIs(t, err, domain.ErrNotFound)
	mockEmitter.AssertNotCalled(t, "Emit")
}

func TestUserService_Login_Success(t *testing.T) {
	mockRepo := &MockUserRepository{}
	mockTokens := &MockTokenIssuer{}
	service := NewUserService(mockRepo, nil, mockTokens)

	hashed, err := auth.HashPassword("client-side-digest")
	assert.NoError(t, err)

	ctx := context.Background()
	stored := &domain.User{ID: "user1", Name: "Alice Tan", Email: "alice@example.com", PasswordHash: hashed}

	mockRepo.On("GetByEmail", ctx, "alice@example.com").Return(stored, nil).Once()
	mockTokens.On("Issue", "user1", "user").Return("signed.jwt.token", nil).Once()

	user, token, err := service.Login(ctx, "alice@example.com", "client-side-digest")

	assert.NoError(t, err)
	assert.Equal(t, "signed.jwt.token", token)
	assert.Equal(t, "user1", user.ID)
	assert.Empty(t, user.PasswordHash)

	mockRepo.AssertExpectations(t)
	mockTokens.AssertExpectations(t)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := NewUserService(mockRepo, nil, nil)

	hashed, err := auth.HashPassword("correct-secret")
	assert.NoError(t, err)

	ctx := context.Background()
	stored := &domain.User{ID: "user1", Email: "alice@example.com", PasswordHash: hashed}
	mockRepo.On("GetByEmail", ctx, "alice@example.com").Return(stored, nil).Once()

	user, token, err := service.Login(ctx, "alice@example.com", "wrong-secret")

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.Nil(t, user)
	assert.Empty(t, token)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := NewUserService(mockRepo, nil, nil)

	ctx := context.Background()
	mockRepo.On("GetByEmail", ctx, "nobody@example.com").Return(nil, domain.ErrNotFound).Once()

	user, token, err := service.Login(ctx, "nobody@example.com", "whatever")

	// a missing account reads the same as a wrong password
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.Nil(t, user)
	assert.Empty(t, token)
}

func TestUserService_Login_MissingCredentials(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := NewUserService(mockRepo, nil, nil)
	ctx := context.Background()

	for _, tc := range []struct {
		name          string
		email, secret string
	}{
		{"empty email", "", "secret"},
		{"empty password", "alice@example.com", ""},
		{"both empty", "", ""},
	} {
		t.Run(tc.name, func(t *testing.T) {
			user, token, err := service.Login(ctx, tc.email, tc.secret)

			assert.Error(t, err)
			assert.True(t, domain.IsValidation(err))
			assert.Equal(t, "Email and password are required", err.Error())
			assert.Nil(t, user)
			assert.Empty(t, token)
		})
	}

	mockRepo.AssertNotCalled(t, "GetByEmail")
}
