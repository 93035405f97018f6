package users

import (
	"context"
	"errors"
	"strings"

	"flightdesk/internal/auth"
	"flightdesk/internal/domain"
	"flightdesk/internal/ident"
	"flightdesk/internal/notify"
	"flightdesk/internal/repository"
)

type UserUseCase interface {
	List(ctx context.Context) ([]domain.User, error)
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id string) error
	Login(ctx context.Context, email, secret string) (*domain.User, string, error)
}

type Emitter interface {
	Emit(ctx context.Context, name string, payload interface{})
}

// TokenIssuer mints the session token returned on login.
type TokenIssuer interface {
	Issue(accountID, role string) (string, error)
}

type CreateUserInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	// PasswordHash is the client-side secret field; it is bcrypt-hashed
	// before storage, never stored as sent.
	PasswordHash string `json:"passwordHash"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	IdentityNo   string `json:"identityNo"`
}

type UserService struct {
	repo    repository.UserRepository
	emitter Emitter
	tokens  TokenIssuer
}

func NewUserService(repo repository.UserRepository, emitter Emitter, tokens TokenIssuer) *UserService {
	return &UserService{repo: repo, emitter: emitter, tokens: tokens}
}

// List returns every user with the password hash stripped.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i] = users[i].Sanitized()
	}
	return users, nil
}

func (s *UserService) Create(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	if anyEmpty(input.Name, input.Email, input.PasswordHash, input.Phone, input.Address, input.IdentityNo) {
		return nil, domain.Invalid("All fields are required")
	}

	hashed, err := auth.HashPassword(input.PasswordHash)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           ident.ForUser(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hashed,
		Phone:        input.Phone,
		Address:      input.Address,
		IdentityNo:   input.IdentityNo,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if s.emitter != nil {
		s.emitter.Emit(ctx, notify.EventUserDeleted, map[string]string{"userId": id})
	}
	return nil
}

// Login verifies the supplied secret against the stored bcrypt digest and
// returns the sanitized user plus a session token. A missing account and a
// wrong password are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, email, secret string) (*domain.User, string, error) {
	if anyEmpty(email, secret) {
		return nil, "", domain.Invalid("Email and password are required")
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", err
	}
	if !auth.CheckPassword(user.PasswordHash, secret) {
		return nil, "", domain.ErrInvalidCredentials
	}

	token := ""
	if s.tokens != nil {
		if token, err = s.tokens.Issue(user.ID, "user"); err != nil {
			return nil, "", err
		}
	}

	sanitized := user.Sanitized()
	return &sanitized, token, nil
}

func anyEmpty(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return false
}

var _ UserUseCase = (*UserService)(nil)
