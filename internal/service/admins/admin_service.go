package admins

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

type AdminUseCase interface {
	List(ctx context.Context) ([]domain.Admin, error)
	Create(ctx context.Context, email, password string) (*domain.Admin, error)
	Delete(ctx context.Context, id string) error
	Login(ctx context.Context, email, secret string) (*domain.Admin, string, error)
}

type Emitter interface {
	Emit(ctx context.Context, name string, payload interface{})
}

type TokenIssuer interface {
	Issue(accountID, role string) (string, error)
}

type AdminService struct {
	repo    repository.AdminRepository
	emitter Emitter
	tokens  TokenIssuer
}

func NewAdminService(repo repository.AdminRepository, emitter Emitter, tokens TokenIssuer) *AdminService {
	return &AdminService{repo: repo, emitter: emitter, tokens: tokens}
}

func (s *AdminService) List(ctx context.Context) ([]domain.Admin, error) {
	admins, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range admins {
		admins[i] = admins[i].Sanitized()
	}
	return admins, nil
}

// Create stores a new admin with the plaintext password bcrypt-hashed
// server-side.
func (s *AdminService) Create(ctx context.Context, email, password string) (*domain.Admin, error) {
	if strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" {
		return nil, domain.Invalid("All fields are required")
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	admin := &domain.Admin{
		ID:           ident.ForAdmin(),
		Email:        email,
		PasswordHash: hashed,
	}
	if err := s.repo.Create(ctx, admin); err != nil {
		return nil, err
	}
	return admin, nil
}

func (s *AdminService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if s.emitter != nil {
		s.emitter.Emit(ctx, notify.EventAdminDeleted, map[string]string{"adminId": id})
	}
	return nil
}

func (s *AdminService) Login(ctx context.Context, email, secret string) (*domain.Admin, string, error) {
	if strings.TrimSpace(email) == "" || strings.TrimSpace(secret) == "" {
		return nil, "", domain.Invalid("Email and password are required")
	}

	admin, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", err
	}
	if !auth.CheckPassword(admin.PasswordHash, secret) {
		return nil, "", domain.ErrInvalidCredentials
	}

	token := ""
	if s.tokens != nil {
		if token, err = s.tokens.Issue(admin.ID, "admin"); err != nil {
			return nil, "", err
		}
	}

	sanitized := admin.Sanitized()
	return &sanitized, token, nil
}

var _ AdminUseCase = (*AdminService)(nil)
