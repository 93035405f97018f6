package airports

import (
	"context"
	"strings"

	"flightdesk/internal/domain"
	"flightdesk/internal/ident"
	"flightdesk/internal/repository"
)

type AirportUseCase interface {
	List(ctx context.Context) ([]domain.IATACode, error)
	GetByID(ctx context.Context, id string) (*domain.IATACode, error)
	Create(ctx context.Context, code *domain.IATACode) (*domain.IATACode, error)
	Update(ctx context.Context, id string, code *domain.IATACode) (*domain.IATACode, error)
	Delete(ctx context.Context, id string) error
}

type Cache interface {
	GetIATACodes(ctx context.Context) ([]domain.IATACode, error)
	SetIATACodes(ctx context.Context, codes []domain.IATACode) error
	InvalidateIATACodes(ctx context.Context) error
}

type AirportService struct {
	repo  repository.IATARepository
	cache Cache
}

func NewAirportService(repo repository.IATARepository, cache Cache) *AirportService {
	return &AirportService{repo: repo, cache: cache}
}

func (s *AirportService) List(ctx context.Context) ([]domain.IATACode, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetIATACodes(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	codes, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetIATACodes(ctx, codes)
	}
	return codes, nil
}

func (s *AirportService) GetByID(ctx context.Context, id string) (*domain.IATACode, error) {
	if !ident.IsUUID(id) {
		return nil, domain.Invalid("Invalid ID format")
	}
	return s.repo.GetByID(ctx, id)
}

func (s *AirportService) Create(ctx context.Context, code *domain.IATACode) (*domain.IATACode, error) {
	if err := validate(code); err != nil {
		return nil, err
	}

	code.ID = ident.ForIATA()
	if err := s.repo.Create(ctx, code); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return code, nil
}

func (s *AirportService) Update(ctx context.Context, id string, code *domain.IATACode) (*domain.IATACode, error) {
	if !ident.IsUUID(id) {
		return nil, domain.Invalid("Invalid ID format")
	}
	if err := validate(code); err != nil {
		return nil, err
	}

	code.ID = id
	if err := s.repo.Update(ctx, code); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return code, nil
}

func (s *AirportService) Delete(ctx context.Context, id string) error {
	if !ident.IsUUID(id) {
		return domain.Invalid("Invalid ID format")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// validate requires all four record fields, as the admin screen demands.
func validate(code *domain.IATACode) error {
	if strings.TrimSpace(code.IataCode) == "" ||
		strings.TrimSpace(code.AirportName) == "" ||
		strings.TrimSpace(code.City) == "" ||
		strings.TrimSpace(code.Country) == "" {
		return domain.Invalid("All fields are required")
	}
	return nil
}

func (s *AirportService) invalidate(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.InvalidateIATACodes(ctx)
	}
}

var _ AirportUseCase = (*AirportService)(nil)
