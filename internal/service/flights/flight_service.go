package flights

import (
	"context"
	"errors"

	"flightdesk/internal/domain"
	"flightdesk/internal/ident"
	"flightdesk/internal/notify"
	"flightdesk/internal/repository"
)

type FlightUseCase interface {
	List(ctx context.Context) ([]domain.Flight, error)
	GetByID(ctx context.Context, id string) (*domain.Flight, error)
	Create(ctx context.Context, flight *domain.Flight) (*domain.Flight, error)
	Update(ctx context.Context, id string, update domain.FlightUpdate) (*domain.Flight, error)
	Delete(ctx context.Context, id string) error
}

type Cache interface {
	GetFlights(ctx context.Context) ([]domain.Flight, error)
	SetFlights(ctx context.Context, flights []domain.Flight) error
	InvalidateFlights(ctx context.Context) error
}

// Emitter pushes a realtime event after a successful mutation.
type Emitter interface {
	Emit(ctx context.Context, name string, payload interface{})
}

// createAttempts bounds the id-collision retry loop; flight ids carry only
// three digits.
const createAttempts = 5

type FlightService struct {
	repo    repository.FlightRepository
	cache   Cache
	emitter Emitter
}

func NewFlightService(repo repository.FlightRepository, cache Cache, emitter Emitter) *FlightService {
	return &FlightService{repo: repo, cache: cache, emitter: emitter}
}

func (s *FlightService) List(ctx context.Context) ([]domain.Flight, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetFlights(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	flights, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetFlights(ctx, flights)
	}
	return flights, nil
}

func (s *FlightService) GetByID(ctx context.Context, id string) (*domain.Flight, error) {
	return s.repo.GetByID(ctx, id)
}

// Create persists the flight, assigning a generated id when the payload
// carries none. Generated ids are retried on a primary-key collision;
// client-chosen ids are not.
func (s *FlightService) Create(ctx context.Context, flight *domain.Flight) (*domain.Flight, error) {
	if flight.Addons == nil {
		flight.Addons = []domain.Addon{}
	}

	if flight.ID != "" {
		if err := s.repo.Create(ctx, flight); err != nil {
			return nil, err
		}
		s.invalidate(ctx)
		return flight, nil
	}

	var err error
	for i := 0; i < createAttempts; i++ {
		flight.ID = ident.ForFlight()
		err = s.repo.Create(ctx, flight)
		if err == nil {
			s.invalidate(ctx)
			return flight, nil
		}
		if !errors.Is(err, domain.ErrDuplicate) {
			return nil, err
		}
	}
	return nil, err
}

func (s *FlightService) Update(ctx context.Context, id string, update domain.FlightUpdate) (*domain.Flight, error) {
	flight, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	update.Apply(flight)
	if err := s.repo.Update(ctx, flight); err != nil {
		return nil, err
	}
	s.invalidate(ctx)

	if s.emitter != nil {
		s.emitter.Emit(ctx, notify.EventFlightUpdated, flight)
	}
	return flight, nil
}

func (s *FlightService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *FlightService) invalidate(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.InvalidateFlights(ctx)
	}
}

var _ FlightUseCase = (*FlightService)(nil)
