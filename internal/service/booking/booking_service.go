package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"flightdesk/internal/domain"
	"flightdesk/internal/ident"
	"flightdesk/internal/notify"
	"flightdesk/internal/repository"
)

type BookingUseCase interface {
	List(ctx context.Context, filter domain.BookingFilter) ([]domain.Booking, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	Create(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error)
	Delete(ctx context.Context, id string) error
}

type Emitter interface {
	Emit(ctx context.Context, name string, payload interface{})
}

// CreateBookingInput is the booking submission payload: one or two flight
// segments, each with its own main-passenger list, plus booking-wide
// add-ons and additional passengers.
type CreateBookingInput struct {
	UserID               string                       `json:"userId"`
	Flights              []domain.FlightSegment       `json:"flights"`
	Addons               []domain.Addon               `json:"addons"`
	AdditionalPassengers []domain.AdditionalPassenger `json:"additionalPassengers"`
	TotalPrice           float64                      `json:"totalPrice"`
}

type BookingService struct {
	bookings repository.BookingRepository
	flights  repository.FlightRepository
	emitter  Emitter
	now      func() time.Time
}

func NewBookingService(bookings repository.BookingRepository, flights repository.FlightRepository, emitter Emitter) *BookingService {
	return &BookingService{
		bookings: bookings,
		flights:  flights,
		emitter:  emitter,
		now:      time.Now,
	}
}

func (s *BookingService) List(ctx context.Context, filter domain.BookingFilter) ([]domain.Booking, error) {
	if filter.Status != "" && !domain.ValidStatus(filter.Status) {
		return []domain.Booking{}, nil
	}
	return s.bookings.List(ctx, filter)
}

func (s *BookingService) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	return s.bookings.GetByID(ctx, id)
}

// Create validates the submission as a whole, prices it, and persists it as
// a Confirmed booking. Any structural violation rejects the entire write.
func (s *BookingService) Create(ctx context.Context, input CreateBookingInput) (*domain.Booking, error) {
	if err := validate(input); err != nil {
		return nil, err
	}

	booking := &domain.Booking{
		ID:                   ident.ForBooking(),
		UserID:               input.UserID,
		Status:               domain.BookingStatusConfirmed,
		Flights:              input.Flights,
		Addons:               input.Addons,
		AdditionalPassengers: input.AdditionalPassengers,
		TotalPrice:           input.TotalPrice,
		CreatedAt:            s.now().UTC().Format(time.RFC3339),
	}
	if booking.Addons == nil {
		booking.Addons = []domain.Addon{}
	}
	if booking.AdditionalPassengers == nil {
		booking.AdditionalPassengers = []domain.AdditionalPassenger{}
	}
	if booking.TotalPrice == 0 {
		booking.TotalPrice = s.computeTotalPrice(ctx, booking)
	}

	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *BookingService) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	if !domain.ValidStatus(status) {
		return nil, domain.Invalid("Invalid status. Must be one of: Confirmed, Cancelled, Pending, Completed")
	}

	updated, err := s.bookings.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	if s.emitter != nil {
		s.emitter.Emit(ctx, notify.EventBookingStatusUpdated, map[string]string{
			"bookingId": updated.ID,
			"newStatus": string(updated.Status),
		})
	}
	return updated, nil
}

// Delete removes the booking record itself; flight records referenced by
// its segments stay untouched, the same way a booking survives flight
// deletion.
func (s *BookingService) Delete(ctx context.Context, id string) error {
	if err := s.bookings.Delete(ctx, id); err != nil {
		return err
	}
	if s.emitter != nil {
		s.emitter.Emit(ctx, notify.EventBookingDeleted, map[string]string{"bookingId": id})
	}
	return nil
}

// computeTotalPrice sums, per segment, the live flight price for every main
// passenger, plus all selected add-ons. Segment flight ids with no matching
// flight record contribute nothing: bookings keep no referential tie to the
// flights collection.
func (s *BookingService) computeTotalPrice(ctx context.Context, booking *domain.Booking) float64 {
	total := 0.0
	for _, segment := range booking.Flights {
		flight, err := s.flights.GetByID(ctx, segment.FlightID)
		if err != nil {
			continue
		}
		total += flight.Price * float64(len(segment.MainPassengers))
	}
	for _, addon := range booking.Addons {
		total += addon.Price
	}
	return total
}

func validate(input CreateBookingInput) error {
	if strings.TrimSpace(input.UserID) == "" || len(input.Flights) == 0 {
		return domain.Invalid("Required fields are missing")
	}

	for i, segment := range input.Flights {
		if anyEmpty(segment.FlightID, segment.DepartureDate, segment.ArrivalDate, segment.DepartureLocation, segment.ArrivalLocation) {
			return domain.Invalid(fmt.Sprintf("Invalid flight segment at index %d", i))
		}
		if len(segment.MainPassengers) == 0 {
			return domain.Invalid(fmt.Sprintf("Flight segment at index %d has no main passengers", i))
		}
		for j, p := range segment.MainPassengers {
			if anyEmpty(p.Name, p.Email, p.Phone, p.Address, p.IdentityNo) {
				return domain.Invalid(fmt.Sprintf("Invalid main passenger at index %d in flight segment %d", j, i))
			}
		}
	}

	for i, addon := range input.Addons {
		if strings.TrimSpace(addon.Type) == "" || addon.Price <= 0 {
			return domain.Invalid(fmt.Sprintf("Invalid addon at index %d", i))
		}
	}

	for i, p := range input.AdditionalPassengers {
		if anyEmpty(p.ID, p.Title, p.Name, p.DateOfBirth, p.Nationality) {
			return domain.Invalid(fmt.Sprintf("Invalid additional passenger at index %d", i))
		}
	}

	return nil
}

func anyEmpty(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return false
}

var _ BookingUseCase = (*BookingService)(nil)
