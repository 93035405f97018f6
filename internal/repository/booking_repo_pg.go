package repository

import (
	"context"

	"flightdesk/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository interface {
	List(ctx context.Context, filter domain.BookingFilter) ([]domain.Booking, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	Create(ctx context.Context, booking *domain.Booking) error
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error)
	Delete(ctx context.Context, id string) error
}

type PGBookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) BookingRepository {
	return &PGBookingRepository{db: db}
}

const bookingColumns = `id, user_id, status, flights, addons, additional_passengers, total_price, created_at`

// List applies the optional filters directly in SQL. Empty filter values
// turn the corresponding predicate off. created_at is an ISO-8601 string,
// so date-range filters compare lexicographically.
func (r *PGBookingRepository) List(ctx context.Context, filter domain.BookingFilter) ([]domain.Booking, error) {
	endDate := filter.EndDate
	if len(endDate) == 10 {
		// plain yyyy-mm-dd: include the whole end day
		endDate += "T23:59:59Z"
	}
	rows, err := r.db.Query(ctx, `SELECT `+bookingColumns+` FROM bookings
		WHERE ($1 = '' OR user_id = $1)
		  AND ($2 = '' OR status = $2)
		  AND ($3 = '' OR created_at >= $3)
		  AND ($4 = '' OR created_at <= $4)
		ORDER BY created_at DESC`,
		filter.UserID, string(filter.Status), filter.StartDate, endDate)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	bookings := make([]domain.Booking, 0)
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(&b.ID, &b.UserID, &b.Status, &b.Flights, &b.Addons, &b.AdditionalPassengers, &b.TotalPrice, &b.CreatedAt); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func (r *PGBookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	row := r.db.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id=$1`, id)
	var b domain.Booking
	if err := row.Scan(&b.ID, &b.UserID, &b.Status, &b.Flights, &b.Addons, &b.AdditionalPassengers, &b.TotalPrice, &b.CreatedAt); err != nil {
		return nil, translate(err)
	}
	return &b, nil
}

func (r *PGBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	_, err := r.db.Exec(ctx, `INSERT INTO bookings (`+bookingColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		booking.ID, booking.UserID, booking.Status, booking.Flights, booking.Addons, booking.AdditionalPassengers, booking.TotalPrice, booking.CreatedAt)
	return translate(err)
}

func (r *PGBookingRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	row := r.db.QueryRow(ctx, `UPDATE bookings SET status=$2 WHERE id=$1 RETURNING `+bookingColumns, id, status)
	var b domain.Booking
	if err := row.Scan(&b.ID, &b.UserID, &b.Status, &b.Flights, &b.Addons, &b.AdditionalPassengers, &b.TotalPrice, &b.CreatedAt); err != nil {
		return nil, translate(err)
	}
	return &b, nil
}

func (r *PGBookingRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM bookings WHERE id=$1`, id)
	if err != nil {
		return translate(err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

var _ BookingRepository = (*PGBookingRepository)(nil)
