package repository

import (
	"context"

	"flightdesk/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type IATARepository interface {
	List(ctx context.Context) ([]domain.IATACode, error)
	GetByID(ctx context.Context, id string) (*domain.IATACode, error)
	Create(ctx context.Context, code *domain.IATACode) error
	Update(ctx context.Context, code *domain.IATACode) error
	Delete(ctx context.Context, id string) error
}

type PGIATARepository struct {
	db *pgxpool.Pool
}

func NewIATARepository(db *pgxpool.Pool) IATARepository {
	return &PGIATARepository{db: db}
}

func (r *PGIATARepository) List(ctx context.Context) ([]domain.IATACode, error) {
	rows, err := r.db.Query(ctx, `SELECT id, iata_code, airport_name, city, country FROM iata_codes ORDER BY iata_code`)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	codes := make([]domain.IATACode, 0)
	for rows.Next() {
		var c domain.IATACode
		if err := rows.Scan(&c.ID, &c.IataCode, &c.AirportName, &c.City, &c.Country); err != nil {
			return nil, err
		}
		codes = append(codes, c)
	}
	return codes, rows.Err()
}

func (r *PGIATARepository) GetByID(ctx context.Context, id string) (*domain.IATACode, error) {
	row := r.db.QueryRow(ctx, `SELECT id, iata_code, airport_name, city, country FROM iata_codes WHERE id=$1`, id)
	var c domain.IATACode
	if err := row.Scan(&c.ID, &c.IataCode, &c.AirportName, &c.City, &c.Country); err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (r *PGIATARepository) Create(ctx context.Context, code *domain.IATACode) error {
	_, err := r.db.Exec(ctx, `INSERT INTO iata_codes (id, iata_code, airport_name, city, country) VALUES ($1, $2, $3, $4, $5)`,
		code.ID, code.IataCode, code.AirportName, code.City, code.Country)
	return translate(err)
}

func (r *PGIATARepository) Update(ctx context.Context, code *domain.IATACode) error {
	cmd, err := r.db.Exec(ctx, `UPDATE iata_codes SET iata_code=$2, airport_name=$3, city=$4, country=$5 WHERE id=$1`,
		code.ID, code.IataCode, code.AirportName, code.City, code.Country)
	if err != nil {
		return translate(err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PGIATARepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM iata_codes WHERE id=$1`, id)
	if err != nil {
		return translate(err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

var _ IATARepository = (*PGIATARepository)(nil)
