package repository

import (
	"context"

	"flightdesk/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// StateRepository serves the read-only state list behind the signup
// address autocompletion. The rows are seeded by the migrations.
type StateRepository interface {
	List(ctx context.Context) ([]domain.State, error)
}

type PGStateRepository struct {
	db *pgxpool.Pool
}

func NewStateRepository(db *pgxpool.Pool) StateRepository {
	return &PGStateRepository{db: db}
}

func (r *PGStateRepository) List(ctx context.Context) ([]domain.State, error) {
	rows, err := r.db.Query(ctx, `SELECT name FROM states ORDER BY name`)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	states := make([]domain.State, 0)
	for rows.Next() {
		var s domain.State
		if err := rows.Scan(&s.State); err != nil {
			return nil, err
		}
		states = append(states, s)
	}
	return states, rows.Err()
}

var _ StateRepository = (*PGStateRepository)(nil)
