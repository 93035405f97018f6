package repository

import (
	"context"

	"flightdesk/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type AdminRepository interface {
	List(ctx context.Context) ([]domain.Admin, error)
	GetByEmail(ctx context.Context, email string) (*domain.Admin, error)
	Create(ctx context.Context, admin *domain.Admin) error
	Delete(ctx context.Context, id string) error
}

type PGAdminRepository struct {
	db *pgxpool.Pool
}

func NewAdminRepository(db *pgxpool.Pool) AdminRepository {
	return &PGAdminRepository{db: db}
}

func (r *PGAdminRepository) List(ctx context.Context) ([]domain.Admin, error) {
	rows, err := r.db.Query(ctx, `SELECT id, email, password_hash FROM admins ORDER BY id`)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	admins := make([]domain.Admin, 0)
	for rows.Next() {
		var a domain.Admin
		if err := rows.Scan(&a.ID, &a.Email, &a.PasswordHash); err != nil {
			return nil, err
		}
		admins = append(admins, a)
	}
	return admins, rows.Err()
}

func (r *PGAdminRepository) GetByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	row := r.db.QueryRow(ctx, `SELECT id, email, password_hash FROM admins WHERE email=$1`, email)
	var a domain.Admin
	if err := row.Scan(&a.ID, &a.Email, &a.PasswordHash); err != nil {
		return nil, translate(err)
	}
	return &a, nil
}

// Create relies on the unique index on email; duplicates surface as
// domain.ErrDuplicate.
func (r *PGAdminRepository) Create(ctx context.Context, admin *domain.Admin) error {
	_, err := r.db.Exec(ctx, `INSERT INTO admins (id, email, password_hash) VALUES ($1, $2, $3)`,
		admin.ID, admin.Email, admin.PasswordHash)
	return translate(err)
}

func (r *PGAdminRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM admins WHERE id=$1`, id)
	if err != nil {
		return translate(err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

var _ AdminRepository = (*PGAdminRepository)(nil)
