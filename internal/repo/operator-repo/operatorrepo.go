package operatorrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/memomarket/escortd/internal/domain"
	"github.com/memomarket/escortd/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) FindByLogin(ctx context.Context, login string) (*domain.Operator, error) {
	query := `
        SELECT id, login, password_hash, created_at
        FROM operators
        WHERE login = $1
    `
	var op domain.Operator
	err := r.db.QueryRow(ctx, query, login).Scan(&op.ID, &op.Login, &op.PasswordHash, &op.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find operator", zap.Error(err))
		return nil, err
	}
	return &op, nil
}

// Save creates the operator if the login is free. Existing rows keep their
// password, so the startup bootstrap is idempotent.
func (r *Repository) Save(ctx context.Context, op *domain.Operator) error {
	query := `
        INSERT INTO operators (login, password_hash)
        VALUES ($1, $2)
        ON CONFLICT (login) DO NOTHING
    `
	_, err := r.db.Exec(ctx, query, op.Login, op.PasswordHash)
	if err != nil {
		zap.L().Error("can't save operator", zap.Error(err))
		return err
	}
	return nil
}
