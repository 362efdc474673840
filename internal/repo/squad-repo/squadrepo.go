package squadrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/memomarket/escortd/internal/domain"
	"github.com/memomarket/escortd/internal/pg"
)

const squadColumns = `id, name, rating, rating_count, completed_orders, total_earned, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func scanSquad(row pgx.Row) (*domain.Squad, error) {
	var s domain.Squad
	err := row.Scan(&s.ID, &s.Name, &s.Rating, &s.RatingCount, &s.CompletedOrders, &s.TotalEarned, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *Repository) Save(ctx context.Context, name string) (*domain.Squad, error) {
	query := `
        INSERT INTO squads (name)
        VALUES ($1)
        RETURNING ` + squadColumns + `
    `
	squad, err := scanSquad(r.db.QueryRow(ctx, query, name))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, domain.ErrDuplicateSquad
		}
		zap.L().Error("can't save squad", zap.Error(err))
		return nil, err
	}
	return squad, nil
}

func (r *Repository) FindByName(ctx context.Context, name string) (*domain.Squad, error) {
	query := `
        SELECT ` + squadColumns + `
        FROM squads
        WHERE name = $1
    `
	squad, err := scanSquad(r.db.QueryRow(ctx, query, name))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find squad by name", zap.Error(err))
		return nil, err
	}
	return squad, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Squad, error) {
	query := `
        SELECT ` + squadColumns + `
        FROM squads
        WHERE id = $1
    `
	squad, err := scanSquad(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find squad", zap.Error(err))
		return nil, err
	}
	return squad, nil
}

func (r *Repository) MemberCount(ctx context.Context, id int) (int, error) {
	query := `
        SELECT COUNT(*)
        FROM escorts
        WHERE squad_id = $1
    `
	var count int
	if err := r.db.QueryRow(ctx, query, id).Scan(&count); err != nil {
		zap.L().Error("can't count squad members", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) UpdateReputation(ctx context.Context, id int, rating float64, ratingCount int) error {
	query := `
        UPDATE squads
        SET rating = $1, rating_count = $2
        WHERE id = $3
    `
	_, err := r.db.Exec(ctx, query, rating, ratingCount, id)
	if err != nil {
		zap.L().Error("can't update squad reputation", zap.Error(err))
		return err
	}
	return nil
}

// RecordCompletion bumps the denormalized squad aggregates inside the same
// transaction that settles the underlying order.
func (r *Repository) RecordCompletion(ctx context.Context, id int, earned int64) error {
	query := `
        UPDATE squads
        SET completed_orders = completed_orders + 1, total_earned = total_earned + $1
        WHERE id = $2
    `
	_, err := r.db.Exec(ctx, query, earned, id)
	if err != nil {
		zap.L().Error("can't record squad completion", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id int) error {
	query := `
        DELETE FROM squads
        WHERE id = $1
    `
	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't delete squad", zap.Error(err))
		return err
	}
	return nil
}
