package escortrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/memomarket/escortd/internal/domain"
	"github.com/memomarket/escortd/internal/pg"
)

const escortColumns = `id, external_id, username, game_id, squad_id, balance, rating, rating_count,
	completed_orders, ban_until, restrict_until, rules_accepted, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func scanEscort(row pgx.Row) (*domain.Escort, error) {
	var e domain.Escort
	err := row.Scan(&e.ID, &e.ExternalID, &e.Username, &e.GameID, &e.SquadID, &e.Balance,
		&e.Rating, &e.RatingCount, &e.CompletedOrders, &e.BanUntil, &e.RestrictUntil,
		&e.RulesAccepted, &e.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *Repository) FindByExternalID(ctx context.Context, externalID int64) (*domain.Escort, error) {
	query := `
        SELECT ` + escortColumns + `
        FROM escorts
        WHERE external_id = $1
    `
	escort, err := scanEscort(r.db.QueryRow(ctx, query, externalID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find escort by external id", zap.Error(err))
		return nil, err
	}
	return escort, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Escort, error) {
	query := `
        SELECT ` + escortColumns + `
        FROM escorts
        WHERE id = $1
    `
	escort, err := scanEscort(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find escort", zap.Error(err))
		return nil, err
	}
	return escort, nil
}

// Save registers an escort on first contact. Repeated registration with the
// same external id refreshes the username and returns the existing row.
func (r *Repository) Save(ctx context.Context, escort *domain.Escort) (*domain.Escort, error) {
	query := `
        INSERT INTO escorts (external_id, username)
        VALUES ($1, $2)
        ON CONFLICT (external_id) DO UPDATE SET username = EXCLUDED.username
        RETURNING ` + escortColumns + `
    `
	saved, err := scanEscort(r.db.QueryRow(ctx, query, escort.ExternalID, escort.Username))
	if err != nil {
		zap.L().Error("can't save escort", zap.Error(err))
		return nil, err
	}
	return saved, nil
}

func (r *Repository) Update(ctx context.Context, escort *domain.Escort) error {
	query := `
        UPDATE escorts
        SET username = $1, game_id = $2, squad_id = $3, rules_accepted = $4
        WHERE id = $5
    `
	_, err := r.db.Exec(ctx, query, escort.Username, escort.GameID, escort.SquadID, escort.RulesAccepted, escort.ID)
	if err != nil {
		zap.L().Error("can't update escort", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) UpdateRestrictions(ctx context.Context, id int, banUntil, restrictUntil *time.Time) error {
	query := `
        UPDATE escorts
        SET ban_until = $1, restrict_until = $2
        WHERE id = $3
    `
	_, err := r.db.Exec(ctx, query, banUntil, restrictUntil, id)
	if err != nil {
		zap.L().Error("can't update escort restrictions", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) UpdateReputation(ctx context.Context, id int, rating float64, ratingCount int) error {
	query := `
        UPDATE escorts
        SET rating = $1, rating_count = $2
        WHERE id = $3
    `
	_, err := r.db.Exec(ctx, query, rating, ratingCount, id)
	if err != nil {
		zap.L().Error("can't update escort reputation", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) IncrementCompletedOrders(ctx context.Context, id int) error {
	query := `
        UPDATE escorts
        SET completed_orders = completed_orders + 1
        WHERE id = $1
    `
	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't increment completed orders", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindBySquadID(ctx context.Context, squadID int) ([]domain.Escort, error) {
	query := `
        SELECT ` + escortColumns + `
        FROM escorts
        WHERE squad_id = $1
        ORDER BY created_at ASC
    `
	rows, err := r.db.Query(ctx, query, squadID)
	if err != nil {
		zap.L().Error("can't get squad roster", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var escorts []domain.Escort
	for rows.Next() {
		escort, err := scanEscort(rows)
		if err != nil {
			zap.L().Error("can't scan escort row", zap.Error(err))
			return nil, err
		}
		escorts = append(escorts, *escort)
	}
	return escorts, nil
}
