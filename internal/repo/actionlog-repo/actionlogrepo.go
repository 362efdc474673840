package actionlogrepo

import (
	"context"

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

func (r *Repository) Append(ctx context.Context, entry *domain.ActionLogEntry) error {
	query := `
        INSERT INTO action_log (action_type, escort_id, order_id, description, created_at)
        VALUES ($1, $2, $3, $4, $5)
    `
	_, err := r.db.Exec(ctx, query, entry.ActionType, entry.EscortID, entry.OrderID, entry.Description, entry.CreatedAt)
	if err != nil {
		zap.L().Error("can't append action log entry", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByOrder(ctx context.Context, orderID int) ([]domain.ActionLogEntry, error) {
	query := `
        SELECT id, action_type, escort_id, order_id, description, created_at
        FROM action_log
        WHERE order_id = $1
        ORDER BY created_at ASC
    `
	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		zap.L().Error("can't get action log by order", zap.Error(err))
		return nil, err
	}
	defer rows.Close()
	return collectEntries(rows)
}

func (r *Repository) FindByEscort(ctx context.Context, escortID int) ([]domain.ActionLogEntry, error) {
	query := `
        SELECT id, action_type, escort_id, order_id, description, created_at
        FROM action_log
        WHERE escort_id = $1
        ORDER BY created_at ASC
    `
	rows, err := r.db.Query(ctx, query, escortID)
	if err != nil {
		zap.L().Error("can't get action log by escort", zap.Error(err))
		return nil, err
	}
	defer rows.Close()
	return collectEntries(rows)
}

func collectEntries(rows pgx.Rows) ([]domain.ActionLogEntry, error) {
	var entries []domain.ActionLogEntry
	for rows.Next() {
		var e domain.ActionLogEntry
		err := rows.Scan(&e.ID, &e.ActionType, &e.EscortID, &e.OrderID, &e.Description, &e.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan action log row", zap.Error(err))
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func (r *Repository) CreateComplaint(ctx context.Context, c *domain.Complaint) (*domain.Complaint, error) {
	query := `
        INSERT INTO complaints (escort_id, order_id, text, created_at)
        VALUES ($1, $2, $3, $4)
        RETURNING id
    `
	if err := r.db.QueryRow(ctx, query, c.EscortID, c.OrderID, c.Text, c.CreatedAt).Scan(&c.ID); err != nil {
		zap.L().Error("can't create complaint", zap.Error(err))
		return nil, err
	}
	return c, nil
}

func (r *Repository) FindComplaintsByEscort(ctx context.Context, escortID int) ([]domain.Complaint, error) {
	query := `
        SELECT id, escort_id, order_id, text, created_at
        FROM complaints
        WHERE escort_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, escortID)
	if err != nil {
		zap.L().Error("can't get complaints", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var complaints []domain.Complaint
	for rows.Next() {
		var c domain.Complaint
		err := rows.Scan(&c.ID, &c.EscortID, &c.OrderID, &c.Text, &c.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan complaint row", zap.Error(err))
			return nil, err
		}
		complaints = append(complaints, c)
	}
	return complaints, nil
}
