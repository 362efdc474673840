package orderrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/memomarket/escortd/internal/domain"
	"github.com/memomarket/escortd/internal/pg"
)

const orderColumns = `id, memo_id, customer_info, description, amount, commission, status, squad_id, created_at, finished_at`

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var o domain.Order
	err := row.Scan(&o.ID, &o.MemoID, &o.CustomerInfo, &o.Description, &o.Amount, &o.Commission,
		&o.Status, &o.SquadID, &o.CreatedAt, &o.FinishedAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *Repository) Save(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	query := `
        INSERT INTO orders (memo_id, customer_info, description, amount, status)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING ` + orderColumns + `
    `
	saved, err := scanOrder(r.db.QueryRow(ctx, query,
		order.MemoID, order.CustomerInfo, order.Description, order.Amount, order.Status))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, domain.ErrDuplicateOrder
		}
		zap.L().Error("can't save order", zap.Error(err))
		return nil, err
	}
	return saved, nil
}

func (r *Repository) FindByMemoID(ctx context.Context, memoID string) (*domain.Order, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM orders
        WHERE memo_id = $1
    `
	order, err := scanOrder(r.db.QueryRow(ctx, query, memoID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find order by memo id", zap.Error(err))
		return nil, err
	}
	return order, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Order, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM orders
        WHERE id = $1
    `
	order, err := scanOrder(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find order", zap.Error(err))
		return nil, err
	}
	return order, nil
}

// FindByIDForUpdate locks the order row for the rest of the transaction.
// Compound transitions read the order through this method so that two
// concurrent transitions on one order serialize.
func (r *Repository) FindByIDForUpdate(ctx context.Context, id int) (*domain.Order, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM orders
        WHERE id = $1
        FOR UPDATE
    `
	order, err := scanOrder(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't lock order", zap.Error(err))
		return nil, err
	}
	return order, nil
}

func (r *Repository) FindByStatus(ctx context.Context, status string) ([]domain.Order, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM orders
        WHERE status = $1
        ORDER BY created_at ASC
    `
	rows, err := r.db.Query(ctx, query, status)
	if err != nil {
		zap.L().Error("can't get orders by status", zap.Error(err))
		return nil, err
	}
	defer rows.Close()
	return collectOrders(rows)
}

// FindStale returns non-terminal orders assigned longer ago than the cutoff.
func (r *Repository) FindStale(ctx context.Context, cutoff time.Time, limit uint32) ([]domain.Order, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM orders
        WHERE status IN ('assigned', 'in_progress') AND created_at < $1
        ORDER BY created_at ASC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, cutoff, int(limit))
	if err != nil {
		zap.L().Error("can't get stale orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()
	return collectOrders(rows)
}

func collectOrders(rows pgx.Rows) ([]domain.Order, error) {
	var orders []domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			zap.L().Error("can't scan order row", zap.Error(err))
			return nil, err
		}
		orders = append(orders, *order)
	}
	return orders, nil
}

// UpdateStatusFrom is a compare-and-swap on the order status. It reports
// whether this caller won the transition; a false result means the order
// left the expected state concurrently.
func (r *Repository) UpdateStatusFrom(ctx context.Context, id int, from, to string) (bool, error) {
	query := `
        UPDATE orders
        SET status = $1
        WHERE id = $2 AND status = $3
    `
	tag, err := r.db.Exec(ctx, query, to, id, from)
	if err != nil {
		zap.L().Error("can't update order status", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) SetAssigned(ctx context.Context, id int, squadID *int) (bool, error) {
	query := `
        UPDATE orders
        SET status = $1, squad_id = $2
        WHERE id = $3 AND status = $4
    `
	tag, err := r.db.Exec(ctx, query, domain.AssignedOrderStatus, squadID, id, domain.OpenOrderStatus)
	if err != nil {
		zap.L().Error("can't assign order", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) SetCompleted(ctx context.Context, id int, commission int64, finishedAt time.Time) error {
	query := `
        UPDATE orders
        SET status = $1, commission = $2, finished_at = $3
        WHERE id = $4
    `
	_, err := r.db.Exec(ctx, query, domain.CompletedOrderStatus, commission, finishedAt, id)
	if err != nil {
		zap.L().Error("can't complete order", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) CreateApplication(ctx context.Context, app *domain.Application) error {
	query := `
        INSERT INTO order_applications (order_id, escort_id, squad_id, game_id, applied_at)
        VALUES ($1, $2, $3, $4, $5)
    `
	_, err := r.db.Exec(ctx, query, app.OrderID, app.EscortID, app.SquadID, app.GameID, app.AppliedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return domain.ErrDuplicateApplication
		}
		zap.L().Error("can't create application", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindApplications(ctx context.Context, orderID int) ([]domain.Application, error) {
	query := `
        SELECT order_id, escort_id, squad_id, game_id, applied_at
        FROM order_applications
        WHERE order_id = $1
        ORDER BY applied_at ASC
    `
	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		zap.L().Error("can't get applications", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var apps []domain.Application
	for rows.Next() {
		var app domain.Application
		err := rows.Scan(&app.OrderID, &app.EscortID, &app.SquadID, &app.GameID, &app.AppliedAt)
		if err != nil {
			zap.L().Error("can't scan application row", zap.Error(err))
			return nil, err
		}
		apps = append(apps, app)
	}
	return apps, nil
}

func (r *Repository) DeleteApplications(ctx context.Context, orderID int) error {
	query := `
        DELETE FROM order_applications
        WHERE order_id = $1
    `
	_, err := r.db.Exec(ctx, query, orderID)
	if err != nil {
		zap.L().Error("can't delete applications", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) CreateAssignment(ctx context.Context, a *domain.Assignment) error {
	query := `
        INSERT INTO order_assignments (order_id, escort_id, assigned_at)
        VALUES ($1, $2, $3)
    `
	_, err := r.db.Exec(ctx, query, a.OrderID, a.EscortID, a.AssignedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return domain.ErrAlreadyAssigned
		}
		zap.L().Error("can't create assignment", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindAssignments(ctx context.Context, orderID int) ([]domain.Assignment, error) {
	query := `
        SELECT order_id, escort_id, assigned_at
        FROM order_assignments
        WHERE order_id = $1
        ORDER BY assigned_at ASC, escort_id ASC
    `
	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		zap.L().Error("can't get assignments", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var assignments []domain.Assignment
	for rows.Next() {
		var a domain.Assignment
		err := rows.Scan(&a.OrderID, &a.EscortID, &a.AssignedAt)
		if err != nil {
			zap.L().Error("can't scan assignment row", zap.Error(err))
			return nil, err
		}
		assignments = append(assignments, a)
	}
	return assignments, nil
}

func (r *Repository) DeleteAssignments(ctx context.Context, orderID int) error {
	query := `
        DELETE FROM order_assignments
        WHERE order_id = $1
    `
	_, err := r.db.Exec(ctx, query, orderID)
	if err != nil {
		zap.L().Error("can't delete assignments", zap.Error(err))
		return err
	}
	return nil
}
