package domain

import "time"

// All monetary values are int64 minor currency units (kopecks).

type Operator struct {
	ID           int       `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

type Escort struct {
	ID              int        `db:"id"`
	ExternalID      int64      `db:"external_id"`
	Username        string     `db:"username"`
	GameID          string     `db:"game_id"`
	SquadID         *int       `db:"squad_id"`
	Balance         int64      `db:"balance"`
	Rating          float64    `db:"rating"`
	RatingCount     int        `db:"rating_count"`
	CompletedOrders int        `db:"completed_orders"`
	BanUntil        *time.Time `db:"ban_until"`
	RestrictUntil   *time.Time `db:"restrict_until"`
	RulesAccepted   bool       `db:"rules_accepted"`
	CreatedAt       time.Time  `db:"created_at"`
}

// Restricted reports whether the escort is inside a ban or restrict
// window at the given moment. A nil or past timestamp means unrestricted.
func (e *Escort) Restricted(now time.Time) bool {
	if e.BanUntil != nil && e.BanUntil.After(now) {
		return true
	}
	if e.RestrictUntil != nil && e.RestrictUntil.After(now) {
		return true
	}
	return false
}

type Squad struct {
	ID              int       `db:"id"`
	Name            string    `db:"name"`
	Rating          float64   `db:"rating"`
	RatingCount     int       `db:"rating_count"`
	CompletedOrders int       `db:"completed_orders"`
	TotalEarned     int64     `db:"total_earned"`
	CreatedAt       time.Time `db:"created_at"`
}

const (
	// OpenOrderStatus заказ создан и открыт для заявок;
	OpenOrderStatus string = "open"
	// AssignedOrderStatus исполнители выбраны, заказ эксклюзивно закреплён;
	AssignedOrderStatus string = "assigned"
	// InProgressOrderStatus сопровождение выполняется;
	InProgressOrderStatus string = "in_progress"
	// CompletedOrderStatus заказ завершён и рассчитан;
	CompletedOrderStatus string = "completed"
	// CancelledOrderStatus заказ отменён до завершения;
	CancelledOrderStatus string = "cancelled"
)

type Order struct {
	ID           int        `db:"id"`
	MemoID       string     `db:"memo_id"`
	CustomerInfo string     `db:"customer_info"`
	Description  string     `db:"description"`
	Amount       int64      `db:"amount"`
	Commission   int64      `db:"commission"`
	Status       string     `db:"status"`
	SquadID      *int       `db:"squad_id"`
	CreatedAt    time.Time  `db:"created_at"`
	FinishedAt   *time.Time `db:"finished_at"`
}

// Terminal reports whether the order reached a final state.
func (o *Order) Terminal() bool {
	return o.Status == CompletedOrderStatus || o.Status == CancelledOrderStatus
}

// Application is a worker's request to execute an order. Squad and game id
// are snapshotted at application time.
type Application struct {
	OrderID   int       `db:"order_id"`
	EscortID  int       `db:"escort_id"`
	SquadID   *int      `db:"squad_id"`
	GameID    string    `db:"game_id"`
	AppliedAt time.Time `db:"applied_at"`
}

// Assignment is the accepted, exclusive binding of an order to an executor.
type Assignment struct {
	OrderID    int       `db:"order_id"`
	EscortID   int       `db:"escort_id"`
	AssignedAt time.Time `db:"assigned_at"`
}

type Payout struct {
	ID         int       `db:"id"`
	Reference  string    `db:"reference"`
	OrderID    int       `db:"order_id"`
	EscortID   int       `db:"escort_id"`
	Amount     int64     `db:"amount"`
	Commission int64     `db:"commission"`
	CreatedAt  time.Time `db:"created_at"`
}

const (
	PendingWithdrawalStatus  string = "pending"
	ApprovedWithdrawalStatus string = "approved"
	RejectedWithdrawalStatus string = "rejected"
)

type Withdrawal struct {
	ID          int        `db:"id"`
	Reference   string     `db:"reference"`
	EscortID    int        `db:"escort_id"`
	Amount      int64      `db:"amount"`
	Destination string     `db:"destination"`
	Status      string     `db:"status"`
	CreatedAt   time.Time  `db:"created_at"`
	ProcessedAt *time.Time `db:"processed_at"`
}

const (
	CreditTransaction           string = "credit"
	PayoutTransaction           string = "payout"
	WithdrawalHoldTransaction   string = "withdrawal_hold"
	WithdrawalRevertTransaction string = "withdrawal_revert"
	AdjustmentTransaction       string = "adjustment"
)

// Transaction is an immutable ledger entry. The balance column on escorts
// is a projection and must always equal the sum of these amounts.
type Transaction struct {
	ID        int       `db:"id"`
	EscortID  int       `db:"escort_id"`
	Amount    int64     `db:"amount"`
	Type      string    `db:"type"`
	CreatedAt time.Time `db:"created_at"`
}

type Complaint struct {
	ID        int       `db:"id"`
	EscortID  int       `db:"escort_id"`
	OrderID   *int      `db:"order_id"`
	Text      string    `db:"text"`
	CreatedAt time.Time `db:"created_at"`
}

type ActionLogEntry struct {
	ID          int       `db:"id"`
	ActionType  string    `db:"action_type"`
	EscortID    *int      `db:"escort_id"`
	OrderID     *int      `db:"order_id"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
}
