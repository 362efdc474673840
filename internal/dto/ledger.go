package dto

type BalanceResponseDTO struct {
	Balance int64 `json:"balance"`
}

type WithdrawalRequestDTO struct {
	Amount      int64  `json:"amount"`
	Destination string `json:"destination"`
}

type ResolveWithdrawalRequestDTO struct {
	Approve bool `json:"approve"`
}

type WithdrawalResponseDTO struct {
	ID          int    `json:"id"`
	Reference   string `json:"reference"`
	Amount      int64  `json:"amount"`
	Destination string `json:"destination"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
	ProcessedAt string `json:"processed_at,omitempty"`
}

type PayoutResponseDTO struct {
	Reference  string `json:"reference"`
	EscortID   int    `json:"escort_id"`
	Amount     int64  `json:"amount"`
	Commission int64  `json:"commission"`
	CreatedAt  string `json:"created_at"`
}
