package dto

type CreateOrderRequestDTO struct {
	MemoID       string `json:"memo_id"`
	CustomerInfo string `json:"customer_info"`
	Description  string `json:"description"`
	Amount       int64  `json:"amount"`
}

type OrderResponseDTO struct {
	MemoID       string `json:"memo_id"`
	CustomerInfo string `json:"customer_info"`
	Description  string `json:"description,omitempty"`
	Amount       int64  `json:"amount"`
	Commission   int64  `json:"commission,omitempty"`
	Status       string `json:"status"`
	CreatedAt    string `json:"created_at"`
	FinishedAt   string `json:"finished_at,omitempty"`
}

type ApplyRequestDTO struct {
	EscortExternalID int64 `json:"escort_external_id"`
}

type AssignRequestDTO struct {
	EscortExternalIDs []int64 `json:"escort_external_ids"`
}

type AssignmentResponseDTO struct {
	EscortID   int    `json:"escort_id"`
	AssignedAt string `json:"assigned_at"`
}

type CompleteOrderRequestDTO struct {
	Rating *int `json:"rating,omitempty"`
}
