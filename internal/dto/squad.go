package dto

type CreateSquadRequestDTO struct {
	Name string `json:"name"`
}

type SquadResponseDTO struct {
	Name            string  `json:"name"`
	Rating          float64 `json:"rating"`
	RatingCount     int     `json:"rating_count"`
	CompletedOrders int     `json:"completed_orders"`
	TotalEarned     int64   `json:"total_earned"`
}

type JoinSquadRequestDTO struct {
	EscortExternalID int64 `json:"escort_external_id"`
}

type ComplaintRequestDTO struct {
	EscortExternalID int64  `json:"escort_external_id"`
	OrderMemoID      string `json:"order_memo_id,omitempty"`
	Text             string `json:"text"`
}

type ActionLogResponseDTO struct {
	ActionType  string `json:"action_type"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
}
