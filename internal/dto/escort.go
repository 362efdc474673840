package dto

type RegisterEscortRequestDTO struct {
	ExternalID int64  `json:"external_id"`
	Username   string `json:"username"`
}

type EscortResponseDTO struct {
	ExternalID      int64   `json:"external_id"`
	Username        string  `json:"username"`
	GameID          string  `json:"game_id,omitempty"`
	Balance         int64   `json:"balance"`
	Rating          float64 `json:"rating"`
	RatingCount     int     `json:"rating_count"`
	CompletedOrders int     `json:"completed_orders"`
	RulesAccepted   bool    `json:"rules_accepted"`
	BanUntil        string  `json:"ban_until,omitempty"`
	RestrictUntil   string  `json:"restrict_until,omitempty"`
}

type SetGameIDRequestDTO struct {
	GameID string `json:"game_id"`
}

type RestrictionRequestDTO struct {
	Until *string `json:"until,omitempty"`
}
