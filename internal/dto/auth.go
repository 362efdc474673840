package dto

type LoginRequestDTO struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type LoginResponseDTO struct {
	Message string `json:"message"`
}
