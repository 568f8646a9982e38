package response

import "github.com/projeto-evento/evento-api/internal/domain"

type LoginResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

type PointsResponse struct {
	Message     string             `json:"message"`
	Participant domain.Participant `json:"participante"`
}

type RedeemGiftResponse struct {
	Message string         `json:"message"`
	Receipt domain.Receipt `json:"recibo"`
}
