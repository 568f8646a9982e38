package domain

import "time"

type Gift struct {
	ID        uint      `json:"id"`
	Name      string    `json:"nome"`
	Quantity  int       `json:"quantidade"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Receipt is handed back to the caller after a successful gift redemption.
type Receipt struct {
	ID             string    `json:"id"`
	ParticipantID  string    `json:"participante_id"`
	GiftID         uint      `json:"brinde_id"`
	GiftName       string    `json:"brinde"`
	Quantity       int       `json:"quantidade"`
	RemainingStock int       `json:"estoque_restante"`
	RedeemedAt     time.Time `json:"resgatado_em"`
}
