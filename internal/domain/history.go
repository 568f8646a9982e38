package domain

import "time"

type PointsHistory struct {
	ID            uint      `json:"id"`
	ParticipantID string    `json:"participante_id"`
	Points        int       `json:"pontos"`
	Reason        *string   `json:"motivo"`
	AdminID       *string   `json:"admin_id"`
	CreatedAt     time.Time `json:"created_at"`
}

type GiftHistory struct {
	ID            uint      `json:"id"`
	ParticipantID string    `json:"participante_id"`
	GiftID        uint      `json:"brinde_id"`
	Quantity      int       `json:"quantidade"`
	Reason        string    `json:"motivo"`
	ReceiptID     string    `json:"recibo"`
	AdminID       *string   `json:"admin_id"`
	CreatedAt     time.Time `json:"created_at"`
}
