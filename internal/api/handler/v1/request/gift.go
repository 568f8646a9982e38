package request

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateGiftRequest struct {
	Name     string `json:"nome"`
	Quantity *int   `json:"quantidade"`
}

func (req *CreateGiftRequest) Validate() error {
	req.Name = strings.TrimSpace(req.Name)

	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 120)),
		validation.Field(&req.Quantity, validation.NotNil, validation.Min(0)),
	)
}

type RedeemGiftRequest struct {
	ParticipantID string `json:"participante_id"`
	GiftID        uint   `json:"brinde_id"`
	Quantity      int    `json:"quantidade"`
	AdminID       string `json:"admin_id"`
}

func (req *RedeemGiftRequest) Validate() error {
	req.ParticipantID = strings.TrimSpace(req.ParticipantID)
	req.AdminID = strings.TrimSpace(req.AdminID)

	return validation.ValidateStruct(
		req,
		validation.Field(&req.ParticipantID, validation.Required),
		validation.Field(&req.GiftID, validation.Required),
		validation.Field(&req.Quantity, validation.Required, validation.Min(1)),
	)
}
