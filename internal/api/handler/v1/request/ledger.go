package request

import (
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
)

var errZeroPoints = errors.New("must not be zero")

type AdjustPointsRequest struct {
	ParticipantID string `json:"participante_id"`
	Points        int    `json:"pontos"`
	Reason        string `json:"motivo"`
	AdminID       string `json:"admin_id"`
}

func (req *AdjustPointsRequest) Validate() error {
	req.ParticipantID = strings.TrimSpace(req.ParticipantID)
	req.AdminID = strings.TrimSpace(req.AdminID)

	return validation.ValidateStruct(
		req,
		validation.Field(&req.ParticipantID, validation.Required),
		validation.Field(&req.Points, validation.By(func(value interface{}) error {
			if value.(int) == 0 {
				return errZeroPoints
			}
			return nil
		})),
		validation.Field(&req.Reason, validation.Length(0, 255)),
	)
}

// RedeemPointsRequest debits points. The admin may come from the body or from the bearer token.
type RedeemPointsRequest struct {
	ParticipantID string `json:"participante_id"`
	Points        int    `json:"pontos"`
	Reason        string `json:"motivo"`
	AdminID       string `json:"admin_id"`
}

func (req *RedeemPointsRequest) Validate() error {
	req.ParticipantID = strings.TrimSpace(req.ParticipantID)
	req.AdminID = strings.TrimSpace(req.AdminID)

	return validation.ValidateStruct(
		req,
		validation.Field(&req.ParticipantID, validation.Required),
		validation.Field(&req.Points, validation.Required, validation.Min(1)),
		validation.Field(&req.AdminID, validation.Required),
		validation.Field(&req.Reason, validation.Length(0, 255)),
	)
}
