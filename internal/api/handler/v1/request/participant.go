package request

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/projeto-evento/evento-api/internal/domain"
)

type CreateParticipantRequest struct {
	ID       string  `json:"id"`
	Name     string  `json:"nome"`
	Document *string `json:"documento"`
}

func (req *CreateParticipantRequest) Validate() error {
	req.ID = strings.TrimSpace(req.ID)
	req.Name = strings.TrimSpace(req.Name)

	return validation.ValidateStruct(
		req,
		validation.Field(&req.ID,
			validation.Required,
			is.Digit,
			validation.Length(6, 14),
			validation.Match(domain.ParticipantIDPattern).Error("must contain only digits, 6 to 14 of them"),
		),
		validation.Field(&req.Name, validation.Required, validation.Length(1, 120)),
		validation.Field(&req.Document, validation.Length(0, 30)),
	)
}
