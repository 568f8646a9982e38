package domain

import (
	"regexp"
	"time"
)

// ParticipantIDPattern accepts identifiers made only of digits, 6 to 14 of them.
var ParticipantIDPattern = regexp.MustCompile(`^\d{6,14}$`)

type Participant struct {
	ID        string    `json:"id"`
	Name      string    `json:"nome"`
	Document  *string   `json:"documento"`
	Points    int       `json:"pontos"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func IsValidParticipantID(id string) bool {
	return ParticipantIDPattern.MatchString(id)
}
