package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrParticipantExists   = errors.New("participant already exists")
	ErrParticipantNotFound = errors.New("participant not found")
)

type Participant struct {
	ID        string  `gorm:"primaryKey;size:14"`
	Name      string  `gorm:"column:nome;not null"`
	Document  *string `gorm:"column:documento;uniqueIndex"`
	Points    int     `gorm:"column:pontos;not null;default:0;check:chk_participantes_pontos,pontos >= 0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Participant) TableName() string {
	return "participantes"
}

type ParticipantDAO struct {
	db *gorm.DB
}

func NewParticipantDAO(db *gorm.DB) *ParticipantDAO {
	return &ParticipantDAO{
		db: db,
	}
}

func (d *ParticipantDAO) Insert(ctx context.Context, participant Participant) (Participant, error) {
	participant.Points = 0

	result := d.db.WithContext(ctx).Create(&participant)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return Participant{}, ErrParticipantExists
		}

		return Participant{}, result.Error
	}

	return participant, nil
}

func (d *ParticipantDAO) FindByID(ctx context.Context, id string) (Participant, error) {
	var participant Participant

	result := d.db.WithContext(ctx).First(&participant, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Participant{}, ErrParticipantNotFound
		}

		return Participant{}, result.Error
	}

	return participant, nil
}

func (d *ParticipantDAO) FindAll(ctx context.Context) ([]Participant, error) {
	var participants []Participant

	result := d.db.WithContext(ctx).Order("created_at, id").Find(&participants)
	if result.Error != nil {
		return nil, result.Error
	}

	return participants, nil
}
