package repository

import (
	"context"
	"fmt"

	"github.com/projeto-evento/evento-api/internal/domain"
	"github.com/projeto-evento/evento-api/internal/repository/dao"
)

var (
	ErrParticipantExists   = dao.ErrParticipantExists
	ErrParticipantNotFound = dao.ErrParticipantNotFound
)

type ParticipantDAO interface {
	Insert(ctx context.Context, participant dao.Participant) (dao.Participant, error)
	FindByID(ctx context.Context, id string) (dao.Participant, error)
	FindAll(ctx context.Context) ([]dao.Participant, error)
}

type ParticipantRepository struct {
	dao ParticipantDAO
}

func NewParticipantRepository(dao ParticipantDAO) *ParticipantRepository {
	return &ParticipantRepository{
		dao: dao,
	}
}

func (r *ParticipantRepository) Create(ctx context.Context, participant domain.Participant) (domain.Participant, error) {
	created, err := r.dao.Insert(ctx, dao.Participant{
		ID:       participant.ID,
		Name:     participant.Name,
		Document: participant.Document,
	})
	if err != nil {
		return domain.Participant{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return participantDaoToDomain(created), nil
}

func (r *ParticipantRepository) FindByID(ctx context.Context, id string) (domain.Participant, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return participantDaoToDomain(found), nil
}

func (r *ParticipantRepository) FindAll(ctx context.Context) ([]domain.Participant, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	participants := make([]domain.Participant, len(found))
	for i, p := range found {
		participants[i] = participantDaoToDomain(p)
	}

	return participants, nil
}

func participantDaoToDomain(p dao.Participant) domain.Participant {
	return domain.Participant{
		ID:        p.ID,
		Name:      p.Name,
		Document:  p.Document,
		Points:    p.Points,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
