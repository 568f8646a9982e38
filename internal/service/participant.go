package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/projeto-evento/evento-api/internal/domain"
	"github.com/projeto-evento/evento-api/internal/repository"
)

var (
	ErrParticipantExists   = repository.ErrParticipantExists
	ErrParticipantNotFound = repository.ErrParticipantNotFound
)

type ParticipantRepository interface {
	Create(ctx context.Context, participant domain.Participant) (domain.Participant, error)
	FindByID(ctx context.Context, id string) (domain.Participant, error)
	FindAll(ctx context.Context) ([]domain.Participant, error)
}

type PointsHistoryRepository interface {
	FindPointsHistory(ctx context.Context, participantID string) ([]domain.PointsHistory, error)
}

type ParticipantService struct {
	repo    ParticipantRepository
	history PointsHistoryRepository
	policy  QueryPolicy
}

func NewParticipantService(repo ParticipantRepository, history PointsHistoryRepository, policy QueryPolicy) *ParticipantService {
	return &ParticipantService{
		repo:    repo,
		history: history,
		policy:  policy,
	}
}

// Register creates a participant with a zero balance. An empty document is stored as NULL.
func (s *ParticipantService) Register(ctx context.Context, participant domain.Participant) (domain.Participant, error) {
	participant.ID = strings.TrimSpace(participant.ID)
	participant.Name = strings.TrimSpace(participant.Name)
	participant.Points = 0

	if !domain.IsValidParticipantID(participant.ID) {
		return domain.Participant{}, fmt.Errorf("%w: id must contain only digits, 6 to 14 of them", ErrInvalidRequest)
	}
	if participant.Name == "" {
		return domain.Participant{}, fmt.Errorf("%w: nome is required", ErrInvalidRequest)
	}
	if participant.Document != nil {
		doc := strings.TrimSpace(*participant.Document)
		if doc == "" {
			participant.Document = nil
		} else {
			participant.Document = &doc
		}
	}

	created, err := writeOnce(ctx, s.policy, func(ctx context.Context) (domain.Participant, error) {
		return s.repo.Create(ctx, participant)
	})
	if err != nil {
		return domain.Participant{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *ParticipantService) List(ctx context.Context) ([]domain.Participant, error) {
	participants, err := readWithRetry(ctx, s.policy, s.repo.FindAll)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return participants, nil
}

func (s *ParticipantService) Get(ctx context.Context, id string) (domain.Participant, error) {
	participant, err := readWithRetry(ctx, s.policy, func(ctx context.Context) (domain.Participant, error) {
		return s.repo.FindByID(ctx, id)
	})
	if err != nil {
		return domain.Participant{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return participant, nil
}

// History lists the point movements of a participant, oldest first.
func (s *ParticipantService) History(ctx context.Context, id string) ([]domain.PointsHistory, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	records, err := readWithRetry(ctx, s.policy, func(ctx context.Context) ([]domain.PointsHistory, error) {
		return s.history.FindPointsHistory(ctx, id)
	})
	if err != nil {
		return nil, fmt.Errorf("s.history.FindPointsHistory -> %w", err)
	}

	return records, nil
}
