package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/projeto-evento/evento-api/internal/domain"
	"github.com/projeto-evento/evento-api/internal/repository"
)

var ErrGiftNotFound = repository.ErrGiftNotFound

type GiftRepository interface {
	Create(ctx context.Context, gift domain.Gift) (domain.Gift, error)
	FindByID(ctx context.Context, id uint) (domain.Gift, error)
	FindAll(ctx context.Context) ([]domain.Gift, error)
}

type GiftHistoryRepository interface {
	FindGiftHistory(ctx context.Context, giftID uint) ([]domain.GiftHistory, error)
}

type GiftService struct {
	repo    GiftRepository
	history GiftHistoryRepository
	policy  QueryPolicy
}

func NewGiftService(repo GiftRepository, history GiftHistoryRepository, policy QueryPolicy) *GiftService {
	return &GiftService{
		repo:    repo,
		history: history,
		policy:  policy,
	}
}

func (s *GiftService) Create(ctx context.Context, gift domain.Gift) (domain.Gift, error) {
	gift.Name = strings.TrimSpace(gift.Name)
	if gift.Name == "" {
		return domain.Gift{}, fmt.Errorf("%w: nome is required", ErrInvalidRequest)
	}
	if gift.Quantity < 0 {
		return domain.Gift{}, fmt.Errorf("%w: quantidade must not be negative", ErrInvalidRequest)
	}

	created, err := writeOnce(ctx, s.policy, func(ctx context.Context) (domain.Gift, error) {
		return s.repo.Create(ctx, gift)
	})
	if err != nil {
		return domain.Gift{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *GiftService) List(ctx context.Context) ([]domain.Gift, error) {
	gifts, err := readWithRetry(ctx, s.policy, s.repo.FindAll)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return gifts, nil
}

func (s *GiftService) Get(ctx context.Context, id uint) (domain.Gift, error) {
	gift, err := readWithRetry(ctx, s.policy, func(ctx context.Context) (domain.Gift, error) {
		return s.repo.FindByID(ctx, id)
	})
	if err != nil {
		return domain.Gift{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return gift, nil
}

func (s *GiftService) History(ctx context.Context, id uint) ([]domain.GiftHistory, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	records, err := readWithRetry(ctx, s.policy, func(ctx context.Context) ([]domain.GiftHistory, error) {
		return s.history.FindGiftHistory(ctx, id)
	})
	if err != nil {
		return nil, fmt.Errorf("s.history.FindGiftHistory -> %w", err)
	}

	return records, nil
}
