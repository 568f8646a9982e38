package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/projeto-evento/evento-api/internal/domain"
	"github.com/projeto-evento/evento-api/internal/repository"
)

var (
	ErrInvalidRequest      = errors.New("invalid request")
	ErrInsufficientBalance = repository.ErrInsufficientBalance
	ErrInsufficientStock   = repository.ErrInsufficientStock
	ErrInvalidAdmin        = repository.ErrInvalidAdmin
)

const (
	OpAdjustPoints = "adjust_points"
	OpRedeemPoints = "redeem_points"
	OpRedeemGift   = "redeem_gift"
)

type LedgerRepository interface {
	ApplyPoints(ctx context.Context, adjustment domain.PointAdjustment) (domain.Participant, domain.PointsHistory, error)
	RedeemGift(ctx context.Context, redemption domain.GiftRedemption, receiptID string) (domain.Gift, domain.GiftHistory, error)
	FindPointsHistory(ctx context.Context, participantID string) ([]domain.PointsHistory, error)
	FindGiftHistory(ctx context.Context, giftID uint) ([]domain.GiftHistory, error)
}

// LedgerObserver is told about the outcome of every ledger mutation.
type LedgerObserver interface {
	ObserveLedgerOperation(operation, outcome string)
}

type noopObserver struct{}

func (noopObserver) ObserveLedgerOperation(string, string) {}

type LedgerService struct {
	repo     LedgerRepository
	policy   QueryPolicy
	observer LedgerObserver
	now      func() time.Time
}

func NewLedgerService(repo LedgerRepository, policy QueryPolicy, observer LedgerObserver) *LedgerService {
	if observer == nil {
		observer = noopObserver{}
	}

	return &LedgerService{
		repo:     repo,
		policy:   policy,
		observer: observer,
		now:      time.Now,
	}
}

func (s *LedgerService) AdjustPoints(ctx context.Context, adjustment domain.PointAdjustment) (domain.Participant, error) {
	if !adjustment.IsValid() {
		s.observer.ObserveLedgerOperation(OpAdjustPoints, Outcome(ErrInvalidRequest))
		return domain.Participant{}, fmt.Errorf("%w: participante_id is required and pontos must be non-zero", ErrInvalidRequest)
	}

	participant, err := s.applyPoints(ctx, adjustment)
	s.observer.ObserveLedgerOperation(OpAdjustPoints, Outcome(err))
	if err != nil {
		return domain.Participant{}, err
	}

	return participant, nil
}

func (s *LedgerService) RedeemPoints(ctx context.Context, redemption domain.PointRedemption) (domain.Participant, error) {
	if !redemption.IsValid() {
		s.observer.ObserveLedgerOperation(OpRedeemPoints, Outcome(ErrInvalidRequest))
		return domain.Participant{}, fmt.Errorf("%w: participante_id, admin_id and a positive pontos are required", ErrInvalidRequest)
	}

	participant, err := s.applyPoints(ctx, redemption.Adjustment())
	s.observer.ObserveLedgerOperation(OpRedeemPoints, Outcome(err))
	if err != nil {
		return domain.Participant{}, err
	}

	return participant, nil
}

func (s *LedgerService) applyPoints(ctx context.Context, adjustment domain.PointAdjustment) (domain.Participant, error) {
	participant, err := writeOnce(ctx, s.policy, func(ctx context.Context) (domain.Participant, error) {
		p, _, err := s.repo.ApplyPoints(ctx, adjustment)
		return p, err
	})
	if err != nil {
		return domain.Participant{}, fmt.Errorf("s.repo.ApplyPoints -> %w", err)
	}

	return participant, nil
}

func (s *LedgerService) RedeemGift(ctx context.Context, redemption domain.GiftRedemption) (domain.Receipt, error) {
	if !redemption.IsValid() {
		s.observer.ObserveLedgerOperation(OpRedeemGift, Outcome(ErrInvalidRequest))
		return domain.Receipt{}, fmt.Errorf("%w: participante_id, brinde_id and a positive quantidade are required", ErrInvalidRequest)
	}

	receiptID := uuid.NewString()

	type redeemed struct {
		gift   domain.Gift
		record domain.GiftHistory
	}
	result, err := writeOnce(ctx, s.policy, func(ctx context.Context) (redeemed, error) {
		gift, record, err := s.repo.RedeemGift(ctx, redemption, receiptID)
		return redeemed{gift: gift, record: record}, err
	})
	s.observer.ObserveLedgerOperation(OpRedeemGift, Outcome(err))
	if err != nil {
		return domain.Receipt{}, fmt.Errorf("s.repo.RedeemGift -> %w", err)
	}

	redeemedAt := result.record.CreatedAt
	if redeemedAt.IsZero() {
		redeemedAt = s.now()
	}

	return domain.Receipt{
		ID:             receiptID,
		ParticipantID:  redemption.ParticipantID,
		GiftID:         result.gift.ID,
		GiftName:       result.gift.Name,
		Quantity:       redemption.Quantity,
		RemainingStock: result.gift.Quantity,
		RedeemedAt:     redeemedAt,
	}, nil
}

// Outcome is a short, stable label for the error returned by a ledger operation.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrInvalidRequest):
		return "invalid_request"
	case errors.Is(err, ErrParticipantNotFound), errors.Is(err, ErrGiftNotFound):
		return "not_found"
	case errors.Is(err, ErrInsufficientBalance):
		return "insufficient_funds"
	case errors.Is(err, ErrInsufficientStock):
		return "insufficient_stock"
	case errors.Is(err, ErrInvalidAdmin):
		return "invalid_admin"
	case errors.Is(err, ErrTimeout):
		return "timeout"
	default:
		return "error"
	}
}
