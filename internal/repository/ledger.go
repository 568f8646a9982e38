package repository

import (
	"context"
	"fmt"

	"github.com/projeto-evento/evento-api/internal/domain"
	"github.com/projeto-evento/evento-api/internal/repository/dao"
)

var (
	ErrInsufficientBalance = dao.ErrInsufficientBalance
	ErrInsufficientStock   = dao.ErrInsufficientStock
	ErrInvalidAdmin        = dao.ErrInvalidAdmin
)

type LedgerDAO interface {
	ApplyPoints(ctx context.Context, entry dao.PointEntry) (dao.Participant, dao.PointsHistory, error)
	RedeemGift(ctx context.Context, entry dao.GiftEntry) (dao.Gift, dao.GiftHistory, error)
	FindPointsHistory(ctx context.Context, participantID string) ([]dao.PointsHistory, error)
	FindGiftHistory(ctx context.Context, giftID uint) ([]dao.GiftHistory, error)
}

type LedgerRepository struct {
	dao LedgerDAO
}

func NewLedgerRepository(dao LedgerDAO) *LedgerRepository {
	return &LedgerRepository{
		dao: dao,
	}
}

func (r *LedgerRepository) ApplyPoints(ctx context.Context, adjustment domain.PointAdjustment) (domain.Participant, domain.PointsHistory, error) {
	participant, record, err := r.dao.ApplyPoints(ctx, dao.PointEntry{
		ParticipantID: adjustment.ParticipantID,
		Delta:         adjustment.Delta,
		Reason:        optional(adjustment.Reason),
		AdminID:       optional(adjustment.AdminID),
	})
	if err != nil {
		return domain.Participant{}, domain.PointsHistory{}, fmt.Errorf("r.dao.ApplyPoints -> %w", err)
	}

	return participantDaoToDomain(participant), pointsHistoryDaoToDomain(record), nil
}

func (r *LedgerRepository) RedeemGift(ctx context.Context, redemption domain.GiftRedemption, receiptID string) (domain.Gift, domain.GiftHistory, error) {
	gift, record, err := r.dao.RedeemGift(ctx, dao.GiftEntry{
		ParticipantID: redemption.ParticipantID,
		GiftID:        redemption.GiftID,
		Quantity:      redemption.Quantity,
		Reason:        domain.ReasonGiftRedemption,
		ReceiptID:     receiptID,
		AdminID:       optional(redemption.AdminID),
	})
	if err != nil {
		return domain.Gift{}, domain.GiftHistory{}, fmt.Errorf("r.dao.RedeemGift -> %w", err)
	}

	return giftDaoToDomain(gift), giftHistoryDaoToDomain(record), nil
}

func (r *LedgerRepository) FindPointsHistory(ctx context.Context, participantID string) ([]domain.PointsHistory, error) {
	found, err := r.dao.FindPointsHistory(ctx, participantID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindPointsHistory -> %w", err)
	}

	records := make([]domain.PointsHistory, len(found))
	for i, h := range found {
		records[i] = pointsHistoryDaoToDomain(h)
	}

	return records, nil
}

func (r *LedgerRepository) FindGiftHistory(ctx context.Context, giftID uint) ([]domain.GiftHistory, error) {
	found, err := r.dao.FindGiftHistory(ctx, giftID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindGiftHistory -> %w", err)
	}

	records := make([]domain.GiftHistory, len(found))
	for i, h := range found {
		records[i] = giftHistoryDaoToDomain(h)
	}

	return records, nil
}

func pointsHistoryDaoToDomain(h dao.PointsHistory) domain.PointsHistory {
	return domain.PointsHistory{
		ID:            h.ID,
		ParticipantID: h.ParticipantID,
		Points:        h.Points,
		Reason:        h.Reason,
		AdminID:       h.AdminID,
		CreatedAt:     h.CreatedAt,
	}
}

func giftHistoryDaoToDomain(h dao.GiftHistory) domain.GiftHistory {
	return domain.GiftHistory{
		ID:            h.ID,
		ParticipantID: h.ParticipantID,
		GiftID:        h.GiftID,
		Quantity:      h.Quantity,
		Reason:        h.Reason,
		ReceiptID:     h.ReceiptID,
		AdminID:       h.AdminID,
		CreatedAt:     h.CreatedAt,
	}
}

// optional maps an empty string to a NULL column.
func optional(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}
