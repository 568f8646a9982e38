package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrInsufficientBalance = errors.New("insufficient points balance")
	ErrInsufficientStock   = errors.New("insufficient gift stock")
	ErrInvalidAdmin        = errors.New("invalid authorizing user")
)

type PointEntry struct {
	ParticipantID string
	Delta         int
	Reason        *string
	AdminID       *string
}

type GiftEntry struct {
	ParticipantID string
	GiftID        uint
	Quantity      int
	Reason        string
	ReceiptID     string
	AdminID       *string
}

// LedgerDAO mutates balances and stock. Each mutation is a single transaction made of
// a guarded UPDATE and the matching history INSERT, so a debit never drives a balance
// below zero even when requests race on the same row.
type LedgerDAO struct {
	db *gorm.DB
}

func NewLedgerDAO(db *gorm.DB) *LedgerDAO {
	return &LedgerDAO{
		db: db,
	}
}

func (d *LedgerDAO) ApplyPoints(ctx context.Context, entry PointEntry) (Participant, PointsHistory, error) {
	var (
		participant Participant
		record      PointsHistory
	)

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkAdmin(tx, entry.AdminID); err != nil {
			return err
		}

		result := tx.Model(&Participant{}).
			Where("id = ? AND pontos + ? >= 0", entry.ParticipantID, entry.Delta).
			Update("pontos", gorm.Expr("pontos + ?", entry.Delta))
		if result.Error != nil {
			if isCheckViolation(result.Error) {
				return ErrInsufficientBalance
			}

			return result.Error
		}

		if result.RowsAffected == 0 {
			if err := participantExists(tx, entry.ParticipantID); err != nil {
				return err
			}

			return ErrInsufficientBalance
		}

		record = PointsHistory{
			ParticipantID: entry.ParticipantID,
			Points:        entry.Delta,
			Reason:        entry.Reason,
			AdminID:       entry.AdminID,
		}
		if err := tx.Omit(clause.Associations).Create(&record).Error; err != nil {
			return err
		}

		return tx.First(&participant, "id = ?", entry.ParticipantID).Error
	})
	if err != nil {
		return Participant{}, PointsHistory{}, err
	}

	return participant, record, nil
}

func (d *LedgerDAO) RedeemGift(ctx context.Context, entry GiftEntry) (Gift, GiftHistory, error) {
	var (
		gift   Gift
		record GiftHistory
	)

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkAdmin(tx, entry.AdminID); err != nil {
			return err
		}

		if err := participantExists(tx, entry.ParticipantID); err != nil {
			return err
		}

		result := tx.Model(&Gift{}).
			Where("id = ? AND quantidade >= ?", entry.GiftID, entry.Quantity).
			Update("quantidade", gorm.Expr("quantidade - ?", entry.Quantity))
		if result.Error != nil {
			if isCheckViolation(result.Error) {
				return ErrInsufficientStock
			}

			return result.Error
		}

		if result.RowsAffected == 0 {
			if err := giftExists(tx, entry.GiftID); err != nil {
				return err
			}

			return ErrInsufficientStock
		}

		record = GiftHistory{
			ParticipantID: entry.ParticipantID,
			GiftID:        entry.GiftID,
			Quantity:      entry.Quantity,
			Reason:        entry.Reason,
			ReceiptID:     entry.ReceiptID,
			AdminID:       entry.AdminID,
		}
		if err := tx.Omit(clause.Associations).Create(&record).Error; err != nil {
			return err
		}

		return tx.First(&gift, entry.GiftID).Error
	})
	if err != nil {
		return Gift{}, GiftHistory{}, err
	}

	return gift, record, nil
}

func (d *LedgerDAO) FindPointsHistory(ctx context.Context, participantID string) ([]PointsHistory, error) {
	var records []PointsHistory

	result := d.db.WithContext(ctx).
		Where("participante_id = ?", participantID).
		Order("created_at, id").
		Find(&records)
	if result.Error != nil {
		return nil, result.Error
	}

	return records, nil
}

func (d *LedgerDAO) FindGiftHistory(ctx context.Context, giftID uint) ([]GiftHistory, error) {
	var records []GiftHistory

	result := d.db.WithContext(ctx).
		Where("brinde_id = ?", giftID).
		Order("created_at, id").
		Find(&records)
	if result.Error != nil {
		return nil, result.Error
	}

	return records, nil
}

func checkAdmin(tx *gorm.DB, adminID *string) error {
	if adminID == nil {
		return nil
	}

	var user User
	err := tx.Select("id").Take(&user, "id = ?", *adminID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrInvalidAdmin
	}

	return err
}

func participantExists(tx *gorm.DB, id string) error {
	var participant Participant
	err := tx.Select("id").Take(&participant, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrParticipantNotFound
	}

	return err
}

func giftExists(tx *gorm.DB, id uint) error {
	var gift Gift
	err := tx.Select("id").Take(&gift, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrGiftNotFound
	}

	return err
}
