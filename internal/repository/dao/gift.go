package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrGiftNotFound = errors.New("gift not found")

type Gift struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"column:nome;not null"`
	Quantity  int    `gorm:"column:quantidade;not null;default:0;check:chk_brindes_quantidade,quantidade >= 0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Gift) TableName() string {
	return "brindes"
}

type GiftDAO struct {
	db *gorm.DB
}

func NewGiftDAO(db *gorm.DB) *GiftDAO {
	return &GiftDAO{
		db: db,
	}
}

func (d *GiftDAO) Insert(ctx context.Context, gift Gift) (Gift, error) {
	result := d.db.WithContext(ctx).Create(&gift)
	if result.Error != nil {
		return Gift{}, result.Error
	}

	return gift, nil
}

func (d *GiftDAO) FindByID(ctx context.Context, id uint) (Gift, error) {
	var gift Gift

	result := d.db.WithContext(ctx).First(&gift, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Gift{}, ErrGiftNotFound
		}

		return Gift{}, result.Error
	}

	return gift, nil
}

func (d *GiftDAO) FindAll(ctx context.Context) ([]Gift, error) {
	var gifts []Gift

	result := d.db.WithContext(ctx).Order("id").Find(&gifts)
	if result.Error != nil {
		return nil, result.Error
	}

	return gifts, nil
}
