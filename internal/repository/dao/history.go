package dao

import "time"

// PointsHistory rows are append-only; one per successful balance change.
type PointsHistory struct {
	ID            uint        `gorm:"primaryKey"`
	ParticipantID string      `gorm:"column:participante_id;not null;index"`
	Participant   Participant `gorm:"foreignKey:ParticipantID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Points        int         `gorm:"column:pontos;not null"`
	Reason        *string     `gorm:"column:motivo"`
	AdminID       *string     `gorm:"column:admin_id"`
	CreatedAt     time.Time   `gorm:"not null;index"`
}

func (PointsHistory) TableName() string {
	return "historico_pontos"
}

// GiftHistory rows are append-only; one per successful redemption.
type GiftHistory struct {
	ID            uint        `gorm:"primaryKey"`
	ParticipantID string      `gorm:"column:participante_id;not null;index"`
	Participant   Participant `gorm:"foreignKey:ParticipantID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	GiftID        uint        `gorm:"column:brinde_id;not null;index"`
	Gift          Gift        `gorm:"foreignKey:GiftID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Quantity      int         `gorm:"column:quantidade;not null;check:chk_historico_brindes_quantidade,quantidade > 0"`
	Reason        string      `gorm:"column:motivo;not null"`
	ReceiptID     string      `gorm:"column:recibo;not null;uniqueIndex"`
	AdminID       *string     `gorm:"column:admin_id"`
	CreatedAt     time.Time   `gorm:"not null;index"`
}

func (GiftHistory) TableName() string {
	return "historico_brindes"
}
