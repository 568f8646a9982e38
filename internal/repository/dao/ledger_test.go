package dao_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/projeto-evento/evento-api/internal/db/dbtest"
	"github.com/projeto-evento/evento-api/internal/repository/dao"
)

func strPtr(s string) *string {
	return &s
}

func seed(t *testing.T, gdb *gorm.DB) {
	t.Helper()
	ctx := context.Background()

	_, err := dao.NewUserDAO(gdb).Insert(ctx, dao.User{ID: "admin01", Name: "Admin", Password: "hash", Role: "admin"})
	require.NoError(t, err)

	_, err = dao.NewParticipantDAO(gdb).Insert(ctx, dao.Participant{ID: "123456", Name: "Ana"})
	require.NoError(t, err)

	_, err = dao.NewGiftDAO(gdb).Insert(ctx, dao.Gift{Name: "Caneca", Quantity: 3})
	require.NoError(t, err)
}

func TestLedgerDAO_ApplyPoints(t *testing.T) {
	gdb := dbtest.NewSQLite(t)
	seed(t, gdb)
	ledger := dao.NewLedgerDAO(gdb)
	ctx := context.Background()

	participant, record, err := ledger.ApplyPoints(ctx, dao.PointEntry{
		ParticipantID: "123456",
		Delta:         10,
		Reason:        strPtr("check-in"),
		AdminID:       strPtr("admin01"),
	})
	require.NoError(t, err)
	assert.Equal(t, 10, participant.Points)
	assert.Equal(t, 10, record.Points)
	assert.NotZero(t, record.ID)

	participant, _, err = ledger.ApplyPoints(ctx, dao.PointEntry{ParticipantID: "123456", Delta: -4})
	require.NoError(t, err)
	assert.Equal(t, 6, participant.Points)

	history, err := ledger.FindPointsHistory(ctx, "123456")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, 10, history[0].Points)
	assert.Equal(t, "check-in", *history[0].Reason)
	assert.Equal(t, "admin01", *history[0].AdminID)
	assert.Equal(t, -4, history[1].Points)
	assert.Nil(t, history[1].AdminID)
}

func TestLedgerDAO_ApplyPoints_Failures(t *testing.T) {
	tests := []struct {
		name  string
		entry dao.PointEntry
		want  error
	}{
		{
			name:  "overdraft",
			entry: dao.PointEntry{ParticipantID: "123456", Delta: -1},
			want:  dao.ErrInsufficientBalance,
		},
		{
			name:  "unknown participant",
			entry: dao.PointEntry{ParticipantID: "999999", Delta: 5},
			want:  dao.ErrParticipantNotFound,
		},
		{
			name:  "unknown admin",
			entry: dao.PointEntry{ParticipantID: "123456", Delta: 5, AdminID: strPtr("ghost")},
			want:  dao.ErrInvalidAdmin,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gdb := dbtest.NewSQLite(t)
			seed(t, gdb)
			ledger := dao.NewLedgerDAO(gdb)

			_, _, err := ledger.ApplyPoints(context.Background(), tt.entry)
			require.ErrorIs(t, err, tt.want)

			participant, err := dao.NewParticipantDAO(gdb).FindByID(context.Background(), "123456")
			require.NoError(t, err)
			assert.Equal(t, 0, participant.Points)

			history, err := ledger.FindPointsHistory(context.Background(), tt.entry.ParticipantID)
			require.NoError(t, err)
			assert.Empty(t, history)
		})
	}
}

func TestLedgerDAO_RedeemGift(t *testing.T) {
	gdb := dbtest.NewSQLite(t)
	seed(t, gdb)
	ledger := dao.NewLedgerDAO(gdb)
	ctx := context.Background()

	gift, record, err := ledger.RedeemGift(ctx, dao.GiftEntry{
		ParticipantID: "123456",
		GiftID:        1,
		Quantity:      2,
		Reason:        "resgate",
		ReceiptID:     "receipt-1",
		AdminID:       strPtr("admin01"),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, gift.Quantity)
	assert.Equal(t, "Caneca", gift.Name)
	assert.Equal(t, "receipt-1", record.ReceiptID)

	_, _, err = ledger.RedeemGift(ctx, dao.GiftEntry{
		ParticipantID: "123456",
		GiftID:        1,
		Quantity:      2,
		Reason:        "resgate",
		ReceiptID:     "receipt-2",
	})
	require.ErrorIs(t, err, dao.ErrInsufficientStock)

	history, err := ledger.FindGiftHistory(ctx, 1)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, 2, history[0].Quantity)
	assert.Equal(t, "resgate", history[0].Reason)
}

func TestLedgerDAO_RedeemGift_Failures(t *testing.T) {
	tests := []struct {
		name  string
		entry dao.GiftEntry
		want  error
	}{
		{
			name:  "unknown gift",
			entry: dao.GiftEntry{ParticipantID: "123456", GiftID: 42, Quantity: 1, Reason: "resgate", ReceiptID: "r"},
			want:  dao.ErrGiftNotFound,
		},
		{
			name:  "unknown participant",
			entry: dao.GiftEntry{ParticipantID: "999999", GiftID: 1, Quantity: 1, Reason: "resgate", ReceiptID: "r"},
			want:  dao.ErrParticipantNotFound,
		},
		{
			name:  "unknown admin",
			entry: dao.GiftEntry{ParticipantID: "123456", GiftID: 1, Quantity: 1, Reason: "resgate", ReceiptID: "r", AdminID: strPtr("ghost")},
			want:  dao.ErrInvalidAdmin,
		},
		{
			name:  "more than in stock",
			entry: dao.GiftEntry{ParticipantID: "123456", GiftID: 1, Quantity: 4, Reason: "resgate", ReceiptID: "r"},
			want:  dao.ErrInsufficientStock,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gdb := dbtest.NewSQLite(t)
			seed(t, gdb)
			ledger := dao.NewLedgerDAO(gdb)

			_, _, err := ledger.RedeemGift(context.Background(), tt.entry)
			require.ErrorIs(t, err, tt.want)

			gift, err := dao.NewGiftDAO(gdb).FindByID(context.Background(), 1)
			require.NoError(t, err)
			assert.Equal(t, 3, gift.Quantity)

			history, err := ledger.FindGiftHistory(context.Background(), 1)
			require.NoError(t, err)
			assert.Empty(t, history)
		})
	}
}
