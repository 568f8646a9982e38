package service_test

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/projeto-evento/evento-api/internal/domain"
	"github.com/projeto-evento/evento-api/internal/service"
)

func pointsSum(t *testing.T, f fixture, id string) int {
	t.Helper()

	history, err := f.participants.History(context.Background(), id)
	require.NoError(t, err)

	sum := 0
	for _, h := range history {
		sum += h.Points
	}

	return sum
}

func TestLedgerService_AdjustPoints(t *testing.T) {
	f := newFixture(t)
	f.mustParticipant(t, "123456")
	f.mustAdmin(t, "admin01")
	ctx := context.Background()

	participant, err := f.ledger.AdjustPoints(ctx, domain.PointAdjustment{
		ParticipantID: "123456",
		Delta:         50,
		Reason:        "check-in",
		AdminID:       "admin01",
	})
	require.NoError(t, err)
	assert.Equal(t, 50, participant.Points)

	participant, err = f.ledger.AdjustPoints(ctx, domain.PointAdjustment{ParticipantID: "123456", Delta: -20})
	require.NoError(t, err)
	assert.Equal(t, 30, participant.Points)

	history, err := f.participants.History(ctx, "123456")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "check-in", *history[0].Reason)
	assert.Equal(t, "admin01", *history[0].AdminID)
	assert.Nil(t, history[1].Reason)
	assert.Equal(t, participant.Points, pointsSum(t, f, "123456"))

	assert.Equal(t, []string{"adjust_points:success", "adjust_points:success"}, f.observer.calls)
}

func TestLedgerService_AdjustPoints_Errors(t *testing.T) {
	tests := []struct {
		name       string
		adjustment domain.PointAdjustment
		want       error
	}{
		{name: "zero delta", adjustment: domain.PointAdjustment{ParticipantID: "123456"}, want: service.ErrInvalidRequest},
		{name: "missing participant id", adjustment: domain.PointAdjustment{Delta: 5}, want: service.ErrInvalidRequest},
		{name: "unknown participant", adjustment: domain.PointAdjustment{ParticipantID: "999999", Delta: 5}, want: service.ErrParticipantNotFound},
		{name: "overdraft", adjustment: domain.PointAdjustment{ParticipantID: "123456", Delta: -11}, want: service.ErrInsufficientBalance},
		{name: "unknown admin", adjustment: domain.PointAdjustment{ParticipantID: "123456", Delta: 5, AdminID: "ghost"}, want: service.ErrInvalidAdmin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.mustParticipant(t, "123456")
			_, err := f.ledger.AdjustPoints(context.Background(), domain.PointAdjustment{ParticipantID: "123456", Delta: 10})
			require.NoError(t, err)

			_, err = f.ledger.AdjustPoints(context.Background(), tt.adjustment)
			require.ErrorIs(t, err, tt.want)

			participant, err := f.participants.Get(context.Background(), "123456")
			require.NoError(t, err)
			assert.Equal(t, 10, participant.Points)
			assert.Equal(t, 10, pointsSum(t, f, "123456"))
		})
	}
}

func TestLedgerService_RedeemPoints(t *testing.T) {
	f := newFixture(t)
	f.mustParticipant(t, "123456")
	f.mustAdmin(t, "admin01")
	ctx := context.Background()

	_, err := f.ledger.AdjustPoints(ctx, domain.PointAdjustment{ParticipantID: "123456", Delta: 40})
	require.NoError(t, err)

	participant, err := f.ledger.RedeemPoints(ctx, domain.PointRedemption{ParticipantID: "123456", Points: 15, AdminID: "admin01"})
	require.NoError(t, err)
	assert.Equal(t, 25, participant.Points)

	history, err := f.participants.History(ctx, "123456")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, -15, history[1].Points)
	assert.Equal(t, domain.ReasonPointRedemption, *history[1].Reason)

	_, err = f.ledger.RedeemPoints(ctx, domain.PointRedemption{ParticipantID: "123456", Points: 15})
	require.ErrorIs(t, err, service.ErrInvalidRequest)

	_, err = f.ledger.RedeemPoints(ctx, domain.PointRedemption{ParticipantID: "123456", Points: -5, AdminID: "admin01"})
	require.ErrorIs(t, err, service.ErrInvalidRequest)

	_, err = f.ledger.RedeemPoints(ctx, domain.PointRedemption{ParticipantID: "123456", Points: 26, AdminID: "admin01"})
	require.ErrorIs(t, err, service.ErrInsufficientBalance)

	_, err = f.ledger.RedeemPoints(ctx, domain.PointRedemption{ParticipantID: "123456", Points: 5, AdminID: "ghost"})
	require.ErrorIs(t, err, service.ErrInvalidAdmin)
}

func TestLedgerService_RedeemGift(t *testing.T) {
	f := newFixture(t)
	f.mustParticipant(t, "123456")
	gift := f.mustGift(t, "Camiseta", 5)
	ctx := context.Background()

	receipt, err := f.ledger.RedeemGift(ctx, domain.GiftRedemption{ParticipantID: "123456", GiftID: gift.ID, Quantity: 2})
	require.NoError(t, err)

	_, err = uuid.Parse(receipt.ID)
	require.NoError(t, err)
	assert.Equal(t, "123456", receipt.ParticipantID)
	assert.Equal(t, gift.ID, receipt.GiftID)
	assert.Equal(t, "Camiseta", receipt.GiftName)
	assert.Equal(t, 2, receipt.Quantity)
	assert.Equal(t, 3, receipt.RemainingStock)
	assert.False(t, receipt.RedeemedAt.IsZero())

	history, err := f.gifts.History(ctx, gift.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, receipt.ID, history[0].ReceiptID)
	assert.Equal(t, domain.ReasonGiftRedemption, history[0].Reason)
}

func TestLedgerService_RedeemGift_Errors(t *testing.T) {
	tests := []struct {
		name       string
		redemption domain.GiftRedemption
		want       error
	}{
		{name: "zero quantity", redemption: domain.GiftRedemption{ParticipantID: "123456", GiftID: 1}, want: service.ErrInvalidRequest},
		{name: "negative quantity", redemption: domain.GiftRedemption{ParticipantID: "123456", GiftID: 1, Quantity: -1}, want: service.ErrInvalidRequest},
		{name: "missing gift", redemption: domain.GiftRedemption{ParticipantID: "123456", Quantity: 1}, want: service.ErrInvalidRequest},
		{name: "unknown gift", redemption: domain.GiftRedemption{ParticipantID: "123456", GiftID: 77, Quantity: 1}, want: service.ErrGiftNotFound},
		{name: "unknown participant", redemption: domain.GiftRedemption{ParticipantID: "999999", GiftID: 1, Quantity: 1}, want: service.ErrParticipantNotFound},
		{name: "not enough stock", redemption: domain.GiftRedemption{ParticipantID: "123456", GiftID: 1, Quantity: 3}, want: service.ErrInsufficientStock},
		{name: "unknown admin", redemption: domain.GiftRedemption{ParticipantID: "123456", GiftID: 1, Quantity: 1, AdminID: "ghost"}, want: service.ErrInvalidAdmin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.mustParticipant(t, "123456")
			f.mustGift(t, "Boné", 2)

			_, err := f.ledger.RedeemGift(context.Background(), tt.redemption)
			require.ErrorIs(t, err, tt.want)

			gift, err := f.gifts.Get(context.Background(), 1)
			require.NoError(t, err)
			assert.Equal(t, 2, gift.Quantity)

			history, err := f.gifts.History(context.Background(), 1)
			require.NoError(t, err)
			assert.Empty(t, history)
		})
	}
}

func TestLedgerService_ConcurrentDebitsNeverOverdraw(t *testing.T) {
	f := newFixture(t)
	f.mustParticipant(t, "123456")
	ctx := context.Background()

	_, err := f.ledger.AdjustPoints(ctx, domain.PointAdjustment{ParticipantID: "123456", Delta: 100})
	require.NoError(t, err)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		accepted int
	)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			_, err := f.ledger.AdjustPoints(ctx, domain.PointAdjustment{ParticipantID: "123456", Delta: -30})
			if err != nil {
				assert.ErrorIs(t, err, service.ErrInsufficientBalance)
				return
			}

			mu.Lock()
			accepted++
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 3, accepted)

	participant, err := f.participants.Get(ctx, "123456")
	require.NoError(t, err)
	assert.Equal(t, 10, participant.Points)
	assert.Equal(t, 10, pointsSum(t, f, "123456"))
}

func TestOutcome(t *testing.T) {
	assert.Equal(t, "success", service.Outcome(nil))
	assert.Equal(t, "insufficient_funds", service.Outcome(service.ErrInsufficientBalance))
	assert.Equal(t, "insufficient_stock", service.Outcome(service.ErrInsufficientStock))
	assert.Equal(t, "not_found", service.Outcome(service.ErrGiftNotFound))
	assert.Equal(t, "timeout", service.Outcome(service.ErrTimeout))
	assert.Equal(t, "error", service.Outcome(assert.AnError))
}

func TestLedgerService_Scenarios(t *testing.T) {
	t.Run("points redemption", func(t *testing.T) {
		f := newFixture(t)
		f.mustParticipant(t, "123456")
		f.mustAdmin(t, "admin01")
		ctx := context.Background()

		_, err := f.ledger.AdjustPoints(ctx, domain.PointAdjustment{ParticipantID: "123456", Delta: 100})
		require.NoError(t, err)

		participant, err := f.ledger.RedeemPoints(ctx, domain.PointRedemption{ParticipantID: "123456", Points: 30, AdminID: "admin01"})
		require.NoError(t, err)
		assert.Equal(t, 70, participant.Points)

		_, err = f.ledger.RedeemPoints(ctx, domain.PointRedemption{ParticipantID: "123456", Points: 80, AdminID: "admin01"})
		require.ErrorIs(t, err, service.ErrInsufficientBalance)

		participant, err = f.participants.Get(ctx, "123456")
		require.NoError(t, err)
		assert.Equal(t, 70, participant.Points)

		history, err := f.participants.History(ctx, "123456")
		require.NoError(t, err)
		require.Len(t, history, 2)
		assert.Equal(t, -30, history[1].Points)
	})

	t.Run("gift redemption", func(t *testing.T) {
		f := newFixture(t)
		f.mustParticipant(t, "123456")
		gift := f.mustGift(t, "Garrafa", 5)
		ctx := context.Background()

		receipt, err := f.ledger.RedeemGift(ctx, domain.GiftRedemption{ParticipantID: "123456", GiftID: gift.ID, Quantity: 3})
		require.NoError(t, err)
		assert.Equal(t, 2, receipt.RemainingStock)

		_, err = f.ledger.RedeemGift(ctx, domain.GiftRedemption{ParticipantID: "123456", GiftID: gift.ID, Quantity: 3})
		require.ErrorIs(t, err, service.ErrInsufficientStock)

		stored, err := f.gifts.Get(ctx, gift.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, stored.Quantity)

		history, err := f.gifts.History(ctx, gift.ID)
		require.NoError(t, err)
		require.Len(t, history, 1)
		assert.Equal(t, 3, history[0].Quantity)
	})

	t.Run("balance equals history for any delta sequence", func(t *testing.T) {
		f := newFixture(t)
		f.mustParticipant(t, "123456")
		ctx := context.Background()

		balance := 0
		for _, delta := range []int{10, -3, 25, -40, -32, 7, -7, 1} {
			participant, err := f.ledger.AdjustPoints(ctx, domain.PointAdjustment{ParticipantID: "123456", Delta: delta})
			if balance+delta < 0 {
				require.ErrorIs(t, err, service.ErrInsufficientBalance)
				continue
			}
			require.NoError(t, err)
			balance += delta
			assert.Equal(t, balance, participant.Points)
		}

		assert.Equal(t, balance, pointsSum(t, f, "123456"))
	})
}
