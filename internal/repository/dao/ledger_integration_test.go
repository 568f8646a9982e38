//go:build integration

package dao_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/projeto-evento/evento-api/internal/db"
	"github.com/projeto-evento/evento-api/internal/repository/dao"
)

func newPostgres(t *testing.T) *gorm.DB {
	t.Helper()

	pool, err := dockertest.NewPool("")
	require.NoError(t, err)
	require.NoError(t, pool.Client.Ping())

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=postgres",
			"POSTGRES_PASSWORD=secret",
			"POSTGRES_DB=evento",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = pool.Purge(resource)
	})
	require.NoError(t, resource.Expire(120))

	dsn := fmt.Sprintf("postgres://postgres:secret@%s/evento?sslmode=disable", resource.GetHostPort("5432/tcp"))

	var gdb *gorm.DB
	pool.MaxWait = 60 * time.Second
	require.NoError(t, pool.Retry(func() error {
		var err error
		gdb, err = db.OpenPostgresWithURL(dsn)
		if err != nil {
			return err
		}

		sqlDB, err := gdb.DB()
		if err != nil {
			return err
		}

		return sqlDB.Ping()
	}))

	require.NoError(t, dao.InitTables(gdb))

	return gdb
}

func TestLedgerDAO_Postgres_ConcurrentDebits(t *testing.T) {
	gdb := newPostgres(t)
	seed(t, gdb)

	ledger := dao.NewLedgerDAO(gdb)
	ctx := context.Background()

	_, _, err := ledger.ApplyPoints(ctx, dao.PointEntry{ParticipantID: "123456", Delta: 100})
	require.NoError(t, err)

	const debits = 20
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
	)
	for i := 0; i < debits; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			_, _, err := ledger.ApplyPoints(ctx, dao.PointEntry{ParticipantID: "123456", Delta: -30})
			if err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
				return
			}
			assert.ErrorIs(t, err, dao.ErrInsufficientBalance)
		}()
	}
	wg.Wait()

	assert.Equal(t, 3, succeeded)

	participant, err := dao.NewParticipantDAO(gdb).FindByID(ctx, "123456")
	require.NoError(t, err)
	assert.Equal(t, 10, participant.Points)

	history, err := ledger.FindPointsHistory(ctx, "123456")
	require.NoError(t, err)
	sum := 0
	for _, h := range history {
		sum += h.Points
	}
	assert.Equal(t, participant.Points, sum)
}

func TestLedgerDAO_Postgres_ConcurrentRedemptions(t *testing.T) {
	gdb := newPostgres(t)
	seed(t, gdb)

	ledger := dao.NewLedgerDAO(gdb)
	ctx := context.Background()

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
	)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			_, _, err := ledger.RedeemGift(ctx, dao.GiftEntry{
				ParticipantID: "123456",
				GiftID:        1,
				Quantity:      1,
				Reason:        "resgate",
				ReceiptID:     fmt.Sprintf("receipt-%d", i),
			})
			if err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
				return
			}
			assert.ErrorIs(t, err, dao.ErrInsufficientStock)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 3, succeeded)

	gift, err := dao.NewGiftDAO(gdb).FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, gift.Quantity)
}
