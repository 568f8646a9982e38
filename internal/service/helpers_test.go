package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/projeto-evento/evento-api/internal/db/dbtest"
	"github.com/projeto-evento/evento-api/internal/domain"
	"github.com/projeto-evento/evento-api/internal/repository"
	"github.com/projeto-evento/evento-api/internal/repository/dao"
	"github.com/projeto-evento/evento-api/internal/service"
)

var testPolicy = service.QueryPolicy{Timeout: 5 * time.Second, ReadAttempts: 2}

type fixture struct {
	db           *gorm.DB
	ledger       *service.LedgerService
	participants *service.ParticipantService
	gifts        *service.GiftService
	auth         *service.AuthService
	observer     *recordingObserver
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	gdb := dbtest.NewSQLite(t)
	userRepo := repository.NewUserRepository(dao.NewUserDAO(gdb))
	participantRepo := repository.NewParticipantRepository(dao.NewParticipantDAO(gdb))
	giftRepo := repository.NewGiftRepository(dao.NewGiftDAO(gdb))
	ledgerRepo := repository.NewLedgerRepository(dao.NewLedgerDAO(gdb))
	observer := &recordingObserver{}

	return fixture{
		db:           gdb,
		ledger:       service.NewLedgerService(ledgerRepo, testPolicy, observer),
		participants: service.NewParticipantService(participantRepo, ledgerRepo, testPolicy),
		gifts:        service.NewGiftService(giftRepo, ledgerRepo, testPolicy),
		auth:         service.NewAuthService(userRepo, testPolicy),
		observer:     observer,
	}
}

func (f fixture) mustParticipant(t *testing.T, id string) domain.Participant {
	t.Helper()

	p, err := f.participants.Register(context.Background(), domain.Participant{ID: id, Name: "Participante " + id})
	require.NoError(t, err)

	return p
}

func (f fixture) mustGift(t *testing.T, name string, quantity int) domain.Gift {
	t.Helper()

	g, err := f.gifts.Create(context.Background(), domain.Gift{Name: name, Quantity: quantity})
	require.NoError(t, err)

	return g
}

func (f fixture) mustAdmin(t *testing.T, id string) domain.User {
	t.Helper()

	u, err := f.auth.CreateUser(context.Background(), domain.User{ID: id, Name: "Admin " + id, Password: "senha1234"})
	require.NoError(t, err)

	return u
}

type recordingObserver struct {
	mu    sync.Mutex
	calls []string
}

func (o *recordingObserver) ObserveLedgerOperation(operation, outcome string) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.calls = append(o.calls, operation+":"+outcome)
}
