package scheduler

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/stretchr/testify/assert"
	"github.com/wendyapp/admin-console-api/infrastructure/integrator/platform/mocks"
	"github.com/wendyapp/admin-console-api/internal/domain"
	"go.uber.org/mock/gomock"
)

type stubSessions struct {
	sess domain.Session
	err  error
}

func (s stubSessions) Current() (domain.Session, error) {
	return s.sess, s.err
}

func snapshotFixture(online int) *domain.TrackingSnapshot {
	return &domain.TrackingSnapshot{
		Deliverers: []domain.DelivererLocation{
			{DelivererID: "d1", Name: "Carlos", Status: domain.DelivererAvailable},
		},
		Statistics: domain.TrackingStatistics{
			TotalApproved: 5,
			Online:        online,
			Available:     1,
		},
		LastUpdate: time.Now(),
	}
}

func newTrackingService(t *testing.T, sessions SessionProvider) (*TrackingSyncService, *mocks.MockClient) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockClient := mocks.NewMockClient(ctrl)

	service := &TrackingSyncService{
		scheduler: gocron.NewScheduler(time.Local),
		config: TrackingSyncConfig{
			IntervalSeconds: 30,
			SyncEnabled:     true,
		},
		client:   mockClient,
		sessions: sessions,
	}

	return service, mockClient
}

func TestTrackingSyncService_SyncOnce(t *testing.T) {
	sess := domain.Session{Token: "admin-token-simulado"}
	service, mockClient := newTrackingService(t, stubSessions{sess: sess})

	mockClient.EXPECT().GetDelivererLocations(gomock.Any(), sess).Return(snapshotFixture(3), nil)

	service.syncOnce()

	snapshot, ready := service.Snapshot()

	assert.True(t, ready)
	assert.Len(t, snapshot.Deliverers, 1)
	assert.Equal(t, 3, snapshot.Statistics.Online)
}

// Falha de rede preserva o último retrato válido.
func TestTrackingSyncService_SyncFailureKeepsLastSnapshot(t *testing.T) {
	sess := domain.Session{Token: "admin-token-simulado"}
	service, mockClient := newTrackingService(t, stubSessions{sess: sess})

	mockClient.EXPECT().GetDelivererLocations(gomock.Any(), sess).Return(snapshotFixture(4), nil)
	service.syncOnce()

	mockClient.EXPECT().GetDelivererLocations(gomock.Any(), sess).Return(nil, errors.New("timeout"))
	service.syncOnce()

	snapshot, ready := service.Snapshot()

	assert.True(t, ready)
	assert.Equal(t, 4, snapshot.Statistics.Online)
}

// Sem sessão ativa, a rodada é ignorada sem tocar a plataforma.
func TestTrackingSyncService_SyncSkippedWithoutSession(t *testing.T) {
	service, _ := newTrackingService(t, stubSessions{err: errors.New("sessão inativa")})

	service.syncOnce()

	_, ready := service.Snapshot()
	assert.False(t, ready)
}

func TestTrackingSyncService_SetPolling(t *testing.T) {
	sess := domain.Session{Token: "admin-token-simulado"}
	service, _ := newTrackingService(t, stubSessions{sess: sess})

	assert.False(t, service.PollingEnabled())

	assert.NoError(t, service.SetPolling(true))
	assert.True(t, service.PollingEnabled())
	assert.Equal(t, 1, service.scheduler.Len())

	// Ligar de novo é idempotente
	assert.NoError(t, service.SetPolling(true))
	assert.Equal(t, 1, service.scheduler.Len())

	assert.NoError(t, service.SetPolling(false))
	assert.False(t, service.PollingEnabled())
	assert.Equal(t, 0, service.scheduler.Len())
}

func TestTrackingSyncService_GetStatus(t *testing.T) {
	sess := domain.Session{Token: "admin-token-simulado"}
	service, mockClient := newTrackingService(t, stubSessions{sess: sess})

	mockClient.EXPECT().GetDelivererLocations(gomock.Any(), sess).Return(snapshotFixture(2), nil)
	service.syncOnce()

	status := service.GetStatus()

	assert.Equal(t, false, status["polling_enabled"])
	assert.Equal(t, 30, status["interval_seconds"])
	assert.NotEqual(t, time.Time{}, status["last_sync_completed_at"])
}

// Leituras de status concorrentes com rodadas de sincronização. Os carimbos de
// início e fim são protegidos pelo mesmo mutex do retrato; o detector de
// corrida acusa qualquer escrita desprotegida.
func TestTrackingSyncService_GetStatusConcurrentWithSync(t *testing.T) {
	sess := domain.Session{Token: "admin-token-simulado"}
	service, mockClient := newTrackingService(t, stubSessions{sess: sess})

	mockClient.EXPECT().GetDelivererLocations(gomock.Any(), sess).
		Return(snapshotFixture(1), nil).AnyTimes()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			service.syncOnce()
		}
	}()

	for i := 0; i < 50; i++ {
		service.GetStatus()
	}
	wg.Wait()

	status := service.GetStatus()
	assert.NotEqual(t, time.Time{}, status["last_sync_completed_at"])
}
