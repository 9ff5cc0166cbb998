package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/wendyapp/admin-console-api/infrastructure/integrator/platform/platformclient"
	"github.com/wendyapp/admin-console-api/internal/config"
	"github.com/wendyapp/admin-console-api/internal/domain"
)

const trackingJobTag = "tracking-sync"

// SessionProvider entrega a sessão ativa com a plataforma. Ticks disparados
// sem sessão ativa são ignorados.
type SessionProvider interface {
	Current() (domain.Session, error)
}

// TrackingSyncConfig representa a configuração do agendador de rastreamento
type TrackingSyncConfig struct {
	IntervalSeconds int
	SyncEnabled     bool
}

// TrackingSyncService mantém a posição dos entregadores atualizada. Um job
// periódico busca o retrato completo no serviço de geolocalização e o
// substitui em memória; em falha, o último retrato válido é preservado.
type TrackingSyncService struct {
	scheduler *gocron.Scheduler
	config    TrackingSyncConfig
	client    platformclient.Client
	sessions  SessionProvider

	syncRunning bool
	syncMutex   sync.Mutex

	stateMutex          sync.RWMutex
	snapshot            domain.TrackingSnapshot
	hasSnapshot         bool
	pollingEnabled      bool
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewTrackingSyncService cria uma nova instância do serviço de rastreamento
func NewTrackingSyncService(
	client platformclient.Client,
	sessions SessionProvider,
	appConfig *config.Config,
) *TrackingSyncService {
	trackingConfig := TrackingSyncConfig{
		IntervalSeconds: appConfig.TrackingSync.IntervalSeconds,
		SyncEnabled:     appConfig.TrackingSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"interval_seconds": trackingConfig.IntervalSeconds,
		"sync_enabled":     trackingConfig.SyncEnabled,
	}).Info("Configuração do agendador de rastreamento carregada")

	return &TrackingSyncService{
		scheduler:   scheduler,
		config:      trackingConfig,
		client:      client,
		sessions:    sessions,
		syncRunning: false,
	}
}

// Start inicia o agendador. Uma busca inicial é disparada de imediato para o
// painel não abrir vazio; o polling periódico só entra se habilitado por
// configuração.
func (s *TrackingSyncService) Start(ctx context.Context) error {
	go s.syncOnce()

	if s.config.SyncEnabled {
		if err := s.scheduleJob(); err != nil {
			return err
		}
	} else {
		logrus.Info("Polling de rastreamento desabilitado por configuração")
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de rastreamento")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *TrackingSyncService) scheduleJob() error {
	_, err := s.scheduler.Every(s.config.IntervalSeconds).Seconds().Tag(trackingJobTag).Do(func() {
		s.syncOnce()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de rastreamento: %w", err)
	}

	s.stateMutex.Lock()
	s.pollingEnabled = true
	s.stateMutex.Unlock()

	logrus.WithField("interval_seconds", s.config.IntervalSeconds).Info("Polling de rastreamento agendado")

	return nil
}

// SetPolling liga ou desliga o polling periódico em tempo de execução. A
// busca manual continua disponível com o polling desligado.
func (s *TrackingSyncService) SetPolling(enabled bool) error {
	s.stateMutex.RLock()
	current := s.pollingEnabled
	s.stateMutex.RUnlock()

	if enabled == current {
		return nil
	}

	if enabled {
		return s.scheduleJob()
	}

	if err := s.scheduler.RemoveByTag(trackingJobTag); err != nil {
		return fmt.Errorf("erro ao remover job de rastreamento: %w", err)
	}

	s.stateMutex.Lock()
	s.pollingEnabled = false
	s.stateMutex.Unlock()

	logrus.Info("Polling de rastreamento desligado")

	return nil
}

// syncOnce executa uma rodada de sincronização. Rodadas sobrepostas são
// descartadas; a cadência do polling não é alterada por execuções manuais.
func (s *TrackingSyncService) syncOnce() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de rastreamento já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	s.stateMutex.Lock()
	s.lastSyncStartedAt = time.Now()
	s.stateMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	sess, err := s.sessions.Current()
	if err != nil {
		logrus.WithError(err).Debug("Rastreamento ignorado: sessão com a plataforma inativa")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 25*time.Second)
	defer cancel()

	snapshot, err := s.client.GetDelivererLocations(ctx, sess)
	if err != nil {
		// Mantém o último retrato válido até a próxima rodada
		logrus.WithError(err).Error("Erro ao buscar posições dos entregadores")
		return
	}

	s.stateMutex.Lock()
	s.snapshot = *snapshot
	s.hasSnapshot = true
	s.lastSyncCompletedAt = time.Now()
	s.stateMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"deliverers": len(snapshot.Deliverers),
		"online":     snapshot.Statistics.Online,
	}).Debug("Retrato de rastreamento atualizado")
}

// TriggerManualSync inicia manualmente uma rodada de sincronização
func (s *TrackingSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de rastreamento já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de rastreamento")
	go s.syncOnce()
}

// Snapshot devolve o último retrato válido. O booleano indica se alguma
// rodada já completou com sucesso.
func (s *TrackingSyncService) Snapshot() (domain.TrackingSnapshot, bool) {
	s.stateMutex.RLock()
	defer s.stateMutex.RUnlock()
	return s.snapshot, s.hasSnapshot
}

// PollingEnabled informa se o job periódico está agendado.
func (s *TrackingSyncService) PollingEnabled() bool {
	s.stateMutex.RLock()
	defer s.stateMutex.RUnlock()
	return s.pollingEnabled
}

// GetStatus retorna o status atual do agendador
func (s *TrackingSyncService) GetStatus() map[string]any {
	s.stateMutex.RLock()
	defer s.stateMutex.RUnlock()

	return map[string]any{
		"polling_enabled":        s.pollingEnabled,
		"interval_seconds":       s.config.IntervalSeconds,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
