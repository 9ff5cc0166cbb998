package overview

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/wendyapp/admin-console-api/infrastructure/integrator/platform/platformclient"
	"github.com/wendyapp/admin-console-api/internal/domain"
)

// Overviewer sincroniza o estado do dashboard com a plataforma e expõe a visão
// corrente para os handlers.
type Overviewer interface {
	Sync(ctx context.Context, sess domain.Session)
	Snapshot() Snapshot
	State() *StateStore
}

type OverviewService struct {
	client platformclient.Client
	state  *StateStore
}

func NewOverviewService(client platformclient.Client, state *StateStore) *OverviewService {
	return &OverviewService{
		client: client,
		state:  state,
	}
}

// Sync dispara as sete buscas da plataforma em paralelo e grava cada resultado
// no estado conforme chega. Cada busca falha de forma independente: um erro é
// registrado e a fatia correspondente mantém o último valor conhecido, sem
// derrubar as demais. Como os contadores são rederivados das listas a cada
// gravação, o estado final não depende da ordem em que as buscas completam.
// Do resumo do servidor só entram receita e pedidos.
func (s *OverviewService) Sync(ctx context.Context, sess domain.Session) {
	var wg sync.WaitGroup

	wg.Add(7)

	go func() {
		defer wg.Done()
		summary, err := s.client.GetDashboardSummary(ctx, sess)
		if err != nil {
			logrus.WithError(err).Error("Erro ao buscar resumo do dashboard")
			return
		}
		s.state.SetSummary(domain.AdminSummary{
			TotalRevenue:   summary.Revenue.Total,
			MonthlyRevenue: summary.Revenue.Monthly,
			TotalOrders:    summary.Orders.Total,
			MonthlyOrders:  summary.Orders.Monthly,
		})
	}()

	go func() {
		defer wg.Done()
		stores, err := s.client.GetPendingStores(ctx, sess)
		if err != nil {
			logrus.WithError(err).Error("Erro ao buscar lojas pendentes")
			return
		}
		s.state.SetPendingStores(stores)
	}()

	go func() {
		defer wg.Done()
		deliverers, err := s.client.GetPendingDeliverers(ctx, sess)
		if err != nil {
			logrus.WithError(err).Error("Erro ao buscar entregadores pendentes")
			return
		}
		s.state.SetPendingDeliverers(deliverers)
	}()

	go func() {
		defer wg.Done()
		stores, err := s.client.GetStores(ctx, sess)
		if err != nil {
			logrus.WithError(err).Error("Erro ao buscar lista completa de lojas")
			return
		}
		s.state.SetAllStores(stores)
	}()

	go func() {
		defer wg.Done()
		deliverers, err := s.client.GetDeliverers(ctx, sess)
		if err != nil {
			logrus.WithError(err).Error("Erro ao buscar lista completa de entregadores")
			return
		}
		s.state.SetAllDeliverers(deliverers)
	}()

	go func() {
		defer wg.Done()
		cities, err := s.client.GetCities(ctx, sess)
		if err != nil {
			logrus.WithError(err).Error("Erro ao buscar cidades")
			return
		}
		s.state.SetCities(cities)
	}()

	go func() {
		defer wg.Done()
		categories, err := s.client.GetCategories(ctx, sess)
		if err != nil {
			logrus.WithError(err).Error("Erro ao buscar categorias")
			return
		}
		s.state.SetCategories(categories)
	}()

	wg.Wait()

	s.state.MarkSynced(time.Now())

	logrus.Info("Sincronização do dashboard concluída")
}

func (s *OverviewService) Snapshot() Snapshot {
	return s.state.Snapshot()
}

func (s *OverviewService) State() *StateStore {
	return s.state
}
