package overview

import (
	"sync"
	"time"

	"github.com/wendyapp/admin-console-api/internal/domain"
)

// StateStore guarda o estado em memória do dashboard: o resumo agregado e as
// listas vindas da plataforma. Fatias são substituídas por inteiro a cada
// sincronização; mutações locais (aprovar, rejeitar, excluir) aplicam patches
// pontuais. Os contadores de lojas e entregadores são sempre rederivados das
// listas, tanto após patches quanto após substituições, nunca por deltas
// fixos; do resumo do servidor só permanecem receita e pedidos.
type StateStore struct {
	mu sync.RWMutex

	summary           domain.AdminSummary
	pendingStores     []domain.StoreRecord
	pendingDeliverers []domain.DelivererRecord
	allStores         []domain.StoreRecord
	allDeliverers     []domain.DelivererRecord
	cities            []domain.City
	categories        []domain.Category

	lastSyncAt time.Time
}

// Snapshot é a visão imutável do estado, devolvida para renderização.
type Snapshot struct {
	Summary           domain.AdminSummary      `json:"summary"`
	PendingStores     []domain.StoreRecord     `json:"pending_stores"`
	PendingDeliverers []domain.DelivererRecord `json:"pending_deliverers"`
	AllStores         []domain.StoreRecord     `json:"all_stores"`
	AllDeliverers     []domain.DelivererRecord `json:"all_deliverers"`
	Cities            []domain.City            `json:"cities"`
	Categories        []domain.Category        `json:"categories"`
	LastSyncAt        time.Time                `json:"last_sync_at"`
}

func NewStateStore() *StateStore {
	return &StateStore{}
}

func (s *StateStore) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Snapshot{
		Summary:           s.summary,
		PendingStores:     append([]domain.StoreRecord(nil), s.pendingStores...),
		PendingDeliverers: append([]domain.DelivererRecord(nil), s.pendingDeliverers...),
		AllStores:         append([]domain.StoreRecord(nil), s.allStores...),
		AllDeliverers:     append([]domain.DelivererRecord(nil), s.allDeliverers...),
		Cities:            append([]domain.City(nil), s.cities...),
		Categories:        append([]domain.Category(nil), s.categories...),
		LastSyncAt:        s.lastSyncAt,
	}
}

// Substituições por inteiro, usadas pela sincronização. Cada uma escreve uma
// fatia disjunta e rederiva os contadores, então as sete buscas podem
// completar em qualquer ordem sem mudar o resultado final.

func (s *StateStore) SetSummary(summary domain.AdminSummary) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.summary = summary
	s.recomputeCounters()
}

func (s *StateStore) SetPendingStores(stores []domain.StoreRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pendingStores = stores
	s.recomputeCounters()
}

func (s *StateStore) SetPendingDeliverers(deliverers []domain.DelivererRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pendingDeliverers = deliverers
	s.recomputeCounters()
}

func (s *StateStore) SetAllStores(stores []domain.StoreRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.allStores = stores
	s.recomputeCounters()
}

func (s *StateStore) SetAllDeliverers(deliverers []domain.DelivererRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.allDeliverers = deliverers
	s.recomputeCounters()
}

func (s *StateStore) SetCities(cities []domain.City) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cities = cities
}

func (s *StateStore) SetCategories(categories []domain.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories = categories
}

func (s *StateStore) MarkSynced(at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSyncAt = at
}

// Mutações locais aplicadas após resposta 2xx da plataforma. O patch é tratado
// como autoritativo até a próxima sincronização completa.

// MarkStoreApproved remove a loja da lista de pendentes e marca a entrada
// correspondente em allStores como aprovada e ativa.
func (s *StateStore) MarkStoreApproved(storeID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pendingStores = removeStore(s.pendingStores, storeID)
	for i := range s.allStores {
		if s.allStores[i].ID == storeID {
			s.allStores[i].ApprovalStatus = domain.ApprovalApproved
			s.allStores[i].IsApproved = true
			s.allStores[i].IsActive = true
		}
	}

	s.recomputeCounters()
}

func (s *StateStore) MarkStoreRejected(storeID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pendingStores = removeStore(s.pendingStores, storeID)
	for i := range s.allStores {
		if s.allStores[i].ID == storeID {
			s.allStores[i].ApprovalStatus = domain.ApprovalRejected
			s.allStores[i].IsApproved = false
		}
	}

	s.recomputeCounters()
}

func (s *StateStore) MarkDelivererApproved(delivererID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pendingDeliverers = removeDeliverer(s.pendingDeliverers, delivererID)
	for i := range s.allDeliverers {
		if s.allDeliverers[i].ID == delivererID {
			s.allDeliverers[i].ApprovalStatus = domain.ApprovalApproved
			s.allDeliverers[i].IsApproved = true
		}
	}

	s.recomputeCounters()
}

func (s *StateStore) MarkDelivererRejected(delivererID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pendingDeliverers = removeDeliverer(s.pendingDeliverers, delivererID)
	for i := range s.allDeliverers {
		if s.allDeliverers[i].ID == delivererID {
			s.allDeliverers[i].ApprovalStatus = domain.ApprovalRejected
			s.allDeliverers[i].IsApproved = false
		}
	}

	s.recomputeCounters()
}

// RemoveStoreUser exclui a loja do usuário informado da lista completa.
func (s *StateStore) RemoveStoreUser(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := s.allStores[:0]
	for _, store := range s.allStores {
		if store.UserID != userID {
			filtered = append(filtered, store)
		}
	}
	s.allStores = filtered

	s.recomputeCounters()
}

// RemoveDelivererUser exclui o entregador do usuário informado da lista
// completa.
func (s *StateStore) RemoveDelivererUser(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := s.allDeliverers[:0]
	for _, deliverer := range s.allDeliverers {
		if deliverer.UserID != userID {
			filtered = append(filtered, deliverer)
		}
	}
	s.allDeliverers = filtered

	s.recomputeCounters()
}

// recomputeCounters rederiva os contadores de lojas e entregadores a partir
// das listas. Deltas fixos derivam entre sincronizações e, na exclusão,
// decrementariam o contador de ativos mesmo para usuários já inativos;
// derivar dos dados elimina as duas fontes de deriva. Receita e pedidos vêm
// exclusivamente do resumo do servidor e não são tocados aqui. Deve ser
// chamado com o lock de escrita.
func (s *StateStore) recomputeCounters() {
	s.summary.TotalStores = len(s.allStores)
	s.summary.PendingStores = len(s.pendingStores)

	activeStores := 0
	for _, store := range s.allStores {
		if store.IsActive {
			activeStores++
		}
	}
	s.summary.ActiveStores = activeStores

	s.summary.TotalDeliverers = len(s.allDeliverers)

	activeDeliverers := 0
	for _, deliverer := range s.allDeliverers {
		if deliverer.IsApproved {
			activeDeliverers++
		}
	}
	s.summary.ActiveDeliverers = activeDeliverers
}

func removeStore(stores []domain.StoreRecord, storeID string) []domain.StoreRecord {
	filtered := stores[:0]
	for _, store := range stores {
		if store.ID != storeID {
			filtered = append(filtered, store)
		}
	}
	return filtered
}

func removeDeliverer(deliverers []domain.DelivererRecord, delivererID string) []domain.DelivererRecord {
	filtered := deliverers[:0]
	for _, deliverer := range deliverers {
		if deliverer.ID != delivererID {
			filtered = append(filtered, deliverer)
		}
	}
	return filtered
}
