package overview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wendyapp/admin-console-api/internal/domain"
)

func seedState() *StateStore {
	state := NewStateStore()

	state.SetSummary(domain.AdminSummary{
		TotalRevenue:   1500.0,
		MonthlyRevenue: 300.0,
		TotalOrders:    42,
		MonthlyOrders:  7,
	})

	state.SetPendingStores([]domain.StoreRecord{
		{ID: "s1", UserID: "u1", Name: "Pizzaria do Zé", ApprovalStatus: domain.ApprovalPending},
		{ID: "s2", UserID: "u2", Name: "Açaí da Praça", ApprovalStatus: domain.ApprovalPending},
	})

	state.SetAllStores([]domain.StoreRecord{
		{ID: "s1", UserID: "u1", Name: "Pizzaria do Zé", ApprovalStatus: domain.ApprovalPending},
		{ID: "s2", UserID: "u2", Name: "Açaí da Praça", ApprovalStatus: domain.ApprovalPending},
		{ID: "s3", UserID: "u3", Name: "Burguer Bom", ApprovalStatus: domain.ApprovalApproved, IsApproved: true, IsActive: true},
		{ID: "s4", UserID: "u4", Name: "Sushi Leve", ApprovalStatus: domain.ApprovalApproved, IsApproved: true, IsActive: false},
	})

	state.SetPendingDeliverers([]domain.DelivererRecord{
		{ID: "d1", UserID: "du1", UserName: "Carlos", ApprovalStatus: domain.ApprovalPending},
	})

	state.SetAllDeliverers([]domain.DelivererRecord{
		{ID: "d1", UserID: "du1", UserName: "Carlos", ApprovalStatus: domain.ApprovalPending},
		{ID: "d2", UserID: "du2", UserName: "Marina", ApprovalStatus: domain.ApprovalApproved, IsApproved: true},
	})

	return state
}

// Substituir uma fatia já rederiva os contadores: o estado final independe da
// ordem em que as buscas da sincronização completam.
func TestStateStore_CountersFollowListReplacement(t *testing.T) {
	state := seedState()

	snapshot := state.Snapshot()

	assert.Equal(t, 4, snapshot.Summary.TotalStores)
	assert.Equal(t, 1, snapshot.Summary.ActiveStores)
	assert.Equal(t, 2, snapshot.Summary.PendingStores)
	assert.Equal(t, 2, snapshot.Summary.TotalDeliverers)
	assert.Equal(t, 1, snapshot.Summary.ActiveDeliverers)

	// Do resumo do servidor sobrevivem receita e pedidos
	assert.Equal(t, 1500.0, snapshot.Summary.TotalRevenue)
	assert.Equal(t, 42, snapshot.Summary.TotalOrders)

	// Uma nova substituição ajusta os contadores na hora
	state.SetAllStores([]domain.StoreRecord{
		{ID: "s3", Name: "Burguer Bom", ApprovalStatus: domain.ApprovalApproved, IsApproved: true, IsActive: true},
	})
	assert.Equal(t, 1, state.Snapshot().Summary.TotalStores)
	assert.Equal(t, 1, state.Snapshot().Summary.ActiveStores)
}

func TestStateStore_MarkStoreApproved(t *testing.T) {
	state := seedState()

	state.MarkStoreApproved("s1")

	snapshot := state.Snapshot()

	// Sai da fila de pendentes
	assert.Len(t, snapshot.PendingStores, 1)
	assert.Equal(t, "s2", snapshot.PendingStores[0].ID)

	// A entrada da lista completa é atualizada
	for _, store := range snapshot.AllStores {
		if store.ID == "s1" {
			assert.Equal(t, domain.ApprovalApproved, store.ApprovalStatus)
			assert.True(t, store.IsActive)
		}
	}

	// Contadores rederivados das listas: s1 e s3 ativas, s2 pendente
	assert.Equal(t, 4, snapshot.Summary.TotalStores)
	assert.Equal(t, 2, snapshot.Summary.ActiveStores)
	assert.Equal(t, 1, snapshot.Summary.PendingStores)
}

func TestStateStore_MarkStoreRejected(t *testing.T) {
	state := seedState()

	state.MarkStoreRejected("s2")

	snapshot := state.Snapshot()

	assert.Len(t, snapshot.PendingStores, 1)
	assert.Equal(t, 1, snapshot.Summary.PendingStores)
	// Rejeição não mexe no contador de ativas
	assert.Equal(t, 1, snapshot.Summary.ActiveStores)
}

func TestStateStore_MarkDelivererApproved(t *testing.T) {
	state := seedState()

	state.MarkDelivererApproved("d1")

	snapshot := state.Snapshot()

	assert.Empty(t, snapshot.PendingDeliverers)
	assert.Equal(t, 2, snapshot.Summary.TotalDeliverers)
	assert.Equal(t, 2, snapshot.Summary.ActiveDeliverers)
}

// Deltas fixos decrementariam o contador de ativos em toda exclusão, mesmo
// quando o usuário excluído já estava inativo. Derivando das listas, excluir
// uma loja inativa não pode alterar o contador de ativas.
func TestStateStore_RemoveInactiveStoreKeepsActiveCount(t *testing.T) {
	state := seedState()

	before := state.Snapshot().Summary.ActiveStores

	// s4 está aprovada porém inativa
	state.RemoveStoreUser("u4")

	snapshot := state.Snapshot()

	assert.Equal(t, before, snapshot.Summary.ActiveStores)
	assert.Equal(t, 3, snapshot.Summary.TotalStores)
}

func TestStateStore_RemoveActiveStoreUser(t *testing.T) {
	state := seedState()

	state.RemoveStoreUser("u3")

	snapshot := state.Snapshot()

	assert.Equal(t, 3, snapshot.Summary.TotalStores)
	assert.Equal(t, 0, snapshot.Summary.ActiveStores)
}

func TestStateStore_MutationsKeepRevenueAndOrders(t *testing.T) {
	state := seedState()

	state.MarkStoreApproved("s1")
	state.RemoveDelivererUser("du2")

	snapshot := state.Snapshot()

	// Receita e pedidos só mudam em nova sincronização do resumo
	assert.Equal(t, 1500.0, snapshot.Summary.TotalRevenue)
	assert.Equal(t, 300.0, snapshot.Summary.MonthlyRevenue)
	assert.Equal(t, 42, snapshot.Summary.TotalOrders)
	assert.Equal(t, 7, snapshot.Summary.MonthlyOrders)
}

func TestStateStore_SnapshotIsACopy(t *testing.T) {
	state := seedState()

	snapshot := state.Snapshot()
	snapshot.PendingStores[0].Name = "alterado"

	assert.Equal(t, "Pizzaria do Zé", state.Snapshot().PendingStores[0].Name)
}
