package overview

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	platformdomain "github.com/wendyapp/admin-console-api/infrastructure/integrator/platform/domain"
	"github.com/wendyapp/admin-console-api/infrastructure/integrator/platform/mocks"
	"github.com/wendyapp/admin-console-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func testSession() domain.Session {
	return domain.Session{Token: "admin-token-simulado"}
}

func dashboardFixture() *platformdomain.DashboardSummary {
	summary := &platformdomain.DashboardSummary{}
	summary.Stores.Total = 10
	summary.Stores.Active = 6
	summary.Stores.Pending = 2
	summary.Deliverers.Total = 5
	summary.Deliverers.Active = 3
	summary.Revenue.Total = 9000.0
	summary.Revenue.Monthly = 1200.0
	summary.Orders.Total = 320
	summary.Orders.Monthly = 40
	return summary
}

func TestOverviewService_Sync(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	state := NewStateStore()
	service := NewOverviewService(mockClient, state)

	sess := testSession()

	mockClient.EXPECT().GetDashboardSummary(gomock.Any(), sess).Return(dashboardFixture(), nil)
	mockClient.EXPECT().GetPendingStores(gomock.Any(), sess).Return([]domain.StoreRecord{
		{ID: "s1", Name: "Pizzaria do Zé"},
	}, nil)
	mockClient.EXPECT().GetPendingDeliverers(gomock.Any(), sess).Return([]domain.DelivererRecord{
		{ID: "d1", UserName: "Carlos"},
	}, nil)
	mockClient.EXPECT().GetStores(gomock.Any(), sess).Return([]domain.StoreRecord{
		{ID: "s1"}, {ID: "s2"},
	}, nil)
	mockClient.EXPECT().GetDeliverers(gomock.Any(), sess).Return([]domain.DelivererRecord{
		{ID: "d1"}, {ID: "d2"},
	}, nil)
	mockClient.EXPECT().GetCities(gomock.Any(), sess).Return([]domain.City{
		{ID: "c1", Name: "Maceió"},
	}, nil)
	mockClient.EXPECT().GetCategories(gomock.Any(), sess).Return([]domain.Category{
		{ID: "cat1", Name: "Pizzaria"},
	}, nil)

	service.Sync(context.Background(), sess)

	snapshot := service.Snapshot()

	// Contadores derivam das listas, não do resumo do servidor; do resumo
	// ficam receita e pedidos
	assert.Equal(t, 2, snapshot.Summary.TotalStores)
	assert.Equal(t, 2, snapshot.Summary.TotalDeliverers)
	assert.Equal(t, 1200.0, snapshot.Summary.MonthlyRevenue)
	assert.Len(t, snapshot.PendingStores, 1)
	assert.Len(t, snapshot.PendingDeliverers, 1)
	assert.Len(t, snapshot.AllStores, 2)
	assert.Len(t, snapshot.AllDeliverers, 2)
	assert.Len(t, snapshot.Cities, 1)
	assert.Len(t, snapshot.Categories, 1)
	assert.False(t, snapshot.LastSyncAt.IsZero())
}

// Uma busca que falha não pode derrubar as demais nem apagar o valor anterior
// da própria fatia.
func TestOverviewService_SyncPartialFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	state := NewStateStore()
	service := NewOverviewService(mockClient, state)

	state.SetCities([]domain.City{{ID: "c1", Name: "Maceió"}})

	sess := testSession()
	bomb := errors.New("gateway timeout")

	mockClient.EXPECT().GetDashboardSummary(gomock.Any(), sess).Return(dashboardFixture(), nil)
	mockClient.EXPECT().GetPendingStores(gomock.Any(), sess).Return(nil, bomb)
	mockClient.EXPECT().GetPendingDeliverers(gomock.Any(), sess).Return([]domain.DelivererRecord{{ID: "d1"}}, nil)
	mockClient.EXPECT().GetStores(gomock.Any(), sess).Return([]domain.StoreRecord{{ID: "s1"}}, nil)
	mockClient.EXPECT().GetDeliverers(gomock.Any(), sess).Return(nil, bomb)
	mockClient.EXPECT().GetCities(gomock.Any(), sess).Return(nil, bomb)
	mockClient.EXPECT().GetCategories(gomock.Any(), sess).Return([]domain.Category{{ID: "cat1"}}, nil)

	service.Sync(context.Background(), sess)

	snapshot := service.Snapshot()

	// As buscas que completaram foram aplicadas
	assert.Equal(t, 1, snapshot.Summary.TotalStores)
	assert.Equal(t, 1200.0, snapshot.Summary.MonthlyRevenue)
	assert.Len(t, snapshot.AllStores, 1)
	assert.Len(t, snapshot.Categories, 1)

	// A fatia que falhou mantém o último valor conhecido
	assert.Len(t, snapshot.Cities, 1)
	assert.Equal(t, "Maceió", snapshot.Cities[0].Name)
	assert.Empty(t, snapshot.PendingStores)
}
