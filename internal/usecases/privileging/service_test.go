package privileging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	platformdomain "github.com/wendyapp/admin-console-api/infrastructure/integrator/platform/domain"
	"github.com/wendyapp/admin-console-api/infrastructure/integrator/platform/mocks"
	"github.com/wendyapp/admin-console-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func sessionFixture() domain.Session {
	return domain.Session{Token: "admin-token-simulado"}
}

func strPtr(s string) *string {
	return &s
}

// A lista de candidatas inclui as lojas já privilegiadas, com a flag marcada.
func candidatesFixture() []domain.CandidateStore {
	return []domain.CandidateStore{
		{ID: "s1", Name: "Pizzaria do Zé", UserName: "José Silva", IsPrivileged: false},
		{ID: "s2", Name: "Açaí da Praça", UserName: "Maria Souza", IsPrivileged: false},
		{ID: "s3", Name: "Burguer Bom", UserName: "Pedro Pizza", IsPrivileged: true},
	}
}

func privilegedFixture() []domain.CandidateStore {
	return []domain.CandidateStore{
		{ID: "s3", Name: "Burguer Bom", UserName: "Pedro Pizza", IsPrivileged: true},
	}
}

func loadedService(t *testing.T) (*PrivilegingService, *mocks.MockClient) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockClient := mocks.NewMockClient(ctrl)
	service := NewPrivilegingService(mockClient)

	sess := sessionFixture()
	mockClient.EXPECT().GetPrivilegeCandidates(gomock.Any(), sess).Return(candidatesFixture(), nil)
	mockClient.EXPECT().GetPrivilegedStores(gomock.Any(), sess).Return(privilegedFixture(), nil)

	service.LoadStores(context.Background(), sess)

	return service, mockClient
}

func TestPrivilegingService_OverviewCounters(t *testing.T) {
	service, _ := loadedService(t)

	view := service.Overview("", FilterAll)

	assert.Len(t, view.Stores, 3)
	assert.Equal(t, 3, view.Total)
	assert.Equal(t, 1, view.PrivilegedCount)
	assert.Equal(t, 2, view.NonPrivilegedCount)
}

func TestPrivilegingService_SearchMatchesNameOrOwner(t *testing.T) {
	service, _ := loadedService(t)

	// Bate no nome da loja, sem diferenciar maiúsculas
	view := service.Overview("pizza", FilterAll)
	ids := []string{}
	for _, store := range view.Stores {
		ids = append(ids, store.ID)
	}

	// s1 pelo nome da loja, s3 pelo nome do responsável
	assert.ElementsMatch(t, []string{"s1", "s3"}, ids)

	// Contadores continuam sobre o conjunto completo
	assert.Equal(t, 3, view.Total)
}

func TestPrivilegingService_StatusFilter(t *testing.T) {
	service, _ := loadedService(t)

	privileged := service.Overview("", FilterPrivileged)
	assert.Len(t, privileged.Stores, 1)
	assert.Equal(t, "s3", privileged.Stores[0].ID)

	nonPrivileged := service.Overview("", FilterNonPrivileged)
	assert.Len(t, nonPrivileged.Stores, 2)
}

func TestPrivilegingService_TogglePrivilege(t *testing.T) {
	service, mockClient := loadedService(t)
	sess := sessionFixture()

	// Uma única mutação, seguida do recarregamento completo das duas listas
	mockClient.EXPECT().SetStorePrivilege(gomock.Any(), sess, "s1", true, "destaque de campanha").
		Return("Loja privilegiada com sucesso", nil)
	mockClient.EXPECT().GetPrivilegeCandidates(gomock.Any(), sess).Return(candidatesFixture(), nil)
	mockClient.EXPECT().GetPrivilegedStores(gomock.Any(), sess).Return(privilegedFixture(), nil)

	message, err := service.TogglePrivilege(context.Background(), sess, "s1", false, strPtr("destaque de campanha"))

	assert.NoError(t, err)
	assert.Equal(t, "Loja privilegiada com sucesso", message)
}

func TestPrivilegingService_TogglePrivilegeCancelled(t *testing.T) {
	service, _ := loadedService(t)

	// Nenhum EXPECT de mutação: prompt cancelado aborta antes da requisição
	_, err := service.TogglePrivilege(context.Background(), sessionFixture(), "s1", false, nil)

	assert.ErrorIs(t, err, ErrActionCancelled)
}

func TestPrivilegingService_TogglePrivilegeEmptyReasonAllowed(t *testing.T) {
	service, mockClient := loadedService(t)
	sess := sessionFixture()

	mockClient.EXPECT().SetStorePrivilege(gomock.Any(), sess, "s3", false, "").
		Return("Privilégio removido", nil)
	mockClient.EXPECT().GetPrivilegeCandidates(gomock.Any(), sess).Return(candidatesFixture(), nil)
	mockClient.EXPECT().GetPrivilegedStores(gomock.Any(), sess).Return(nil, nil)

	message, err := service.TogglePrivilege(context.Background(), sess, "s3", true, strPtr(""))

	assert.NoError(t, err)
	assert.Equal(t, "Privilégio removido", message)
}

func TestPrivilegingService_Selection(t *testing.T) {
	service, _ := loadedService(t)

	service.ToggleSelection("s1")
	service.ToggleSelection("s2")
	assert.Len(t, service.Overview("", FilterAll).SelectedIDs, 2)

	// Alternar de novo remove
	service.ToggleSelection("s2")
	assert.Equal(t, []string{"s1"}, service.Overview("", FilterAll).SelectedIDs)

	service.ClearSelection()
	assert.Empty(t, service.Overview("", FilterAll).SelectedIDs)
}

func TestPrivilegingService_SelectAllFiltered(t *testing.T) {
	service, _ := loadedService(t)

	service.SelectAllFiltered("", FilterNonPrivileged)
	assert.Len(t, service.Overview("", FilterAll).SelectedIDs, 2)

	// Com tudo já selecionado no recorte, a mesma ação limpa a seleção
	service.SelectAllFiltered("", FilterNonPrivileged)
	assert.Empty(t, service.Overview("", FilterAll).SelectedIDs)
}

func TestPrivilegingService_ApplyBatch(t *testing.T) {
	service, mockClient := loadedService(t)
	sess := sessionFixture()

	service.ToggleSelection("s1")
	service.ToggleSelection("s2")

	mockClient.EXPECT().
		BatchStorePrivilege(gomock.Any(), sess, gomock.InAnyOrder([]string{"s1", "s2"}), BatchActionGrant, "ação promocional").
		Return(&platformdomain.BatchPrivilegeResult{TotalProcessed: 2, TotalErrors: 0}, nil)
	mockClient.EXPECT().GetPrivilegeCandidates(gomock.Any(), sess).Return(candidatesFixture(), nil)
	mockClient.EXPECT().GetPrivilegedStores(gomock.Any(), sess).Return(privilegedFixture(), nil)

	result, err := service.ApplyBatch(context.Background(), sess, BatchActionGrant, strPtr("ação promocional"))

	assert.NoError(t, err)
	assert.Equal(t, 2, result.TotalProcessed)
	assert.Equal(t, 0, result.TotalErrors)

	// Seleção é limpa após o lote
	assert.Empty(t, service.Overview("", FilterAll).SelectedIDs)
}

func TestPrivilegingService_ApplyBatchValidation(t *testing.T) {
	service, _ := loadedService(t)
	sess := sessionFixture()

	// Seleção vazia vem antes de qualquer outra validação: mesmo com a ação
	// inválida, o operador é avisado primeiro de que nada está selecionado
	_, err := service.ApplyBatch(context.Background(), sess, "promote", strPtr("x"))
	assert.ErrorIs(t, err, ErrEmptySelection)

	// Com seleção, a ação é validada
	service.ToggleSelection("s1")
	_, err = service.ApplyBatch(context.Background(), sess, "promote", strPtr("x"))
	assert.ErrorIs(t, err, ErrInvalidAction)

	// Prompt cancelado
	_, err = service.ApplyBatch(context.Background(), sess, BatchActionRevoke, nil)
	assert.ErrorIs(t, err, ErrActionCancelled)
}

func TestPrivilegingService_LoadStoresPartialFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := NewPrivilegingService(mockClient)
	sess := sessionFixture()

	// Primeira carga completa
	mockClient.EXPECT().GetPrivilegeCandidates(gomock.Any(), sess).Return(candidatesFixture(), nil)
	mockClient.EXPECT().GetPrivilegedStores(gomock.Any(), sess).Return(privilegedFixture(), nil)
	service.LoadStores(context.Background(), sess)

	// Segunda carga: candidatas falham, privilegiadas atualizam
	mockClient.EXPECT().GetPrivilegeCandidates(gomock.Any(), sess).Return(nil, assert.AnError)
	mockClient.EXPECT().GetPrivilegedStores(gomock.Any(), sess).Return(nil, nil)
	service.LoadStores(context.Background(), sess)

	view := service.Overview("", FilterAll)

	// Candidatas mantêm o último valor conhecido; privilegiadas zeraram
	assert.Len(t, view.Stores, 3)
	assert.Equal(t, 0, view.PrivilegedCount)
}

// A listagem e a seleção operam só sobre a lista de candidatas; a lista de
// privilegiadas alimenta apenas os contadores. Uma loja presente só nela não
// pode aparecer, ser selecionada nem entrar em lote.
func TestPrivilegingService_PrivilegedOnlyStoreNotListed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := NewPrivilegingService(mockClient)
	sess := sessionFixture()

	mockClient.EXPECT().GetPrivilegeCandidates(gomock.Any(), sess).Return([]domain.CandidateStore{
		{ID: "c1", Name: "Cantina da Vila", UserName: "Ana Lima"},
	}, nil)
	mockClient.EXPECT().GetPrivilegedStores(gomock.Any(), sess).Return([]domain.CandidateStore{
		{ID: "p9", Name: "Loja Fantasma", UserName: "Rui Prado", IsPrivileged: true},
	}, nil)
	service.LoadStores(context.Background(), sess)

	view := service.Overview("", FilterAll)

	assert.Len(t, view.Stores, 1)
	assert.Equal(t, "c1", view.Stores[0].ID)
	assert.Equal(t, 1, view.Total)
	assert.Equal(t, 1, view.PrivilegedCount)

	// Selecionar tudo no recorte não alcança a loja fora das candidatas
	service.SelectAllFiltered("", FilterAll)
	assert.Equal(t, []string{"c1"}, service.Overview("", FilterAll).SelectedIDs)
}
