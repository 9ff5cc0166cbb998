package approving

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	platformdomain "github.com/wendyapp/admin-console-api/infrastructure/integrator/platform/domain"
	"github.com/wendyapp/admin-console-api/infrastructure/integrator/platform/mocks"
	"github.com/wendyapp/admin-console-api/internal/domain"
	"github.com/wendyapp/admin-console-api/internal/usecases/overview"
	"go.uber.org/mock/gomock"
)

func newService(t *testing.T) (*ApprovingService, *mocks.MockClient, *overview.StateStore) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockClient := mocks.NewMockClient(ctrl)
	state := overview.NewStateStore()

	state.SetPendingStores([]domain.StoreRecord{
		{ID: "s1", UserID: "u1", Name: "Pizzaria do Zé"},
	})
	state.SetAllStores([]domain.StoreRecord{
		{ID: "s1", UserID: "u1", Name: "Pizzaria do Zé"},
		{ID: "s2", UserID: "u2", Name: "Burguer Bom", IsApproved: true, IsActive: true},
	})
	state.SetPendingDeliverers([]domain.DelivererRecord{
		{ID: "d1", UserID: "du1", UserName: "Carlos"},
	})
	state.SetAllDeliverers([]domain.DelivererRecord{
		{ID: "d1", UserID: "du1", UserName: "Carlos"},
	})

	return NewApprovingService(mockClient, state), mockClient, state
}

func sessionFixture() domain.Session {
	return domain.Session{Token: "admin-token-simulado"}
}

func strPtr(s string) *string {
	return &s
}

func TestApprovingService_ApproveStore(t *testing.T) {
	service, mockClient, state := newService(t)
	sess := sessionFixture()

	mockClient.EXPECT().ApproveStore(gomock.Any(), sess, "s1").Return(nil)

	err := service.Approve(context.Background(), sess, KindStore, "s1")
	assert.NoError(t, err)

	snapshot := state.Snapshot()
	assert.Empty(t, snapshot.PendingStores)
	assert.Equal(t, 0, snapshot.Summary.PendingStores)
	assert.Equal(t, 2, snapshot.Summary.ActiveStores)
}

func TestApprovingService_ApproveDeliverer(t *testing.T) {
	service, mockClient, state := newService(t)
	sess := sessionFixture()

	mockClient.EXPECT().ApproveDeliverer(gomock.Any(), sess, "d1").Return(nil)

	err := service.Approve(context.Background(), sess, KindDeliverer, "d1")
	assert.NoError(t, err)

	snapshot := state.Snapshot()
	assert.Empty(t, snapshot.PendingDeliverers)
	assert.Equal(t, 1, snapshot.Summary.ActiveDeliverers)
}

func TestApprovingService_ApproveUnknownKind(t *testing.T) {
	service, _, _ := newService(t)

	err := service.Approve(context.Background(), sessionFixture(), Kind("vehicle"), "x")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestApprovingService_Reject(t *testing.T) {
	tests := []struct {
		name    string
		reason  *string
		setup   func(m *mocks.MockClient, sess domain.Session)
		wantErr error
	}{
		{
			name:   "Prompt cancelado não dispara requisição",
			reason: nil,
			// Nenhum EXPECT: qualquer chamada ao cliente falha o teste
			wantErr: ErrActionCancelled,
		},
		{
			name:    "Motivo vazio é recusado sem requisição",
			reason:  strPtr(""),
			wantErr: ErrReasonRequired,
		},
		{
			name:   "Motivo preenchido rejeita na plataforma",
			reason: strPtr("documentação incompleta"),
			setup: func(m *mocks.MockClient, sess domain.Session) {
				m.EXPECT().RejectStore(gomock.Any(), sess, "s1", "documentação incompleta").Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, mockClient, state := newService(t)
			sess := sessionFixture()

			if tt.setup != nil {
				tt.setup(mockClient, sess)
			}

			err := service.Reject(context.Background(), sess, KindStore, "s1", tt.reason)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				// Ação abortada não mexe no estado
				assert.Len(t, state.Snapshot().PendingStores, 1)
				return
			}

			assert.NoError(t, err)
			assert.Empty(t, state.Snapshot().PendingStores)
		})
	}
}

func TestApprovingService_RejectPlatformFailureKeepsState(t *testing.T) {
	service, mockClient, state := newService(t)
	sess := sessionFixture()

	platformErr := &platformdomain.PlatformError{StatusCode: 409, Message: "Loja já processada"}
	mockClient.EXPECT().RejectStore(gomock.Any(), sess, "s1", "fraude").Return(platformErr)

	err := service.Reject(context.Background(), sess, KindStore, "s1", strPtr("fraude"))

	assert.ErrorAs(t, err, &platformErr)
	assert.Len(t, state.Snapshot().PendingStores, 1)
}

func TestApprovingService_DeleteUser(t *testing.T) {
	tests := []struct {
		name    string
		input   DeleteUserInput
		setup   func(m *mocks.MockClient, sess domain.Session)
		wantErr error
	}{
		{
			name:    "Prompt cancelado",
			input:   DeleteUserInput{UserID: "u2", Kind: KindStore, Reason: nil, Confirmed: true},
			wantErr: ErrActionCancelled,
		},
		{
			name:    "Motivo vazio",
			input:   DeleteUserInput{UserID: "u2", Kind: KindStore, Reason: strPtr(""), Confirmed: true},
			wantErr: ErrReasonRequired,
		},
		{
			name:    "Sem confirmação explícita",
			input:   DeleteUserInput{UserID: "u2", Kind: KindStore, Reason: strPtr("conta duplicada"), Confirmed: false},
			wantErr: ErrConfirmationRequired,
		},
		{
			name:    "Tipo desconhecido",
			input:   DeleteUserInput{UserID: "u2", Kind: Kind("vehicle"), Reason: strPtr("x"), Confirmed: true},
			wantErr: ErrUnknownKind,
		},
		{
			name:  "Exclusão confirmada",
			input: DeleteUserInput{UserID: "u2", Kind: KindStore, Reason: strPtr("conta duplicada"), Confirmed: true},
			setup: func(m *mocks.MockClient, sess domain.Session) {
				m.EXPECT().DeleteUser(gomock.Any(), sess, "u2", "conta duplicada").Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, mockClient, state := newService(t)
			sess := sessionFixture()

			if tt.setup != nil {
				tt.setup(mockClient, sess)
			}

			err := service.DeleteUser(context.Background(), sess, tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Len(t, state.Snapshot().AllStores, 2)
				return
			}

			assert.NoError(t, err)

			snapshot := state.Snapshot()
			assert.Len(t, snapshot.AllStores, 1)
			assert.Equal(t, "u1", snapshot.AllStores[0].UserID)
		})
	}
}
