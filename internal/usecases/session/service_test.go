package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wendyapp/admin-console-api/infrastructure/repository/mocks"
	"github.com/wendyapp/admin-console-api/internal/config"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Platform.AdminToken = "admin-token-simulado"
	return cfg
}

func TestSessionService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSessionRepository(ctrl)
	service := NewSessionService(mockRepo, testConfig())

	mockRepo.EXPECT().SaveToken("admin-token-simulado").Return(nil)

	sess, err := service.Login()

	assert.NoError(t, err)
	assert.Equal(t, "admin-token-simulado", sess.Token)
	assert.True(t, sess.Authenticated())
	assert.False(t, sess.ActivatedAt.IsZero())
}

func TestSessionService_LoginPersistenceFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSessionRepository(ctrl)
	service := NewSessionService(mockRepo, testConfig())

	mockRepo.EXPECT().SaveToken(gomock.Any()).Return(assert.AnError)

	sess, err := service.Login()

	assert.Error(t, err)
	assert.False(t, sess.Authenticated())
}

func TestSessionService_Current(t *testing.T) {
	tests := []struct {
		name      string
		token     string
		wantError error
	}{
		{
			name:  "Sessão ativa",
			token: "admin-token-simulado",
		},
		{
			name:      "Sem token persistido",
			token:     "",
			wantError: ErrNotAuthenticated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := mocks.NewMockSessionRepository(ctrl)
			service := NewSessionService(mockRepo, testConfig())

			mockRepo.EXPECT().GetToken().Return(tt.token, nil)

			sess, err := service.Current()

			if tt.wantError != nil {
				assert.ErrorIs(t, err, tt.wantError)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.token, sess.Token)
		})
	}
}

func TestSessionService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSessionRepository(ctrl)
	service := NewSessionService(mockRepo, testConfig())

	mockRepo.EXPECT().DeleteToken().Return(nil)

	assert.NoError(t, service.Logout())
}
