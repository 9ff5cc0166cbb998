package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/wendyapp/admin-console-api/infrastructure/database/postgres"
	"github.com/wendyapp/admin-console-api/infrastructure/integrator/platform/platformclient"
	"github.com/wendyapp/admin-console-api/infrastructure/repository"
	"github.com/wendyapp/admin-console-api/internal/api"
	"github.com/wendyapp/admin-console-api/internal/config"
	"github.com/wendyapp/admin-console-api/internal/scheduler"
	"github.com/wendyapp/admin-console-api/internal/usecases/approving"
	"github.com/wendyapp/admin-console-api/internal/usecases/authenticating"
	"github.com/wendyapp/admin-console-api/internal/usecases/overview"
	"github.com/wendyapp/admin-console-api/internal/usecases/privileging"
	"github.com/wendyapp/admin-console-api/internal/usecases/session"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	sessionRepo := repository.NewSessionRepository(pgConn)
	operatorRepo := repository.NewOperatorRepository(pgConn)

	authenticator := authenticating.NewService(operatorRepo, cfg)
	sessions := session.NewSessionService(sessionRepo, cfg)

	platformClient := platformclient.NewClient(cfg)

	state := overview.NewStateStore()
	overviewer := overview.NewOverviewService(platformClient, state)
	approver := approving.NewApprovingService(platformClient, state)
	privileger := privileging.NewPrivilegingService(platformClient)

	trackingSyncService := scheduler.NewTrackingSyncService(platformClient, sessions, cfg)

	if err := trackingSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de rastreamento")
	} else {
		logrus.Info("Agendador de rastreamento iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		authenticator,
		sessions,
		overviewer,
		approver,
		privileger,
		trackingSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
