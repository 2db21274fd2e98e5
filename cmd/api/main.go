package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mapia/backoffice-api/infrastructure/database/postgres"
	"github.com/mapia/backoffice-api/infrastructure/repository"
	"github.com/mapia/backoffice-api/internal/api"
	"github.com/mapia/backoffice-api/internal/config"
	"github.com/mapia/backoffice-api/internal/scheduler"
	"github.com/mapia/backoffice-api/internal/usecases/allocating"
	"github.com/mapia/backoffice-api/internal/usecases/analyzing"
	"github.com/mapia/backoffice-api/internal/usecases/auditing"
	"github.com/mapia/backoffice-api/internal/usecases/authenticating"
	"github.com/mapia/backoffice-api/internal/usecases/configuring"
	"github.com/mapia/backoffice-api/internal/usecases/invoicing"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

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

	userRepo := repository.NewUserRepository(pgConn)
	configRepo := repository.NewAnalysisConfigRepository(pgConn)
	invoiceRepo := repository.NewInvoiceRepository(pgConn)
	effortRepo := repository.NewEffortRepository(pgConn)
	analysisRepo := repository.NewAnalysisRepository(pgConn)
	auditLogRepo := repository.NewAuditLogRepository(pgConn)

	auditor := auditing.NewService(auditLogRepo)

	authenticator := authenticating.NewService(userRepo, auditor, cfg)
	analyzer := analyzing.NewService(pgConn, configRepo, invoiceRepo, effortRepo, analysisRepo, auditor)
	configurer := configuring.NewService(pgConn, configRepo, auditor)
	allocator := allocating.NewService(pgConn, effortRepo, invoiceRepo, auditor)
	invoicer := invoicing.NewService(invoiceRepo, auditor)

	// Agendador opcional da análise automática do mês anterior
	analysisSyncService := scheduler.NewAnalysisSyncService(analyzer, cfg)
	if err := analysisSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador da análise contratual")
	}

	server, err := api.New(
		cfg,
		authenticator,
		analyzer,
		configurer,
		allocator,
		invoicer,
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
