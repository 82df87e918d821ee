package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/revenue-dashboard-api/infrastructure/integrator/tables"
	"github.com/vfg2006/revenue-dashboard-api/infrastructure/integrator/tables/tablesclient"
	"github.com/vfg2006/revenue-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/revenue-dashboard-api/internal/api"
	"github.com/vfg2006/revenue-dashboard-api/internal/config"
	"github.com/vfg2006/revenue-dashboard-api/internal/scheduler"
	"github.com/vfg2006/revenue-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/revenue-dashboard-api/pkg/log"
)

const startupTimeout = 30 * time.Second

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.Setup("info")
		logrus.Fatal(err)
	}

	if !log.Setup(cfg.App.LogLevel) {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
	}
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	source, closeSource := paymentSource(ctx, cfg)
	defer closeSource()

	dashboardService := dashboarding.NewService(cfg, source)

	// carga inicial; em caso de falha o primeiro relatório tenta de novo
	startupCtx, startupCancel := context.WithTimeout(ctx, startupTimeout)
	if err := dashboardService.RefreshRecords(startupCtx); err != nil {
		logrus.WithError(err).Warn("Não foi possível carregar os registros de pagamento na inicialização")
	} else {
		logrus.Info("Registros de pagamento carregados com sucesso")
	}
	startupCancel()

	recordsSyncService := scheduler.NewRecordsSyncService(dashboardService, cfg)
	if err := recordsSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de recarga de registros")
	}

	server, err := api.New(cfg, dashboardService, recordsSyncService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// paymentSource monta a fonte de registros configurada em RECORDS_SOURCE
func paymentSource(ctx context.Context, cfg *config.Config) (dashboarding.PaymentSource, func()) {
	switch cfg.Records.Source {
	case config.RecordsSourcePostgres:
		conn := pgconn(ctx, cfg.Database)
		return repository.NewPaymentRepository(conn, cfg.Payments), func() { _ = conn.Close() }
	default:
		integrator := tables.New(cfg, tablesclient.NewClient(cfg))

		schemaCtx, schemaCancel := context.WithTimeout(ctx, startupTimeout)
		defer schemaCancel()

		if err := integrator.CheckSchema(schemaCtx); err != nil {
			logrus.WithError(err).Warn("Esquema da tabela de pagamentos não pôde ser validado")
		}

		logrus.WithField("table_id", cfg.Tables.TableID).Info("Usando a API de tabelas como fonte de registros")
		return integrator, func() {}
	}
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
