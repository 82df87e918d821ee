package tables

import (
	"context"
	"slices"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-dashboard-api/infrastructure/integrator/tables/tablesclient"
	"github.com/vfg2006/revenue-dashboard-api/internal/config"
	"github.com/vfg2006/revenue-dashboard-api/internal/domain"
)

// colunas que a tabela de pagamentos precisa expor
var requiredColumns = []string{"created_at", "amount", "customer_id", "customer_email"}

var ErrMissingColumns = errors.New("tabela de pagamentos sem colunas obrigatórias")

type TablesIntegrator interface {
	FetchPayments(ctx context.Context) ([]domain.PaymentRecord, error)
	CheckSchema(ctx context.Context) error
}

type TablesService struct {
	cfg    *config.Config
	Client tablesclient.Client
}

func New(cfg *config.Config, client tablesclient.Client) TablesIntegrator {
	return &TablesService{
		cfg:    cfg,
		Client: client,
	}
}

// FetchPayments lê a tabela inteira; linhas que não decodificam são descartadas com aviso
func (s *TablesService) FetchPayments(ctx context.Context) ([]domain.PaymentRecord, error) {
	rows, err := s.Client.GetData(ctx, tablesclient.GetDataParams{
		TableID: s.cfg.Tables.TableID,
		Role:    s.cfg.Tables.Role,
	})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar pagamentos na API de tabelas")
	}

	records := make([]domain.PaymentRecord, 0, len(rows))
	skipped := 0
	for i, row := range rows {
		record, err := row.ToPaymentRecord()
		if err != nil {
			skipped++
			logrus.WithError(err).WithField("row", i).Warn("Linha de pagamento ignorada")
			continue
		}
		records = append(records, record)
	}

	logrus.WithFields(logrus.Fields{
		"table_id": s.cfg.Tables.TableID,
		"rows":     len(rows),
		"skipped":  skipped,
	}).Debug("Pagamentos carregados da API de tabelas")

	return records, nil
}

// CheckSchema confere se a tabela configurada tem as colunas usadas pelo motor.
// Um schema sem colunas é aceito, pois nem toda tabela publica a lista.
func (s *TablesService) CheckSchema(ctx context.Context) error {
	schema, err := s.Client.GetSchema(ctx, s.cfg.Tables.TableID)
	if err != nil {
		return errors.Wrap(err, "erro ao buscar schema na API de tabelas")
	}

	if len(schema.Columns) == 0 {
		return nil
	}

	names := make([]string, 0, len(schema.Columns))
	for _, column := range schema.Columns {
		names = append(names, column.Name)
	}

	var missing []string
	for _, required := range requiredColumns {
		if !slices.Contains(names, required) {
			missing = append(missing, required)
		}
	}

	if len(missing) > 0 {
		return errors.Wrapf(ErrMissingColumns, "faltando %v", missing)
	}

	return nil
}

var _ TablesIntegrator = (*TablesService)(nil)
