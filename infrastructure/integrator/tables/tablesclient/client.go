package tablesclient

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	tablesdomain "github.com/vfg2006/revenue-dashboard-api/infrastructure/integrator/tables/domain"
	"github.com/vfg2006/revenue-dashboard-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	GetData(ctx context.Context, params GetDataParams) (GetDataResponse, error)
	GetSchema(ctx context.Context, tableID string) (SchemaResponse, error)
}

type TablesClient struct {
	httpClient *http.Client
	config     *config.Tables
}

func NewClient(cfg *config.Config) Client {
	return &TablesClient{
		httpClient: &http.Client{
			Timeout: cfg.Tables.Timeout,
		},
		config: &cfg.Tables,
	}
}

// post envia o corpo em JSON para {TABLES_URL}/{operation} e devolve o corpo da resposta
func (c *TablesClient) post(ctx context.Context, operation string, payload any) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao serializar a requisição")
	}

	endpoint := strings.TrimRight(c.config.URL, "/") + "/" + operation

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao executar %s", operation)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler a resposta")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr tablesdomain.ErrorResponse
		if err := json.Unmarshal(respBody, &apiErr); err == nil && apiErr.Message != "" {
			return nil, &tablesdomain.RequestError{Operation: operation, StatusCode: resp.StatusCode, Message: apiErr.Message}
		}
		return nil, &tablesdomain.RequestError{Operation: operation, StatusCode: resp.StatusCode, Message: resp.Status}
	}

	return respBody, nil
}
