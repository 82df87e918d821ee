package tablesclient

import (
	"context"

	"github.com/pkg/errors"
	tablesdomain "github.com/vfg2006/revenue-dashboard-api/infrastructure/integrator/tables/domain"
)

type getSchemaRequest struct {
	ClientID string `json:"clientId"`
	TableID  string `json:"tableId"`
}

type SchemaResponse struct {
	TableID string                `json:"tableId"`
	Columns []tablesdomain.Column `json:"columns"`
}

func (c *TablesClient) GetSchema(ctx context.Context, tableID string) (SchemaResponse, error) {
	var response SchemaResponse

	if c.config.ClientID == "" {
		return response, tablesdomain.ErrMissingClientID
	}

	body, err := c.post(ctx, "getSchema", getSchemaRequest{
		ClientID: c.config.ClientID,
		TableID:  tableID,
	})
	if err != nil {
		return response, err
	}

	if err := json.Unmarshal(body, &response); err != nil {
		return response, errors.Wrap(err, "erro ao decodificar o schema")
	}

	return response, nil
}
