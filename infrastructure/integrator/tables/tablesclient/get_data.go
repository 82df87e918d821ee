package tablesclient

import (
	"context"

	"github.com/pkg/errors"
	tablesdomain "github.com/vfg2006/revenue-dashboard-api/infrastructure/integrator/tables/domain"
)

type GetDataParams struct {
	TableID    string
	Role       string
	Conditions map[string]any
}

type getDataRequest struct {
	ClientID   string         `json:"clientId"`
	TableID    string         `json:"tableId"`
	Role       string         `json:"role"`
	Conditions map[string]any `json:"conditions"`
}

type GetDataResponse []tablesdomain.Row

type getDataEnvelope struct {
	Result []tablesdomain.Row `json:"result"`
}

// GetData busca as linhas da tabela. A API responde {"result": [...]}, mas versões antigas devolvem o array puro.
func (c *TablesClient) GetData(ctx context.Context, params GetDataParams) (GetDataResponse, error) {
	if c.config.ClientID == "" {
		return nil, tablesdomain.ErrMissingClientID
	}

	conditions := params.Conditions
	if conditions == nil {
		conditions = map[string]any{}
	}

	body, err := c.post(ctx, "getData", getDataRequest{
		ClientID:   c.config.ClientID,
		TableID:    params.TableID,
		Role:       params.Role,
		Conditions: conditions,
	})
	if err != nil {
		return nil, err
	}

	var envelope getDataEnvelope
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Result != nil {
		return envelope.Result, nil
	}

	var rows []tablesdomain.Row
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, errors.Wrap(tablesdomain.ErrInvalidDataFormat, err.Error())
	}

	return rows, nil
}
