package tablesdomain

import (
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
	"github.com/vfg2006/revenue-dashboard-api/internal/domain"
)

// Row é uma linha crua da tabela, com os tipos que o JSON trouxer
type Row map[string]any

// Column descreve uma coluna do schema
type Column struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Nullable bool   `json:"nullable"`
}

// paymentRow são as colunas de pagamento, ainda sem tipo definido
type paymentRow struct {
	CreatedAt     any `mapstructure:"created_at"`
	Amount        any `mapstructure:"amount"`
	CustomerID    any `mapstructure:"customer_id"`
	CustomerEmail any `mapstructure:"customer_email"`
}

// ToPaymentRecord converte a linha em PaymentRecord.
// Amount nulo vira nil; texto que não for número vira 0. Valores fracionados são arredondados para centavos inteiros.
func (r Row) ToPaymentRecord() (domain.PaymentRecord, error) {
	var raw paymentRow
	if err := mapstructure.Decode(map[string]any(r), &raw); err != nil {
		return domain.PaymentRecord{}, errors.Wrap(err, "erro ao decodificar a linha")
	}

	return domain.PaymentRecord{
		CreatedAt:     toText(raw.CreatedAt),
		Amount:        toCents(raw.Amount),
		CustomerID:    toText(raw.CustomerID),
		CustomerEmail: toText(raw.CustomerEmail),
	}, nil
}

func toText(value any) string {
	if value == nil {
		return ""
	}
	return strings.TrimSpace(cast.ToString(value))
}

func toCents(value any) *int64 {
	if value == nil {
		return nil
	}

	text := toText(value)
	if text == "" {
		return domain.Int64Ptr(0)
	}

	amount, err := decimal.NewFromString(text)
	if err != nil {
		return domain.Int64Ptr(0)
	}

	return domain.Int64Ptr(amount.Round(0).IntPart())
}
