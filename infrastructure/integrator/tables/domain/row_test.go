package tablesdomain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/revenue-dashboard-api/internal/domain"
)

func TestRow_ToPaymentRecord(t *testing.T) {
	tests := []struct {
		name     string
		row      Row
		expected domain.PaymentRecord
	}{
		{
			name: "Linha completa com valor numérico",
			row: Row{
				"created_at":     "2024-02-10 10:00:00.000",
				"amount":         float64(1200),
				"customer_id":    "cus_1",
				"customer_email": " a@example.com ",
			},
			expected: domain.PaymentRecord{
				CreatedAt:     "2024-02-10 10:00:00.000",
				Amount:        domain.Int64Ptr(1200),
				CustomerID:    "cus_1",
				CustomerEmail: "a@example.com",
			},
		},
		{
			name:     "Valor em texto",
			row:      Row{"created_at": "2024-02-10", "amount": "1999"},
			expected: domain.PaymentRecord{CreatedAt: "2024-02-10", Amount: domain.Int64Ptr(1999)},
		},
		{
			name:     "Valor fracionado é arredondado",
			row:      Row{"amount": "10.5"},
			expected: domain.PaymentRecord{Amount: domain.Int64Ptr(11)},
		},
		{
			name:     "Valor inválido vira zero",
			row:      Row{"amount": "abc"},
			expected: domain.PaymentRecord{Amount: domain.Int64Ptr(0)},
		},
		{
			name:     "Valor nulo continua nil",
			row:      Row{"created_at": "2024-02-10", "amount": nil},
			expected: domain.PaymentRecord{CreatedAt: "2024-02-10"},
		},
		{
			name:     "Id numérico convertido para texto",
			row:      Row{"customer_id": float64(42)},
			expected: domain.PaymentRecord{CustomerID: "42"},
		},
		{
			name:     "Colunas extras ignoradas",
			row:      Row{"id": 7, "status": "paid", "amount": float64(100)},
			expected: domain.PaymentRecord{Amount: domain.Int64Ptr(100)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record, err := tt.row.ToPaymentRecord()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, record)
		})
	}
}
