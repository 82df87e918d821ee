package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/revenue-dashboard-api/internal/config"
	"github.com/vfg2006/revenue-dashboard-api/internal/domain"
)

var paymentColumns = []string{"created_at", "amount", "customer_id", "customer_email"}

func newPaymentRepositoryMock(t *testing.T, cfg config.Payments) (*paymentRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := NewPaymentRepository(db, cfg).(*paymentRepository)
	return repo, mock
}

func TestPaymentRepository_ListSince(t *testing.T) {
	repo, mock := newPaymentRepositoryMock(t, config.Payments{Table: "payments"})

	since := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2024, 2, 10, 10, 30, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT created_at, amount, customer_id, customer_email FROM "payments" WHERE created_at >= $1 ORDER BY created_at ASC`)).
		WithArgs(since).
		WillReturnRows(sqlmock.NewRows(paymentColumns).
			AddRow(createdAt, int64(1200), "cus_1", "a@example.com").
			AddRow(createdAt, nil, nil, nil))

	payments, err := repo.ListSince(context.Background(), since)

	require.NoError(t, err)
	assert.Equal(t, []domain.PaymentRecord{
		{CreatedAt: "2024-02-10T10:30:00Z", Amount: domain.Int64Ptr(1200), CustomerID: "cus_1", CustomerEmail: "a@example.com"},
		{CreatedAt: "2024-02-10T10:30:00Z"},
	}, payments)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentRepository_ListSince_WholeTable(t *testing.T) {
	repo, mock := newPaymentRepositoryMock(t, config.Payments{Table: "billing.payments"})

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT created_at, amount, customer_id, customer_email FROM "billing"."payments" ORDER BY created_at ASC`)).
		WillReturnRows(sqlmock.NewRows(paymentColumns))

	payments, err := repo.ListSince(context.Background(), time.Time{})

	require.NoError(t, err)
	assert.Empty(t, payments)
	assert.NotNil(t, payments)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentRepository_ListSince_Errors(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantErr string
	}{
		{
			name: "Erro na query",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT").WillReturnError(errors.New("conexão recusada"))
			},
			wantErr: "erro ao executar a query",
		},
		{
			name: "Erro ao escanear",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT").WillReturnRows(
					sqlmock.NewRows(paymentColumns).AddRow(time.Now(), "abc", "cus_1", "a@example.com"),
				)
			},
			wantErr: "erro ao escanear pagamento",
		},
		{
			name: "Erro durante a iteração",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT").WillReturnRows(
					sqlmock.NewRows(paymentColumns).
						AddRow(time.Now(), int64(100), "cus_1", "a@example.com").
						RowError(0, errors.New("cursor perdido")),
				)
			},
			wantErr: "erro durante a iteração de linhas",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newPaymentRepositoryMock(t, config.Payments{Table: "payments"})
			tt.setup(mock)

			payments, err := repo.ListSince(context.Background(), time.Time{})

			assert.Nil(t, payments)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestPaymentRepository_FetchPayments(t *testing.T) {
	repo, mock := newPaymentRepositoryMock(t, config.Payments{Table: "payments", LookbackMonths: 13})
	repo.now = func() time.Time { return time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC) }

	mock.ExpectQuery("SELECT (.+) FROM \"payments\" WHERE created_at >= \\$1").
		WithArgs(time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC)).
		WillReturnRows(sqlmock.NewRows(paymentColumns))

	_, err := repo.FetchPayments(context.Background())

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
