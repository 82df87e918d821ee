package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/revenue-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/revenue-dashboard-api/internal/config"
	"github.com/vfg2006/revenue-dashboard-api/internal/domain"
)

type PaymentRepository interface {
	ListSince(ctx context.Context, since time.Time) ([]domain.PaymentRecord, error)
	FetchPayments(ctx context.Context) ([]domain.PaymentRecord, error)
}

type paymentRepository struct {
	conn           postgres.Queryer
	table          string
	lookbackMonths int
	now            func() time.Time
}

func NewPaymentRepository(conn postgres.Queryer, cfg config.Payments) PaymentRepository {
	return &paymentRepository{
		conn:           conn,
		table:          quoteTable(cfg.Table),
		lookbackMonths: cfg.LookbackMonths,
		now:            time.Now,
	}
}

// ListSince lê os pagamentos com created_at >= since; since zero lê a tabela inteira
func (r *paymentRepository) ListSince(ctx context.Context, since time.Time) ([]domain.PaymentRecord, error) {
	builder := squirrel.
		Select("created_at", "amount", "customer_id", "customer_email").
		From(r.table).
		OrderBy("created_at ASC").
		PlaceholderFormat(squirrel.Dollar)

	if !since.IsZero() {
		builder = builder.Where(squirrel.GtOrEq{"created_at": since})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	payments := make([]domain.PaymentRecord, 0)
	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear pagamento: %w", err)
		}
		payments = append(payments, payment)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return payments, nil
}

// FetchPayments lê a janela configurada em PAYMENTS_LOOKBACK_MONTHS, a partir do primeiro dia do mês
func (r *paymentRepository) FetchPayments(ctx context.Context) ([]domain.PaymentRecord, error) {
	if r.lookbackMonths <= 0 {
		return r.ListSince(ctx, time.Time{})
	}

	now := r.now().UTC()
	since := time.Date(now.Year(), now.Month()-time.Month(r.lookbackMonths), 1, 0, 0, 0, 0, time.UTC)
	return r.ListSince(ctx, since)
}

func scanPayment(rows *sql.Rows) (domain.PaymentRecord, error) {
	var (
		createdAt     sql.NullTime
		amount        sql.NullInt64
		customerID    sql.NullString
		customerEmail sql.NullString
	)

	if err := rows.Scan(&createdAt, &amount, &customerID, &customerEmail); err != nil {
		return domain.PaymentRecord{}, err
	}

	payment := domain.PaymentRecord{
		CustomerID:    customerID.String,
		CustomerEmail: customerEmail.String,
	}
	if createdAt.Valid {
		payment.CreatedAt = createdAt.Time.Format(time.RFC3339Nano)
	}
	if amount.Valid {
		payment.Amount = domain.Int64Ptr(amount.Int64)
	}

	return payment, nil
}

// quoteTable aceita "tabela" ou "schema.tabela" vindos da configuração
func quoteTable(name string) string {
	parts := strings.Split(name, ".")
	for i, part := range parts {
		parts[i] = pq.QuoteIdentifier(part)
	}
	return strings.Join(parts, ".")
}
