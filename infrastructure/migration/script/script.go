// Script de carga da tabela de pagamentos para desenvolvimento local com RECORDS_SOURCE=postgres
package main

import (
	"database/sql"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-dashboard-api/internal/config"
	"github.com/vfg2006/revenue-dashboard-api/pkg/utils"
)

const (
	customerCount = 40
	seed          = 42
	// parte dos pagamentos vem sem cliente identificado
	anonymousRatio = 0.1
)

type seedCustomer struct {
	ID    string
	Email string
	Day   int
	Cents int64
}

func quoteTable(name string) string {
	parts := strings.Split(name, ".")
	for i, part := range parts {
		parts[i] = pq.QuoteIdentifier(part)
	}
	return strings.Join(parts, ".")
}

func createTable(db *sql.DB, table string) {
	logrus.Infof("Criando tabela %s se não existir...", table)

	_, err := db.Exec(fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id SERIAL PRIMARY KEY,
			created_at TIMESTAMPTZ,
			amount BIGINT,
			customer_id TEXT,
			customer_email TEXT
		)
	`, table))
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao criar tabela de pagamentos")
	}
}

func buildCustomers(rnd *rand.Rand) []seedCustomer {
	customers := make([]seedCustomer, 0, customerCount)
	for i := 0; i < customerCount; i++ {
		id, err := utils.GenerateID()
		if err != nil {
			logrus.WithError(err).Fatal("ERRO ao gerar identificador de cliente")
		}

		customers = append(customers, seedCustomer{
			ID:    id,
			Email: fmt.Sprintf("%s@example.com", strings.ToLower(id)),
			Day:   rnd.Intn(28) + 1,
			Cents: int64(rnd.Intn(20)+1) * 500,
		})
	}
	return customers
}

// insertPayments gera um pagamento mensal por cliente; alguns clientes pulam meses
func insertPayments(tx *sql.Tx, table string, customers []seedCustomer, months int, rnd *rand.Rand) {
	stmt, err := tx.Prepare(fmt.Sprintf(
		`INSERT INTO %s (created_at, amount, customer_id, customer_email) VALUES ($1, $2, $3, $4)`, table,
	))
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao preparar statement para pagamentos")
	}
	defer stmt.Close()

	now := time.Now().UTC()
	first := time.Date(now.Year(), now.Month()-time.Month(months), 1, 0, 0, 0, 0, time.UTC)

	successCount := 0
	errorCount := 0

	for month := 0; month <= months; month++ {
		monthStart := first.AddDate(0, month, 0)

		for _, c := range customers {
			if rnd.Float64() < 0.15 {
				continue
			}

			createdAt := monthStart.AddDate(0, 0, c.Day-1).Add(time.Duration(rnd.Intn(24*60)) * time.Minute)
			if createdAt.After(now) {
				continue
			}

			var customerID, email any = c.ID, c.Email
			if rnd.Float64() < anonymousRatio {
				customerID, email = nil, nil
			}

			if _, err := stmt.Exec(createdAt, c.Cents, customerID, email); err != nil {
				logrus.WithError(err).Warnf("ERRO ao inserir pagamento do cliente %s", c.ID)
				errorCount++
				continue
			}
			successCount++
		}

		logrus.Infof("Progresso: %d/%d meses processados", month+1, months+1)
	}

	logrus.Infof("Inserção de pagamentos concluída. Sucesso: %d, Erros: %d", successCount, errorCount)
}

func main() {
	logrus.Info("Iniciando script de carga de pagamentos...")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao abrir conexão com o banco")
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logrus.WithError(err).Fatal("ERRO ao conectar ao banco")
	}

	table := quoteTable(cfg.Payments.Table)
	createTable(db, table)

	months := cfg.Payments.LookbackMonths
	if months <= 0 {
		months = 12
	}

	rnd := rand.New(rand.NewSource(seed))
	customers := buildCustomers(rnd)

	startTime := time.Now()
	tx, err := db.Begin()
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao iniciar transação")
	}

	insertPayments(tx, table, customers, months, rnd)

	if err := tx.Commit(); err != nil {
		logrus.WithError(err).Error("ERRO ao confirmar transação")
		if err := tx.Rollback(); err != nil {
			logrus.WithError(err).Fatal("ERRO ao reverter transação")
		}
		os.Exit(1)
	}

	logrus.Infof("Carga concluída em %v!", time.Since(startTime))
}
