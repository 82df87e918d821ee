package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	RecordsSourceTables   = "tables"
	RecordsSourcePostgres = "postgres"
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Database    Database    `mapstructure:",squash"`
	Records     Records     `mapstructure:",squash"`
	Tables      Tables      `mapstructure:",squash"`
	Payments    Payments    `mapstructure:",squash"`
	Cache       Cache       `mapstructure:",squash"`
	RecordsSync RecordsSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Records define de onde vêm os pagamentos e em qual fuso as datas são agregadas
type Records struct {
	Source   string         `mapstructure:"records_source"`
	Timezone string         `mapstructure:"records_timezone"`
	Location *time.Location `mapstructure:"-"`
}

// Tables é a API externa de tabelas. O client id é emitido previamente, não há handshake de sessão.
type Tables struct {
	URL      string        `mapstructure:"tables_url"`
	ClientID string        `mapstructure:"tables_client_id"`
	TableID  string        `mapstructure:"tables_table_id"`
	Role     string        `mapstructure:"tables_role"`
	Timeout  time.Duration `mapstructure:"tables_timeout"`
}

type Payments struct {
	Table          string `mapstructure:"payments_table"`
	LookbackMonths int    `mapstructure:"payments_lookback_months"`
}

type Cache struct {
	Enabled    bool `mapstructure:"report_cache_enabled"`
	MaxEntries int  `mapstructure:"report_cache_max_entries"`
}

type RecordsSync struct {
	CronSchedule string `mapstructure:"records_sync_cron"`
	Enabled      bool   `mapstructure:"records_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/revenue")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("RECORDS_SOURCE", RecordsSourceTables)
	viper.SetDefault("RECORDS_TIMEZONE", "UTC")

	viper.SetDefault("TABLES_URL", "http://localhost:9000/api")
	viper.SetDefault("TABLES_CLIENT_ID", "") // ONLY LOCAL
	viper.SetDefault("TABLES_TABLE_ID", "payments")
	viper.SetDefault("TABLES_ROLE", "viewer")
	viper.SetDefault("TABLES_TIMEOUT", "30s")

	viper.SetDefault("PAYMENTS_TABLE", "payments")
	viper.SetDefault("PAYMENTS_LOOKBACK_MONTHS", 13) // período atual + anterior com folga para presets

	viper.SetDefault("REPORT_CACHE_ENABLED", true)
	viper.SetDefault("REPORT_CACHE_MAX_ENTRIES", 32)

	viper.SetDefault("RECORDS_SYNC_CRON", "*/15 * * * *") // A cada 15 minutos
	viper.SetDefault("RECORDS_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.finalize(); err != nil {
		return nil, err
	}

	return config, nil
}

// finalize monta os campos derivados e valida o que não tem default seguro
func (c *Config) finalize() error {
	switch c.Records.Source {
	case RecordsSourceTables, RecordsSourcePostgres:
	default:
		return fmt.Errorf("RECORDS_SOURCE inválido: %q (use %q ou %q)", c.Records.Source, RecordsSourceTables, RecordsSourcePostgres)
	}

	loc, err := time.LoadLocation(c.Records.Timezone)
	if err != nil {
		return fmt.Errorf("RECORDS_TIMEZONE inválido: %w", err)
	}
	c.Records.Location = loc

	if c.Cache.MaxEntries <= 0 {
		c.Cache.MaxEntries = 1
	}

	c.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		c.Database.Driver,
		c.Database.User,
		c.Database.Password,
		c.Database.URL,
	)

	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
