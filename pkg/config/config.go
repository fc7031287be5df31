package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App    AppConfig
	DB     DBConfig
	HTTP   HTTPConfig
	Ledger LedgerConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// DBConfig configuración de SQLite. Un archivo local por despliegue (un solo escritor lógico).
type DBConfig struct {
	Path string // ruta al archivo .db; se crea si no existe
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// LedgerConfig parámetros del motor de movimientos (préstamos y multas).
type LedgerConfig struct {
	LoanDays  int             // días de préstamo antes del vencimiento
	MaxLoans  int             // préstamos concurrentes permitidos por miembro
	DailyFine decimal.Decimal // multa por día de retraso
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, DB_PATH, HTTP_PORT, LEDGER_LOAN_DAYS, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	// También intenta config.env
	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	dailyFine, err := decimal.NewFromString(getString(v, "LEDGER_DAILY_FINE", "0.50"))
	if err != nil {
		return nil, fmt.Errorf("LEDGER_DAILY_FINE inválido: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "stock-ledger"),
		},
		DB: DBConfig{
			Path: getString(v, "DB_PATH", "stock-ledger.db"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Ledger: LedgerConfig{
			LoanDays:  getInt(v, "LEDGER_LOAN_DAYS", 14),
			MaxLoans:  getInt(v, "LEDGER_MAX_LOANS", 5),
			DailyFine: dailyFine,
		},
	}

	if cfg.Ledger.LoanDays <= 0 || cfg.Ledger.MaxLoans <= 0 || dailyFine.IsNegative() {
		return nil, fmt.Errorf("configuración de ledger inválida: loan_days=%d max_loans=%d daily_fine=%s",
			cfg.Ledger.LoanDays, cfg.Ledger.MaxLoans, dailyFine)
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
