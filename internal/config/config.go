package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Engine       Engine       `mapstructure:",squash"`
	Optimizer    Optimizer    `mapstructure:",squash"`
	OptimizeSync OptimizeSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// Engine concentra os limites globais de lance e os thresholds/deltas das
// regras padrão. Cada valor pode ser sobrescrito individualmente por
// variável de ambiente; RulesFile (YAML) substitui o conjunto inteiro.
type Engine struct {
	MinBid  float64 `mapstructure:"engine_min_bid"`
	MaxBid  float64 `mapstructure:"engine_max_bid"`
	Workers int     `mapstructure:"engine_workers"`

	RulesFile string `mapstructure:"engine_rules_file"`

	NoRevenueMinClicks      int64   `mapstructure:"engine_no_revenue_min_clicks"`
	NoRevenueHighSpend      float64 `mapstructure:"engine_no_revenue_high_spend"`
	NoRevenueMinSpend       float64 `mapstructure:"engine_no_revenue_min_spend"`
	NoRevenueHighSpendDelta float64 `mapstructure:"engine_no_revenue_high_spend_delta"`
	NoRevenueMedSpendDelta  float64 `mapstructure:"engine_no_revenue_med_spend_delta"`

	LowROASThreshold float64 `mapstructure:"engine_low_roas_threshold"`
	LowROASMinOrders int64   `mapstructure:"engine_low_roas_min_orders"`
	LowROASDelta     float64 `mapstructure:"engine_low_roas_delta"`

	HighPerfMinROAS   float64 `mapstructure:"engine_high_perf_min_roas"`
	HighPerfMinOrders int64   `mapstructure:"engine_high_perf_min_orders"`
	HighPerfMinClicks int64   `mapstructure:"engine_high_perf_min_clicks"`
	HighPerfDelta     float64 `mapstructure:"engine_high_perf_delta"`
}

// Optimizer define os arquivos usados pelas execuções em lote (CLI e cron).
type Optimizer struct {
	InputFile  string `mapstructure:"optimizer_input_file"`
	OutputFile string `mapstructure:"optimizer_output_file"`
	GuideFile  string `mapstructure:"optimizer_guide_file"`
}

type OptimizeSync struct {
	CronSchedule string `mapstructure:"optimize_sync_cron"`
	Enabled      bool   `mapstructure:"optimize_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("LOG_LEVEL", "debug")

	// Limites de lance da Amazon: nenhum lance abaixo de $0.02 ou acima de $5.00
	viper.SetDefault("ENGINE_MIN_BID", 0.02)
	viper.SetDefault("ENGINE_MAX_BID", 5.00)
	viper.SetDefault("ENGINE_WORKERS", 4)

	viper.SetDefault("ENGINE_RULES_FILE", "")

	// Cliques sem pedidos: reduzir o lance conforme a faixa de gasto
	viper.SetDefault("ENGINE_NO_REVENUE_MIN_CLICKS", 0)
	viper.SetDefault("ENGINE_NO_REVENUE_HIGH_SPEND", 20.0)
	viper.SetDefault("ENGINE_NO_REVENUE_MIN_SPEND", 5.0)
	viper.SetDefault("ENGINE_NO_REVENUE_HIGH_SPEND_DELTA", -0.20)
	viper.SetDefault("ENGINE_NO_REVENUE_MED_SPEND_DELTA", -0.05)

	// ROAS baixo com pedidos: ACOS alto demais
	viper.SetDefault("ENGINE_LOW_ROAS_THRESHOLD", 3.0)
	viper.SetDefault("ENGINE_LOW_ROAS_MIN_ORDERS", 0)
	viper.SetDefault("ENGINE_LOW_ROAS_DELTA", -0.10)

	// Alta performance: as duas variantes documentadas da ferramenta divergem
	// entre 10 e 20 cliques; 20 é o padrão adotado
	viper.SetDefault("ENGINE_HIGH_PERF_MIN_ROAS", 4.0)
	viper.SetDefault("ENGINE_HIGH_PERF_MIN_ORDERS", 1)
	viper.SetDefault("ENGINE_HIGH_PERF_MIN_CLICKS", 20)
	viper.SetDefault("ENGINE_HIGH_PERF_DELTA", 0.10)

	viper.SetDefault("OPTIMIZER_INPUT_FILE", "yourinput_file.csv")
	viper.SetDefault("OPTIMIZER_OUTPUT_FILE", "youroutput_file.csv")
	viper.SetDefault("OPTIMIZER_GUIDE_FILE", "ppc_manager_guide.pdf")

	viper.SetDefault("OPTIMIZE_SYNC_CRON", "0 5 * * 1") // Toda segunda-feira às 5h da manhã
	viper.SetDefault("OPTIMIZE_SYNC_ENABLED", false)
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
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

	if config.Engine.Workers < 1 {
		config.Engine.Workers = 1
	}

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
