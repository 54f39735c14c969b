package optimizing

import (
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"github.com/vfg2006/bid-optimizer-api/internal/config"
	"github.com/vfg2006/bid-optimizer-api/internal/domain"
)

// Nomes das regras padrão.
const (
	RuleNoRevenueHighSpend   = "no-revenue-high-spend"
	RuleNoRevenueMediumSpend = "no-revenue-medium-spend"
	RuleLowROAS              = "low-roas"
	RuleHighPerformance      = "high-performance"
)

// Conditions define os thresholds opcionais de uma regra sobre as métricas
// de uma linha. Campo nil significa sem restrição; Above/Below são estritos,
// AtLeast/AtMost são inclusivos.
type Conditions struct {
	ClicksAbove       *int64   `mapstructure:"clicks_above" json:"clicks_above,omitempty"`
	ClicksAtMost      *int64   `mapstructure:"clicks_at_most" json:"clicks_at_most,omitempty"`
	OrdersAbove       *int64   `mapstructure:"orders_above" json:"orders_above,omitempty"`
	OrdersAtMost      *int64   `mapstructure:"orders_at_most" json:"orders_at_most,omitempty"`
	SpendAbove        *float64 `mapstructure:"spend_above" json:"spend_above,omitempty"`
	SpendAtLeast      *float64 `mapstructure:"spend_at_least" json:"spend_at_least,omitempty"`
	SpendAtMost       *float64 `mapstructure:"spend_at_most" json:"spend_at_most,omitempty"`
	SalesAtLeast      *float64 `mapstructure:"sales_at_least" json:"sales_at_least,omitempty"`
	SalesBelow        *float64 `mapstructure:"sales_below" json:"sales_below,omitempty"`
	ROASAbove         *float64 `mapstructure:"roas_above" json:"roas_above,omitempty"`
	ROASBelow         *float64 `mapstructure:"roas_below" json:"roas_below,omitempty"`
	ImpressionsAbove  *int64   `mapstructure:"impressions_above" json:"impressions_above,omitempty"`
	ImpressionsAtMost *int64   `mapstructure:"impressions_at_most" json:"impressions_at_most,omitempty"`
}

// Matches avalia todos os thresholds definidos contra as métricas da linha.
func (c Conditions) Matches(row domain.TargetRow) bool {
	if c.ClicksAbove != nil && row.Clicks <= *c.ClicksAbove {
		return false
	}
	if c.ClicksAtMost != nil && row.Clicks > *c.ClicksAtMost {
		return false
	}
	if c.OrdersAbove != nil && row.Orders <= *c.OrdersAbove {
		return false
	}
	if c.OrdersAtMost != nil && row.Orders > *c.OrdersAtMost {
		return false
	}
	if c.SpendAbove != nil && row.Spend <= *c.SpendAbove {
		return false
	}
	if c.SpendAtLeast != nil && row.Spend < *c.SpendAtLeast {
		return false
	}
	if c.SpendAtMost != nil && row.Spend > *c.SpendAtMost {
		return false
	}
	if c.SalesAtLeast != nil && row.Sales < *c.SalesAtLeast {
		return false
	}
	if c.SalesBelow != nil && row.Sales >= *c.SalesBelow {
		return false
	}
	if c.ROASAbove != nil && row.ROAS <= *c.ROASAbove {
		return false
	}
	if c.ROASBelow != nil && row.ROAS >= *c.ROASBelow {
		return false
	}
	if c.ImpressionsAbove != nil && row.Impressions <= *c.ImpressionsAbove {
		return false
	}
	if c.ImpressionsAtMost != nil && row.Impressions > *c.ImpressionsAtMost {
		return false
	}
	return true
}

// Rule é uma regra de otimização: predicado, delta de lance e explicação.
// As regras são imutáveis durante uma execução e avaliadas em ordem fixa; a
// posição na lista define a precedência (a última que casar vence).
type Rule struct {
	Name  string     `mapstructure:"name" json:"name"`
	Why   string     `mapstructure:"why" json:"why"`
	Goal  string     `mapstructure:"goal" json:"goal"`
	Delta float64    `mapstructure:"delta" json:"delta"`
	Match Conditions `mapstructure:"match" json:"match"`
}

// DefaultRules monta o conjunto padrão de regras a partir dos thresholds
// configurados, na ordem de precedência documentada.
func DefaultRules(cfg config.Engine) []Rule {
	return []Rule{
		{
			Name:  RuleNoRevenueHighSpend,
			Why:   "Cost but No Revenue (High Spend)",
			Goal:  "To Decrease ACOS",
			Delta: cfg.NoRevenueHighSpendDelta,
			Match: Conditions{
				ClicksAbove:  i64(cfg.NoRevenueMinClicks),
				OrdersAtMost: i64(0),
				SpendAbove:   f64(cfg.NoRevenueHighSpend),
			},
		},
		{
			Name:  RuleNoRevenueMediumSpend,
			Why:   "Cost but No Revenue",
			Goal:  "To Decrease ACOS",
			Delta: cfg.NoRevenueMedSpendDelta,
			Match: Conditions{
				ClicksAbove:  i64(cfg.NoRevenueMinClicks),
				OrdersAtMost: i64(0),
				SpendAtLeast: f64(cfg.NoRevenueMinSpend),
				SpendAtMost:  f64(cfg.NoRevenueHighSpend),
			},
		},
		{
			Name:  RuleLowROAS,
			Why:   "High ACOS but Overspending",
			Goal:  "To Decrease ACOS",
			Delta: cfg.LowROASDelta,
			Match: Conditions{
				ROASBelow:   f64(cfg.LowROASThreshold),
				OrdersAbove: i64(cfg.LowROASMinOrders),
			},
		},
		{
			Name:  RuleHighPerformance,
			Why:   "ROAS > 4, Orders > 1, Clicks > 20",
			Goal:  "To Increase Sales",
			Delta: cfg.HighPerfDelta,
			Match: Conditions{
				ROASAbove:   f64(cfg.HighPerfMinROAS),
				OrdersAbove: i64(cfg.HighPerfMinOrders),
				ClicksAbove: i64(cfg.HighPerfMinClicks),
			},
		},
	}
}

// LoadRulesFile lê um conjunto de regras customizado de um arquivo YAML,
// substituindo o conjunto padrão por inteiro.
func LoadRulesFile(path string) ([]Rule, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "erro ao ler arquivo de regras %q", path)
	}

	var rules []Rule
	if err := v.UnmarshalKey("rules", &rules); err != nil {
		return nil, errors.Wrapf(err, "erro ao decodificar regras de %q", path)
	}

	if len(rules) == 0 {
		return nil, errors.Errorf("arquivo de regras %q não define nenhuma regra", path)
	}

	for i, rule := range rules {
		if rule.Name == "" {
			return nil, errors.Errorf("regra %d de %q sem nome", i, path)
		}
	}

	return rules, nil
}

func i64(v int64) *int64 { return &v }

func f64(v float64) *float64 { return &v }
