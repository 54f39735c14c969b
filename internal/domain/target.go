package domain

// TargetRow é uma linha do bulksheet já coagida para tipos numéricos: uma
// palavra-chave ou alvo de produto com suas métricas de performance.
type TargetRow struct {
	Index             int     `json:"index"`
	CampaignName      string  `json:"campaign_name"`
	PortfolioName     string  `json:"portfolio_name"`
	CampaignState     string  `json:"campaign_state"`
	Bid               float64 `json:"bid"`
	AdGroupDefaultBid float64 `json:"ad_group_default_bid"`
	Spend             float64 `json:"spend"`
	Sales             float64 `json:"sales"`
	Orders            int64   `json:"orders"`
	Clicks            int64   `json:"clicks"`
	Impressions       int64   `json:"impressions"`
	ROAS              float64 `json:"roas"`

	// Raw guarda o registro original completo para o writer preservar todas
	// as colunas do export na saída.
	Raw []string `json:"-"`
}

// EffectiveBid é o lance usado pelo motor: quando o lance da linha é zero, a
// linha herda o lance padrão do grupo de anúncios.
func (r TargetRow) EffectiveBid() float64 {
	if r.Bid == 0 {
		return r.AdGroupDefaultBid
	}
	return r.Bid
}

// Direções possíveis do ajuste de lance.
const (
	DirectionIncrease = "Increase"
	DirectionDecrease = "Decrease"
	DirectionNoChange = "No Change"
)

// Adjustment é o resultado da otimização de uma linha.
type Adjustment struct {
	NewBid         float64 `json:"new_bid"`
	Direction      string  `json:"increase_or_decrease"`
	Why            string  `json:"why"`
	Goal           string  `json:"goal"`
	HowMuch        string  `json:"how_much"`
	Changes        float64 `json:"changes"`
	PercentChanges float64 `json:"percent_changes"`
}

// OptimizedRow combina a linha de entrada com o ajuste calculado.
type OptimizedRow struct {
	TargetRow
	Adjustment
}
