// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "strings"

// Nomes canônicos das colunas obrigatórias do bulksheet. A Amazon exporta
// algumas delas com o sufixo " (Informational only)", que é tolerado na
// validação do schema.
const (
	ColumnCampaignName      = "Campaign Name"
	ColumnPortfolioName     = "Portfolio Name"
	ColumnCampaignState     = "Campaign State"
	ColumnBid               = "Bid"
	ColumnAdGroupDefaultBid = "Ad Group Default Bid"
	ColumnSpend             = "Spend"
	ColumnSales             = "Sales"
	ColumnOrders            = "Orders"
	ColumnClicks            = "Clicks"
	ColumnROAS              = "ROAS"
	ColumnImpressions       = "Impressions"
)

// RequiredColumns lista as colunas que o bulksheet precisa conter antes de
// qualquer otimização acontecer.
var RequiredColumns = []string{
	ColumnCampaignName,
	ColumnPortfolioName,
	ColumnCampaignState,
	ColumnBid,
	ColumnAdGroupDefaultBid,
	ColumnSpend,
	ColumnSales,
	ColumnOrders,
	ColumnClicks,
	ColumnROAS,
	ColumnImpressions,
}

// Bulksheet representa o export tabular bruto, antes da coerção numérica.
// Records preserva as células originais na ordem do arquivo.
type Bulksheet struct {
	Columns []string
	Records [][]string
}

// NormalizeColumn reduz um cabeçalho à forma canônica usada na validação:
// minúsculas, sem espaços nas pontas e sem o sufixo informacional da Amazon.
func NormalizeColumn(name string) string {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.TrimSuffix(normalized, " (informational only)")
	return strings.TrimSpace(normalized)
}

// IndexOf retorna a posição da coluna canônica no cabeçalho, ou -1.
func (b *Bulksheet) IndexOf(canonical string) int {
	want := NormalizeColumn(canonical)
	for i, col := range b.Columns {
		if NormalizeColumn(col) == want {
			return i
		}
	}
	return -1
}
