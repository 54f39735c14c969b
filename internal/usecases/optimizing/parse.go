package optimizing

import (
	"strconv"
	"strings"

	"github.com/vfg2006/bid-optimizer-api/internal/domain"
)

// parseRows converte os registros brutos do bulksheet em linhas tipadas.
// Células vazias em colunas numéricas valem 0; qualquer texto não numérico
// aborta a execução inteira com um ValueError apontando linha e coluna.
func parseRows(sheet *domain.Bulksheet) ([]domain.TargetRow, error) {
	campaignIdx := sheet.IndexOf(domain.ColumnCampaignName)
	portfolioIdx := sheet.IndexOf(domain.ColumnPortfolioName)
	stateIdx := sheet.IndexOf(domain.ColumnCampaignState)
	bidIdx := sheet.IndexOf(domain.ColumnBid)
	defaultBidIdx := sheet.IndexOf(domain.ColumnAdGroupDefaultBid)
	spendIdx := sheet.IndexOf(domain.ColumnSpend)
	salesIdx := sheet.IndexOf(domain.ColumnSales)
	ordersIdx := sheet.IndexOf(domain.ColumnOrders)
	clicksIdx := sheet.IndexOf(domain.ColumnClicks)
	roasIdx := sheet.IndexOf(domain.ColumnROAS)
	impressionsIdx := sheet.IndexOf(domain.ColumnImpressions)

	rows := make([]domain.TargetRow, 0, len(sheet.Records))

	for i, record := range sheet.Records {
		row := domain.TargetRow{
			Index:         i,
			CampaignName:  cell(record, campaignIdx),
			PortfolioName: cell(record, portfolioIdx),
			CampaignState: cell(record, stateIdx),
			Raw:           record,
		}

		var err error
		if row.Bid, err = parseDecimal(record, bidIdx, i, domain.ColumnBid); err != nil {
			return nil, err
		}
		if row.AdGroupDefaultBid, err = parseDecimal(record, defaultBidIdx, i, domain.ColumnAdGroupDefaultBid); err != nil {
			return nil, err
		}
		if row.Spend, err = parseDecimal(record, spendIdx, i, domain.ColumnSpend); err != nil {
			return nil, err
		}
		if row.Sales, err = parseDecimal(record, salesIdx, i, domain.ColumnSales); err != nil {
			return nil, err
		}
		if row.ROAS, err = parseDecimal(record, roasIdx, i, domain.ColumnROAS); err != nil {
			return nil, err
		}
		if row.Orders, err = parseCount(record, ordersIdx, i, domain.ColumnOrders); err != nil {
			return nil, err
		}
		if row.Clicks, err = parseCount(record, clicksIdx, i, domain.ColumnClicks); err != nil {
			return nil, err
		}
		if row.Impressions, err = parseCount(record, impressionsIdx, i, domain.ColumnImpressions); err != nil {
			return nil, err
		}

		rows = append(rows, row)
	}

	return rows, nil
}

func cell(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

func parseDecimal(record []string, idx, rowIdx int, column string) (float64, error) {
	raw := cell(record, idx)
	if raw == "" {
		return 0, nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &domain.ValueError{Row: rowIdx, Column: column, Value: raw}
	}

	return value, nil
}

func parseCount(record []string, idx, rowIdx int, column string) (int64, error) {
	// Exports da Amazon às vezes trazem contagens como decimais ("2.0")
	value, err := parseDecimal(record, idx, rowIdx, column)
	if err != nil {
		return 0, err
	}
	return int64(value), nil
}
