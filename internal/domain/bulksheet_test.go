package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeColumn(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Nome canônico", "Bid", "bid"},
		{"Sufixo informacional", "Campaign Name (Informational only)", "campaign name"},
		{"Sufixo com caixa diferente", "Portfolio Name (INFORMATIONAL ONLY)", "portfolio name"},
		{"Espaços nas pontas", "  Spend  ", "spend"},
		{"Sufixo e espaços", " Ad Group Default Bid (Informational only) ", "ad group default bid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeColumn(tt.input))
		})
	}
}

func TestBulksheet_IndexOf(t *testing.T) {
	sheet := &Bulksheet{
		Columns: []string{"Campaign Name (Informational only)", "Bid", "ROAS"},
	}

	assert.Equal(t, 0, sheet.IndexOf(ColumnCampaignName))
	assert.Equal(t, 1, sheet.IndexOf(ColumnBid))
	assert.Equal(t, 2, sheet.IndexOf(ColumnROAS))
	assert.Equal(t, -1, sheet.IndexOf(ColumnSpend))
}

func TestTargetRow_EffectiveBid(t *testing.T) {
	assert.Equal(t, 1.25, TargetRow{Bid: 1.25, AdGroupDefaultBid: 0.75}.EffectiveBid())
	assert.Equal(t, 0.75, TargetRow{Bid: 0, AdGroupDefaultBid: 0.75}.EffectiveBid())
	assert.Equal(t, 0.0, TargetRow{}.EffectiveBid())
}

func TestSummarize(t *testing.T) {
	rows := []OptimizedRow{
		{Adjustment: Adjustment{Direction: DirectionIncrease, Why: "High performance"}},
		{Adjustment: Adjustment{Direction: DirectionDecrease, Why: "Cost but No Revenue"}},
		{Adjustment: Adjustment{Direction: DirectionDecrease, Why: "Cost but No Revenue"}},
		{Adjustment: Adjustment{Direction: DirectionNoChange, Why: "No Change"}},
	}

	summary := Summarize(rows)

	assert.Equal(t, 4, summary.TotalRows)
	assert.Equal(t, 1, summary.Increased)
	assert.Equal(t, 2, summary.Decreased)
	assert.Equal(t, 1, summary.Unchanged)
	assert.Equal(t, 2, summary.CountsByReason["Cost but No Revenue"])
	assert.Equal(t, 1, summary.CountsByReason["No Change"])
	assert.False(t, summary.GeneratedAt.IsZero())
}
