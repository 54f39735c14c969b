package domain

import "time"

// OptimizationResult é a tabela aumentada produzida por uma execução completa
// do motor, na mesma ordem das linhas de entrada.
type OptimizationResult struct {
	Columns []string       `json:"columns"`
	Rows    []OptimizedRow `json:"rows"`
	Summary RunSummary     `json:"summary"`
}

// RunSummary agrega os contadores de uma execução para logs e para o guia do
// gestor de PPC. Os contadores são derivados das linhas já otimizadas, nunca
// usados pelo motor de regras.
type RunSummary struct {
	TotalRows      int            `json:"total_rows"`
	Increased      int            `json:"increased"`
	Decreased      int            `json:"decreased"`
	Unchanged      int            `json:"unchanged"`
	CountsByReason map[string]int `json:"counts_by_reason"`
	GeneratedAt    time.Time      `json:"generated_at"`
}

// Summarize calcula o RunSummary a partir das linhas otimizadas.
func Summarize(rows []OptimizedRow) RunSummary {
	summary := RunSummary{
		TotalRows:      len(rows),
		CountsByReason: make(map[string]int),
		GeneratedAt:    time.Now(),
	}

	for _, row := range rows {
		switch row.Direction {
		case DirectionIncrease:
			summary.Increased++
		case DirectionDecrease:
			summary.Decreased++
		default:
			summary.Unchanged++
		}
		summary.CountsByReason[row.Why]++
	}

	return summary
}
