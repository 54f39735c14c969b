// Package optimizing implementa o motor de otimização de lances: validação
// de schema, classificação das linhas pelo conjunto ordenado de regras,
// ajuste do lance com limites globais e anotação da decisão.
package optimizing

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/bid-optimizer-api/internal/config"
	"github.com/vfg2006/bid-optimizer-api/internal/domain"
	"github.com/vfg2006/bid-optimizer-api/pkg/utils"
)

// Optimizer é o contrato do motor exposto para a API, o scheduler e a CLI.
type Optimizer interface {
	OptimizeBulksheet(sheet *domain.Bulksheet) (*domain.OptimizationResult, error)
	Rules() []Rule
	Bounds() (minBid, maxBid float64)
}

// Service avalia cada linha de forma independente: não há estatísticas
// agregadas nem normalização entre linhas, o que permite o fan-out por
// workers com remontagem na ordem original.
type Service struct {
	rules   []Rule
	minBid  float64
	maxBid  float64
	workers int
}

// NewService monta o motor a partir da configuração: limites globais,
// thresholds das regras padrão e, opcionalmente, um arquivo YAML que
// substitui o conjunto de regras inteiro.
func NewService(cfg *config.Config) (Optimizer, error) {
	rules := DefaultRules(cfg.Engine)

	if cfg.Engine.RulesFile != "" {
		custom, err := LoadRulesFile(cfg.Engine.RulesFile)
		if err != nil {
			return nil, err
		}

		logrus.WithFields(logrus.Fields{
			"rules_file": cfg.Engine.RulesFile,
			"rules":      len(custom),
		}).Info("Conjunto de regras customizado carregado")

		rules = custom
	}

	return &Service{
		rules:   rules,
		minBid:  cfg.Engine.MinBid,
		maxBid:  cfg.Engine.MaxBid,
		workers: cfg.Engine.Workers,
	}, nil
}

// Rules retorna o conjunto de regras ativo, na ordem de precedência.
func (s *Service) Rules() []Rule {
	return s.rules
}

// Bounds retorna os limites globais de lance.
func (s *Service) Bounds() (float64, float64) {
	return s.minBid, s.maxBid
}

// OptimizeBulksheet valida o schema, converte as linhas e aplica o pipeline
// de otimização a cada uma. Falhas de schema ou de conversão abortam a
// execução antes de qualquer saída ser produzida.
func (s *Service) OptimizeBulksheet(sheet *domain.Bulksheet) (*domain.OptimizationResult, error) {
	if err := ValidateColumns(sheet.Columns); err != nil {
		return nil, err
	}

	rows, err := parseRows(sheet)
	if err != nil {
		return nil, err
	}

	optimized := s.optimizeRows(rows)
	summary := domain.Summarize(optimized)

	logrus.WithFields(logrus.Fields{
		"rows":      summary.TotalRows,
		"increased": summary.Increased,
		"decreased": summary.Decreased,
		"unchanged": summary.Unchanged,
	}).Info("Otimização de lances concluída")

	return &domain.OptimizationResult{
		Columns: sheet.Columns,
		Rows:    optimized,
		Summary: summary,
	}, nil
}

// optimizeRows distribui as linhas entre workers e remonta o resultado na
// ordem de entrada, mantendo a saída determinística.
func (s *Service) optimizeRows(rows []domain.TargetRow) []domain.OptimizedRow {
	optimized := make([]domain.OptimizedRow, len(rows))

	jobs := make(chan int)
	wg := sync.WaitGroup{}

	workers := s.workers
	if workers > len(rows) {
		workers = len(rows)
	}

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				optimized[i] = s.OptimizeRow(rows[i])
			}
		}()
	}

	for i := range rows {
		jobs <- i
	}
	close(jobs)

	wg.Wait()

	return optimized
}

// OptimizeRow classifica uma única linha, ajusta o lance e monta a anotação.
func (s *Service) OptimizeRow(row domain.TargetRow) domain.OptimizedRow {
	winner := s.classify(row)

	bid := row.EffectiveBid()

	delta := 0.0
	if winner != nil {
		delta = winner.Delta
	}

	newBid := s.clamp(utils.RoundWithTwoDecimalPlace(bid + delta))
	changes := utils.RoundWithTwoDecimalPlace(newBid - bid)

	return domain.OptimizedRow{
		TargetRow:  row,
		Adjustment: annotate(winner, bid, newBid, changes),
	}
}

// classify avalia todas as regras em ordem e devolve a última que casou,
// ou nil quando nenhuma casa. Regras posteriores sobrescrevem o efeito das
// anteriores para a mesma linha; os deltas nunca se acumulam.
func (s *Service) classify(row domain.TargetRow) *Rule {
	var winner *Rule
	for i := range s.rules {
		if s.rules[i].Match.Matches(row) {
			winner = &s.rules[i]
		}
	}
	return winner
}

// clamp trunca o lance proposto nos limites globais. Nunca é um erro.
func (s *Service) clamp(bid float64) float64 {
	if bid < s.minBid {
		return s.minBid
	}
	if bid > s.maxBid {
		return s.maxBid
	}
	return bid
}

// annotate deriva os campos de explicação a partir da regra vencedora e da
// variação efetivamente aplicada. A direção vem estritamente do sinal da
// variação: uma regra que casou mas foi cancelada pelo clamp vira "No
// Change". Lance atual zero nunca é erro; o percentual é reportado como 0.
func annotate(winner *Rule, bid, newBid, changes float64) domain.Adjustment {
	adjustment := domain.Adjustment{
		NewBid:  newBid,
		Changes: changes,
		Why:     domain.DirectionNoChange,
	}

	if winner != nil {
		adjustment.Why = winner.Why
		adjustment.Goal = winner.Goal
	}

	switch {
	case changes > 0:
		adjustment.Direction = domain.DirectionIncrease
		adjustment.HowMuch = fmt.Sprintf("Increased bid by $%.2f", changes)
	case changes < 0:
		adjustment.Direction = domain.DirectionDecrease
		adjustment.HowMuch = fmt.Sprintf("Decreased bid by $%.2f", -changes)
	default:
		adjustment.Direction = domain.DirectionNoChange
		adjustment.HowMuch = "No change"
	}

	if bid > 0 {
		adjustment.PercentChanges = utils.RoundWithTwoDecimalPlace(changes / bid * 100)
	}

	return adjustment
}
