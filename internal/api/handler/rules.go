package handler

import (
	"net/http"

	"github.com/vfg2006/bid-optimizer-api/internal/usecases/optimizing"
	"github.com/vfg2006/bid-optimizer-api/pkg/log"
)

// ruleSetResponse expõe a configuração ativa do motor: limites globais e as
// regras na ordem de precedência.
type ruleSetResponse struct {
	MinBid float64           `json:"min_bid"`
	MaxBid float64           `json:"max_bid"`
	Rules  []optimizing.Rule `json:"rules"`
}

// GetRules retorna o conjunto de regras ativo do motor.
func GetRules(service optimizing.Optimizer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		minBid, maxBid := service.Bounds()
		response := ruleSetResponse{
			MinBid: minBid,
			MaxBid: maxBid,
			Rules:  service.Rules(),
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("rules: failed to encode response")
		}
	})
}
