package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/bid-optimizer-api/internal/scheduler"
	"github.com/vfg2006/bid-optimizer-api/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeOptimize = "optimize"
)

// CronJobServices contém os serviços de cron disponíveis para disparo manual
type CronJobServices struct {
	OptimizeSyncService *scheduler.OptimizeSyncService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeOptimize:
			if services.OptimizeSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de otimização não disponível", nil)
				return
			}
			services.OptimizeSyncService.TriggerManualSync()
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: optimize", nil)
			return
		}

		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		if services.OptimizeSyncService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de otimização não disponível", nil)
			return
		}

		response := map[string]any{
			"optimize": services.OptimizeSyncService.Status(),
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}
}
