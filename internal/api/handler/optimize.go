package handler

import (
	"fmt"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/bid-optimizer-api/infrastructure/bulksheet"
	"github.com/vfg2006/bid-optimizer-api/internal/domain"
	"github.com/vfg2006/bid-optimizer-api/internal/usecases/optimizing"
	"github.com/vfg2006/bid-optimizer-api/pkg/apiErrors"
	"github.com/vfg2006/bid-optimizer-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// maxUploadSize limita uploads de bulksheet a 32 MiB
const maxUploadSize = 32 << 20

// Optimize recebe um bulksheet via multipart (campo "bulksheet"), roda o
// motor e devolve a tabela aumentada como CSV (padrão) ou JSON
// (?format=json). Falhas de schema ou de valor abortam sem saída parcial.
func Optimize(service optimizing.Optimizer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)

		file, header, err := r.FormFile("bulksheet")
		if err != nil {
			logger.WithError(err).Warn("optimize: missing bulksheet file in request")
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Envie o bulksheet no campo \"bulksheet\"", nil)
			return
		}
		defer file.Close()

		logger.WithFields(log.Fields{
			"filename": header.Filename,
			"size":     header.Size,
		}).Info("optimize: bulksheet received")

		sheet, err := bulksheet.Read(file)
		if err != nil {
			logger.WithError(err).Warn("optimize: failed to parse bulksheet CSV")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "CSV inválido", err.Error())
			return
		}

		result, err := service.OptimizeBulksheet(sheet)
		if err != nil {
			writeOptimizeError(w, logger, err)
			return
		}

		logger.WithFields(log.Fields{
			"rows":      result.Summary.TotalRows,
			"increased": result.Summary.Increased,
			"decreased": result.Summary.Decreased,
		}).Info("optimize: bulksheet optimized")

		if r.URL.Query().Get("format") == "json" {
			w.Header().Set("Content-Type", "application/json")
			if err := json.NewEncoder(w).Encode(result); err != nil {
				logger.WithError(err).Error("optimize: failed to encode response")
			}
			return
		}

		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "optimized_"+header.Filename))
		if err := bulksheet.Write(w, result); err != nil {
			logger.WithError(err).Error("optimize: failed to write CSV response")
		}
	})
}

// writeOptimizeError traduz os erros do motor em respostas com código
func writeOptimizeError(w http.ResponseWriter, logger log.Logger, err error) {
	var schemaErr *domain.SchemaError
	if errors.As(err, &schemaErr) {
		logger.WithField("missing_columns", schemaErr.Missing).Warn("optimize: bulksheet schema is invalid")
		apiErrors.WriteError(w, apiErrors.ErrInvalidSchema, "Bulksheet sem colunas obrigatórias", schemaErr.Missing)
		return
	}

	var valueErr *domain.ValueError
	if errors.As(err, &valueErr) {
		logger.WithFields(log.Fields{
			"row":    valueErr.Row,
			"column": valueErr.Column,
			"value":  valueErr.Value,
		}).Warn("optimize: bulksheet has a non-numeric value")
		apiErrors.WriteError(w, apiErrors.ErrInvalidValue, "Valor numérico inválido no bulksheet", map[string]any{
			"row":    valueErr.Row,
			"column": valueErr.Column,
			"value":  valueErr.Value,
		})
		return
	}

	logger.WithError(err).Error("optimize: optimization failed")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao otimizar o bulksheet", nil)
}
