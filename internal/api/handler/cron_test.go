package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
)

func cronRequest(cronType string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/v1/cron/"+cronType+"/run", nil)

	params := httprouter.Params{{Key: "type", Value: cronType}}
	ctx := context.WithValue(req.Context(), httprouter.ParamsKey, params)

	return req.WithContext(ctx)
}

func TestRunCronJob(t *testing.T) {
	t.Run("Tipo inválido", func(t *testing.T) {
		resp := httptest.NewRecorder()
		RunCronJob(CronJobServices{})(resp, cronRequest("inexistente"))

		assert.Equal(t, http.StatusBadRequest, resp.Code)
		assert.Contains(t, resp.Body.String(), "VAL_001")
	})

	t.Run("Serviço não configurado", func(t *testing.T) {
		resp := httptest.NewRecorder()
		RunCronJob(CronJobServices{})(resp, cronRequest(CronJobTypeOptimize))

		assert.Equal(t, http.StatusInternalServerError, resp.Code)
		assert.Contains(t, resp.Body.String(), "SRV_001")
	})
}

func TestGetCronStatus_ServiceUnavailable(t *testing.T) {
	resp := httptest.NewRecorder()
	GetCronStatus(CronJobServices{})(resp, httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil))

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Contains(t, resp.Body.String(), "SRV_001")
}
