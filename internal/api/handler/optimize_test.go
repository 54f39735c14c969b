package handler

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/bid-optimizer-api/internal/domain"
	"github.com/vfg2006/bid-optimizer-api/internal/usecases/optimizing/mocks"
	"go.uber.org/mock/gomock"
)

func multipartBulksheet(t *testing.T, field, filename, content string) (*bytes.Buffer, string) {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile(field, filename)
	require.NoError(t, err)

	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return &body, writer.FormDataContentType()
}

func optimizedFixture() *domain.OptimizationResult {
	rows := []domain.OptimizedRow{
		{
			TargetRow: domain.TargetRow{
				Index:  0,
				Bid:    1.00,
				Clicks: 15,
				Raw:    []string{"Campanha A", "1.00", "15"},
			},
			Adjustment: domain.Adjustment{
				NewBid:         0.80,
				Direction:      domain.DirectionDecrease,
				Why:            "Cost but No Revenue (High Spend)",
				Goal:           "To Decrease ACOS",
				HowMuch:        "Decreased bid by $0.20",
				Changes:        -0.20,
				PercentChanges: -20,
			},
		},
	}

	return &domain.OptimizationResult{
		Columns: []string{"Campaign Name", "Bid", "Clicks"},
		Rows:    rows,
		Summary: domain.Summarize(rows),
	}
}

func TestOptimize(t *testing.T) {
	const csvContent = "Campaign Name,Bid,Clicks\nCampanha A,1.00,15\n"

	tests := []struct {
		name     string
		request  func(t *testing.T) *http.Request
		setup    func(service *mocks.MockOptimizer)
		validate func(t *testing.T, resp *httptest.ResponseRecorder)
	}{
		{
			name: "Upload válido devolve CSV otimizado",
			request: func(t *testing.T) *http.Request {
				body, contentType := multipartBulksheet(t, "bulksheet", "export.csv", csvContent)
				req := httptest.NewRequest(http.MethodPost, "/v1/optimize", body)
				req.Header.Set("Content-Type", contentType)
				return req
			},
			setup: func(service *mocks.MockOptimizer) {
				service.EXPECT().
					OptimizeBulksheet(gomock.Any()).
					Return(optimizedFixture(), nil)
			},
			validate: func(t *testing.T, resp *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, resp.Code)
				assert.Equal(t, "text/csv", resp.Header().Get("Content-Type"))
				assert.Contains(t, resp.Header().Get("Content-Disposition"), "optimized_export.csv")
				assert.Contains(t, resp.Body.String(), "New Bid")
				assert.Contains(t, resp.Body.String(), "Cost but No Revenue (High Spend)")
			},
		},
		{
			name: "format=json devolve o resultado estruturado",
			request: func(t *testing.T) *http.Request {
				body, contentType := multipartBulksheet(t, "bulksheet", "export.csv", csvContent)
				req := httptest.NewRequest(http.MethodPost, "/v1/optimize?format=json", body)
				req.Header.Set("Content-Type", contentType)
				return req
			},
			setup: func(service *mocks.MockOptimizer) {
				service.EXPECT().
					OptimizeBulksheet(gomock.Any()).
					Return(optimizedFixture(), nil)
			},
			validate: func(t *testing.T, resp *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, resp.Code)
				assert.Equal(t, "application/json", resp.Header().Get("Content-Type"))

				var result domain.OptimizationResult
				require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &result))
				require.Len(t, result.Rows, 1)
				assert.Equal(t, 0.80, result.Rows[0].NewBid)
				assert.Equal(t, 1, result.Summary.Decreased)
			},
		},
		{
			name: "Sem arquivo no campo bulksheet",
			request: func(t *testing.T) *http.Request {
				body, contentType := multipartBulksheet(t, "outro_campo", "export.csv", csvContent)
				req := httptest.NewRequest(http.MethodPost, "/v1/optimize", body)
				req.Header.Set("Content-Type", contentType)
				return req
			},
			setup: func(service *mocks.MockOptimizer) {},
			validate: func(t *testing.T, resp *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, resp.Code)
				assert.Contains(t, resp.Body.String(), "VAL_002")
			},
		},
		{
			name: "Schema inválido devolve 422 com as colunas ausentes",
			request: func(t *testing.T) *http.Request {
				body, contentType := multipartBulksheet(t, "bulksheet", "export.csv", csvContent)
				req := httptest.NewRequest(http.MethodPost, "/v1/optimize", body)
				req.Header.Set("Content-Type", contentType)
				return req
			},
			setup: func(service *mocks.MockOptimizer) {
				service.EXPECT().
					OptimizeBulksheet(gomock.Any()).
					Return(nil, &domain.SchemaError{Missing: []string{"ROAS", "Impressions"}})
			},
			validate: func(t *testing.T, resp *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
				assert.Contains(t, resp.Body.String(), "VAL_003")
				assert.Contains(t, resp.Body.String(), "ROAS")
				assert.Contains(t, resp.Body.String(), "Impressions")
			},
		},
		{
			name: "Valor não numérico devolve 422 apontando linha e coluna",
			request: func(t *testing.T) *http.Request {
				body, contentType := multipartBulksheet(t, "bulksheet", "export.csv", csvContent)
				req := httptest.NewRequest(http.MethodPost, "/v1/optimize", body)
				req.Header.Set("Content-Type", contentType)
				return req
			},
			setup: func(service *mocks.MockOptimizer) {
				service.EXPECT().
					OptimizeBulksheet(gomock.Any()).
					Return(nil, &domain.ValueError{Row: 3, Column: "Spend", Value: "abc"})
			},
			validate: func(t *testing.T, resp *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
				assert.Contains(t, resp.Body.String(), "VAL_004")
				assert.Contains(t, resp.Body.String(), "Spend")
				assert.Contains(t, resp.Body.String(), "abc")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := mocks.NewMockOptimizer(ctrl)
			tt.setup(service)

			resp := httptest.NewRecorder()
			Optimize(service).ServeHTTP(resp, tt.request(t))

			tt.validate(t, resp)
		})
	}
}
