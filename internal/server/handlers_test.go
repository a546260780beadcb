package server

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/impacta-labs/fieldpoint/constants"
	"github.com/impacta-labs/fieldpoint/internal/common"
	"github.com/impacta-labs/fieldpoint/internal/export"
	"github.com/impacta-labs/fieldpoint/internal/fields"
	"github.com/impacta-labs/fieldpoint/internal/pipeline"
)

func newTestRouter() http.Handler {
	log := slog.New(slog.DiscardHandler)
	svc := pipeline.NewService(pipeline.NewOrchestrator(nil, nil, nil, log), log)
	srv := New(svc, export.NewService(log), nil, common.ServerConfig{MaxBodyBytes: 1 << 20})
	return srv.Router()
}

func post(t *testing.T, h http.Handler, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status": "ok"}`, rec.Body.String())
}

func TestExtractText(t *testing.T) {
	rec := post(t, newTestRouter(), "/v1/extractions/text",
		map[string]string{"content": "Email: usuario@exemplo.com"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Fields []fields.ExtractedField `json:"fields"`
		Count  int                     `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Count)
	assert.Equal(t, "Email", resp.Fields[0].Name)
	assert.EqualValues(t, "email", resp.Fields[0].Type)
}

func TestExtractTextEmptyContent(t *testing.T) {
	rec := post(t, newTestRouter(), "/v1/extractions/text", map[string]string{"content": "  "})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExtractTextMalformedBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/v1/extractions/text", strings.NewReader("{broken"))
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExtractImageRejectsNonBase64(t *testing.T) {
	rec := post(t, newTestRouter(), "/v1/extractions/image", map[string]string{"image": "não é base64!!"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyzeEndpoint(t *testing.T) {
	h := newTestRouter()

	extracted := post(t, h, "/v1/extractions/text",
		map[string]string{"content": "Email: usuario@exemplo.com"})
	require.Equal(t, http.StatusOK, extracted.Code)

	var resp struct {
		Fields []fields.ExtractedField `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(extracted.Body.Bytes(), &resp))

	rec := post(t, h, "/v1/analysis", map[string]any{"fields": resp.Fields})
	require.Equal(t, http.StatusOK, rec.Code)

	var analysis fields.FunctionPointAnalysis
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &analysis))
	assert.Equal(t, 1, analysis.TotalFields)
	assert.Equal(t, 4, analysis.TotalFunctionPoints)
}

func TestAnalyzeRejectsTamperedScore(t *testing.T) {
	f := fields.NewField("Email", constants.TypeEmail, constants.ComplexityAverage, constants.SourceText)
	f.FPValue = 99

	rec := post(t, newTestRouter(), "/v1/analysis", map[string]any{
		"fields": []fields.ExtractedField{f},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExportEndpoint(t *testing.T) {
	h := newTestRouter()

	extracted := post(t, h, "/v1/extractions/text",
		map[string]string{"content": "Email: usuario@exemplo.com"})
	var resp struct {
		Fields []fields.ExtractedField `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(extracted.Body.Bytes(), &resp))

	rec := post(t, h, "/v1/analysis/export", map[string]any{"fields": resp.Fields})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "function-point-analysis.xlsx")

	wb, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	defer wb.Close()
	v, err := wb.GetCellValue("Fields", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Email", v)
}
