package server

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/impacta-labs/fieldpoint/internal/common"
	"github.com/impacta-labs/fieldpoint/internal/fields"
)

type extractTextRequest struct {
	Content string `json:"content"`
}

type extractImageRequest struct {
	Image string `json:"image"`
}

type analyzeRequest struct {
	Fields []fields.ExtractedField `json:"fields"`
}

type extractionResponse struct {
	Fields []fields.ExtractedField `json:"fields"`
	Count  int                     `json:"count"`
}

func (s *Server) handleExtractText(w http.ResponseWriter, r *http.Request) {
	var req extractTextRequest
	if !s.decode(w, r, &req) {
		return
	}
	if err := common.NewValidator().
		Field("content", req.Content, common.Required, common.UTF8Text).
		Error(); err != nil {
		s.writeError(w, err)
		return
	}
	list := s.pipeline.ExtractFromStructuredInput(req.Content)
	writeJSON(w, http.StatusOK, extractionResponse{Fields: list, Count: len(list)})
}

func (s *Server) handleExtractImage(w http.ResponseWriter, r *http.Request) {
	var req extractImageRequest
	if !s.decode(w, r, &req) {
		return
	}
	if err := common.NewValidator().
		Field("image", req.Image, common.Base64Payload).
		Error(); err != nil {
		s.writeError(w, err)
		return
	}
	list, err := s.pipeline.ExtractFromImage(r.Context(), req.Image)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, extractionResponse{Fields: list, Count: len(list)})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if !s.decode(w, r, &req) {
		return
	}
	analysis, err := s.pipeline.Analyze(req.Fields)
	if err != nil {
		s.writeError(w, common.WrapError(common.ErrMalformedField, err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, analysis)
}

func (s *Server) handleExportAnalysis(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if !s.decode(w, r, &req) {
		return
	}
	analysis, err := s.pipeline.Analyze(req.Fields)
	if err != nil {
		s.writeError(w, common.WrapError(common.ErrMalformedField, err.Error()))
		return
	}
	payload, err := s.export.ExportAnalysisXLSX(analysis)
	if err != nil {
		s.logger.Warn("export failed", zap.Error(err))
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="function-point-analysis.xlsx"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(payload)
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	body := http.MaxBytesReader(w, r.Body, s.maxBodyBytes)
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		s.writeError(w, common.WrapError(common.ErrInvalidInput, "decode request body"))
		return false
	}
	return true
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := common.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", zap.Error(err))
	} else {
		s.logger.Warn("request rejected", zap.Error(err))
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
