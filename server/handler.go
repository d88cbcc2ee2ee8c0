package server

import (
	"encoding/json"
	"net/http"
	"strings"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/healthedi/x12/tokenize"
	"github.com/healthedi/x12/view"
)

// outputModeHeader selects "models" (default) or "segments" output, per
// spec §6's HTTP surface.
const outputModeHeader = "X-Output-Mode"

type x12Request struct {
	X12 string `json:"x12"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleX12(w http.ResponseWriter, r *http.Request) {
	reqID := chimiddleware.GetReqID(r.Context())

	var req x12Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}
	if strings.TrimSpace(req.X12) == "" {
		writeError(w, http.StatusBadRequest, "missing x12 field")
		return
	}

	mode := r.Header.Get(outputModeHeader)
	if mode == "" {
		mode = "models"
	}

	switch mode {
	case "models":
		s.respondModels(w, reqID, req.X12)
	case "segments":
		s.respondSegments(w, reqID, req.X12)
	default:
		writeError(w, http.StatusBadRequest, "unknown output mode: "+mode)
	}
}

func (s *Server) respondModels(w http.ResponseWriter, reqID, raw string) {
	result, err := s.engine.Parse(strings.NewReader(raw))
	if err != nil {
		s.log.Warn().Str("req_id", reqID).Err(err).Msg("x12 parse failed")
		writeError(w, http.StatusBadRequest, "invalid X12 document")
		return
	}

	codes := make([]string, 0, len(result.Transactions))
	invalid := 0
	txViews := make([]view.Transaction, 0, len(result.Transactions))
	for _, res := range result.Transactions {
		codes = append(codes, res.Report.Code)
		if !res.Report.Valid {
			invalid++
		}
		txViews = append(txViews, view.FromTransaction(res.Transaction, res.Report.Errors, false, view.Options{}))
	}

	s.log.Info().
		Str("req_id", reqID).
		Strs("transaction_codes", codes).
		Int("invalid_count", invalid).
		Msg("parsed x12 request")

	payload := map[string]any{"transactions": txViews}
	if len(result.EnvelopeErrors) > 0 {
		errs := make([]string, len(result.EnvelopeErrors))
		for i, e := range result.EnvelopeErrors {
			errs[i] = e.Error()
		}
		payload["envelope_errors"] = errs
	}
	writeJSON(w, http.StatusOK, payload)
}

func (s *Server) respondSegments(w http.ResponseWriter, reqID, raw string) {
	tok := tokenize.New(strings.NewReader(raw))
	var segs []view.Segment
	for tok.Scan() {
		segs = append(segs, view.FromSegment(tok.Segment(), tok.Delimiters(), view.Options{}))
	}
	if err := tok.Err(); err != nil {
		s.log.Warn().Str("req_id", reqID).Err(err).Msg("x12 tokenize failed")
		writeError(w, http.StatusBadRequest, "invalid X12 document")
		return
	}

	s.log.Info().Str("req_id", reqID).Int("segment_count", len(segs)).Msg("tokenized x12 request")
	writeJSON(w, http.StatusOK, map[string]any{"segments": segs})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
