package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/oceandata/fisherman-cli/internal/dashboard"
	"github.com/oceandata/fisherman-cli/internal/model"
	"github.com/oceandata/fisherman-cli/internal/zones"
	"github.com/oceandata/fisherman-cli/pkg/oceanapi"
)

const maxRequestBytes = 1 << 20

type errorResponse struct {
	Error        string `json:"error"`
	UpstreamCode int    `json:"upstream_status,omitempty"`
	UpstreamBody string `json:"upstream_body,omitempty"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if !decode(w, r, &req) {
		return
	}

	sess, err := s.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

func (s *Server) handleCatchReport(w http.ResponseWriter, r *http.Request) {
	var in dashboard.CatchInput
	if !decode(w, r, &in) {
		return
	}
	report, err := in.Report(time.Now().UTC())
	if err != nil {
		writeError(w, err)
		return
	}

	out, err := s.svc.ReportCatch(r.Context(), s.session(r), report)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, out)
}

func (s *Server) handlePredict(w http.ResponseWriter, r *http.Request) {
	var in dashboard.FeatureInput
	if !decode(w, r, &in) {
		return
	}
	f, err := in.Features()
	if err != nil {
		writeError(w, err)
		return
	}

	out, err := s.svc.Predict(r.Context(), s.session(r), f)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleEDNA(w http.ResponseWriter, r *http.Request) {
	var in dashboard.EDNAInput
	if !decode(w, r, &in) {
		return
	}
	sample, err := in.Sample(time.Now().UTC())
	if err != nil {
		writeError(w, err)
		return
	}

	out, err := s.svc.SubmitEDNA(r.Context(), s.session(r), sample)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, out)
}

func (s *Server) handleWeather(w http.ResponseWriter, r *http.Request) {
	lat, lon, ok := coordinates(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, s.svc.Weather(r.Context(), lat, lon))
}

func (s *Server) handleZones(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("format") != "geojson" {
		writeJSON(w, http.StatusOK, s.svc.Zones())
		return
	}

	set, err := zones.NewSet(s.svc.Zones())
	if err != nil {
		writeError(w, err)
		return
	}
	data, err := set.GeoJSON()
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/geo+json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (s *Server) handleLocate(w http.ResponseWriter, r *http.Request) {
	lat, lon, ok := coordinates(w, r)
	if !ok {
		return
	}
	matches := s.svc.LocateZone(lat, lon)
	if matches == nil {
		matches = []zones.Match{}
	}
	writeJSON(w, http.StatusOK, matches)
}

func (s *Server) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.svc.Analytics(r.Context(), s.session(r)))
}

func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes)).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return false
	}
	return true
}

func coordinates(w http.ResponseWriter, r *http.Request) (float64, float64, bool) {
	q := r.URL.Query()
	lat, errLat := strconv.ParseFloat(q.Get("lat"), 64)
	lon, errLon := strconv.ParseFloat(q.Get("lon"), 64)
	if errLat != nil || errLon != nil || model.ValidateCoordinates(lat, lon) != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "lat and lon query parameters are required decimal degrees"})
		return 0, 0, false
	}
	return lat, lon, true
}

// writeError maps the error taxonomy onto HTTP statuses.
func writeError(w http.ResponseWriter, err error) {
	resp := errorResponse{Error: err.Error()}
	status := http.StatusInternalServerError

	var se *oceanapi.StatusError
	switch {
	case errors.Is(err, dashboard.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, oceanapi.ErrAuthFailed):
		status = http.StatusUnauthorized
	case errors.As(err, &se):
		status = http.StatusBadGateway
		resp.UpstreamCode = se.Code
		resp.UpstreamBody = se.Body
	case errors.Is(err, oceanapi.ErrTransport):
		status = http.StatusServiceUnavailable
	}

	if status == http.StatusInternalServerError {
		zap.L().Error("request failed", zap.Error(err))
	}
	writeJSON(w, status, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Debug("write response", zap.Error(err))
	}
}
