package server

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/iwvelando/revenue-forecast/internal/config"
	"github.com/iwvelando/revenue-forecast/internal/forecast"
	"github.com/iwvelando/revenue-forecast/pkg/constants"
	"github.com/iwvelando/revenue-forecast/pkg/output"
	"github.com/iwvelando/revenue-forecast/pkg/revenue"
	"github.com/iwvelando/revenue-forecast/pkg/validation"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

//go:embed static/*
var staticFiles embed.FS

type handler struct {
	logger        *zap.Logger
	maxUploadSize int64
	version       string
	defaults      config.Calculator
}

// NewHandler constructs the HTTP handler that serves the web UI and the
// projection API. defaults supplies the stream set and inputs used when a
// request omits them; a nil defaults uses the built-in calculator state.
func NewHandler(logger *zap.Logger, maxUploadSize int64, version string, defaults *config.Calculator) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if maxUploadSize <= 0 {
		maxUploadSize = constants.DefaultMaxUploadSizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, maxUploadSize: maxUploadSize, version: trimmedVersion}
	if defaults != nil {
		h.defaults = *defaults
		h.defaults.Streams = revenue.CopyStreams(defaults.Streams)
	} else {
		in := revenue.DefaultInputs()
		h.defaults = config.Calculator{Principal: in.Principal, Period: in.Period, Streams: in.Streams}
	}
	if len(h.defaults.Streams) == 0 {
		h.defaults.Streams = revenue.DefaultStreams()
	}

	r := mux.NewRouter()
	r.Use(h.requestID)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(h.limitBody)
	api.HandleFunc("/streams", h.handleStreams).Methods(http.MethodGet)
	api.HandleFunc("/streams/toggle", h.handleToggle).Methods(http.MethodPost)
	api.HandleFunc("/projection", h.handleProjection).Methods(http.MethodPost)
	api.HandleFunc("/distribution", h.handleDistribution).Methods(http.MethodGet)
	api.HandleFunc("/export", h.handleExport).Methods(http.MethodPost)
	api.HandleFunc("/version", h.handleVersion).Methods(http.MethodGet)

	// Static assets (web UI)
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(fmt.Sprintf("failed to prepare embedded static files: %v", err))
	}
	r.PathPrefix("/").Methods(http.MethodGet, http.MethodHead).Handler(http.FileServer(http.FS(sub)))

	return r
}

type projectionRequest struct {
	Principal *float64         `json:"principal"`
	Period    *int             `json:"period"`
	Streams   []revenue.Stream `json:"streams"`
	Toggle    []string         `json:"toggle"`
}

type projectionResponse struct {
	Inputs        revenue.Inputs               `json:"inputs"`
	Points        []revenue.Point              `json:"points"`
	Summary       revenue.Summary              `json:"summary"`
	Chart         []float64                    `json:"chart"`
	AxisLabels    []int                        `json:"axisLabels"`
	Contributions []revenue.StreamContribution `json:"contributions,omitempty"`
	Notes         map[int][]string             `json:"notes,omitempty"`
	CSV           string                       `json:"csv"`
	Warnings      []string                     `json:"warnings,omitempty"`
	Duration      string                       `json:"duration"`
}

type toggleRequest struct {
	Streams []revenue.Stream `json:"streams"`
	ID      string           `json:"id"`
}

func (h *handler) handleStreams(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"principal": h.defaults.Principal,
		"period":    h.defaults.Period,
		"streams":   h.defaults.Streams,
		"presets":   revenue.StakePresets,
		"minPeriod": constants.MinPeriodMonths,
		"maxPeriod": constants.MaxPeriodMonths,
	})
}

func (h *handler) handleToggle(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleToggle"

	var req toggleRequest
	if !h.decode(w, r, &req, op) {
		return
	}
	if strings.TrimSpace(req.ID) == "" {
		h.respondErrorWithOp(w, r, http.StatusBadRequest, "missing stream id", op)
		return
	}

	streams := req.Streams
	if streams == nil {
		streams = h.defaults.Streams
	}
	if revenue.FindStream(streams, req.ID) == nil {
		h.respondErrorWithOp(w, r, http.StatusNotFound, fmt.Sprintf("unknown stream id %q", req.ID), op)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"streams": revenue.ToggleStream(streams, req.ID),
	})
}

func (h *handler) handleProjection(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleProjection"
	start := time.Now()

	var req projectionRequest
	if !h.decode(w, r, &req, op) {
		return
	}

	calc := config.Calculator{
		Principal: h.defaults.Principal,
		Period:    h.defaults.Period,
		Streams:   h.defaults.Streams,
	}
	if req.Principal != nil {
		calc.Principal = *req.Principal
	}
	if req.Period != nil {
		calc.Period = *req.Period
	}
	if req.Streams != nil {
		calc.Streams = req.Streams
	}

	conf := config.Configuration{Calculator: calc}
	warnings := conf.ValidateConfiguration()
	for _, id := range conf.ApplyToggles(req.Toggle) {
		warnings = append(warnings, fmt.Sprintf("Unknown stream id '%s' ignored", id))
	}

	result, err := forecast.GetForecast(h.logger, conf)
	if err != nil {
		h.respondErrorWithOp(w, r, http.StatusUnprocessableEntity, fmt.Sprintf("failed to compute projection: %v", err), op)
		return
	}

	elapsed := time.Since(start)
	response := projectionResponse{
		Inputs:        result.Inputs,
		Points:        result.Points,
		Summary:       result.Summary,
		Chart:         result.Heights,
		AxisLabels:    result.AxisLabels,
		Contributions: result.Contributions,
		CSV:           output.CsvString(result),
		Warnings:      warnings,
		Duration:      elapsed.String(),
	}
	if len(result.Notes) > 0 {
		response.Notes = result.Notes
	}

	h.logger.Info("projection computed",
		zap.String("op", op),
		zap.String("requestId", r.Header.Get(constants.RequestIDHeader)),
		zap.Int("points", len(response.Points)),
		zap.Int("warnings", len(warnings)),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, response)
}

func (h *handler) handleDistribution(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"shares": revenue.DefaultDistribution(),
	})
}

func (h *handler) handleExport(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleExport"

	var req projectionRequest
	if !h.decode(w, r, &req, op) {
		return
	}

	conf := config.Configuration{Calculator: h.defaults}
	if req.Principal != nil {
		conf.Calculator.Principal = *req.Principal
	}
	if req.Period != nil {
		conf.Calculator.Period = *req.Period
	}
	if req.Streams != nil {
		conf.Calculator.Streams = req.Streams
	}
	conf.ApplyToggles(req.Toggle)
	conf.Output.Format = constants.OutputFormatPretty

	yamlBytes, err := yaml.Marshal(conf)
	if err != nil {
		h.respondErrorWithOp(w, r, http.StatusBadRequest, fmt.Sprintf("failed to encode configuration: %v", err), op)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"configYaml": string(yamlBytes),
		"warnings":   validation.ValidateStreams(conf.Calculator.Streams),
	})
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) decode(w http.ResponseWriter, r *http.Request, target interface{}, op string) bool {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondErrorWithOp(w, r, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.maxUploadSize), op)
			return false
		}
		h.respondErrorWithOp(w, r, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), op)
		return false
	}
	return true
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, r *http.Request, status int, msg string, op string) {
	h.logger.Error("request failed",
		zap.String("op", op),
		zap.String("requestId", r.Header.Get(constants.RequestIDHeader)),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		h.logger.Error("failed to encode JSON response",
			zap.String("op", "server.writeJSON"),
			zap.Error(err),
		)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"failed to encode response"}` + "\n"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.logger.Error("failed to write JSON response",
			zap.String("op", "server.writeJSON"),
			zap.Error(err),
		)
	}
}
