// Package server serves the equity calculator web UI and its JSON API.
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

	"github.com/iwvelando/equity-calculator/internal/calculator"
	"github.com/iwvelando/equity-calculator/internal/config"
	"github.com/iwvelando/equity-calculator/pkg/constants"
	"github.com/iwvelando/equity-calculator/pkg/output"
	"github.com/iwvelando/equity-calculator/pkg/palette"
	"github.com/iwvelando/equity-calculator/pkg/validation"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

//go:embed static/*
var staticFiles embed.FS

type handler struct {
	logger      *zap.Logger
	maxBodySize int64
	version     string
}

// NewHandler constructs the HTTP handler that serves the web UI and calculator API.
func NewHandler(logger *zap.Logger, maxBodySize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if maxBodySize <= 0 {
		maxBodySize = constants.DefaultMaxBodySizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, maxBodySize: maxBodySize, version: trimmedVersion}

	mux := http.NewServeMux()

	// Projection endpoint, run when the user presses calculate
	mux.HandleFunc("/api/projection", h.handleProjection)

	// Loss summary endpoint, run on every input change
	mux.HandleFunc("/api/summary", h.handleSummary)

	// Config serialization endpoint for CLI downloads
	mux.HandleFunc("/api/export", h.handleExport)

	// Version endpoint for UI metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	// Static assets (web UI)
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(fmt.Sprintf("failed to prepare embedded static files: %v", err))
	}
	mux.Handle("/", http.FileServer(http.FS(sub)))

	return mux
}

// calculatorRequest carries raw form values. Numbers may arrive as JSON
// numbers or as the text typed into the form.
type calculatorRequest struct {
	PurchasePrice    interface{}   `json:"purchasePrice"`
	Deposit          interface{}   `json:"deposit"`
	CrashPercentages []interface{} `json:"crashPercentages"`
}

type projectionResponse struct {
	Snapshots []calculator.EquitySnapshot `json:"snapshots"`
	Losses    []calculator.LossRow        `json:"losses"`
	Series    []palette.Series            `json:"series"`
	CSV       string                      `json:"csv"`
	Warnings  []string                    `json:"warnings,omitempty"`
	Duration  string                      `json:"duration"`
}

type summaryResponse struct {
	Losses   []calculator.LossRow `json:"losses"`
	Warnings []string             `json:"warnings,omitempty"`
}

// requestError is an input problem reported back with a specific status.
type requestError struct {
	status int
	msg    string
}

func (e *requestError) Error() string {
	return e.msg
}

func (h *handler) handleProjection(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleProjection"
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	calc, err := h.decodeCalculator(w, r)
	if err != nil {
		h.respondRequestError(w, err, op)
		return
	}

	inputs := calc.Inputs()
	report := output.Report{
		Inputs:    inputs,
		Snapshots: calc.Compute(),
		Losses:    calc.LossRows(),
		Warnings:  validation.ValidateInputs(inputs.PurchasePrice, inputs.Deposit, inputs.CrashPercentages),
	}
	elapsed := time.Since(start)

	response := projectionResponse{
		Snapshots: report.Snapshots,
		Losses:    report.Losses,
		Series:    palette.ForScenarios(calc.Len()),
		CSV:       output.CsvString(report),
		Warnings:  report.Warnings,
		Duration:  elapsed.String(),
	}

	h.logger.Info("equity projection computed",
		zap.String("op", op),
		zap.Int("scenarios", calc.Len()),
		zap.Int("months", len(response.Snapshots)),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, response)
}

func (h *handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleSummary"
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	calc, err := h.decodeCalculator(w, r)
	if err != nil {
		h.respondRequestError(w, err, op)
		return
	}

	inputs := calc.Inputs()
	h.writeJSON(w, http.StatusOK, summaryResponse{
		Losses:   calc.LossRows(),
		Warnings: validation.ValidateInputs(inputs.PurchasePrice, inputs.Deposit, inputs.CrashPercentages),
	})
}

func (h *handler) handleExport(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleExport"
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	calc, err := h.decodeCalculator(w, r)
	if err != nil {
		h.respondRequestError(w, err, op)
		return
	}

	exported := config.Configuration{
		Calculator: calc.Inputs(),
		Output:     config.OutputConfig{Format: constants.OutputFormatPretty},
	}
	yamlBytes, err := yaml.Marshal(exported)
	if err != nil {
		h.respondErrorWithOp(w, http.StatusInternalServerError, fmt.Sprintf("failed to encode configuration: %v", err), op)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"configYaml": string(yamlBytes),
	})
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

// decodeCalculator parses the request body and replays it onto a fresh
// calculator through the state operations.
func (h *handler) decodeCalculator(w http.ResponseWriter, r *http.Request) (*calculator.Calculator, error) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)

	decoder := json.NewDecoder(r.Body)
	decoder.UseNumber()

	var req calculatorRequest
	if err := decoder.Decode(&req); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return nil, &requestError{
				status: http.StatusRequestEntityTooLarge,
				msg:    fmt.Sprintf("request exceeds limit of %d bytes", h.maxBodySize),
			}
		}
		return nil, &requestError{status: http.StatusBadRequest, msg: fmt.Sprintf("failed to decode inputs: %v", err)}
	}

	purchasePrice, err := calculator.ParseValue(req.PurchasePrice)
	if err != nil {
		return nil, &requestError{status: http.StatusBadRequest, msg: fmt.Sprintf("purchasePrice: %v", err)}
	}
	deposit, err := calculator.ParseValue(req.Deposit)
	if err != nil {
		return nil, &requestError{status: http.StatusBadRequest, msg: fmt.Sprintf("deposit: %v", err)}
	}

	calc := calculator.New(h.logger)
	calc.SetPurchasePrice(purchasePrice)
	calc.SetDeposit(deposit)
	for i, raw := range req.CrashPercentages {
		pct, err := calculator.ParseValue(raw)
		if err != nil {
			return nil, &requestError{status: http.StatusBadRequest, msg: fmt.Sprintf("%s: %v", calculator.Label(i), err)}
		}
		calc.AddCrashPercentage()
		if err := calc.UpdateCrashPercentage(i, pct); err != nil {
			return nil, err
		}
	}

	return calc, nil
}

func (h *handler) respondRequestError(w http.ResponseWriter, err error, op string) {
	var reqErr *requestError
	if errors.As(err, &reqErr) {
		h.respondErrorWithOp(w, reqErr.status, reqErr.msg, op)
		return
	}
	h.respondErrorWithOp(w, http.StatusInternalServerError, err.Error(), op)
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("calculator request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		h.logger.Error("failed to encode JSON response", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
