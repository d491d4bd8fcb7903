package mediator

import (
	"encoding/json"
	"errors"
	"net/http"

	"healthai/internal/domain"
	"healthai/internal/healthdata"
	"healthai/internal/interaction"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const (
	minAge     = 0
	maxAge     = 120
	defaultAge = 30

	// maxUploadSize limits the analytics CSV upload.
	maxUploadSize = 10 << 20
)

// Handler is the HTTP API layer for the dashboard's four interaction surfaces.
type Handler struct {
	service Service
}

// NewHandler creates a new handler injecting the service.
func NewHandler(s Service) *Handler {
	return &Handler{
		service: s,
	}
}

// RegisterRoutes attaches the mediator endpoints to the router. Every request gets
// an interaction ID that is echoed back as request_id.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(interaction.Middleware)

		// Patient chat
		r.Post("/chat/ask", h.handleAsk)

		// Disease prediction
		r.Post("/chat/symptoms", h.handleSymptoms)

		// Treatment plan
		r.Post("/chat/treatment-plan", h.handleTreatmentPlan)

		// Health analytics
		r.Post("/analytics/upload", h.handleAnalyticsUpload)
	})
}

// --- DTOs ---

type askRequest struct {
	Question string `json:"question"`
}

type askResponse struct {
	RequestID string `json:"request_id"`
	Answer    string `json:"answer"`
}

type symptomsRequest struct {
	Symptoms string `json:"symptoms"`
}

type symptomsResponse struct {
	RequestID  string `json:"request_id"`
	Prediction string `json:"prediction"`
}

type treatmentPlanRequest struct {
	Condition string `json:"condition"`
	// Age defaults to 30 when omitted.
	Age *int `json:"age"`
}

type treatmentPlanResponse struct {
	RequestID string `json:"request_id"`
	Plan      string `json:"plan"`
}

type analyticsResponse struct {
	RequestID string                `json:"request_id"`
	Records   []domain.HealthRecord `json:"records"`
	Insight   string                `json:"insight"`
}

// --- Handlers ---

// handleAsk forwards a free-text question.
func (h *Handler) handleAsk(w http.ResponseWriter, r *http.Request) {
	var req askRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	answer, err := h.service.Chat(r.Context(), req.Question)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, askResponse{RequestID: requestID(r), Answer: answer})
}

// handleSymptoms forwards a symptom list for a disease prediction.
func (h *Handler) handleSymptoms(w http.ResponseWriter, r *http.Request) {
	var req symptomsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	prediction, err := h.service.PredictDisease(r.Context(), req.Symptoms)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, symptomsResponse{RequestID: requestID(r), Prediction: prediction})
}

// handleTreatmentPlan forwards a condition and age for a treatment plan.
func (h *Handler) handleTreatmentPlan(w http.ResponseWriter, r *http.Request) {
	var req treatmentPlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	age := defaultAge
	if req.Age != nil {
		age = *req.Age
	}
	if age < minAge || age > maxAge {
		writeError(w, http.StatusBadRequest, "Age must be between 0 and 120")
		return
	}

	plan, err := h.service.TreatmentPlan(r.Context(), req.Condition, age)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, treatmentPlanResponse{RequestID: requestID(r), Plan: plan})
}

// handleAnalyticsUpload reads an uploaded CSV, returns the parsed records and the
// assistant's insight on the most recent ones.
func (h *Handler) handleAnalyticsUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid multipart upload")
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Missing CSV file")
		return
	}
	defer file.Close()

	records, err := healthdata.ReadCSV(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Could not read CSV: "+err.Error())
		return
	}

	insight, err := h.service.AnalyzeHealthData(r.Context(), records)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if records == nil {
		records = []domain.HealthRecord{}
	}
	writeJSON(w, http.StatusOK, analyticsResponse{
		RequestID: requestID(r),
		Records:   records,
		Insight:   insight,
	})
}

// requestID returns the interaction ID set by the middleware.
func requestID(r *http.Request) string {
	id, err := interaction.GetID(r.Context())
	if err != nil {
		return uuid.Nil.String()
	}
	return id.String()
}

// writeServiceError maps mediator failures onto HTTP statuses. Nothing is retried;
// the failure is shown to the caller as-is.
func writeServiceError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrInvalidQuery) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeError(w, http.StatusBadGateway, "Could not get an answer from the assistant: "+err.Error())
}

// writeJSON is a helper function for sending json responses.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// writeError is a helper for sending a standardized json error.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
