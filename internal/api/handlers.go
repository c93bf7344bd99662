package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/hyperengineering/icp/internal/icp"
	"github.com/hyperengineering/icp/internal/metrics"
	"github.com/hyperengineering/icp/internal/onboarding"
	"github.com/hyperengineering/icp/internal/types"
	"github.com/hyperengineering/icp/internal/validation"
)

// Handler implements the API handlers. It holds no per-request state.
type Handler struct {
	apiKey  string
	version string
	metrics *metrics.Metrics
}

// NewHandler creates a new Handler. m may be nil to disable metrics.
func NewHandler(apiKey, version string, m *metrics.Metrics) *Handler {
	return &Handler{
		apiKey:  apiKey,
		version: version,
		metrics: m,
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// Health handles GET /api/v1/health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, types.HealthResponse{
		Status:     "healthy",
		Version:    h.version,
		Categories: len(icp.Categories()),
	})
}

// Categories handles GET /api/v1/icps
func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, types.NewCategoriesResponse())
}

// Questions handles GET /api/v1/questions
func (h *Handler) Questions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, types.QuestionsResponse{
		TotalSteps:      onboarding.TotalSteps,
		Steps:           onboarding.Questionnaire(),
		WearableDevices: onboarding.WearableDevices(),
	})
}

// Classify handles POST /api/v1/classify
func (h *Handler) Classify(w http.ResponseWriter, r *http.Request) {
	var req types.ClassifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		MapDecodeError(w, r, err)
		return
	}

	if errs := validation.ValidateClassifyRequest(req); len(errs) > 0 {
		WriteProblemWithErrors(w, r, "Request contains invalid fields", errs)
		return
	}

	res := h.classify(r, "api", req.Input())
	writeJSON(w, http.StatusOK, types.NewClassifyResponse(EvaluationIDFromContext(r.Context()), &res))
}

// OnboardingClassify handles POST /api/v1/onboarding/classify
//
// Answers are raw option labels. Unrecognized labels fall back to defaults
// and are reported as drift; a 200 with a null result and the missing
// dimensions is returned until every blocking question has an answer.
func (h *Handler) OnboardingClassify(w http.ResponseWriter, r *http.Request) {
	var answers types.OnboardingClassifyRequest
	if err := json.NewDecoder(r.Body).Decode(&answers); err != nil {
		MapDecodeError(w, r, err)
		return
	}

	if errs := validation.ValidateAnswers(answers); len(errs) > 0 {
		WriteProblemWithErrors(w, r, "Answers contain invalid text", errs)
		return
	}

	id := EvaluationIDFromContext(r.Context())
	drift := answers.Drift()
	for _, d := range drift {
		slog.Warn("unrecognized answer label",
			"evaluation_id", id,
			"dimension", d.Dimension,
			"label", d.Label,
		)
		h.metrics.IncLabelDrift(string(d.Dimension))
	}

	resp := types.OnboardingClassifyResponse{Drift: drift}

	in, ok := answers.Input()
	if !ok {
		h.metrics.IncIncomplete()
		resp.ClassifyResponse = types.NewClassifyResponse(id, nil)
		resp.Missing = answers.Missing()
		writeJSON(w, http.StatusOK, resp)
		return
	}

	res := h.classify(r, "onboarding", in)
	resp.ClassifyResponse = types.NewClassifyResponse(id, &res)
	system := answers.System()
	resp.System = &system
	writeJSON(w, http.StatusOK, resp)
}

// classify runs the engine on a validated input and records the outcome.
func (h *Handler) classify(r *http.Request, source string, in icp.Input) icp.Result {
	start := time.Now()
	res, rule := icp.ClassifyWithRule(in)
	elapsed := time.Since(start)

	h.metrics.ObserveClassification(source, string(res.Primary), string(res.Confidence), rule, elapsed)
	slog.Info("classified",
		"evaluation_id", EvaluationIDFromContext(r.Context()),
		"request_id", GetRequestID(r.Context()),
		"source", source,
		"primary_icp", res.Primary,
		"confidence", res.Confidence,
		"rule", rule,
	)
	return res
}
