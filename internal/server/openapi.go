package server

import (
	"encoding/json"
	"net/http"

	openapi "github.com/swaggest/openapi-go"
	"github.com/swaggest/openapi-go/openapi3"
)

// ErrorResponse is returned for all error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

func newOpenAPISpec() *openapi3.Spec {
	r := openapi3.NewReflector()
	r.Spec.Info.Title = "Capitals Quiz API"
	r.Spec.Info.Version = "0.1.0"
	r.Spec.Info.WithDescription("Webhook fulfillment backend for the \"Name the Capital\" voice quiz.")

	// GET /healthz
	getHealthz, _ := r.NewOperationContext(http.MethodGet, "/healthz")
	getHealthz.SetSummary("Health check")
	getHealthz.SetDescription("Returns the health status of backend dependencies.")
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusServiceUnavailable))
	_ = r.AddOperation(getHealthz)

	// POST /webhook
	postWebhook, _ := r.NewOperationContext(http.MethodPost, "/webhook")
	postWebhook.SetSummary("Dialogflow fulfillment")
	postWebhook.SetDescription("Handles one conversation turn: dispatches the matched intent to the quiz engine and returns the fulfillment.")
	postWebhook.AddReqStructure(webhookRequest{})
	postWebhook.AddRespStructure(webhookResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postWebhook.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(postWebhook)

	// POST /api/admin/reload
	postReload, _ := r.NewOperationContext(http.MethodPost, "/api/admin/reload")
	postReload.SetSummary("Reload dataset")
	postReload.SetDescription("Re-imports the scraped dataset file and rebuilds the country selectors. Requires the admin password as a Bearer token.")
	postReload.AddRespStructure(ReloadResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postReload.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	postReload.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusInternalServerError))
	_ = r.AddOperation(postReload)

	return r.Spec
}

func handleOpenAPI() http.HandlerFunc {
	spec := newOpenAPISpec()
	data, _ := json.MarshalIndent(spec, "", "  ")

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}
