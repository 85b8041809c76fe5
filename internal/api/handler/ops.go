package handler

import (
	"net/http"
	"time"

	"github.com/shipfare/shipfare/internal/api/models"
	"github.com/shipfare/shipfare/internal/api/response"
	"github.com/shipfare/shipfare/internal/provider/resilience"
	"github.com/shipfare/shipfare/internal/rates"
)

// OpsHandler handles operational endpoints.
type OpsHandler struct {
	version   string
	buildTime string
	registry  *resilience.Registry
	rates     *rates.Service
}

// NewOpsHandler creates a new OpsHandler. Registry and rates may be
// nil; the corresponding sections are then omitted.
func NewOpsHandler(version, buildTime string, registry *resilience.Registry, rateService *rates.Service) *OpsHandler {
	return &OpsHandler{
		version:   version,
		buildTime: buildTime,
		registry:  registry,
		rates:     rateService,
	}
}

// HealthCheck handles GET /v1/ops/health - liveness check.
func (h *OpsHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	health := models.Health{
		Status: models.HealthStatusOK,
		Time:   models.Timestamp(time.Now()),
		Details: map[string]interface{}{
			"version":   h.version,
			"buildTime": h.buildTime,
		},
	}
	response.JSON(w, r, http.StatusOK, health)
}

// ReadinessCheck handles GET /v1/ops/ready - readiness check. The
// service is not ready until a zone rate table has been loaded.
func (h *OpsHandler) ReadinessCheck(w http.ResponseWriter, r *http.Request) {
	status := models.HealthStatusOK
	details := map[string]interface{}{}

	if h.rates != nil {
		loadedAt := h.rates.LoadedAt()
		if loadedAt.IsZero() {
			status = models.HealthStatusFail
			details["zoneRates"] = "not loaded"
		} else {
			details["zoneRatesLoadedAt"] = loadedAt.Format(time.RFC3339)
			details["zonePairs"] = h.rates.Table().Len()
		}
	}

	health := models.Health{
		Status:  status,
		Time:    models.Timestamp(time.Now()),
		Details: details,
	}

	code := http.StatusOK
	if status == models.HealthStatusFail {
		code = http.StatusServiceUnavailable
	}
	response.JSON(w, r, code, health)
}

// SystemStatus handles GET /v1/ops/status - provider and subsystem
// status, sourced from the provider health registry.
func (h *OpsHandler) SystemStatus(w http.ResponseWriter, r *http.Request) {
	now := models.Timestamp(time.Now())
	status := models.SystemStatus{
		Status:     models.HealthStatusOK,
		Time:       now,
		Subsystems: []models.SubsystemStatus{},
		Providers:  []models.ProviderStatus{},
	}

	if h.rates != nil {
		rateStatus := models.SubsystemStatus{Name: "zone-rates", Status: models.HealthStatusOK}
		if h.rates.LoadedAt().IsZero() {
			rateStatus.Status = models.HealthStatusFail
			status.Status = models.HealthStatusDegraded
		}
		status.Subsystems = append(status.Subsystems, rateStatus)
	}

	if h.registry != nil {
		for _, health := range h.registry.GetAllHealth() {
			ps := models.ProviderStatus{
				Provider:     health.Name,
				Status:       models.HealthStatusOK,
				CircuitState: health.CircuitState.String(),
			}
			if !health.IsHealthy() {
				ps.Status = models.HealthStatusDegraded
				status.Status = models.HealthStatusDegraded
			}
			if health.LastSuccessAt != nil {
				ts := models.Timestamp(*health.LastSuccessAt)
				ps.LastSuccessAt = &ts
			}
			if health.LastFailureAt != nil {
				ts := models.Timestamp(*health.LastFailureAt)
				ps.LastFailureAt = &ts
			}
			if health.LastError != "" {
				msg := health.LastError
				ps.Message = &msg
			}
			status.Providers = append(status.Providers, ps)
		}
	}

	response.JSON(w, r, http.StatusOK, status)
}
