package handlers

import (
	"math/rand"
	"net/http"

	"github.com/gin-gonic/gin"

	"citytwin/internal/analysis"
	"citytwin/internal/api/models"
	"citytwin/internal/config"
	"citytwin/internal/data"
	"citytwin/internal/model"
	"citytwin/internal/sim"
)

// SimulationHandler runs network simulations and serves cached results.
type SimulationHandler struct {
	baseCfg config.Config
	cache   *data.RunCache
}

func NewSimulationHandler(baseCfg config.Config, cache *data.RunCache) *SimulationHandler {
	return &SimulationHandler{baseCfg: baseCfg, cache: cache}
}

// RunSimulation handles POST /api/v1/simulations.
func (h *SimulationHandler) RunSimulation(c *gin.Context) {
	var req models.SimulationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err)
		return
	}
	if err := model.ValidateInterventions(req.Interventions); err != nil {
		badRequest(c, "INVALID_INTERVENTION", err)
		return
	}

	engine := sim.New(h.effectiveConfig(req.Config))
	rep, err := engine.Run(req.Stations, req.Interventions, rngFromSeed(req.Seed))
	if err != nil {
		badRequest(c, "INVALID_TOPOLOGY", err)
		return
	}

	resp := models.SimulationResponse{Status: "completed", Report: rep}
	if h.cache != nil {
		resp.ID = h.cache.Put(rep)
	}
	c.JSON(http.StatusOK, resp)
}

// GetSimulation handles GET /api/v1/simulations/:id, serving a recent run
// from the cache.
func (h *SimulationHandler) GetSimulation(c *gin.Context) {
	id := c.Param("id")
	if h.cache == nil {
		c.JSON(http.StatusNotFound, errorBody("NOT_FOUND", "result caching is disabled"))
		return
	}
	rep, ok := h.cache.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, errorBody("NOT_FOUND", "no cached simulation with id "+id))
		return
	}
	c.JSON(http.StatusOK, models.SimulationResponse{ID: id, Status: "completed", Report: rep})
}

// CompareScenarios handles POST /api/v1/simulations/compare. The baseline and
// every variation run with the same seed, so outcomes differ only by their
// interventions.
func (h *SimulationHandler) CompareScenarios(c *gin.Context) {
	var req models.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err)
		return
	}

	engine := sim.New(h.effectiveConfig(req.Config))
	baseline, err := engine.Run(req.Stations, req.Interventions, rngFromSeed(req.Seed))
	if err != nil {
		badRequest(c, "INVALID_SCENARIO", err)
		return
	}

	comparison := make([]models.ComparisonResult, 0, len(req.Variations))
	for _, variation := range req.Variations {
		merged := append(append([]model.Intervention{}, req.Interventions...), variation.Interventions...)
		rep, err := engine.Run(req.Stations, merged, rngFromSeed(req.Seed))
		if err != nil {
			badRequest(c, "INVALID_SCENARIO", err)
			return
		}
		comparison = append(comparison, models.ComparisonResult{
			Name:   variation.Name,
			Report: rep,
			Delta:  analysis.Compare(variation.Name, baseline, rep),
		})
	}

	c.JSON(http.StatusOK, models.CompareResponse{
		Baseline:   baseline,
		Comparison: comparison,
	})
}

// Bottlenecks handles POST /api/v1/simulations/bottlenecks: one run, ranked
// by lost demand.
func (h *SimulationHandler) Bottlenecks(c *gin.Context) {
	var req models.SimulationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err)
		return
	}

	engine := sim.New(h.effectiveConfig(req.Config))
	rep, err := engine.Run(req.Stations, req.Interventions, rngFromSeed(req.Seed))
	if err != nil {
		badRequest(c, "INVALID_SCENARIO", err)
		return
	}

	ranked := analysis.RankByLostSwaps(rep)
	rankings := make([]models.Ranking, 0, len(ranked))
	for i, r := range ranked {
		rankings = append(rankings, models.Ranking{
			Rank:                  i + 1,
			StationID:             r.StationID,
			LostSwaps:             r.Report.LostSwaps,
			Swaps:                 r.Report.Swaps,
			LossRate:              r.LossRate,
			ChargerUtilizationPct: r.Report.ChargerUtilizationPct,
		})
	}
	c.JSON(http.StatusOK, models.BottleneckResponse{Rankings: rankings})
}

// effectiveConfig overlays a request-level override onto the server config.
func (h *SimulationHandler) effectiveConfig(override *models.SimConfigOverride) config.Config {
	if override == nil {
		return h.baseCfg
	}
	merged := h.baseCfg
	loaded := config.Config{
		DemandCurveHourly:    override.DemandCurveHourly,
		AvgChargeTimeMinutes: override.AvgChargeTimeMinutes,
	}
	sanitized := config.Merge(loaded)
	if len(override.DemandCurveHourly) > 0 {
		merged.DemandCurveHourly = sanitized.DemandCurveHourly
	}
	if override.AvgChargeTimeMinutes > 0 {
		merged.AvgChargeTimeMinutes = sanitized.AvgChargeTimeMinutes
	}
	return merged
}

func rngFromSeed(seed *int64) *rand.Rand {
	if seed == nil {
		return nil
	}
	return rand.New(rand.NewSource(*seed))
}

func badRequest(c *gin.Context, code string, err error) {
	c.JSON(http.StatusBadRequest, errorBody(code, err.Error()))
}

func errorBody(code, message string) models.ErrorResponse {
	return models.ErrorResponse{Error: models.ErrorDetail{Code: code, Message: message}}
}
