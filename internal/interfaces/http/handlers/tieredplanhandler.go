package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"plansvc/internal/application/plan/usecases"
	"plansvc/internal/shared/errors"
	"plansvc/internal/shared/logger"
	"plansvc/internal/shared/utils"
)

// TieredPlanHandler serves the orchestrated plan lifecycle: tier-aware create,
// update and delete, plus the composite read views.
type TieredPlanHandler struct {
	createUC createTieredPlanUseCase
	updateUC updateTieredPlanUseCase
	deleteUC deleteTieredPlanUseCase
	getUC    getCompositePlanUseCase
	listUC   listCompositePlansUseCase
	logger   logger.Interface
}

func NewTieredPlanHandler(
	createUC createTieredPlanUseCase,
	updateUC updateTieredPlanUseCase,
	deleteUC deleteTieredPlanUseCase,
	getUC getCompositePlanUseCase,
	listUC listCompositePlansUseCase,
	logger logger.Interface,
) *TieredPlanHandler {
	return &TieredPlanHandler{
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		getUC:    getUC,
		listUC:   listUC,
		logger:   logger,
	}
}

type TieredPlanRequest struct {
	Name      string  `json:"name" binding:"required"`
	StartDate string  `json:"startDate" binding:"required"`
	EndDate   string  `json:"endDate" binding:"required"`
	Value     float64 `json:"value"`

	MonitoreoTiempoReal    bool `json:"monitoreoTiempoReal"`
	AlertasRiesgo          bool `json:"alertasRiesgo"`
	ComunicacionEntrenador bool `json:"comunicacionEntrenador"`

	SesionesVirtuales   int  `json:"sesionesVirtuales"`
	Masajes             bool `json:"masajes"`
	CuidadoPosEjercicio bool `json:"cuidadoPosEjercicio"`
}

// Create builds the handler for the tier baked into the route. Each tier has
// its own path, so the tier label comes from registration, not the body.
func (h *TieredPlanHandler) Create(tier string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req TieredPlanRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			h.logger.Warnw("invalid request body for create plan", "tier", tier, "error", err)
			utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
			return
		}

		result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateTieredPlanCommand{
			Tier:                   tier,
			Name:                   req.Name,
			StartDate:              req.StartDate,
			EndDate:                req.EndDate,
			Value:                  req.Value,
			MonitoreoTiempoReal:    req.MonitoreoTiempoReal,
			AlertasRiesgo:          req.AlertasRiesgo,
			ComunicacionEntrenador: req.ComunicacionEntrenador,
			SesionesVirtuales:      req.SesionesVirtuales,
			Masajes:                req.Masajes,
			CuidadoPosEjercicio:    req.CuidadoPosEjercicio,
		})
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}

		utils.CreatedResponse(c, result)
	}
}

func (h *TieredPlanHandler) Update(tier string) gin.HandlerFunc {
	return func(c *gin.Context) {
		planID := c.Param("id")
		if planID == "" {
			utils.ErrorResponseWithError(c, errors.NewValidationError("plan id is required"))
			return
		}

		var req TieredPlanRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			h.logger.Warnw("invalid request body for update plan", "tier", tier, "plan_id", planID, "error", err)
			utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
			return
		}

		result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateTieredPlanCommand{
			Tier:                   tier,
			ID:                     planID,
			Name:                   req.Name,
			StartDate:              req.StartDate,
			EndDate:                req.EndDate,
			Value:                  req.Value,
			MonitoreoTiempoReal:    req.MonitoreoTiempoReal,
			AlertasRiesgo:          req.AlertasRiesgo,
			ComunicacionEntrenador: req.ComunicacionEntrenador,
			SesionesVirtuales:      req.SesionesVirtuales,
			Masajes:                req.Masajes,
			CuidadoPosEjercicio:    req.CuidadoPosEjercicio,
		})
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}

		utils.JSONResponse(c, http.StatusOK, result)
	}
}

func (h *TieredPlanHandler) Delete(tier string) gin.HandlerFunc {
	return func(c *gin.Context) {
		planID := c.Param("id")
		if planID == "" {
			utils.ErrorResponseWithError(c, errors.NewValidationError("plan id is required"))
			return
		}

		if err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteTieredPlanCommand{
			Tier: tier,
			ID:   planID,
		}); err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}

		utils.JSONResponse(c, http.StatusOK, gin.H{"message": "plan deleted"})
	}
}

// GetAllPlans returns the composite view of every plan.
func (h *TieredPlanHandler) GetAllPlans(c *gin.Context) {
	result, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, result)
}

// GetPlanByTier returns the composite view of the plan occupying a tier.
func (h *TieredPlanHandler) GetPlanByTier(c *gin.Context) {
	result, err := h.getUC.Execute(c.Request.Context(), c.Param("tipoPlan"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, result)
}
