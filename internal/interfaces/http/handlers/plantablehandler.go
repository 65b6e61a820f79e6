package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"plansvc/internal/application/plan/usecases"
	"plansvc/internal/domain/plan"
	"plansvc/internal/shared/logger"
	"plansvc/internal/shared/utils"
)

// PlanTableHandler exposes the three plan tables row by row, without the
// tier orchestration. The base table carries the plan record; the other two
// carry benefit rows keyed by the owning plan's id.
type PlanTableHandler struct {
	planTable       planTableUseCase
	intermedioTable intermedioTableUseCase
	premiumTable    premiumTableUseCase
	logger          logger.Interface
}

func NewPlanTableHandler(
	planTable planTableUseCase,
	intermedioTable intermedioTableUseCase,
	premiumTable premiumTableUseCase,
	logger logger.Interface,
) *PlanTableHandler {
	return &PlanTableHandler{
		planTable:       planTable,
		intermedioTable: intermedioTable,
		premiumTable:    premiumTable,
		logger:          logger,
	}
}

type PlanRecordRequest struct {
	Name      string  `json:"name" binding:"required"`
	TypePlan  string  `json:"typePlan" binding:"required"`
	StartDate string  `json:"startDate" binding:"required"`
	EndDate   string  `json:"endDate" binding:"required"`
	Value     float64 `json:"value"`
}

type IntermedioRecordRequest struct {
	ID                     string `json:"id"`
	MonitoreoTiempoReal    bool   `json:"monitoreoTiempoReal"`
	AlertasRiesgo          bool   `json:"alertasRiesgo"`
	ComunicacionEntrenador bool   `json:"comunicacionEntrenador"`
}

type PremiumRecordRequest struct {
	ID                  string `json:"id"`
	SesionesVirtuales   int    `json:"sesionesVirtuales"`
	Masajes             bool   `json:"masajes"`
	CuidadoPosEjercicio bool   `json:"cuidadoPosEjercicio"`
}

func (h *PlanTableHandler) ListPlans(c *gin.Context) {
	result, err := h.planTable.List(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, result)
}

func (h *PlanTableHandler) GetPlan(c *gin.Context) {
	result, err := h.planTable.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, result)
}

func (h *PlanTableHandler) CreatePlan(c *gin.Context) {
	var req PlanRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create plan row", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.planTable.Create(c.Request.Context(), usecases.PlanRecordInput{
		Name:      req.Name,
		TypePlan:  req.TypePlan,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Value:     req.Value,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result)
}

func (h *PlanTableHandler) UpdatePlan(c *gin.Context) {
	var req PlanRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update plan row", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.planTable.Update(c.Request.Context(), c.Param("id"), usecases.PlanRecordInput{
		Name:      req.Name,
		TypePlan:  req.TypePlan,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Value:     req.Value,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, result)
}

func (h *PlanTableHandler) DeletePlan(c *gin.Context) {
	if err := h.planTable.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, gin.H{"message": "plan row deleted"})
}

func (h *PlanTableHandler) ListIntermedios(c *gin.Context) {
	result, err := h.intermedioTable.List(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, result)
}

func (h *PlanTableHandler) GetIntermedio(c *gin.Context) {
	result, err := h.intermedioTable.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, result)
}

func (h *PlanTableHandler) CreateIntermedio(c *gin.Context) {
	var req IntermedioRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create intermediate row", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.intermedioTable.Create(c.Request.Context(), req.ID, plan.IntermediateBenefits{
		MonitoreoTiempoReal:    req.MonitoreoTiempoReal,
		AlertasRiesgo:          req.AlertasRiesgo,
		ComunicacionEntrenador: req.ComunicacionEntrenador,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result)
}

func (h *PlanTableHandler) UpdateIntermedio(c *gin.Context) {
	var req IntermedioRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update intermediate row", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.intermedioTable.Update(c.Request.Context(), c.Param("id"), plan.IntermediateBenefits{
		MonitoreoTiempoReal:    req.MonitoreoTiempoReal,
		AlertasRiesgo:          req.AlertasRiesgo,
		ComunicacionEntrenador: req.ComunicacionEntrenador,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, result)
}

func (h *PlanTableHandler) DeleteIntermedio(c *gin.Context) {
	if err := h.intermedioTable.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, gin.H{"message": "intermediate row deleted"})
}

func (h *PlanTableHandler) ListPremiums(c *gin.Context) {
	result, err := h.premiumTable.List(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, result)
}

func (h *PlanTableHandler) GetPremium(c *gin.Context) {
	result, err := h.premiumTable.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, result)
}

func (h *PlanTableHandler) CreatePremium(c *gin.Context) {
	var req PremiumRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create premium row", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.premiumTable.Create(c.Request.Context(), req.ID, plan.PremiumBenefits{
		SesionesVirtuales:   req.SesionesVirtuales,
		Masajes:             req.Masajes,
		CuidadoPosEjercicio: req.CuidadoPosEjercicio,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result)
}

func (h *PlanTableHandler) UpdatePremium(c *gin.Context) {
	var req PremiumRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update premium row", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.premiumTable.Update(c.Request.Context(), c.Param("id"), plan.PremiumBenefits{
		SesionesVirtuales:   req.SesionesVirtuales,
		Masajes:             req.Masajes,
		CuidadoPosEjercicio: req.CuidadoPosEjercicio,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, result)
}

func (h *PlanTableHandler) DeletePremium(c *gin.Context) {
	if err := h.premiumTable.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, gin.H{"message": "premium row deleted"})
}
