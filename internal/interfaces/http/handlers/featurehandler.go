package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"plansvc/internal/application/plan/usecases"
	"plansvc/internal/shared/logger"
	"plansvc/internal/shared/utils"
)

// FeatureHandler serves the description-feature surface: the raw table CRUD
// and the per-tier description listing.
type FeatureHandler struct {
	createUC       createFeatureUseCase
	updateUC       updateFeatureUseCase
	deleteUC       deleteFeatureUseCase
	getUC          getFeatureUseCase
	listUC         listFeaturesUseCase
	descriptionsUC listFeatureDescriptionsUseCase
	logger         logger.Interface
}

func NewFeatureHandler(
	createUC createFeatureUseCase,
	updateUC updateFeatureUseCase,
	deleteUC deleteFeatureUseCase,
	getUC getFeatureUseCase,
	listUC listFeaturesUseCase,
	descriptionsUC listFeatureDescriptionsUseCase,
	logger logger.Interface,
) *FeatureHandler {
	return &FeatureHandler{
		createUC:       createUC,
		updateUC:       updateUC,
		deleteUC:       deleteUC,
		getUC:          getUC,
		listUC:         listUC,
		descriptionsUC: descriptionsUC,
		logger:         logger,
	}
}

type FeatureRequest struct {
	TipoPlan    string `json:"tipoPlan" binding:"required"`
	Description string `json:"description" binding:"required"`
}

func (h *FeatureHandler) ListFeatures(c *gin.Context) {
	result, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, result)
}

func (h *FeatureHandler) GetFeature(c *gin.Context) {
	result, err := h.getUC.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, result)
}

func (h *FeatureHandler) CreateFeature(c *gin.Context) {
	var req FeatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create feature", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateFeatureCommand{
		TipoPlan:    req.TipoPlan,
		Description: req.Description,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result)
}

func (h *FeatureHandler) UpdateFeature(c *gin.Context) {
	var req FeatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update feature", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateFeatureCommand{
		ID:          c.Param("id"),
		TipoPlan:    req.TipoPlan,
		Description: req.Description,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, result)
}

func (h *FeatureHandler) DeleteFeature(c *gin.Context) {
	if err := h.deleteUC.Execute(c.Request.Context(), c.Param("id")); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, gin.H{"message": "feature deleted"})
}

// GetFeatureDescriptions returns the description strings for a tier label.
func (h *FeatureHandler) GetFeatureDescriptions(c *gin.Context) {
	result, err := h.descriptionsUC.Execute(c.Request.Context(), c.Param("tipoPlan"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, result)
}
