// Package routes wires the plan handlers into the gin engine. Every plan
// route lives under the /plans namespace group and runs behind the token
// authority middleware; only the health probe is open.
package routes

import (
	"github.com/gin-gonic/gin"

	"plansvc/internal/domain/plan"
	"plansvc/internal/interfaces/http/handlers"
	"plansvc/internal/interfaces/http/middleware"
)

type Handlers struct {
	Tiered  *handlers.TieredPlanHandler
	Tables  *handlers.PlanTableHandler
	Feature *handlers.FeatureHandler
	Health  *handlers.HealthHandler
}

func Register(engine *gin.Engine, auth *middleware.AuthMiddleware, h Handlers) {
	engine.GET("/", h.Health.Health)
	engine.GET("/health", h.Health.Health)

	group := engine.Group("/plans")
	group.Use(auth.RequireAuthority())

	// Raw table CRUD.
	group.GET("/plans", h.Tables.ListPlans)
	group.GET("/plans/:id", h.Tables.GetPlan)
	group.POST("/plans", h.Tables.CreatePlan)
	group.PUT("/plans/:id", h.Tables.UpdatePlan)
	group.DELETE("/plans/:id", h.Tables.DeletePlan)

	group.GET("/plans_intermedio", h.Tables.ListIntermedios)
	group.GET("/plans_intermedio/:id", h.Tables.GetIntermedio)
	group.POST("/plans_intermedio", h.Tables.CreateIntermedio)
	group.PUT("/plans_intermedio/:id", h.Tables.UpdateIntermedio)
	group.DELETE("/plans_intermedio/:id", h.Tables.DeleteIntermedio)

	group.GET("/plans_premium", h.Tables.ListPremiums)
	group.GET("/plans_premium/:id", h.Tables.GetPremium)
	group.POST("/plans_premium", h.Tables.CreatePremium)
	group.PUT("/plans_premium/:id", h.Tables.UpdatePremium)
	group.DELETE("/plans_premium/:id", h.Tables.DeletePremium)

	group.GET("/descriptionFeatures", h.Feature.ListFeatures)
	group.GET("/descriptionFeatures/:id", h.Feature.GetFeature)
	group.POST("/descriptionFeatures", h.Feature.CreateFeature)
	group.PUT("/descriptionFeatures/:id", h.Feature.UpdateFeature)
	group.DELETE("/descriptionFeatures/:id", h.Feature.DeleteFeature)

	// Orchestrated tier lifecycle.
	group.POST("/planbasico", h.Tiered.Create(plan.TierBasico.String()))
	group.PUT("/planbasico/:id", h.Tiered.Update(plan.TierBasico.String()))
	group.DELETE("/planbasico/:id", h.Tiered.Delete(plan.TierBasico.String()))

	group.POST("/planbasico_intermedio", h.Tiered.Create(plan.TierIntermedio.String()))
	group.PUT("/planbasico_intermedio/:id", h.Tiered.Update(plan.TierIntermedio.String()))
	group.DELETE("/planbasico_intermedio/:id", h.Tiered.Delete(plan.TierIntermedio.String()))

	group.POST("/planbasico_premium", h.Tiered.Create(plan.TierPremium.String()))
	group.PUT("/planbasico_premium/:id", h.Tiered.Update(plan.TierPremium.String()))
	group.DELETE("/planbasico_premium/:id", h.Tiered.Delete(plan.TierPremium.String()))

	// Orchestrated feature ops and composite views.
	group.POST("/feature", h.Feature.CreateFeature)
	group.PUT("/feature/:id", h.Feature.UpdateFeature)
	group.DELETE("/feature/:id", h.Feature.DeleteFeature)
	group.GET("/features/:tipoPlan", h.Feature.GetFeatureDescriptions)

	group.GET("/allplans", h.Tiered.GetAllPlans)
	group.GET("/allplan/:tipoPlan", h.Tiered.GetPlanByTier)
}
