package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"plansvc/internal/application/plan/dto"
	"plansvc/internal/application/plan/usecases"
	apperrors "plansvc/internal/shared/errors"
)

type mockCreateFeature struct{ mock.Mock }

func (m *mockCreateFeature) Execute(ctx context.Context, cmd usecases.CreateFeatureCommand) (*dto.FeatureDTO, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.FeatureDTO), args.Error(1)
}

type mockDescriptions struct{ mock.Mock }

func (m *mockDescriptions) Execute(ctx context.Context, tipoPlan string) ([]string, error) {
	args := m.Called(ctx, tipoPlan)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func TestCreateFeature_ReturnsCreated(t *testing.T) {
	gin.SetMode(gin.TestMode)
	create := new(mockCreateFeature)
	create.On("Execute", mock.Anything, usecases.CreateFeatureCommand{
		TipoPlan:    "premium",
		Description: "acceso total",
	}).Return(&dto.FeatureDTO{ID: "f1a2b3c4", TipoPlan: "premium", Description: "acceso total"}, nil)

	h := NewFeatureHandler(create, nil, nil, nil, nil, nil, testLogger{})
	engine := gin.New()
	engine.POST("/feature", h.CreateFeature)

	body, _ := json.Marshal(map[string]string{"tipoPlan": "premium", "description": "acceso total"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/feature", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "premium", got["tipoPlan"])
	assert.Equal(t, "acceso total", got["description"])
}

func TestCreateFeature_MissingDescriptionMapsTo400(t *testing.T) {
	gin.SetMode(gin.TestMode)
	create := new(mockCreateFeature)

	h := NewFeatureHandler(create, nil, nil, nil, nil, nil, testLogger{})
	engine := gin.New()
	engine.POST("/feature", h.CreateFeature)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/feature", bytes.NewReader([]byte(`{"tipoPlan": "premium"}`)))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	create.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestGetFeatureDescriptions_EmptyTierYieldsEmptyArray(t *testing.T) {
	gin.SetMode(gin.TestMode)
	descriptions := new(mockDescriptions)
	descriptions.On("Execute", mock.Anything, "basico").Return([]string{}, nil)

	h := NewFeatureHandler(nil, nil, nil, nil, nil, descriptions, testLogger{})
	engine := gin.New()
	engine.GET("/features/:tipoPlan", h.GetFeatureDescriptions)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/features/basico", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestGetFeatureDescriptions_UnknownTierMapsTo400(t *testing.T) {
	gin.SetMode(gin.TestMode)
	descriptions := new(mockDescriptions)
	descriptions.On("Execute", mock.Anything, "deluxe").
		Return(nil, apperrors.NewValidationError("unknown plan tier: deluxe"))

	h := NewFeatureHandler(nil, nil, nil, nil, nil, descriptions, testLogger{})
	engine := gin.New()
	engine.GET("/features/:tipoPlan", h.GetFeatureDescriptions)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/features/deluxe", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
