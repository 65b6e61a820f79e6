package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTier(t *testing.T) {
	tests := []struct {
		input   string
		want    Tier
		wantErr bool
	}{
		{input: "basico", want: TierBasico},
		{input: "intermedio", want: TierIntermedio},
		{input: "premium", want: TierPremium},
		{input: "gold", wantErr: true},
		{input: "", wantErr: true},
		{input: "Basico", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTier(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTierExtensionOwnership(t *testing.T) {
	assert.False(t, TierBasico.HasIntermediate())
	assert.False(t, TierBasico.HasPremium())

	assert.True(t, TierIntermedio.HasIntermediate())
	assert.False(t, TierIntermedio.HasPremium())

	assert.True(t, TierPremium.HasIntermediate())
	assert.True(t, TierPremium.HasPremium())
}

func TestNewBasicPlan(t *testing.T) {
	p, err := NewBasicPlan("a1b2c3d4", "Plan Basico", "02-02-2024", "12-31-2024", 200)

	require.NoError(t, err)
	assert.Equal(t, TierBasico, p.Tier)
	assert.Nil(t, p.Intermediate)
	assert.Nil(t, p.Premium)
}

func TestNewBasicPlan_Validation(t *testing.T) {
	_, err := NewBasicPlan("a1b2c3d4", "", "02-02-2024", "12-31-2024", 200)
	assert.ErrorContains(t, err, "name is required")

	_, err = NewBasicPlan("a1b2c3d4", "Plan Basico", "", "12-31-2024", 200)
	assert.ErrorContains(t, err, "start date")

	_, err = NewBasicPlan("a1b2c3d4", "Plan Basico", "02-02-2024", "", 200)
	assert.ErrorContains(t, err, "end date")

	_, err = NewBasicPlan("a1b2c3d4", "Plan Basico", "02-02-2024", "12-31-2024", -1)
	assert.ErrorContains(t, err, "negative")
}

func TestNewIntermediatePlan(t *testing.T) {
	benefits := IntermediateBenefits{MonitoreoTiempoReal: true, ComunicacionEntrenador: true}

	p, err := NewIntermediatePlan("a1b2c3d4", "Plan Intermedio", "02-02-2024", "12-31-2024", 300, benefits)

	require.NoError(t, err)
	assert.Equal(t, TierIntermedio, p.Tier)
	require.NotNil(t, p.Intermediate)
	assert.True(t, p.Intermediate.MonitoreoTiempoReal)
	assert.False(t, p.Intermediate.AlertasRiesgo)
	assert.Nil(t, p.Premium)
}

func TestNewPremiumPlan(t *testing.T) {
	p, err := NewPremiumPlan("a1b2c3d4", "Plan Premium", "02-02-2024", "12-31-2024", 500,
		IntermediateBenefits{AlertasRiesgo: true},
		PremiumBenefits{SesionesVirtuales: 2, Masajes: true})

	require.NoError(t, err)
	assert.Equal(t, TierPremium, p.Tier)
	require.NotNil(t, p.Intermediate)
	require.NotNil(t, p.Premium)
	assert.Equal(t, 2, p.Premium.SesionesVirtuales)
}

func TestNewPremiumPlan_NegativeSessions(t *testing.T) {
	_, err := NewPremiumPlan("a1b2c3d4", "Plan Premium", "02-02-2024", "12-31-2024", 500,
		IntermediateBenefits{}, PremiumBenefits{SesionesVirtuales: -1})

	assert.ErrorContains(t, err, "session count")
}

func TestNewDescriptionFeature(t *testing.T) {
	f, err := NewDescriptionFeature("a1b2c3d4", TierPremium, "acceso ilimitado")
	require.NoError(t, err)
	assert.Equal(t, TierPremium, f.TipoPlan)

	_, err = NewDescriptionFeature("a1b2c3d4", Tier("vip"), "x")
	assert.Error(t, err)

	_, err = NewDescriptionFeature("a1b2c3d4", TierBasico, "")
	assert.ErrorContains(t, err, "description is required")
}
