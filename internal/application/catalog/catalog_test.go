package catalog_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Reciclaje-api/internal/application/catalog"
	"github.com/jhoicas/Reciclaje-api/internal/application/dto"
	"github.com/jhoicas/Reciclaje-api/internal/domain"
	"github.com/jhoicas/Reciclaje-api/internal/domain/entity"
	"github.com/jhoicas/Reciclaje-api/internal/infrastructure/memory"
	"github.com/jhoicas/Reciclaje-api/pkg/logger"
)

type countingCache struct{ calls int }

func (c *countingCache) Invalidate(context.Context) error {
	c.calls++
	return nil
}

func TestMunicipality_IstatDuplicadoYToggle(t *testing.T) {
	repos := memory.NewStore().Repos()
	uc := catalog.NewMunicipalityUseCase(repos.Municipalities)
	ctx := context.Background()

	m, err := uc.Create(ctx, dto.MunicipalityRequest{IstatCode: "058091", Name: "Roma", Province: "RM"})
	require.NoError(t, err)
	_, err = uc.Create(ctx, dto.MunicipalityRequest{IstatCode: "058091", Name: "Roma bis"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	toggled, err := uc.ToggleDelegation(ctx, m.ID)
	require.NoError(t, err)
	assert.True(t, toggled.DelegationActive)

	byCode, err := uc.GetByIstatCode(ctx, "058091")
	require.NoError(t, err)
	assert.Equal(t, m.ID, byCode.ID)

	_, err = uc.GetByIstatCode(ctx, "999999")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMunicipality_BusquedaPorNombre(t *testing.T) {
	repos := memory.NewStore().Repos()
	uc := catalog.NewMunicipalityUseCase(repos.Municipalities)
	ctx := context.Background()
	for i, name := range []string{"Roma", "Romano di Lombardia", "Milano"} {
		_, err := uc.Create(ctx, dto.MunicipalityRequest{IstatCode: "00000" + string(rune('1'+i)), Name: name})
		require.NoError(t, err)
	}

	list, err := uc.List(ctx, dto.MunicipalityQuery{Search: "rom"})

	require.NoError(t, err)
	assert.Equal(t, 2, list.Page.Total)
	assert.Equal(t, "Roma", list.Items[0].Name)
}

func TestMaterial_ConMovimientosSoloPrecioYEstado(t *testing.T) {
	repos := memory.NewStore().Repos()
	cache := &countingCache{}
	uc := catalog.NewMaterialUseCase(repos.Materials, cache, logger.Nop())
	ctx := context.Background()

	m, err := uc.Create(ctx, dto.MaterialRequest{Code: "PET", Name: "Bottiglie PET", Consortium: entity.ConsortiumCOREPLA})
	require.NoError(t, err)
	assert.True(t, m.Active)
	require.NoError(t, repos.Intakes.Create(ctx, &entity.Intake{ID: uuid.NewString(), MaterialID: m.ID, Date: time.Now(), QuantityKg: decimal.NewFromInt(10)}))

	price := decimal.RequireFromString("0.30")
	updated, err := uc.Update(ctx, m.ID, dto.MaterialRequest{Code: "PET", Name: "Bottiglie PET", Consortium: entity.ConsortiumCOREPLA, AveragePrice: &price})
	require.NoError(t, err)
	require.NotNil(t, updated.AveragePrice)
	assert.True(t, updated.AveragePrice.Equal(price))

	_, err = uc.Update(ctx, m.ID, dto.MaterialRequest{Code: "PET2", Name: "Bottiglie PET", Consortium: entity.ConsortiumCOREPLA})
	assert.ErrorIs(t, err, domain.ErrConflict)

	assert.ErrorIs(t, uc.Delete(ctx, m.ID), domain.ErrConflict)
	assert.Equal(t, 2, cache.calls)
}

func TestFlow_CodigoEnMayusculas(t *testing.T) {
	repos := memory.NewStore().Repos()
	uc := catalog.NewFlowUseCase(repos.Flows)
	ctx := context.Background()

	f, err := uc.Create(ctx, dto.FlowRequest{Code: " a ", Name: "Flusso A", RatePerTonne: decimal.NewFromInt(300)})
	require.NoError(t, err)
	assert.Equal(t, "A", f.Code)

	_, err = uc.Create(ctx, dto.FlowRequest{Code: "A", Name: "Altro"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}
