package costs_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Reciclaje-api/internal/application/costs"
	"github.com/jhoicas/Reciclaje-api/internal/application/dto"
	"github.com/jhoicas/Reciclaje-api/internal/domain"
	"github.com/jhoicas/Reciclaje-api/internal/domain/entity"
	"github.com/jhoicas/Reciclaje-api/internal/infrastructure/memory"
)

func setup(t *testing.T) (*costs.CostUseCase, memory.Repos) {
	t.Helper()
	repos := memory.NewStore().Repos()
	return costs.NewCostUseCase(repos.Costs, repos.Materials, repos.Intakes), repos
}

func TestCreate_MaterialInexistente(t *testing.T) {
	uc, _ := setup(t)
	missing := uuid.NewString()

	_, err := uc.Create(context.Background(), dto.CostRequest{
		Date: "2024-03-01", Category: entity.CostPersonnel, Description: "Turno notte",
		Amount: decimal.NewFromInt(100), MaterialID: &missing,
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSummary_PorCategoriaYCostoPorTonelada(t *testing.T) {
	uc, repos := setup(t)
	ctx := context.Background()
	for _, c := range []dto.CostRequest{
		{Date: "2024-03-01", Category: entity.CostPersonnel, Description: "Stipendi", Amount: decimal.NewFromInt(3000)},
		{Date: "2024-03-15", Category: entity.CostUtilities, Description: "Energia", Amount: decimal.NewFromInt(1000)},
		{Date: "2024-03-20", Category: entity.CostPersonnel, Description: "Straordinari", Amount: decimal.NewFromInt(500)},
		{Date: "2024-04-01", Category: entity.CostPersonnel, Description: "Aprile", Amount: decimal.NewFromInt(9999)},
	} {
		_, err := uc.Create(ctx, c)
		require.NoError(t, err)
	}
	require.NoError(t, repos.Intakes.Create(ctx, &entity.Intake{ID: uuid.NewString(), Date: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), QuantityKg: decimal.NewFromInt(9000)}))

	sum, err := uc.Summary(ctx, dto.CostSummaryQuery{Year: 2024, Month: 3})

	require.NoError(t, err)
	require.Len(t, sum.Categories, len(entity.CostCategories))
	assert.Equal(t, entity.CostPersonnel, sum.Categories[0].Category)
	assert.True(t, sum.Categories[0].Amount.Equal(decimal.NewFromInt(3500)))
	assert.Equal(t, 2, sum.Categories[0].Count)
	assert.True(t, sum.Categories[2].Amount.IsZero())
	assert.True(t, sum.Total.Equal(decimal.NewFromInt(4500)))
	require.NotNil(t, sum.CostPerTonne)
	assert.True(t, sum.CostPerTonne.Equal(decimal.NewFromInt(500)))
}

func TestSummary_SinConferimentiSinCostoPorTonelada(t *testing.T) {
	uc, _ := setup(t)

	sum, err := uc.Summary(context.Background(), dto.CostSummaryQuery{Year: 2024, Month: 2})

	require.NoError(t, err)
	assert.Nil(t, sum.CostPerTonne)
	assert.True(t, sum.Total.IsZero())
}

func TestUpdateDelete(t *testing.T) {
	uc, _ := setup(t)
	ctx := context.Background()
	c, err := uc.Create(ctx, dto.CostRequest{Date: "2024-03-01", Category: entity.CostTransport, Description: "Gasolio", Amount: decimal.NewFromInt(80)})
	require.NoError(t, err)

	up, err := uc.Update(ctx, c.ID, dto.CostRequest{Date: "2024-03-02", Category: entity.CostTransport, Description: "Gasolio", Amount: decimal.NewFromInt(90)})
	require.NoError(t, err)
	assert.True(t, up.Amount.Equal(decimal.NewFromInt(90)))

	require.NoError(t, uc.Delete(ctx, c.ID))
	_, err = uc.GetByID(ctx, c.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
