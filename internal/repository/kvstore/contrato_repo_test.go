package kvstore

import (
	"context"
	"testing"
	"time"

	"fitmarket/personal-app/internal/domain"
	"fitmarket/personal-app/internal/kv"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func contratoFixture(alunoCPF string, servicoID int) *domain.Contrato {
	return &domain.Contrato{
		AlunoCPF:        alunoCPF,
		ServicoID:       servicoID,
		DataContratacao: time.Now().UTC(),
		Status:          domain.ContratoAtivo,
	}
}

func TestContratoRepository_CreateAndFilter(t *testing.T) {
	ctx := context.Background()
	repo := NewContratoRepository(kv.NewMemory(), zap.NewNop())

	require.NoError(t, repo.Create(ctx, contratoFixture("12345678909", 1)))
	require.NoError(t, repo.Create(ctx, contratoFixture("12345678909", 2)))
	require.NoError(t, repo.Create(ctx, contratoFixture("52998224725", 1)))

	mine, err := repo.GetByAlunoCPF(ctx, "123.456.789-09")
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	onServices, err := repo.GetByServicoIDs(ctx, []int{1})
	require.NoError(t, err)
	assert.Len(t, onServices, 2)

	none, err := repo.GetByServicoIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestContratoRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	repo := NewContratoRepository(kv.NewMemory(), zap.NewNop())

	c := contratoFixture("12345678909", 1)
	require.NoError(t, repo.Create(ctx, c))

	c.Status = domain.ContratoCancelado
	require.NoError(t, repo.Update(ctx, c))

	got, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ContratoCancelado, got.Status)
}
