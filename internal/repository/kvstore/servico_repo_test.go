package kvstore

import (
	"context"
	"testing"

	"fitmarket/personal-app/internal/domain"
	"fitmarket/personal-app/internal/kv"
	"fitmarket/personal-app/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func servicoFixture(owner string) *domain.Servico {
	return &domain.Servico{
		Tipo:          "Musculação",
		Descricao:     "Treino de força personalizado",
		Valor:         "120,00",
		CadastradoPor: owner,
	}
}

func TestServicoRepository_CreateAssignsSequentialIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewServicoRepository(kv.NewMemory(), zap.NewNop())

	s1 := servicoFixture("52998224725")
	s2 := servicoFixture("52998224725")
	require.NoError(t, repo.Create(ctx, s1))
	require.NoError(t, repo.Create(ctx, s2))
	assert.Equal(t, 1, s1.ID)
	assert.Equal(t, 2, s2.ID)
}

func TestServicoRepository_UpdateMissingIDIsNoOp(t *testing.T) {
	ctx := context.Background()
	repo := NewServicoRepository(kv.NewMemory(), zap.NewNop())

	s := servicoFixture("52998224725")
	require.NoError(t, repo.Create(ctx, s))

	ghost := servicoFixture("52998224725")
	ghost.ID = 99
	ghost.Tipo = "Pilates avançado"
	require.NoError(t, repo.Update(ctx, ghost), "missing id never raises")

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Musculação", all[0].Tipo, "stored collection unchanged")
}

func TestServicoRepository_GetByCadastradoPor(t *testing.T) {
	ctx := context.Background()
	repo := NewServicoRepository(kv.NewMemory(), zap.NewNop())

	require.NoError(t, repo.Create(ctx, servicoFixture("52998224725")))
	require.NoError(t, repo.Create(ctx, servicoFixture("12345678909")))
	require.NoError(t, repo.Create(ctx, servicoFixture("529.982.247-25")))

	owned, err := repo.GetByCadastradoPor(ctx, "52998224725")
	require.NoError(t, err)
	assert.Len(t, owned, 2, "owner CPF comparison is on stripped digits")
}

func TestServicoRepository_DeleteByID(t *testing.T) {
	ctx := context.Background()
	repo := NewServicoRepository(kv.NewMemory(), zap.NewNop())

	s := servicoFixture("52998224725")
	require.NoError(t, repo.Create(ctx, s))
	require.NoError(t, repo.Delete(ctx, s.ID))

	_, err := repo.GetByID(ctx, s.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
