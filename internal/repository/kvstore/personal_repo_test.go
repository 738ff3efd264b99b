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

func personalFixture(cpf string) *domain.Personal {
	return &domain.Personal{
		CPF:            cpf,
		Nome:           "Carlos Andrade",
		DataNascimento: "1990-05-10",
		Email:          "carlos@example.com",
		Celular:        "11987654321",
		Ativo:          true,
	}
}

func TestPersonalRepository_CreateThenGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewPersonalRepository(kv.NewMemory(), zap.NewNop())

	require.NoError(t, repo.Create(ctx, personalFixture("123.456.789-09")))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "12345678909", all[0].CPF, "stored CPF is stripped to digits")
}

func TestPersonalRepository_DuplicateCPFRejected(t *testing.T) {
	ctx := context.Background()
	repo := NewPersonalRepository(kv.NewMemory(), zap.NewNop())

	require.NoError(t, repo.Create(ctx, personalFixture("123.456.789-09")))
	// Same CPF under different formatting still collides.
	err := repo.Create(ctx, personalFixture("12345678909"))
	assert.ErrorIs(t, err, repository.ErrDuplicate)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1, "failed create must not write")
}

func TestPersonalRepository_GetByCPF(t *testing.T) {
	ctx := context.Background()
	repo := NewPersonalRepository(kv.NewMemory(), zap.NewNop())

	require.NoError(t, repo.Create(ctx, personalFixture("52998224725")))

	p, err := repo.GetByCPF(ctx, "529.982.247-25")
	require.NoError(t, err)
	assert.Equal(t, "Carlos Andrade", p.Nome)

	_, err = repo.GetByCPF(ctx, "12345678909")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestPersonalRepository_UpdateReplacesInPlace(t *testing.T) {
	ctx := context.Background()
	repo := NewPersonalRepository(kv.NewMemory(), zap.NewNop())

	require.NoError(t, repo.Create(ctx, personalFixture("52998224725")))

	changed := personalFixture("52998224725")
	changed.Nome = "Carlos Eduardo Andrade"
	require.NoError(t, repo.Update(ctx, changed))

	p, err := repo.GetByCPF(ctx, "52998224725")
	require.NoError(t, err)
	assert.Equal(t, "Carlos Eduardo Andrade", p.Nome)
}

func TestPersonalRepository_UpdateMissingIsNoOp(t *testing.T) {
	ctx := context.Background()
	repo := NewPersonalRepository(kv.NewMemory(), zap.NewNop())

	require.NoError(t, repo.Create(ctx, personalFixture("52998224725")))
	require.NoError(t, repo.Update(ctx, personalFixture("12345678909")), "missing key never raises")

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1, "stored collection unchanged")
}

func TestPersonalRepository_DeleteMissingIsNoOp(t *testing.T) {
	ctx := context.Background()
	repo := NewPersonalRepository(kv.NewMemory(), zap.NewNop())

	require.NoError(t, repo.Create(ctx, personalFixture("52998224725")))
	require.NoError(t, repo.Delete(ctx, "12345678909"))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, repo.Delete(ctx, "529.982.247-25"))
	all, err = repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestPersonalRepository_CorruptBlobTreatedAsEmpty(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()
	require.NoError(t, store.Set(ctx, KeyPersonais, []byte("{not json")))

	repo := NewPersonalRepository(store, zap.NewNop())
	all, err := repo.GetAll(ctx)
	require.NoError(t, err, "parse failures are swallowed")
	assert.Empty(t, all)

	// A create over a corrupt blob starts the collection fresh.
	require.NoError(t, repo.Create(ctx, personalFixture("52998224725")))
	all, err = repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
