package service

import (
	"context"
	"testing"

	"fitmarket/personal-app/internal/domain"
	"fitmarket/personal-app/internal/kv"
	"fitmarket/personal-app/internal/repository"
	"fitmarket/personal-app/internal/repository/kvstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	trainerCPF = "52998224725"
	studentCPF = "12345678909"
)

func newContratoFixture(t *testing.T) (ContratoService, repository.ServicoRepository) {
	t.Helper()
	store := kv.NewMemory()
	logger := zap.NewNop()
	servicoRepo := kvstore.NewServicoRepository(store, logger)
	contratoRepo := kvstore.NewContratoRepository(store, logger)
	return NewContratoService(contratoRepo, servicoRepo, logger), servicoRepo
}

func seedServico(t *testing.T, repo repository.ServicoRepository, owner string) *domain.Servico {
	t.Helper()
	sv := &domain.Servico{
		Tipo:          "Musculação",
		Descricao:     "Treino de força personalizado",
		Valor:         "120,00",
		CadastradoPor: owner,
	}
	require.NoError(t, repo.Create(context.Background(), sv))
	return sv
}

func TestContratoService_HireAndVisibility(t *testing.T) {
	ctx := context.Background()
	svc, servicoRepo := newContratoFixture(t)
	sv := seedServico(t, servicoRepo, trainerCPF)

	ct, err := svc.Hire(ctx, "123.456.789-09", sv.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ContratoAtivo, ct.Status)
	assert.Equal(t, studentCPF, ct.AlunoCPF)

	// The creating student sees it.
	forAluno, err := svc.ListForAluno(ctx, studentCPF)
	require.NoError(t, err)
	assert.Len(t, forAluno, 1)

	// The trainer owning the referenced service sees it too.
	forPersonal, err := svc.ListForPersonal(ctx, trainerCPF)
	require.NoError(t, err)
	assert.Len(t, forPersonal, 1)

	// Another trainer sees nothing.
	other, err := svc.ListForPersonal(ctx, "11144477735")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestContratoService_HireDanglingServicoAllowed(t *testing.T) {
	ctx := context.Background()
	svc, _ := newContratoFixture(t)

	// No referential enforcement: a missing service id is tolerated.
	ct, err := svc.Hire(ctx, studentCPF, 42)
	require.NoError(t, err)
	assert.Equal(t, 42, ct.ServicoID)
}

func TestContratoService_CancelIsOneWay(t *testing.T) {
	ctx := context.Background()
	svc, servicoRepo := newContratoFixture(t)
	sv := seedServico(t, servicoRepo, trainerCPF)

	ct, err := svc.Hire(ctx, studentCPF, sv.ID)
	require.NoError(t, err)

	cancelled, err := svc.Cancel(ctx, ct.ID, studentCPF, domain.RoleAluno)
	require.NoError(t, err)
	assert.Equal(t, domain.ContratoCancelado, cancelled.Status)

	_, err = svc.Cancel(ctx, ct.ID, studentCPF, domain.RoleAluno)
	assert.ErrorIs(t, err, ErrContratoCancelado, "cancelado never transitions back")
}

func TestContratoService_CancelVisibilityChecks(t *testing.T) {
	ctx := context.Background()
	svc, servicoRepo := newContratoFixture(t)
	sv := seedServico(t, servicoRepo, trainerCPF)

	ct, err := svc.Hire(ctx, studentCPF, sv.ID)
	require.NoError(t, err)

	_, err = svc.Cancel(ctx, ct.ID, "11144477735", domain.RoleAluno)
	assert.ErrorIs(t, err, ErrContratoNotVisible, "another student cannot cancel")

	_, err = svc.Cancel(ctx, ct.ID, "11144477735", domain.RolePersonal)
	assert.ErrorIs(t, err, ErrContratoNotVisible, "non-owning trainer cannot cancel")

	// The owning trainer can.
	cancelled, err := svc.Cancel(ctx, ct.ID, trainerCPF, domain.RolePersonal)
	require.NoError(t, err)
	assert.Equal(t, domain.ContratoCancelado, cancelled.Status)

	_, err = svc.Cancel(ctx, 999, studentCPF, domain.RoleAluno)
	assert.ErrorIs(t, err, ErrContratoNotFound)
}
