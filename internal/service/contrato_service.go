package service

import (
	"context"
	"errors"
	"time"

	"fitmarket/personal-app/internal/br"
	"fitmarket/personal-app/internal/domain"
	"fitmarket/personal-app/internal/repository"

	"go.uber.org/zap"
)

var (
	ErrContratoNotFound   = errors.New("contrato not found")
	ErrContratoNotVisible = errors.New("contrato is not visible to this user")
	ErrContratoCancelado  = errors.New("contrato is already cancelled")
)

// ContratoService manages the contract lifecycle. A contract is
// visible to the student who created it and to the trainer owning the
// referenced service; the status transition is strictly one-way.
type ContratoService interface {
	Hire(ctx context.Context, alunoCPF string, servicoID int) (*domain.Contrato, error)
	ListForAluno(ctx context.Context, cpf string) ([]domain.Contrato, error)
	ListForPersonal(ctx context.Context, cpf string) ([]domain.Contrato, error)
	Cancel(ctx context.Context, id int, requesterCPF string, role domain.Role) (*domain.Contrato, error)
}

type contratoService struct {
	contratoRepo repository.ContratoRepository
	servicoRepo  repository.ServicoRepository
	logger       *zap.Logger
}

func NewContratoService(
	contratoRepo repository.ContratoRepository,
	servicoRepo repository.ServicoRepository,
	logger *zap.Logger,
) ContratoService {
	return &contratoService{
		contratoRepo: contratoRepo,
		servicoRepo:  servicoRepo,
		logger:       logger,
	}
}

// Hire creates an active contract for the student. The service lookup
// is advisory: a dangling servico id is allowed, readers tolerate it.
func (s *contratoService) Hire(ctx context.Context, alunoCPF string, servicoID int) (*domain.Contrato, error) {
	if _, err := s.servicoRepo.GetByID(ctx, servicoID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.logger.Warn("contrato references missing servico", zap.Int("servico_id", servicoID))
		} else {
			return nil, err
		}
	}

	c := &domain.Contrato{
		AlunoCPF:        br.OnlyDigits(alunoCPF),
		ServicoID:       servicoID,
		DataContratacao: time.Now().UTC(),
		Status:          domain.ContratoAtivo,
	}
	if err := s.contratoRepo.Create(ctx, c); err != nil {
		return nil, err
	}

	s.logger.Info("contrato created",
		zap.Int("id", c.ID), zap.String("aluno", c.AlunoCPF), zap.Int("servico_id", c.ServicoID))
	return c, nil
}

func (s *contratoService) ListForAluno(ctx context.Context, cpf string) ([]domain.Contrato, error) {
	return s.contratoRepo.GetByAlunoCPF(ctx, cpf)
}

// ListForPersonal resolves the trainer's owned services first, then
// filters contracts by those ids.
func (s *contratoService) ListForPersonal(ctx context.Context, cpf string) ([]domain.Contrato, error) {
	owned, err := s.servicoRepo.GetByCadastradoPor(ctx, cpf)
	if err != nil {
		return nil, err
	}
	ids := make([]int, 0, len(owned))
	for _, sv := range owned {
		ids = append(ids, sv.ID)
	}
	return s.contratoRepo.GetByServicoIDs(ctx, ids)
}

// Cancel moves an active contract to cancelado. The requester must be
// able to see the contract; a cancelled contract stays cancelled and a
// second cancel fails.
func (s *contratoService) Cancel(ctx context.Context, id int, requesterCPF string, role domain.Role) (*domain.Contrato, error) {
	c, err := s.contratoRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrContratoNotFound
		}
		return nil, err
	}

	visible, err := s.visibleTo(ctx, c, requesterCPF, role)
	if err != nil {
		return nil, err
	}
	if !visible {
		return nil, ErrContratoNotVisible
	}

	if !c.IsAtivo() {
		return nil, ErrContratoCancelado
	}
	c.Status = domain.ContratoCancelado
	if err := s.contratoRepo.Update(ctx, c); err != nil {
		return nil, err
	}

	s.logger.Info("contrato cancelled", zap.Int("id", c.ID))
	return c, nil
}

func (s *contratoService) visibleTo(ctx context.Context, c *domain.Contrato, cpf string, role domain.Role) (bool, error) {
	cpf = br.OnlyDigits(cpf)
	if role == domain.RoleAluno {
		return c.AlunoCPF == cpf, nil
	}
	sv, err := s.servicoRepo.GetByID(ctx, c.ServicoID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// Dangling service: the owning trainer can no longer be resolved.
			return false, nil
		}
		return false, err
	}
	return sv.CadastradoPor == cpf, nil
}
