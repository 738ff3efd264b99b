package service

import (
	"context"
	"errors"

	"fitmarket/personal-app/internal/br"
	"fitmarket/personal-app/internal/domain"
	"fitmarket/personal-app/internal/repository"
	"fitmarket/personal-app/internal/validation"

	"go.uber.org/zap"
)

var (
	ErrServicoNotFound = errors.New("servico not found")
	ErrNotServicoOwner = errors.New("servico belongs to another personal")
)

// ServicoService manages service offerings. Every mutation checks that
// the acting trainer is the one recorded in cadastrado_por.
type ServicoService interface {
	Create(ctx context.Context, ownerCPF string, form validation.ServicoForm) (*domain.Servico, error)
	GetAll(ctx context.Context) ([]domain.Servico, error)
	GetByID(ctx context.Context, id int) (*domain.Servico, error)
	GetByOwner(ctx context.Context, ownerCPF string) ([]domain.Servico, error)
	Update(ctx context.Context, id int, ownerCPF string, form validation.ServicoForm) (*domain.Servico, error)
	Delete(ctx context.Context, id int, ownerCPF string) error
}

type servicoService struct {
	repo   repository.ServicoRepository
	logger *zap.Logger
}

func NewServicoService(repo repository.ServicoRepository, logger *zap.Logger) ServicoService {
	return &servicoService{repo: repo, logger: logger}
}

func (s *servicoService) Create(ctx context.Context, ownerCPF string, form validation.ServicoForm) (*domain.Servico, error) {
	if err := validation.ValidateServico(form).OrNil(); err != nil {
		return nil, err
	}

	sv := &domain.Servico{
		Tipo:          form.Tipo,
		Descricao:     form.Descricao,
		Valor:         form.Valor,
		CadastradoPor: br.OnlyDigits(ownerCPF),
	}
	if err := s.repo.Create(ctx, sv); err != nil {
		return nil, err
	}

	s.logger.Info("servico created", zap.Int("id", sv.ID), zap.String("cadastrado_por", sv.CadastradoPor))
	return sv, nil
}

func (s *servicoService) GetAll(ctx context.Context) ([]domain.Servico, error) {
	return s.repo.GetAll(ctx)
}

func (s *servicoService) GetByID(ctx context.Context, id int) (*domain.Servico, error) {
	sv, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrServicoNotFound
	}
	return sv, err
}

func (s *servicoService) GetByOwner(ctx context.Context, ownerCPF string) ([]domain.Servico, error) {
	return s.repo.GetByCadastradoPor(ctx, ownerCPF)
}

func (s *servicoService) Update(ctx context.Context, id int, ownerCPF string, form validation.ServicoForm) (*domain.Servico, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrServicoNotFound
		}
		return nil, err
	}
	if existing.CadastradoPor != br.OnlyDigits(ownerCPF) {
		return nil, ErrNotServicoOwner
	}

	if err := validation.ValidateServico(form).OrNil(); err != nil {
		return nil, err
	}

	updated := &domain.Servico{
		ID:            existing.ID,
		Tipo:          form.Tipo,
		Descricao:     form.Descricao,
		Valor:         form.Valor,
		CadastradoPor: existing.CadastradoPor,
	}
	if err := s.repo.Update(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *servicoService) Delete(ctx context.Context, id int, ownerCPF string) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrServicoNotFound
		}
		return err
	}
	if existing.CadastradoPor != br.OnlyDigits(ownerCPF) {
		return ErrNotServicoOwner
	}
	return s.repo.Delete(ctx, id)
}
