package service

import (
	"context"
	"errors"

	"fitmarket/personal-app/internal/br"
	"fitmarket/personal-app/internal/domain"
	"fitmarket/personal-app/internal/repository"
	"fitmarket/personal-app/internal/validation"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var ErrPersonalNotFound = errors.New("personal not found")

// PersonalService manages trainer records after registration. The CPF
// is immutable; edits replace every other field. Both removal paths
// are exposed: Delete drops the record from the collection, Deactivate
// keeps it with ativo=false.
type PersonalService interface {
	GetAll(ctx context.Context) ([]domain.Personal, error)
	GetByCPF(ctx context.Context, cpf string) (*domain.Personal, error)
	Update(ctx context.Context, cpf string, form validation.PersonalForm) (*domain.Personal, error)
	Delete(ctx context.Context, cpf string) error
	Deactivate(ctx context.Context, cpf string) (*domain.Personal, error)
}

type personalService struct {
	repo   repository.PersonalRepository
	logger *zap.Logger
}

func NewPersonalService(repo repository.PersonalRepository, logger *zap.Logger) PersonalService {
	return &personalService{repo: repo, logger: logger}
}

func (s *personalService) GetAll(ctx context.Context) ([]domain.Personal, error) {
	return s.repo.GetAll(ctx)
}

func (s *personalService) GetByCPF(ctx context.Context, cpf string) (*domain.Personal, error) {
	p, err := s.repo.GetByCPF(ctx, cpf)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrPersonalNotFound
	}
	return p, err
}

// Update validates the edit form and replaces the stored record. An
// empty senha keeps the current hash; a supplied one is re-hashed.
func (s *personalService) Update(ctx context.Context, cpf string, form validation.PersonalForm) (*domain.Personal, error) {
	existing, err := s.repo.GetByCPF(ctx, cpf)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPersonalNotFound
		}
		return nil, err
	}

	form.CPF = existing.CPF // CPF is not editable
	if err := validation.ValidatePersonal(form, true).OrNil(); err != nil {
		return nil, err
	}

	senhaHash := existing.SenhaHash
	if form.Senha != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(form.Senha), bcrypt.DefaultCost)
		if err != nil {
			return nil, ErrHashingFailed
		}
		senhaHash = string(hash)
	}

	updated := &domain.Personal{
		CPF:                     existing.CPF,
		Nome:                    form.Nome,
		NomeSocial:              form.NomeSocial,
		DataNascimento:          form.DataNascimento,
		Email:                   form.Email,
		Celular:                 br.OnlyDigits(form.Celular),
		Sexo:                    form.Sexo,
		Etnia:                   form.Etnia,
		EstadoCivil:             form.EstadoCivil,
		RegistroProfissional:    form.RegistroProfissional,
		Especialidades:          form.Especialidades,
		ExperienciaProfissional: form.ExperienciaProfissional,
		HorariosDisponiveis:     form.HorariosDisponiveis,
		LocaisDisponiveis:       form.LocaisDisponiveis,
		Conta:                   form.Conta,
		Agencia:                 form.Agencia,
		SenhaHash:               senhaHash,
		Ativo:                   existing.Ativo,
	}

	if err := s.repo.Update(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *personalService) Delete(ctx context.Context, cpf string) error {
	s.logger.Info("personal removed", zap.String("cpf", br.OnlyDigits(cpf)))
	return s.repo.Delete(ctx, cpf)
}

// Deactivate flips ativo off but keeps the record in the collection.
func (s *personalService) Deactivate(ctx context.Context, cpf string) (*domain.Personal, error) {
	p, err := s.repo.GetByCPF(ctx, cpf)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPersonalNotFound
		}
		return nil, err
	}
	p.Desativar()
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}
