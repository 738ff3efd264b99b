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

var ErrAlunoNotFound = errors.New("aluno not found")

// AlunoService manages student records after registration. The nested
// pessoa CPF is immutable; the numeric id is preserved across edits.
type AlunoService interface {
	GetAll(ctx context.Context) ([]domain.Aluno, error)
	GetByCPF(ctx context.Context, cpf string) (*domain.Aluno, error)
	Update(ctx context.Context, cpf string, form validation.AlunoForm) (*domain.Aluno, error)
	Delete(ctx context.Context, cpf string) error
	Deactivate(ctx context.Context, cpf string) (*domain.Aluno, error)
}

type alunoService struct {
	repo   repository.AlunoRepository
	logger *zap.Logger
}

func NewAlunoService(repo repository.AlunoRepository, logger *zap.Logger) AlunoService {
	return &alunoService{repo: repo, logger: logger}
}

func (s *alunoService) GetAll(ctx context.Context) ([]domain.Aluno, error) {
	return s.repo.GetAll(ctx)
}

func (s *alunoService) GetByCPF(ctx context.Context, cpf string) (*domain.Aluno, error) {
	a, err := s.repo.GetByCPF(ctx, cpf)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrAlunoNotFound
	}
	return a, err
}

func (s *alunoService) Update(ctx context.Context, cpf string, form validation.AlunoForm) (*domain.Aluno, error) {
	existing, err := s.repo.GetByCPF(ctx, cpf)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAlunoNotFound
		}
		return nil, err
	}

	form.Pessoa.CPF = existing.Pessoa.CPF // CPF is not editable
	if err := validation.ValidateAluno(form, true).OrNil(); err != nil {
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

	updated := &domain.Aluno{
		ID: existing.ID,
		Pessoa: domain.Pessoa{
			CPF:            existing.Pessoa.CPF,
			Nome:           form.Pessoa.Nome,
			NomeSocial:     form.Pessoa.NomeSocial,
			DataNascimento: form.Pessoa.DataNascimento,
			Email:          form.Pessoa.Email,
			Celular:        br.OnlyDigits(form.Pessoa.Celular),
			Sexo:           form.Pessoa.Sexo,
			Etnia:          form.Pessoa.Etnia,
			EstadoCivil:    form.Pessoa.EstadoCivil,
		},
		Bioimpedancia:       form.Bioimpedancia,
		Altura:              form.Altura,
		AguaCorporal:        form.AguaCorporal,
		Proteina:            form.Proteina,
		Minerais:            form.Minerais,
		GorduraCorporal:     form.GorduraCorporal,
		Peso:                form.Peso,
		MusculoEsqueletico:  form.MusculoEsqueletico,
		IMC:                 form.IMC,
		TaxaMetabolicaBasal: form.TaxaMetabolicaBasal,
		DataExame:           form.DataExame,
		HoraExame:           form.HoraExame,
		SenhaHash:           senhaHash,
		Ativo:               existing.Ativo,
	}

	if err := s.repo.Update(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *alunoService) Delete(ctx context.Context, cpf string) error {
	s.logger.Info("aluno removed", zap.String("cpf", br.OnlyDigits(cpf)))
	return s.repo.Delete(ctx, cpf)
}

func (s *alunoService) Deactivate(ctx context.Context, cpf string) (*domain.Aluno, error) {
	a, err := s.repo.GetByCPF(ctx, cpf)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAlunoNotFound
		}
		return nil, err
	}
	a.Desativar()
	if err := s.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}
