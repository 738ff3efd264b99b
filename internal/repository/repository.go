package repository

import (
	"context"

	"fitmarket/personal-app/internal/domain"
)

// Error constants for the repository layer.
var (
	ErrNotFound  = RepositoryError("not found")
	ErrDuplicate = RepositoryError("duplicate natural key")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// PersonalRepository persists trainer records keyed by CPF.
// Update and Delete on a missing CPF are silent no-ops; only Create
// fails (with ErrDuplicate) when the key is taken.
type PersonalRepository interface {
	Create(ctx context.Context, p *domain.Personal) error
	GetAll(ctx context.Context) ([]domain.Personal, error)
	GetByCPF(ctx context.Context, cpf string) (*domain.Personal, error)
	Update(ctx context.Context, p *domain.Personal) error
	Delete(ctx context.Context, cpf string) error
}

// AlunoRepository persists student records keyed by the nested
// pessoa.cpf, with a sequential numeric id assigned on create.
type AlunoRepository interface {
	Create(ctx context.Context, a *domain.Aluno) error
	GetAll(ctx context.Context) ([]domain.Aluno, error)
	GetByCPF(ctx context.Context, cpf string) (*domain.Aluno, error)
	Update(ctx context.Context, a *domain.Aluno) error
	Delete(ctx context.Context, cpf string) error
}

// ServicoRepository persists service offerings keyed by numeric id.
type ServicoRepository interface {
	Create(ctx context.Context, s *domain.Servico) error
	GetAll(ctx context.Context) ([]domain.Servico, error)
	GetByID(ctx context.Context, id int) (*domain.Servico, error)
	GetByCadastradoPor(ctx context.Context, cpf string) ([]domain.Servico, error)
	Update(ctx context.Context, s *domain.Servico) error
	Delete(ctx context.Context, id int) error
}

// ContratoRepository persists contracts keyed by numeric id.
// Contracts are never removed, only cancelled, so there is no Delete.
type ContratoRepository interface {
	Create(ctx context.Context, c *domain.Contrato) error
	GetAll(ctx context.Context) ([]domain.Contrato, error)
	GetByID(ctx context.Context, id int) (*domain.Contrato, error)
	GetByAlunoCPF(ctx context.Context, cpf string) ([]domain.Contrato, error)
	GetByServicoIDs(ctx context.Context, ids []int) ([]domain.Contrato, error)
	Update(ctx context.Context, c *domain.Contrato) error
}
