package kvstore

import (
	"context"
	"sync"

	"fitmarket/personal-app/internal/br"
	"fitmarket/personal-app/internal/domain"
	"fitmarket/personal-app/internal/kv"
	"fitmarket/personal-app/internal/repository"

	"go.uber.org/zap"
)

// alunoRepository implements repository.AlunoRepository over the
// @alunos blob. Uniqueness is on the nested pessoa.cpf; the numeric id
// is assigned sequentially on create.
type alunoRepository struct {
	mu     sync.Mutex
	store  kv.Store
	logger *zap.Logger
}

func NewAlunoRepository(store kv.Store, logger *zap.Logger) repository.AlunoRepository {
	return &alunoRepository{store: store, logger: logger}
}

func (r *alunoRepository) Create(ctx context.Context, a *domain.Aluno) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a.Pessoa.CPF = br.OnlyDigits(a.Pessoa.CPF)
	items := loadAll[domain.Aluno](ctx, r.store, KeyAlunos, r.logger)
	for i := range items {
		if items[i].Pessoa.CPF == a.Pessoa.CPF {
			return repository.ErrDuplicate
		}
	}
	a.ID = nextID(items, func(it domain.Aluno) int { return it.ID })
	items = append(items, *a)
	return saveAll(ctx, r.store, KeyAlunos, items)
}

func (r *alunoRepository) GetAll(ctx context.Context) ([]domain.Aluno, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return loadAll[domain.Aluno](ctx, r.store, KeyAlunos, r.logger), nil
}

func (r *alunoRepository) GetByCPF(ctx context.Context, cpf string) (*domain.Aluno, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cpf = br.OnlyDigits(cpf)
	items := loadAll[domain.Aluno](ctx, r.store, KeyAlunos, r.logger)
	for i := range items {
		if items[i].Pessoa.CPF == cpf {
			return &items[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

// Update matches on the nested CPF; a missing record is a silent no-op.
func (r *alunoRepository) Update(ctx context.Context, a *domain.Aluno) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a.Pessoa.CPF = br.OnlyDigits(a.Pessoa.CPF)
	items := loadAll[domain.Aluno](ctx, r.store, KeyAlunos, r.logger)
	for i := range items {
		if items[i].Pessoa.CPF == a.Pessoa.CPF {
			a.ID = items[i].ID
			items[i] = *a
			return saveAll(ctx, r.store, KeyAlunos, items)
		}
	}
	return nil
}

func (r *alunoRepository) Delete(ctx context.Context, cpf string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cpf = br.OnlyDigits(cpf)
	items := loadAll[domain.Aluno](ctx, r.store, KeyAlunos, r.logger)
	kept := items[:0]
	for _, it := range items {
		if it.Pessoa.CPF != cpf {
			kept = append(kept, it)
		}
	}
	return saveAll(ctx, r.store, KeyAlunos, kept)
}
