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

// personalRepository implements repository.PersonalRepository over the
// @personais blob.
type personalRepository struct {
	mu     sync.Mutex
	store  kv.Store
	logger *zap.Logger
}

// NewPersonalRepository creates a trainer repository backed by store.
func NewPersonalRepository(store kv.Store, logger *zap.Logger) repository.PersonalRepository {
	return &personalRepository{store: store, logger: logger}
}

// Create appends a new trainer after a duplicate scan on the
// normalized CPF. The whole collection is written back.
func (r *personalRepository) Create(ctx context.Context, p *domain.Personal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p.CPF = br.OnlyDigits(p.CPF)
	items := loadAll[domain.Personal](ctx, r.store, KeyPersonais, r.logger)
	for i := range items {
		if items[i].CPF == p.CPF {
			return repository.ErrDuplicate
		}
	}
	items = append(items, *p)
	return saveAll(ctx, r.store, KeyPersonais, items)
}

func (r *personalRepository) GetAll(ctx context.Context) ([]domain.Personal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return loadAll[domain.Personal](ctx, r.store, KeyPersonais, r.logger), nil
}

func (r *personalRepository) GetByCPF(ctx context.Context, cpf string) (*domain.Personal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cpf = br.OnlyDigits(cpf)
	items := loadAll[domain.Personal](ctx, r.store, KeyPersonais, r.logger)
	for i := range items {
		if items[i].CPF == cpf {
			return &items[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

// Update replaces the record matching the CPF in place. A missing CPF
// is a silent no-op: the stored collection is left unchanged.
func (r *personalRepository) Update(ctx context.Context, p *domain.Personal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p.CPF = br.OnlyDigits(p.CPF)
	items := loadAll[domain.Personal](ctx, r.store, KeyPersonais, r.logger)
	for i := range items {
		if items[i].CPF == p.CPF {
			items[i] = *p
			return saveAll(ctx, r.store, KeyPersonais, items)
		}
	}
	return nil
}

// Delete writes back the collection without the matching record.
// A missing CPF is a silent no-op.
func (r *personalRepository) Delete(ctx context.Context, cpf string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cpf = br.OnlyDigits(cpf)
	items := loadAll[domain.Personal](ctx, r.store, KeyPersonais, r.logger)
	kept := items[:0]
	for _, it := range items {
		if it.CPF != cpf {
			kept = append(kept, it)
		}
	}
	return saveAll(ctx, r.store, KeyPersonais, kept)
}
