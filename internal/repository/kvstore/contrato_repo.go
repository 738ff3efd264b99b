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

// contratoRepository implements repository.ContratoRepository over the
// @contratos blob. No referential checks happen here: a contract may
// reference a service or student that no longer exists, and readers
// tolerate the dangling reference.
type contratoRepository struct {
	mu     sync.Mutex
	store  kv.Store
	logger *zap.Logger
}

func NewContratoRepository(store kv.Store, logger *zap.Logger) repository.ContratoRepository {
	return &contratoRepository{store: store, logger: logger}
}

func (r *contratoRepository) Create(ctx context.Context, c *domain.Contrato) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c.AlunoCPF = br.OnlyDigits(c.AlunoCPF)
	items := loadAll[domain.Contrato](ctx, r.store, KeyContratos, r.logger)
	c.ID = nextID(items, func(it domain.Contrato) int { return it.ID })
	items = append(items, *c)
	return saveAll(ctx, r.store, KeyContratos, items)
}

func (r *contratoRepository) GetAll(ctx context.Context) ([]domain.Contrato, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return loadAll[domain.Contrato](ctx, r.store, KeyContratos, r.logger), nil
}

func (r *contratoRepository) GetByID(ctx context.Context, id int) (*domain.Contrato, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := loadAll[domain.Contrato](ctx, r.store, KeyContratos, r.logger)
	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *contratoRepository) GetByAlunoCPF(ctx context.Context, cpf string) ([]domain.Contrato, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cpf = br.OnlyDigits(cpf)
	items := loadAll[domain.Contrato](ctx, r.store, KeyContratos, r.logger)
	var owned []domain.Contrato
	for _, it := range items {
		if it.AlunoCPF == cpf {
			owned = append(owned, it)
		}
	}
	return owned, nil
}

// GetByServicoIDs returns the contracts referencing any of the given
// service ids. This is how a trainer sees contracts on owned services.
func (r *contratoRepository) GetByServicoIDs(ctx context.Context, ids []int) ([]domain.Contrato, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	wanted := make(map[int]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	items := loadAll[domain.Contrato](ctx, r.store, KeyContratos, r.logger)
	var matched []domain.Contrato
	for _, it := range items {
		if wanted[it.ServicoID] {
			matched = append(matched, it)
		}
	}
	return matched, nil
}

func (r *contratoRepository) Update(ctx context.Context, c *domain.Contrato) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := loadAll[domain.Contrato](ctx, r.store, KeyContratos, r.logger)
	for i := range items {
		if items[i].ID == c.ID {
			items[i] = *c
			return saveAll(ctx, r.store, KeyContratos, items)
		}
	}
	return nil
}
