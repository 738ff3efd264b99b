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

// servicoRepository implements repository.ServicoRepository over the
// @servicos blob.
type servicoRepository struct {
	mu     sync.Mutex
	store  kv.Store
	logger *zap.Logger
}

func NewServicoRepository(store kv.Store, logger *zap.Logger) repository.ServicoRepository {
	return &servicoRepository{store: store, logger: logger}
}

func (r *servicoRepository) Create(ctx context.Context, s *domain.Servico) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s.CadastradoPor = br.OnlyDigits(s.CadastradoPor)
	items := loadAll[domain.Servico](ctx, r.store, KeyServicos, r.logger)
	s.ID = nextID(items, func(it domain.Servico) int { return it.ID })
	items = append(items, *s)
	return saveAll(ctx, r.store, KeyServicos, items)
}

func (r *servicoRepository) GetAll(ctx context.Context) ([]domain.Servico, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return loadAll[domain.Servico](ctx, r.store, KeyServicos, r.logger), nil
}

func (r *servicoRepository) GetByID(ctx context.Context, id int) (*domain.Servico, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := loadAll[domain.Servico](ctx, r.store, KeyServicos, r.logger)
	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *servicoRepository) GetByCadastradoPor(ctx context.Context, cpf string) ([]domain.Servico, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cpf = br.OnlyDigits(cpf)
	items := loadAll[domain.Servico](ctx, r.store, KeyServicos, r.logger)
	var owned []domain.Servico
	for _, it := range items {
		if it.CadastradoPor == cpf {
			owned = append(owned, it)
		}
	}
	return owned, nil
}

// Update replaces the record matching the id; a missing id is a
// silent no-op and the stored collection is left unchanged.
func (r *servicoRepository) Update(ctx context.Context, s *domain.Servico) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := loadAll[domain.Servico](ctx, r.store, KeyServicos, r.logger)
	for i := range items {
		if items[i].ID == s.ID {
			items[i] = *s
			return saveAll(ctx, r.store, KeyServicos, items)
		}
	}
	return nil
}

func (r *servicoRepository) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := loadAll[domain.Servico](ctx, r.store, KeyServicos, r.logger)
	kept := items[:0]
	for _, it := range items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	return saveAll(ctx, r.store, KeyServicos, kept)
}
