// Package kvstore implements the repositories over the blob store.
// Every collection is one JSON array under one key; mutations load the
// whole array, change it in memory and write it back. Each repository
// serializes its read-modify-write cycles under a mutex so overlapping
// mutations against the same collection cannot lose an update.
package kvstore

import (
	"context"
	"encoding/json"

	"fitmarket/personal-app/internal/kv"

	"go.uber.org/zap"
)

// Collection keys. Absence of a key is an empty collection.
const (
	KeyPersonais = "@personais"
	KeyAlunos    = "@alunos"
	KeyServicos  = "@servicos"
	KeyContratos = "@contratos"
)

// loadAll reads and decodes an entire collection. Read or parse
// failures degrade to an empty collection: they are logged and never
// propagated to the caller.
func loadAll[T any](ctx context.Context, store kv.Store, key string, logger *zap.Logger) []T {
	raw, err := store.Get(ctx, key)
	if err != nil {
		logger.Warn("collection read failed, treating as empty",
			zap.String("key", key), zap.Error(err))
		return nil
	}
	if raw == nil {
		return nil
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		logger.Warn("collection blob unparseable, treating as empty",
			zap.String("key", key), zap.Error(err))
		return nil
	}
	return items
}

// saveAll encodes and writes back an entire collection. Write failures
// do propagate.
func saveAll[T any](ctx context.Context, store kv.Store, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return store.Set(ctx, key, raw)
}

// nextID assigns one greater than the last element's id, or 1 for an
// empty collection. Appends keep the list ordered by id, so the last
// element carries the high-water mark.
func nextID[T any](items []T, idOf func(T) int) int {
	if len(items) == 0 {
		return 1
	}
	return idOf(items[len(items)-1]) + 1
}
