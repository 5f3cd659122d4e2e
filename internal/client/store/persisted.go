package store

import (
	"context"
	"encoding/json"

	"github.com/example/coursemart/internal/client/repositories/state"
	"github.com/example/coursemart/internal/logging"
)

// Persisted is a Cell decorated with load-on-init and save-on-write hooks.
// Values round-trip through JSON in the state repository under a fixed key.
// Persistence failures are logged and otherwise ignored: durable state is a
// convenience, never a reason to fail an interaction.
type Persisted[T any] struct {
	cell *Cell[T]
	key  string
	repo state.Repository
	log  logging.Logger
}

func newPersisted[T any](ctx context.Context, c *core, key string, initial T, repo state.Repository, log logging.Logger) *Persisted[T] {
	p := &Persisted[T]{cell: newCell(c, initial), key: key, repo: repo, log: log}
	p.load(ctx)
	return p
}

func (p *Persisted[T]) load(ctx context.Context) {
	raw, err := p.repo.Get(ctx, p.key)
	if err != nil {
		p.log.Warn(ctx, "loading persisted state failed", "key", p.key, "error", err)
		return
	}
	if raw == nil {
		return
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		p.log.Warn(ctx, "persisted state is corrupt, keeping defaults", "key", p.key, "error", err)
		return
	}
	p.cell.set(v)
}

func (p *Persisted[T]) Get() T {
	return p.cell.Get()
}

// Set updates the value and immediately writes it through to the repository.
func (p *Persisted[T]) Set(ctx context.Context, v T) {
	p.cell.c.mu.Lock()
	defer p.cell.c.mu.Unlock()
	p.cell.set(v)
	p.cell.c.rev++
	p.save(ctx, v)
}

// save must be called with the core mutex held so writes reach the
// repository in the order they were applied.
func (p *Persisted[T]) save(ctx context.Context, v T) {
	raw, err := json.Marshal(v)
	if err != nil {
		p.log.Error(ctx, "encoding persisted state failed", "key", p.key, "error", err)
		return
	}
	if err := p.repo.Set(ctx, p.key, raw); err != nil {
		p.log.Error(ctx, "saving persisted state failed", "key", p.key, "error", err)
	}
}

func (p *Persisted[T]) peek() T {
	return p.cell.peek()
}
