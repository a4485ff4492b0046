// Package resource is the shared list/create/update/delete controller
// behind the category and product screens. State is never patched
// locally: every successful mutation re-derives the list from the
// server with a full refetch.
package resource

import (
	"context"
	"fmt"
	"sync"

	"github.com/khauvukhanh/web-clot/internal/api"
	"github.com/khauvukhanh/web-clot/internal/notify"
)

// Messages are the per-operation toast texts for one entity type.
type Messages struct {
	FetchFailed  string
	Created      string
	CreateFailed string
	Updated      string
	UpdateFailed string
	DeletedFmt   string // printf format taking the entity label
	DeleteFailed string
}

type Controller[T any] struct {
	res      api.Resource[T]
	notifier *notify.Notifier
	msgs     Messages

	mu     sync.RWMutex
	items  []T
	issued uint64 // generation of the newest issued list request
}

func NewController[T any](res api.Resource[T], n *notify.Notifier, msgs Messages) *Controller[T] {
	return &Controller[T]{res: res, notifier: n, msgs: msgs}
}

// Items returns a copy of the held collection.
func (c *Controller[T]) Items() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Controller[T]) Notifier() *notify.Notifier { return c.notifier }

// Refresh replaces the held collection with the server's current list.
// Concurrent refreshes are stamped with a generation number; a response
// that lost the race is discarded rather than applied last-write-wins.
func (c *Controller[T]) Refresh(ctx context.Context, creds api.Credentials) error {
	c.mu.Lock()
	c.issued++
	gen := c.issued
	c.mu.Unlock()

	items, err := c.res.List(ctx, creds)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.issued {
		// A newer request owns the state now; this response is stale.
		return nil
	}
	if err != nil {
		c.notifier.Error(c.msgs.FetchFailed)
		return err
	}
	c.items = items
	return nil
}

func (c *Controller[T]) Create(ctx context.Context, creds api.Credentials, in any) error {
	if err := c.res.Create(ctx, creds, in); err != nil {
		c.notifier.Error(c.msgs.CreateFailed)
		return err
	}
	_ = c.Refresh(ctx, creds)
	c.notifier.Success(c.msgs.Created)
	return nil
}

func (c *Controller[T]) Update(ctx context.Context, creds api.Credentials, id string, in any) error {
	if err := c.res.Update(ctx, creds, id, in); err != nil {
		c.notifier.Error(c.msgs.UpdateFailed)
		return err
	}
	_ = c.Refresh(ctx, creds)
	c.notifier.Success(c.msgs.Updated)
	return nil
}

// Delete removes one entity. label is the human name shown in the
// success toast. Callers must have collected the user's confirmation
// before this point; no network call happens without it.
func (c *Controller[T]) Delete(ctx context.Context, creds api.Credentials, id, label string) error {
	if err := c.res.Delete(ctx, creds, id); err != nil {
		c.notifier.Error(c.msgs.DeleteFailed)
		return err
	}
	_ = c.Refresh(ctx, creds)
	c.notifier.Success(fmt.Sprintf(c.msgs.DeletedFmt, label))
	return nil
}
