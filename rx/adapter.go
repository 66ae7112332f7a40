/*
 * Copyright © 2026 SugarRecord Authors, All rights reserved.
 */

package rx

import (
	"context"

	"github.com/hirofumiymmto/sugarrecord/errors"
	"github.com/hirofumiymmto/sugarrecord/storage"
)

// Adapter wraps a storage.Store in cold, single-shot producers so
// save/fetch flows compose with Map, ObserveOn and error propagation
// instead of callbacks.
type Adapter[T storage.Entity] struct {
	store storage.Store[T]
	cfg   adapterConfig
}

type adapterConfig struct {
	background       Scheduler
	delivery         Scheduler
	deliverMutations bool
}

// AdapterOption configures an Adapter.
type AdapterOption func(*adapterConfig)

// WithBackground sets the scheduler the InBackground operations
// dispatch their storage work onto. Defaults to Background.
func WithBackground(s Scheduler) AdapterOption {
	return func(c *adapterConfig) { c.background = s }
}

// WithDelivery sets the scheduler mapped background fetch results are
// observed on. Defaults to Main().
func WithDelivery(s Scheduler) AdapterOption {
	return func(c *adapterConfig) { c.delivery = s }
}

// WithBackgroundDelivery also routes the completion of background
// mutations onto the delivery scheduler. By default only mapped
// background fetches are delivered there and background mutations
// complete on the worker that ran them.
func WithBackgroundDelivery() AdapterOption {
	return func(c *adapterConfig) { c.deliverMutations = true }
}

// NewAdapter wraps store. Options adjust the scheduling defaults.
func NewAdapter[T storage.Entity](store storage.Store[T], opts ...AdapterOption) *Adapter[T] {
	cfg := adapterConfig{
		background: Background,
		delivery:   nil,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.delivery == nil {
		cfg.delivery = Main()
	}
	return &Adapter[T]{store: store, cfg: cfg}
}

// Store returns the wrapped store.
func (a *Adapter[T]) Store() storage.Store[T] {
	return a.store
}

// Mutate returns a producer that, on subscription, runs op against the
// store's mutation context on the subscribing goroutine and then
// completes. The producer emits no value and never fails: persistence
// happens only if op invokes the Saver, the Saver's error surfaces
// inside op, and a panic raised by op propagates to the subscriber
// untouched.
func (a *Adapter[T]) Mutate(op func(storage.Context, storage.Saver)) *Producer[Void] {
	return NewProducer(func(e *Emitter[Void]) {
		a.store.Operation(op)
		e.Complete()
	})
}

// MutateInBackground is Mutate with the storage work dispatched onto
// the adapter's background scheduler. Completion fires on the worker
// that ran the operation unless the adapter was configured with
// WithBackgroundDelivery.
func (a *Adapter[T]) MutateInBackground(op func(storage.Context, storage.Saver)) *Producer[Void] {
	return NewProducer(func(e *Emitter[Void]) {
		a.cfg.background.Schedule(func() {
			a.store.Operation(op)
			if a.cfg.deliverMutations {
				a.cfg.delivery.Schedule(e.Complete)
			} else {
				e.Complete()
			}
		})
	})
}

// Fetch returns a producer that, on subscription, executes req against
// the store on the subscribing goroutine. On success it emits the
// ordered results exactly once and completes.
//
// Failure handling is deliberately asymmetric: an error belonging to
// the storage taxonomy (errors.IsStorageError) terminates the producer
// with that failure, while any other error is swallowed and the
// producer emits an empty slice followed by normal completion. Callers
// therefore cannot tell a genuinely empty result from a masked foreign
// failure; see the package documentation before relying on empty
// results.
func (a *Adapter[T]) Fetch(req *storage.Request[T]) *Producer[[]T] {
	return NewProducer(func(e *Emitter[[]T]) {
		emitFetch(e, a.store, req)
	})
}

// FetchInBackground returns a producer that executes req on the
// adapter's background scheduler against the store's independent
// background handle, applies mapper to each result, and delivers the
// mapped slice and the terminal signal on the adapter's delivery
// scheduler. U should be a value type safe to carry across goroutines.
// Failure handling follows the same swallow policy as Fetch.
//
// The mapping crosses type parameters, so this is a function rather
// than a method on Adapter.
func FetchInBackground[T storage.Entity, U any](a *Adapter[T], req *storage.Request[T], mapper func(T) U) *Producer[[]U] {
	return NewProducer(func(e *Emitter[[]U]) {
		a.cfg.background.Schedule(func() {
			results, err := a.store.Background().Fetch(context.Background(), req)
			switch {
			case err == nil:
				mapped := make([]U, len(results))
				for i, r := range results {
					mapped[i] = mapper(r)
				}
				a.cfg.delivery.Schedule(func() {
					e.Value(mapped)
					e.Complete()
				})
			case errors.IsStorageError(err):
				a.cfg.delivery.Schedule(func() { e.Fail(err) })
			default:
				a.cfg.delivery.Schedule(func() {
					e.Value([]U{})
					e.Complete()
				})
			}
		})
	})
}

func emitFetch[T storage.Entity](e *Emitter[[]T], store storage.Store[T], req *storage.Request[T]) {
	results, err := store.Fetch(context.Background(), req)
	switch {
	case err == nil:
		if results == nil {
			results = []T{}
		}
		e.Value(results)
		e.Complete()
	case errors.IsStorageError(err):
		e.Fail(err)
	default:
		// Foreign failures are coerced into an empty result.
		e.Value([]T{})
		e.Complete()
	}
}
