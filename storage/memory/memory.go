/*
 * Copyright © 2026 SugarRecord Authors, All rights reserved.
 */

// Package memory provides a mutex-guarded in-memory implementation of
// storage.Store, used both as a lightweight backend and as a test
// double for the reactive layer.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/hirofumiymmto/sugarrecord/errors"
	"github.com/hirofumiymmto/sugarrecord/storage"
)

// Store is an in-memory implementation of storage.Store[T]. Entities
// are kept in insertion order, which is the order Fetch returns them
// in when the request carries no explicit ordering.
type Store[T storage.Entity] struct {
	mu         sync.RWMutex
	data       map[string]T
	order      []string
	fetchError error
	saveError  error
}

// New creates an empty in-memory store.
func New[T storage.Entity]() *Store[T] {
	return &Store[T]{
		data: make(map[string]T),
	}
}

// WithFetchError makes every Fetch return err. Intended for tests.
func (s *Store[T]) WithFetchError(err error) *Store[T] {
	s.fetchError = err
	return s
}

// WithSaveError makes every Saver invocation return err. Intended for tests.
func (s *Store[T]) WithSaveError(err error) *Store[T] {
	s.saveError = err
	return s
}

// stagingContext accumulates changes until the Saver commits them.
type stagingContext[T storage.Entity] struct {
	puts    []T
	deletes []string
	err     error
}

func (c *stagingContext[T]) Put(entity storage.Entity) {
	typed, ok := entity.(T)
	if !ok {
		var zero T
		c.err = errors.NewInvalidEntityError(fmt.Sprintf("%T", zero), fmt.Sprintf("%T", entity))
		return
	}
	c.puts = append(c.puts, typed)
}

func (c *stagingContext[T]) Delete(key string) {
	c.deletes = append(c.deletes, key)
}

// Operation executes op against a fresh staging context. Staged
// changes are committed atomically when op invokes the Saver; an
// operation that never saves leaves the store untouched.
func (s *Store[T]) Operation(op func(storage.Context, storage.Saver)) {
	staging := &stagingContext[T]{}
	save := func() error {
		if s.saveError != nil {
			return errors.NewSaveError("memory", s.saveError)
		}
		if staging.err != nil {
			return staging.err
		}

		s.mu.Lock()
		defer s.mu.Unlock()
		for _, e := range staging.puts {
			s.put(e)
		}
		for _, k := range staging.deletes {
			s.remove(k)
		}
		staging.puts = nil
		staging.deletes = nil
		return nil
	}
	op(staging, save)
}

// put and remove assume s.mu is held.
func (s *Store[T]) put(e T) {
	key := e.EntityKey()
	if _, exists := s.data[key]; !exists {
		s.order = append(s.order, key)
	}
	s.data[key] = e
}

func (s *Store[T]) remove(key string) {
	if _, exists := s.data[key]; !exists {
		return
	}
	delete(s.data, key)
	for i, k := range s.order {
		if k == key {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Fetch evaluates the request against a snapshot of the store.
func (s *Store[T]) Fetch(ctx context.Context, req *storage.Request[T]) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.NewStorageError("fetch", err)
	}
	if s.fetchError != nil {
		return nil, s.fetchError
	}

	s.mu.RLock()
	snapshot := make([]T, 0, len(s.order))
	for _, key := range s.order {
		snapshot = append(snapshot, s.data[key])
	}
	s.mu.RUnlock()

	return req.Apply(snapshot), nil
}

// Background returns the store itself: the in-memory backend is safe
// for concurrent use, so one handle serves both contexts.
func (s *Store[T]) Background() storage.Store[T] {
	return s
}

// Get returns the entity stored under key, if any.
func (s *Store[T]) Get(key string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.data[key]
	return e, ok
}

// Len returns the number of stored entities.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
