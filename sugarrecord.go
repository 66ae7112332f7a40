/*
 * Copyright © 2026 SugarRecord Authors, All rights reserved.
 */

package sugarrecord

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/hirofumiymmto/sugarrecord/rx"
	"github.com/hirofumiymmto/sugarrecord/storage"
)

// StoreSet manages named Store instances for a single entity type T.
type StoreSet[T storage.Entity] struct {
	mu     sync.RWMutex
	stores map[string]storage.Store[T]
}

// NewStoreSet creates an empty StoreSet for type T.
func NewStoreSet[T storage.Entity]() *StoreSet[T] {
	return &StoreSet[T]{
		stores: make(map[string]storage.Store[T]),
	}
}

// Register adds a store under the given key.
func (s *StoreSet[T]) Register(key string, store storage.Store[T]) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.stores[key]; exists {
		return fmt.Errorf("store with key %q already registered", key)
	}
	s.stores[key] = store
	return nil
}

// Get retrieves a store by key.
func (s *StoreSet[T]) Get(key string) (storage.Store[T], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	store, exists := s.stores[key]
	if !exists {
		return nil, fmt.Errorf("store with key %q not found", key)
	}
	return store, nil
}

// Remove deletes a store by key.
func (s *StoreSet[T]) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.stores[key]; !exists {
		return fmt.Errorf("store with key %q not found", key)
	}
	delete(s.stores, key)
	return nil
}

// List returns all registered store keys.
func (s *StoreSet[T]) List() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.stores))
	for k := range s.stores {
		keys = append(keys, k)
	}
	return keys
}

// Reactive returns a reactive adapter over the store registered under
// key.
func (s *StoreSet[T]) Reactive(key string, opts ...rx.AdapterOption) (*rx.Adapter[T], error) {
	store, err := s.Get(key)
	if err != nil {
		return nil, err
	}
	return rx.NewAdapter(store, opts...), nil
}

// TypeRegistry manages StoreSet instances across entity types.
type TypeRegistry struct {
	mu   sync.RWMutex
	sets map[reflect.Type]interface{}
}

// NewTypeRegistry creates an empty TypeRegistry.
func NewTypeRegistry() *TypeRegistry {
	return &TypeRegistry{
		sets: make(map[reflect.Type]interface{}),
	}
}

// StoreSetFor returns the StoreSet for type T, creating it if necessary.
func StoreSetFor[T storage.Entity](r *TypeRegistry) *StoreSet[T] {
	r.mu.Lock()
	defer r.mu.Unlock()

	var zero T
	typ := reflect.TypeOf(zero)

	if set, exists := r.sets[typ]; exists {
		return set.(*StoreSet[T])
	}

	set := NewStoreSet[T]()
	r.sets[typ] = set
	return set
}

// RegisterStore registers a store for type T under the given key.
func RegisterStore[T storage.Entity](r *TypeRegistry, key string, store storage.Store[T]) error {
	return StoreSetFor[T](r).Register(key, store)
}

// GetStore retrieves the store for type T registered under the given key.
func GetStore[T storage.Entity](r *TypeRegistry, key string) (storage.Store[T], error) {
	return StoreSetFor[T](r).Get(key)
}

// ReactiveStore returns a reactive adapter for the store of type T
// registered under the given key.
func ReactiveStore[T storage.Entity](r *TypeRegistry, key string, opts ...rx.AdapterOption) (*rx.Adapter[T], error) {
	return StoreSetFor[T](r).Reactive(key, opts...)
}
