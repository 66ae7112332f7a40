/*
 * Copyright © 2026 SugarRecord Authors, All rights reserved.
 */

package storage

import "context"

// Entity is implemented by types that can be fetched and persisted.
type Entity interface {
	// EntityKey returns the stable identity of the entity within its store.
	EntityKey() string
}

// Context is a mutation-capable staging handle supplied to an
// operation. Changes made through a Context are held in memory and
// become durable only when the operation invokes its Saver.
type Context interface {
	// Put stages a write of entity.
	Put(entity Entity)

	// Delete stages removal of the entity stored under key.
	Delete(key string)
}

// Saver commits every change staged through the operation's Context.
// The library never invokes a Saver on its own; durability is entirely
// the operation's responsibility. The returned error surfaces commit
// failures to the operation closure and nowhere else.
type Saver func() error

// Store is the capability set a persistence backend provides for
// entities of type T.
type Store[T Entity] interface {
	// Operation executes op synchronously on the calling goroutine
	// against a fresh mutation-capable context. Changes staged by op
	// are durable only if op invokes the supplied Saver.
	Operation(op func(Context, Saver))

	// Fetch executes the request and returns matching entities in
	// request order. Failures belong to the errors package taxonomy.
	Fetch(ctx context.Context, req *Request[T]) ([]T, error)

	// Background returns a handle bound to an independent save
	// context, safe to use off the goroutine that owns this store.
	Background() Store[T]
}
