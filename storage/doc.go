/*
Package storage defines the persistence contract SugarRecord's reactive
layer is built over.

The central interface is Store[T], the capability set a backend must
provide for entities of type T:

	type Store[T Entity] interface {
	    Operation(op func(Context, Saver))
	    Fetch(ctx context.Context, req *Request[T]) ([]T, error)
	    Background() Store[T]
	}

Operation hands the caller a staging Context and a Saver. Changes made
through the Context are in-memory only until the operation invokes the
Saver; nothing in the library ever invokes a Saver on the caller's
behalf.

Request[T] is an inert query descriptor. It carries an in-memory form
(predicate, ordering, limit) that any backend can evaluate, and
key-condition fields that indexed backends compile into native queries.

Implementations:
  - memory: mutex-guarded in-memory store with staging commit semantics
  - ddb: DynamoDB-backed store using index-map key patterns
*/
package storage
