/*
Package errors defines the storage failure taxonomy for SugarRecord.

Every error the library produces is rooted at ErrStorage, so a single
check tells a recognized storage failure apart from any other error:

	if errors.IsStorageError(err) {
	    // failure came from the storage layer
	}

The distinction matters to the reactive fetch operations, which
propagate recognized failures and coerce everything else into an empty
result (see package rx).

Typed errors carry structured detail and match their sentinel as well
as ErrStorage:

	err := errors.NewNotFoundError("Track", "123")
	errors.Is(err, errors.ErrNotFound) // true
	errors.Is(err, errors.ErrStorage)  // true

Backends wrap driver-level failures with NewStorageError so they stay
inside the taxonomy when crossing the adapter boundary.
*/
package errors
