/*
 * Copyright © 2026 SugarRecord Authors, All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// ErrStorage is the root of the storage failure taxonomy. Every error
// produced by this library matches ErrStorage under errors.Is; errors
// from any other origin do not, which is how the reactive fetch paths
// tell a recognized storage failure apart from everything else.
var ErrStorage = errors.New("storage failure")

// Sentinel errors, all rooted at ErrStorage.
var (
	// ErrNotFound is returned when an entity is not found
	ErrNotFound = fmt.Errorf("%w: entity not found", ErrStorage)

	// ErrInvalidRequest is returned when a request cannot be executed
	// by the backend it was handed to
	ErrInvalidRequest = fmt.Errorf("%w: invalid request", ErrStorage)

	// ErrInvalidEntity is returned when an entity staged through a
	// context does not match the store's entity type
	ErrInvalidEntity = fmt.Errorf("%w: invalid entity", ErrStorage)

	// ErrSaveFailed is returned by a Saver when staged changes could
	// not be committed
	ErrSaveFailed = fmt.Errorf("%w: save failed", ErrStorage)

	// ErrNoIndexMap is returned when no index map is registered for a type
	ErrNoIndexMap = fmt.Errorf("%w: no index map found for type", ErrStorage)
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Type string
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with key %q not found", e.Type, e.Key)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound || target == ErrStorage
}

// InvalidRequestError represents a request a backend cannot execute
type InvalidRequestError struct {
	Backend string
	Reason  string
}

func (e *InvalidRequestError) Error() string {
	return fmt.Sprintf("invalid request for %s backend: %s", e.Backend, e.Reason)
}

func (e *InvalidRequestError) Is(target error) bool {
	return target == ErrInvalidRequest || target == ErrStorage
}

// InvalidEntityError represents an entity that cannot be staged
type InvalidEntityError struct {
	Want string
	Got  string
}

func (e *InvalidEntityError) Error() string {
	return fmt.Sprintf("invalid entity: want %s, got %s", e.Want, e.Got)
}

func (e *InvalidEntityError) Is(target error) bool {
	return target == ErrInvalidEntity || target == ErrStorage
}

// SaveError represents a failed commit of staged changes
type SaveError struct {
	Backend string
	Err     error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("save failed on %s backend: %v", e.Backend, e.Err)
}

func (e *SaveError) Unwrap() error {
	return e.Err
}

func (e *SaveError) Is(target error) bool {
	return target == ErrSaveFailed || target == ErrStorage
}

// StorageError wraps an arbitrary backend failure into the recognized
// taxonomy. Backends use it to surface driver errors from Fetch.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s failed: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func (e *StorageError) Is(target error) bool {
	return target == ErrStorage
}

// Helper functions for creating errors

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(entityType, key string) error {
	return &NotFoundError{Type: entityType, Key: key}
}

// NewInvalidRequestError creates a new InvalidRequestError
func NewInvalidRequestError(backend, reason string) error {
	return &InvalidRequestError{Backend: backend, Reason: reason}
}

// NewInvalidEntityError creates a new InvalidEntityError
func NewInvalidEntityError(want, got string) error {
	return &InvalidEntityError{Want: want, Got: got}
}

// NewSaveError creates a new SaveError
func NewSaveError(backend string, err error) error {
	return &SaveError{Backend: backend, Err: err}
}

// NewStorageError wraps err as a recognized storage failure
func NewStorageError(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}

// IsStorageError reports whether err belongs to the recognized storage
// failure taxonomy
func IsStorageError(err error) bool {
	return errors.Is(err, ErrStorage)
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsInvalidRequest checks if an error is an invalid request error
func IsInvalidRequest(err error) bool {
	return errors.Is(err, ErrInvalidRequest)
}

// IsSaveFailed checks if an error is a failed save error
func IsSaveFailed(err error) bool {
	return errors.Is(err, ErrSaveFailed)
}
