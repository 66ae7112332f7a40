/*
 * Copyright © 2026 SugarRecord Authors, All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("Track", "123")

	// Test error message
	expected := `Track with key "123" not found`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	// Test Is method
	if !errors.Is(err, ErrNotFound) {
		t.Error("NotFoundError should match ErrNotFound")
	}
	if !errors.Is(err, ErrStorage) {
		t.Error("NotFoundError should match ErrStorage")
	}

	// Test helper functions
	if !IsNotFound(err) {
		t.Error("IsNotFound should return true for NotFoundError")
	}
	if !IsStorageError(err) {
		t.Error("IsStorageError should return true for NotFoundError")
	}
}

func TestInvalidRequestError(t *testing.T) {
	err := NewInvalidRequestError("dynamodb", "key condition required")

	expected := `invalid request for dynamodb backend: key condition required`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !errors.Is(err, ErrInvalidRequest) {
		t.Error("InvalidRequestError should match ErrInvalidRequest")
	}
	if !IsInvalidRequest(err) {
		t.Error("IsInvalidRequest should return true for InvalidRequestError")
	}
	if !IsStorageError(err) {
		t.Error("IsStorageError should return true for InvalidRequestError")
	}
}

func TestSaveError(t *testing.T) {
	cause := fmt.Errorf("connection reset")
	err := NewSaveError("memory", cause)

	expected := `save failed on memory backend: connection reset`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !errors.Is(err, ErrSaveFailed) {
		t.Error("SaveError should match ErrSaveFailed")
	}
	if !errors.Is(err, cause) {
		t.Error("SaveError should unwrap to its cause")
	}
	if !IsSaveFailed(err) {
		t.Error("IsSaveFailed should return true for SaveError")
	}
}

func TestStorageError(t *testing.T) {
	cause := fmt.Errorf("throttled")
	err := NewStorageError("query", cause)

	expected := `storage query failed: throttled`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !IsStorageError(err) {
		t.Error("IsStorageError should return true for StorageError")
	}
	if !errors.Is(err, cause) {
		t.Error("StorageError should unwrap to its cause")
	}
}

func TestSentinelsAreRooted(t *testing.T) {
	sentinels := []error{ErrNotFound, ErrInvalidRequest, ErrInvalidEntity, ErrSaveFailed, ErrNoIndexMap}
	for _, s := range sentinels {
		if !errors.Is(s, ErrStorage) {
			t.Errorf("sentinel %v should be rooted at ErrStorage", s)
		}
	}
}

func TestForeignErrorIsNotRecognized(t *testing.T) {
	err := fmt.Errorf("some application error")
	if IsStorageError(err) {
		t.Error("IsStorageError should return false for a foreign error")
	}

	wrapped := fmt.Errorf("wrapped: %w", NewNotFoundError("Track", "1"))
	if !IsStorageError(wrapped) {
		t.Error("IsStorageError should see through wrapping")
	}
}
