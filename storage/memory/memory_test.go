/*
 * Copyright © 2026 SugarRecord Authors, All rights reserved.
 */

package memory

import (
	"context"
	"fmt"
	"testing"

	sgerrors "github.com/hirofumiymmto/sugarrecord/errors"
	"github.com/hirofumiymmto/sugarrecord/storage"
)

type Track struct {
	ID       string
	Title    string
	Duration int
}

func (t Track) EntityKey() string { return t.ID }

type Album struct {
	ID string
}

func (a Album) EntityKey() string { return a.ID }

func TestOperationStaging(t *testing.T) {
	t.Run("ChangesAreNotDurableWithoutSave", func(t *testing.T) {
		store := New[Track]()

		store.Operation(func(c storage.Context, save storage.Saver) {
			c.Put(Track{ID: "1", Title: "Opening"})
			// save deliberately not invoked
		})

		if store.Len() != 0 {
			t.Fatalf("Expected empty store, got %d entities", store.Len())
		}
	})

	t.Run("SaveCommitsStagedChanges", func(t *testing.T) {
		store := New[Track]()

		store.Operation(func(c storage.Context, save storage.Saver) {
			c.Put(Track{ID: "1", Title: "Opening"})
			c.Put(Track{ID: "2", Title: "Finale"})
			if err := save(); err != nil {
				t.Errorf("Save failed: %v", err)
			}
		})

		if store.Len() != 2 {
			t.Fatalf("Expected 2 entities, got %d", store.Len())
		}
		if tr, ok := store.Get("1"); !ok || tr.Title != "Opening" {
			t.Errorf("Unexpected entity for key 1: %v", tr)
		}
	})

	t.Run("DeleteStaging", func(t *testing.T) {
		store := New[Track]()
		store.Operation(func(c storage.Context, save storage.Saver) {
			c.Put(Track{ID: "1"})
			c.Put(Track{ID: "2"})
			save()
		})

		store.Operation(func(c storage.Context, save storage.Saver) {
			c.Delete("1")
			if store.Len() != 2 {
				t.Error("Delete should not be visible before save")
			}
			save()
		})

		if _, ok := store.Get("1"); ok {
			t.Error("Entity 1 should have been deleted")
		}
		if _, ok := store.Get("2"); !ok {
			t.Error("Entity 2 should have survived")
		}
	})

	t.Run("SaveErrorInjection", func(t *testing.T) {
		store := New[Track]().WithSaveError(fmt.Errorf("disk full"))

		var saveErr error
		store.Operation(func(c storage.Context, save storage.Saver) {
			c.Put(Track{ID: "1"})
			saveErr = save()
		})

		if !sgerrors.IsSaveFailed(saveErr) {
			t.Errorf("Expected a save failure, got %v", saveErr)
		}
		if store.Len() != 0 {
			t.Error("Failed save should not commit")
		}
	})

	t.Run("WrongEntityTypeFailsSave", func(t *testing.T) {
		store := New[Track]()

		var saveErr error
		store.Operation(func(c storage.Context, save storage.Saver) {
			c.Put(Album{ID: "x"})
			saveErr = save()
		})

		if !sgerrors.IsStorageError(saveErr) {
			t.Errorf("Expected an invalid entity error, got %v", saveErr)
		}
		if store.Len() != 0 {
			t.Error("Invalid staging should not commit")
		}
	})

	t.Run("PutOverwritesKeepingOrder", func(t *testing.T) {
		store := New[Track]()
		store.Operation(func(c storage.Context, save storage.Saver) {
			c.Put(Track{ID: "1", Title: "Old"})
			c.Put(Track{ID: "2", Title: "Second"})
			save()
		})
		store.Operation(func(c storage.Context, save storage.Saver) {
			c.Put(Track{ID: "1", Title: "New"})
			save()
		})

		got, err := store.Fetch(context.Background(), storage.NewRequest[Track]())
		if err != nil {
			t.Fatalf("Fetch failed: %v", err)
		}
		if len(got) != 2 || got[0].Title != "New" || got[1].ID != "2" {
			t.Errorf("Expected overwritten entity in original position, got %v", got)
		}
	})
}

func TestFetch(t *testing.T) {
	seed := func() *Store[Track] {
		store := New[Track]()
		store.Operation(func(c storage.Context, save storage.Saver) {
			c.Put(Track{ID: "1", Title: "Opening", Duration: 210})
			c.Put(Track{ID: "2", Title: "Interlude", Duration: 95})
			c.Put(Track{ID: "3", Title: "Finale", Duration: 340})
			save()
		})
		return store
	}

	t.Run("InsertionOrder", func(t *testing.T) {
		got, err := seed().Fetch(context.Background(), storage.NewRequest[Track]())
		if err != nil {
			t.Fatalf("Fetch failed: %v", err)
		}
		if len(got) != 3 || got[0].ID != "1" || got[2].ID != "3" {
			t.Errorf("Expected insertion order [1 2 3], got %v", got)
		}
	})

	t.Run("RequestIsApplied", func(t *testing.T) {
		req := storage.NewRequest(
			storage.Filtered(func(tr Track) bool { return tr.Duration > 100 }),
			storage.SortedBy(func(a, b Track) bool { return a.Duration > b.Duration }),
		)
		got, err := seed().Fetch(context.Background(), req)
		if err != nil {
			t.Fatalf("Fetch failed: %v", err)
		}
		if len(got) != 2 || got[0].ID != "3" || got[1].ID != "1" {
			t.Errorf("Expected [3 1], got %v", got)
		}
	})

	t.Run("FetchErrorInjection", func(t *testing.T) {
		store := seed().WithFetchError(sgerrors.NewStorageError("fetch", fmt.Errorf("boom")))
		_, err := store.Fetch(context.Background(), storage.NewRequest[Track]())
		if !sgerrors.IsStorageError(err) {
			t.Errorf("Expected injected storage error, got %v", err)
		}
	})

	t.Run("CancelledContext", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := seed().Fetch(ctx, storage.NewRequest[Track]())
		if !sgerrors.IsStorageError(err) {
			t.Errorf("Expected storage error for cancelled context, got %v", err)
		}
	})
}

func TestBackground(t *testing.T) {
	store := New[Track]()
	store.Operation(func(c storage.Context, save storage.Saver) {
		c.Put(Track{ID: "1"})
		save()
	})

	bg := store.Background()
	got, err := bg.Fetch(context.Background(), storage.NewRequest[Track]())
	if err != nil {
		t.Fatalf("Background fetch failed: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("Background handle should see committed entities, got %v", got)
	}
}
