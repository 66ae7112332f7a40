/*
 * Copyright © 2026 SugarRecord Authors, All rights reserved.
 */

package registry

import (
	"os"
	"path/filepath"
	"testing"
)

type regTrack struct {
	ID string
}

type regAlbum struct {
	ID string
}

func TestRegisterAndGetIndexMap(t *testing.T) {
	idxMap := map[string]string{
		"PK": "TRACK#{ID}",
		"SK": "TRACK",
	}
	RegisterIndexMap[regTrack](idxMap)

	got, ok := GetIndexMap[regTrack]()
	if !ok {
		t.Fatal("Expected index map for regTrack")
	}
	if got["PK"] != "TRACK#{ID}" || got["SK"] != "TRACK" {
		t.Errorf("Unexpected index map %v", got)
	}

	// A type that was never registered has no map.
	if _, ok := GetIndexMap[regAlbum](); ok {
		t.Error("Expected no index map for regAlbum")
	}
}

func TestLoadIndexMaps(t *testing.T) {
	content := `
Track:
  PK: "TRACK#{ID}"
  SK: "TRACK"
Album:
  PK: "ALBUM#{ID}"
  SK: "ALBUM#{ID}"
`
	path := filepath.Join(t.TempDir(), "indexmaps.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	maps, err := LoadIndexMaps(path)
	if err != nil {
		t.Fatalf("LoadIndexMaps failed: %v", err)
	}
	if len(maps) != 2 {
		t.Fatalf("Expected 2 maps, got %d", len(maps))
	}
	if maps["Track"]["PK"] != "TRACK#{ID}" {
		t.Errorf("Unexpected Track map %v", maps["Track"])
	}

	t.Run("RegisterLoaded", func(t *testing.T) {
		if err := RegisterLoadedIndexMap[regAlbum](maps, "Album"); err != nil {
			t.Fatalf("RegisterLoadedIndexMap failed: %v", err)
		}
		got, ok := GetIndexMap[regAlbum]()
		if !ok || got["PK"] != "ALBUM#{ID}" {
			t.Errorf("Expected loaded Album map, got %v (ok=%v)", got, ok)
		}
	})

	t.Run("MissingName", func(t *testing.T) {
		if err := RegisterLoadedIndexMap[regTrack](maps, "Playlist"); err == nil {
			t.Error("Expected error for missing map name")
		}
	})
}

func TestLoadIndexMapsErrors(t *testing.T) {
	if _, err := LoadIndexMaps(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	os.WriteFile(path, []byte("Track: [not, a, map]"), 0o644)
	if _, err := LoadIndexMaps(path); err == nil {
		t.Error("Expected error for malformed file")
	}
}
