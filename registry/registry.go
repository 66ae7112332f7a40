/*
 * Copyright © 2026 SugarRecord Authors, All rights reserved.
 */

package registry

import (
	"fmt"
	"os"
	"reflect"
	"sync"

	"gopkg.in/yaml.v3"
)

// indexMapRegistry associates Go types with their DynamoDB index maps (PK, SK, etc.).
var (
	indexMapRegistry = make(map[reflect.Type]map[string]string)
	mu               sync.RWMutex
)

// RegisterIndexMap associates a Go type T with a given index map.
func RegisterIndexMap[T any](idxMap map[string]string) {
	var zero T
	t := reflect.TypeOf(zero)

	mu.Lock()
	defer mu.Unlock()
	indexMapRegistry[t] = idxMap
}

// GetIndexMap retrieves the index map for type T, if any.
func GetIndexMap[T any]() (map[string]string, bool) {
	var zero T
	t := reflect.TypeOf(zero)

	mu.RLock()
	defer mu.RUnlock()
	m, ok := indexMapRegistry[t]
	return m, ok
}

// LoadIndexMaps reads named index maps from a YAML file of the form:
//
//	Track:
//	  PK: "TRACK#{ID}"
//	  SK: "TRACK"
//	Album:
//	  PK: "ALBUM#{ID}"
//	  SK: "ALBUM"
//
// The returned maps are not registered; bind them to types with
// RegisterLoadedIndexMap.
func LoadIndexMaps(path string) (map[string]map[string]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read index map file: %w", err)
	}

	maps := make(map[string]map[string]string)
	if err := yaml.Unmarshal(raw, &maps); err != nil {
		return nil, fmt.Errorf("failed to parse index map file %s: %w", path, err)
	}
	return maps, nil
}

// RegisterLoadedIndexMap binds the named map from a LoadIndexMaps
// result to type T.
func RegisterLoadedIndexMap[T any](maps map[string]map[string]string, name string) error {
	m, ok := maps[name]
	if !ok {
		return fmt.Errorf("no index map named %q in loaded maps", name)
	}
	RegisterIndexMap[T](m)
	return nil
}
