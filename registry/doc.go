/*
Package registry manages index mapping for SugarRecord's indexed
storage backends.

An index map associates a Go type with the key patterns used to place
its entities in a single-table design:

	indexMap := map[string]string{
	    "PK": "TRACK#{ID}",
	    "SK": "TRACK",
	}
	registry.RegisterIndexMap[Track](indexMap)

Macros like {ID} are expanded from the entity's fields at persist time
by the backend.

Index maps can also be loaded from a YAML file and bound to types at
startup:

	maps, _ := registry.LoadIndexMaps("indexmaps.yaml")
	registry.RegisterLoadedIndexMap[Track](maps, "Track")

The registry is thread-safe and should be populated during
initialization, typically in init() functions.
*/
package registry
