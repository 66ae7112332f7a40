/*
 * Copyright © 2026 SugarRecord Authors, All rights reserved.
 */

// Package testmodels holds entity types shared by storage backend tests.
package testmodels

import "github.com/go-openapi/strfmt"

// Track is a test entity persisted by the backend test suites.
type Track struct {
	ID        string           `json:"ID"`
	Title     string           `json:"Title"`
	Duration  int              `json:"Duration"`
	CreatedAt *strfmt.DateTime `json:"CreatedAt,omitempty"`
	UpdatedAt *strfmt.DateTime `json:"UpdatedAt,omitempty"`
}

// EntityKey implements storage.Entity.
func (t Track) EntityKey() string { return t.ID }
