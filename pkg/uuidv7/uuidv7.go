// Copyright (c) 2026 VanCommunity. All rights reserved.
// Author: Francesca993 (VanCommunity)

// Package uuidv7 wraps google/uuid to generate time-ordered UUIDv7 values.
//
// Request IDs use it so log lines sort by arrival time when grepped by ID.
package uuidv7

import "github.com/google/uuid"

// New generates a new UUIDv7 string.
//
// If the clock-based generator fails (OS entropy unavailable) it falls back
// to a random UUIDv4, which is still unique but not time-ordered.
func New() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return id.String()
}
