// Copyright (c) 2026 VanCommunity. All rights reserved.
// Author: Francesca993 (VanCommunity)

package group

import "context"

// # Group Data Access

// Repository defines the data access contract for the group catalog.
//
// Implementations return copies: mutating a returned [Group] never changes
// the stored record.
type Repository interface {

	/*
		List returns every group in insertion order.

		Parameters:
		  - context: context.Context

		Returns:
		  - []*Group: All stored groups (empty, never nil)
		  - error: Retrieval failures
	*/
	List(context context.Context) ([]*Group, error)

	/*
		FindByID retrieves a group by its identifier.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - *Group: Hydrated entity
		  - error: NOT_FOUND if missing
	*/
	FindByID(context context.Context, id string) (*Group, error)

	/*
		Create appends a new group to the catalog and assigns its ID from the
		store's monotonic counter.

		Parameters:
		  - context: context.Context
		  - group: *Group (ID is overwritten)

		Returns:
		  - error: Persistence failures
	*/
	Create(context context.Context, group *Group) error

	/*
		ReserveSpot atomically decrements SpotsFree by one if it is positive.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - *Group: The group after the attempt
		  - bool: false when the group had no free spot (nothing changed)
		  - error: NOT_FOUND if missing, or persistence failures
	*/
	ReserveSpot(context context.Context, id string) (*Group, bool, error)

	/*
		Count returns the number of stored groups.

		Parameters:
		  - context: context.Context

		Returns:
		  - int: Number of groups
		  - error: Retrieval failures
	*/
	Count(context context.Context) (int, error)
}

// # Search Caching

// SearchCache stores search results between catalog mutations.
//
// Key binds the criteria to the current catalog generation; Invalidate
// starts a new generation so results computed before a mutation are never
// served after it.
type SearchCache interface {
	Key(context context.Context, criteria SearchCriteria) (string, error)
	Get(context context.Context, key string) ([]*Group, bool, error)
	Set(context context.Context, key string, groups []*Group) error
	Invalidate(context context.Context) error
}

// # Instrumentation

// Recorder receives domain events for metrics.
type Recorder interface {
	SearchPerformed(results int)
	JoinAttempted(outcome string)
	GroupCreated()
}
