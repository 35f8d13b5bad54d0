// Copyright (c) 2026 VanCommunity. All rights reserved.
// Author: Francesca993 (VanCommunity)

package group

import (
	"context"
	"strconv"
	"sync"

	"github.com/Francesca993/VanCommunity/internal/platform/apperr"
)

// MemoryRepository implements [Repository] in process memory.
//
// Reads share an RWMutex; Create and ReserveSpot take the write lock, so the
// check-and-decrement of a join is atomic.
type MemoryRepository struct {
	mu     sync.RWMutex
	groups []*Group
	byID   map[string]int
	lastID int64
}

// NewMemoryRepository constructs an empty in-memory group store.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byID: make(map[string]int)}
}

// List returns copies of all groups in insertion order.
func (repository *MemoryRepository) List(_ context.Context) ([]*Group, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	groups := make([]*Group, 0, len(repository.groups))
	for _, group := range repository.groups {
		groups = append(groups, group.clone())
	}
	return groups, nil
}

// FindByID returns a copy of the group with the given id.
func (repository *MemoryRepository) FindByID(_ context.Context, id string) (*Group, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	index, found := repository.byID[id]
	if !found {
		return nil, apperr.NotFound(resourceName)
	}
	return repository.groups[index].clone(), nil
}

// Create stores a copy of group under the next counter value and writes the
// assigned id back to group.
func (repository *MemoryRepository) Create(_ context.Context, group *Group) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	repository.lastID++
	group.ID = strconv.FormatInt(repository.lastID, 10)

	repository.byID[group.ID] = len(repository.groups)
	repository.groups = append(repository.groups, group.clone())
	return nil
}

// ReserveSpot decrements the free spots of a group under the write lock.
func (repository *MemoryRepository) ReserveSpot(_ context.Context, id string) (*Group, bool, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	index, found := repository.byID[id]
	if !found {
		return nil, false, apperr.NotFound(resourceName)
	}

	stored := repository.groups[index]
	if stored.SpotsFree <= 0 {
		return stored.clone(), false, nil
	}

	stored.SpotsFree--
	return stored.clone(), true, nil
}

// Count returns the number of stored groups.
func (repository *MemoryRepository) Count(_ context.Context) (int, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	return len(repository.groups), nil
}
