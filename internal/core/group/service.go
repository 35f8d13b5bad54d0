// Copyright (c) 2026 VanCommunity. All rights reserved.
// Author: Francesca993 (VanCommunity)

package group

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/Francesca993/VanCommunity/internal/platform/apperr"
)

// # Service Layer

// Service orchestrates the business rules of the group catalog: search
// filtering, spot reservation and group creation.
type Service struct {
	repo     Repository
	cache    SearchCache
	recorder Recorder
	logger   *slog.Logger

	// cacheStale is set when an invalidation failed. Searches bypass the
	// cache until a later invalidation succeeds.
	cacheStale atomic.Bool
}

// Option customizes a [Service].
type Option func(*Service)

// WithSearchCache enables caching of search results.
func WithSearchCache(cache SearchCache) Option {
	return func(service *Service) { service.cache = cache }
}

// WithRecorder reports domain events to recorder.
func WithRecorder(recorder Recorder) Option {
	return func(service *Service) { service.recorder = recorder }
}

// NewService constructs a new group [Service].
func NewService(repo Repository, logger *slog.Logger, options ...Option) *Service {
	service := &Service{
		repo:     repo,
		recorder: noopRecorder{},
		logger:   logger,
	}
	for _, option := range options {
		option(service)
	}
	return service
}

// # Discovery

/*
Search returns the groups compatible with the criteria, in catalog order.

Description: Results are served from the search cache when one is configured.
Cache failures are logged and the catalog is filtered directly. After a failed
invalidation the cache is bypassed until the generation can be advanced.

Parameters:
  - context: context.Context
  - criteria: SearchCriteria

Returns:
  - []*Group: Matching groups (empty, never nil)
  - error: Retrieval errors
*/
func (service *Service) Search(context context.Context, criteria SearchCriteria) ([]*Group, error) {
	cacheKey := service.cacheKey(context, criteria)
	if cacheKey != "" {
		groups, hit, err := service.cache.Get(context, cacheKey)
		if err != nil {
			service.logger.WarnContext(context, "search_cache_read_failed", slog.Any("error", err))
		} else if hit {
			service.recorder.SearchPerformed(len(groups))
			return groups, nil
		}
	}

	catalog, err := service.repo.List(context)
	if err != nil {
		return nil, err
	}

	groups := []*Group{}
	for _, group := range catalog {
		if criteria.Matches(group) {
			groups = append(groups, group)
		}
	}

	if cacheKey != "" {
		if err := service.cache.Set(context, cacheKey, groups); err != nil {
			service.logger.WarnContext(context, "search_cache_write_failed", slog.Any("error", err))
		}
	}

	service.recorder.SearchPerformed(len(groups))

	return groups, nil
}

// # Booking

/*
Join reserves one spot in the group for the joiner.

Description: A full group is a normal outcome, reported as an unsuccessful
[JoinResult] with an empty link. The joiner's age is not checked against
the group's range.

Parameters:
  - context: context.Context
  - groupID: string
  - joiner: Joiner

Returns:
  - JoinResult: Success flag and the group's contact link
  - error: NOT_FOUND if the group does not exist
*/
func (service *Service) Join(context context.Context, groupID string, joiner Joiner) (JoinResult, error) {
	group, reserved, err := service.repo.ReserveSpot(context, groupID)
	if err != nil {
		if apperr.IsNotFound(err) {
			service.recorder.JoinAttempted(OutcomeNotFound)
		}
		return JoinResult{}, err
	}

	if !reserved {
		service.recorder.JoinAttempted(OutcomeFull)
		service.logger.InfoContext(context, "group_join_rejected_full",
			slog.String("group_id", groupID),
			slog.String("joiner", joiner.Name),
		)
		return JoinResult{Success: false, WhatsAppLink: ""}, nil
	}

	service.invalidateSearches(context)
	service.recorder.JoinAttempted(OutcomeJoined)

	service.logger.InfoContext(context, "group_joined",
		slog.String("group_id", groupID),
		slog.String("joiner", joiner.Name),
		slog.Int("joiner_age", joiner.Age),
		slog.Int("spots_free", group.SpotsFree),
	)

	return JoinResult{Success: true, WhatsAppLink: group.WhatsAppLink}, nil
}

// # Catalog Management

/*
Create adds a new group to the catalog.

Description: The contact link is the fixed creation link, a missing image
becomes "" and SpotsFree is stored exactly as given.

Parameters:
  - context: context.Context
  - draft: Draft

Returns:
  - *Group: The stored group, including its assigned ID
  - error: Persistence failures
*/
func (service *Service) Create(context context.Context, draft Draft) (*Group, error) {
	group := &Group{
		Name:         draft.Name,
		Location:     draft.Location,
		Date:         draft.Date,
		MinAge:       draft.MinAge,
		MaxAge:       draft.MaxAge,
		Styles:       draft.Styles,
		SpotsFree:    draft.SpotsFree,
		WhatsAppLink: CreatedGroupWhatsAppLink,
		Image:        draft.Image,
	}
	if group.Styles == nil {
		group.Styles = []string{}
	}

	if err := service.repo.Create(context, group); err != nil {
		return nil, err
	}

	service.invalidateSearches(context)
	service.recorder.GroupCreated()

	service.logger.InfoContext(context, "group_created",
		slog.String("group_id", group.ID),
		slog.String("name", group.Name),
	)

	return group, nil
}

/*
Seed inserts the starter catalog when the store is empty.

Parameters:
  - context: context.Context

Returns:
  - int: Number of groups inserted (0 when the store already has data)
  - error: Persistence failures
*/
func (service *Service) Seed(context context.Context) (int, error) {
	count, err := service.repo.Count(context)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		service.logger.InfoContext(context, "catalog_seed_skipped", slog.Int("groups", count))
		return 0, nil
	}

	seed := catalogSeed()
	for _, group := range seed {
		if err := service.repo.Create(context, group); err != nil {
			return 0, err
		}
	}

	service.invalidateSearches(context)
	service.logger.InfoContext(context, "catalog_seeded", slog.Int("groups", len(seed)))

	return len(seed), nil
}

// # Helpers

// cacheKey returns "" when the cache must not be used for this search.
func (service *Service) cacheKey(context context.Context, criteria SearchCriteria) string {
	if service.cache == nil {
		return ""
	}

	if service.cacheStale.Load() {
		if err := service.cache.Invalidate(context); err != nil {
			service.logger.WarnContext(context, "search_cache_bypassed", slog.Any("error", err))
			return ""
		}
		service.cacheStale.Store(false)
		service.logger.InfoContext(context, "search_cache_recovered")
	}

	key, err := service.cache.Key(context, criteria)
	if err != nil {
		service.logger.WarnContext(context, "search_cache_key_failed", slog.Any("error", err))
		return ""
	}
	return key
}

func (service *Service) invalidateSearches(context context.Context) {
	if service.cache == nil {
		return
	}

	if err := service.cache.Invalidate(context); err != nil {
		service.cacheStale.Store(true)
		service.logger.WarnContext(context, "search_cache_invalidate_failed", slog.Any("error", err))
	}
}

type noopRecorder struct{}

func (noopRecorder) SearchPerformed(int)   {}
func (noopRecorder) JoinAttempted(string) {}
func (noopRecorder) GroupCreated()        {}
