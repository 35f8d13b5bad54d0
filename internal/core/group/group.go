// Copyright (c) 2026 VanCommunity. All rights reserved.
// Author: Francesca993 (VanCommunity)

/*
Package group manages the catalog of van trip groups.

It handles the whole lifecycle of a trip group, from discovery through the
search filters to the capacity counter that every join decrements.

# Core Responsibility

  - Catalog: Defines the [Group] entity and the [Repository] that owns it.
  - Discovery: Filters groups by age, date and travel style ([SearchCriteria]).
  - Booking: Reserves spots atomically and hands out the contact link ([JoinResult]).

Groups are never deleted; the only mutation after creation is the spot decrement.
*/
package group

import "slices"

// # Core Entities

// Group represents a van trip that travellers can join.
type Group struct {
	ID           string   `json:"id"` // Decimal counter assigned by the store
	Name         string   `json:"name"`
	Location     string   `json:"location"`
	Date         string   `json:"date"` // Calendar date, compared verbatim (e.g. "2025-05-20")
	MinAge       int      `json:"min_age"`
	MaxAge       int      `json:"max_age"`
	Styles       []string `json:"styles"`
	SpotsFree    int      `json:"spots_free"`
	WhatsAppLink string   `json:"whatsapp_link"`
	Image        string   `json:"image"`
}

// clone returns a deep copy so callers never share the store's slices.
func (group *Group) clone() *Group {
	copied := *group
	copied.Styles = slices.Clone(group.Styles)
	if copied.Styles == nil {
		copied.Styles = []string{}
	}
	return &copied
}

// # Search & Booking

// SearchCriteria holds the traveller preferences used to filter the catalog.
type SearchCriteria struct {
	Age    int      `json:"age"`
	Date   string   `json:"date"`   // Empty means any date
	Styles []string `json:"styles"` // Empty means any style
	HasVan bool     `json:"has_van"`
}

/*
Matches reports whether the group is compatible with the criteria.

A group matches when all of the following hold:
  - the age falls inside [MinAge, MaxAge] (inclusive)
  - no date was requested, or the dates are equal
  - no style was requested, or at least one requested style is offered
  - at least one spot is still free

HasVan is accepted for compatibility with the client but does not filter.
*/
func (criteria SearchCriteria) Matches(group *Group) bool {
	if criteria.Age < group.MinAge || criteria.Age > group.MaxAge {
		return false
	}

	if criteria.Date != "" && group.Date != criteria.Date {
		return false
	}

	if len(criteria.Styles) > 0 && !slices.ContainsFunc(criteria.Styles, func(style string) bool {
		return slices.Contains(group.Styles, style)
	}) {
		return false
	}

	return group.SpotsFree > 0
}

// Joiner identifies the traveller asking for a spot. The age is informative
// only and is not checked against the group range.
type Joiner struct {
	Name string
	Age  int
}

// JoinResult is the outcome of a join attempt on an existing group.
type JoinResult struct {
	Success      bool   `json:"success"`
	WhatsAppLink string `json:"whatsappLink"`
}

// Draft carries the caller-supplied fields of a new group.
type Draft struct {
	Name      string
	Location  string
	Date      string
	MinAge    int
	MaxAge    int
	Styles    []string
	SpotsFree int
	Image     string
}

// # Catalog Constants

// CreatedGroupWhatsAppLink is the contact link assigned to every group
// created through the API.
const CreatedGroupWhatsAppLink = "https://wa.me/1234567890?text=Nuova%20gita%20creata"

// Join outcomes, used as metric labels.
const (
	OutcomeJoined   = "joined"
	OutcomeFull     = "full"
	OutcomeNotFound = "not_found"
)

// resourceName is the entity name used in not-found messages.
const resourceName = "Group"

// # Field Identifiers

const (
	FieldAge       = "age"
	FieldName      = "name"
	FieldLocation  = "location"
	FieldDate      = "date"
	FieldMinAge    = "min_age"
	FieldMaxAge    = "max_age"
	FieldSpotsFree = "spots_free"
)
