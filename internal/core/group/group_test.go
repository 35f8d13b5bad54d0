// Copyright (c) 2026 VanCommunity. All rights reserved.
// Author: Francesca993 (VanCommunity)

package group_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Francesca993/VanCommunity/internal/core/group"
)

/*
TestSearchCriteria_Matches covers each filter rule on its own.
*/
func TestSearchCriteria_Matches(t *testing.T) {
	braies := &group.Group{
		Date:      "2025-05-20",
		MinAge:    28,
		MaxAge:    34,
		Styles:    []string{"Tranquillo", "Lago", "Natura"},
		SpotsFree: 3,
	}

	tests := []struct {
		name     string
		criteria group.SearchCriteria
		group    *group.Group
		want     bool
	}{
		{"age inside range", group.SearchCriteria{Age: 30}, braies, true},
		{"age at lower bound", group.SearchCriteria{Age: 28}, braies, true},
		{"age at upper bound", group.SearchCriteria{Age: 34}, braies, true},
		{"age below range", group.SearchCriteria{Age: 27}, braies, false},
		{"age above range", group.SearchCriteria{Age: 40}, braies, false},
		{"same date", group.SearchCriteria{Age: 30, Date: "2025-05-20"}, braies, true},
		{"other date", group.SearchCriteria{Age: 30, Date: "2025-05-21"}, braies, false},
		{"one style overlaps", group.SearchCriteria{Age: 30, Styles: []string{"Avventura", "Lago"}}, braies, true},
		{"no style overlaps", group.SearchCriteria{Age: 30, Styles: []string{"Avventura"}}, braies, false},
		{"empty styles match all", group.SearchCriteria{Age: 30, Styles: []string{}}, braies, true},
		{"style match is case sensitive", group.SearchCriteria{Age: 30, Styles: []string{"lago"}}, braies, false},
		{"has_van does not filter", group.SearchCriteria{Age: 30, HasVan: true}, braies, true},
		{"full group excluded", group.SearchCriteria{Age: 30}, &group.Group{MinAge: 28, MaxAge: 34, SpotsFree: 0}, false},
		{"negative spots excluded", group.SearchCriteria{Age: 30}, &group.Group{MinAge: 28, MaxAge: 34, SpotsFree: -2}, false},
		{"inverted range never matches", group.SearchCriteria{Age: 30}, &group.Group{MinAge: 40, MaxAge: 20, SpotsFree: 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.criteria.Matches(tt.group))
		})
	}
}
