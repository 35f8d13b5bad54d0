// Copyright (c) 2026 VanCommunity. All rights reserved.
// Author: Francesca993 (VanCommunity)

// Package schema names the tables and columns of the relational stores, so
// queries never spell identifiers by hand.
package schema

// VanGroupTable represents the 'vancommunity.vangroup' table
type VanGroupTable struct {
	Table        string
	Position     string
	Name         string
	Location     string
	Date         string
	MinAge       string
	MaxAge       string
	Styles       string
	SpotsFree    string
	WhatsAppLink string
	Image        string
}

// VanGroup is the schema definition for vancommunity.vangroup
var VanGroup = VanGroupTable{
	Table:        "vancommunity.vangroup",
	Position:     "seqno",
	Name:         "name",
	Location:     "location",
	Date:         "tripdate",
	MinAge:       "minage",
	MaxAge:       "maxage",
	Styles:       "styles",
	SpotsFree:    "spotsfree",
	WhatsAppLink: "whatsapplink",
	Image:        "image",
}

// InsertColumns lists the caller-supplied columns; position is assigned by
// the sequence.
func (t VanGroupTable) InsertColumns() []string {
	return []string{t.Name, t.Location, t.Date, t.MinAge, t.MaxAge, t.Styles, t.SpotsFree, t.WhatsAppLink, t.Image}
}
