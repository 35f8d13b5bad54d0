// Copyright (c) 2026 VanCommunity. All rights reserved.
// Author: Francesca993 (VanCommunity)

package group

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Francesca993/VanCommunity/internal/platform/apperr"
	"github.com/Francesca993/VanCommunity/internal/platform/dberr"
)

// sqliteSchema runs on startup to ensure the catalog table exists.
// AUTOINCREMENT keeps seqno monotonic, so ids are never reused.
const sqliteSchema = `
CREATE TABLE IF NOT EXISTS vangroup (
    seqno INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    location TEXT NOT NULL,
    tripdate TEXT NOT NULL,
    minage INTEGER NOT NULL,
    maxage INTEGER NOT NULL,
    styles TEXT NOT NULL DEFAULT '[]',
    spotsfree INTEGER NOT NULL,
    whatsapplink TEXT NOT NULL,
    image TEXT NOT NULL DEFAULT ''
);
`

const sqliteColumns = `
	CAST(seqno AS TEXT), name, location, tripdate, minage, maxage,
	styles, spotsfree, whatsapplink, image
`

// SQLiteRepository implements [Repository] on an embedded SQLite file.
// Styles are stored as a JSON array.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository creates the schema if needed and returns the store.
func NewSQLiteRepository(ctx context.Context, db *sql.DB) (*SQLiteRepository, error) {
	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		return nil, fmt.Errorf("sqlite: failed to apply schema: %w", err)
	}
	return &SQLiteRepository{db: db}, nil
}

// List returns every group ordered by insertion.
func (repository *SQLiteRepository) List(ctx context.Context) ([]*Group, error) {
	rows, err := repository.db.QueryContext(ctx, `SELECT `+sqliteColumns+` FROM vangroup ORDER BY seqno ASC`)
	if err != nil {
		return nil, dberr.Wrap(err, resourceName, "list_groups")
	}
	defer rows.Close()

	groups := []*Group{}
	for rows.Next() {
		group, err := scanSQLiteGroup(rows)
		if err != nil {
			return nil, dberr.Wrap(err, resourceName, "scan_group")
		}
		groups = append(groups, group)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, resourceName, "list_groups")
	}

	return groups, nil
}

// FindByID retrieves a single group by its public id.
func (repository *SQLiteRepository) FindByID(ctx context.Context, id string) (*Group, error) {
	position, ok := parsePosition(id)
	if !ok {
		return nil, apperr.NotFound(resourceName)
	}

	row := repository.db.QueryRowContext(ctx, `SELECT `+sqliteColumns+` FROM vangroup WHERE seqno = ?`, position)

	group, err := scanSQLiteGroup(row)
	if err != nil {
		return nil, dberr.Wrap(err, resourceName, "get_group_by_id")
	}
	return group, nil
}

// Create inserts a group and writes the assigned id back into it.
func (repository *SQLiteRepository) Create(ctx context.Context, group *Group) error {
	styles, err := encodeStyles(group.Styles)
	if err != nil {
		return apperr.Internal(err)
	}

	const query = `
		INSERT INTO vangroup (
			name, location, tripdate, minage, maxage,
			styles, spotsfree, whatsapplink, image
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING CAST(seqno AS TEXT)
	`

	err = repository.db.QueryRowContext(ctx, query,
		group.Name, group.Location, group.Date, group.MinAge, group.MaxAge,
		styles, group.SpotsFree, group.WhatsAppLink, group.Image,
	).Scan(&group.ID)
	if err != nil {
		return dberr.Wrap(err, resourceName, "create_group")
	}

	return nil
}

// ReserveSpot decrements SpotsFree in a single conditional UPDATE.
func (repository *SQLiteRepository) ReserveSpot(ctx context.Context, id string) (*Group, bool, error) {
	position, ok := parsePosition(id)
	if !ok {
		return nil, false, apperr.NotFound(resourceName)
	}

	query := `
		UPDATE vangroup
		SET spotsfree = spotsfree - 1
		WHERE seqno = ? AND spotsfree > 0
		RETURNING ` + sqliteColumns

	group, err := scanSQLiteGroup(repository.db.QueryRowContext(ctx, query, position))
	if err == nil {
		return group, true, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, false, dberr.Wrap(err, resourceName, "reserve_spot")
	}

	// No row updated: unknown id or no spot left.
	group, err = repository.FindByID(ctx, id)
	if err != nil {
		return nil, false, err
	}
	return group, false, nil
}

// Count returns the number of stored groups.
func (repository *SQLiteRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := repository.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM vangroup`).Scan(&count); err != nil {
		return 0, dberr.Wrap(err, resourceName, "count_groups")
	}
	return count, nil
}

// # Helpers

type sqliteScanner interface {
	Scan(dest ...any) error
}

func scanSQLiteGroup(row sqliteScanner) (*Group, error) {
	group := &Group{}
	var styles string

	err := row.Scan(
		&group.ID, &group.Name, &group.Location, &group.Date, &group.MinAge, &group.MaxAge,
		&styles, &group.SpotsFree, &group.WhatsAppLink, &group.Image,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(styles), &group.Styles); err != nil {
		return nil, fmt.Errorf("decode styles: %w", err)
	}
	if group.Styles == nil {
		group.Styles = []string{}
	}

	return group, nil
}

func encodeStyles(styles []string) (string, error) {
	if styles == nil {
		styles = []string{}
	}
	encoded, err := json.Marshal(styles)
	if err != nil {
		return "", fmt.Errorf("encode styles: %w", err)
	}
	return string(encoded), nil
}
