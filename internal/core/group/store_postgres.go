// Copyright (c) 2026 VanCommunity. All rights reserved.
// Author: Francesca993 (VanCommunity)

package group

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Francesca993/VanCommunity/internal/platform/apperr"
	"github.com/Francesca993/VanCommunity/internal/platform/database/schema"
	"github.com/Francesca993/VanCommunity/internal/platform/dberr"
)

// PostgresRepository implements [Repository] using pgx.
//
// The BIGSERIAL seqno column is both the insertion order and the source of
// the public id, which is its decimal text form.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed group store.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// postgresColumns is the select list read by scanGroup.
var postgresColumns = schema.VanGroup.Position + "::text, " + strings.Join(schema.VanGroup.InsertColumns(), ", ")

// # Group Retrieval

/*
List returns every group ordered by insertion.

Parameters:
  - context: context.Context

Returns:
  - []*Group: All stored groups
  - error: Database retrieval failures
*/
func (repository *PostgresRepository) List(context context.Context) ([]*Group, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s ASC`,
		postgresColumns, schema.VanGroup.Table, schema.VanGroup.Position)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, resourceName, "list_groups")
	}
	defer rows.Close()

	groups := []*Group{}
	for rows.Next() {
		group, err := scanGroup(rows)
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

/*
FindByID retrieves a single group by its public id.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - *Group: Hydrated entity
  - error: NOT_FOUND when the id is unknown or not a counter value
*/
func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Group, error) {
	position, ok := parsePosition(id)
	if !ok {
		return nil, apperr.NotFound(resourceName)
	}

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		postgresColumns, schema.VanGroup.Table, schema.VanGroup.Position)

	group, err := scanGroup(repository.db.QueryRow(context, query, position))
	if err != nil {
		return nil, dberr.Wrap(err, resourceName, "get_group_by_id")
	}
	return group, nil
}

// Count returns the number of stored groups.
func (repository *PostgresRepository) Count(context context.Context) (int, error) {
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, schema.VanGroup.Table)

	var count int
	if err := repository.db.QueryRow(context, query).Scan(&count); err != nil {
		return 0, dberr.Wrap(err, resourceName, "count_groups")
	}
	return count, nil
}

// # Group Mutations

/*
Create inserts a group and writes the assigned id back into it.

Parameters:
  - context: context.Context
  - group: *Group

Returns:
  - error: Persistence failures
*/
func (repository *PostgresRepository) Create(context context.Context, group *Group) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING %s::text
	`, schema.VanGroup.Table, strings.Join(schema.VanGroup.InsertColumns(), ", "), schema.VanGroup.Position)

	styles := group.Styles
	if styles == nil {
		styles = []string{}
	}

	err := repository.db.QueryRow(context, query,
		group.Name, group.Location, group.Date, group.MinAge, group.MaxAge,
		styles, group.SpotsFree, group.WhatsAppLink, group.Image,
	).Scan(&group.ID)
	if err != nil {
		return dberr.Wrap(err, resourceName, "create_group")
	}

	return nil
}

/*
ReserveSpot decrements SpotsFree in a single conditional UPDATE.

Description: When no row is updated the group is either unknown or full;
a follow-up lookup tells the two apart.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - *Group: The group after the attempt
  - bool: Whether a spot was reserved
  - error: NOT_FOUND or database failures
*/
func (repository *PostgresRepository) ReserveSpot(context context.Context, id string) (*Group, bool, error) {
	position, ok := parsePosition(id)
	if !ok {
		return nil, false, apperr.NotFound(resourceName)
	}

	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = %s - 1
		WHERE %s = $1 AND %s > 0
		RETURNING %s
	`,
		schema.VanGroup.Table,
		schema.VanGroup.SpotsFree, schema.VanGroup.SpotsFree,
		schema.VanGroup.Position, schema.VanGroup.SpotsFree,
		postgresColumns,
	)

	group, err := scanGroup(repository.db.QueryRow(context, query, position))
	if err == nil {
		return group, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, dberr.Wrap(err, resourceName, "reserve_spot")
	}

	// No row updated: unknown id or no spot left.
	group, err = repository.FindByID(context, id)
	if err != nil {
		return nil, false, err
	}
	return group, false, nil
}

// # Helpers

// scanGroup reads one row in postgresColumns order.
func scanGroup(row pgx.Row) (*Group, error) {
	group := &Group{}
	err := row.Scan(
		&group.ID, &group.Name, &group.Location, &group.Date, &group.MinAge, &group.MaxAge,
		&group.Styles, &group.SpotsFree, &group.WhatsAppLink, &group.Image,
	)
	if err != nil {
		return nil, err
	}
	if group.Styles == nil {
		group.Styles = []string{}
	}
	return group, nil
}

// parsePosition converts a public id back to its counter value. Ids that are
// not positive decimal integers cannot exist in the SQL stores.
func parsePosition(id string) (int64, bool) {
	position, err := strconv.ParseInt(id, 10, 64)
	if err != nil || position <= 0 || strconv.FormatInt(position, 10) != id {
		return 0, false
	}
	return position, true
}
