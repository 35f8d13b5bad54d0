// Copyright (c) 2026 VanCommunity. All rights reserved.
// Author: Francesca993 (VanCommunity)

package migration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateURL(t *testing.T) {
	tests := []struct {
		name string
		dsn  string
		want string
	}{
		{"postgres scheme", "postgres://u:p@db:5432/vans?sslmode=disable", "pgx5://u:p@db:5432/vans?sslmode=disable&x-migrations-table=vancommunity_schema_migrations"},
		{"postgresql scheme", "postgresql://db/vans", "pgx5://db/vans?x-migrations-table=vancommunity_schema_migrations"},
		{"already pgx5", "pgx5://db/vans", "pgx5://db/vans?x-migrations-table=vancommunity_schema_migrations"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := migrateURL(tt.dsn)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMigrateURL_RejectsKeyValueDSN(t *testing.T) {
	_, err := migrateURL("host=db user=u dbname=vans")
	assert.Error(t, err)
}
