// Copyright (c) 2026 VanCommunity. All rights reserved.
// Author: Francesca993 (VanCommunity)

package dberr_test

import (
	"database/sql"
	"errors"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Francesca993/VanCommunity/internal/platform/apperr"
	"github.com/Francesca993/VanCommunity/internal/platform/dberr"
)

func TestWrap(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, dberr.Wrap(nil, "Group", "find_group"))
	})

	t.Run("no rows become not found", func(t *testing.T) {
		for _, err := range []error{pgx.ErrNoRows, sql.ErrNoRows} {
			wrapped := dberr.Wrap(err, "Group", "find_group")
			assert.True(t, apperr.IsNotFound(wrapped))
			assert.Equal(t, "Group not found", wrapped.Error())
		}
	})

	t.Run("unknown errors become internal with cause", func(t *testing.T) {
		cause := errors.New("connection reset")
		wrapped := dberr.Wrap(cause, "Group", "list_groups")

		ae := apperr.As(wrapped)
		require.NotNil(t, ae)
		assert.Equal(t, http.StatusInternalServerError, ae.HTTPStatus)
		assert.ErrorIs(t, wrapped, cause)
	})

	t.Run("app errors pass through", func(t *testing.T) {
		original := apperr.ValidationError("bad")
		assert.Same(t, original, dberr.Wrap(original, "Group", "create_group"))
	})
}
