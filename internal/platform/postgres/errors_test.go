package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/ecofinds/ecofinds-api/internal/store"
)

func pgError(code, constraint string) error {
	return &pgconn.PgError{Code: code, ConstraintName: constraint}
}

func TestMapError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		err     error
		wantIs  error
		wantNil bool
	}{
		{name: "nil passes through", err: nil, wantNil: true},
		{name: "no rows", err: sql.ErrNoRows, wantIs: store.ErrNotFound},
		{
			name:   "wrapped no rows",
			err:    fmt.Errorf("scan: %w", sql.ErrNoRows),
			wantIs: store.ErrNotFound,
		},
		{
			name:   "unique violation",
			err:    pgError(uniqueViolationCode, "users_email_key"),
			wantIs: store.ErrDuplicate,
		},
		{
			name:   "foreign key violation",
			err:    pgError(foreignKeyViolationCode, "products_owner_id_fkey"),
			wantIs: store.ErrInvalidEntity,
		},
		{
			name:   "check violation",
			err:    pgError(checkViolationCode, "products_price_check"),
			wantIs: store.ErrInvalidEntity,
		},
		{
			name:   "not null violation",
			err:    pgError(notNullViolationCode, ""),
			wantIs: store.ErrInvalidEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapError(tt.err)
			if tt.wantNil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.wantIs)
		})
	}

	t.Run("unclassified errors pass through unchanged", func(t *testing.T) {
		err := errors.New("connection refused")
		assert.Equal(t, err, MapError(err))
	})
}

func TestViolationHelpers(t *testing.T) {
	t.Parallel()

	assert.True(t, IsUniqueViolation(pgError(uniqueViolationCode, "users_email_key")))
	assert.False(t, IsUniqueViolation(pgError(foreignKeyViolationCode, "")))
	assert.False(t, IsUniqueViolation(errors.New("boom")))

	assert.True(t, IsForeignKeyViolation(pgError(foreignKeyViolationCode, "")))
	assert.False(t, IsForeignKeyViolation(pgError(uniqueViolationCode, "")))

	wrapped := fmt.Errorf("insert: %w", pgError(uniqueViolationCode, "users_email_key"))
	assert.True(t, IsUniqueViolation(wrapped))
}
