package sqlstore

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/phrazzld/taskboard/internal/store"
)

func TestMapError(t *testing.T) {
	plain := errors.New("connection reset")

	tests := []struct {
		name    string
		err     error
		wantIs  error
		wantNil bool
	}{
		{name: "nil", err: nil, wantNil: true},
		{name: "no rows", err: sql.ErrNoRows, wantIs: store.ErrNotFound},
		{name: "check violation", err: &pgconn.PgError{Code: checkViolationCode, ConstraintName: "tasks_title_check"}, wantIs: store.ErrInvalidEntity},
		{name: "not null violation", err: &pgconn.PgError{Code: notNullViolationCode, ColumnName: "title"}, wantIs: store.ErrInvalidEntity},
		{name: "other pg error", err: &pgconn.PgError{Code: "57P01"}},
		{name: "plain", err: plain, wantIs: plain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapError(tt.err)
			if tt.wantNil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.err, "original error must stay in the chain")
			if tt.wantIs != nil {
				assert.ErrorIs(t, got, tt.wantIs)
			} else {
				assert.NotErrorIs(t, got, store.ErrInvalidEntity)
			}
		})
	}
}

func TestCheckRowsAffected(t *testing.T) {
	assert.NoError(t, CheckRowsAffected(sqlmock.NewResult(0, 1)))
	assert.ErrorIs(t, CheckRowsAffected(sqlmock.NewResult(0, 0)), store.ErrTaskNotFound)

	err := CheckRowsAffected(sqlmock.NewErrorResult(errors.New("unsupported")))
	assert.Error(t, err)
	assert.False(t, store.IsNotFoundError(err))

	assert.Error(t, CheckRowsAffected(nil))
}
