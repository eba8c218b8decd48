package repository

import (
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsExclusionConflict(t *testing.T) {
	assert.True(t, isExclusionConflict(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})))
	assert.True(t, isExclusionConflict(&pgconn.PgError{Code: "23P01"}))
	assert.False(t, isExclusionConflict(&pgconn.PgError{Code: "42P01"}))
	assert.False(t, isExclusionConflict(fmt.Errorf("boom")))
	assert.False(t, isExclusionConflict(nil))
}
