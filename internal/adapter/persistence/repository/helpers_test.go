package repository

import (
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return db, mock
}

func q(s string) string { return regexp.QuoteMeta(s) }

func TestIsDuplicateKey(t *testing.T) {
	assert.True(t, isDuplicateKey(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}))
	assert.False(t, isDuplicateKey(&mysql.MySQLError{Number: 1452}))
	assert.False(t, isDuplicateKey(errors.New("1062")))
	assert.False(t, isDuplicateKey(nil))
}

func TestNullableHelpers(t *testing.T) {
	assert.Nil(t, nullableFloat(nil))
	v := 1.5
	assert.Equal(t, 1.5, nullableFloat(&v))
	assert.Nil(t, nullableTime(nil))

	assert.Nil(t, floatPtr(sql.NullFloat64{}))
	assert.Equal(t, 2.0, *floatPtr(sql.NullFloat64{Float64: 2, Valid: true}))
	assert.Nil(t, stringPtr(sql.NullString{}))
	assert.Equal(t, "x", *stringPtr(sql.NullString{String: "x", Valid: true}))
	assert.Nil(t, int64Ptr(sql.NullInt64{}))
	assert.Nil(t, timePtr(sql.NullTime{}))
}
