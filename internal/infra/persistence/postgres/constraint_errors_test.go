package postgres

import (
	"testing"

	"lastseen/internal/errors"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintErrorDetection(t *testing.T) {
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueConstraintViolation(errors.New(`ERROR: duplicate key value violates unique constraint "users_email_key" (SQLSTATE 23505)`)))
	assert.False(t, isUniqueConstraintViolation(errors.New("connection refused")))

	assert.True(t, isForeignKeyConstraintViolation(errors.Wrap(gorm.ErrForeignKeyViolated, "insert")))
	assert.True(t, isForeignKeyConstraintViolation(errors.New("ERROR: insert violates foreign key (SQLSTATE 23503)")))

	assert.True(t, isCheckConstraintViolation(errors.New("ERROR: new row violates check constraint (SQLSTATE 23514)")))
	assert.False(t, isCheckConstraintViolation(errors.New("timeout")))
}
