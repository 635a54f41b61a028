package db

import (
	"context"
	"errors"
	"testing"

	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/pkg/apperror"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestIsDuplicateKeyErr(t *testing.T) {
	assert.False(t, IsDuplicateKeyErr(nil))
	assert.True(t, IsDuplicateKeyErr(gorm.ErrDuplicatedKey))
	assert.True(t, IsDuplicateKeyErr(errors.New("UNIQUE constraint failed: invoices.invoice_number")))
	assert.True(t, IsDuplicateKeyErr(&pgconn.PgError{Code: "23505"}))
	assert.False(t, IsDuplicateKeyErr(errors.New("no such table")))
}

func TestIsTransientErr(t *testing.T) {
	assert.True(t, IsTransientErr(errors.New("database is locked (5) (SQLITE_BUSY)")))
	assert.True(t, IsTransientErr(&pgconn.PgError{Code: "40001"}))
	assert.False(t, IsTransientErr(errors.New("FOREIGN KEY constraint failed")))
	assert.False(t, IsTransientErr(nil))
}

func TestClassify(t *testing.T) {
	assert.NoError(t, Classify("insert_invoice", nil))

	err := Classify("insert_invoice", errors.New("database is locked"))
	assert.ErrorIs(t, err, apperror.ErrPersistence)
	assert.True(t, apperror.IsTransient(err))

	err = Classify("insert_invoice", errors.New("UNIQUE constraint failed: invoices.invoice_number"))
	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "insert_invoice_duplicate", appErr.Code)
	assert.False(t, appErr.Transient)

	err = Classify("insert_item", errors.New("FOREIGN KEY constraint failed"))
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "insert_item_reference", appErr.Code)

	notFound := apperror.NotFound("customer_not_found")
	assert.Same(t, notFound, Classify("x", notFound))

	assert.ErrorIs(t, Classify("x", context.Canceled), context.Canceled)
	assert.Equal(t, apperror.Kind(""), apperror.KindOf(Classify("x", context.Canceled)))
}

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, "shop.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", SQLiteDSN("shop.db"))
	assert.Equal(t,
		"file:t1?mode=memory&cache=shared&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)",
		SQLiteDSN("file:t1?mode=memory&cache=shared"))
}

func TestDialectRejectsUnknown(t *testing.T) {
	_, err := Dialect(Config{Type: "oracle"})
	assert.Error(t, err)
}
