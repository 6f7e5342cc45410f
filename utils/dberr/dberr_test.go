package dberr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/muhammadheryan/e-voting/utils/dberr"
	"github.com/stretchr/testify/assert"
)

func TestIsDuplicateEntry(t *testing.T) {
	dup := &mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'txn_abc123' for key 'ux_vote_transaction_ref'"}

	assert.True(t, dberr.IsDuplicateEntry(dup))
	assert.True(t, dberr.IsDuplicateEntry(fmt.Errorf("insert vote: %w", dup)))
	assert.False(t, dberr.IsDuplicateEntry(&mysql.MySQLError{Number: 1452}))
	assert.False(t, dberr.IsDuplicateEntry(errors.New("connection refused")))
	assert.False(t, dberr.IsDuplicateEntry(nil))
}
