package migration

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"thyroidrisk/internal/errors"
)

type MockExecer struct {
	mock.Mock
}

func (m *MockExecer) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	called := m.Called(ctx, query)
	return nil, called.Error(1)
}

func TestRunCreatesLoadHistorySchema(t *testing.T) {
	db := &MockExecer{}
	db.On("ExecContext", mock.Anything, mock.Anything).Return(nil, nil)

	require.NoError(t, NewRunner().Run(context.Background(), db))

	db.AssertNumberOfCalls(t, "ExecContext", 2)
	assert.Contains(t, db.Calls[0].Arguments.String(1), "CREATE TABLE IF NOT EXISTS dataset_loads")
	assert.Contains(t, db.Calls[1].Arguments.String(1), "CREATE INDEX IF NOT EXISTS")
}

func TestRunStopsAtFirstFailure(t *testing.T) {
	db := &MockExecer{}
	db.On("ExecContext", mock.Anything, createDatasetLoadsTable).Return(nil, fmt.Errorf("permission denied"))

	err := NewRunner().Run(context.Background(), db)
	require.Error(t, err)
	assert.Equal(t, errors.CodeDatabaseError, errors.GetCode(err))
	assert.Contains(t, err.Error(), "dataset_loads table")
	db.AssertNumberOfCalls(t, "ExecContext", 1)
}

func TestVersion(t *testing.T) {
	assert.Equal(t, "1.0.0", NewRunner().Version())
}
