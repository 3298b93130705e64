package loader

import (
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"thyroidrisk/domain/dataset"
)

type MockLoadHistory struct {
	mock.Mock
}

func (m *MockLoadHistory) Record(ctx context.Context, record *dataset.LoadRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockLoadHistory) ListRecent(ctx context.Context, limit int) ([]*dataset.LoadRecord, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]*dataset.LoadRecord), args.Error(1)
}

func TestCacheLoadsOnceAndRecords(t *testing.T) {
	dir := t.TempDir()
	history := &MockLoadHistory{}
	history.On("Record", mock.Anything, mock.MatchedBy(func(r *dataset.LoadRecord) bool {
		return r.Source == "sample" && r.Rows == 100 && r.Columns == 7 && len(r.Notices) == 1
	})).Return(nil).Once()

	cache := NewCache(newTestLoader(dir, nil), history)
	assert.False(t, cache.Status().Loaded)

	var wg sync.WaitGroup
	snaps := make([]*Snapshot, 8)
	for i := range snaps {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			snap, err := cache.Get(context.Background())
			assert.NoError(t, err)
			snaps[i] = snap
		}(i)
	}
	wg.Wait()

	for _, snap := range snaps[1:] {
		assert.Same(t, snaps[0], snap)
	}
	assert.Equal(t, []Notice{{Level: LevelError, Message: MsgCreatingSample}}, snaps[0].Notices)

	// A file appearing later does not replace the cached table.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cleaned.csv"), []byte("Age\n1\n"), 0o644))
	later, err := cache.Get(context.Background())
	require.NoError(t, err)
	assert.Same(t, snaps[0], later)

	status := cache.Status()
	assert.True(t, status.Loaded)
	assert.Equal(t, 100, status.Rows)
	assert.Equal(t, snaps[0].ID, status.LoadID)
	history.AssertExpectations(t)
}

func TestCacheDoesNotKeepFailures(t *testing.T) {
	dir := t.TempDir()
	primary := filepath.Join(dir, "cleaned.csv")
	require.NoError(t, os.Mkdir(primary, 0o755))

	cache := NewCache(newTestLoader(dir, nil), nil)

	_, err := cache.Get(context.Background())
	require.Error(t, err)
	failed, ok := AsFailedLoad(err)
	require.True(t, ok)
	require.NotEmpty(t, failed.Notices)
	assert.Equal(t, LevelError, failed.Notices[len(failed.Notices)-1].Level)
	assert.False(t, cache.Status().Loaded)

	require.NoError(t, os.Remove(primary))
	require.NoError(t, os.WriteFile(primary, []byte("Age\n30\n"), 0o644))

	snap, err := cache.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, snap.Table.Rows)
}

func TestCacheRecordFailureDoesNotFailLoad(t *testing.T) {
	history := &MockLoadHistory{}
	history.On("Record", mock.Anything, mock.Anything).Return(stderrors.New("db down"))

	cache := NewCache(newTestLoader(t.TempDir(), nil), history)
	snap, err := cache.Get(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, snap.Table)
	history.AssertNumberOfCalls(t, "Record", 1)
}

func TestCacheGetCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cache := NewCache(newTestLoader(t.TempDir(), nil), nil)
	_, err := cache.Get(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
