package counter

import (
	"os"
	"path/filepath"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_MissingFileStartsAtZero(t *testing.T) {
	c, err := Open(filepath.Join(t.TempDir(), "counter.json"))
	require.NoError(t, err)
	assert.Zero(t, c.Value())
}

func TestOpen_EmptyPath(t *testing.T) {
	_, err := Open("")
	require.Error(t, err)
}

func TestOpen_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "counter.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := Open(path)
	require.Error(t, err)
}

func TestIncrement_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "counter.json")

	c, err := Open(path)
	require.NoError(t, err)
	for want := uint64(1); want <= 3; want++ {
		got, err := c.Increment()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"counter": 3}`, string(raw))

	reopened, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), reopened.Value())

	next, err := reopened.Increment()
	require.NoError(t, err)
	assert.Equal(t, uint64(4), next)
}

func TestIncrement_ConcurrentValuesAreUnique(t *testing.T) {
	c, err := Open(filepath.Join(t.TempDir(), "counter.json"))
	require.NoError(t, err)

	const n = 50
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		seen = make([]uint64, 0, n)
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := c.Increment()
			assert.NoError(t, err)
			mu.Lock()
			seen = append(seen, v)
			mu.Unlock()
		}()
	}
	wg.Wait()

	sort.Slice(seen, func(i, j int) bool { return seen[i] < seen[j] })
	for i, v := range seen {
		assert.Equal(t, uint64(i+1), v)
	}
	assert.Equal(t, uint64(n), c.Value())
}

func TestIncrement_WriteFailureKeepsValue(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "gone")
	require.NoError(t, os.Mkdir(dir, 0o755))

	c, err := Open(filepath.Join(dir, "counter.json"))
	require.NoError(t, err)
	require.NoError(t, os.RemoveAll(dir))

	_, err = c.Increment()
	require.Error(t, err)
	assert.Zero(t, c.Value())
}
