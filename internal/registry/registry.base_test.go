package registry

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry[int]()

	isNew, err := r.Register("a", 1)
	require.NoError(t, err)
	assert.True(t, isNew)

	// Ghi đè item cũ
	isNew, err = r.Register("a", 2)
	require.NoError(t, err)
	assert.False(t, isNew)

	got, exists := r.Get("a")
	assert.True(t, exists)
	assert.Equal(t, 2, got)

	_, exists = r.Get("missing")
	assert.False(t, exists)
}

func TestRegistry_RegisterEmptyName(t *testing.T) {
	r := NewRegistry[int]()
	_, err := r.Register("", 1)
	assert.Error(t, err)
}

func TestRegistry_GetOrCreate(t *testing.T) {
	r := NewRegistry[string]()
	calls := 0
	creator := func() (string, error) {
		calls++
		return "created", nil
	}

	got, err := r.GetOrCreate("x", creator)
	require.NoError(t, err)
	assert.Equal(t, "created", got)

	// Lần hai trả về item đã có, không gọi lại creator
	got, err = r.GetOrCreate("x", creator)
	require.NoError(t, err)
	assert.Equal(t, "created", got)
	assert.Equal(t, 1, calls)
}

func TestRegistry_Clear(t *testing.T) {
	r := NewRegistry[int]()
	r.Register("a", 1)

	cleaned := false
	deleted, err := r.Clear("a", func(int) error {
		cleaned = true
		return nil
	})
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.True(t, cleaned)
	assert.Equal(t, 0, r.Count())

	deleted, err = r.Clear("a", nil)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	r := NewRegistry[int]()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			r.Register("shared", n)
			r.Get("shared")
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 1, r.Count())
}
