package registry

import (
	"fmt"
	"sync"
	"testing"

	"github.com/arthur-debert/promptgen/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testItem struct {
	Path string
}

func TestRegister(t *testing.T) {
	reg := New[testItem]()
	assert.Equal(t, 0, reg.Count())

	t.Run("register valid item", func(t *testing.T) {
		require.NoError(t, reg.Register("claude", testItem{Path: "CLAUDE.md"}))
		assert.Equal(t, 1, reg.Count())
		assert.True(t, reg.Has("claude"))
	})

	t.Run("register with empty name", func(t *testing.T) {
		err := reg.Register("", testItem{})
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput), "got %v", err)
	})

	t.Run("register duplicate", func(t *testing.T) {
		err := reg.Register("claude", testItem{Path: "other"})
		assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists), "got %v", err)

		got, err := reg.Get("claude")
		require.NoError(t, err)
		assert.Equal(t, "CLAUDE.md", got.Path, "duplicate must not overwrite")
	})
}

func TestGet(t *testing.T) {
	reg := New[testItem]()
	MustRegister(reg, "gemini", testItem{Path: "GEMINI.md"})

	got, err := reg.Get("gemini")
	require.NoError(t, err)
	assert.Equal(t, "GEMINI.md", got.Path)

	_, err = reg.Get("missing")
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
	assert.False(t, reg.Has("missing"))
}

func TestListKeepsRegistrationOrder(t *testing.T) {
	reg := New[testItem]()
	names := []string{"github-copilot", "cursor-legacy", "cursor-modern", "gemini", "claude"}
	for _, n := range names {
		MustRegister(reg, n, testItem{})
	}

	assert.Equal(t, names, reg.List())

	list := reg.List()
	list[0] = "mutated"
	assert.Equal(t, "github-copilot", reg.List()[0])
}

func TestMustHelpersPanic(t *testing.T) {
	reg := New[testItem]()
	MustRegister(reg, "a", testItem{})

	assert.Panics(t, func() { MustRegister(reg, "a", testItem{}) })
	assert.Panics(t, func() { MustGet(reg, "b") })
	assert.NotPanics(t, func() { MustGet(reg, "a") })
}

func TestConcurrentAccess(t *testing.T) {
	reg := New[int]()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = reg.Register(fmt.Sprintf("item%d", i), i)
			_ = reg.List()
			_ = reg.Has("item0")
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, reg.Count())
	assert.Len(t, reg.List(), 50)
}
