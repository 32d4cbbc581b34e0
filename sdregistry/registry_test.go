package sdregistry_test

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/sdlog/sdlog/sdbase"
	"github.com/sdlog/sdlog/sdregistry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countingHook(calls *int32) sdregistry.FormatHook {
	return func(fields []sdbase.Field) ([]byte, error) {
		atomic.AddInt32(calls, 1)
		return []byte(fmt.Sprintf(`{"fieldCount":%d}`, len(fields))), nil
	}
}

func TestEnterFormatsExactlyOnce(t *testing.T) {
	var calls int32
	registry := sdregistry.New(countingHook(&calls))
	span, err := registry.Enter(nil, "root", sdbase.Int("a", 1), sdbase.Int("b", 2))
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "hook runs once at entry")

	for i := 0; i < 3; i++ {
		fragment, ok := span.Fragment()
		require.True(t, ok)
		assert.Equal(t, `{"fieldCount":2}`, string(fragment))
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "reads do not re-format")
}

func TestEnterPropagatesHookFailure(t *testing.T) {
	registry := sdregistry.New(func([]sdbase.Field) ([]byte, error) {
		return nil, fmt.Errorf("cannot format")
	})
	_, err := registry.Enter(nil, "doomed")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "doomed")
}

func TestNilHookLeavesNoFragment(t *testing.T) {
	registry := sdregistry.New(nil)
	span, err := registry.Enter(nil, "bare")
	require.NoError(t, err)
	_, ok := span.Fragment()
	assert.False(t, ok, "no fragment without a hook")
}

func TestLookupAndExit(t *testing.T) {
	var calls int32
	registry := sdregistry.New(countingHook(&calls))
	span, err := registry.Enter(nil, "short-lived")
	require.NoError(t, err)
	assert.Same(t, span, registry.Lookup(span.ID()))

	registry.Exit(span)
	assert.Nil(t, registry.Lookup(span.ID()), "evicted")
	registry.Exit(span) // second exit is harmless
	registry.Exit(nil)
}

func TestParentChain(t *testing.T) {
	var calls int32
	registry := sdregistry.New(countingHook(&calls))
	root, err := registry.Enter(nil, "root")
	require.NoError(t, err)
	child, err := registry.Enter(root, "child")
	require.NoError(t, err)
	assert.Same(t, root, child.Parent())
	assert.Nil(t, root.Parent())
	assert.Equal(t, "child", child.Name())
	assert.NotEqual(t, root.ID(), child.ID())
}

func TestContextPropagation(t *testing.T) {
	var calls int32
	registry := sdregistry.New(countingHook(&calls))
	span, err := registry.Enter(nil, "current")
	require.NoError(t, err)

	assert.Nil(t, sdregistry.Current(context.Background()), "no span by default")
	ctx := sdregistry.ContextWithSpan(context.Background(), span)
	assert.Same(t, span, sdregistry.Current(ctx))
}
