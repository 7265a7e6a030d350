package main

import (
	"errors"
	"testing"

	"github.com/jiahut/relget/pkg/github"
	"github.com/stretchr/testify/require"
)

// scriptedSelector answers with a fixed result and records whether it
// was consulted at all.
type scriptedSelector struct {
	called  bool
	options []string
	choice  string
	ok      bool
	err     error
}

func (selector *scriptedSelector) Select(label string, options []string) (string, bool, error) {
	selector.called = true
	selector.options = options
	return selector.choice, selector.ok, selector.err
}

func Test_PickAsset(t *testing.T) {
	matched := []github.Asset{
		{Name: "tool-linux-amd64.tar.gz", Size: 1024},
		{Name: "tool-darwin-arm64.tar.gz", Size: 2048},
	}

	t.Run("single match skips selection", func(t *testing.T) {
		selector := &scriptedSelector{}
		selected, done, err := pickAsset(matched[:1], selector)
		require.NoError(t, err)
		require.True(t, done)
		require.Equal(t, matched[0], selected)
		require.False(t, selector.called)
	})
	t.Run("multiple matches go through the selector", func(t *testing.T) {
		selector := &scriptedSelector{choice: matched[1].Label(), ok: true}
		selected, done, err := pickAsset(matched, selector)
		require.NoError(t, err)
		require.True(t, done)
		require.Equal(t, matched[1], selected)
		require.True(t, selector.called)
		require.Equal(t, []string{matched[0].Label(), matched[1].Label()}, selector.options)
	})
	t.Run("declined selection picks nothing", func(t *testing.T) {
		selected, done, err := pickAsset(matched, &scriptedSelector{})
		require.NoError(t, err)
		require.False(t, done)
		require.Zero(t, selected)
	})
	t.Run("selector failure isn't fatal", func(t *testing.T) {
		selector := &scriptedSelector{err: errors.New("tty gone")}
		_, done, err := pickAsset(matched, selector)
		require.NoError(t, err)
		require.False(t, done)
	})
	t.Run("unknown choice is a selector bug", func(t *testing.T) {
		selector := &scriptedSelector{choice: "no such label", ok: true}
		_, _, err := pickAsset(matched, selector)
		require.Error(t, err)
	})
}
