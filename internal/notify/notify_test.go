package notify

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sent struct {
	title, message string
}

func recording(n *Notifier, err error) *[]sent {
	var out []sent
	n.send = func(title, message string, _ any) error {
		out = append(out, sent{title, message})
		return err
	}
	return &out
}

func TestNotifyPrefixesTitle(t *testing.T) {
	n := New(true, nil)
	got := recording(n, nil)

	n.Error("event tap refused")
	n.Info("ready")

	require.Len(t, *got, 2)
	assert.Equal(t, sent{"kbtrackpad: Error", "event tap refused"}, (*got)[0])
	assert.Equal(t, "kbtrackpad", (*got)[1].title)
}

func TestNotifyPaused(t *testing.T) {
	n := New(true, nil)
	got := recording(n, nil)

	n.Paused(true)
	n.Paused(false)

	require.Len(t, *got, 2)
	assert.Equal(t, "kbtrackpad: Paused", (*got)[0].title)
	assert.Equal(t, "kbtrackpad: Resumed", (*got)[1].title)
}

func TestNotifyDisabled(t *testing.T) {
	n := New(false, nil)
	got := recording(n, nil)

	n.Error("ignored")

	assert.Empty(t, *got)
}

func TestNotifySwallowsErrors(t *testing.T) {
	n := New(true, nil)
	got := recording(n, errors.New("no notification daemon"))

	assert.NotPanics(t, func() { n.Info("still fine") })
	assert.Len(t, *got, 1)
}
