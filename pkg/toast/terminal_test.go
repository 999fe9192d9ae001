package toast

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminalSurface(t *testing.T) {
	t.Parallel()

	t.Run("prints once on visible", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		surface := NewTerminalSurface(&buf)

		h, err := surface.Insert(Notification{Kind: KindSuccess, Message: "export finished"})
		require.NoError(t, err)
		assert.Empty(t, buf.String(), "nothing printed while entering")

		surface.SetState(h, StateVisible)
		assert.Contains(t, buf.String(), "export finished")

		before := buf.Len()
		surface.SetState(h, StateVisible) // repeated transition is a no-op
		surface.SetState(h, StateExiting)
		assert.Equal(t, before, buf.Len())
	})

	t.Run("remove is idempotent", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		surface := NewTerminalSurface(&buf)

		h, err := surface.Insert(Notification{Kind: KindInfo, Message: "hello"})
		require.NoError(t, err)
		assert.Equal(t, 1, surface.Live())

		surface.Remove(h)
		surface.Remove(h)
		assert.Equal(t, 0, surface.Live())

		// State changes on a detached element are ignored.
		surface.SetState(h, StateVisible)
		assert.Empty(t, buf.String())
	})

	t.Run("foreign handle ignored", func(t *testing.T) {
		t.Parallel()

		surface := NewTerminalSurface(&bytes.Buffer{})
		assert.NotPanics(t, func() {
			surface.SetState("not-an-element", StateVisible)
			surface.Remove(42)
		})
	})
}
