package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tsc-editor/internal/storage"
)

func TestSSHServerReleaseClosesWorkspace(t *testing.T) {
	ws, _ := newWorkspace(t)
	require.NoError(t, ws.Open(storage.KindLevel, "lvl_1", true))
	require.True(t, ws.level.Initialized())

	srv := &SSHServer{logger: ws.logger}
	srv.track("session-a", ws)
	assert.Equal(t, 1, srv.Sessions())

	srv.release("session-a")
	assert.Equal(t, 0, srv.Sessions())
	assert.Nil(t, ws.Core(), "the document is closed")
	assert.False(t, ws.level.Initialized())
	assert.False(t, ws.world.Initialized())
	assert.False(t, ws.Mode().Active())

	srv.release("session-a")
	srv.release("unknown")
	assert.Equal(t, 0, srv.Sessions())
}
