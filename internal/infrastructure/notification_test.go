package infrastructure

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yourusername/gifsync/internal/domain"
)

type recordedCmd struct {
	name string
	args []string
}

func newTestNotifier(enabled bool, method string, fail error) (*NotificationService, *[]recordedCmd) {
	var cmds []recordedCmd
	n := NewNotificationService(&domain.NotificationConfig{Enabled: enabled, Method: method}, nil)
	n.runCmd = func(name string, args ...string) error {
		cmds = append(cmds, recordedCmd{name: name, args: args})
		return fail
	}
	return n, &cmds
}

func TestNotificationService_Disabled(t *testing.T) {
	n, cmds := newTestNotifier(false, "notify-send", nil)

	assert.NoError(t, n.Send("t", "m"))
	assert.Empty(t, *cmds)
}

func TestNotificationService_NotifySend(t *testing.T) {
	n, cmds := newTestNotifier(true, "notify-send", nil)

	n.NotifyPassCompleted(&domain.Run{
		Downloaded: 3, Failed: 1, NotFound: 2,
		TotalStoredNow: 53, CatalogSize: 106, Coverage: 50,
		Unavailable: "exercisedb",
	})

	if assert.Len(t, *cmds, 1) {
		cmd := (*cmds)[0]
		assert.Equal(t, "notify-send", cmd.name)
		assert.Equal(t, "GIF sync complete", cmd.args[0])
		assert.Equal(t, "3 new, 1 failed, 2 not found; 53/106 stored (50%); unavailable: exercisedb", cmd.args[1])
	}
}

func TestNotificationService_OSAScript(t *testing.T) {
	n, cmds := newTestNotifier(true, "osascript", nil)

	assert.NoError(t, n.Send("title", "message"))
	if assert.Len(t, *cmds, 1) {
		assert.Equal(t, []string{"-e", `display notification "message" with title "title"`}, (*cmds)[0].args)
	}
}

func TestNotificationService_Errors(t *testing.T) {
	n, _ := newTestNotifier(true, "notify-send", errors.New("not installed"))
	assert.Error(t, n.Send("t", "m"))

	unknown, cmds := newTestNotifier(true, "pager", nil)
	assert.NoError(t, unknown.Send("t", "m"))
	assert.Empty(t, *cmds)
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "short", truncateString("short", 10))
	assert.Equal(t, "abc...", truncateString("abcdef", 3))
}
