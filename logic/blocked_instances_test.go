package logic_test

import (
	"github.com/stretchr/testify/assert"
	"masto_bridge/logic"
	"masto_bridge/shared"
	"os"
	"path/filepath"
	"testing"
)

func TestBlockedInstances(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "blocked.txt")
	content := "# spam havens\nbad.example\n\n  Worse.Example  \n"
	assert.Nil(t, os.WriteFile(fname, []byte(content), 0644))
	bi := logic.NewBlockedInstances(&shared.Config{BlockedInstancesFile: fname})

	cases := []struct {
		url     string
		blocked bool
	}{
		{"https://bad.example", true},
		{"https://BAD.example", true},
		{"https://social.bad.example", true},
		{"https://worse.example", true},
		{"https://notbad.example", false},
		{"https://mastodon.social", false},
	}
	for _, c := range cases {
		blocked, err := bi.IsBlocked(c.url)
		assert.Nil(t, err)
		assert.Equal(t, c.blocked, blocked, c.url)
	}
}

func TestBlockedInstancesWithoutFile(t *testing.T) {
	bi := logic.NewBlockedInstances(&shared.Config{})
	blocked, err := bi.IsBlocked("https://bad.example")
	assert.Nil(t, err)
	assert.False(t, blocked)

	bi = logic.NewBlockedInstances(&shared.Config{BlockedInstancesFile: filepath.Join(t.TempDir(), "missing.txt")})
	_, err = bi.IsBlocked("https://bad.example")
	assert.NotNil(t, err)
}
