package logic_test

import (
	"github.com/stretchr/testify/assert"
	"masto_bridge/logic"
	"strings"
	"testing"
)

func knownNames(names ...string) func(string) bool {
	return func(name string) bool {
		for _, n := range names {
			if n == name {
				return true
			}
		}
		return false
	}
}

func TestParseCommand(t *testing.T) {
	isKnown := knownNames("login", "reply", "star", "help", "profile")

	vals := []struct {
		text    string
		prefix  string
		status  logic.ParseStatus
		name    string
		payload string
	}{
		{"hello world", "", logic.PcNotCommand, "", ""},
		{"", "", logic.PcNotCommand, "", ""},
		{"/", "", logic.PcNotCommand, "", ""},
		{"/ help", "", logic.PcNotCommand, "", ""},
		{"/help", "", logic.PcKnown, "help", ""},
		{"  /help  ", "", logic.PcKnown, "help", ""},
		{"/HELP", "", logic.PcKnown, "help", ""},
		{"/login mastodon.social bob pw d", "", logic.PcKnown, "login", "mastodon.social bob pw d"},
		{"/reply_123 hello\nthere", "", logic.PcKnown, "reply", "123 hello\nthere"},
		{"/star_109348681889386281", "", logic.PcKnown, "star", "109348681889386281"},
		{"/profile_@bob@example.com", "", logic.PcKnown, "profile", "@bob@example.com"},
		{"/frobnicate now", "", logic.PcUnknown, "frobnicate", "now"},
		{"/m_help", "m_", logic.PcKnown, "help", ""},
		{"/M_reply_5 hi", "m_", logic.PcKnown, "reply", "5 hi"},
		{"/help", "m_", logic.PcNotCommand, "", ""},
		{"/m_", "m_", logic.PcNotCommand, "", ""},
		{"/_help", "", logic.PcNotCommand, "", ""},
		{"/help!", "", logic.PcNotCommand, "", ""},
		{"/path/to/file", "", logic.PcNotCommand, "", ""},
		{"see /help", "", logic.PcNotCommand, "", ""},
	}
	for _, val := range vals {
		pc := logic.ParseCommand(val.text, val.prefix, isKnown)
		assert.Equal(t, val.status, pc.Status, val.text)
		assert.Equal(t, val.name, pc.Name, val.text)
		assert.Equal(t, val.payload, pc.Payload, val.text)
	}
}

func TestParseCommandIsTotal(t *testing.T) {
	weird := []string{
		"/\x00", "/\xff\xfe", "/ü", "/K", "/K", "/__", "/_", "/-", "/..",
		"\n\n/", "/\t", strings.Repeat("/", 1000), "/" + strings.Repeat("a", 10000),
		"/héllo", "/a_é x",
	}
	prefixes := []string{"", "m_", "K", "é", "xyzzy"}
	for _, text := range weird {
		for _, prefix := range prefixes {
			assert.NotPanics(t, func() { logic.ParseCommand(text, prefix, nil) }, text)
		}
	}
	pc := logic.ParseCommand("/help", "", nil)
	assert.Equal(t, logic.PcUnknown, pc.Status)
}

func TestSplitArgs(t *testing.T) {
	assert.Nil(t, logic.SplitArgs("", 3))
	assert.Nil(t, logic.SplitArgs("   ", 3))
	assert.Equal(t, []string{"a"}, logic.SplitArgs("a", 3))
	assert.Equal(t, []string{"a", "b", "c d  e"}, logic.SplitArgs(" a  b c d  e ", 3))
	assert.Equal(t, []string{"123", "hello\nworld"}, logic.SplitArgs("123\thello\nworld", 2))
	assert.Equal(t, []string{"all of it"}, logic.SplitArgs("all of it", 1))
}
