package logic

import (
	"regexp"
	"strings"
)

type ParseStatus int32

const (
	PcNotCommand ParseStatus = 0
	PcUnknown    ParseStatus = 1
	PcKnown      ParseStatus = 2
)

type ParsedCommand struct {
	Status  ParseStatus
	Name    string // Lower-case, without slash or prefix
	Payload string
}

var reCommandToken = regexp.MustCompile(`^/[A-Za-z0-9_@.\-]+$`)

// ParseCommand never fails: any text is a known command, an unknown one, or not a command at all.
// "/reply_123 hello" yields reply with payload "123 hello".
func ParseCommand(text, prefix string, isKnown func(name string) bool) ParsedCommand {

	text = strings.TrimLeft(text, " \t\r\n")
	if !strings.HasPrefix(text, "/") {
		return ParsedCommand{Status: PcNotCommand}
	}

	token, rest := text, ""
	if ix := strings.IndexAny(text, " \t\r\n"); ix != -1 {
		token, rest = text[:ix], strings.TrimSpace(text[ix+1:])
	}
	if !reCommandToken.MatchString(token) {
		return ParsedCommand{Status: PcNotCommand}
	}

	name := token[1:]
	if len(name) < len(prefix) || !strings.EqualFold(name[:len(prefix)], prefix) {
		return ParsedCommand{Status: PcNotCommand}
	}
	name = name[len(prefix):]

	inline := ""
	if ix := strings.IndexByte(name, '_'); ix != -1 {
		name, inline = name[:ix], name[ix+1:]
	}
	name = strings.ToLower(name)
	if name == "" {
		return ParsedCommand{Status: PcNotCommand}
	}

	payload := rest
	if inline != "" {
		payload = strings.TrimSpace(inline + " " + rest)
	}

	if isKnown == nil || !isKnown(name) {
		return ParsedCommand{Status: PcUnknown, Name: name, Payload: payload}
	}
	return ParsedCommand{Status: PcKnown, Name: name, Payload: payload}
}

// SplitArgs splits the payload into at most n whitespace-delimited fields; the last one keeps the remainder.
func SplitArgs(payload string, n int) []string {
	var res []string
	rest := strings.TrimSpace(payload)
	for rest != "" {
		if len(res) == n-1 {
			res = append(res, rest)
			break
		}
		ix := strings.IndexAny(rest, " \t\r\n")
		if ix == -1 {
			res = append(res, rest)
			break
		}
		res = append(res, rest[:ix])
		rest = strings.TrimLeft(rest[ix+1:], " \t\r\n")
	}
	return res
}
