package texts

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../mocks/mock_texts.go -package mocks masto_bridge/texts ITexts

//go:embed snippets
var snippetFS embed.FS

type ITexts interface {
	Get(id string) string
	WithVals(id string, vals map[string]string) string
}

// NewTexts loads every snippet up front; a missing snippet is a programming error, so Get returns "".
func NewTexts() ITexts {
	res := texts{snippets: map[string]string{}}
	entries, _ := fs.ReadDir(snippetFS, "snippets")
	for _, e := range entries {
		bytes, err := snippetFS.ReadFile("snippets/" + e.Name())
		if err != nil {
			continue
		}
		res.snippets[e.Name()] = strings.TrimRight(string(bytes), "\n")
	}
	return &res
}

type texts struct {
	snippets map[string]string
}

func (t *texts) Get(id string) string {
	return t.snippets[id]
}

func (t *texts) WithVals(id string, vals map[string]string) string {
	res := t.Get(id)
	for ph, val := range vals {
		pattern := fmt.Sprintf("{{%s}}", ph)
		res = strings.ReplaceAll(res, pattern, val)
	}
	return res
}
