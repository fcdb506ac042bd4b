// Package locale resolves UI strings for a locale tag.
package locale

import (
	"embed"
	"fmt"
	"strings"

	golocale "github.com/jeandeaual/go-locale"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var files embed.FS

// Strings maps fixed UI keys to localized text.
type Strings map[string]string

// Get returns the text for key, or key itself when there is none.
func (s Strings) Get(key string) string {
	if v, ok := s[key]; ok && v != "" {
		return v
	}
	return key
}

// supported lists the bundled tables; the first one is the fallback.
var supported = []struct {
	tag  language.Tag
	file string
}{
	{language.English, "en"},
	{language.Spanish, "es"},
	{language.Portuguese, "pt"},
}

// Provider holds the bundled string tables.
type Provider struct {
	tables  []Strings
	matcher language.Matcher
}

// New parses the bundled tables.
func New() (*Provider, error) {
	p := &Provider{}
	tags := make([]language.Tag, 0, len(supported))
	for _, s := range supported {
		data, err := files.ReadFile("locales/" + s.file + ".yaml")
		if err != nil {
			return nil, fmt.Errorf("failed to read locale %s: %w", s.file, err)
		}
		var table Strings
		if err := yaml.Unmarshal(data, &table); err != nil {
			return nil, fmt.Errorf("failed to parse locale %s: %w", s.file, err)
		}
		p.tables = append(p.tables, table)
		tags = append(tags, s.tag)
	}
	p.matcher = language.NewMatcher(tags)
	return p, nil
}

// MustNew is like New but panics on error. The tables are embedded, so an
// error here is a build defect.
func MustNew() *Provider {
	p, err := New()
	if err != nil {
		panic(err)
	}
	return p
}

// Resolve returns the table that best matches tag, with keys missing from it
// filled in from English. Unknown or empty tags get English.
func (p *Provider) Resolve(tag string) Strings {
	idx := p.match(tag)
	out := make(Strings, len(p.tables[0]))
	for k, v := range p.tables[0] {
		out[k] = v
	}
	for k, v := range p.tables[idx] {
		out[k] = v
	}
	return out
}

func (p *Provider) match(tag string) int {
	tag = normalize(tag)
	if tag == "" {
		return 0
	}
	t, err := language.Parse(tag)
	if err != nil {
		return 0
	}
	_, idx, conf := p.matcher.Match(t)
	if conf == language.No {
		return 0
	}
	return idx
}

// normalize turns POSIX-style values such as "pt_BR.UTF-8" into BCP 47.
func normalize(tag string) string {
	if i := strings.IndexAny(tag, ".@"); i >= 0 {
		tag = tag[:i]
	}
	tag = strings.ReplaceAll(tag, "_", "-")
	if tag == "C" || tag == "POSIX" {
		return ""
	}
	return tag
}

// SystemTag returns the user's locale as reported by the OS, or "en".
func SystemTag() string {
	tag, err := golocale.GetLocale()
	if err != nil || tag == "" {
		return "en"
	}
	return tag
}
