// Package catalog holds the languages supported by each translation model and
// the dialect folding applied to detected language codes.
package catalog

import (
	"fmt"
	"strings"
)

const (
	// M2M100_418M is the 418M parameter M2M100 model.
	M2M100_418M = "facebook/m2m100_418M"
	// M2M100_1200M is the 1.2B parameter M2M100 model.
	M2M100_1200M = "facebook/m2m100_1.2B"

	// DefaultModel is used when no model is configured.
	DefaultModel = M2M100_418M
)

// Language is one catalog entry.
type Language struct {
	Code string `json:"code" example:"en"`
	Name string `json:"name" example:"english"`
} // @name Language

// dialects folds detector codes onto the code the models use.
var dialects = map[string]string{
	"nb": "no", // Bokmål
	"nn": "no", // Nynorsk
}

var m2m100Languages = []Language{
	{"af", "afrikaans"},
	{"am", "amharic"},
	{"ar", "arabic"},
	{"az", "azerbaijani"},
	{"be", "belarusian"},
	{"bg", "bulgarian"},
	{"bn", "bengali"},
	{"ca", "catalan"},
	{"cs", "czech"},
	{"cy", "welsh"},
	{"da", "danish"},
	{"de", "german"},
	{"el", "greek"},
	{"en", "english"},
	{"es", "spanish"},
	{"et", "estonian"},
	{"fa", "persian"},
	{"fi", "finnish"},
	{"fr", "french"},
	{"gu", "gujarati"},
	{"he", "hebrew"},
	{"hi", "hindi"},
	{"hr", "croatian"},
	{"hu", "hungarian"},
	{"id", "indonesian"},
	{"is", "icelandic"},
	{"it", "italian"},
	{"ja", "japanese"},
	{"jv", "javanese"},
	{"ka", "georgian"},
	{"kk", "kazakh"},
	{"km", "khmer"},
	{"kn", "kannada"},
	{"ko", "korean"},
	{"lo", "lao"},
	{"lt", "lithuanian"},
	{"lv", "latvian"},
	{"mk", "macedonian"},
	{"ml", "malayalam"},
	{"mn", "mongolian"},
	{"mr", "marathi"},
	{"ms", "malay"},
	{"my", "burmese"},
	{"ne", "nepali"},
	{"nl", "dutch"},
	{"no", "norwegian"},
	{"nb", "norwegian bokmål"},
	{"nn", "norwegian nynorsk"},
	{"pa", "punjabi"},
	{"pl", "polish"},
	{"pt", "portuguese"},
	{"ro", "romanian"},
	{"ru", "russian"},
	{"si", "sinhala"},
	{"sk", "slovak"},
	{"sl", "slovenian"},
	{"sq", "albanian"},
	{"sr", "serbian"},
	{"sv", "swedish"},
	{"sw", "swahili"},
	{"ta", "tamil"},
	{"te", "telugu"},
	{"th", "thai"},
	{"tl", "tagalog"},
	{"tr", "turkish"},
	{"uk", "ukrainian"},
	{"ur", "urdu"},
	{"vi", "vietnamese"},
	{"zh", "chinese"},
}

// both M2M100 sizes share one language table
var models = map[string][]Language{
	M2M100_418M:  m2m100Languages,
	M2M100_1200M: m2m100Languages,
}

// Catalog is the read-only language table of one model.
type Catalog struct {
	model     string
	languages []Language
	index     map[string]string
}

// ForModel returns the catalog of a known model.
func ForModel(model string) (*Catalog, error) {
	languages, ok := models[model]
	if !ok {
		return nil, fmt.Errorf("unknown translation model %q (supported: %s)", model, strings.Join(Models(), ", "))
	}
	return New(model, languages), nil
}

// New builds a catalog from an ordered language list.
func New(model string, languages []Language) *Catalog {
	index := make(map[string]string, len(languages))
	for _, l := range languages {
		index[l.Code] = l.Name
	}
	return &Catalog{
		model:     model,
		languages: append([]Language(nil), languages...),
		index:     index,
	}
}

// Models lists the known model identifiers.
func Models() []string {
	return []string{M2M100_418M, M2M100_1200M}
}

// Model returns the model identifier of the catalog.
func (c *Catalog) Model() string {
	return c.model
}

// Supports reports whether code is in the catalog.
func (c *Catalog) Supports(code string) bool {
	_, ok := c.index[code]
	return ok
}

// Name returns the display name of code.
func (c *Catalog) Name(code string) (string, bool) {
	name, ok := c.index[code]
	return name, ok
}

// Languages returns the catalog entries in catalog order.
func (c *Catalog) Languages() []Language {
	return append([]Language(nil), c.languages...)
}

// Codes returns the catalog codes in catalog order.
func (c *Catalog) Codes() []string {
	codes := make([]string, len(c.languages))
	for i, l := range c.languages {
		codes[i] = l.Code
	}
	return codes
}

// Normalize folds a dialect or script variant onto its canonical code.
// Codes without a folding rule are returned unchanged.
func Normalize(code string) string {
	if folded, ok := dialects[code]; ok {
		return folded
	}
	return code
}

// PublicCode projects a code onto the one reported to clients.
func PublicCode(code string) string {
	return Normalize(code)
}
