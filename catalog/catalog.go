package catalog

import (
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/fieldval"
)

// DefaultLanguage is used when no other default is configured.
const DefaultLanguage = "en"

// Catalog holds per-language message template tables and resolves a
// (language, key) pair to a rendered message. A Catalog is immutable after
// construction and safe for concurrent use.
type Catalog struct {
	messages      map[string]map[string]string
	langs         []string
	matcher       language.Matcher
	defaultLang   string
	fallbackToKey bool
	logger        *slog.Logger
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithDefaultLanguage sets the language used when the requested one has no
// table, and the table consulted when a key is missing elsewhere.
func WithDefaultLanguage(lang string) Option {
	return func(c *Catalog) {
		c.defaultLang = lang
	}
}

// WithLogger logs missing keys and unknown languages through the given
// slog logger. By default misses are silent.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Catalog) {
		c.logger = logger
	}
}

// WithoutKeyFallback makes Format return an empty string instead of the
// key when no template is found.
func WithoutKeyFallback() Option {
	return func(c *Catalog) {
		c.fallbackToKey = false
	}
}

// New builds a Catalog from language code -> key -> template tables.
func New(messages map[string]map[string]string, opts ...Option) (*Catalog, error) {
	c := &Catalog{
		messages:      messages,
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}

	if len(messages) == 0 {
		return nil, fmt.Errorf("catalog: no messages")
	}
	for lang, table := range messages {
		if lang == "" {
			return nil, fmt.Errorf("catalog: empty language code")
		}
		if table == nil {
			return nil, fmt.Errorf("catalog: nil message table for language %q", lang)
		}
	}

	// The default language leads the matcher so unmatched requests land on
	// its table.
	langs := make([]string, 0, len(messages))
	if _, ok := messages[c.defaultLang]; ok {
		langs = append(langs, c.defaultLang)
	}
	for lang := range messages {
		if lang != c.defaultLang {
			langs = append(langs, lang)
		}
	}

	tags := make([]language.Tag, 0, len(langs))
	for _, lang := range langs {
		tag, err := language.Parse(lang)
		if err != nil {
			return nil, fmt.Errorf("catalog: invalid language code %q: %w", lang, err)
		}
		tags = append(tags, tag)
	}

	c.langs = langs
	c.matcher = language.NewMatcher(tags)
	return c, nil
}

// LoadYAML builds a Catalog from a YAML document of the form:
//
//	en:
//	  validation.required: "field is required"
//	uk:
//	  validation.required: "поле обов'язкове"
func LoadYAML(r io.Reader, opts ...Option) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("catalog: read yaml: %w", err)
	}
	messages, err := parseYAML(data)
	if err != nil {
		return nil, err
	}
	return New(messages, opts...)
}

// Languages returns the catalog's language codes, default language first.
func (c *Catalog) Languages() []string {
	return c.langs
}

// Format renders the template for key in the best-matching language.
func (c *Catalog) Format(lang, key string, args map[string]any) string {
	table := c.table(lang)

	tmpl, ok := table[key]
	if !ok {
		if fallback, exists := c.messages[c.defaultLang]; exists {
			tmpl, ok = fallback[key]
		}
	}
	if !ok {
		c.logger.Warn("message key not found", "lang", lang, "key", key)
		if c.fallbackToKey {
			return key
		}
		return ""
	}
	return sprintfNamed(tmpl, args)
}

// Formatter returns a fieldval.Formatter bound to the given language.
func (c *Catalog) Formatter(lang string) fieldval.Formatter {
	return fieldval.FormatterFunc(func(key string, args map[string]any) string {
		return c.Format(lang, key, args)
	})
}

func (c *Catalog) table(lang string) map[string]string {
	tag, err := language.Parse(lang)
	if err != nil {
		c.logger.Warn("invalid language code", "lang", lang)
		return c.messages[c.defaultLang]
	}
	_, idx, conf := c.matcher.Match(tag)
	if conf == language.No {
		return c.messages[c.defaultLang]
	}
	return c.messages[c.langs[idx]]
}

// Regex to find named parameters in the form %{name}.
var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

func sprintfNamed(tmpl string, args map[string]any) string {
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		name := strings.TrimSuffix(strings.TrimPrefix(match, "%{"), "}")
		if val, ok := args[name]; ok {
			return fmt.Sprintf("%v", val)
		}
		return match
	})
}
