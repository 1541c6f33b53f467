// Package catalog provides a language-aware message catalog implementing
// the fieldval.Formatter contract. Catalogs map a language code to a table
// of message templates keyed by check kind, with %{name} placeholder
// substitution; they can be built from an in-memory map or loaded from
// YAML.
//
// Requested languages are matched against the available tables using BCP 47
// matching (golang.org/x/text/language), so "en-US" resolves to an "en"
// table. A missing key falls back to the default language's table and
// finally to the key itself, optionally logging the miss through log/slog.
//
//	cat, err := catalog.LoadYAML(file,
//	    catalog.WithDefaultLanguage("en"),
//	    catalog.WithLogger(logger),
//	)
//	v := fieldval.New(fieldval.WithFormatter(cat.Formatter("uk")))
package catalog
