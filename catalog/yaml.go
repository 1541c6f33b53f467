package catalog

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// parseYAML decodes a two-level YAML mapping of language code to message
// table. Non-string template values are rejected rather than coerced.
func parseYAML(data []byte) (map[string]map[string]string, error) {
	var raw map[string]map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("catalog: parse yaml: %w", err)
	}

	messages := make(map[string]map[string]string, len(raw))
	for lang, table := range raw {
		msgs := make(map[string]string, len(table))
		for key, val := range table {
			s, ok := val.(string)
			if !ok {
				return nil, fmt.Errorf("catalog: language %q key %q: template must be a string, got %T", lang, key, val)
			}
			msgs[key] = s
		}
		messages[lang] = msgs
	}
	return messages, nil
}
