package promptcatalog

import "strings"

// Render substitutes `{{placeholder}}` tokens in template with the given
// values — plain string composition, no templating engine.
func Render(template string, values map[string]string) string {
	pairs := make([]string, 0, len(values)*2)
	for k, v := range values {
		pairs = append(pairs, "{{"+k+"}}", v)
	}
	return strings.NewReplacer(pairs...).Replace(template)
}
