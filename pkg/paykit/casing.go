package paykit

import (
	"sort"
	"strings"
	"unicode"
)

// SnakeCaseKey converts a camelCase key to snake_case. An underscore is
// inserted before every uppercase letter that directly follows a lowercase
// letter, then the whole key is lowercased ("productGroupId" becomes
// "product_group_id"). Keys that are already snake_case come back unchanged.
func SnakeCaseKey(key string) string {
	var builder strings.Builder

	builder.Grow(len(key) + 4)

	prevLower := false

	for _, r := range key {
		if prevLower && unicode.IsUpper(r) {
			builder.WriteByte('_')
		}

		builder.WriteRune(unicode.ToLower(r))

		prevLower = unicode.IsLower(r)
	}

	return builder.String()
}

// CamelCaseKey converts a snake_case key to camelCase. An underscore is
// removed only when it sits between a lowercase letter or digit and a
// lowercase letter, which is then uppercased. Leading, trailing and doubled
// underscores are kept, so camelCase keys come back unchanged.
func CamelCaseKey(key string) string {
	runes := []rune(key)

	var builder strings.Builder

	builder.Grow(len(key))

	for i := 0; i < len(runes); i++ {
		r := runes[i]

		if r == '_' && i > 0 && i+1 < len(runes) {
			prev, next := runes[i-1], runes[i+1]
			if (unicode.IsLower(prev) || unicode.IsDigit(prev)) && unicode.IsLower(next) {
				builder.WriteRune(unicode.ToUpper(next))

				i++

				continue
			}
		}

		builder.WriteRune(r)
	}

	return builder.String()
}

// TransformKeys returns a copy of value with every object key rewritten by fn.
// Maps are rebuilt key by key with their values transformed recursively,
// slices element by element. Any other value, nil included, is returned as is.
// The input is never modified.
//
// When several keys of one object map to the same key, a key already equal
// to its rewritten form wins; otherwise the lexicographically smallest
// source key does.
func TransformKeys(value any, fn func(string) string) any {
	switch typed := value.(type) {
	case nil:
		return nil
	case map[string]any:
		keys := make([]string, 0, len(typed))
		for key := range typed {
			keys = append(keys, key)
		}

		sort.Strings(keys)

		sources := make(map[string]string, len(typed))
		for _, key := range keys {
			target := fn(key)

			current, taken := sources[target]
			if !taken || (key == target && current != target) {
				sources[target] = key
			}
		}

		out := make(map[string]any, len(sources))
		for target, key := range sources {
			out[target] = TransformKeys(typed[key], fn)
		}

		return out
	case []any:
		out := make([]any, len(typed))
		for i, item := range typed {
			out[i] = TransformKeys(item, fn)
		}

		return out
	default:
		return value
	}
}

// ToSnakeCase rewrites every object key in value to snake_case.
func ToSnakeCase(value any) any {
	return TransformKeys(value, SnakeCaseKey)
}

// ToCamelCase rewrites every object key in value to camelCase.
func ToCamelCase(value any) any {
	return TransformKeys(value, CamelCaseKey)
}
