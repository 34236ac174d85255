package components

import (
	"reflect"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// namePattern is the set of keys allowed in components.schemas.
var namePattern = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)

// ValidName reports whether name may be used as a component key.
func ValidName(name string) bool {
	return namePattern.MatchString(name)
}

// ComponentName derives a component key from a free-form title. Words are
// title-cased and joined, and characters that are not ASCII letters or
// digits are dropped:
//
//	ComponentName("user profile")  // "UserProfile"
//	ComponentName("api-client v2") // "ApiClientV2"
//	ComponentName("HTTP error")    // "HTTPError"
//
// The result is "" when s holds no usable characters.
func ComponentName(s string) string {
	// A Caser holds state and is not safe for concurrent use.
	caser := cases.Title(language.English, cases.NoLower)

	words := strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	var b strings.Builder
	for _, w := range words {
		for _, r := range caser.String(w) {
			if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}

// typeName returns the component name for a named Go type: the type name,
// with the brackets and commas of generic instantiations turned into
// underscores.
//
//	Pet                        -> "Pet"
//	Page[example.com/m.Pet]    -> "Page_example.com_m.Pet"
func typeName(t reflect.Type) string {
	return sanitizeName(t.Name())
}

// qualifiedTypeName prefixes typeName with the sanitized package path. It is
// used when two distinct types share a name.
func qualifiedTypeName(t reflect.Type) string {
	if t.PkgPath() == "" {
		return typeName(t)
	}
	return sanitizeName(t.PkgPath()) + "_" + typeName(t)
}

// sanitizeName maps characters not allowed in component keys to underscores,
// collapsing runs and trimming them from the ends.
func sanitizeName(name string) string {
	name = strings.Map(func(r rune) rune {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			return r
		case r == '.' || r == '-' || r == '_':
			return r
		default:
			return '_'
		}
	}, name)
	for strings.Contains(name, "__") {
		name = strings.ReplaceAll(name, "__", "_")
	}
	return strings.Trim(name, "_")
}
