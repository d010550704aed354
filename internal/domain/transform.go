package domain

import "strings"

// TransformKind represents one of the fixed text transformations offered by the service.
// The string value is the label the service stores in history items.
type TransformKind string

const (
	// TransformKindClean - Trim, fix spaces, collapse newlines
	TransformKindClean TransformKind = "clean"
	// TransformKindSlug - URL-friendly slug
	TransformKindSlug TransformKind = "slug"
	// TransformKindCamel - camelCase
	TransformKindCamel TransformKind = "camel"
	// TransformKindSnake - snake_case
	TransformKindSnake TransformKind = "snake"
	// TransformKindTitle - Title Case
	TransformKindTitle TransformKind = "title"
	// TransformKindSpell - spell check
	TransformKindSpell TransformKind = "spell"
)

type transformSpec struct {
	path        string
	label       string
	description string
}

var transformSpecs = map[TransformKind]transformSpec{
	TransformKindClean: {path: "/api/clean", label: "Clean Text", description: "Trim, fix spaces, collapse newlines"},
	TransformKindSlug:  {path: "/api/slug", label: "Slugify", description: "URL-friendly slug"},
	TransformKindCamel: {path: "/api/case/camel", label: "Camel Case", description: "Convert to camelCase"},
	TransformKindSnake: {path: "/api/case/snake", label: "Snake Case", description: "Convert to snake_case"},
	TransformKindTitle: {path: "/api/case/title", label: "Title Case", description: "Capitalize each word"},
	TransformKindSpell: {path: "/api/spell", label: "Spell Check", description: "Correct common misspellings"},
}

// TransformKinds returns every supported kind in display order
func TransformKinds() []TransformKind {
	return []TransformKind{
		TransformKindClean,
		TransformKindSlug,
		TransformKindCamel,
		TransformKindSnake,
		TransformKindTitle,
		TransformKindSpell,
	}
}

// Valid reports whether k is one of the supported kinds
func (k TransformKind) Valid() bool {
	_, ok := transformSpecs[k]
	return ok
}

// Path returns the service endpoint path for the kind, or "" for an unknown kind
func (k TransformKind) Path() string {
	return transformSpecs[k].path
}

// Label returns the human readable name of the kind
func (k TransformKind) Label() string {
	return transformSpecs[k].label
}

// Description returns a one-line explanation of what the kind does
func (k TransformKind) Description() string {
	return transformSpecs[k].description
}

// ParseTransformKind resolves a kind by its name. Aliases used by UIs
// (slugify, camelCase, snakeCase, titleCase, spellCheck) are accepted.
func ParseTransformKind(name string) (TransformKind, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	switch key {
	case "slugify":
		key = string(TransformKindSlug)
	case "camelcase", "camel_case":
		key = string(TransformKindCamel)
	case "snakecase", "snake_case":
		key = string(TransformKindSnake)
	case "titlecase", "title_case":
		key = string(TransformKindTitle)
	case "spellcheck", "spell_check":
		key = string(TransformKindSpell)
	}
	kind := TransformKind(key)
	if !kind.Valid() {
		return "", false
	}
	return kind, true
}
