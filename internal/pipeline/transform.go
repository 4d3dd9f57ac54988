package pipeline

import (
	"slices"
	"strings"
)

// Transform computes new text from old. Transforms are opaque to provenance
// tracking: every input character is related to every output character.
type Transform func(string) string

var transforms = map[string]Transform{
	"identity":     func(s string) string { return s },
	"reverse":      Reverse,
	"strip-vowels": StripVowels,
	"upper":        strings.ToUpper,
}

// LookupTransform returns the transform registered under name.
func LookupTransform(name string) (Transform, bool) {
	f, ok := transforms[name]
	return f, ok
}

// TransformNames returns the registered transform names in sorted order.
func TransformNames() []string {
	names := make([]string, 0, len(transforms))
	for name := range transforms {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Reverse reverses s character by character.
func Reverse(s string) string {
	r := []rune(s)
	slices.Reverse(r)
	return string(r)
}

// StripVowels drops the letters aeiouy in either case.
func StripVowels(s string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune("aeiouyAEIOUY", r) {
			return -1
		}
		return r
	}, s)
}
