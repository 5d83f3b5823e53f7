package slug

import (
	"fmt"
	"math/rand"
	"regexp"
	"strings"
)

var (
	invalidChars = regexp.MustCompile(`[^\w\s-]`)
	separators   = regexp.MustCompile(`[\s_-]+`)
	edgeHyphens  = regexp.MustCompile(`^-+|-+$`)
)

// Make derives a lowercase, hyphenated, URL-safe slug from a display name,
// e.g. "Lord Ganesha" -> "lord-ganesha".
func Make(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = invalidChars.ReplaceAllString(s, "")
	s = separators.ReplaceAllString(s, "-")
	s = edgeHyphens.ReplaceAllString(s, "")
	return s
}

// MakeUnique appends a short random suffix to disambiguate a slug that
// collided with an existing row.
func MakeUnique(base string) string {
	return fmt.Sprintf("%s-%04d", base, rand.Intn(10000))
}
