package utils

import "github.com/gosimple/slug"

// Slugify derives the URL-safe slug for a community name. The derivation is
// deterministic: equal names always produce equal slugs.
func Slugify(name string) string {
	return slug.Make(name)
}
