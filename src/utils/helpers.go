package utils

import (
	"fmt"

	"github.com/gosimple/slug"
)

// RestaurantSlug builds a unique, URL-safe slug from a restaurant name and
// a short id suffix so two branches with the same name stay distinct.
func RestaurantSlug(name, id string) string {
	s := slug.Make(name)
	if len(id) >= 8 {
		return fmt.Sprintf("%s-%s", s, id[:8])
	}
	return s
}
