// Package gallery implements the search filter and carousel state for the
// photo masonry view. Both are pure: the HTTP layer feeds them data and
// returns the results.
package gallery

import "strings"

// Searchable is anything the free-text gallery filter can match against.
type Searchable interface {
	SearchFields() []string
}

// Filter returns the items whose fields contain the query, case-insensitive.
// A blank query returns every item unfiltered. The match is an OR across all
// fields an item exposes.
func Filter[T Searchable](items []T, query string) []T {
	query = strings.TrimSpace(query)
	if query == "" {
		return items
	}
	query = strings.ToLower(query)

	filtered := make([]T, 0, len(items))
	for _, item := range items {
		for _, field := range item.SearchFields() {
			if strings.Contains(strings.ToLower(field), query) {
				filtered = append(filtered, item)
				break
			}
		}
	}
	return filtered
}

// Carousel tracks which image of which photo is on screen. Navigation is
// cyclic over the photo's image sequence.
type Carousel struct {
	photoID string
	length  int
	index   int
}

// Open points the carousel at a photo with the given number of images. The
// image index resets to 0 when a different photo is opened and is kept when
// the same photo is reopened.
func (c *Carousel) Open(photoID string, imageCount int) {
	if c.photoID != photoID {
		c.index = 0
	}
	c.photoID = photoID
	c.length = imageCount
}

// PhotoID returns the ID of the currently open photo.
func (c *Carousel) PhotoID() string { return c.photoID }

// Index returns the current image index.
func (c *Carousel) Index() int { return c.index }

// Next advances to the next image, wrapping from the last back to the first,
// and returns the new index.
func (c *Carousel) Next() int {
	if c.length > 0 {
		c.index = (c.index + 1) % c.length
	}
	return c.index
}

// Prev steps back to the previous image, wrapping from the first to the
// last, and returns the new index.
func (c *Carousel) Prev() int {
	if c.length > 0 {
		c.index = (c.index - 1 + c.length) % c.length
	}
	return c.index
}
