package game

import "strings"

// Difficulty is a small rating, conventionally 0 to 5, used to sort charts.
type Difficulty int

const MaxStars = 5

// Stars renders the rating as filled and empty stars
func (d Difficulty) Stars() string {
	n := int(d)
	if n < 0 {
		n = 0
	}
	if n > MaxStars {
		return strings.Repeat("★", n)
	}
	return strings.Repeat("★", n) + strings.Repeat("☆", MaxStars-n)
}
