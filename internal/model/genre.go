package model

import "fmt"

// Genre identifies one of the two compared corpora
type Genre string

const (
	GenreSciFi   Genre = "scifi"
	GenreRomance Genre = "romance"
)

// Genres lists all genres in stable order
var Genres = []Genre{GenreSciFi, GenreRomance}

// ParseGenre converts a string to a Genre
func ParseGenre(s string) (Genre, error) {
	switch Genre(s) {
	case GenreSciFi, GenreRomance:
		return Genre(s), nil
	default:
		return "", fmt.Errorf("unknown genre: %q (supported: scifi, romance)", s)
	}
}

func (g Genre) String() string {
	return string(g)
}

// Display returns the human-readable genre name used in reports
func (g Genre) Display() string {
	switch g {
	case GenreSciFi:
		return "Science Fiction"
	case GenreRomance:
		return "Romance"
	default:
		return string(g)
	}
}
