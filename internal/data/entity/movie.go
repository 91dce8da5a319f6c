package entity

import (
	"github.com/google/uuid"
)

type OTTPlatform struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Logo string `json:"logo"`
}

// Movie is addressed by ImdbID everywhere outside the store; ID is the
// storage key only. ReviewIDs is the denormalized list of reviews whose
// ImdbID matches this movie, maintained by the review flows and nothing
// else.
type Movie struct {
	ID           uuid.UUID     `db:"id"`
	ImdbID       string        `db:"imdb_id"`
	Title        string        `db:"title"`
	ReleaseDate  string        `db:"release_date"`
	TrailerLink  string        `db:"trailer_link"`
	Genres       []string      `db:"genres"`
	Poster       string        `db:"poster"`
	Backdrops    []string      `db:"backdrops"`
	ReviewIDs    []string      `db:"review_ids"`
	OTTPlatforms []OTTPlatform `db:"ott_platforms"`
}
