package dto

import "time"

type BookOutput struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Authors   []string  `json:"authors"`
	Thumbnail string    `json:"thumbnail"`
	AddedAt   time.Time `json:"addedAt"`
	Completed bool      `json:"completed"`
}

// AddInput is usually a search hit handed back unchanged.
type AddInput struct {
	ID        string
	Title     string
	Authors   []string
	Thumbnail string
}
