package models

import "time"

type Wrap struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Kind      string    `json:"kind"`
	Year      int       `json:"year"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

// WrapWithItems is the listing shape: the wrap plus its items, always
// serialized with an items array even when empty.
type WrapWithItems struct {
	Wrap
	Items []WrapItem `json:"items"`
}

type WrapItem struct {
	ID     string    `json:"id"`
	WrapID string    `json:"wrapId"`
	Name   string    `json:"name"`
	Date   time.Time `json:"date"`
	Notes  *string   `json:"notes"`
}
