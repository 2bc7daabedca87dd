package models

import "time"

type Note struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user"`
	Title     string    `json:"title"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
