package store

import (
	"context"

	"github.com/ahsanfayaz52/notesapi/internal/models"
)

// NoteFields is the full set of caller-supplied note attributes. Create
// ignores Completed (new notes always start incomplete); Save replaces
// every field of an existing note with the values given here.
type NoteFields struct {
	UserID    int64
	Title     string
	Text      string
	Completed bool
}

// NoteStore is the persistence contract the note service depends on.
// Lookups return (nil, nil) when no matching note exists; absence is not
// an error. Each call is atomic on its own, nothing more is guaranteed.
type NoteStore interface {
	FindAll(ctx context.Context) ([]models.Note, error)
	FindByID(ctx context.Context, id int64) (*models.Note, error)
	FindByTitle(ctx context.Context, title string) (*models.Note, error)
	Create(ctx context.Context, fields NoteFields) (*models.Note, error)
	Save(ctx context.Context, id int64, fields NoteFields) (*models.Note, error)
	Delete(ctx context.Context, note *models.Note) error
}

// UserDirectory resolves user ids to user records. Read-only from the
// note service's perspective; (nil, nil) means the id is unknown.
type UserDirectory interface {
	FindByID(ctx context.Context, id int64) (*models.User, error)
}
