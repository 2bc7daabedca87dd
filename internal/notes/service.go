package notes

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/ahsanfayaz52/notesapi/internal/models"
	"github.com/ahsanfayaz52/notesapi/internal/store"
)

// EnrichedNote is a note projected together with its owner's username.
// Username is empty when the owning user has no directory entry; an
// unknown owner does not fail the listing.
type EnrichedNote struct {
	Username string `json:"username"`
	models.Note
}

// CreateInput carries the caller-supplied fields for a new note. Completed
// is not accepted here; new notes always start incomplete.
type CreateInput struct {
	UserID int64
	Title  string
	Text   string
}

// UpdateInput replaces every field of an existing note. Completed is a
// pointer so a missing value can be told apart from an explicit false.
type UpdateInput struct {
	ID        int64
	UserID    int64
	Title     string
	Text      string
	Completed *bool
}

// Service implements the note management logic: validation, the global
// title-uniqueness invariant, and owner-username enrichment. It holds no
// state between calls.
type Service struct {
	notes store.NoteStore
	users store.UserDirectory
}

func NewService(notes store.NoteStore, users store.UserDirectory) *Service {
	return &Service{notes: notes, users: users}
}

// ListAll returns every stored note enriched with its owner's username,
// in the store's listing order. Username lookups fan out concurrently and
// are joined back by index, so completion order never reorders the result.
// An empty store is reported as ErrNotFound.
func (s *Service) ListAll(ctx context.Context) ([]EnrichedNote, error) {
	all, err := s.notes.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, fmt.Errorf("%w: no notes found", ErrNotFound)
	}

	enriched := make([]EnrichedNote, len(all))
	g, ctx := errgroup.WithContext(ctx)
	for i, n := range all {
		i, n := i, n
		enriched[i].Note = n
		g.Go(func() error {
			user, err := s.users.FindByID(ctx, n.UserID)
			if err != nil {
				return err
			}
			if user != nil {
				enriched[i].Username = user.Username
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return enriched, nil
}

// Create validates the input, enforces the global duplicate-title
// invariant and stores the note. Returns the stored form.
func (s *Service) Create(ctx context.Context, in CreateInput) (*models.Note, error) {
	if in.UserID == 0 || in.Title == "" || in.Text == "" {
		return nil, ErrInvalidInput
	}

	duplicate, err := s.notes.FindByTitle(ctx, in.Title)
	if err != nil {
		return nil, err
	}
	if duplicate != nil {
		return nil, ErrDuplicateTitle
	}

	note, err := s.notes.Create(ctx, store.NoteFields{
		UserID: in.UserID,
		Title:  in.Title,
		Text:   in.Text,
	})
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, fmt.Errorf("%w: invalid note data", ErrInvalidInput)
	}
	return note, nil
}

// Update replaces all fields of an existing note. The duplicate-title
// check spans every owner but skips the note being updated, so renaming a
// note to its own current title is allowed.
func (s *Service) Update(ctx context.Context, in UpdateInput) (*models.Note, error) {
	if in.ID == 0 || in.UserID == 0 || in.Title == "" || in.Text == "" || in.Completed == nil {
		return nil, ErrInvalidInput
	}

	note, err := s.notes.FindByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, ErrNotFound
	}

	duplicate, err := s.notes.FindByTitle(ctx, in.Title)
	if err != nil {
		return nil, err
	}
	if duplicate != nil && duplicate.ID != in.ID {
		return nil, fmt.Errorf("%w: title name already exists", ErrDuplicateTitle)
	}

	return s.notes.Save(ctx, in.ID, store.NoteFields{
		UserID:    in.UserID,
		Title:     in.Title,
		Text:      in.Text,
		Completed: *in.Completed,
	})
}

// Delete removes a note permanently and returns its last stored form so
// callers can reference the deleted title.
func (s *Service) Delete(ctx context.Context, id int64) (*models.Note, error) {
	if id == 0 {
		return nil, fmt.Errorf("%w: note ID is required", ErrInvalidInput)
	}

	note, err := s.notes.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, ErrNotFound
	}

	if err := s.notes.Delete(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}
