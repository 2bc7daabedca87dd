package store

import (
	"context"
	"database/sql"

	"github.com/ahsanfayaz52/notesapi/internal/models"
)

// SQLNoteStore implements NoteStore on top of database/sql. The queries
// use ? placeholders and run unchanged against both the SQLite and MySQL
// schemas created by internal/db.
type SQLNoteStore struct {
	db *sql.DB
}

func NewSQLNoteStore(db *sql.DB) *SQLNoteStore {
	return &SQLNoteStore{db: db}
}

const noteColumns = "id, user_id, title, text, completed, created_at, updated_at"

func scanNote(row interface{ Scan(...interface{}) error }) (*models.Note, error) {
	var n models.Note
	err := row.Scan(&n.ID, &n.UserID, &n.Title, &n.Text, &n.Completed, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (s *SQLNoteStore) FindAll(ctx context.Context) ([]models.Note, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+noteColumns+" FROM notes ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []models.Note
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		notes = append(notes, *n)
	}
	return notes, rows.Err()
}

func (s *SQLNoteStore) FindByID(ctx context.Context, id int64) (*models.Note, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+noteColumns+" FROM notes WHERE id = ?", id)
	n, err := scanNote(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return n, err
}

func (s *SQLNoteStore) FindByTitle(ctx context.Context, title string) (*models.Note, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+noteColumns+" FROM notes WHERE title = ?", title)
	n, err := scanNote(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return n, err
}

func (s *SQLNoteStore) Create(ctx context.Context, fields NoteFields) (*models.Note, error) {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO notes (user_id, title, text) VALUES (?, ?, ?)",
		fields.UserID, fields.Title, fields.Text)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return s.FindByID(ctx, id)
}

func (s *SQLNoteStore) Save(ctx context.Context, id int64, fields NoteFields) (*models.Note, error) {
	_, err := s.db.ExecContext(ctx,
		"UPDATE notes SET user_id = ?, title = ?, text = ?, completed = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		fields.UserID, fields.Title, fields.Text, fields.Completed, id)
	if err != nil {
		return nil, err
	}
	return s.FindByID(ctx, id)
}

func (s *SQLNoteStore) Delete(ctx context.Context, note *models.Note) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM notes WHERE id = ?", note.ID)
	return err
}

// SQLUserDirectory implements UserDirectory over the users table.
type SQLUserDirectory struct {
	db *sql.DB
}

func NewSQLUserDirectory(db *sql.DB) *SQLUserDirectory {
	return &SQLUserDirectory{db: db}
}

func (d *SQLUserDirectory) FindByID(ctx context.Context, id int64) (*models.User, error) {
	var u models.User
	err := d.db.QueryRowContext(ctx,
		"SELECT id, username, password, created_at FROM users WHERE id = ?", id).
		Scan(&u.ID, &u.Username, &u.Password, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
