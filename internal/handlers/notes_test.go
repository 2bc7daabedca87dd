package handlers

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahsanfayaz52/notesapi/internal/db"
	"github.com/ahsanfayaz52/notesapi/internal/notes"
	"github.com/ahsanfayaz52/notesapi/internal/store"
)

func setup(t *testing.T) (*notes.Service, *sql.DB) {
	t.Helper()
	conn := db.InitSQLite(":memory:")
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })

	svc := notes.NewService(store.NewSQLNoteStore(conn), store.NewSQLUserDirectory(conn))
	return svc, conn
}

func seedUser(t *testing.T, conn *sql.DB, username string) int64 {
	t.Helper()
	res, err := conn.Exec("INSERT INTO users (username, password) VALUES (?, ?)", username, "hash")
	require.NoError(t, err)
	id, err := res.LastInsertId()
	require.NoError(t, err)
	return id
}

func doJSON(t *testing.T, h http.HandlerFunc, method string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, "/notes", &buf)
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func message(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body["message"]
}

func TestListNotesHandler_Empty(t *testing.T) {
	svc, _ := setup(t)

	rec := doJSON(t, ListNotesHandler(svc), http.MethodGet, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "No notes found", message(t, rec))
}

func TestListNotesHandler_ReturnsEnrichedNotes(t *testing.T) {
	svc, conn := setup(t)
	alice := seedUser(t, conn, "alice")

	rec := doJSON(t, CreateNoteHandler(svc), http.MethodPost,
		map[string]interface{}{"user": alice, "title": "hello", "text": "world"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, ListNotesHandler(svc), http.MethodGet, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var listed []struct {
		Username  string `json:"username"`
		User      int64  `json:"user"`
		Title     string `json:"title"`
		Text      string `json:"text"`
		Completed bool   `json:"completed"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, "alice", listed[0].Username)
	assert.Equal(t, alice, listed[0].User)
	assert.Equal(t, "hello", listed[0].Title)
	assert.False(t, listed[0].Completed)
}

func TestCreateNoteHandler_MissingFields(t *testing.T) {
	svc, _ := setup(t)

	rec := doJSON(t, CreateNoteHandler(svc), http.MethodPost,
		map[string]interface{}{"title": "no user", "text": "x"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "All fields are required", message(t, rec))
}

func TestCreateNoteHandler_DuplicateTitle(t *testing.T) {
	svc, conn := setup(t)
	alice := seedUser(t, conn, "alice")
	bob := seedUser(t, conn, "bob")

	rec := doJSON(t, CreateNoteHandler(svc), http.MethodPost,
		map[string]interface{}{"user": alice, "title": "taken", "text": "x"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, CreateNoteHandler(svc), http.MethodPost,
		map[string]interface{}{"user": bob, "title": "taken", "text": "y"})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Note with same title already exists", message(t, rec))
}

func TestUpdateNoteHandler(t *testing.T) {
	svc, conn := setup(t)
	alice := seedUser(t, conn, "alice")

	rec := doJSON(t, CreateNoteHandler(svc), http.MethodPost,
		map[string]interface{}{"user": alice, "title": "draft", "text": "x"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, UpdateNoteHandler(svc), http.MethodPatch, map[string]interface{}{
		"id": 1, "user": alice, "title": "final", "text": "y", "completed": true,
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "final note has been updated", message(t, rec))
}

func TestUpdateNoteHandler_NotFound(t *testing.T) {
	svc, conn := setup(t)
	alice := seedUser(t, conn, "alice")

	rec := doJSON(t, UpdateNoteHandler(svc), http.MethodPatch, map[string]interface{}{
		"id": 42, "user": alice, "title": "a", "text": "x", "completed": false,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Note not found", message(t, rec))
}

func TestUpdateNoteHandler_MissingCompleted(t *testing.T) {
	svc, conn := setup(t)
	alice := seedUser(t, conn, "alice")

	rec := doJSON(t, CreateNoteHandler(svc), http.MethodPost,
		map[string]interface{}{"user": alice, "title": "a", "text": "x"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, UpdateNoteHandler(svc), http.MethodPatch, map[string]interface{}{
		"id": 1, "user": alice, "title": "a", "text": "x",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "All fields are required", message(t, rec))
}

func TestDeleteNoteHandler(t *testing.T) {
	svc, conn := setup(t)
	alice := seedUser(t, conn, "alice")

	rec := doJSON(t, CreateNoteHandler(svc), http.MethodPost,
		map[string]interface{}{"user": alice, "title": "doomed", "text": "x"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, DeleteNoteHandler(svc), http.MethodDelete, map[string]interface{}{"id": 1})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Note with title: doomed has been deleted", message(t, rec))

	// deleting again reports the note missing
	rec = doJSON(t, DeleteNoteHandler(svc), http.MethodDelete, map[string]interface{}{"id": 1})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Note not found", message(t, rec))
}

func TestDeleteNoteHandler_MissingID(t *testing.T) {
	svc, _ := setup(t)

	rec := doJSON(t, DeleteNoteHandler(svc), http.MethodDelete, map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Note ID is required", message(t, rec))
}
