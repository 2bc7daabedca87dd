package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/ahsanfayaz52/notesapi/internal/notes"
)

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("Response encode error:", err)
	}
}

func respondMessage(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"message": message})
}

// noteError maps service failures onto the wire contract. Not-found cases
// come back as 400 rather than 404, matching the original API's behavior.
func noteError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, notes.ErrDuplicateTitle):
		respondMessage(w, http.StatusConflict, "Note with same title already exists")
	case errors.Is(err, notes.ErrNotFound):
		respondMessage(w, http.StatusBadRequest, "Note not found")
	case errors.Is(err, notes.ErrInvalidInput):
		respondMessage(w, http.StatusBadRequest, "All fields are required")
	default:
		log.Println("Note service error:", err)
		respondMessage(w, http.StatusInternalServerError, "Internal server error")
	}
}

func ListNotesHandler(svc *notes.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		enriched, err := svc.ListAll(r.Context())
		if err != nil {
			if errors.Is(err, notes.ErrNotFound) {
				respondMessage(w, http.StatusBadRequest, "No notes found")
				return
			}
			noteError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, enriched)
	}
}

func CreateNoteHandler(svc *notes.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			User  int64  `json:"user"`
			Title string `json:"title"`
			Text  string `json:"text"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			respondMessage(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		note, err := svc.Create(r.Context(), notes.CreateInput{
			UserID: body.User,
			Title:  body.Title,
			Text:   body.Text,
		})
		if err != nil {
			noteError(w, err)
			return
		}

		respondMessage(w, http.StatusCreated,
			fmt.Sprintf("New note with title %s is created for user %d", note.Title, note.UserID))
	}
}

func UpdateNoteHandler(svc *notes.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			ID        int64  `json:"id"`
			User      int64  `json:"user"`
			Title     string `json:"title"`
			Text      string `json:"text"`
			Completed *bool  `json:"completed"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			respondMessage(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		note, err := svc.Update(r.Context(), notes.UpdateInput{
			ID:        body.ID,
			UserID:    body.User,
			Title:     body.Title,
			Text:      body.Text,
			Completed: body.Completed,
		})
		if err != nil {
			noteError(w, err)
			return
		}

		respondMessage(w, http.StatusOK, note.Title+" note has been updated")
	}
}

func DeleteNoteHandler(svc *notes.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			ID int64 `json:"id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			respondMessage(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		note, err := svc.Delete(r.Context(), body.ID)
		if err != nil {
			if errors.Is(err, notes.ErrInvalidInput) {
				respondMessage(w, http.StatusBadRequest, "Note ID is required")
				return
			}
			noteError(w, err)
			return
		}

		respondMessage(w, http.StatusOK,
			"Note with title: "+note.Title+" has been deleted")
	}
}
