package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"

	"github.com/ahsanfayaz52/notesapi/internal/auth"
	"golang.org/x/crypto/bcrypt"
)

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func RegisterHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var creds credentials
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
			respondMessage(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if creds.Username == "" || creds.Password == "" {
			respondMessage(w, http.StatusBadRequest, "Username and password are required")
			return
		}

		// hash password
		hashedPass, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
		if err != nil {
			respondMessage(w, http.StatusInternalServerError, "Error creating user")
			return
		}

		_, err = db.Exec("INSERT INTO users (username, password) VALUES (?, ?)", creds.Username, string(hashedPass))
		if err != nil {
			respondMessage(w, http.StatusBadRequest, "Username already registered")
			return
		}

		respondMessage(w, http.StatusCreated, "New user "+creds.Username+" created")
	}
}

func LoginHandler(db *sql.DB, jwtService *auth.JWTService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var creds credentials
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
			respondMessage(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		var userID int64
		var hashed string
		row := db.QueryRow("SELECT id, password FROM users WHERE username=?", creds.Username)
		if err := row.Scan(&userID, &hashed); err != nil {
			respondMessage(w, http.StatusUnauthorized, "Invalid username or password")
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(creds.Password)); err != nil {
			respondMessage(w, http.StatusUnauthorized, "Invalid username or password")
			return
		}

		token, err := jwtService.GenerateToken(userID)
		if err != nil {
			respondMessage(w, http.StatusInternalServerError, "Failed to generate token")
			return
		}

		respondJSON(w, http.StatusOK, map[string]string{"token": token})
	}
}
