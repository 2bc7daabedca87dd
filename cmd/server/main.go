package main

import (
	"database/sql"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"github.com/ahsanfayaz52/notesapi/internal/auth"
	"github.com/ahsanfayaz52/notesapi/internal/config"
	"github.com/ahsanfayaz52/notesapi/internal/db"
	"github.com/ahsanfayaz52/notesapi/internal/handlers"
	"github.com/ahsanfayaz52/notesapi/internal/notes"
	"github.com/ahsanfayaz52/notesapi/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg := config.LoadConfig()

	var dbConn *sql.DB
	switch cfg.DBDriver {
	case "mysql":
		dbConn = db.InitMySQL(cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBName)
	default:
		dbConn = db.InitSQLite(cfg.DatabasePath)
	}
	defer dbConn.Close()

	jwtService := auth.NewJWTService(cfg.JWTSecret)

	noteStore := store.NewSQLNoteStore(dbConn)
	userDirectory := store.NewSQLUserDirectory(dbConn)
	noteService := notes.NewService(noteStore, userDirectory)

	r := mux.NewRouter()

	r.HandleFunc("/auth/register", handlers.RegisterHandler(dbConn)).Methods("POST")
	r.HandleFunc("/auth/login", handlers.LoginHandler(dbConn, jwtService)).Methods("POST")

	// Authenticated routes
	s := r.PathPrefix("/notes").Subrouter()
	s.Use(auth.JWTMiddleware(jwtService))

	s.HandleFunc("", handlers.ListNotesHandler(noteService)).Methods("GET")
	s.HandleFunc("", handlers.CreateNoteHandler(noteService)).Methods("POST")
	s.HandleFunc("", handlers.UpdateNoteHandler(noteService)).Methods("PATCH")
	s.HandleFunc("", handlers.DeleteNoteHandler(noteService)).Methods("DELETE")

	log.Printf("Starting server on port %s...", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal(err)
	}
}
