// ABOUTME: Web front-end router for the knowledge store
// ABOUTME: Form POSTs redirect with 303; GETs return JSON
package web

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/harper/projectkb/internal/storage"
)

// Server holds the web handlers and their shared storage.
type Server struct {
	storage *storage.Storage
}

// NewServer creates the web front-end on top of an opened store.
func NewServer(store *storage.Storage) *Server {
	return &Server{storage: store}
}

// Router configures all routes and middleware.
func (s *Server) Router() http.Handler {
	router := chi.NewRouter()

	router.Use(RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(Logger)

	router.Get("/", s.dashboard)
	router.Get("/health", s.health)

	router.Route("/projects", func(r chi.Router) {
		r.Get("/", s.listProjects)
		r.Post("/create", s.createProject)
		r.Route("/{projectID}", func(r chi.Router) {
			r.Get("/", s.getProject)
			r.Post("/update", s.updateProject)
			r.Post("/delete", s.deleteProject)
			r.Post("/activate", s.activateProject)
			r.Post("/documents/create", s.createDocument)
			r.Post("/memory/create", s.createMemoryEntry)
		})
	})

	router.Route("/documents", func(r chi.Router) {
		r.Get("/", s.listAllDocuments)
		r.Route("/{documentID}", func(r chi.Router) {
			r.Get("/", s.getDocument)
			r.Post("/update", s.updateDocument)
			r.Post("/delete", s.deleteDocument)
			r.Post("/versions/create", s.addDocumentVersion)
			r.Get("/versions/{versionID}", s.getDocumentVersion)
			r.Post("/tags/add", s.addDocumentTag)
			r.Post("/tags/remove", s.removeDocumentTag)
		})
	})

	router.Route("/memory", func(r chi.Router) {
		r.Get("/", s.listAllMemoryEntries)
		r.Route("/{entryID}", func(r chi.Router) {
			r.Get("/", s.getMemoryEntry)
			r.Post("/update", s.updateMemoryEntry)
			r.Post("/delete", s.deleteMemoryEntry)
			r.Post("/tags/add", s.addEntryTag)
			r.Post("/tags/remove", s.removeEntryTag)
			r.Post("/documents/link", s.linkEntryDocument)
			r.Post("/documents/unlink", s.unlinkEntryDocument)
			r.Post("/link", s.linkEntries)
		})
	})

	router.Post("/relations/{relationID}/unlink", s.unlinkEntries)

	return router
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// urlID parses a chi URL parameter as a positive integer id.
func urlID(r *http.Request, key string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, key), 10, 64)
	return id, err == nil && id > 0
}

// formID parses a form field as a positive integer id.
func formID(r *http.Request, key string) (int64, bool) {
	id, err := strconv.ParseInt(r.FormValue(key), 10, 64)
	return id, err == nil && id > 0
}
