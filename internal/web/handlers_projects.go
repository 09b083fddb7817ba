// ABOUTME: Web handlers for project pages
// ABOUTME: Project CRUD plus activation, all redirecting back to the project list or detail
package web

import (
	"fmt"
	"net/http"

	"github.com/harper/projectkb/internal/models"
)

// dashboard is the landing page: the active project (null when none)
// and entity counts across all projects.
func (s *Server) dashboard(w http.ResponseWriter, r *http.Request) {
	active, err := s.storage.GetActiveProject(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	projects, err := s.storage.ListProjects(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	documents, err := s.storage.ListAllDocuments(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	entries, err := s.storage.ListAllMemoryEntries(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"active_project": active,
		"counts": map[string]int{
			"projects":       len(projects),
			"documents":      len(documents),
			"memory_entries": len(entries),
		},
	})
}

func (s *Server) listProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := s.storage.ListProjects(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	if projects == nil {
		projects = []models.Project{}
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"projects": projects})
}

func (s *Server) createProject(w http.ResponseWriter, r *http.Request) {
	project, err := s.storage.CreateProject(r.Context(),
		r.FormValue("name"), r.FormValue("path"), r.FormValue("description"))
	if err != nil {
		respondError(w, err)
		return
	}
	redirect(w, r, fmt.Sprintf("/projects/%d", project.ID))
}

func (s *Server) getProject(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "projectID")
	if !ok {
		respondError(w, &models.ValidationError{Reason: "invalid project id"})
		return
	}

	project, err := s.storage.GetProject(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	documents, err := s.storage.ListDocuments(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	entries, err := s.storage.ListMemoryEntries(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	if documents == nil {
		documents = []models.Document{}
	}
	if entries == nil {
		entries = []models.MemoryEntry{}
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"project":        project,
		"documents":      documents,
		"memory_entries": entries,
	})
}

// formString mirrors the optional-field semantics of the update stores:
// an absent form field leaves the value untouched.
func formString(r *http.Request, key string) *string {
	if !r.Form.Has(key) {
		return nil
	}
	v := r.FormValue(key)
	return &v
}

func (s *Server) updateProject(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "projectID")
	if !ok {
		respondError(w, &models.ValidationError{Reason: "invalid project id"})
		return
	}
	if err := r.ParseForm(); err != nil {
		respondError(w, &models.ValidationError{Reason: "malformed form"})
		return
	}

	upd := models.ProjectUpdate{
		Name:        formString(r, "name"),
		Description: formString(r, "description"),
		Path:        formString(r, "path"),
	}
	if _, err := s.storage.UpdateProject(r.Context(), id, upd); err != nil {
		respondError(w, err)
		return
	}
	redirect(w, r, fmt.Sprintf("/projects/%d", id))
}

func (s *Server) deleteProject(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "projectID")
	if !ok {
		respondError(w, &models.ValidationError{Reason: "invalid project id"})
		return
	}
	if err := s.storage.DeleteProject(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	redirect(w, r, "/projects")
}

func (s *Server) activateProject(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "projectID")
	if !ok {
		respondError(w, &models.ValidationError{Reason: "invalid project id"})
		return
	}
	if _, err := s.storage.SetActiveProject(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	redirect(w, r, "/projects")
}
