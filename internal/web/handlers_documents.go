// ABOUTME: Web handlers for document pages
// ABOUTME: Document CRUD, version history, and document tags
package web

import (
	"fmt"
	"net/http"

	"github.com/harper/projectkb/internal/models"
)

func (s *Server) listAllDocuments(w http.ResponseWriter, r *http.Request) {
	documents, err := s.storage.ListAllDocuments(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	if documents == nil {
		documents = []models.Document{}
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"documents": documents})
}

func (s *Server) createDocument(w http.ResponseWriter, r *http.Request) {
	projectID, ok := urlID(r, "projectID")
	if !ok {
		respondError(w, &models.ValidationError{Reason: "invalid project id"})
		return
	}

	doc, err := s.storage.CreateDocument(r.Context(), projectID,
		r.FormValue("name"), r.FormValue("path"), r.FormValue("type"),
		r.FormValue("version"), r.FormValue("content"))
	if err != nil {
		respondError(w, err)
		return
	}
	redirect(w, r, fmt.Sprintf("/documents/%d", doc.ID))
}

func (s *Server) getDocument(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "documentID")
	if !ok {
		respondError(w, &models.ValidationError{Reason: "invalid document id"})
		return
	}

	doc, err := s.storage.GetDocument(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	versions, err := s.storage.ListDocumentVersions(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	tags, err := s.storage.ListTagsForDocument(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	if versions == nil {
		versions = []models.DocumentVersion{}
	}
	if tags == nil {
		tags = []string{}
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"document": doc,
		"versions": versions,
		"tags":     tags,
	})
}

func (s *Server) updateDocument(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "documentID")
	if !ok {
		respondError(w, &models.ValidationError{Reason: "invalid document id"})
		return
	}
	if err := r.ParseForm(); err != nil {
		respondError(w, &models.ValidationError{Reason: "malformed form"})
		return
	}

	upd := models.DocumentUpdate{
		Name: formString(r, "name"),
		Path: formString(r, "path"),
		Type: formString(r, "type"),
	}
	if _, err := s.storage.UpdateDocumentMeta(r.Context(), id, upd); err != nil {
		respondError(w, err)
		return
	}
	redirect(w, r, fmt.Sprintf("/documents/%d", id))
}

func (s *Server) deleteDocument(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "documentID")
	if !ok {
		respondError(w, &models.ValidationError{Reason: "invalid document id"})
		return
	}

	projectID, err := s.storage.DeleteDocument(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	redirect(w, r, fmt.Sprintf("/projects/%d", projectID))
}

func (s *Server) addDocumentVersion(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "documentID")
	if !ok {
		respondError(w, &models.ValidationError{Reason: "invalid document id"})
		return
	}

	if _, _, err := s.storage.AddDocumentVersion(r.Context(), id,
		r.FormValue("version"), r.FormValue("content")); err != nil {
		respondError(w, err)
		return
	}
	redirect(w, r, fmt.Sprintf("/documents/%d", id))
}

func (s *Server) getDocumentVersion(w http.ResponseWriter, r *http.Request) {
	versionID, ok := urlID(r, "versionID")
	if !ok {
		respondError(w, &models.ValidationError{Reason: "invalid version id"})
		return
	}

	ver, err := s.storage.GetDocumentVersion(r.Context(), versionID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, ver)
}

func (s *Server) addDocumentTag(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "documentID")
	if !ok {
		respondError(w, &models.ValidationError{Reason: "invalid document id"})
		return
	}
	if err := s.storage.AddTagToDocument(r.Context(), id, r.FormValue("tag")); err != nil {
		respondError(w, err)
		return
	}
	redirect(w, r, fmt.Sprintf("/documents/%d", id))
}

func (s *Server) removeDocumentTag(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "documentID")
	if !ok {
		respondError(w, &models.ValidationError{Reason: "invalid document id"})
		return
	}
	if err := s.storage.RemoveTagFromDocument(r.Context(), id, r.FormValue("tag")); err != nil {
		respondError(w, err)
		return
	}
	redirect(w, r, fmt.Sprintf("/documents/%d", id))
}
