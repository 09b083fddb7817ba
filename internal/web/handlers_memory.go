// ABOUTME: Web handlers for memory entry pages
// ABOUTME: Entry CRUD, tags, document links, and the relation graph
package web

import (
	"fmt"
	"net/http"

	"github.com/harper/projectkb/internal/models"
)

func (s *Server) listAllMemoryEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := s.storage.ListAllMemoryEntries(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	if entries == nil {
		entries = []models.MemoryEntry{}
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"memory_entries": entries})
}

func (s *Server) createMemoryEntry(w http.ResponseWriter, r *http.Request) {
	projectID, ok := urlID(r, "projectID")
	if !ok {
		respondError(w, &models.ValidationError{Reason: "invalid project id"})
		return
	}

	entry, err := s.storage.CreateMemoryEntry(r.Context(), projectID,
		r.FormValue("title"), r.FormValue("type"), r.FormValue("content"))
	if err != nil {
		respondError(w, err)
		return
	}
	redirect(w, r, fmt.Sprintf("/memory/%d", entry.ID))
}

func (s *Server) getMemoryEntry(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "entryID")
	if !ok {
		respondError(w, &models.ValidationError{Reason: "invalid entry id"})
		return
	}

	entry, err := s.storage.GetMemoryEntry(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	tags, err := s.storage.ListTagsForEntry(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	documents, err := s.storage.ListDocumentsForEntry(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	related, err := s.storage.ListRelatedEntries(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	if tags == nil {
		tags = []string{}
	}
	if documents == nil {
		documents = []models.Document{}
	}
	if related == nil {
		related = []models.RelatedEntry{}
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"entry":     entry,
		"tags":      tags,
		"documents": documents,
		"related":   related,
	})
}

func (s *Server) updateMemoryEntry(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "entryID")
	if !ok {
		respondError(w, &models.ValidationError{Reason: "invalid entry id"})
		return
	}
	if err := r.ParseForm(); err != nil {
		respondError(w, &models.ValidationError{Reason: "malformed form"})
		return
	}

	upd := models.EntryUpdate{
		Title:   formString(r, "title"),
		Type:    formString(r, "type"),
		Content: formString(r, "content"),
	}
	if _, err := s.storage.UpdateMemoryEntry(r.Context(), id, upd); err != nil {
		respondError(w, err)
		return
	}
	redirect(w, r, fmt.Sprintf("/memory/%d", id))
}

func (s *Server) deleteMemoryEntry(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "entryID")
	if !ok {
		respondError(w, &models.ValidationError{Reason: "invalid entry id"})
		return
	}

	projectID, err := s.storage.DeleteMemoryEntry(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	redirect(w, r, fmt.Sprintf("/projects/%d", projectID))
}

func (s *Server) addEntryTag(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "entryID")
	if !ok {
		respondError(w, &models.ValidationError{Reason: "invalid entry id"})
		return
	}
	if err := s.storage.AddTagToEntry(r.Context(), id, r.FormValue("tag")); err != nil {
		respondError(w, err)
		return
	}
	redirect(w, r, fmt.Sprintf("/memory/%d", id))
}

func (s *Server) removeEntryTag(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "entryID")
	if !ok {
		respondError(w, &models.ValidationError{Reason: "invalid entry id"})
		return
	}
	if err := s.storage.RemoveTagFromEntry(r.Context(), id, r.FormValue("tag")); err != nil {
		respondError(w, err)
		return
	}
	redirect(w, r, fmt.Sprintf("/memory/%d", id))
}

func (s *Server) linkEntryDocument(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "entryID")
	if !ok {
		respondError(w, &models.ValidationError{Reason: "invalid entry id"})
		return
	}
	documentID, ok := formID(r, "document_id")
	if !ok {
		respondError(w, &models.ValidationError{Reason: "invalid document id"})
		return
	}
	if err := s.storage.LinkEntryToDocument(r.Context(), id, documentID); err != nil {
		respondError(w, err)
		return
	}
	redirect(w, r, fmt.Sprintf("/memory/%d", id))
}

func (s *Server) unlinkEntryDocument(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "entryID")
	if !ok {
		respondError(w, &models.ValidationError{Reason: "invalid entry id"})
		return
	}
	documentID, ok := formID(r, "document_id")
	if !ok {
		respondError(w, &models.ValidationError{Reason: "invalid document id"})
		return
	}
	if err := s.storage.UnlinkEntryFromDocument(r.Context(), id, documentID); err != nil {
		respondError(w, err)
		return
	}
	redirect(w, r, fmt.Sprintf("/memory/%d", id))
}

func (s *Server) linkEntries(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "entryID")
	if !ok {
		respondError(w, &models.ValidationError{Reason: "invalid entry id"})
		return
	}
	targetID, ok := formID(r, "target_id")
	if !ok {
		respondError(w, &models.ValidationError{Reason: "invalid target id"})
		return
	}
	relationType := r.FormValue("relation_type")
	if relationType == "" {
		relationType = "related"
	}

	if _, err := s.storage.LinkEntries(r.Context(), id, targetID, relationType); err != nil {
		respondError(w, err)
		return
	}
	redirect(w, r, fmt.Sprintf("/memory/%d", id))
}

// unlinkEntries removes a relation by id. The relation names both ends,
// so the redirect goes to the relation's source entry.
func (s *Server) unlinkEntries(w http.ResponseWriter, r *http.Request) {
	relationID, ok := urlID(r, "relationID")
	if !ok {
		respondError(w, &models.ValidationError{Reason: "invalid relation id"})
		return
	}

	sourceID, err := s.storage.UnlinkEntries(r.Context(), relationID)
	if err != nil {
		respondError(w, err)
		return
	}
	redirect(w, r, fmt.Sprintf("/memory/%d", sourceID))
}
