package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/cvera/cvbuilder/internal/db"
	"github.com/cvera/cvbuilder/internal/editor"
	"github.com/cvera/cvbuilder/internal/schemas"
	"github.com/cvera/cvbuilder/internal/types"
)

// SaveCVRequest is the request body for POST /cvs and PUT /cvs/{id}.
type SaveCVRequest struct {
	UserID     string          `json:"user_id,omitempty"`
	Title      string          `json:"title" validate:"required"`
	TemplateID string          `json:"templateId" validate:"required"`
	CVData     json.RawMessage `json:"cv_data" validate:"required"`
}

// SectionOrderRequest is the request body for PUT /cvs/{id}/sections. The
// reorder autosave always carries the full section list.
type SectionOrderRequest struct {
	Sections []types.SectionRef `json:"sections" validate:"required,min=1"`
}

// loadCV fetches one record, mapping a missing record to *ErrCVNotFound so
// the caller can map it through HTTPStatus.
func (s *Server) loadCV(ctx context.Context, id uuid.UUID) (*db.CV, error) {
	record, err := s.db.GetCV(ctx, id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, &ErrCVNotFound{ID: id}
	}
	return record, nil
}

// cvError converts the storage not-found sentinel into the typed error
// HTTPStatus knows; anything else passes through unchanged.
func (s *Server) cvError(id uuid.UUID, err error) error {
	if errors.Is(err, db.ErrNotFound) {
		return &ErrCVNotFound{ID: id}
	}
	return err
}

// validateSave runs the field-level checks that must all pass before any
// save is attempted. Returns the decoded cv_data on success.
func (s *Server) validateSave(req *SaveCVRequest) (*types.CanonicalCV, []editor.FieldError) {
	var errs []editor.FieldError
	if err := s.validate.Struct(req); err != nil {
		if req.Title == "" {
			errs = append(errs, editor.FieldError{Field: "title", Message: "title is required"})
		}
		if req.TemplateID == "" {
			errs = append(errs, editor.FieldError{Field: "templateId", Message: "template is required"})
		}
		if len(req.CVData) == 0 {
			errs = append(errs, editor.FieldError{Field: "cv_data", Message: "cv_data is required"})
		}
		if len(errs) > 0 {
			return nil, errs
		}
	}

	if err := schemas.ValidateCVData(req.CVData); err != nil {
		if ve, ok := err.(*schemas.ValidationError); ok {
			for _, fe := range ve.Errors {
				errs = append(errs, editor.FieldError{Field: "cv_data." + fe.Field, Message: fe.Message})
			}
			return nil, errs
		}
		errs = append(errs, editor.FieldError{Field: "cv_data", Message: err.Error()})
		return nil, errs
	}

	var cv types.CanonicalCV
	if err := json.Unmarshal(req.CVData, &cv); err != nil {
		return nil, append(errs, editor.FieldError{Field: "cv_data", Message: "cv_data is not a valid CV"})
	}
	cv.EnsureDefaults()

	rec := &editor.Record{Title: req.Title, TemplateID: req.TemplateID, CVData: cv}
	if fieldErrs := editor.ValidateForSave(rec); len(fieldErrs) > 0 {
		return nil, append(errs, fieldErrs...)
	}
	return &cv, nil
}

// handleCreateCV creates a new CV record.
func (s *Server) handleCreateCV(w http.ResponseWriter, r *http.Request) {
	var req SaveCVRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		verr := &ErrValidation{Field: "user_id", Message: "Invalid user_id"}
		s.errorResponse(w, HTTPStatus(verr), verr.Error())
		return
	}

	cv, fieldErrs := s.validateSave(&req)
	if len(fieldErrs) > 0 {
		s.validationResponse(w, fieldErrs)
		return
	}

	encoded, err := json.Marshal(cv)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to encode cv_data: "+err.Error())
		return
	}

	id, err := s.db.CreateCV(r.Context(), userID, req.Title, req.TemplateID, encoded)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	record, err := s.db.GetCV(r.Context(), id)
	if err != nil || record == nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load created cv")
		return
	}
	s.dataResponse(w, http.StatusCreated, map[string]any{"cv": record})
}

// handleGetCV returns one CV record wrapped in the data.cv envelope.
func (s *Server) handleGetCV(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parseIDParam(w, r)
	if !ok {
		return
	}

	record, err := s.loadCV(r.Context(), id)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.dataResponse(w, http.StatusOK, map[string]any{"cv": record})
}

// handleListCVs returns the CVs of one user, without cv_data payloads.
func (s *Server) handleListCVs(w http.ResponseWriter, r *http.Request) {
	userIDStr := r.URL.Query().Get("user_id")
	if userIDStr == "" {
		verr := &ErrValidation{Field: "user_id", Message: "user_id query parameter is required"}
		s.errorResponse(w, HTTPStatus(verr), verr.Error())
		return
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		verr := &ErrValidation{Field: "user_id", Message: "Invalid user_id"}
		s.errorResponse(w, HTTPStatus(verr), verr.Error())
		return
	}

	cvs, err := s.db.ListCVs(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"cvs":   cvs,
		"count": len(cvs),
	})
}

// handleUpdateCV replaces a CV record wholesale; every save action (explicit
// save, language-change save, reorder autosave fallback) lands here.
func (s *Server) handleUpdateCV(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parseIDParam(w, r)
	if !ok {
		return
	}

	var req SaveCVRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	cv, fieldErrs := s.validateSave(&req)
	if len(fieldErrs) > 0 {
		s.validationResponse(w, fieldErrs)
		return
	}

	encoded, err := json.Marshal(cv)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to encode cv_data: "+err.Error())
		return
	}

	if err := s.db.UpdateCV(r.Context(), id, req.Title, req.TemplateID, encoded); err != nil {
		err = s.cvError(id, err)
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	record, err := s.db.GetCV(r.Context(), id)
	if err != nil || record == nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load updated cv")
		return
	}
	s.dataResponse(w, http.StatusOK, map[string]any{"cv": record})
}

// handleDeleteCV deletes a CV record.
func (s *Server) handleDeleteCV(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parseIDParam(w, r)
	if !ok {
		return
	}

	if err := s.db.DeleteCV(r.Context(), id); err != nil {
		err = s.cvError(id, err)
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// handleSaveSectionOrder persists a reordered/toggled section list. Only the
// sectionOrder key of cv_data changes.
func (s *Server) handleSaveSectionOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parseIDParam(w, r)
	if !ok {
		return
	}

	var req SectionOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "sections list is required")
		return
	}

	if err := s.db.UpdateSectionOrder(r.Context(), id, req.Sections); err != nil {
		err = s.cvError(id, err)
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"status":   "saved",
		"sections": req.Sections,
	})
}

// handleExportCV returns the canonical cv_data as a plain serializable
// object for external PDF/DOCX renderers.
func (s *Server) handleExportCV(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parseIDParam(w, r)
	if !ok {
		return
	}

	record, err := s.loadCV(r.Context(), id)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	var cv types.CanonicalCV
	if err := json.Unmarshal(record.CVData, &cv); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Stored cv_data is not decodable: "+err.Error())
		return
	}
	cv.EnsureDefaults()

	s.jsonResponse(w, http.StatusOK, &cv)
}

// parseIDParam extracts and parses the {id} path value.
func (s *Server) parseIDParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	idStr := r.PathValue("id")
	if idStr == "" {
		verr := &ErrValidation{Field: "id", Message: "CV ID is required"}
		s.errorResponse(w, HTTPStatus(verr), verr.Error())
		return uuid.Nil, false
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		verr := &ErrValidation{Field: "id", Message: "Invalid CV ID format"}
		s.errorResponse(w, HTTPStatus(verr), verr.Error())
		return uuid.Nil, false
	}
	return id, true
}

// validationResponse reports field-level validation failures. The save call
// is blocked entirely; no partial save is attempted.
func (s *Server) validationResponse(w http.ResponseWriter, errs []editor.FieldError) {
	s.jsonResponse(w, http.StatusUnprocessableEntity, map[string]any{
		"error":  "validation_failed",
		"fields": errs,
	})
}
