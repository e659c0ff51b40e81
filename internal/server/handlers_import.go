package server

import (
	"io"
	"net/http"

	"github.com/cvera/cvbuilder/internal/importer"
)

// maxImportBody caps imported profile payloads at 2 MB.
const maxImportBody = 2 << 20

// handleImport normalizes an external profile payload into canonical
// cv_data. The payload may be a bare object, an array whose first element is
// the profile, or an object wrapped under a data key; field names vary by
// provider. Normalization never fails: unusable payloads produce an empty
// CV with placeholder skills and languages.
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxImportBody+1))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read request body: "+err.Error())
		return
	}
	if len(body) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "Request body is required")
		return
	}
	if len(body) > maxImportBody {
		s.errorResponse(w, http.StatusRequestEntityTooLarge, "Profile payload exceeds 2MB limit")
		return
	}

	cv := importer.NormalizeJSON(body, s.importerCfg)
	s.dataResponse(w, http.StatusOK, cv)
}
