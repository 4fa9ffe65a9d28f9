package http

import (
	"encoding/json"
	"net/http"

	"github.com/ndanilov/shelf-viewer/internal/logger"
	"github.com/ndanilov/shelf-viewer/internal/utils"
	"github.com/ndanilov/shelf-viewer/models"
)

// documents serves POST /api/database/ and lists every cached document of the
// requested collection.
func (h *Handler) documents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var params models.DocumentsRequest
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return
	}

	documents, err := h.services.LibraryService.ListDocuments(ctx, models.Collection(params.DB))
	if err != nil {
		log.Err(err).Str("collection", params.DB).Msg("document listing failed")
		h.writeError(w, err)
		return
	}

	if documents == nil {
		documents = []models.Document{}
	}

	if _, err = utils.WriteJSON(w, documents, http.StatusOK); err != nil {
		log.Err(err).Msg("writing documents failed")
	}
}

// updateDatabase serves POST /api/database/update. It triggers the
// collection's scraper for the requested page and stores the result.
func (h *Handler) updateDatabase(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var params models.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return
	}

	if _, err := h.services.LibraryService.Refresh(ctx, models.Collection(params.DB), params.Page); err != nil {
		log.Err(err).Str("collection", params.DB).Str("page", params.Page).Msg("collection refresh failed")
		h.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
