package api

import (
	"log/slog"
	"net/http"

	"github.com/lmercier/pokecard-api/internal/api/shared"
	"github.com/lmercier/pokecard-api/internal/platform/logger"
	"github.com/lmercier/pokecard-api/internal/store"
)

// TypeHandler handles the read-only type lookup endpoint.
type TypeHandler struct {
	typeStore store.TypeStore
	logger    *slog.Logger
}

// NewTypeHandler creates a new TypeHandler with the given dependencies.
func NewTypeHandler(typeStore store.TypeStore, logger *slog.Logger) *TypeHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &TypeHandler{
		typeStore: typeStore,
		logger:    logger.With(slog.String("component", "type_handler")),
	}
}

// ListTypes handles GET /types requests. Types are managed by seed data
// and card creation; this endpoint only exposes them for pickers.
func (h *TypeHandler) ListTypes(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	types, err := h.typeStore.List(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to list types", err)
		return
	}

	log.Debug("listed types", slog.Int("count", len(types)))
	shared.RespondWithJSON(w, r, http.StatusOK, typesToResponse(types))
}
