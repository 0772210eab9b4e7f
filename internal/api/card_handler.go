package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/lmercier/pokecard-api/internal/api/shared"
	"github.com/lmercier/pokecard-api/internal/domain"
	"github.com/lmercier/pokecard-api/internal/platform/logger"
	"github.com/lmercier/pokecard-api/internal/store"
)

// CardHandler handles card catalog HTTP requests. It owns the
// uniqueness and type-resolution rules for card writes.
type CardHandler struct {
	cardStore store.CardStore
	typeStore store.TypeStore
	validator *validator.Validate
	logger    *slog.Logger
}

// NewCardHandler creates a new CardHandler with the given dependencies.
func NewCardHandler(cardStore store.CardStore, typeStore store.TypeStore, logger *slog.Logger) *CardHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &CardHandler{
		cardStore: cardStore,
		typeStore: typeStore,
		validator: validator.New(),
		logger:    logger.With(slog.String("component", "card_handler")),
	}
}

// ListCards handles GET /pokemons-cards requests.
// It returns every card in the catalog with its type embedded.
func (h *CardHandler) ListCards(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	cards, err := h.cardStore.List(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to list Pokemon cards", err)
		return
	}

	log.Debug("listed cards", slog.Int("count", len(cards)))
	shared.RespondWithJSON(w, r, http.StatusOK, cardsToResponse(cards))
}

// GetCard handles GET /pokemons-cards/{id} requests.
func (h *CardHandler) GetCard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathID(r, "id")
	if err != nil {
		log.Warn("invalid card ID in path", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid card ID")
		return
	}

	card, err := h.cardStore.GetByID(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, cardToResponse(card))
}

// CreateCard handles POST /pokemons-cards requests.
//
// The type name is resolved with get-or-create semantics: an unknown
// type is created as a side effect of the card creation. The duplicate
// pre-check gives a friendly message on the common path; the unique
// indexes remain authoritative when two creates race.
func (h *CardHandler) CreateCard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateCardRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		log.Warn("card create validation failed", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "All required fields must be provided")
		return
	}

	cardType, err := h.typeStore.GetOrCreateByName(r.Context(), req.Type)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to resolve card type", err)
		return
	}

	// Fast-path duplicate check for a friendly message.
	if _, err := h.cardStore.FindConflicting(r.Context(), req.Name, req.PokedexID, 0); err == nil {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			GetSafeErrorMessage(store.ErrCardExists))
		return
	} else if !errors.Is(err, store.ErrCardNotFound) {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to create Pokemon card", err)
		return
	}

	card, err := domain.NewPokemonCard(req.Name, req.PokedexID, cardType.ID, req.LifePoints)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	card.Size = req.Size
	card.Weight = req.Weight
	card.ImageURL = req.ImageURL

	if err := h.cardStore.Create(r.Context(), card); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}
	card.Type = cardType

	log.Info("card created",
		slog.Int64("card_id", card.ID),
		slog.String("card_name", card.Name))
	shared.RespondWithJSON(w, r, http.StatusCreated, cardToResponse(card))
}

// UpdateCard handles PATCH /pokemons-cards/{id} requests.
//
// Partial semantics: only supplied fields change. Unlike create, an
// unknown type name is rejected here rather than created.
func (h *CardHandler) UpdateCard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathID(r, "id")
	if err != nil {
		log.Warn("invalid card ID in path", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid card ID")
		return
	}

	var req UpdateCardRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		log.Warn("card update validation failed", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid field values")
		return
	}

	card, err := h.cardStore.GetByID(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	if req.Type != nil {
		cardType, err := h.typeStore.GetByName(r.Context(), *req.Type)
		if err != nil {
			if errors.Is(err, store.ErrTypeNotFound) {
				shared.RespondWithError(w, r, http.StatusBadRequest,
					GetSafeErrorMessage(store.ErrTypeNotFound))
				return
			}
			shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
				"Failed to resolve card type", err)
			return
		}
		card.TypeID = cardType.ID
		card.Type = cardType
	}

	if req.Name != nil {
		card.Name = *req.Name
	}
	if req.PokedexID != nil {
		card.PokedexID = *req.PokedexID
	}
	if req.LifePoints != nil {
		card.LifePoints = *req.LifePoints
	}
	if req.Size != nil {
		card.Size = req.Size
	}
	if req.Weight != nil {
		card.Weight = req.Weight
	}
	if req.ImageURL != nil {
		card.ImageURL = req.ImageURL
	}

	// Check that no other card holds the new business keys.
	if req.Name != nil || req.PokedexID != nil {
		if _, err := h.cardStore.FindConflicting(r.Context(), card.Name, card.PokedexID, card.ID); err == nil {
			shared.RespondWithError(w, r, http.StatusBadRequest,
				GetSafeErrorMessage(store.ErrCardExists))
			return
		} else if !errors.Is(err, store.ErrCardNotFound) {
			shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
				"Failed to update Pokemon card", err)
			return
		}
	}

	if err := h.cardStore.Update(r.Context(), card); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Info("card updated", slog.Int64("card_id", card.ID))
	shared.RespondWithJSON(w, r, http.StatusOK, cardToResponse(card))
}

// DeleteCard handles DELETE /pokemons-cards/{id} requests.
func (h *CardHandler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathID(r, "id")
	if err != nil {
		log.Warn("invalid card ID in path", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid card ID")
		return
	}

	if err := h.cardStore.Delete(r.Context(), id); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Info("card deleted", slog.Int64("card_id", id))
	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{
		Message: "Pokemon card deleted",
	})
}
