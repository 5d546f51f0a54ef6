package handlers

import (
	"errors"
	"net/http"

	"RUMBLER_BACK-END/internal/dto"
	"RUMBLER_BACK-END/internal/models"
	"RUMBLER_BACK-END/internal/store"
	"RUMBLER_BACK-END/internal/utils"
	"RUMBLER_BACK-END/internal/validation"
)

// DeckHandler serves swipe candidates
type DeckHandler struct {
	candidates store.CandidateRepository
}

// NewDeckHandler creates a new DeckHandler instance
func NewDeckHandler(candidates store.CandidateRepository) *DeckHandler {
	return &DeckHandler{candidates: candidates}
}

// List godoc
// @Summary      Get the deck
// @Description  Candidates filtered by distance, discipline, experience and gender
// @Tags         deck
// @Produce      json
// @Security     BearerAuth
// @Param        distance    query     number  false  "Max distance in km (0 < d <= 100)"  default(25)
// @Param        discipline  query     string  false  "Discipline, case-insensitive"
// @Param        experience  query     string  false  "beginner | intermediate | advanced | pro"
// @Param        gender      query     string  false  "male | female | non-binary"
// @Success      200         {object}  dto.DeckResponse
// @Failure      400         {object}  dto.ErrorResponse
// @Failure      500         {object}  dto.ErrorResponse
// @Router       /deck [get]
func (h *DeckHandler) List(w http.ResponseWriter, r *http.Request) {
	q, err := validation.ParseDeckQuery(r.URL.Query())
	if err != nil {
		var verr *validation.ValidationError
		if errors.As(err, &verr) {
			utils.WriteErrorDetails(w, http.StatusBadRequest, "Invalid query", verr.Fields)
			return
		}
		internalError(w, "parse deck query", err)
		return
	}

	fighters, err := h.candidates.Query(r.Context(), q)
	if err != nil {
		internalError(w, "query deck", err)
		return
	}
	if fighters == nil {
		fighters = []models.Fighter{}
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.DeckResponse{Query: q, Results: fighters})
}
