package handlers

import (
	"errors"
	"net/http"

	"RUMBLER_BACK-END/internal/dto"
	"RUMBLER_BACK-END/internal/matching"
	"RUMBLER_BACK-END/internal/middleware"
	"RUMBLER_BACK-END/internal/utils"
)

// SwipeHandler handles likes, passes and the match list
type SwipeHandler struct {
	tracker *matching.Tracker
}

// NewSwipeHandler creates a new SwipeHandler instance
func NewSwipeHandler(tracker *matching.Tracker) *SwipeHandler {
	return &SwipeHandler{tracker: tracker}
}

// Like godoc
// @Summary      Like a fighter
// @Description  match is null unless the fighter likes back
// @Tags         deck
// @Produce      json
// @Security     BearerAuth
// @Param        fighterId  path      string  true  "Fighter ID"
// @Success      200        {object}  dto.LikeResponse
// @Failure      400        {object}  dto.ErrorResponse
// @Failure      401        {object}  dto.ErrorResponse
// @Failure      500        {object}  dto.ErrorResponse
// @Router       /deck/{fighterId}/like [post]
func (h *SwipeHandler) Like(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		internalError(w, r.Method+" "+r.URL.Path, errNoSubject)
		return
	}

	m, err := h.tracker.Like(r.Context(), userID, r.PathValue("fighterId"))
	if errors.Is(err, matching.ErrCandidateRequired) {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "fighterId required", "")
		return
	}
	if err != nil {
		internalError(w, "like", err)
		return
	}

	resp := dto.LikeResponse{Liked: true}
	if m != nil {
		resp.Match = &dto.MatchInfo{FighterID: m.FighterID, CreatedAt: m.CreatedAt}
	}
	utils.WriteJSONResponse(w, http.StatusOK, resp)
}

// Pass godoc
// @Summary      Pass on a fighter
// @Tags         deck
// @Produce      json
// @Security     BearerAuth
// @Param        fighterId  path      string  true  "Fighter ID"
// @Success      200        {object}  dto.PassResponse
// @Failure      400        {object}  dto.ErrorResponse
// @Failure      401        {object}  dto.ErrorResponse
// @Failure      500        {object}  dto.ErrorResponse
// @Router       /deck/{fighterId}/pass [post]
func (h *SwipeHandler) Pass(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		internalError(w, r.Method+" "+r.URL.Path, errNoSubject)
		return
	}

	err := h.tracker.Pass(r.Context(), userID, r.PathValue("fighterId"))
	if errors.Is(err, matching.ErrCandidateRequired) {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "fighterId required", "")
		return
	}
	if err != nil {
		internalError(w, "pass", err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.PassResponse{Passed: true})
}

// Matches godoc
// @Summary      List my matches
// @Tags         matches
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.MatchesResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /matches [get]
func (h *SwipeHandler) Matches(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		internalError(w, r.Method+" "+r.URL.Path, errNoSubject)
		return
	}

	matches, err := h.tracker.Matches(r.Context(), userID)
	if err != nil {
		internalError(w, "list matches", err)
		return
	}

	items := make([]dto.MatchItem, 0, len(matches))
	for _, m := range matches {
		items = append(items, dto.MatchItem{FighterID: m.FighterID, LastMessage: m.LastMessage, MatchedAt: m.MatchedAt})
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.MatchesResponse{Results: items})
}
