package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"

	"RUMBLER_BACK-END/internal/dto"
	"RUMBLER_BACK-END/internal/events"
	"RUMBLER_BACK-END/internal/middleware"
	"RUMBLER_BACK-END/internal/store"
	"RUMBLER_BACK-END/internal/utils"
	"RUMBLER_BACK-END/internal/validation"
)

// maxProfileBody caps PUT /me/profile bodies
const maxProfileBody = 1 << 20

// errNoSubject means the Subject middleware is not mounted in front of a handler
var errNoSubject = errors.New("no subject in request context")

type ProfileHandler struct {
	profiles  store.ProfileStore
	validator *validation.ProfileValidator
	events    events.Publisher
}

func NewProfileHandler(profiles store.ProfileStore, v *validation.ProfileValidator, pub events.Publisher) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, validator: v, events: pub}
}

// Get godoc
// @Summary      Get my profile
// @Description  Returns the stored profile, or completion flags set to false when none exists
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  models.Profile
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /me/profile [get]
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		internalError(w, r.Method+" "+r.URL.Path, errNoSubject)
		return
	}

	p, err := h.profiles.Get(r.Context(), userID)
	if errors.Is(err, store.ErrNotFound) {
		utils.WriteJSONResponse(w, http.StatusOK, dto.ProfileStatusResponse{})
		return
	}
	if err != nil {
		internalError(w, "get profile", err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, p)
}

// Update godoc
// @Summary      Create or replace my profile
// @Description  Validates the full profile. Fighters must be 18 or older.
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      models.Profile  true  "Profile payload"
// @Success      200      {object}  models.Profile
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      401      {object}  dto.ErrorResponse
// @Failure      422      {object}  dto.ErrorResponse
// @Failure      500      {object}  dto.ErrorResponse
// @Router       /me/profile [put]
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		internalError(w, r.Method+" "+r.URL.Path, errNoSubject)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxProfileBody))
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid JSON body", "")
		return
	}

	p, err := h.validator.ParseAndValidate(body)
	if err != nil {
		var verr *validation.ValidationError
		switch {
		case errors.Is(err, validation.ErrMalformedBody):
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid JSON body", "")
		case errors.As(err, &verr):
			utils.WriteErrorDetails(w, http.StatusUnprocessableEntity, "Validation failed", verr.Fields)
		default:
			internalError(w, "validate profile", err)
		}
		return
	}

	if err := h.profiles.Put(r.Context(), userID, p); err != nil {
		internalError(w, "put profile", err)
		return
	}
	events.Emit(r.Context(), h.events, events.New(events.NameProfileCompleted, userID, map[string]any{
		"disciplines":     p.Disciplines,
		"experienceLevel": p.ExperienceLevel,
	}))

	utils.WriteJSONResponse(w, http.StatusOK, p)
}

// Delete godoc
// @Summary      Delete my profile
// @Tags         profile
// @Security     BearerAuth
// @Success      204
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /me/profile [delete]
func (h *ProfileHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		internalError(w, r.Method+" "+r.URL.Path, errNoSubject)
		return
	}
	if err := h.profiles.Delete(r.Context(), userID); err != nil && !errors.Is(err, store.ErrNotFound) {
		internalError(w, "delete profile", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// internalError logs err and writes an opaque 500
func internalError(w http.ResponseWriter, op string, err error) {
	log.Printf("%s: %v", op, err)
	utils.WriteErrorResponse(w, http.StatusInternalServerError, "Internal Server Error", "")
}
