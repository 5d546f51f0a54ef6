package dto

import "RUMBLER_BACK-END/internal/models"

// DeckResponse echoes the normalized query with the candidates that match it
type DeckResponse struct {
	Query   models.DeckQuery `json:"query"`
	Results []models.Fighter `json:"results"`
}
