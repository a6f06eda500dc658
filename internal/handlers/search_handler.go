package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/mensa/internal/interfaces"
	"github.com/ternarybob/mensa/internal/models"
)

// SearchHandler serves the restaurant search API.
type SearchHandler struct {
	searchService  interfaces.SearchService
	rankingService interfaces.RankingService
	topN           int
	logger         arbor.ILogger
}

// NewSearchHandler creates a search handler.
func NewSearchHandler(searchService interfaces.SearchService, rankingService interfaces.RankingService, topN int, logger arbor.ILogger) *SearchHandler {
	return &SearchHandler{
		searchService:  searchService,
		rankingService: rankingService,
		topN:           topN,
		logger:         logger,
	}
}

// searchResponse is the /api/search payload: the ranked subset plus the full
// distance-ordered result set.
type searchResponse struct {
	TotalResults int                  `json:"total_results"`
	Ranked       []models.RankedPlace `json:"ranked"`
	Places       []models.Place       `json:"places"`
}

// SearchHandler handles POST /api/search
func (h *SearchHandler) SearchHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "POST") {
		return
	}

	var req models.SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	results, err := h.searchService.Search(r.Context(), &req)
	if err != nil {
		// Caller mistakes (unresolvable origin, invalid parameters) are 400;
		// 502 is reserved for upstream failures.
		var resolutionErr *models.ResolutionError
		var validationErrs validator.ValidationErrors
		if errors.As(err, &resolutionErr) || errors.As(err, &validationErrs) {
			WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error().Err(err).Msg("Search failed")
		WriteError(w, http.StatusBadGateway, err.Error())
		return
	}

	ranked := h.rankingService.Rank(results, &req, h.topN)

	WriteJSON(w, http.StatusOK, searchResponse{
		TotalResults: len(results),
		Ranked:       ranked,
		Places:       results,
	})
}

// MetricsHandler handles GET /api/metrics
func (h *SearchHandler) MetricsHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}
	WriteJSON(w, http.StatusOK, h.searchService.Metrics())
}
