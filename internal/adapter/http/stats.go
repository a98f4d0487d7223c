package httpadapter

import (
	"net/http"

	"andromeda-ads/internal/core/domain"
)

// handleStats returns the normalized trailing-week stats of one
// campaign. It reads the `platform` and `campaignId` query parameters; an
// empty or unknown platform is served as Meta. A missing campaignId results
// in HTTP 400.
func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	stats, err := h.svc.Campaigns.Stats(r.Context(), domain.ParsePlatform(q.Get("platform")), credentials(r), q.Get("campaignId"))
	if err != nil {
		h.writeError(w, r, "stats", err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
