package httpadapter

import (
	"net/http"

	"andromeda-ads/internal/core/domain"
)

// RulesRequest evaluates rules against one campaign's ads.
type RulesRequest struct {
	CampaignID string        `json:"campaignId"`
	Rules      []domain.Rule `json:"rules"`
}

func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	info, err := h.svc.Campaigns.Validate(r.Context(), platformParam(r), credentials(r))
	if err != nil {
		h.writeError(w, r, "validate", err)
		return
	}
	writeJSON(w, http.StatusOK, info)
}

func (h *Handler) handleLaunch(w http.ResponseWriter, r *http.Request) {
	var spec domain.CampaignSpec
	if err := decode(r, &spec); err != nil {
		h.writeError(w, r, "launch", err)
		return
	}
	res, err := h.svc.Campaigns.Launch(r.Context(), platformParam(r), credentials(r), spec)
	if err != nil {
		h.writeError(w, r, "launch", err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) handleUploadCreative(w http.ResponseWriter, r *http.Request) {
	var upload domain.CreativeUpload
	if err := decode(r, &upload); err != nil {
		h.writeError(w, r, "upload creative", err)
		return
	}
	res, err := h.svc.Campaigns.UploadCreative(r.Context(), credentials(r), upload)
	if err != nil {
		h.writeError(w, r, "upload creative", err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// PendingUploadRequest pairs concept images with a launched campaign's ad
// sets.
type PendingUploadRequest struct {
	Campaign domain.Campaign  `json:"campaign"`
	Concepts []domain.Concept `json:"concepts"`
}

func (h *Handler) handleUploadPending(w http.ResponseWriter, r *http.Request) {
	var req PendingUploadRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, "upload pending", err)
		return
	}
	report, err := h.svc.Campaigns.UploadPending(r.Context(), credentials(r), req.Campaign, req.Concepts)
	if err != nil {
		h.writeError(w, r, "upload pending", err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (h *Handler) handleRules(w http.ResponseWriter, r *http.Request) {
	var req RulesRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, "rules", err)
		return
	}
	report, err := h.svc.Optimizer.EvaluateRules(r.Context(), platformParam(r), credentials(r), req.CampaignID, req.Rules)
	if err != nil {
		h.writeError(w, r, "rules", err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (h *Handler) handleApply(w http.ResponseWriter, r *http.Request) {
	var plan domain.OptimizationPlan
	if err := decode(r, &plan); err != nil {
		h.writeError(w, r, "apply", err)
		return
	}
	report, err := h.svc.Optimizer.Apply(r.Context(), platformParam(r), credentials(r), plan)
	if err != nil {
		h.writeError(w, r, "apply", err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}
