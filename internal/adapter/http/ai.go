package httpadapter

import (
	"net/http"

	"andromeda-ads/internal/core/domain"
	"andromeda-ads/internal/core/port"
)

// BriefingRequest asks for a briefing derived from one product.
type BriefingRequest struct {
	Product domain.Product `json:"product"`
}

// ConceptsRequest asks for a concept set.
type ConceptsRequest struct {
	Briefing domain.Briefing `json:"briefing"`
}

// ConceptsResponse carries exactly ten concepts.
type ConceptsResponse struct {
	Concepts []domain.Concept `json:"concepts"`
}

// ChatContext is the client state the assistant sees.
type ChatContext struct {
	Briefing *domain.Briefing     `json:"briefing"`
	Concepts []domain.Concept     `json:"concepts"`
	Campaign domain.CampaignDraft `json:"campaign"`
}

// ChatRequest is one assistant turn.
type ChatRequest struct {
	Messages []domain.Message `json:"messages"`
	Context  ChatContext      `json:"context"`
}

// CreativeResponse carries a base64 image.
type CreativeResponse struct {
	B64 string `json:"b64"`
}

// AnalysisRequest asks for an optimisation plan for a campaign's stats.
type AnalysisRequest struct {
	CampaignID string           `json:"campaignId"`
	Stats      *domain.Stats    `json:"stats"`
	Briefing   *domain.Briefing `json:"briefing"`
}

func (h *Handler) handleBriefing(w http.ResponseWriter, r *http.Request) {
	var req BriefingRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, "briefing", err)
		return
	}
	b, err := h.svc.Copy.AnalyzeProduct(r.Context(), credentials(r), req.Product)
	if err != nil {
		h.writeError(w, r, "briefing", err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func (h *Handler) handleConcepts(w http.ResponseWriter, r *http.Request) {
	var req ConceptsRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, "concepts", err)
		return
	}
	cs, err := h.svc.Copy.GenerateConcepts(r.Context(), credentials(r), req.Briefing)
	if err != nil {
		h.writeError(w, r, "concepts", err)
		return
	}
	writeJSON(w, http.StatusOK, ConceptsResponse{Concepts: cs})
}

func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, "chat", err)
		return
	}
	res, err := h.svc.Copy.Chat(r.Context(), credentials(r), port.ChatTurn{
		Messages: req.Messages,
		Briefing: req.Context.Briefing,
		Concepts: req.Context.Concepts,
		Campaign: req.Context.Campaign,
	})
	if err != nil {
		h.writeError(w, r, "chat", err)
		return
	}
	if res.ToolUses == nil {
		res.ToolUses = []domain.ToolUse{}
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) handleCreative(w http.ResponseWriter, r *http.Request) {
	var req domain.CreativeRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, "creative", err)
		return
	}
	b64, err := h.svc.Copy.GenerateCreative(r.Context(), credentials(r), req)
	if err != nil {
		h.writeError(w, r, "creative", err)
		return
	}
	writeJSON(w, http.StatusOK, CreativeResponse{B64: b64})
}

func (h *Handler) handleAnalysis(w http.ResponseWriter, r *http.Request) {
	var req AnalysisRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, "analysis", err)
		return
	}
	if req.Stats == nil {
		h.writeError(w, r, "analysis", domain.NewValidationError("stats are required"))
		return
	}
	plan, err := h.svc.Optimizer.Analyze(r.Context(), credentials(r), *req.Stats, req.Briefing)
	if err != nil {
		h.writeError(w, r, "analysis", err)
		return
	}
	writeJSON(w, http.StatusOK, plan)
}
