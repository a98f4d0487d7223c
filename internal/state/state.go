// Package state holds the client-side session: the briefing, the generated
// concepts and the launched campaigns, persisted as one snapshot between
// CLI invocations.
package state

import (
	"errors"
	"slices"

	"andromeda-ads/internal/core/domain"
)

// SnapshotKey namespaces the persisted snapshot.
const SnapshotKey = "andromeda_state_v1"

// View is the screen of the assistant flow the session is on.
type View string

const (
	ViewBriefing  View = "briefing"
	ViewConcepts  View = "concepts"
	ViewCampaign  View = "campaign"
	ViewDashboard View = "dashboard"
	ViewSettings  View = "settings"
)

// Views lists the views in flow order.
var Views = []View{ViewBriefing, ViewConcepts, ViewCampaign, ViewDashboard, ViewSettings}

// Valid reports whether v is a known view.
func (v View) Valid() bool { return slices.Contains(Views, v) }

var (
	ErrBriefingLocked   = errors.New("briefing already has concepts; set a new briefing instead")
	ErrNoBriefing       = errors.New("no briefing configured")
	ErrCampaignNotFound = errors.New("campaign not found")
)

// Snapshot is the persisted part of the state.
type Snapshot struct {
	Briefing  *domain.Briefing      `json:"briefing"`
	Concepts  []domain.Concept      `json:"concepts"`
	Campaigns []domain.Campaign     `json:"campaigns"`
	Draft     *domain.CampaignDraft `json:"campaignDraft,omitempty"`
}

// AppState is the whole session state. Only the Snapshot part survives a
// restart.
type AppState struct {
	Briefing             *domain.Briefing
	Concepts             []domain.Concept
	Campaigns            []domain.Campaign
	Draft                domain.CampaignDraft
	View                 View
	SelectedProduct      *domain.Product
	PendingOptimizations *domain.OptimizationPlan
}

func fromSnapshot(s Snapshot) AppState {
	st := AppState{
		Briefing:  s.Briefing,
		Concepts:  s.Concepts,
		Campaigns: s.Campaigns,
		View:      ViewBriefing,
	}
	if s.Draft != nil {
		st.Draft = *s.Draft
	}
	if st.Concepts == nil {
		st.Concepts = []domain.Concept{}
	}
	if st.Campaigns == nil {
		st.Campaigns = []domain.Campaign{}
	}
	return st
}

func (s AppState) snapshot() Snapshot {
	draft := s.Draft
	return Snapshot{
		Briefing:  s.Briefing,
		Concepts:  s.Concepts,
		Campaigns: s.Campaigns,
		Draft:     &draft,
	}
}

// BriefingConsumed reports whether concepts were generated from the
// current briefing.
func (s AppState) BriefingConsumed() bool {
	return s.Briefing != nil && len(s.Concepts) > 0
}
