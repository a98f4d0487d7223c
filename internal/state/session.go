package state

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"andromeda-ads/internal/core/domain"
)

// Session owns the AppState and saves the snapshot after every mutation.
// It has a single writer and is not safe for concurrent use.
type Session struct {
	store  Store
	logger *slog.Logger
	state  AppState
	now    func() time.Time
}

// Open loads the stored snapshot. A corrupt snapshot is logged and the
// session starts empty.
func Open(ctx context.Context, store Store, logger *slog.Logger) (*Session, error) {
	snap, err := store.Load(ctx)
	if errors.Is(err, ErrCorruptSnapshot) {
		logger.WarnContext(ctx, "discarding unreadable state", slog.Any("error", err))
		snap, err = Snapshot{}, nil
	}
	if err != nil {
		return nil, err
	}
	return &Session{store: store, logger: logger, state: fromSnapshot(snap), now: time.Now}, nil
}

// State returns a copy of the current state.
func (s *Session) State() AppState {
	st := s.state
	st.Concepts = slices.Clone(s.state.Concepts)
	st.Campaigns = slices.Clone(s.state.Campaigns)
	return st
}

func (s *Session) save(ctx context.Context) error {
	if err := s.store.Save(ctx, s.state.snapshot()); err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	return nil
}

// SwitchView moves to v. Views are not persisted.
func (s *Session) SwitchView(v View) error {
	if !v.Valid() {
		return domain.NewValidationError("unknown view %q", v)
	}
	s.state.View = v
	return nil
}

// SetBriefing replaces the briefing and drops the concepts generated from
// the previous one.
func (s *Session) SetBriefing(ctx context.Context, b domain.Briefing) error {
	s.state.Briefing = &b
	s.state.Concepts = []domain.Concept{}
	s.state.View = ViewBriefing
	return s.save(ctx)
}

// EditBriefing changes the briefing in place. It is refused once concepts
// were generated from it.
func (s *Session) EditBriefing(ctx context.Context, edit func(*domain.Briefing)) error {
	if s.state.Briefing == nil {
		return ErrNoBriefing
	}
	if s.state.BriefingConsumed() {
		return ErrBriefingLocked
	}
	b := *s.state.Briefing
	edit(&b)
	s.state.Briefing = &b
	return s.save(ctx)
}

// SetConcepts stores a freshly generated concept set, unselected and
// without images.
func (s *Session) SetConcepts(ctx context.Context, cs []domain.Concept) error {
	if s.state.Briefing == nil {
		return ErrNoBriefing
	}
	if err := domain.ValidateConceptSet(cs); err != nil {
		return domain.NewValidationError("%v", err)
	}
	out := slices.Clone(cs)
	for i := range out {
		out[i].Selected = false
		out[i].ImageB64 = ""
	}
	s.state.Concepts = out
	s.state.View = ViewConcepts
	return s.save(ctx)
}

func (s *Session) concept(i int) (*domain.Concept, error) {
	if i < 0 || i >= len(s.state.Concepts) {
		return nil, domain.NewValidationError("concept index %d out of range (%d concepts)", i, len(s.state.Concepts))
	}
	return &s.state.Concepts[i], nil
}

// ToggleConcept flips the selection of concept i and returns the new value.
func (s *Session) ToggleConcept(ctx context.Context, i int) (bool, error) {
	c, err := s.concept(i)
	if err != nil {
		return false, err
	}
	c.Selected = !c.Selected
	return c.Selected, s.save(ctx)
}

// SelectAll sets the selection of every concept.
func (s *Session) SelectAll(ctx context.Context, selected bool) error {
	for i := range s.state.Concepts {
		s.state.Concepts[i].Selected = selected
	}
	return s.save(ctx)
}

func (s *Session) SelectedConcepts() []domain.Concept {
	var out []domain.Concept
	for _, c := range s.state.Concepts {
		if c.Selected {
			out = append(out, c)
		}
	}
	return out
}

// AttachImage stores a base64 creative on concept i.
func (s *Session) AttachImage(ctx context.Context, i int, imageB64 string) error {
	c, err := s.concept(i)
	if err != nil {
		return err
	}
	c.ImageB64 = imageB64
	return s.save(ctx)
}

// AddCampaign records a launched campaign and moves to the dashboard.
func (s *Session) AddCampaign(ctx context.Context, c domain.Campaign) error {
	if c.ID == "" {
		return domain.NewValidationError("campaign id is required")
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = s.now().UTC()
	}
	if c.AdIDs == nil {
		c.AdIDs = []string{}
	}
	s.state.Campaigns = append(s.state.Campaigns, c)
	s.state.View = ViewDashboard
	return s.save(ctx)
}

// AppendAdIDs adds ads uploaded after launch. It is the only mutation of a
// recorded campaign.
func (s *Session) AppendAdIDs(ctx context.Context, campaignID string, adIDs []string) error {
	i := slices.IndexFunc(s.state.Campaigns, func(c domain.Campaign) bool { return c.ID == campaignID })
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrCampaignNotFound, campaignID)
	}
	if len(adIDs) == 0 {
		return nil
	}
	s.state.Campaigns[i].AdIDs = append(s.state.Campaigns[i].AdIDs, adIDs...)
	return s.save(ctx)
}

func (s *Session) FindCampaign(id string) (domain.Campaign, bool) {
	for _, c := range s.state.Campaigns {
		if c.ID == id {
			return c, true
		}
	}
	return domain.Campaign{}, false
}

// CampaignDraft returns the launch settings with defaults applied.
func (s *Session) CampaignDraft() domain.CampaignDraft {
	d := s.state.Draft
	if d.DailyBudget <= 0 {
		d.DailyBudget = 5
	}
	if d.Duration <= 0 {
		d.Duration = 7
	}
	d.Targeting.Countries = slices.Clone(d.Targeting.Countries)
	d.Targeting = d.Targeting.WithDefaults()
	return d
}

func (s *Session) SetSelectedProduct(p *domain.Product) {
	s.state.SelectedProduct = p
}

func (s *Session) SetPendingOptimizations(plan *domain.OptimizationPlan) {
	s.state.PendingOptimizations = plan
}
