package state

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"andromeda-ads/internal/core/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func tenConcepts() []domain.Concept {
	out := make([]domain.Concept, domain.ConceptSetSize)
	for i, a := range domain.SuggestedAngles {
		out[i] = domain.Concept{Angle: a, Headline: "H" + a, Body: "B", Selected: true, ImageB64: "img"}
	}
	return out
}

func openMemory(t *testing.T) (*Session, *MemoryStore) {
	t.Helper()
	store := NewMemoryStore()
	s, err := Open(context.Background(), store, discardLogger())
	require.NoError(t, err)
	return s, store
}

func withConcepts(t *testing.T) (*Session, *MemoryStore) {
	t.Helper()
	s, store := openMemory(t)
	ctx := context.Background()
	require.NoError(t, s.SetBriefing(ctx, domain.Briefing{Product: "Dress", Audience: "women", PainPoint: "p"}))
	require.NoError(t, s.SetConcepts(ctx, tenConcepts()))
	return s, store
}

func TestBriefingLifecycle(t *testing.T) {
	ctx := context.Background()
	s, store := openMemory(t)

	assert.ErrorIs(t, s.EditBriefing(ctx, func(*domain.Briefing) {}), ErrNoBriefing)

	require.NoError(t, s.SetBriefing(ctx, domain.Briefing{Product: "Dress", Audience: "women", PainPoint: "p"}))
	require.NoError(t, s.EditBriefing(ctx, func(b *domain.Briefing) { b.Tone = "bold and provocative" }))
	assert.Equal(t, "bold and provocative", s.State().Briefing.Tone)

	require.NoError(t, s.SetConcepts(ctx, tenConcepts()))
	assert.Equal(t, ViewConcepts, s.State().View)
	assert.ErrorIs(t, s.EditBriefing(ctx, func(b *domain.Briefing) { b.Tone = "x" }), ErrBriefingLocked)

	require.NoError(t, s.SetBriefing(ctx, domain.Briefing{Product: "Shirt"}))
	assert.Empty(t, s.State().Concepts)
	assert.False(t, s.State().BriefingConsumed())
	assert.Equal(t, 4, store.Saves)
}

func TestSetConceptsResetsSelectionAndImages(t *testing.T) {
	s, _ := withConcepts(t)
	for _, c := range s.State().Concepts {
		assert.False(t, c.Selected)
		assert.Empty(t, c.ImageB64)
	}
}

func TestSetConceptsRejectsInvalidSet(t *testing.T) {
	ctx := context.Background()
	s, _ := openMemory(t)
	assert.ErrorIs(t, s.SetConcepts(ctx, tenConcepts()), ErrNoBriefing)

	require.NoError(t, s.SetBriefing(ctx, domain.Briefing{Product: "Dress"}))
	dup := tenConcepts()
	dup[9].Angle = "fomo"
	var ve *domain.ValidationError
	assert.True(t, errors.As(s.SetConcepts(ctx, dup), &ve))
	assert.True(t, errors.As(s.SetConcepts(ctx, dup[:9]), &ve))
}

func TestSelection(t *testing.T) {
	ctx := context.Background()
	s, _ := withConcepts(t)

	on, err := s.ToggleConcept(ctx, 3)
	require.NoError(t, err)
	assert.True(t, on)
	assert.Len(t, s.SelectedConcepts(), 1)

	_, err = s.ToggleConcept(ctx, 10)
	var ve *domain.ValidationError
	assert.True(t, errors.As(err, &ve))

	require.NoError(t, s.SelectAll(ctx, true))
	assert.Len(t, s.SelectedConcepts(), domain.ConceptSetSize)
	require.NoError(t, s.SelectAll(ctx, false))
	assert.Empty(t, s.SelectedConcepts())

	require.NoError(t, s.AttachImage(ctx, 2, "b64"))
	assert.Equal(t, "b64", s.State().Concepts[2].ImageB64)
}

func TestCampaigns(t *testing.T) {
	ctx := context.Background()
	s, _ := openMemory(t)
	s.now = func() time.Time { return time.Date(2026, 3, 8, 10, 0, 0, 0, time.UTC) }

	require.NoError(t, s.AddCampaign(ctx, domain.Campaign{ID: "c1", Platform: domain.PlatformMeta, AdIDs: []string{"a1"}}))
	assert.Equal(t, ViewDashboard, s.State().View)

	require.NoError(t, s.AppendAdIDs(ctx, "c1", []string{"a2", "a3"}))
	c, ok := s.FindCampaign("c1")
	require.True(t, ok)
	assert.Equal(t, []string{"a1", "a2", "a3"}, c.AdIDs)
	assert.Equal(t, 2026, c.CreatedAt.Year())

	assert.ErrorIs(t, s.AppendAdIDs(ctx, "nope", []string{"x"}), ErrCampaignNotFound)
	_, ok = s.FindCampaign("nope")
	assert.False(t, ok)
}

func TestSwitchView(t *testing.T) {
	s, store := openMemory(t)
	require.NoError(t, s.SwitchView(ViewSettings))
	assert.Equal(t, ViewSettings, s.State().View)

	var ve *domain.ValidationError
	assert.True(t, errors.As(s.SwitchView("reports"), &ve))
	assert.Zero(t, store.Saves)
}

func TestSessionRoundTripsThroughFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "state.json")
	store := NewFileStore(path)

	s, err := Open(ctx, store, discardLogger())
	require.NoError(t, err)
	require.NoError(t, s.SetBriefing(ctx, domain.Briefing{Product: "Dress", Audience: "a", PainPoint: "p"}))
	require.NoError(t, s.SetConcepts(ctx, tenConcepts()))
	require.NoError(t, s.AddCampaign(ctx, domain.Campaign{ID: "c1", Platform: domain.PlatformTikTok}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"andromeda_state_v1"`)

	reopened, err := Open(ctx, store, discardLogger())
	require.NoError(t, err)
	st := reopened.State()
	assert.Equal(t, "Dress", st.Briefing.Product)
	assert.Len(t, st.Concepts, domain.ConceptSetSize)
	require.Len(t, st.Campaigns, 1)
	assert.Equal(t, domain.PlatformTikTok, st.Campaigns[0].Platform)
	assert.Equal(t, ViewBriefing, st.View)
	assert.True(t, st.BriefingConsumed())
}

func TestOpenCorruptSnapshotStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"andromeda_state_v1": [1,2`), 0o600))

	s, err := Open(context.Background(), NewFileStore(path), discardLogger())
	require.NoError(t, err)
	assert.Nil(t, s.State().Briefing)
	assert.Empty(t, s.State().Concepts)
}

func TestFileStoreMissingFile(t *testing.T) {
	snap, err := NewFileStore(filepath.Join(t.TempDir(), "none.json")).Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, snap.Briefing)
}
