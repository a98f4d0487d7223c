package state

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"andromeda-ads/internal/core/domain"
)

type conceptEdit struct {
	Index    *float64 `json:"index"`
	Headline string   `json:"headline"`
	Body     string   `json:"body"`
	Hook     string   `json:"hook"`
	CTA      string   `json:"cta"`
}

type settingsEdit struct {
	DailyBudget *float64 `json:"dailyBudget"`
	Duration    *float64 `json:"duration"`
	Name        string   `json:"campaignName"`
}

type targetingEdit struct {
	Countries []string `json:"countries"`
	AgeMin    *float64 `json:"ageMin"`
	AgeMax    *float64 `json:"ageMax"`
	Gender    string   `json:"gender"`
}

type selectionEdit struct {
	Indices []float64 `json:"indices"`
	Action  string    `json:"action"`
}

func decodeInput(input map[string]any, out any) error {
	raw, err := json.Marshal(input)
	if err != nil {
		return err
	}
	if err = json.Unmarshal(raw, out); err != nil {
		return domain.NewValidationError("invalid tool input: %v", err)
	}
	return nil
}

// ApplyToolUse applies an assistant tool invocation to the session and
// returns the text sent back to the model as the tool result.
func (s *Session) ApplyToolUse(ctx context.Context, tu domain.ToolUse) (string, error) {
	var (
		result string
		err    error
	)
	switch tu.Name {
	case domain.ToolUpdateConcept:
		result, err = s.updateConcept(tu.Input)
	case domain.ToolSelectConcepts:
		result, err = s.selectConcepts(tu.Input)
	case domain.ToolUpdateCampaignSettings:
		result, err = s.updateSettings(tu.Input)
	case domain.ToolUpdateTargeting:
		result, err = s.updateTargeting(tu.Input)
	default:
		return "", domain.NewValidationError("unknown tool %q", tu.Name)
	}
	if err != nil {
		return "", err
	}
	if err = s.save(ctx); err != nil {
		return "", err
	}
	return result, nil
}

func (s *Session) updateConcept(input map[string]any) (string, error) {
	var e conceptEdit
	if err := decodeInput(input, &e); err != nil {
		return "", err
	}
	if e.Index == nil {
		return "", domain.NewValidationError("index is required")
	}
	c, err := s.concept(int(*e.Index))
	if err != nil {
		return "", err
	}

	var changed []string
	set := func(field string, dst *string, v string, limit int) {
		if v = strings.TrimSpace(v); v != "" {
			*dst = domain.Truncate(v, limit)
			changed = append(changed, field)
		}
	}
	set("headline", &c.Headline, e.Headline, 40)
	set("body", &c.Body, e.Body, 125)
	set("hook", &c.Hook, e.Hook, 120)
	set("cta", &c.CTA, e.CTA, 40)
	if len(changed) == 0 {
		return fmt.Sprintf("Concept %d unchanged", int(*e.Index)+1), nil
	}
	return fmt.Sprintf("Concept %d updated: %s", int(*e.Index)+1, strings.Join(changed, ", ")), nil
}

func (s *Session) selectConcepts(input map[string]any) (string, error) {
	var e selectionEdit
	if err := decodeInput(input, &e); err != nil {
		return "", err
	}
	var selected bool
	switch e.Action {
	case "select":
		selected = true
	case "deselect":
	default:
		return "", domain.NewValidationError("action must be select or deselect")
	}
	for _, f := range e.Indices {
		if _, err := s.concept(int(f)); err != nil {
			return "", err
		}
	}
	for _, f := range e.Indices {
		s.state.Concepts[int(f)].Selected = selected
	}
	return fmt.Sprintf("%d concepts %sed, %d selected in total", len(e.Indices), e.Action, len(s.SelectedConcepts())), nil
}

func (s *Session) updateSettings(input map[string]any) (string, error) {
	var e settingsEdit
	if err := decodeInput(input, &e); err != nil {
		return "", err
	}
	d := s.state.Draft
	var changed []string
	if e.DailyBudget != nil {
		if *e.DailyBudget <= 0 {
			return "", domain.NewValidationError("dailyBudget must be positive")
		}
		d.DailyBudget = domain.Round2(*e.DailyBudget)
		changed = append(changed, fmt.Sprintf("budget $%g/day", d.DailyBudget))
	}
	if e.Duration != nil {
		if *e.Duration < 1 {
			return "", domain.NewValidationError("duration must be at least one day")
		}
		d.Duration = int(*e.Duration)
		changed = append(changed, fmt.Sprintf("duration %d days", d.Duration))
	}
	if name := strings.TrimSpace(e.Name); name != "" {
		d.Name = name
		changed = append(changed, fmt.Sprintf("name %q", name))
	}
	s.state.Draft = d
	if len(changed) == 0 {
		return "Campaign settings unchanged", nil
	}
	return "Campaign settings updated: " + strings.Join(changed, ", "), nil
}

func (s *Session) updateTargeting(input map[string]any) (string, error) {
	var e targetingEdit
	if err := decodeInput(input, &e); err != nil {
		return "", err
	}
	t := s.state.Draft.Targeting
	t.Countries = slices.Clone(t.Countries)
	var changed []string
	if len(e.Countries) > 0 {
		t.Countries = t.Countries[:0]
		for _, c := range e.Countries {
			if c = strings.ToUpper(strings.TrimSpace(c)); c != "" {
				t.Countries = append(t.Countries, c)
			}
		}
		changed = append(changed, "countries "+strings.Join(t.Countries, ","))
	}
	if e.AgeMin != nil {
		t.AgeMin = int(*e.AgeMin)
	}
	if e.AgeMax != nil {
		t.AgeMax = int(*e.AgeMax)
	}
	if e.AgeMin != nil || e.AgeMax != nil {
		eff := t.WithDefaults()
		if eff.AgeMin < 18 || eff.AgeMax > 65 || eff.AgeMin > eff.AgeMax {
			return "", domain.NewValidationError("age range must be within 18-65")
		}
		changed = append(changed, fmt.Sprintf("age %d-%d", eff.AgeMin, eff.AgeMax))
	}
	if e.Gender != "" {
		switch e.Gender {
		case "all", "1", "2":
		default:
			return "", domain.NewValidationError("gender must be all, 1 or 2")
		}
		t.Gender = e.Gender
		changed = append(changed, "gender "+e.Gender)
	}
	s.state.Draft.Targeting = t
	if len(changed) == 0 {
		return "Targeting unchanged", nil
	}
	return "Targeting updated: " + strings.Join(changed, ", "), nil
}
