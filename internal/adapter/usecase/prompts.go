package usecase

import (
	"fmt"
	"strings"

	"andromeda-ads/internal/core/domain"
	"andromeda-ads/internal/core/port"
)

// Output budgets per prompt.
const (
	briefingMaxTokens = 600
	conceptsMaxTokens = 2000
	brandMaxTokens    = 800
	analysisMaxTokens = 1000
)

const jsonOnly = "Reply ONLY with a valid JSON object, no markdown and no explanations."

func productPrompt(p domain.Product) string {
	desc := orDefault(p.Description, "No description provided")
	kind := orDefault(p.Type, "Fashion/Apparel")
	tags := orDefault(p.Tags, "No tags")
	return fmt.Sprintf(`You are an expert in fashion marketing and digital advertising. Analyse this product from a fashion store and write the complete briefing for an ad campaign.

PRODUCT:
- Name: %s
- Price: $%s
- Description: %s
- Product type: %s
- Tags: %s

%s Use this exact format:
{
  "product": "Sales description of the product: what it is, price, materials or key features that make it desirable (2-3 direct, attractive sentences)",
  "audience": "Ideal customer for this specific product: estimated age, gender, lifestyle, occasions of use (2-3 concrete sentences)",
  "painPoint": "The real problem or desire this product solves (1-2 emotional sentences)",
  "differentiator": "Why buy THIS product and not another one (1-2 sentences)",
  "tone": "detected tone"
}

For "tone" choose EXACTLY one of these values:
%s`, p.Title, p.Price, desc, kind, tags, jsonOnly, strings.Join(domain.Tones, " | "))
}

func conceptsPrompt(b domain.Briefing) string {
	return fmt.Sprintf(`You are an expert Meta Ads copywriter specialised in fashion and apparel.

BRAND BRIEFING:
- Product: %s
- Ideal customer: %s
- Main customer pain: %s
- Differentiator: %s
- Brand tone: %s

Write exactly %d different ad concepts for Meta Ads (Facebook/Instagram).
Each concept must use a DIFFERENT sales angle.
Suggested angles: %s.

%s
{
  "concepts": [
    {
      "angle": "Name of the sales angle",
      "hook": "Opening hook (max 10 words)",
      "headline": "Main ad headline (max 40 characters)",
      "body": "Ad body (2-3 sentences, max 125 characters)",
      "cta": "CTA button text (max 5 words)",
      "painPoint": "Specific pain this concept addresses",
      "targetEmotion": "Main emotion it triggers"
    }
  ]
}`, b.Product, b.Audience, b.PainPoint, b.Differentiator, orDefault(b.Tone, domain.DefaultTone),
		domain.ConceptSetSize, strings.Join(domain.SuggestedAngles, ", "), jsonOnly)
}

func storePrompt(s domain.StoreSnapshot) string {
	var products strings.Builder
	for _, p := range s.Products {
		fmt.Fprintf(&products, "- %s ($%s): %s", p.Title, p.Price, domain.Truncate(p.Description, 200))
		if p.Tags != "" {
			fmt.Fprintf(&products, " [%s]", p.Tags)
		}
		products.WriteByte('\n')
	}
	var collections strings.Builder
	for _, c := range s.Collections {
		fmt.Fprintf(&collections, "- %s: %s\n", c.Title, domain.Truncate(c.Description, 100))
	}
	return fmt.Sprintf(`You are an expert in fashion marketing and Meta Ads. Analyse this Shopify store and extract its brand identity to build effective Facebook and Instagram ads.

STORE: %s
EMAIL: %s
DOMAIN: %s
CURRENCY: %s

PRODUCTS (%d):
%s
COLLECTIONS:
%s
%s Use this exact format:
{
  "product": "What they sell, star products, price range and key materials (2-3 sentences)",
  "audience": "Ideal customer based on the products: age, gender, lifestyle, values (2-3 sentences)",
  "painPoint": "The biggest problem or desire this store solves (1-2 sentences)",
  "differentiator": "What makes this store unique (1-2 sentences)",
  "tone": "one of: %s",
  "storeName": %q,
  "topProducts": ["product1", "product2", "product3"],
  "priceRange": "detected price range (e.g. $15-$90)"
}`, s.Name, s.Email, s.Domain, s.Currency, len(s.Products),
		orDefault(products.String(), "No products\n"), orDefault(collections.String(), "No collections\n"),
		jsonOnly, strings.Join(domain.Tones, " / "), s.Name)
}

func analysisPrompt(stats domain.Stats, b *domain.Briefing) string {
	client := "Fashion store"
	if b != nil {
		client = fmt.Sprintf("Product: %s\nIdeal customer: %s\nDifferentiator: %s", b.Product, b.Audience, b.Differentiator)
	}
	var ads strings.Builder
	for _, a := range stats.Ads {
		fmt.Fprintf(&ads, "- %s (id %s): spend $%.2f, CTR %.2f%%, CPM $%.2f, conversions %d, ROAS %.2fx\n",
			a.Name, a.ID, a.Spend, a.CTR, a.CPM, a.Conversions, a.ROAS)
	}
	s := stats.Summary
	return fmt.Sprintf(`You are an expert Meta Ads media buyer specialised in fashion and apparel.

CLIENT BRIEFING:
%s

PERFORMANCE DATA (last 7 days):
Campaign summary: spend $%.2f, impressions %d, CTR %.2f%%, CPM $%.2f, conversions %d

Individual ads:
%s
DECISIONS:
1. Pause ads with CTR < 0.5%% for 3+ days or ROAS < 0.8
2. Scale (double the budget of) ads with ROAS > 1.5 or CTR > 2%%
3. Keep the rest
4. Suggest specific copy improvements

%s
{
  "insights": "2-3 sentence analysis of overall performance",
  "pause": ["adId1", "adId2"],
  "scale": [{"adId": "adId3", "newBudget": 10}],
  "copyTweaks": "Specific copy suggestions for the low CTR ads",
  "winnerAngle": "Best performing sales angle and why"
}`, client, s.Spend, s.Impressions, s.CTR, s.CPM, s.Conversions, ads.String(), jsonOnly)
}

// chatSystemPrompt describes the session the assistant may edit.
func chatSystemPrompt(turn port.ChatTurn) string {
	var sb strings.Builder
	sb.WriteString("You are the Andromeda Ads assistant, an ad automation platform for fashion stores.\n\nCURRENT APPLICATION STATE:\n")
	if turn.Briefing != nil {
		fmt.Fprintf(&sb, "Briefing: %s | Audience: %s\n", turn.Briefing.Product, turn.Briefing.Audience)
	} else {
		sb.WriteString("Briefing: not configured\n")
	}

	fmt.Fprintf(&sb, "\nGenerated concepts (%d total):\n", len(turn.Concepts))
	if len(turn.Concepts) == 0 {
		sb.WriteString("  (none yet)\n")
	}
	for i, c := range turn.Concepts {
		mark := "○"
		if c.Selected {
			mark = "✓"
		}
		fmt.Fprintf(&sb, "  [%d] %s %q (%s)\n", i, mark, c.Headline, c.Angle)
	}

	d := turn.Campaign
	budget, duration := d.DailyBudget, d.Duration
	if budget <= 0 {
		budget = 5
	}
	if duration <= 0 {
		duration = 7
	}
	t := d.Targeting.WithDefaults()
	gender := "All"
	switch t.Gender {
	case "1":
		gender = "Men"
	case "2":
		gender = "Women"
	}
	fmt.Fprintf(&sb, "\nCampaign settings:\n- Budget: $%g/day x %d days\n- Countries: %s\n- Age: %d-%d\n- Gender: %s\n",
		budget, duration, strings.Join(t.Countries, ","), t.AgeMin, t.AgeMax, gender)

	sb.WriteString("\nYou can change concepts, targeting and budget with the available tools.\n" +
		"When the user asks for changes, use the tools directly and confirm what you changed.\n" +
		"Always answer briefly and directly, in the user's language.")
	return sb.String()
}

func orDefault(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
