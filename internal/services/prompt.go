package services

import (
	"fmt"
	"strings"

	"leadpilot/lead-intent-api/internal/models"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildIntentPrompt creates the classification prompt for one (offer, lead)
// pair.
func (pb *PromptBuilder) BuildIntentPrompt(offer *models.Offer, lead *models.Lead) string {
	return fmt.Sprintf(`You are an intent classification system.

Task: Classify how well this lead matches the offer.

OFFER:
- Name: %s
- Value propositions: %s
- Ideal use cases: %s
- Target roles: %s
- Target industries: %s

LEAD:
- Name: %s
- Role: %s
- Company: %s
- Industry: %s
- Location: %s
- LinkedIn bio: %s

Return output strictly as valid JSON:
{
  "intent": "high|low",
  "reasoning": "<= 40 words explaining the choice",
  "score": integer from 0 to 10, where:
      - 0 = very poor match
      - 10 = perfect match
      - intermediate values (1 to 9) = partial similarity
}

Rules:
- "intent" must be exactly one of: high or low
- "score" should be proportional to the similarity (not just 0 or 10).
- No text outside the JSON`,
		offer.Name,
		offer.ValueProps,
		offer.IdealUseCases,
		strings.Join(offer.RolesList(), ", "),
		strings.Join(offer.IndustriesList(), ", "),
		lead.Name,
		lead.Role,
		lead.Company,
		lead.Industry,
		lead.Location,
		lead.LinkedinBio,
	)
}
