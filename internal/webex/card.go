package webex

import (
	"fmt"

	"webex_gacha/internal/domain"
)

// CardContentType is the attachment content type Webex expects for adaptive cards.
const CardContentType = "application/vnd.microsoft.card.adaptive"

// Card is an adaptive card payload.
type Card map[string]any

// DrawResultCard renders a draw result: title, prize image, graded name line,
// remaining-ticket subtitle, and a button that re-submits the draw command.
func DrawResultCard(tier domain.PrizeTier, remaining int, redrawCommand string) Card {
	color := "Warning"
	if tier.IsHighGrade() {
		color = "Good"
	}

	return Card{
		"type":    "AdaptiveCard",
		"$schema": "http://adaptivecards.io/schemas/adaptive-card.json",
		"version": "1.2",
		"body": []map[string]any{
			{"type": "TextBlock", "text": "🎉 뽑기 결과!", "size": "Large", "weight": "Bolder", "color": "Accent"},
			{"type": "Image", "url": tier.ImageURL, "size": "Stretch", "height": "300px"},
			{"type": "TextBlock", "text": fmt.Sprintf("[%s] %s", tier.Grade, tier.Name), "size": "Medium", "weight": "Bolder", "color": color},
			{"type": "TextBlock", "text": fmt.Sprintf("남은 티켓: %d장", remaining), "isSubtle": true},
		},
		"actions": []map[string]any{
			{"type": "Action.Submit", "title": "🎲 다시 뽑기", "data": map[string]string{"command": redrawCommand}},
		},
	}
}
