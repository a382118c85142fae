package service

import (
	"strings"

	"webex_gacha/internal/domain"
)

// Supported command keywords.
const (
	KeywordAdventure = "어드벤쳐"
	KeywordDraw      = "뽑기"
)

// keywordIntents maps command keywords to intents. Order is the match
// priority: the adventure keyword wins when a message contains both.
var keywordIntents = []struct {
	keyword string
	intent  domain.Intent
}{
	{KeywordAdventure, domain.IntentEnterAdventure},
	{KeywordDraw, domain.IntentDraw},
}

// ResolveIntent maps free-form command text to an intent by case-sensitive
// substring containment; the first matching keyword wins.
func ResolveIntent(text string) domain.Intent {
	for _, ki := range keywordIntents {
		if strings.Contains(text, ki.keyword) {
			return ki.intent
		}
	}
	return domain.IntentUnknown
}
