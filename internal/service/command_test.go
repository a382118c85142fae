package service

import (
	"testing"

	"webex_gacha/internal/domain"
)

func TestResolveIntent(t *testing.T) {
	cases := []struct {
		text string
		want domain.Intent
	}{
		{"오늘 어드벤쳐 가자", domain.IntentEnterAdventure},
		{"뽑기 해줄래", domain.IntentDraw},
		{"안녕", domain.IntentUnknown},
		{"", domain.IntentUnknown},
		{"뽑기", domain.IntentDraw},
		// adventure keyword takes priority when both appear
		{"어드벤쳐에서 뽑기", domain.IntentEnterAdventure},
	}

	for _, tc := range cases {
		if got := ResolveIntent(tc.text); got != tc.want {
			t.Fatalf("ResolveIntent(%q) = %v; want %v", tc.text, got, tc.want)
		}
	}
}
