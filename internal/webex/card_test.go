package webex

import (
	"testing"

	"webex_gacha/internal/domain"
)

func TestDrawResultCardColors(t *testing.T) {
	cases := []struct {
		grade domain.Grade
		want  string
	}{
		{domain.GradeSSR, "Good"},
		{domain.GradeSR, "Good"},
		{domain.GradeR, "Warning"},
		{domain.GradeN, "Warning"},
	}

	for _, tc := range cases {
		card := DrawResultCard(domain.PrizeTier{Name: "x", Grade: tc.grade}, 5, "뽑기")
		body := card["body"].([]map[string]any)
		if got := body[2]["color"]; got != tc.want {
			t.Fatalf("grade %s color = %v; want %s", tc.grade, got, tc.want)
		}
	}
}

func TestDrawResultCardRedrawAction(t *testing.T) {
	card := DrawResultCard(domain.PrizeTier{Name: "x", Grade: domain.GradeN}, 0, "뽑기")

	actions := card["actions"].([]map[string]any)
	if len(actions) != 1 {
		t.Fatalf("actions = %v", actions)
	}
	data := actions[0]["data"].(map[string]string)
	if data["command"] != "뽑기" {
		t.Fatalf("redraw command = %q", data["command"])
	}

	body := card["body"].([]map[string]any)
	if got := body[3]["text"]; got != "남은 티켓: 0장" {
		t.Fatalf("subtitle = %v", got)
	}
}
