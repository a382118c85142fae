package service

import (
	"context"
	"testing"

	"webex_gacha/internal/webex"
)

func TestNormalizeButtonAction(t *testing.T) {
	gw := &fakeGateway{}
	n := NewNormalizer(gw)

	ev, err := n.Normalize(context.Background(), webex.EnvelopeData{
		ID:          "a1",
		RoomID:      "room1",
		PersonEmail: "alice@example.com",
		Inputs:      map[string]any{"command": "뽑기"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if ev.Command != "뽑기" {
		t.Fatalf("command = %q; want 뽑기", ev.Command)
	}
	if gw.fetchCalls != 0 {
		t.Fatalf("button action made %d lookups; want 0", gw.fetchCalls)
	}
	if ev.UserID != "alice@example.com" || ev.RoomID != "room1" || ev.MessageID != "a1" {
		t.Fatalf("envelope fields lost: %+v", ev)
	}
}

func TestNormalizePlainMessageFetches(t *testing.T) {
	gw := &fakeGateway{messages: map[string]string{"m1": "어드벤쳐"}}
	n := NewNormalizer(gw)

	ev, err := n.Normalize(context.Background(), webex.EnvelopeData{
		ID:          "m1",
		RoomID:      "room1",
		PersonEmail: "bob@example.com",
	})
	if err != nil {
		t.Fatal(err)
	}
	if ev.Command != "어드벤쳐" {
		t.Fatalf("command = %q", ev.Command)
	}
	if gw.fetchCalls != 1 {
		t.Fatalf("lookups = %d; want 1", gw.fetchCalls)
	}
}

func TestNormalizeButtonWithoutCommandField(t *testing.T) {
	gw := &fakeGateway{}
	n := NewNormalizer(gw)

	ev, err := n.Normalize(context.Background(), webex.EnvelopeData{
		ID:          "a1",
		RoomID:      "room1",
		PersonEmail: "carol@example.com",
		Inputs:      map[string]any{"other": 1},
	})
	if err != nil {
		t.Fatal(err)
	}
	if ev.Command != "" {
		t.Fatalf("command = %q; want empty", ev.Command)
	}
	if gw.fetchCalls != 0 {
		t.Fatal("inputs present must never trigger a lookup")
	}
}
