package webex

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"webex_gacha/internal/domain"
)

func TestGetMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("method = %s; want GET", r.Method)
		}
		if r.URL.Path != "/msg123" {
			t.Errorf("path = %s; want /msg123", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer token" {
			t.Errorf("auth header = %q", got)
		}
		json.NewEncoder(w).Encode(Message{ID: "msg123", Text: "뽑기"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "token", time.Second)
	msg, err := c.GetMessage(context.Background(), "msg123")
	if err != nil {
		t.Fatal(err)
	}
	if msg.Text != "뽑기" {
		t.Fatalf("text = %q; want 뽑기", msg.Text)
	}
}

func TestGetMessageNonSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"invalid token"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "bad", time.Second)
	_, err := c.GetMessage(context.Background(), "msg123")

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v; want *APIError", err)
	}
	if apiErr.Op != "get_message" || apiErr.StatusCode != http.StatusUnauthorized {
		t.Fatalf("APIError = %+v", apiErr)
	}
	if apiErr.Body == "" {
		t.Fatal("APIError lost the response body")
	}
}

func TestSendText(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("content type = %q", r.Header.Get("Content-Type"))
		}
		json.NewDecoder(r.Body).Decode(&got)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "token", time.Second)
	if err := c.SendText(context.Background(), "room1", "티켓 부족"); err != nil {
		t.Fatal(err)
	}
	if got["roomId"] != "room1" || got["text"] != "티켓 부족" {
		t.Fatalf("payload = %v", got)
	}
}

func TestSendCardAttachment(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&got)
	}))
	defer srv.Close()

	tier := domain.PrizeTier{Name: "🐻 화이트 베어", Grade: domain.GradeR, Weight: 30}
	card := DrawResultCard(tier, 3, "뽑기")

	c := NewClient(srv.URL, "token", time.Second)
	if err := c.SendCard(context.Background(), "room1", card, "결과 확인"); err != nil {
		t.Fatal(err)
	}

	if got["markdown"] != "결과 확인" {
		t.Fatalf("markdown fallback = %v", got["markdown"])
	}
	attachments, ok := got["attachments"].([]any)
	if !ok || len(attachments) != 1 {
		t.Fatalf("attachments = %v", got["attachments"])
	}
	att := attachments[0].(map[string]any)
	if att["contentType"] != CardContentType {
		t.Fatalf("contentType = %v", att["contentType"])
	}
}

func TestSendTextNonSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("bad roomId"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "token", time.Second)
	err := c.SendText(context.Background(), "room1", "hi")

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v; want *APIError", err)
	}
	if apiErr.Op != "send_message" {
		t.Fatalf("op = %q", apiErr.Op)
	}
}
