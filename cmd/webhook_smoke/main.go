// Manual smoke tool: posts sample webhook envelopes at a running instance.
//
//	go run ./cmd/webhook_smoke -target http://localhost:8080 -user smoke@example.com -text "뽑기"
//	go run ./cmd/webhook_smoke -button -command "뽑기"
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"webex_gacha/internal/webex"
)

func main() {
	target := flag.String("target", "http://localhost:8080", "bot base URL")
	user := flag.String("user", "smoke@example.com", "sender email")
	room := flag.String("room", "smoke-room", "room id")
	text := flag.String("text", "어드벤쳐", "message text (plain-message mode)")
	button := flag.Bool("button", false, "send a button action instead of a plain message")
	command := flag.String("command", "뽑기", "command field (button mode)")
	flag.Parse()

	id := fmt.Sprintf("smoke-%d", time.Now().UnixNano())
	env := webex.Envelope{
		Resource: "messages",
		Data: webex.EnvelopeData{
			ID:          id,
			RoomID:      *room,
			PersonEmail: *user,
		},
	}
	if *button {
		env.Resource = "attachmentActions"
		env.Data.Inputs = map[string]any{"command": *command}
	} else {
		// Plain-message mode: the bot will call back to the messages API to
		// fetch the text, so this only round-trips against a real or mocked
		// gateway. The text flag is just logged for the operator.
		log.Printf("plain message %s (text %q is resolved via the gateway lookup)", id, *text)
	}

	body, err := json.Marshal(env)
	if err != nil {
		log.Fatalf("marshal envelope: %v", err)
	}

	resp, err := http.Post(*target+"/webhook", "application/json", bytes.NewReader(body))
	if err != nil {
		log.Fatalf("post webhook: %v", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	log.Printf("status %d: %s", resp.StatusCode, respBody)
}
