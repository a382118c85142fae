package service

import (
	"context"
	"fmt"

	"webex_gacha/internal/domain"
	"webex_gacha/internal/webex"
)

// MessageFetcher is the message-lookup side of the Webex gateway.
type MessageFetcher interface {
	GetMessage(ctx context.Context, id string) (*webex.Message, error)
}

// Normalizer converts raw webhook payloads into canonical events.
type Normalizer struct {
	fetcher MessageFetcher
}

func NewNormalizer(fetcher MessageFetcher) *Normalizer {
	return &Normalizer{fetcher: fetcher}
}

// Normalize extracts the (user, room, command) triple. Button actions carry
// the command inline; plain messages only carry the message id, so the text
// comes from a message-body lookup against the gateway.
func (n *Normalizer) Normalize(ctx context.Context, data webex.EnvelopeData) (domain.CanonicalEvent, error) {
	ev := domain.CanonicalEvent{
		UserID:    data.PersonEmail,
		RoomID:    data.RoomID,
		MessageID: data.ID,
	}

	if data.IsButtonAction() {
		ev.Command = data.InputCommand()
		return ev, nil
	}

	msg, err := n.fetcher.GetMessage(ctx, data.ID)
	if err != nil {
		return ev, fmt.Errorf("fetch message %s: %w", data.ID, err)
	}
	ev.Command = msg.Text
	return ev, nil
}
