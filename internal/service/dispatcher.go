package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"webex_gacha/internal/dedup"
	"webex_gacha/internal/domain"
	"webex_gacha/internal/game"
	"webex_gacha/internal/ledger"
	"webex_gacha/internal/logger"
	"webex_gacha/internal/metrics"
	"webex_gacha/internal/webex"
)

// Gateway is the outbound side of the messaging platform.
type Gateway interface {
	GetMessage(ctx context.Context, id string) (*webex.Message, error)
	SendText(ctx context.Context, roomID, text string) error
	SendCard(ctx context.Context, roomID string, card webex.Card, fallback string) error
}

const (
	msgInsufficientTickets = "티켓 부족"
	msgFetchFailed         = "메시지를 읽지 못했어요. 잠시 후 다시 시도해주세요."
	cardFallback           = "결과 확인"
)

// Dispatcher runs the event pipeline: self-filter, dedup, normalize, ledger,
// intent resolution, and the outbound reply.
type Dispatcher struct {
	gateway    Gateway
	ledger     ledger.Ledger
	engine     *game.Engine
	dedup      *dedup.Cache
	normalizer *Normalizer
	botMarker  string
	log        *slog.Logger
}

// NewDispatcher creates a dispatcher. cache may be nil to disable redelivery
// suppression.
func NewDispatcher(gateway Gateway, l ledger.Ledger, engine *game.Engine, cache *dedup.Cache, botMarker string) *Dispatcher {
	return &Dispatcher{
		gateway:    gateway,
		ledger:     l,
		engine:     engine,
		dedup:      cache,
		normalizer: NewNormalizer(gateway),
		botMarker:  botMarker,
		log:        logger.With("component", "dispatcher"),
	}
}

// Dispatch handles one webhook delivery end to end. Errors never escape: every
// failure is logged here and the webhook caller still acknowledges receipt, so
// the platform does not redeliver.
func (d *Dispatcher) Dispatch(ctx context.Context, data webex.EnvelopeData) {
	defer func() {
		if r := recover(); r != nil {
			d.log.Error("dispatch panic", "panic", r, "user", data.PersonEmail)
			metrics.WebhookEvents.WithLabelValues("panic").Inc()
		}
	}()

	if d.isSelf(data.PersonEmail) {
		d.log.Debug("ignoring own message", "user", data.PersonEmail)
		metrics.WebhookEvents.WithLabelValues("self").Inc()
		return
	}

	if d.dedup.Seen(ctx, data.ID) {
		d.log.Info("duplicate delivery dropped", "event_id", data.ID, "user", data.PersonEmail)
		metrics.WebhookEvents.WithLabelValues("duplicate").Inc()
		return
	}

	ev, err := d.normalizer.Normalize(ctx, data)
	if err != nil {
		d.logGatewayError("message fetch failed", err, data.PersonEmail)
		metrics.WebhookEvents.WithLabelValues("fetch_error").Inc()
		if sendErr := d.gateway.SendText(ctx, data.RoomID, msgFetchFailed); sendErr != nil {
			d.logGatewayError("failure notice not delivered", sendErr, data.PersonEmail)
		}
		return
	}

	acct := d.ledger.GetOrCreate(ev.UserID)

	intent := ResolveIntent(ev.Command)
	d.log.Info("command resolved", "user", ev.UserID, "intent", intent.String())

	switch intent {
	case domain.IntentEnterAdventure:
		d.handleAdventure(ctx, ev, acct)
	case domain.IntentDraw:
		d.handleDraw(ctx, ev)
	default:
		d.log.Info("unknown command", "user", ev.UserID, "command", ev.Command)
		metrics.WebhookEvents.WithLabelValues("unknown").Inc()
	}
}

func (d *Dispatcher) isSelf(userID string) bool {
	return strings.Contains(userID, d.botMarker)
}

func (d *Dispatcher) handleAdventure(ctx context.Context, ev domain.CanonicalEvent, acct domain.UserAccount) {
	name := ev.UserID
	if i := strings.Index(name, "@"); i > 0 {
		name = name[:i]
	}

	text := fmt.Sprintf("🎢 %s님 환영합니다! (티켓: %d장)", name, acct.Tickets)
	if err := d.gateway.SendText(ctx, ev.RoomID, text); err != nil {
		d.logGatewayError("welcome not delivered", err, ev.UserID)
		metrics.WebhookEvents.WithLabelValues("notify_error").Inc()
		return
	}
	metrics.WebhookEvents.WithLabelValues("welcome").Inc()
}

func (d *Dispatcher) handleDraw(ctx context.Context, ev domain.CanonicalEvent) {
	// Consume first, then draw: a notification failure must never leave a
	// displayed prize without a spent ticket. The ticket lock is released
	// before any gateway I/O.
	remaining, ok := d.ledger.TryConsumeTicket(ev.UserID)
	if !ok {
		if err := d.gateway.SendText(ctx, ev.RoomID, msgInsufficientTickets); err != nil {
			d.logGatewayError("insufficient-tickets notice not delivered", err, ev.UserID)
			metrics.WebhookEvents.WithLabelValues("notify_error").Inc()
			return
		}
		metrics.WebhookEvents.WithLabelValues("no_tickets").Inc()
		return
	}

	tier := d.engine.Draw()
	metrics.Draws.WithLabelValues(string(tier.Grade)).Inc()
	d.log.Info("draw completed", "user", ev.UserID, "grade", string(tier.Grade), "prize", tier.Name, "remaining", remaining)

	card := webex.DrawResultCard(tier, remaining, KeywordDraw)
	if err := d.gateway.SendCard(ctx, ev.RoomID, card, cardFallback); err != nil {
		// The ticket is already spent; the loss is accepted and logged.
		d.logGatewayError("draw card not delivered", err, ev.UserID)
		metrics.WebhookEvents.WithLabelValues("notify_error").Inc()
		return
	}
	metrics.WebhookEvents.WithLabelValues("draw").Inc()
}

func (d *Dispatcher) logGatewayError(msg string, err error, userID string) {
	var apiErr *webex.APIError
	if errors.As(err, &apiErr) {
		d.log.Error(msg, "user", userID, "op", apiErr.Op, "status", apiErr.StatusCode, "body", apiErr.Body)
		return
	}
	d.log.Error(msg, "user", userID, "error", err)
}
