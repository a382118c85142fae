package dedup

import (
	"context"
	"testing"
	"time"
)

func TestSeenMemory(t *testing.T) {
	c := New(nil, time.Minute)
	ctx := context.Background()

	if c.Seen(ctx, "ev1") {
		t.Fatal("first sighting reported as duplicate")
	}
	if !c.Seen(ctx, "ev1") {
		t.Fatal("redelivery not detected")
	}
	if c.Seen(ctx, "ev2") {
		t.Fatal("distinct event reported as duplicate")
	}
}

func TestSeenExpires(t *testing.T) {
	c := New(nil, 5*time.Millisecond)
	ctx := context.Background()

	c.Seen(ctx, "ev1")
	time.Sleep(10 * time.Millisecond)

	if c.Seen(ctx, "ev1") {
		t.Fatal("expired entry still reported as duplicate")
	}
}

func TestSeenEmptyID(t *testing.T) {
	c := New(nil, time.Minute)
	if c.Seen(context.Background(), "") {
		t.Fatal("empty id must never dedup")
	}
}
