package events

import "testing"

func TestPublish_NonBlockingWhenFull(t *testing.T) {
	b := NewBus(1)

	if !b.Publish(Event{Kind: NestDeclared, EntityID: "nest-1"}) {
		t.Fatal("first publish should succeed")
	}
	if b.Publish(Event{Kind: NestDeclared, EntityID: "nest-2"}) {
		t.Fatal("second publish should drop, buffer is full")
	}

	got := <-b.Subscribe()
	if got.EntityID != "nest-1" {
		t.Fatalf("unexpected event %+v", got)
	}
}

func TestPublish_NilBusIsSafe(t *testing.T) {
	var b *Bus
	if b.Publish(Event{Kind: TurtleAdded}) {
		t.Fatal("publish on nil bus must report false")
	}
}
