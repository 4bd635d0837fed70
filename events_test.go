package turtle

import "testing"

func TestListenersFireAfterEachEffect(t *testing.T) {
	tt, _ := newTestTurtle()
	var got []EventType
	tt.On(func(e EventType) { got = append(got, e) })

	tt.Forward(10).Right(90).PenUp().SetWidth(2)

	want := []EventType{EventForward, EventRight, EventPenUp, EventSetWidth}
	if len(got) != len(want) {
		t.Fatalf("got %d events, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestQueuedOperationsNotifyAtReplay(t *testing.T) {
	tt, _ := newTestTurtle()
	var got []EventType
	tt.On(func(e EventType) { got = append(got, e) })

	tt.SetSpeed(50) // immediate, notifies now
	if len(got) != 1 || got[0] != EventSetSpeed {
		t.Fatalf("got %v, want [setspeed]", got)
	}

	tt.Forward(10).Left(45)
	if len(got) != 1 {
		t.Fatalf("queued calls notified early: %v", got)
	}

	tt.Drain()
	want := []EventType{EventSetSpeed, EventForward, EventLeft}
	if len(got) != len(want) {
		t.Fatalf("got %d events, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestListenersObserveAppliedState(t *testing.T) {
	tt, _ := newTestTurtle()
	var seen float64
	tt.On(func(e EventType) {
		if e == EventSetAngle {
			seen = tt.Angle()
		}
	})
	tt.SetAngle(135)
	if seen != 135 {
		t.Errorf("listener saw angle %f, want 135 (notify after the effect)", seen)
	}
}

func TestNilListenerIgnored(t *testing.T) {
	tt, _ := newTestTurtle()
	tt.On(nil)
	tt.Forward(1) // must not panic
}

func TestEventTypeString(t *testing.T) {
	cases := map[EventType]string{
		EventForward:    "forward",
		EventPenToggle:  "pentoggle",
		EventSetLineCap: "setlinecap",
		EventType(200):  "unknown",
	}
	for e, want := range cases {
		if got := e.String(); got != want {
			t.Errorf("EventType(%d).String() = %q, want %q", e, got, want)
		}
	}
}
