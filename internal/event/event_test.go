package event

import "testing"

type counter struct {
	got []Event
}

func (c *counter) OnEvent(e Event) { c.got = append(c.got, e) }

func TestDispatchReachesOnlySubscribers(t *testing.T) {
	d := NewDispatcher()
	activated := &counter{}
	expired := &counter{}
	d.Subscribe(ShieldActivated, activated)
	d.Subscribe(ShieldExpired, expired)

	d.Dispatch(Event{Type: ShieldActivated, Entity: 7, Data: ShieldEventData{Charges: 2}})

	if len(activated.got) != 1 || len(expired.got) != 0 {
		t.Fatalf("activated=%d expired=%d, want 1 and 0", len(activated.got), len(expired.got))
	}
	if e := activated.got[0]; e.Entity != 7 || e.Data.(ShieldEventData).Charges != 2 {
		t.Errorf("unexpected event %+v", e)
	}
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	a, b := &counter{}, &counter{}
	d.Subscribe(ShieldRecharged, a)
	d.Subscribe(ShieldRecharged, b)

	d.Unsubscribe(ShieldRecharged, a)
	d.Dispatch(Event{Type: ShieldRecharged})

	if len(a.got) != 0 || len(b.got) != 1 {
		t.Errorf("a=%d b=%d, want 0 and 1", len(a.got), len(b.got))
	}
}

func TestListenerFunc(t *testing.T) {
	d := NewDispatcher()
	calls := 0
	d.Subscribe(GameRestarted, ListenerFunc(func(Event) { calls++ }))

	d.Dispatch(Event{Type: GameRestarted})
	d.Dispatch(Event{Type: ShieldExpired})
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}
