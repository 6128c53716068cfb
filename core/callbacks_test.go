package core

import (
	"reflect"
	"sync"
	"sync/atomic"
	"testing"
)

func uartEvent(ts uint32) *SoftwareEvent {
	return &SoftwareEvent{EventBase: NewEventBase(UARTRxCplt, ts)}
}

func TestRegisterThenDispatchInvokesOnce(t *testing.T) {
	app, _ := newTestApp(t, nil)

	calls := 0
	id := app.RegisterEventCallback(UARTRxCplt, func(ev Event) bool {
		calls++
		if ev.Type() != UARTRxCplt {
			t.Errorf("callback got %v", ev.Type())
		}
		return false
	})
	if id == InvalidCallbackID {
		t.Fatal("RegisterEventCallback returned invalid id")
	}

	if consumed := app.DispatchEvent(uartEvent(1)); consumed {
		t.Error("event reported consumed by non-consuming callback")
	}
	if calls != 1 {
		t.Errorf("callback invoked %d times, want 1", calls)
	}
}

func TestUnregisterStopsDelivery(t *testing.T) {
	app, _ := newTestApp(t, nil)

	calls := 0
	id := app.RegisterEventCallback(UARTRxCplt, func(Event) bool { calls++; return false })
	app.UnregisterEventCallback(UARTRxCplt, id)
	app.DispatchEvent(uartEvent(1))

	if calls != 0 {
		t.Errorf("unregistered callback invoked %d times", calls)
	}
	if n := app.CallbackCount(UARTRxCplt); n != 0 {
		t.Errorf("CallbackCount = %d, want 0", n)
	}
}

func TestShortCircuitScenario(t *testing.T) {
	app, _ := newTestApp(t, nil)

	var order []string
	app.RegisterEventCallback(UARTRxCplt, func(Event) bool { order = append(order, "A"); return false })
	app.RegisterEventCallback(UARTRxCplt, func(Event) bool { order = append(order, "B"); return true })

	if !app.DispatchEvent(uartEvent(1)) {
		t.Error("expected event to be consumed by B")
	}
	if want := []string{"A", "B"}; !reflect.DeepEqual(order, want) {
		t.Fatalf("first dispatch order = %v, want %v", order, want)
	}

	order = nil
	app.RegisterEventCallback(UARTRxCplt, func(Event) bool { order = append(order, "C"); return false })
	app.DispatchEvent(uartEvent(2))
	if want := []string{"A", "B"}; !reflect.DeepEqual(order, want) {
		t.Errorf("second dispatch order = %v, want %v", order, want)
	}
}

func TestRemovedSlotIsReusedWithoutCompaction(t *testing.T) {
	ct := NewCallbackTable()

	var order []int
	mk := func(n int) EventCallback {
		return func(Event) bool { order = append(order, n); return false }
	}
	id0 := ct.Register(TimPeriodElapsed, mk(0))
	id1 := ct.Register(TimPeriodElapsed, mk(1))
	id2 := ct.Register(TimPeriodElapsed, mk(2))
	if id0 != 0 || id1 != 1 || id2 != 2 {
		t.Fatalf("ids = %d %d %d, want 0 1 2", id0, id1, id2)
	}

	ct.Unregister(TimPeriodElapsed, id1)
	ev := &SoftwareEvent{EventBase: NewEventBase(TimPeriodElapsed, 0)}
	ct.Dispatch(ev)
	if want := []int{0, 2}; !reflect.DeepEqual(order, want) {
		t.Errorf("order after removal = %v, want %v", order, want)
	}

	// The gap is the first free slot, so the next registration lands there
	// and runs before slot 2.
	if id := ct.Register(TimPeriodElapsed, mk(3)); id != 1 {
		t.Errorf("re-registration got slot %d, want 1", id)
	}
	order = nil
	ct.Dispatch(ev)
	if want := []int{0, 3, 2}; !reflect.DeepEqual(order, want) {
		t.Errorf("order after re-registration = %v, want %v", order, want)
	}
}

func TestCapacityExhaustion(t *testing.T) {
	ct := NewCallbackTable()
	for i := 0; i < MaxCallbacksPerEvent; i++ {
		if id := ct.Register(ADCConvCplt, func(Event) bool { return false }); id != CallbackID(i) {
			t.Fatalf("slot %d: got id %d", i, id)
		}
	}
	if id := ct.Register(ADCConvCplt, func(Event) bool { return false }); id != InvalidCallbackID {
		t.Errorf("register past capacity returned %d", id)
	}
	// Other types are unaffected.
	if id := ct.Register(ADCError, func(Event) bool { return false }); id != 0 {
		t.Errorf("unrelated type got slot %d", id)
	}
}

func TestUnregisterOutOfRangeIsNoop(t *testing.T) {
	ct := NewCallbackTable()
	ct.Unregister(UARTTxCplt, -1)
	ct.Unregister(UARTTxCplt, MaxCallbacksPerEvent)
	ct.Unregister(UARTTxCplt, 3)
	ct.Unregister(EventTypeCount, 0)
	if ct.Count(UARTTxCplt) != 0 {
		t.Error("unexpected occupied slot")
	}
}

func TestRegisterRejectsBadInput(t *testing.T) {
	ct := NewCallbackTable()
	if id := ct.Register(UARTTxCplt, nil); id != InvalidCallbackID {
		t.Errorf("nil callback registered at %d", id)
	}
	if id := ct.Register(EventTypeCount, func(Event) bool { return false }); id != InvalidCallbackID {
		t.Errorf("invalid type registered at %d", id)
	}
}

func TestDispatchOnlyReachesMatchingType(t *testing.T) {
	app, _ := newTestApp(t, nil)

	called := false
	app.RegisterEventCallback(UARTTxCplt, func(Event) bool { called = true; return false })
	app.DispatchEvent(uartEvent(1))
	if called {
		t.Error("UART_TxCplt callback ran for UART_RxCplt")
	}
	if app.DispatchEvent(nil) {
		t.Error("nil event reported consumed")
	}
}

// Registrants churn slots while a dispatcher fires events. Each event
// carries the epoch it started at; a callback retired at or before that
// epoch must not be invoked.
func TestConcurrentRegisterUnregisterDispatch(t *testing.T) {
	const (
		registrants = 4
		rounds      = 2000
	)
	ct := NewCallbackTable()
	var (
		epoch      atomic.Uint32
		late       atomic.Int32
		badID      atomic.Int32
		badCount   atomic.Int32
		stop       atomic.Bool
		wg         sync.WaitGroup
		dispatcher sync.WaitGroup
	)

	dispatcher.Add(1)
	go func() {
		defer dispatcher.Done()
		for !stop.Load() {
			ev := &SoftwareEvent{EventBase: NewEventBase(UserEvent1, 0), Data: epoch.Load()}
			ct.Dispatch(ev)
			if n := ct.Count(UserEvent1); n < 0 || n > MaxCallbacksPerEvent {
				badCount.Add(1)
			}
		}
	}()

	for g := 0; g < registrants; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < rounds; i++ {
				var retired atomic.Uint32
				id := ct.Register(UserEvent1, func(ev Event) bool {
					if r := retired.Load(); r != 0 && r <= ev.(*SoftwareEvent).Data {
						late.Add(1)
					}
					return false
				})
				if id == InvalidCallbackID {
					continue
				}
				if id < 0 || int(id) >= MaxCallbacksPerEvent {
					badID.Add(1)
					continue
				}
				ct.Unregister(UserEvent1, id)
				retired.Store(epoch.Add(1))
			}
		}()
	}
	wg.Wait()
	stop.Store(true)
	dispatcher.Wait()

	if n := badID.Load(); n != 0 {
		t.Errorf("%d registrations returned an out-of-range id", n)
	}
	if n := badCount.Load(); n != 0 {
		t.Errorf("Count left [0, %d] %d times", MaxCallbacksPerEvent, n)
	}
	if n := late.Load(); n != 0 {
		t.Errorf("%d callbacks ran in a dispatch that started after Unregister returned", n)
	}
	if n := ct.Count(UserEvent1); n != 0 {
		t.Errorf("Count = %d after every registrant unregistered", n)
	}
}

func TestDispatchAfterUnregisterSkipsCallback(t *testing.T) {
	ct := NewCallbackTable()
	var unregistered, ranLate bool
	id := ct.Register(UserEvent2, func(Event) bool {
		if unregistered {
			ranLate = true
		}
		return false
	})
	ct.Dispatch(&SoftwareEvent{EventBase: NewEventBase(UserEvent2, 1)})
	ct.Unregister(UserEvent2, id)
	unregistered = true
	ct.Dispatch(&SoftwareEvent{EventBase: NewEventBase(UserEvent2, 2)})
	if ranLate {
		t.Error("callback ran after Unregister returned")
	}
}
