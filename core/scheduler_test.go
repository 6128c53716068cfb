package core

import (
	"reflect"
	"testing"
)

func TestTimerQueueOrder(t *testing.T) {
	var q TimerQueue
	var order []uint32
	handler := func(tm *Timer) TimerResult {
		order = append(order, tm.WakeTime)
		return TimerDone
	}

	for _, wake := range []uint32{50, 10, 30, 20, 40} {
		q.Schedule(&Timer{WakeTime: wake, Handler: handler})
	}
	if q.Len() != 5 {
		t.Fatalf("Len = %d, want 5", q.Len())
	}

	q.Dispatch(35)
	if want := []uint32{10, 20, 30}; !reflect.DeepEqual(order, want) {
		t.Errorf("fired %v, want %v", order, want)
	}
	if q.Len() != 2 {
		t.Errorf("Len after dispatch = %d, want 2", q.Len())
	}
}

func TestTimerQueueWrapAround(t *testing.T) {
	var q TimerQueue
	var order []string
	q.Schedule(&Timer{WakeTime: 5, Handler: func(*Timer) TimerResult { order = append(order, "after-wrap"); return TimerDone }})
	q.Schedule(&Timer{WakeTime: 0xFFFFFFF0, Handler: func(*Timer) TimerResult { order = append(order, "before-wrap"); return TimerDone }})

	q.Dispatch(0xFFFFFFF8)
	if want := []string{"before-wrap"}; !reflect.DeepEqual(order, want) {
		t.Fatalf("fired %v, want %v", order, want)
	}
	q.Dispatch(6)
	if want := []string{"before-wrap", "after-wrap"}; !reflect.DeepEqual(order, want) {
		t.Errorf("fired %v, want %v", order, want)
	}
}

func TestTimerRescheduleAndCancel(t *testing.T) {
	var q TimerQueue
	count := 0
	tm := &Timer{WakeTime: 10, Handler: func(tm *Timer) TimerResult {
		count++
		tm.WakeTime += 10
		return TimerReschedule
	}}
	q.Schedule(tm)
	q.Dispatch(10)
	q.Dispatch(20)
	if count != 2 || !tm.Pending() {
		t.Fatalf("count=%d pending=%v", count, tm.Pending())
	}
	q.Cancel(tm)
	q.Dispatch(100)
	if count != 2 || tm.Pending() {
		t.Errorf("cancelled timer: count=%d pending=%v", count, tm.Pending())
	}
}

func TestScheduleMovesQueuedTimer(t *testing.T) {
	var q TimerQueue
	fired := false
	tm := &Timer{WakeTime: 10, Handler: func(*Timer) TimerResult { fired = true; return TimerDone }}
	q.Schedule(tm)
	tm.WakeTime = 50
	q.Schedule(tm)
	if q.Len() != 1 {
		t.Fatalf("Len = %d, want 1", q.Len())
	}
	q.Dispatch(20)
	if fired {
		t.Error("moved timer fired at its old wake time")
	}
}

func TestScheduleWithoutHandlerAsserts(t *testing.T) {
	var q TimerQueue
	expectAssert(t, func() { q.Schedule(&Timer{WakeTime: 1}) })
}

func TestTickHelpers(t *testing.T) {
	if !TickBefore(0xFFFFFFFE, 1) {
		t.Error("TickBefore does not handle wrap")
	}
	if TicksSince(0xFFFFFFFE, 2) != 4 {
		t.Errorf("TicksSince = %d, want 4", TicksSince(0xFFFFFFFE, 2))
	}
	if TicksFromMS(250) != 250 || TicksToMS(250) != 250 {
		t.Error("1 kHz tick conversion mismatch")
	}

	SetTime(10)
	AdvanceTime(5)
	if GetTime() != 15 {
		t.Errorf("GetTime = %d, want 15", GetTime())
	}
}
