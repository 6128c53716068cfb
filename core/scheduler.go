package core

// TimerResult tells the queue what to do with a timer after its handler ran.
type TimerResult uint8

const (
	TimerDone TimerResult = iota
	TimerReschedule
)

// Timer is a software timer. A handler that returns TimerReschedule must
// advance WakeTime first.
type Timer struct {
	WakeTime uint32
	Handler  func(*Timer) TimerResult

	next    *Timer
	pending bool
}

// Pending reports whether the timer is queued.
func (t *Timer) Pending() bool { return t.pending }

// TimerQueue is a list of timers sorted by wake time.
type TimerQueue struct {
	head *Timer
}

// Schedule queues t. Scheduling an already queued timer moves it.
func (q *TimerQueue) Schedule(t *Timer) {
	Assert(t.Handler != nil, "TimerQueue.Schedule: timer has no handler")
	state := disableInterrupts()
	defer restoreInterrupts(state)

	if t.pending {
		q.remove(t)
	}
	q.insert(t)
}

// Cancel removes t if it is queued.
func (q *TimerQueue) Cancel(t *Timer) {
	state := disableInterrupts()
	defer restoreInterrupts(state)

	if t.pending {
		q.remove(t)
	}
}

// Len returns the number of queued timers.
func (q *TimerQueue) Len() int {
	state := disableInterrupts()
	defer restoreInterrupts(state)

	n := 0
	for t := q.head; t != nil; t = t.next {
		n++
	}
	return n
}

// Dispatch runs every timer due at now, in wake-time order.
func (q *TimerQueue) Dispatch(now uint32) {
	state := disableInterrupts()
	defer restoreInterrupts(state)

	for q.head != nil && !TickBefore(now, q.head.WakeTime) {
		t := q.head
		q.head = t.next
		t.next = nil
		t.pending = false

		if t.Handler(t) == TimerReschedule && !t.pending {
			q.insert(t)
		}
	}
}

// insert keeps FIFO order among timers with equal wake times.
func (q *TimerQueue) insert(t *Timer) {
	t.pending = true
	if q.head == nil || TickBefore(t.WakeTime, q.head.WakeTime) {
		t.next = q.head
		q.head = t
		return
	}
	cur := q.head
	for cur.next != nil && !TickBefore(t.WakeTime, cur.next.WakeTime) {
		cur = cur.next
	}
	t.next = cur.next
	cur.next = t
}

func (q *TimerQueue) remove(t *Timer) {
	if q.head == t {
		q.head = t.next
	} else {
		for cur := q.head; cur != nil; cur = cur.next {
			if cur.next == t {
				cur.next = t.next
				break
			}
		}
	}
	t.next = nil
	t.pending = false
}
