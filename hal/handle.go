package hal

import (
	"errors"
	"sync"
)

// Handle identifies a peripheral instance in events. It is a back-reference
// for identification only; events never own the peripheral.
type Handle uint16

// NoHandle marks an event without a peripheral instance.
const NoHandle Handle = 0

var (
	ErrHandleExists  = errors.New("peripheral name already registered")
	ErrTableFull     = errors.New("handle table full")
	ErrUnknownHandle = errors.New("unknown peripheral handle")
)

// MaxHandles bounds the number of peripherals a table can name.
const MaxHandles = 64

// HandleTable assigns stable handles to peripheral names. Handles start at 1.
type HandleTable struct {
	mu     sync.RWMutex
	names  []string
	byName map[string]Handle
}

// NewHandleTable returns an empty table.
func NewHandleTable() *HandleTable {
	return &HandleTable{byName: make(map[string]Handle)}
}

// Register names a peripheral and returns its handle.
func (t *HandleTable) Register(name string) (Handle, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, exists := t.byName[name]; exists {
		return NoHandle, ErrHandleExists
	}
	if len(t.names) >= MaxHandles {
		return NoHandle, ErrTableFull
	}
	t.names = append(t.names, name)
	h := Handle(len(t.names))
	t.byName[name] = h
	return h, nil
}

// MustRegister is Register for board setup code, where a failure is a wiring bug.
func (t *HandleTable) MustRegister(name string) Handle {
	h, err := t.Register(name)
	if err != nil {
		panic("hal: register " + name + ": " + err.Error())
	}
	return h
}

// Lookup returns the handle for name.
func (t *HandleTable) Lookup(name string) (Handle, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	h, ok := t.byName[name]
	return h, ok
}

// Name returns the name registered for h.
func (t *HandleTable) Name(h Handle) (string, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if h == NoHandle || int(h) > len(t.names) {
		return "", ErrUnknownHandle
	}
	return t.names[h-1], nil
}

// Len returns the number of registered peripherals.
func (t *HandleTable) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.names)
}
