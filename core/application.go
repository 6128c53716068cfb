package core

// Application owns the modules, runs them cooperatively and owns the
// callback table that interrupt bridges dispatch into.
//
// The module list is main-context state. Only the callback table and
// DispatchEvent may be touched from interrupt context.
type Application struct {
	modules  []Module
	nextID   ModuleID
	removals []ModuleID

	callbacks *CallbackTable
	timers    TimerQueue
	features  Features

	log   *Logger
	clock func() uint32
	idle  func()
	onRun func()
}

// Option configures an Application.
type Option func(*Application)

// WithLogger sets the application logger.
func WithLogger(l *Logger) Option {
	return func(a *Application) { a.log = l }
}

// WithClock replaces the tick source used to stamp events and run timers.
func WithClock(clock func() uint32) Option {
	return func(a *Application) { a.clock = clock }
}

// WithIdle sets what Run does between iterations, typically a WFI.
func WithIdle(idle func()) Option {
	return func(a *Application) { a.idle = idle }
}

// WithRunHook sets a function called at the start of every iteration.
func WithRunHook(fn func()) Option {
	return func(a *Application) { a.onRun = fn }
}

// NewApplication builds an application from cfg. A nil cfg means DefaultConfig.
func NewApplication(cfg *Config, opts ...Option) *Application {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	a := &Application{
		nextID:    1,
		callbacks: NewCallbackTable(),
		features:  cfg.Features(),
		clock:     GetTime,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.log == nil {
		a.log = DefaultLogger()
	}
	if lvl, err := ParseLevel(cfg.LogLevel); err == nil {
		a.log.SetLevel(lvl)
	}
	return a
}

// Logger returns the application logger.
func (a *Application) Logger() *Logger { return a.log }

// Features returns the enabled event features.
func (a *Application) Features() Features { return a.features }

// CheckFeature returns ErrFeatureDisabled if events of category c are off.
func (a *Application) CheckFeature(c EventCategory) error {
	if !a.features.Allows(c) {
		return &FeatureError{Category: c}
	}
	return nil
}

// Now returns the current tick.
func (a *Application) Now() uint32 { return a.clock() }

// AddModule registers m, assigns it the next id and returns it.
// Registering the same module twice is a fatal assertion.
func AddModule[T Module](a *Application, m T) T {
	b := m.moduleBase()
	Assert(b.id == InvalidModuleID, "AddModule: module "+m.Label()+" is already registered")

	b.id = a.nextID
	a.nextID++
	a.modules = append(a.modules, m)
	a.log.Debug("module added: " + m.Label() + " id=" + utoa(uint32(b.id)))
	return m
}

// GetModule returns the module with the given id as a T. An unknown id or a
// module of another type is a fatal assertion.
func GetModule[T Module](a *Application, id ModuleID) T {
	m, ok := a.lookup(id)
	if !ok {
		AssertFailed("GetModule: no module with id " + utoa(uint32(id)))
	}
	t, ok := m.(T)
	if !ok {
		AssertFailed("GetModule: module " + utoa(uint32(id)) + " (" + m.Label() + ") has another type")
	}
	return t
}

// FindModule is the non-fatal form of GetModule.
func (a *Application) FindModule(id ModuleID) (Module, bool) {
	return a.lookup(id)
}

func (a *Application) lookup(id ModuleID) (Module, bool) {
	if id == InvalidModuleID || a.removalPending(id) {
		return nil, false
	}
	for _, m := range a.modules {
		if m.moduleBase().id == id {
			return m, true
		}
	}
	return nil, false
}

// Modules returns the registered modules in registration order.
func (a *Application) Modules() []Module {
	out := make([]Module, 0, len(a.modules))
	for _, m := range a.modules {
		if !a.removalPending(m.moduleBase().id) {
			out = append(out, m)
		}
	}
	return out
}

// RemoveModule schedules a module for removal at the end of the current
// iteration, or the next one if no iteration is running. Unknown ids are ignored.
func (a *Application) RemoveModule(id ModuleID) {
	if _, ok := a.lookup(id); !ok {
		return
	}
	a.removals = append(a.removals, id)
}

func (a *Application) removalPending(id ModuleID) bool {
	for _, r := range a.removals {
		if r == id {
			return true
		}
	}
	return false
}

// processRemovals drops queued modules and tears them down.
func (a *Application) processRemovals() {
	if len(a.removals) == 0 {
		return
	}
	pending := a.removals
	a.removals = nil

	kept := a.modules[:0]
	for _, m := range a.modules {
		remove := false
		for _, id := range pending {
			if m.moduleBase().id == id {
				remove = true
				break
			}
		}
		if !remove {
			kept = append(kept, m)
			continue
		}
		a.teardown(m)
		a.log.Debug("module removed: " + m.Label() + " id=" + utoa(uint32(m.moduleBase().id)))
	}
	for i := len(kept); i < len(a.modules); i++ {
		a.modules[i] = nil
	}
	a.modules = kept
}

func (a *Application) teardown(m Module) {
	if td, ok := m.(Teardowner); ok {
		td.Teardown()
	}
}

// Post runs every enabled module's self-test and reports whether all passed.
func (a *Application) Post() bool {
	ok := true
	for _, m := range a.modules {
		if !m.moduleBase().Enabled() {
			continue
		}
		if m.DoPost() {
			a.log.Info("POST passed: " + m.Label())
			continue
		}
		a.log.Error("POST failed: " + m.Label())
		ok = false
	}
	return ok
}

// RunOnce runs one scheduler iteration: the run hook, due timers, every
// enabled module, the deferred removals and finally a log flush. Modules
// added during the iteration first run on the next one. A module whose Init
// fails is disabled and retries Init once re-enabled.
func (a *Application) RunOnce() {
	if a.onRun != nil {
		a.onRun()
	}
	a.timers.Dispatch(a.Now())

	n := len(a.modules)
	for i := 0; i < n; i++ {
		m := a.modules[i]
		b := m.moduleBase()
		if !b.Enabled() || a.removalPending(b.id) {
			continue
		}
		if !b.initDone {
			if in, ok := m.(Initializer); ok {
				if err := in.Init(); err != nil {
					a.log.Error("init failed: " + m.Label() + ": " + err.Error())
					b.disabled = true
					continue
				}
			}
			b.initDone = true
		}
		m.Run()
		b.ranOnce = true
	}
	a.processRemovals()
	a.log.Flush()
}

// Run schedules modules forever, idling between iterations.
func (a *Application) Run() {
	for {
		a.RunOnce()
		if a.idle != nil {
			a.idle()
		}
	}
}

// Shutdown tears down every module, last registered first.
func (a *Application) Shutdown() {
	for i := len(a.modules) - 1; i >= 0; i-- {
		a.teardown(a.modules[i])
		a.modules[i] = nil
	}
	a.modules = a.modules[:0]
	a.removals = nil
}

// RegisterEventCallback adds fn for events of type t and returns its slot.
// It returns InvalidCallbackID when the feature is disabled or the slots for t
// are exhausted.
func (a *Application) RegisterEventCallback(t EventType, fn EventCallback) CallbackID {
	if !a.features.AllowsType(t) {
		a.log.Warning("callback rejected, feature disabled: " + t.String())
		return InvalidCallbackID
	}
	id := a.callbacks.Register(t, fn)
	if id == InvalidCallbackID {
		a.log.Warning("callback slots exhausted: " + t.String())
	}
	return id
}

// UnregisterEventCallback frees the slot returned by RegisterEventCallback.
func (a *Application) UnregisterEventCallback(t EventType, id CallbackID) {
	a.callbacks.Unregister(t, id)
}

// DispatchEvent hands ev to the callbacks registered for its type, in slot
// order, until one consumes it. Safe to call from interrupt context.
func (a *Application) DispatchEvent(ev Event) bool {
	if ev == nil || !a.features.AllowsType(ev.Type()) {
		return false
	}
	return a.callbacks.Dispatch(ev)
}

// Trigger raises a software event of type t from main context.
// Only External, UserEvent and Data types can be triggered.
func (a *Application) Trigger(t EventType, data uint32) bool {
	c := CategoryOf(t)
	Assert(c == CategoryExternal || c == CategoryUserEvent || c == CategoryData,
		"Trigger: "+t.String()+" is a peripheral event")
	ev := SoftwareEvent{EventBase: NewEventBase(t, a.Now()), Data: data}
	return a.DispatchEvent(&ev)
}

// CallbackCount returns the number of callbacks registered for t.
func (a *Application) CallbackCount(t EventType) int {
	return a.callbacks.Count(t)
}

// ScheduleTimer queues t on the application's timer queue.
func (a *Application) ScheduleTimer(t *Timer) { a.timers.Schedule(t) }

// CancelTimer removes t from the application's timer queue.
func (a *Application) CancelTimer(t *Timer) { a.timers.Cancel(t) }
