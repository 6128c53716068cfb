package core

import "testing"

// expectAssert fails the test unless fn halts through AssertFailed.
func expectAssert(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if _, ok := r.(*AssertionError); !ok {
			t.Fatalf("expected assertion failure, got %v", r)
		}
	}()
	fn()
}

type testModule struct {
	ModuleBase
	post      bool
	runs      int
	inits     int
	teardowns int
	initErr   error
	onRun     func()
}

func newTestModule(label string) *testModule {
	return &testModule{ModuleBase: NewModuleBase(label), post: true}
}

func (m *testModule) DoPost() bool { return m.post }
func (m *testModule) Init() error  { m.inits++; return m.initErr }
func (m *testModule) Teardown()    { m.teardowns++ }
func (m *testModule) Run() {
	m.runs++
	if m.onRun != nil {
		m.onRun()
	}
}

type otherModule struct {
	ModuleBase
}

func (m *otherModule) DoPost() bool { return true }
func (m *otherModule) Run()         {}

// fakeClock is a settable tick source.
type fakeClock struct {
	now uint32
}

func (c *fakeClock) Now() uint32 { return c.now }

func newTestApp(t *testing.T, cfg *Config) (*Application, *fakeClock) {
	t.Helper()
	clk := &fakeClock{now: 100}
	app := NewApplication(cfg, WithClock(clk.Now), WithLogger(NewLogger(func(s string) { t.Log(s) }, LevelDebug)))
	return app, clk
}
