package core

// ModuleID identifies a registered module. Ids start at 1 and are never
// reused within a session.
type ModuleID uint32

// InvalidModuleID is the id of a module that is not registered.
const InvalidModuleID ModuleID = 0

// Module is a unit of cooperatively scheduled application logic.
// Implementations embed ModuleBase.
type Module interface {
	// Label is the diagnostic name.
	Label() string
	// DoPost runs the power-on self-test. Failure is reported, not fatal.
	DoPost() bool
	// Run is called once per scheduler iteration.
	Run()

	moduleBase() *ModuleBase
}

// Initializer is implemented by modules that need setup before their first Run.
type Initializer interface {
	Init() error
}

// Teardowner is implemented by modules that release resources on removal.
type Teardowner interface {
	Teardown()
}

// ModuleBase holds the bookkeeping shared by every module.
type ModuleBase struct {
	label    string
	id       ModuleID
	disabled bool
	ranOnce  bool
	initDone bool
}

// NewModuleBase returns a base with the given label.
func NewModuleBase(label string) ModuleBase {
	return ModuleBase{label: label}
}

func (b *ModuleBase) moduleBase() *ModuleBase { return b }

// Label returns the name given to NewModuleBase.
func (b *ModuleBase) Label() string { return b.label }

// ID returns the id assigned at registration, or InvalidModuleID.
func (b *ModuleBase) ID() ModuleID { return b.id }

// Enabled reports whether the scheduler runs the module.
func (b *ModuleBase) Enabled() bool { return !b.disabled }

// SetEnabled turns scheduling of the module on or off.
func (b *ModuleBase) SetEnabled(on bool) { b.disabled = !on }

// IsFirstRun reports whether Run has not yet completed once.
func (b *ModuleBase) IsFirstRun() bool { return !b.ranOnce }
