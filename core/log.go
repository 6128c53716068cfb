package core

import "sync/atomic"

// Level orders log severity.
type Level uint8

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarning
	LevelError
	LevelCritical
)

var levelTags = [...]string{
	LevelDebug:    "[DEBUG] ",
	LevelInfo:     "[INFO] ",
	LevelWarning:  "[WARN] ",
	LevelError:    "[ERROR] ",
	LevelCritical: "[CRIT] ",
}

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	case LevelCritical:
		return "critical"
	}
	return "level(" + utoa(uint32(l)) + ")"
}

// ParseLevel maps a config string to a Level.
func ParseLevel(s string) (Level, error) {
	switch s {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "warning", "warn":
		return LevelWarning, nil
	case "error":
		return LevelError, nil
	case "critical":
		return LevelCritical, nil
	}
	return LevelInfo, ErrInvalidLevel
}

// Writer is a platform sink for one formatted log line.
// Targets point it at a UART; host builds at stdout.
type Writer func(string)

// Logger writes leveled lines to a Writer, either inline or through a
// bounded queue. The queue is drained by a goroutine (StartAsync) or by
// whoever calls Flush (StartQueued); Application.RunOnce flushes after
// every iteration.
type Logger struct {
	write   Writer
	level   atomic.Uint32
	queue   chan string
	drops   atomic.Uint32
	running atomic.Bool
	stopped atomic.Bool
	stop    chan struct{}
	done    chan struct{}
}

// NewLogger returns a synchronous logger. A nil writer discards output.
func NewLogger(w Writer, level Level) *Logger {
	l := &Logger{write: w}
	l.level.Store(uint32(level))
	return l
}

// StartQueued switches the logger to queued output without a drain
// goroutine. Lines are dropped when the queue is full so callers never block.
func (l *Logger) StartQueued(depth int) {
	if l.queue != nil {
		return
	}
	if depth <= 0 {
		depth = 16
	}
	l.queue = make(chan string, depth)
}

// StartAsync is StartQueued plus a goroutine that writes lines as they
// arrive. Stop ends it.
func (l *Logger) StartAsync(depth int) {
	if l.queue != nil {
		return
	}
	l.StartQueued(depth)
	l.stop = make(chan struct{})
	l.done = make(chan struct{})
	l.running.Store(true)
	go l.drain()
}

func (l *Logger) drain() {
	defer close(l.done)
	for {
		select {
		case msg := <-l.queue:
			l.emit(msg)
		case <-l.stop:
			l.running.Store(false)
			return
		}
	}
}

func (l *Logger) emit(msg string) {
	if l.write != nil {
		l.write(msg)
	}
}

func (l *Logger) flushQueue() {
	for {
		select {
		case msg := <-l.queue:
			l.emit(msg)
		default:
			return
		}
	}
}

// Stop waits for the drain goroutine, writes out whatever is still queued
// and returns the logger to inline output. Safe to call more than once.
func (l *Logger) Stop() {
	if l == nil || l.queue == nil || !l.stopped.CompareAndSwap(false, true) {
		return
	}
	if l.stop != nil {
		close(l.stop)
		<-l.done
	}
	l.flushQueue()
}

// Flush writes out anything still queued from the calling goroutine. It
// never blocks, and is a no-op on a sync logger or while a drain
// goroutine owns the queue.
func (l *Logger) Flush() {
	if l == nil || l.queue == nil || l.running.Load() {
		return
	}
	l.flushQueue()
}

// SetLevel changes the minimum level written.
func (l *Logger) SetLevel(level Level) { l.level.Store(uint32(level)) }

// Level returns the minimum level written.
func (l *Logger) Level() Level { return Level(l.level.Load()) }

// Enabled reports whether lines at level would be written.
func (l *Logger) Enabled(level Level) bool { return level >= l.Level() }

// Drops returns how many queued lines were discarded.
func (l *Logger) Drops() uint32 { return l.drops.Load() }

// Log writes msg at level.
func (l *Logger) Log(level Level, msg string) {
	if l == nil || l.write == nil || !l.Enabled(level) {
		return
	}
	var tag string
	if int(level) < len(levelTags) {
		tag = levelTags[level]
	}
	line := tag + msg
	if l.queue == nil || l.stopped.Load() {
		l.write(line)
		return
	}
	select {
	case l.queue <- line:
	default:
		l.drops.Add(1)
	}
}

// Debug logs msg at LevelDebug.
func (l *Logger) Debug(msg string) { l.Log(LevelDebug, msg) }

// Info logs msg at LevelInfo.
func (l *Logger) Info(msg string) { l.Log(LevelInfo, msg) }

// Warning logs msg at LevelWarning.
func (l *Logger) Warning(msg string) { l.Log(LevelWarning, msg) }

// Error logs msg at LevelError.
func (l *Logger) Error(msg string) { l.Log(LevelError, msg) }

// Critical logs msg at LevelCritical.
func (l *Logger) Critical(msg string) { l.Log(LevelCritical, msg) }

var defaultLogger atomic.Pointer[Logger]

func init() {
	defaultLogger.Store(NewLogger(nil, LevelInfo))
}

// SetDefaultLogger replaces the logger used by AssertFailed and by
// applications created without WithLogger.
func SetDefaultLogger(l *Logger) {
	if l == nil {
		l = NewLogger(nil, LevelInfo)
	}
	defaultLogger.Store(l)
}

// DefaultLogger returns the process-wide fallback logger.
func DefaultLogger() *Logger { return defaultLogger.Load() }
