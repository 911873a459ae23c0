package ui

import (
	"errors"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// ErrTooManyRestarts is returned once the UI has crashed more often than
// allowed.
var ErrTooManyRestarts = errors.New("UI crashed too many times")

// RecoveryHandler runs the program and rebuilds it after a panic, up to
// maxRestarts times.
type RecoveryHandler struct {
	logger       *zap.Logger
	restartDelay time.Duration
	maxRestarts  int
	restartCount int
	mu           sync.Mutex
	program      *tea.Program
	createUI     func() (tea.Model, []tea.ProgramOption)

	// run executes one program; replaced in tests.
	run func(p *tea.Program) error
}

// NewRecoveryHandler creates a new recovery handler
func NewRecoveryHandler(logger *zap.Logger, createUI func() (tea.Model, []tea.ProgramOption)) *RecoveryHandler {
	return &RecoveryHandler{
		logger:       logger.Named("recovery"),
		restartDelay: time.Second,
		maxRestarts:  3,
		createUI:     createUI,
		run: func(p *tea.Program) error {
			_, err := p.Run()
			return err
		},
	}
}

// RunWithRecovery runs the UI with panic recovery. A normal exit, or an
// error that is not a panic, ends the loop.
func (rh *RecoveryHandler) RunWithRecovery() error {
	for {
		err := rh.runUI()
		if err == nil {
			return nil
		}
		var panicErr *PanicError
		if !errors.As(err, &panicErr) {
			return err
		}

		rh.mu.Lock()
		rh.restartCount++
		count := rh.restartCount
		rh.mu.Unlock()

		if count > rh.maxRestarts {
			return fmt.Errorf("%w (%d): %v", ErrTooManyRestarts, rh.maxRestarts, panicErr.Value)
		}

		rh.logger.Error("UI crashed, will restart",
			zap.Any("panic", panicErr.Value),
			zap.Int("restart_count", count),
			zap.Duration("delay", rh.restartDelay))

		time.Sleep(rh.restartDelay)
	}
}

// PanicError carries a recovered panic value and its stack.
type PanicError struct {
	Value interface{}
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("UI panic: %v", e.Value)
}

func (rh *RecoveryHandler) runUI() (err error) {
	defer func() {
		if r := recover(); r != nil {
			stack := debug.Stack()
			rh.logger.Error("UI panic recovered",
				zap.Any("panic", r),
				zap.String("stack", string(stack)))
			err = &PanicError{Value: r, Stack: stack}
		}
	}()

	model, opts := rh.createUI()
	program := tea.NewProgram(model, opts...)

	rh.mu.Lock()
	rh.program = program
	rh.mu.Unlock()

	if err := rh.run(program); err != nil {
		// bubbletea recovers panics itself and reports them as ErrProgramPanic.
		if errors.Is(err, tea.ErrProgramPanic) {
			return &PanicError{Value: err}
		}
		return fmt.Errorf("UI error: %w", err)
	}
	return nil
}

// Stop gracefully stops the UI
func (rh *RecoveryHandler) Stop() {
	rh.mu.Lock()
	defer rh.mu.Unlock()

	if rh.program != nil {
		rh.program.Quit()
		rh.program = nil
	}
}

// GetRestartCount returns the number of restarts
func (rh *RecoveryHandler) GetRestartCount() int {
	rh.mu.Lock()
	defer rh.mu.Unlock()
	return rh.restartCount
}

// SafeUIWrapper wraps a model so a panic in one message does not take the
// program down.
type SafeUIWrapper struct {
	model  tea.Model
	logger *zap.Logger
}

// NewSafeUIWrapper creates a new safe UI wrapper
func NewSafeUIWrapper(model tea.Model, logger *zap.Logger) *SafeUIWrapper {
	return &SafeUIWrapper{
		model:  model,
		logger: logger,
	}
}

// Init wraps the Init method with panic recovery
func (sw *SafeUIWrapper) Init() (cmd tea.Cmd) {
	defer sw.recoverFromPanic("Init", &cmd)
	return sw.model.Init()
}

// Update wraps the Update method with panic recovery. The wrapped model is
// kept as it was when Update panics.
func (sw *SafeUIWrapper) Update(msg tea.Msg) (out tea.Model, cmd tea.Cmd) {
	out = sw
	defer sw.recoverFromPanic("Update", &cmd)
	model, next := sw.model.Update(msg)
	sw.model = model
	return sw, next
}

// View wraps the View method with panic recovery
func (sw *SafeUIWrapper) View() (view string) {
	defer func() {
		if r := recover(); r != nil {
			sw.logger.Error("View panic recovered",
				zap.Any("panic", r),
				zap.String("stack", string(debug.Stack())))
			view = "UI Error: View crashed. Press Ctrl+C to exit."
		}
	}()
	return sw.model.View()
}

func (sw *SafeUIWrapper) recoverFromPanic(method string, cmd *tea.Cmd) {
	if r := recover(); r != nil {
		sw.logger.Error("UI method panic recovered",
			zap.String("method", method),
			zap.Any("panic", r),
			zap.String("stack", string(debug.Stack())))
		*cmd = nil
	}
}
