package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/fetchedhq/fetched/internal/config"
	"github.com/fetchedhq/fetched/internal/core"
	"github.com/fetchedhq/fetched/internal/interfaces"
	"github.com/fetchedhq/fetched/internal/logging"
	"github.com/fetchedhq/fetched/internal/theme"
	"github.com/fetchedhq/fetched/internal/tui/vim"
)

// HookExit runs once when the application exits.
const HookExit = "exit"

var (
	// ErrUnsupported is returned for key/state combinations with no behavior.
	ErrUnsupported = errors.New("unsupported")
	// ErrNoSelection is returned when an operation needs a selected item.
	ErrNoSelection = errors.New("nothing selected")
	// ErrNoRequest is returned when an operation needs a loaded request.
	ErrNoRequest = errors.New("no request loaded")
	// ErrUnknownCommand is returned for unrecognized commands.
	ErrUnknownCommand = errors.New("command not found")
)

// HookHandler is a function that handles a hook event.
type HookHandler func(ctx context.Context) error

// Popup is the transient notification overlay.
type Popup struct {
	Visible bool
	Message string
	Type    PopupType
}

// App is the application state. It is owned by the event loop and mutated
// only from there.
type App struct {
	config config.Config
	theme  theme.Config
	store  interfaces.CollectionStore
	docs   interfaces.DocumentStore
	logger *log.Logger
	hooks  map[string][]HookHandler
	exited bool

	requestData    *core.RequestDocument
	input          string
	characterIndex int
	mode           *vim.ModeManager
	focusedWindow  Window
	previousWindow Window
	operation      Operation
	subFocus       int
	inputBuffer    map[int]string

	collections        []string
	collectionList     ListState
	selectedCollection string
	selectedRequest    string
	showChildren       bool

	selectedTab         RequestTab
	selectedResponseTab ResponseTab

	popup      Popup
	rectangles map[string]Rect
}

// Option is a function that configures the App.
type Option func(*App)

// New creates a new App with the given options.
func New(opts ...Option) *App {
	a := &App{
		theme:       theme.Default(),
		logger:      logging.Discard(),
		hooks:       make(map[string][]HookHandler),
		mode:        vim.NewModeManager(),
		inputBuffer: make(map[int]string),
		rectangles:  make(map[string]Rect),
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// WithConfig sets the application configuration.
func WithConfig(cfg config.Config) Option {
	return func(a *App) {
		a.config = cfg
	}
}

// WithTheme sets the color theme.
func WithTheme(t theme.Config) Option {
	return func(a *App) {
		a.theme = t
	}
}

// WithStore sets the collection store.
func WithStore(store interfaces.CollectionStore) Option {
	return func(a *App) {
		a.store = store
	}
}

// WithDocuments sets the request document store.
func WithDocuments(docs interfaces.DocumentStore) Option {
	return func(a *App) {
		a.docs = docs
	}
}

// WithLogger sets the logger.
func WithLogger(logger *log.Logger) Option {
	return func(a *App) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// Bootstrap loads the top-level collection list. A failure here is fatal.
func (a *App) Bootstrap(ctx context.Context) error {
	if a.store == nil || a.docs == nil {
		return errors.New("app: collection and document stores are required")
	}

	names, err := a.store.ListCollections(ctx)
	if err != nil {
		return fmt.Errorf("failed to list collections: %w", err)
	}

	a.collections = names
	a.collectionList.Reset(len(names))
	a.logger.Info("bootstrap", "collections", len(names))
	return nil
}

// RegisterHook registers a hook handler for the given hook name.
func (a *App) RegisterHook(hook string, handler HookHandler) {
	a.hooks[hook] = append(a.hooks[hook], handler)
}

// ExecuteHooks executes all handlers for the given hook in order and joins
// their errors.
func (a *App) ExecuteHooks(ctx context.Context, hook string) error {
	var errs []error
	for _, handler := range a.hooks[hook] {
		if err := handler(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Exit runs the exit hooks. Only the first call has an effect.
func (a *App) Exit(ctx context.Context) error {
	if a.exited {
		return nil
	}
	a.exited = true
	a.logger.Info("exit")
	return a.ExecuteHooks(ctx, HookExit)
}

// Exited returns true once Exit has been called.
func (a *App) Exited() bool {
	return a.exited
}

// Logger returns the application logger.
func (a *App) Logger() *log.Logger {
	return a.logger
}

// Config returns the application configuration.
func (a *App) Config() config.Config {
	return a.config
}

// Theme returns the color theme.
func (a *App) Theme() theme.Config {
	return a.theme
}

// Store returns the collection store.
func (a *App) Store() interfaces.CollectionStore {
	return a.store
}

// Validate checks the cross-field invariants of the state.
func (a *App) Validate() error {
	if a.showChildren && a.selectedCollection == "" {
		return errors.New("drilled down without a selected collection")
	}
	if !a.showChildren && a.selectedCollection != "" {
		return errors.New("selected collection set outside drill-down")
	}
	if a.characterIndex < 0 || a.characterIndex > runeCount(a.input) {
		return fmt.Errorf("cursor %d out of range", a.characterIndex)
	}
	if i, ok := a.collectionList.Selected(); ok && (i < 0 || i >= len(a.collections)) {
		return fmt.Errorf("selection %d out of range", i)
	}
	if n := a.selectedTab.FieldCount(); a.mode.IsInsert() && (a.subFocus < 0 || a.subFocus >= n) {
		return fmt.Errorf("sub focus %d out of range", a.subFocus)
	}
	return nil
}
