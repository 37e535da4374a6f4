package views

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/fetchedhq/fetched/internal/app"
	"github.com/fetchedhq/fetched/internal/exporter"
	"github.com/fetchedhq/fetched/internal/tui"
	"github.com/fetchedhq/fetched/internal/tui/components"
	"github.com/fetchedhq/fetched/internal/tui/vim"
	"github.com/mattn/go-runewidth"
)

var cursorStyle = lipgloss.NewStyle().Reverse(true)

// editorFinishedMsg is sent when the external editor exits.
type editorFinishedMsg struct {
	err error
}

// MainView dispatches key events to the app and renders its state.
type MainView struct {
	app         *app.App
	keys        vim.KeyMap
	help        help.Model
	highlighter *components.JSONHighlighter
	curl        *exporter.CurlExporter
	copy        func(string) error
	width       int
	height      int
}

// Option configures the MainView.
type Option func(*MainView)

// WithKeyMap replaces the default key bindings.
func WithKeyMap(keys vim.KeyMap) Option {
	return func(v *MainView) {
		v.keys = keys
	}
}

// WithClipboard replaces the system clipboard writer.
func WithClipboard(write func(string) error) Option {
	return func(v *MainView) {
		v.copy = write
	}
}

// NewMainView creates the main view over a bootstrapped app.
func NewMainView(a *app.App, opts ...Option) *MainView {
	v := &MainView{
		app:         a,
		keys:        vim.DefaultKeyMap(),
		help:        help.New(),
		highlighter: components.NewJSONHighlighter(),
		curl:        exporter.NewCurlExporter(),
		copy:        clipboard.WriteAll,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Init initializes the view.
func (v *MainView) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (v *MainView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetSize(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v, v.handleKeyMsg(msg)

	case editorFinishedMsg:
		if err := v.app.EditorFinished(msg.err); err != nil {
			v.report(err)
		}
		return v, nil
	}

	return v, nil
}

func (v *MainView) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	// Ctrl+C always quits
	if key.Matches(msg, v.keys.Quit) {
		return v.exit()
	}

	if v.app.Popup().Visible {
		v.app.DismissPopup()
		return nil
	}

	switch mode := v.app.InputMode(); mode {
	case vim.ModeNormal:
		return v.handleNormal(msg)
	case vim.ModeControl:
		return v.handleControl(msg)
	case vim.ModeInsert:
		return v.handleInsert(msg)
	default:
		v.report(fmt.Errorf("%w: %s mode", app.ErrUnsupported, mode))
		return nil
	}
}

func (v *MainView) handleNormal(msg tea.KeyMsg) tea.Cmd {
	ctx := context.Background()

	switch {
	case key.Matches(msg, v.keys.FocusCollections):
		v.app.Focus(app.WindowCollections)
	case key.Matches(msg, v.keys.FocusRequest):
		v.app.Focus(app.WindowRequest)
	case key.Matches(msg, v.keys.FocusResponse):
		v.app.Focus(app.WindowResponse)
	case key.Matches(msg, v.keys.Command):
		v.app.EnterControl(vim.StrategyCommand)
	case key.Matches(msg, v.keys.Search):
		v.app.EnterControl(vim.StrategySearch)
	case key.Matches(msg, v.keys.Create):
		return v.execute(ctx, app.OpCreate)
	case key.Matches(msg, v.keys.Delete):
		return v.execute(ctx, app.OpDelete)
	case key.Matches(msg, v.keys.Open):
		return v.execute(ctx, app.OpOpen)
	case key.Matches(msg, v.keys.Edit):
		return v.execute(ctx, app.OpEdit)
	case key.Matches(msg, v.keys.Copy):
		v.copyURL()
	case key.Matches(msg, v.keys.CopyCurl):
		v.copyCurl()
	case key.Matches(msg, v.keys.Up):
		v.motion(ctx, app.MotionUp)
	case key.Matches(msg, v.keys.Down):
		v.motion(ctx, app.MotionDown)
	case key.Matches(msg, v.keys.Left):
		v.motion(ctx, app.MotionLeft)
	case key.Matches(msg, v.keys.Right):
		v.motion(ctx, app.MotionRight)
	default:
		v.app.Logger().Debug("unbound key", "key", msg.String(), "mode", vim.ModeNormal.String())
	}
	return nil
}

func (v *MainView) handleControl(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, v.keys.Submit):
		effect, err := v.app.Submit(context.Background())
		if err != nil {
			v.report(err)
			return nil
		}
		return v.apply(effect)
	case key.Matches(msg, v.keys.Cancel):
		v.app.Cancel()
	default:
		v.edit(msg)
	}
	return nil
}

func (v *MainView) handleInsert(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, v.keys.NextField):
		if err := v.app.NextField(); err != nil {
			v.report(err)
		}
	case key.Matches(msg, v.keys.Submit):
		if err := v.app.Commit(context.Background()); err != nil {
			v.report(err)
		}
	case key.Matches(msg, v.keys.Cancel):
		v.app.Cancel()
	default:
		v.edit(msg)
	}
	return nil
}

// edit applies the text editing keys shared by control and insert mode.
func (v *MainView) edit(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, v.keys.Backspace):
		v.app.DeleteChar()
	case key.Matches(msg, v.keys.CursorLeft):
		v.app.MoveCursorLeft()
	case key.Matches(msg, v.keys.CursorRight):
		v.app.MoveCursorRight()
	case msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace:
		for _, r := range msg.Runes {
			v.app.EnterChar(r)
		}
	default:
		v.app.Logger().Debug("unbound key", "key", msg.String(), "mode", v.app.InputMode().String())
	}
}

func (v *MainView) execute(ctx context.Context, op app.Operation) tea.Cmd {
	effect, err := v.app.ExecuteOperation(ctx, op)
	if err != nil {
		v.report(err)
		return nil
	}
	return v.apply(effect)
}

// motion applies a motion. Motions a window does not support are only logged.
func (v *MainView) motion(ctx context.Context, m app.Motion) {
	err := v.app.SelectMotion(ctx, m)
	switch {
	case err == nil:
	case errors.Is(err, app.ErrUnsupported):
		v.app.Logger().Debug("motion ignored", "err", err)
	default:
		v.report(err)
	}
}

func (v *MainView) apply(effect app.Effect) tea.Cmd {
	switch effect.Kind {
	case app.EffectExit:
		return v.exit()
	case app.EffectEditor:
		return v.openEditor(effect.Path)
	default:
		return nil
	}
}

func (v *MainView) exit() tea.Cmd {
	if err := v.app.Exit(context.Background()); err != nil {
		v.app.Logger().Error("exit hooks failed", "err", err)
	}
	return tea.Quit
}

// openEditor hands the terminal to the configured editor until it exits.
func (v *MainView) openEditor(path string) tea.Cmd {
	args := strings.Fields(v.app.Config().ResolveEditor())
	if len(args) == 0 {
		args = []string{"vi"}
	}
	args = append(args, path)

	v.app.Logger().Info("launch editor", "cmd", strings.Join(args, " "))
	c := exec.Command(args[0], args[1:]...)
	return tea.ExecProcess(c, func(err error) tea.Msg {
		return editorFinishedMsg{err: err}
	})
}

func (v *MainView) copyURL() {
	url, ok := v.app.RequestURL()
	if !ok {
		v.app.ShowPopup(app.ErrNoRequest.Error(), app.PopupWarning)
		return
	}
	if err := v.copy(url); err != nil {
		v.app.ShowPopup(fmt.Sprintf("copy failed: %v", err), app.PopupError)
		return
	}
	v.app.ShowPopup("copied "+url, app.PopupInfo)
}

func (v *MainView) copyCurl() {
	cmd, err := v.curl.ExportRequest(v.app.RequestData())
	if err != nil {
		v.app.ShowPopup(app.ErrNoRequest.Error(), app.PopupWarning)
		return
	}
	if err := v.copy(cmd); err != nil {
		v.app.ShowPopup(fmt.Sprintf("copy failed: %v", err), app.PopupError)
		return
	}
	v.app.ShowPopup("copied curl command", app.PopupInfo)
}

// report shows err in a popup.
func (v *MainView) report(err error) {
	typ := app.PopupError
	if errors.Is(err, app.ErrUnsupported) || errors.Is(err, app.ErrNoSelection) || errors.Is(err, app.ErrNoRequest) {
		typ = app.PopupWarning
	}
	v.app.ShowPopup(err.Error(), typ)
}

// View renders the view.
func (v *MainView) View() string {
	if v.width == 0 || v.height == 0 {
		return ""
	}

	l := tui.Compute(v.width, v.height)
	l.Record(v.app)

	if p := v.app.Popup(); p.Visible {
		out, r := components.Popup(v.app.Theme(), p, l)
		v.app.SetRectangle(tui.RegionPopup, r)
		return out
	}

	// [Collections] | [Request ]
	//               | [Response]
	right := lipgloss.JoinVertical(lipgloss.Left,
		components.Request(v.app, l, v.highlighter),
		components.Response(v.app, l.Response),
	)
	panes := lipgloss.JoinHorizontal(lipgloss.Top, components.Collections(v.app, l.Collections), right)

	screen := lipgloss.JoinVertical(lipgloss.Left,
		panes,
		components.InputBar(v.app, l.Input),
		components.Footer(v.app, v.keys, v.help, l.Footer),
	)
	return v.placeCursor(screen)
}

// placeCursor draws a block cursor over the cell reported by
// App.CursorPosition. The terminal cursor stays hidden.
func (v *MainView) placeCursor(screen string) string {
	x, y, ok := v.app.CursorPosition()
	if !ok {
		return screen
	}
	lines := strings.Split(screen, "\n")
	if y >= len(lines) {
		return screen
	}

	w := 1
	if runes, i := []rune(v.app.Input()), v.app.CharacterIndex(); i < len(runes) {
		w = max(runewidth.RuneWidth(runes[i]), 1)
	}
	line := lines[y]
	width := ansi.StringWidth(line)
	if x+w > width {
		return screen
	}

	under := ansi.Strip(ansi.Cut(line, x, x+w))
	lines[y] = ansi.Cut(line, 0, x) + cursorStyle.Render(under) + ansi.Cut(line, x+w, width)
	return strings.Join(lines, "\n")
}

// SetSize sets the terminal size.
func (v *MainView) SetSize(width, height int) {
	v.width = width
	v.height = height
	v.help.Width = width
}

// Width returns the terminal width.
func (v *MainView) Width() int {
	return v.width
}

// Height returns the terminal height.
func (v *MainView) Height() int {
	return v.height
}

// App returns the application state.
func (v *MainView) App() *app.App {
	return v.app
}
