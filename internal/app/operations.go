package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/fetchedhq/fetched/internal/tui/vim"
)

// DeleteConfirmation is the only answer that confirms a delete prompt.
const DeleteConfirmation = "y"

// EnterControl opens the single-line input with the given strategy.
func (a *App) EnterControl(strategy vim.Strategy) {
	if !a.mode.IsControl() {
		a.previousWindow = a.focusedWindow
	}
	a.clearInput()
	a.mode.EnterControl(strategy)
	a.focusedWindow = WindowInput
}

// Prompt asks the user for the argument of op.
func (a *App) Prompt(op Operation) {
	a.EnterControl(vim.StrategyPrompt)
	a.operation = op
}

// ExecuteOperation starts op from normal mode.
func (a *App) ExecuteOperation(ctx context.Context, op Operation) (Effect, error) {
	switch op {
	case OpCreate, OpDelete:
		a.Prompt(op)
		return Effect{}, nil
	case OpOpen:
		return a.openSelected()
	case OpEdit:
		return Effect{}, a.startEdit()
	case OpRename, OpNull:
		return Effect{}, fmt.Errorf("%w: %s operation", ErrUnsupported, op)
	default:
		return Effect{}, fmt.Errorf("%w: operation %d", ErrUnsupported, op)
	}
}

func (a *App) openSelected() (Effect, error) {
	if a.focusedWindow != WindowCollections || !a.showChildren {
		return Effect{}, fmt.Errorf("%w: open needs a request selected in the collections window", ErrUnsupported)
	}
	name, ok := a.SelectedName()
	if !ok {
		return Effect{}, ErrNoSelection
	}

	a.operation = OpOpen
	path := a.store.ResolvePath(a.selectedCollection, name)
	a.logger.Info("open in editor", "path", path)
	return Effect{Kind: EffectEditor, Path: path}, nil
}

// EditorFinished is called when the external editor exits. The exit status
// is only logged; the document is reloaded to pick up the edits.
func (a *App) EditorFinished(err error) error {
	if err != nil {
		a.logger.Warn("editor exited with error", "err", err)
	}
	a.operation = OpNull
	if !a.showChildren {
		return nil
	}
	return a.reloadSelectedRequest()
}

func (a *App) startEdit() error {
	if a.focusedWindow != WindowRequest {
		return fmt.Errorf("%w: edit outside the request window", ErrUnsupported)
	}
	if a.requestData == nil {
		return ErrNoRequest
	}
	if a.selectedTab.FieldCount() == 0 {
		return fmt.Errorf("%w: the %s tab cannot be edited", ErrUnsupported, a.selectedTab)
	}

	a.clearInput()
	a.clearInputBuffer()
	a.subFocus = FieldName
	a.operation = OpEdit
	a.mode.SetMode(vim.ModeInsert)
	return nil
}

// Cancel abandons the current input and returns to normal mode.
func (a *App) Cancel() {
	a.leaveInput()
}

func (a *App) leaveInput() {
	if a.mode.IsControl() {
		a.focusedWindow = a.previousWindow
	}
	a.clearInput()
	a.clearInputBuffer()
	a.subFocus = FieldName
	a.operation = OpNull
	a.mode.Reset()
}

// Submit handles Enter in control mode. Input is cleared and the mode
// returns to normal whatever the outcome.
func (a *App) Submit(ctx context.Context) (Effect, error) {
	if !a.mode.IsControl() {
		return Effect{}, fmt.Errorf("%w: submit outside control mode", ErrUnsupported)
	}

	text := a.input
	op := a.operation
	strategy := a.mode.Strategy()
	a.leaveInput()

	switch strategy {
	case vim.StrategyPrompt:
		return Effect{}, a.submitPrompt(ctx, op, text)
	case vim.StrategyCommand, vim.StrategySearch:
		return a.submitCommand(text)
	default:
		return Effect{}, fmt.Errorf("%w: strategy %s", ErrUnsupported, strategy)
	}
}

func (a *App) submitPrompt(ctx context.Context, op Operation, arg string) error {
	switch op {
	case OpCreate:
		var err error
		if a.showChildren {
			err = a.store.CreateRequest(ctx, a.selectedCollection, arg)
		} else {
			err = a.store.CreateCollection(ctx, arg)
		}
		if err != nil {
			return err
		}
		a.logger.Info("created", "collection", a.selectedCollection, "name", arg)
		return a.refreshCollections(ctx, arg)

	case OpDelete:
		if arg != DeleteConfirmation {
			a.logger.Info("delete cancelled", "answer", arg)
			return nil
		}
		name, ok := a.SelectedName()
		if !ok {
			return ErrNoSelection
		}
		var err error
		if a.showChildren {
			err = a.store.DeleteRequest(ctx, a.selectedCollection, name)
		} else {
			err = a.store.DeleteCollection(ctx, name)
		}
		if err != nil {
			return err
		}
		a.logger.Info("deleted", "collection", a.selectedCollection, "name", name)
		return a.refreshCollections(ctx, "")

	default:
		return fmt.Errorf("%w: prompt for %s", ErrUnsupported, op)
	}
}

func (a *App) submitCommand(text string) (Effect, error) {
	if text == "" {
		return Effect{}, nil
	}
	cmds := strings.Split(text, " ")
	switch cmds[0] {
	case "q":
		return Effect{Kind: EffectExit}, nil
	default:
		if cmds[0] == "" {
			return Effect{}, fmt.Errorf("%w: %q", ErrUnknownCommand, text)
		}
		return Effect{}, fmt.Errorf("%w: %s", ErrUnknownCommand, cmds[0])
	}
}

// Commit handles Enter in insert mode. It only acts on the Add button: the
// name/value pair is merged into the request file, which is written and read
// back.
func (a *App) Commit(ctx context.Context) error {
	if !a.mode.IsInsert() {
		return fmt.Errorf("%w: commit outside insert mode", ErrUnsupported)
	}
	if !a.onCommitField() {
		return nil
	}
	name := a.inputBuffer[FieldName]
	if name == "" {
		return nil
	}
	if a.requestData == nil || a.selectedRequest == "" {
		return ErrNoRequest
	}
	value := a.inputBuffer[FieldValue]

	path := a.store.ResolvePath(a.selectedCollection, a.selectedRequest)
	doc, err := a.docs.Read(path)
	if err != nil {
		return fmt.Errorf("failed to read request: %w", err)
	}

	switch a.selectedTab {
	case TabHeaders:
		doc.SetHeader(name, value)
	case TabQuery:
		doc.SetQueryParameter(name, value)
	default:
		return fmt.Errorf("%w: commit on %s tab", ErrUnsupported, a.selectedTab)
	}

	if err := a.docs.Write(path, doc); err != nil {
		return fmt.Errorf("failed to save request: %w", err)
	}
	a.logger.Info("saved", "path", path, "id", doc.ID(), "tab", a.selectedTab.String(), "key", name)

	a.leaveInput()
	return a.reloadSelectedRequest()
}
