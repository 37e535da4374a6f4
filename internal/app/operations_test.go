package app

import (
	"context"
	"os"
	"testing"

	"github.com/fetchedhq/fetched/internal/storage/filesystem"
	"github.com/fetchedhq/fetched/internal/tui/vim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeText(a *App, s string) {
	for _, r := range s {
		a.EnterChar(r)
	}
}

func TestApp_EnterControl(t *testing.T) {
	a := New()
	a.Focus(WindowRequest)
	typeText(a, "stale")

	a.EnterControl(vim.StrategyCommand)

	assert.Equal(t, vim.ModeControl, a.InputMode())
	assert.Equal(t, vim.StrategyCommand, a.InputStrategy())
	assert.Equal(t, WindowInput, a.FocusedWindow())
	assert.Empty(t, a.Input())

	a.Cancel()
	assert.Equal(t, WindowRequest, a.FocusedWindow())
	assert.Equal(t, vim.ModeNormal, a.InputMode())
}

func TestApp_Submit_Command(t *testing.T) {
	ctx := context.Background()

	t.Run("q requests exit", func(t *testing.T) {
		a := New()
		a.EnterControl(vim.StrategyCommand)
		typeText(a, "q")

		effect, err := a.Submit(ctx)
		require.NoError(t, err)
		assert.Equal(t, EffectExit, effect.Kind)
		assert.Equal(t, vim.ModeNormal, a.InputMode())
		assert.Empty(t, a.Input())
	})

	t.Run("extra words are ignored", func(t *testing.T) {
		a := New()
		a.EnterControl(vim.StrategyCommand)
		typeText(a, "q now")

		effect, err := a.Submit(ctx)
		require.NoError(t, err)
		assert.Equal(t, EffectExit, effect.Kind)
	})

	t.Run("empty command does nothing", func(t *testing.T) {
		a := New()
		a.EnterControl(vim.StrategyCommand)

		effect, err := a.Submit(ctx)
		require.NoError(t, err)
		assert.Equal(t, EffectNone, effect.Kind)
	})

	t.Run("unknown command", func(t *testing.T) {
		a := New()
		a.EnterControl(vim.StrategyCommand)
		typeText(a, "wq")

		_, err := a.Submit(ctx)
		assert.ErrorIs(t, err, ErrUnknownCommand)
		assert.Equal(t, vim.ModeNormal, a.InputMode())
	})

	t.Run("leading space is an unknown command", func(t *testing.T) {
		a := New()
		a.EnterControl(vim.StrategyCommand)
		typeText(a, " q")

		effect, err := a.Submit(ctx)
		assert.ErrorIs(t, err, ErrUnknownCommand)
		assert.Contains(t, err.Error(), `" q"`)
		assert.Equal(t, EffectNone, effect.Kind)
	})

	t.Run("strategy resets after submit", func(t *testing.T) {
		a := New()
		a.EnterControl(vim.StrategySearch)
		typeText(a, "x")

		_, _ = a.Submit(ctx)
		assert.Equal(t, vim.ModeNormal, a.InputMode())
		assert.Equal(t, vim.StrategyCommand, a.InputStrategy())
	})

	t.Run("search shares the command path", func(t *testing.T) {
		a := New()
		a.EnterControl(vim.StrategySearch)
		typeText(a, "q")

		effect, err := a.Submit(ctx)
		require.NoError(t, err)
		assert.Equal(t, EffectExit, effect.Kind)
	})

	t.Run("outside control mode is unsupported", func(t *testing.T) {
		_, err := New().Submit(ctx)
		assert.ErrorIs(t, err, ErrUnsupported)
	})
}

func TestApp_Submit_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a collection at the top level", func(t *testing.T) {
		a, store := newTestApp(t, map[string][]string{"users": nil})
		_, err := a.ExecuteOperation(ctx, OpCreate)
		require.NoError(t, err)
		assert.Equal(t, vim.StrategyPrompt, a.InputStrategy())
		assert.Equal(t, OpCreate, a.CurrentOperation())

		typeText(a, "accounts")
		_, err = a.Submit(ctx)
		require.NoError(t, err)

		assert.Equal(t, []string{"accounts", "users"}, a.Collections())
		name, _ := a.SelectedName()
		assert.Equal(t, "accounts", name)
		assert.DirExists(t, store.BasePath()+"/accounts")
		assert.Equal(t, OpNull, a.CurrentOperation())
	})

	t.Run("creates a request inside the drilled collection", func(t *testing.T) {
		a, store := newTestApp(t, map[string][]string{"users": {"list"}})
		require.NoError(t, a.SelectMotion(ctx, MotionRight))

		_, err := a.ExecuteOperation(ctx, OpCreate)
		require.NoError(t, err)
		typeText(a, "create")
		_, err = a.Submit(ctx)
		require.NoError(t, err)

		assert.Equal(t, []string{"create", "list"}, a.Collections())
		assert.FileExists(t, store.ResolvePath("users", "create"))
		assert.Equal(t, "create", a.SelectedRequest())
		require.NotNil(t, a.RequestData())
		assert.NotEmpty(t, a.RequestData().ID())
	})

	t.Run("rejects invalid names", func(t *testing.T) {
		a, _ := newTestApp(t, nil)
		_, err := a.ExecuteOperation(ctx, OpCreate)
		require.NoError(t, err)
		typeText(a, "../escape")

		_, err = a.Submit(ctx)
		assert.ErrorIs(t, err, filesystem.ErrInvalidName)
		assert.Empty(t, a.Collections())
	})

	t.Run("rejects duplicates", func(t *testing.T) {
		a, _ := newTestApp(t, map[string][]string{"users": nil})
		_, err := a.ExecuteOperation(ctx, OpCreate)
		require.NoError(t, err)
		typeText(a, "users")

		_, err = a.Submit(ctx)
		assert.ErrorIs(t, err, filesystem.ErrExists)
	})
}

func TestApp_Submit_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("any answer but y keeps everything", func(t *testing.T) {
		a, store := newTestApp(t, map[string][]string{"users": {"list"}})
		require.NoError(t, a.SelectMotion(ctx, MotionRight))

		_, err := a.ExecuteOperation(ctx, OpDelete)
		require.NoError(t, err)
		typeText(a, "n")
		_, err = a.Submit(ctx)
		require.NoError(t, err)

		assert.Equal(t, []string{"list"}, a.Collections())
		assert.FileExists(t, store.ResolvePath("users", "list"))
	})

	t.Run("y removes the selected request", func(t *testing.T) {
		a, store := newTestApp(t, map[string][]string{"users": {"create", "list"}})
		require.NoError(t, a.SelectMotion(ctx, MotionRight))
		require.NoError(t, a.SelectMotion(ctx, MotionDown))

		_, err := a.ExecuteOperation(ctx, OpDelete)
		require.NoError(t, err)
		typeText(a, "y")
		_, err = a.Submit(ctx)
		require.NoError(t, err)

		assert.Equal(t, []string{"create"}, a.Collections())
		assert.NoFileExists(t, store.ResolvePath("users", "list"))
		assert.Equal(t, "create", a.SelectedRequest())
		assert.NoError(t, a.Validate())
	})

	t.Run("deleting the last request clears the document", func(t *testing.T) {
		a, _ := newTestApp(t, map[string][]string{"users": {"list"}})
		require.NoError(t, a.SelectMotion(ctx, MotionRight))

		_, err := a.ExecuteOperation(ctx, OpDelete)
		require.NoError(t, err)
		typeText(a, "y")
		_, err = a.Submit(ctx)
		require.NoError(t, err)

		assert.Empty(t, a.Collections())
		assert.Nil(t, a.RequestData())
		assert.NoError(t, a.Validate())
	})

	t.Run("y removes a whole collection at the top level", func(t *testing.T) {
		a, store := newTestApp(t, map[string][]string{"users": {"list"}})

		_, err := a.ExecuteOperation(ctx, OpDelete)
		require.NoError(t, err)
		typeText(a, "y")
		_, err = a.Submit(ctx)
		require.NoError(t, err)

		assert.Empty(t, a.Collections())
		_, statErr := os.Stat(store.BasePath() + "/users")
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("nothing selected", func(t *testing.T) {
		a, _ := newTestApp(t, nil)
		_, err := a.ExecuteOperation(ctx, OpDelete)
		require.NoError(t, err)
		typeText(a, "y")

		_, err = a.Submit(ctx)
		assert.ErrorIs(t, err, ErrNoSelection)
	})
}

func TestApp_Cancel(t *testing.T) {
	a := New()
	a.Prompt(OpCreate)
	typeText(a, "abc")

	a.Cancel()

	assert.Equal(t, vim.ModeNormal, a.InputMode())
	assert.Equal(t, OpNull, a.CurrentOperation())
	assert.Empty(t, a.Input())
	assert.Equal(t, 0, a.CharacterIndex())
	assert.Empty(t, a.InputBuffer())
	assert.Equal(t, WindowCollections, a.FocusedWindow())
}

func TestApp_ExecuteOperation_Open(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the editor effect for the selected request", func(t *testing.T) {
		a, store := newTestApp(t, map[string][]string{"users": {"list"}})
		require.NoError(t, a.SelectMotion(ctx, MotionRight))

		effect, err := a.ExecuteOperation(ctx, OpOpen)
		require.NoError(t, err)
		assert.Equal(t, EffectEditor, effect.Kind)
		assert.Equal(t, store.ResolvePath("users", "list"), effect.Path)
		assert.Equal(t, OpOpen, a.CurrentOperation())
	})

	t.Run("reloads after the editor exits", func(t *testing.T) {
		a, store := newTestApp(t, map[string][]string{"users": {"list"}})
		require.NoError(t, a.SelectMotion(ctx, MotionRight))
		_, err := a.ExecuteOperation(ctx, OpOpen)
		require.NoError(t, err)

		docs := filesystem.NewDocumentStore()
		path := store.ResolvePath("users", "list")
		doc, err := docs.Read(path)
		require.NoError(t, err)
		doc.Method = "GET"
		require.NoError(t, docs.Write(path, doc))

		require.NoError(t, a.EditorFinished(nil))
		assert.Equal(t, "GET", a.RequestData().Method)
		assert.Equal(t, OpNull, a.CurrentOperation())
	})

	t.Run("unsupported at the top level", func(t *testing.T) {
		a, _ := newTestApp(t, map[string][]string{"users": nil})
		_, err := a.ExecuteOperation(ctx, OpOpen)
		assert.ErrorIs(t, err, ErrUnsupported)
	})

	t.Run("unsupported outside the collections window", func(t *testing.T) {
		a, _ := newTestApp(t, map[string][]string{"users": {"list"}})
		require.NoError(t, a.SelectMotion(ctx, MotionRight))
		a.Focus(WindowRequest)

		_, err := a.ExecuteOperation(ctx, OpOpen)
		assert.ErrorIs(t, err, ErrUnsupported)
	})

	t.Run("rename is unsupported", func(t *testing.T) {
		_, err := New().ExecuteOperation(ctx, OpRename)
		assert.ErrorIs(t, err, ErrUnsupported)
	})
}

// loadedApp returns an app with users/list loaded and the request window
// focused on tab.
func loadedApp(t *testing.T, tab RequestTab) (*App, *filesystem.CollectionStore) {
	t.Helper()
	a, store := newTestApp(t, map[string][]string{"users": {"list"}})
	require.NoError(t, a.SelectMotion(context.Background(), MotionRight))
	require.NotNil(t, a.RequestData())
	a.Focus(WindowRequest)
	a.selectedTab = tab
	return a, store
}

func TestApp_Edit(t *testing.T) {
	ctx := context.Background()

	t.Run("enters insert mode on the headers tab", func(t *testing.T) {
		a, _ := loadedApp(t, TabHeaders)

		_, err := a.ExecuteOperation(ctx, OpEdit)
		require.NoError(t, err)
		assert.Equal(t, vim.ModeInsert, a.InputMode())
		assert.Equal(t, OpEdit, a.CurrentOperation())
		assert.Equal(t, FieldName, a.SubFocusElement())
		assert.Equal(t, WindowRequest, a.FocusedWindow())
	})

	t.Run("body tab cannot be edited", func(t *testing.T) {
		a, _ := loadedApp(t, TabBody)
		_, err := a.ExecuteOperation(ctx, OpEdit)
		assert.ErrorIs(t, err, ErrUnsupported)
		assert.Equal(t, vim.ModeNormal, a.InputMode())
	})

	t.Run("needs a loaded request", func(t *testing.T) {
		a := New()
		a.Focus(WindowRequest)
		a.selectedTab = TabHeaders
		_, err := a.ExecuteOperation(ctx, OpEdit)
		assert.ErrorIs(t, err, ErrNoRequest)
	})

	t.Run("needs the request window", func(t *testing.T) {
		a, _ := loadedApp(t, TabHeaders)
		a.Focus(WindowCollections)
		_, err := a.ExecuteOperation(ctx, OpEdit)
		assert.ErrorIs(t, err, ErrUnsupported)
	})
}

func TestApp_Commit(t *testing.T) {
	ctx := context.Background()

	t.Run("adds a header and persists it", func(t *testing.T) {
		a, store := loadedApp(t, TabHeaders)
		_, err := a.ExecuteOperation(ctx, OpEdit)
		require.NoError(t, err)

		a.inputBuffer = map[int]string{FieldName: "Content-Type", FieldValue: "application/json"}
		a.subFocus = FieldAdd

		require.NoError(t, a.Commit(ctx))

		assert.Equal(t, "application/json", a.RequestData().Headers["Content-Type"])
		assert.Empty(t, a.InputBuffer())
		assert.Equal(t, vim.ModeNormal, a.InputMode())
		assert.Equal(t, OpNull, a.CurrentOperation())

		doc, err := filesystem.NewDocumentStore().Read(store.ResolvePath("users", "list"))
		require.NoError(t, err)
		assert.Equal(t, "application/json", doc.Headers["Content-Type"])
	})

	t.Run("typed through the fields", func(t *testing.T) {
		a, _ := loadedApp(t, TabQuery)
		_, err := a.ExecuteOperation(ctx, OpEdit)
		require.NoError(t, err)

		typeText(a, "page")
		require.NoError(t, a.NextField())
		typeText(a, "2")
		require.NoError(t, a.NextField())
		require.NoError(t, a.Commit(ctx))

		assert.Equal(t, "2", a.RequestData().QueryParameters["page"])
	})

	t.Run("overwrites an existing key", func(t *testing.T) {
		a, _ := loadedApp(t, TabHeaders)
		for _, v := range []string{"one", "two"} {
			_, err := a.ExecuteOperation(ctx, OpEdit)
			require.NoError(t, err)
			a.inputBuffer = map[int]string{FieldName: "X-Trace", FieldValue: v}
			a.subFocus = FieldAdd
			require.NoError(t, a.Commit(ctx))
		}
		assert.Equal(t, "two", a.RequestData().Headers["X-Trace"])
		assert.Len(t, a.RequestData().Headers, 1)
	})

	t.Run("empty name does nothing", func(t *testing.T) {
		a, _ := loadedApp(t, TabHeaders)
		_, err := a.ExecuteOperation(ctx, OpEdit)
		require.NoError(t, err)
		a.inputBuffer = map[int]string{FieldValue: "orphan"}
		a.subFocus = FieldAdd

		require.NoError(t, a.Commit(ctx))
		assert.Empty(t, a.RequestData().Headers)
		assert.Equal(t, vim.ModeInsert, a.InputMode())
	})

	t.Run("only the add button commits", func(t *testing.T) {
		a, _ := loadedApp(t, TabHeaders)
		_, err := a.ExecuteOperation(ctx, OpEdit)
		require.NoError(t, err)
		typeText(a, "Accept")

		require.NoError(t, a.Commit(ctx))
		assert.Empty(t, a.RequestData().Headers)
		assert.Equal(t, "Accept", a.InputBuffer()[FieldName])
	})

	t.Run("outside insert mode is unsupported", func(t *testing.T) {
		assert.ErrorIs(t, New().Commit(ctx), ErrUnsupported)
	})
}
