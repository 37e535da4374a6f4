package app

import (
	"context"
	"fmt"
)

// Focus gives w the keyboard.
func (a *App) Focus(w Window) {
	a.focusedWindow = w
}

// SelectMotion applies a motion to the focused window.
func (a *App) SelectMotion(ctx context.Context, m Motion) error {
	switch a.focusedWindow {
	case WindowCollections:
		if err := a.moveCollections(ctx, m); err != nil {
			return err
		}
		if a.showChildren {
			return a.reloadSelectedRequest()
		}
		return nil
	case WindowRequest:
		switch m {
		case MotionLeft:
			a.selectedTab = RequestTab(wrapDecrement(int(a.selectedTab), RequestTabCount))
		case MotionRight:
			a.selectedTab = RequestTab(wrapIncrement(int(a.selectedTab), RequestTabCount))
		default:
			return a.unsupportedMotion(m)
		}
		return nil
	case WindowResponse:
		switch m {
		case MotionLeft:
			a.selectedResponseTab = ResponseTab(wrapDecrement(int(a.selectedResponseTab), ResponseTabCount))
		case MotionRight:
			a.selectedResponseTab = ResponseTab(wrapIncrement(int(a.selectedResponseTab), ResponseTabCount))
		default:
			return a.unsupportedMotion(m)
		}
		return nil
	case WindowInput:
		return a.unsupportedMotion(m)
	default:
		return a.unsupportedMotion(m)
	}
}

func (a *App) unsupportedMotion(m Motion) error {
	return fmt.Errorf("%w: %s in %s window", ErrUnsupported, m, a.focusedWindow)
}

func (a *App) moveCollections(ctx context.Context, m Motion) error {
	switch m {
	case MotionUp:
		a.collectionList.Previous(len(a.collections))
	case MotionDown:
		a.collectionList.Next(len(a.collections))
	case MotionLeft:
		if !a.showChildren {
			return nil
		}
		names, err := a.store.ListCollections(ctx)
		if err != nil {
			return fmt.Errorf("failed to list collections: %w", err)
		}
		a.selectedCollection = ""
		a.showChildren = false
		a.collections = names
		a.collectionList.Reset(len(names))
		a.unloadRequest()
	case MotionRight:
		if a.showChildren {
			return nil
		}
		name, ok := a.SelectedName()
		if !ok {
			return nil
		}
		children, err := a.store.ListChildren(ctx, name)
		if err != nil {
			return fmt.Errorf("failed to open collection %q: %w", name, err)
		}
		a.selectedCollection = name
		a.showChildren = true
		a.collections = children
		a.collectionList.Reset(len(children))
	default:
		return a.unsupportedMotion(m)
	}
	return nil
}

// reloadSelectedRequest replaces the loaded document with the one under the
// list cursor.
func (a *App) reloadSelectedRequest() error {
	name, ok := a.SelectedName()
	if !ok || !a.showChildren {
		a.unloadRequest()
		return nil
	}

	a.selectedRequest = name
	a.operation = OpNull
	a.clearInputBuffer()

	path := a.store.ResolvePath(a.selectedCollection, name)
	doc, err := a.docs.Read(path)
	if err != nil {
		a.requestData = nil
		return fmt.Errorf("failed to load request %q: %w", name, err)
	}
	a.requestData = doc
	return nil
}

func (a *App) unloadRequest() {
	a.requestData = nil
	a.selectedRequest = ""
	a.operation = OpNull
	a.clearInputBuffer()
}

// refreshCollections reloads the list for the current drill-down state and
// keeps the cursor in range. If selectName is listed it becomes the selection.
func (a *App) refreshCollections(ctx context.Context, selectName string) error {
	var (
		names []string
		err   error
	)
	if a.showChildren {
		names, err = a.store.ListChildren(ctx, a.selectedCollection)
	} else {
		names, err = a.store.ListCollections(ctx)
	}
	if err != nil {
		return fmt.Errorf("failed to refresh collections: %w", err)
	}

	a.collections = names
	a.collectionList.Clamp(len(names))
	for i, name := range names {
		if name == selectName {
			a.collectionList.Select(i)
			break
		}
	}

	if a.showChildren {
		return a.reloadSelectedRequest()
	}
	return nil
}
