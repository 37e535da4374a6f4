package app

// Window identifies the top-level window that owns keyboard motion.
type Window int

const (
	WindowCollections Window = iota
	WindowRequest
	WindowResponse
	WindowInput
)

// String returns the window name.
func (w Window) String() string {
	switch w {
	case WindowCollections:
		return "Collections"
	case WindowRequest:
		return "Request"
	case WindowResponse:
		return "Response"
	case WindowInput:
		return "Input"
	default:
		return "Unknown"
	}
}

// Operation is the multi-step operation in progress.
type Operation int

const (
	OpNull Operation = iota
	OpCreate
	OpDelete
	OpRename
	OpEdit
	OpOpen
)

// String returns the operation name.
func (o Operation) String() string {
	switch o {
	case OpNull:
		return "Null"
	case OpCreate:
		return "Create"
	case OpDelete:
		return "Delete"
	case OpRename:
		return "Rename"
	case OpEdit:
		return "Edit"
	case OpOpen:
		return "Open"
	default:
		return "Unknown"
	}
}

// Motion is a directional key press in normal mode.
type Motion int

const (
	MotionUp Motion = iota
	MotionDown
	MotionLeft
	MotionRight
)

// String returns the motion name.
func (m Motion) String() string {
	switch m {
	case MotionUp:
		return "up"
	case MotionDown:
		return "down"
	case MotionLeft:
		return "left"
	case MotionRight:
		return "right"
	default:
		return "unknown"
	}
}

// RequestTab is a content tab of the request window.
type RequestTab int

const (
	TabBody RequestTab = iota
	TabQuery
	TabHeaders
	TabAuth
)

var requestTabNames = []string{"Body", "Query", "Headers", "Authentication"}

// RequestTabCount is the number of request tabs.
var RequestTabCount = len(requestTabNames)

// RequestTabNames returns the request tab labels in order.
func RequestTabNames() []string {
	return append([]string(nil), requestTabNames...)
}

// String returns the tab label.
func (t RequestTab) String() string {
	if int(t) < 0 || int(t) >= len(requestTabNames) {
		return "Unknown"
	}
	return requestTabNames[t]
}

// FieldCount returns the number of sub-fields of the editor attached to the
// tab, or 0 if the tab cannot be edited.
func (t RequestTab) FieldCount() int {
	switch t {
	case TabHeaders, TabQuery:
		return 3
	default:
		return 0
	}
}

// Editor sub-fields of the key/value editor.
const (
	FieldName = iota
	FieldValue
	FieldAdd
)

// ResponseTab is a content tab of the response window.
type ResponseTab int

const (
	ResponseTabBody ResponseTab = iota
	ResponseTabHeaders
)

var responseTabNames = []string{"Body", "Headers"}

// ResponseTabCount is the number of response tabs.
var ResponseTabCount = len(responseTabNames)

// ResponseTabNames returns the response tab labels in order.
func ResponseTabNames() []string {
	return append([]string(nil), responseTabNames...)
}

// String returns the tab label.
func (t ResponseTab) String() string {
	if int(t) < 0 || int(t) >= len(responseTabNames) {
		return "Unknown"
	}
	return responseTabNames[t]
}

// PopupType is the severity of a popup notification.
type PopupType int

const (
	PopupInfo PopupType = iota
	PopupWarning
	PopupError
)

// String returns the popup type name.
func (p PopupType) String() string {
	switch p {
	case PopupInfo:
		return "Info"
	case PopupWarning:
		return "Warning"
	case PopupError:
		return "Error"
	default:
		return "Unknown"
	}
}

// EffectKind is a side effect the event loop must perform after a transition.
type EffectKind int

const (
	EffectNone EffectKind = iota
	EffectExit
	EffectEditor
)

// Effect is returned by transitions that need the event loop to act.
type Effect struct {
	Kind EffectKind
	Path string
}

// Rect is a screen region in cells.
type Rect struct {
	X, Y          int
	Width, Height int
}
