package main

// Point is a position in logical canvas coordinates.
type Point struct {
	X, Y float64
}

// Mode identifies the active gesture or input mode. Gesture modes are
// mutually exclusive: at most one of dragging, panning and connecting is
// ever active.
type Mode int

const (
	ModeIdle Mode = iota
	ModeDragging
	ModePanning
	ModeConnecting
	ModeEditing
	ModeFileInput
	ModeExportMenu
	ModeConfirmQuit
)

// String returns the mode name for the status line.
func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "NORMAL"
	case ModeDragging:
		return "DRAG"
	case ModePanning:
		return "PAN"
	case ModeConnecting:
		return "CONNECT"
	case ModeEditing:
		return "EDIT"
	case ModeFileInput:
		return "FILE"
	case ModeExportMenu:
		return "EXPORT"
	case ModeConfirmQuit:
		return "CONFIRM"
	default:
		return "UNKNOWN"
	}
}

// FileOperation selects what the filename prompt is for.
type FileOperation int

const (
	FileOpSave FileOperation = iota
	FileOpExportJSON
	FileOpExportPNG
	FileOpExportTXT
)
