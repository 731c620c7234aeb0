package workbook

import "fmt"

// SourceNotFoundError indicates the source path does not exist. Existence is
// checked before any parse attempt, so callers can distinguish a missing file
// from a corrupt one.
type SourceNotFoundError struct {
	Path string
}

func (e *SourceNotFoundError) Error() string {
	return fmt.Sprintf("source file not found: %s", e.Path)
}

// UnreadableContainerError indicates the bytes at Path cannot be parsed as
// either supported spreadsheet container, or the extension selects no decoder.
type UnreadableContainerError struct {
	Path   string
	Reason string
	Cause  error
}

func (e *UnreadableContainerError) Error() string {
	switch {
	case e.Reason != "" && e.Cause != nil:
		return fmt.Sprintf("unreadable container %s: %s: %v", e.Path, e.Reason, e.Cause)
	case e.Cause != nil:
		return fmt.Sprintf("unreadable container %s: %v", e.Path, e.Cause)
	default:
		return fmt.Sprintf("unreadable container %s: %s", e.Path, e.Reason)
	}
}

func (e *UnreadableContainerError) Unwrap() error {
	return e.Cause
}

// SheetMissingError indicates the requested sheet index is out of range for
// the workbook.
type SheetMissingError struct {
	Path   string
	Index  int
	Sheets int
}

func (e *SheetMissingError) Error() string {
	return fmt.Sprintf("sheet %d not present in %s (workbook has %d sheets)", e.Index, e.Path, e.Sheets)
}
