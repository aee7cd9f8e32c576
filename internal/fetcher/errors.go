package fetcher

import (
	"fmt"
	"strings"
)

// NotFoundError reports that no message matched the subject, attachment name
// and interval of a query.
type NotFoundError struct {
	Subject    string
	Attachment string
	Interval   Interval
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("could not find email %q with attachment %q within interval %s",
		e.Subject, e.Attachment, e.Interval)
}

// FolderNotFoundError reports that a segment of a folder path does not exist.
type FolderNotFoundError struct {
	Path    []string
	Segment string
}

func (e *FolderNotFoundError) Error() string {
	return fmt.Sprintf("folder %q not found while resolving path %q",
		e.Segment, strings.Join(e.Path, "/"))
}
