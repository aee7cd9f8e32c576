package fetcher

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/ethan-wit/attachfetch/internal/table"
)

// Query describes one attachment to locate. Subject and AttachmentName are
// matched by exact, case-sensitive equality.
type Query struct {
	// FolderPath is the ordered sequence of folder names from the mail root
	// to the folder holding the message.
	FolderPath []string
	Subject    string
	// AttachmentName is the exact filename of the attachment.
	AttachmentName string
	Interval       Interval
	// SaveAs, when set, is the destination path for the attachment bytes.
	// It must contain a path separator; the fetcher never defaults to the
	// working directory.
	SaveAs string
}

func (q Query) validate() error {
	if len(q.FolderPath) == 0 {
		return errors.New("folder path must contain at least one folder name")
	}
	for i, segment := range q.FolderPath {
		if segment == "" {
			return fmt.Errorf("folder path segment %d is empty", i)
		}
	}
	if q.Subject == "" {
		return errors.New("email subject must not be empty")
	}
	if q.AttachmentName == "" {
		return errors.New("attachment name must not be empty")
	}
	if q.SaveAs != "" && !strings.ContainsAny(q.SaveAs, `/\`) {
		return fmt.Errorf("destination %q must be a full path, not a bare filename; the fetcher will not default to the working directory", q.SaveAs)
	}
	return q.Interval.Validate()
}

// Result is the outcome of a fetch: a saved-file path when the query carried
// a destination, otherwise a live attachment handle. Never both.
type Result struct {
	SavedPath  string
	Attachment Attachment
}

// Fetcher locates and retrieves mail attachments through a Session. It keeps
// two pieces of state across calls on the same instance: the path of the last
// saved attachment and the last loaded tabular snapshot. Not safe for
// concurrent use.
type Fetcher struct {
	session Session

	// Logf, when set, receives informational progress output.
	Logf func(format string, args ...interface{})

	lastSavedPath string
	snapshot      *table.Snapshot
}

func New(session Session) *Fetcher {
	return &Fetcher{session: session}
}

func (f *Fetcher) logf(format string, args ...interface{}) {
	if f.Logf != nil {
		f.Logf(format, args...)
	}
}

// Fetch finds the most recently received message matching the query and
// returns its attachment. With Query.SaveAs set, the attachment bytes are
// written to that path and recorded as the fetcher's last-saved path.
// No match is a *NotFoundError.
func (f *Fetcher) Fetch(q Query) (*Result, error) {
	if err := q.validate(); err != nil {
		return nil, err
	}

	f.logf("searching %s for subject %q, attachment %q", strings.Join(q.FolderPath, "/"), q.Subject, q.AttachmentName)
	f.logf("received-time window: %s", q.Interval)

	folder, err := f.session.ResolveFolder(q.FolderPath)
	if err != nil {
		return nil, err
	}

	messages, err := folder.Search(q.Interval)
	if err != nil {
		return nil, fmt.Errorf("searching folder %q: %w", strings.Join(q.FolderPath, "/"), err)
	}

	// The session's filter may be coarser than second precision; enforce the
	// exact inclusive bounds here.
	matches := make([]Message, 0, len(messages))
	for _, msg := range messages {
		if q.Interval.Contains(msg.ReceivedAt()) {
			matches = append(matches, msg)
		}
	}

	// Most recent first. The sort decides which message wins when several
	// share the subject, so it cannot be left to the session's enumeration
	// order.
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].ReceivedAt().After(matches[j].ReceivedAt())
	})

	for _, msg := range matches {
		if msg.Subject() != q.Subject {
			continue
		}
		attachments, err := msg.Attachments()
		if err != nil {
			return nil, fmt.Errorf("listing attachments of message received %s: %w",
				msg.ReceivedAt().Format(intervalTimeLayout), err)
		}
		for _, att := range attachments {
			if att.Filename() != q.AttachmentName {
				continue
			}
			if q.SaveAs == "" {
				return &Result{Attachment: att}, nil
			}
			if err := att.Save(q.SaveAs); err != nil {
				return nil, fmt.Errorf("saving attachment %q to %s: %w", att.Filename(), q.SaveAs, err)
			}
			f.lastSavedPath = q.SaveAs
			f.logf("most recent matching attachment saved as %s", q.SaveAs)
			return &Result{SavedPath: q.SaveAs}, nil
		}
	}

	return nil, &NotFoundError{Subject: q.Subject, Attachment: q.AttachmentName, Interval: q.Interval}
}

// LastSavedPath returns the destination of the most recent successful save,
// or "" if no attachment has been saved by this fetcher.
func (f *Fetcher) LastSavedPath() string {
	return f.lastSavedPath
}

// LoadTable reads the last-saved attachment as an xlsx workbook into the
// fetcher's tabular snapshot, replacing any previous snapshot.
func (f *Fetcher) LoadTable() error {
	if f.lastSavedPath == "" {
		return errors.New("no attachment has been saved yet; fetch with a destination path first")
	}
	snap, err := table.Load(f.lastSavedPath)
	if err != nil {
		return err
	}
	f.snapshot = snap
	return nil
}

// Table returns the most recently loaded snapshot, or nil if none.
func (f *Fetcher) Table() *table.Snapshot {
	return f.snapshot
}
