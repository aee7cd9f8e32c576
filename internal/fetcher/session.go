package fetcher

import (
	"io"
	"time"
)

// Session is the mail client surface the fetcher runs against. The production
// implementation speaks IMAP (internal/imap); tests use in-memory fakes.
type Session interface {
	// ResolveFolder descends from the mail root through each named segment
	// in order. A missing segment yields a *FolderNotFoundError.
	ResolveFolder(path []string) (Folder, error)
}

// Folder enumerates messages in a single resolved mail folder.
type Folder interface {
	// Search returns the folder's messages whose received time falls within
	// the interval. Bounds are inclusive. The session may filter coarsely
	// (IMAP SINCE/BEFORE are date-granular); the fetcher re-checks the exact
	// bounds and owns the ordering.
	Search(interval Interval) ([]Message, error)
}

// Message is a single mail item in a folder.
type Message interface {
	Subject() string
	ReceivedAt() time.Time
	Attachments() ([]Attachment, error)
}

// Attachment is a named binary payload on a message. An Attachment returned
// from Fetch without a destination path stays backed by the session; callers
// should read it before closing the session.
type Attachment interface {
	Filename() string
	Open() (io.ReadCloser, error)
	Save(path string) error
}
