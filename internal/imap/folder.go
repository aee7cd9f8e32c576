package imap

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/emersion/go-imap/v2"
	"github.com/emersion/go-imap/v2/imapclient"
	"github.com/emersion/go-message/mail"
	"github.com/ethan-wit/attachfetch/internal/fetcher"
)

type folder struct {
	client *imapclient.Client
	name   string
}

// Search selects the folder and runs a server-side SEARCH over the internal
// date. IMAP SINCE/BEFORE are date-granular, so the window is widened to
// whole days; the fetcher applies the exact second-level bounds.
func (f *folder) Search(interval fetcher.Interval) ([]fetcher.Message, error) {
	selected, err := f.client.Select(f.name, &imap.SelectOptions{ReadOnly: true}).Wait()
	if err != nil {
		return nil, fmt.Errorf("failed to select folder %s: %w", f.name, err)
	}
	if selected.NumMessages == 0 {
		return nil, nil
	}

	criteria := &imap.SearchCriteria{}
	if interval.Start != nil {
		criteria.Since = *interval.Start
	}
	if interval.End != nil {
		// BEFORE excludes the named date; widen by one day to keep the
		// end bound inclusive.
		criteria.Before = interval.End.AddDate(0, 0, 1)
	}

	searchData, err := f.client.Search(criteria, nil).Wait()
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}

	seqNums := searchData.AllSeqNums()
	if len(seqNums) == 0 {
		return nil, nil
	}

	seqSet := imap.SeqSetNum(seqNums...)
	fetchOptions := &imap.FetchOptions{
		UID:          true,
		Envelope:     true,
		InternalDate: true,
	}

	fetchCmd := f.client.Fetch(seqSet, fetchOptions)
	defer fetchCmd.Close()

	var messages []fetcher.Message
	for {
		msg := fetchCmd.Next()
		if msg == nil {
			break
		}

		var envelope *imap.Envelope
		var uid imap.UID
		var received time.Time

		for {
			item := msg.Next()
			if item == nil {
				break
			}

			switch data := item.(type) {
			case imapclient.FetchItemDataUID:
				uid = data.UID
			case imapclient.FetchItemDataEnvelope:
				envelope = data.Envelope
			case imapclient.FetchItemDataInternalDate:
				received = data.Time
			}
		}

		if envelope == nil {
			continue
		}

		messages = append(messages, &message{
			client:   f.client,
			uid:      uid,
			subject:  envelope.Subject,
			received: received,
		})
	}

	if err := fetchCmd.Close(); err != nil {
		return nil, fmt.Errorf("fetch failed: %w", err)
	}

	return messages, nil
}

type message struct {
	client   *imapclient.Client
	uid      imap.UID
	subject  string
	received time.Time
}

func (m *message) Subject() string       { return m.subject }
func (m *message) ReceivedAt() time.Time { return m.received }

// Attachments fetches the message body and walks its MIME parts.
func (m *message) Attachments() ([]fetcher.Attachment, error) {
	uidSet := imap.UIDSetNum(m.uid)
	fetchOptions := &imap.FetchOptions{
		BodySection: []*imap.FetchItemBodySection{{}},
	}

	fetchCmd := m.client.Fetch(uidSet, fetchOptions)
	defer fetchCmd.Close()

	msg := fetchCmd.Next()
	if msg == nil {
		return nil, fmt.Errorf("message with UID %d not found", m.uid)
	}

	var raw []byte
	for {
		item := msg.Next()
		if item == nil {
			break
		}
		if data, ok := item.(imapclient.FetchItemDataBodySection); ok {
			body, err := io.ReadAll(data.Literal)
			if err == nil {
				raw = body
			}
		}
	}

	if err := fetchCmd.Close(); err != nil {
		return nil, fmt.Errorf("fetch failed: %w", err)
	}

	return parseAttachments(raw), nil
}

// parseAttachments extracts the attachment parts of a raw RFC 5322 message.
// Parts without a filename are skipped; a malformed body yields no
// attachments rather than an error.
func parseAttachments(raw []byte) []fetcher.Attachment {
	mr, err := mail.CreateReader(bytes.NewReader(raw))
	if err != nil {
		return nil
	}
	defer mr.Close()

	var attachments []fetcher.Attachment
	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			break
		}

		header, ok := part.Header.(*mail.AttachmentHeader)
		if !ok {
			continue
		}

		filename, err := header.Filename()
		if err != nil || filename == "" {
			continue
		}

		data, err := io.ReadAll(part.Body)
		if err != nil {
			continue
		}

		attachments = append(attachments, &attachment{filename: filename, data: data})
	}

	return attachments
}

type attachment struct {
	filename string
	data     []byte
}

func (a *attachment) Filename() string { return a.filename }

func (a *attachment) Open() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(a.data)), nil
}

func (a *attachment) Save(path string) error {
	if err := os.WriteFile(path, a.data, 0644); err != nil {
		return fmt.Errorf("failed to write attachment to %s: %w", path, err)
	}
	return nil
}
