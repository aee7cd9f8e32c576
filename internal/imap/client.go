// Package imap implements the fetcher's mail session over IMAP.
package imap

import (
	"crypto/tls"
	"fmt"
	"strings"

	"github.com/emersion/go-imap/v2/imapclient"
	"github.com/ethan-wit/attachfetch/internal/config"
	"github.com/ethan-wit/attachfetch/internal/fetcher"
)

type Client struct {
	client *imapclient.Client
	config *config.Config
}

func NewClient(cfg *config.Config) *Client {
	return &Client{config: cfg}
}

func (c *Client) Connect() error {
	password, err := c.config.GetPassword()
	if err != nil {
		return fmt.Errorf("failed to get password: %w", err)
	}

	addr := fmt.Sprintf("%s:%d", c.config.Account.Host, c.config.Account.Port)

	options := &imapclient.Options{
		TLSConfig: &tls.Config{
			// Insecure supports local bridges with self-signed certs.
			InsecureSkipVerify: c.config.Account.Insecure,
			ServerName:         c.config.Account.Host,
		},
	}

	client, err := imapclient.DialTLS(addr, options)
	if err != nil {
		return fmt.Errorf("failed to connect to IMAP server %s: %w", addr, err)
	}

	if err := client.Login(c.config.Account.Email, password).Wait(); err != nil {
		client.Close()
		return fmt.Errorf("IMAP login failed: %w", err)
	}

	c.client = client
	return nil
}

func (c *Client) Close() error {
	if c.client != nil {
		if err := c.client.Logout().Wait(); err != nil {
			// Ignore logout errors, just close
		}
		return c.client.Close()
	}
	return nil
}

// ResolveFolder descends from the mail root through each named segment,
// joining segments with the server's hierarchy delimiter. Every prefix of the
// path must exist as a mailbox.
func (c *Client) ResolveFolder(path []string) (fetcher.Folder, error) {
	if c.client == nil {
		return nil, fmt.Errorf("not connected")
	}

	listCmd := c.client.List("", "*", nil)
	mailboxes, err := listCmd.Collect()
	if err != nil {
		return nil, fmt.Errorf("failed to list folders: %w", err)
	}

	delim := "/"
	names := make(map[string]bool, len(mailboxes))
	for _, mb := range mailboxes {
		if mb.Delim != 0 {
			delim = string(mb.Delim)
		}
		names[mb.Mailbox] = true
	}

	if segment, ok := missingSegment(path, delim, names); !ok {
		return nil, &fetcher.FolderNotFoundError{Path: path, Segment: segment}
	}

	return &folder{client: c.client, name: strings.Join(path, delim)}, nil
}

// missingSegment walks the path prefixes against the known mailbox names and
// returns the first segment whose prefix does not exist.
func missingSegment(path []string, delim string, names map[string]bool) (string, bool) {
	for i, segment := range path {
		prefix := strings.Join(path[:i+1], delim)
		if !names[prefix] {
			return segment, false
		}
	}
	return "", true
}

// ListFolders returns every folder in the account, for folder-path discovery.
func (c *Client) ListFolders() ([]FolderInfo, error) {
	if c.client == nil {
		return nil, fmt.Errorf("not connected")
	}

	listCmd := c.client.List("", "*", nil)
	mailboxes, err := listCmd.Collect()
	if err != nil {
		return nil, fmt.Errorf("failed to list folders: %w", err)
	}

	var result []FolderInfo
	for _, mb := range mailboxes {
		info := FolderInfo{
			Name:       mb.Mailbox,
			Delimiter:  string(mb.Delim),
			Attributes: make([]string, 0, len(mb.Attrs)),
		}
		for _, attr := range mb.Attrs {
			info.Attributes = append(info.Attributes, string(attr))
		}
		result = append(result, info)
	}

	return result, nil
}
