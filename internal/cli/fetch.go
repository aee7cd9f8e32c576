package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/ethan-wit/attachfetch/internal/archive"
	"github.com/ethan-wit/attachfetch/internal/fetcher"
	"github.com/ethan-wit/attachfetch/internal/imap"
)

func (c *FetchCmd) Run(ctx *Context) error {
	if ctx.Config.Account.Email == "" {
		return fmt.Errorf("not configured - run 'attachfetch config init' first")
	}

	if c.Extract != "" && c.SaveAs == "" {
		return fmt.Errorf("--extract requires --save-as")
	}
	if c.Extract != "" && c.Out == "" {
		return fmt.Errorf("--extract requires --out")
	}
	if c.Load && c.SaveAs == "" {
		return fmt.Errorf("--load requires --save-as")
	}

	folder := c.Folder
	if folder == "" {
		folder = ctx.Config.Defaults.Folder
	}

	interval, err := c.interval()
	if err != nil {
		return err
	}

	query := fetcher.Query{
		FolderPath:     strings.Split(folder, "/"),
		Subject:        c.Subject,
		AttachmentName: c.Attachment,
		Interval:       interval,
		SaveAs:         c.SaveAs,
	}

	client := imap.NewClient(ctx.Config)
	if err := client.Connect(); err != nil {
		return err
	}
	defer client.Close()

	f := fetcher.New(client)
	f.Logf = ctx.Formatter.Verbosef

	result, err := f.Fetch(query)
	if err != nil {
		return err
	}

	out := map[string]interface{}{
		"subject":    c.Subject,
		"attachment": c.Attachment,
		"folder":     folder,
	}

	if result.SavedPath != "" {
		out["saved_as"] = result.SavedPath
		if !ctx.Formatter.JSON {
			ctx.Formatter.PrintSuccess(fmt.Sprintf("Attachment saved as %s", result.SavedPath))
		}
	} else {
		out["found"] = result.Attachment.Filename()
		if !ctx.Formatter.JSON {
			fmt.Printf("Found attachment %s (no destination given, nothing written)\n", result.Attachment.Filename())
		}
	}

	if c.Extract != "" {
		res, err := archive.Extract(archive.Request{
			ArchivePath: result.SavedPath,
			MemberName:  c.Extract,
			DestDir:     c.Out,
			Exact:       c.Exact,
		})
		if err != nil {
			return err
		}
		if res.Warning != "" {
			out["extract_warning"] = res.Warning
			if !ctx.Formatter.JSON {
				ctx.Formatter.PrintWarning(res.Warning)
			}
		} else {
			out["extracted"] = res.Path
			out["extracted_members"] = res.Members
			if !ctx.Formatter.JSON {
				ctx.Formatter.PrintSuccess(fmt.Sprintf("Unzipped attachment saved as %s", res.Path))
			}
		}
	}

	if c.Load {
		if err := f.LoadTable(); err != nil {
			return err
		}
		snap := f.Table()
		out["sheet"] = snap.Sheet
		out["row_count"] = snap.RowCount()
		out["col_count"] = snap.ColCount()
		if !ctx.Formatter.JSON {
			fmt.Printf("Loaded sheet %q: %d row(s), %d column(s)\n", snap.Sheet, snap.RowCount(), snap.ColCount())
		}
	}

	if ctx.Formatter.JSON {
		return ctx.Formatter.PrintJSON(out)
	}
	return nil
}

func (c *FetchCmd) interval() (fetcher.Interval, error) {
	if c.Today {
		return fetcher.TodayInterval(), nil
	}

	start, err := parseTime(c.Since)
	if err != nil {
		return fetcher.Interval{}, fmt.Errorf("invalid --since: %w", err)
	}
	end, err := parseTime(c.Until)
	if err != nil {
		return fetcher.Interval{}, fmt.Errorf("invalid --until: %w", err)
	}
	return fetcher.Interval{Start: start, End: end}, nil
}

// parseTime accepts a date or a date-time in the local timezone. An empty
// value means the bound is absent.
func parseTime(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	for _, layout := range []string{"2006-01-02 15:04:05", "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("cannot parse %q - use YYYY-MM-DD or 'YYYY-MM-DD HH:MM:SS'", value)
}
