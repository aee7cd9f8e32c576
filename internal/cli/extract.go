package cli

import (
	"fmt"

	"github.com/ethan-wit/attachfetch/internal/archive"
)

func (c *ExtractCmd) Run(ctx *Context) error {
	res, err := archive.Extract(archive.Request{
		ArchivePath: c.Archive,
		MemberName:  c.Member,
		DestDir:     c.Out,
		Exact:       c.Exact,
	})
	if err != nil {
		return err
	}

	if ctx.Formatter.JSON {
		return ctx.Formatter.PrintJSON(res)
	}

	if res.Warning != "" {
		ctx.Formatter.PrintWarning(res.Warning)
		return nil
	}

	for _, member := range res.Members {
		ctx.Formatter.Verbosef("extracted %s", member)
	}
	ctx.Formatter.PrintSuccess(fmt.Sprintf("%d member(s) extracted, last saved as %s", len(res.Members), res.Path))
	return nil
}
