package cli

import (
	"fmt"

	"github.com/ethan-wit/attachfetch/internal/imap"
)

func (c *FoldersCmd) Run(ctx *Context) error {
	if ctx.Config.Account.Email == "" {
		return fmt.Errorf("not configured - run 'attachfetch config init' first")
	}

	client := imap.NewClient(ctx.Config)
	if err := client.Connect(); err != nil {
		return err
	}
	defer client.Close()

	ctx.Formatter.Verbosef("Listing folders...")

	folders, err := client.ListFolders()
	if err != nil {
		return err
	}

	if ctx.Formatter.JSON {
		return ctx.Formatter.PrintJSON(map[string]interface{}{
			"count":   len(folders),
			"folders": folders,
		})
	}

	if len(folders) == 0 {
		fmt.Println("No folders found.")
		return nil
	}

	fmt.Printf("Folders (%d):\n\n", len(folders))

	for _, fo := range folders {
		attrs := ""
		if len(fo.Attributes) > 0 {
			attrs = fmt.Sprintf(" [%s]", formatAttributes(fo.Attributes))
		}
		fmt.Printf("  %s%s\n", fo.Name, attrs)
	}

	return nil
}

func formatAttributes(attrs []string) string {
	if len(attrs) == 0 {
		return ""
	}

	// Clean up attribute names (remove backslashes)
	cleaned := make([]string, len(attrs))
	for i, attr := range attrs {
		if len(attr) > 0 && attr[0] == '\\' {
			cleaned[i] = attr[1:]
		} else {
			cleaned[i] = attr
		}
	}

	result := ""
	for i, attr := range cleaned {
		if i > 0 {
			result += ", "
		}
		result += attr
	}
	return result
}
