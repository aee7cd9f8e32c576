package cli

import (
	"encoding/json"
	"fmt"
)

type HelpSchema struct {
	Name        string          `json:"name"`
	Version     string          `json:"version"`
	Description string          `json:"description"`
	Commands    []CommandSchema `json:"commands"`
	GlobalFlags []FlagSchema    `json:"global_flags"`
}

type CommandSchema struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Flags       []FlagSchema    `json:"flags,omitempty"`
	Args        []ArgSchema     `json:"args,omitempty"`
	Subcommands []CommandSchema `json:"subcommands,omitempty"`
	Examples    []string        `json:"examples,omitempty"`
}

type FlagSchema struct {
	Name        string `json:"name"`
	Short       string `json:"short,omitempty"`
	Type        string `json:"type"`
	Default     string `json:"default,omitempty"`
	Required    bool   `json:"required,omitempty"`
	Description string `json:"description"`
}

type ArgSchema struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Required    bool   `json:"required"`
	Description string `json:"description"`
}

func GenerateHelpJSON(cli *CLI) ([]byte, error) {
	schema := HelpSchema{
		Name:        "attachfetch",
		Version:     Version,
		Description: "Fetch email attachments over IMAP, unzip them, and load spreadsheets",
		GlobalFlags: extractGlobalFlags(),
		Commands:    extractCommands(cli),
	}

	return json.MarshalIndent(schema, "", "  ")
}

func extractGlobalFlags() []FlagSchema {
	return []FlagSchema{
		{Name: "--json", Type: "bool", Description: "Output as JSON (applies to all commands)"},
		{Name: "--help-json", Type: "bool", Description: "Output command help as JSON (AI agent mode)"},
		{Name: "--config", Short: "-c", Type: "string", Description: "Path to config file"},
		{Name: "--verbose", Short: "-v", Type: "bool", Description: "Verbose output"},
		{Name: "--quiet", Short: "-q", Type: "bool", Description: "Suppress non-essential output"},
	}
}

func extractCommands(cli *CLI) []CommandSchema {
	return []CommandSchema{
		extractConfigCommands(),
		extractFetchCommand(),
		extractExtractCommand(),
		extractTableCommands(),
		{
			Name:        "folders",
			Description: "List account folders, for discovering folder paths",
			Examples:    []string{"attachfetch folders", "attachfetch folders --json"},
		},
		{
			Name:        "version",
			Description: "Show version information",
			Examples:    []string{"attachfetch version", "attachfetch version --json"},
		},
	}
}

func extractConfigCommands() CommandSchema {
	return CommandSchema{
		Name:        "config",
		Description: "Configuration management",
		Subcommands: []CommandSchema{
			{
				Name:        "config init",
				Description: "Interactive setup wizard for the IMAP account",
				Examples:    []string{"attachfetch config init"},
			},
			{
				Name:        "config show",
				Description: "Display current configuration",
				Examples:    []string{"attachfetch config show", "attachfetch config show --json"},
			},
			{
				Name:        "config set",
				Description: "Set a configuration value",
				Args: []ArgSchema{
					{Name: "key", Type: "string", Required: true, Description: "Configuration key (e.g., account.host, defaults.folder)"},
					{Name: "value", Type: "string", Required: true, Description: "Value to set"},
				},
				Examples: []string{
					"attachfetch config set account.host imap.example.com",
					"attachfetch config set defaults.folder Inbox/Reports",
				},
			},
			{
				Name:        "config validate",
				Description: "Connect and authenticate to the configured IMAP server",
				Examples:    []string{"attachfetch config validate"},
			},
		},
	}
}

func extractFetchCommand() CommandSchema {
	return CommandSchema{
		Name:        "fetch",
		Description: "Fetch the most recent email attachment matching folder, subject, filename and time window",
		Flags: []FlagSchema{
			{Name: "--folder", Short: "-f", Type: "string", Description: "Folder path from the mail root, segments separated by '/'"},
			{Name: "--subject", Short: "-s", Type: "string", Required: true, Description: "Exact subject of the email"},
			{Name: "--attachment", Short: "-a", Type: "string", Required: true, Description: "Exact filename of the attachment"},
			{Name: "--since", Type: "string", Description: "Start of the received-time window, inclusive"},
			{Name: "--until", Type: "string", Description: "End of the received-time window, inclusive"},
			{Name: "--today", Type: "bool", Description: "Search from the start of today until now"},
			{Name: "--save-as", Short: "-o", Type: "string", Description: "Destination path for the attachment (must contain a path separator)"},
			{Name: "--extract", Type: "string", Description: "Zip member to extract from the saved attachment"},
			{Name: "--out", Type: "string", Description: "Directory for extracted members"},
			{Name: "--exact", Type: "bool", Description: "Match the extract member name exactly"},
			{Name: "--load", Type: "bool", Description: "Load the saved attachment as a spreadsheet"},
		},
		Examples: []string{
			"attachfetch fetch -f Inbox/Reports -s 'Daily Export' -a export.zip --today -o /tmp/export.zip",
			"attachfetch fetch -s 'Daily Export' -a export.zip --since '2021-07-27 01:00:00' --until '2021-07-27 12:00:00' -o /tmp/export.zip",
			"attachfetch fetch -s 'Daily Export' -a export.zip -o /tmp/export.zip --extract report --out /tmp/out",
		},
	}
}

func extractExtractCommand() CommandSchema {
	return CommandSchema{
		Name:        "extract",
		Description: "Extract a member from a zip archive",
		Args: []ArgSchema{
			{Name: "archive", Type: "string", Required: true, Description: "Path to the zip archive"},
		},
		Flags: []FlagSchema{
			{Name: "--member", Short: "-m", Type: "string", Required: true, Description: "Member name to extract"},
			{Name: "--out", Short: "-o", Type: "string", Required: true, Description: "Destination directory"},
			{Name: "--exact", Type: "bool", Description: "Match the member name exactly instead of by substring"},
		},
		Examples: []string{
			"attachfetch extract /tmp/export.zip -m report -o /tmp/out",
			"attachfetch extract /tmp/export.zip -m report.csv -o /tmp/out --exact",
		},
	}
}

func extractTableCommands() CommandSchema {
	return CommandSchema{
		Name:        "table",
		Description: "Spreadsheet operations",
		Subcommands: []CommandSchema{
			{
				Name:        "table show",
				Description: "Load an xlsx workbook and print its first sheet",
				Args: []ArgSchema{
					{Name: "path", Type: "string", Required: true, Description: "Path to the xlsx workbook"},
				},
				Flags: []FlagSchema{
					{Name: "--limit", Short: "-n", Type: "int", Description: "Maximum number of rows to print (0 = all)"},
				},
				Examples: []string{
					"attachfetch table show /tmp/report.xlsx",
					"attachfetch table show /tmp/report.xlsx -n 10 --json",
				},
			},
		},
	}
}

func PrintHelpJSON(cli *CLI) error {
	data, err := GenerateHelpJSON(cli)
	if err != nil {
		return fmt.Errorf("failed to generate help JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
