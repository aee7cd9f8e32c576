package cli

import (
	"github.com/ethan-wit/attachfetch/internal/config"
	"github.com/ethan-wit/attachfetch/internal/output"
)

var Version = "0.1.0"

type Globals struct {
	JSON     bool   `help:"Output as JSON" name:"json"`
	HelpJSON bool   `help:"Output command help as JSON (AI agent mode)" name:"help-json"`
	Config   string `help:"Path to config file" short:"c" type:"path"`
	Verbose  bool   `help:"Verbose output" short:"v"`
	Quiet    bool   `help:"Suppress non-essential output" short:"q"`
}

type CLI struct {
	Globals

	Config  ConfigCmd  `cmd:"" help:"Configuration management"`
	Fetch   FetchCmd   `cmd:"" help:"Fetch an email attachment"`
	Extract ExtractCmd `cmd:"" help:"Extract a member from a zip archive"`
	Table   TableCmd   `cmd:"" help:"Spreadsheet operations"`
	Folders FoldersCmd `cmd:"" help:"List account folders"`
	Version VersionCmd `cmd:"" help:"Show version information"`
}

type Context struct {
	Config    *config.Config
	Formatter *output.Formatter
	Globals   *Globals
}

func NewContext(globals *Globals) (*Context, error) {
	formatter := output.New(globals.JSON, globals.Verbose, globals.Quiet)

	var cfg *config.Config
	var err error

	if globals.Config != "" {
		cfg, err = config.Load(globals.Config)
	} else if config.Exists() {
		cfg, err = config.Load("")
	}

	if err != nil && cfg == nil {
		cfg = config.DefaultConfig()
	}
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	return &Context{
		Config:    cfg,
		Formatter: formatter,
		Globals:   globals,
	}, nil
}

// ConfigCmd handles configuration management
type ConfigCmd struct {
	Init     ConfigInitCmd     `cmd:"" help:"Interactive setup wizard"`
	Show     ConfigShowCmd     `cmd:"" help:"Display current configuration"`
	Set      ConfigSetCmd      `cmd:"" help:"Set a configuration value"`
	Validate ConfigValidateCmd `cmd:"" help:"Test the IMAP connection"`
}

type ConfigInitCmd struct{}

type ConfigShowCmd struct{}

type ConfigSetCmd struct {
	Key   string `arg:"" help:"Configuration key (e.g., account.host, defaults.folder)"`
	Value string `arg:"" help:"Value to set"`
}

type ConfigValidateCmd struct{}

// FetchCmd locates one attachment by folder path, subject, filename and
// received-time window, and saves or inspects it. The optional extract and
// load steps run against the saved file.
type FetchCmd struct {
	Folder     string `help:"Folder path from the mail root, segments separated by '/' (e.g. Inbox/Reports)" short:"f"`
	Subject    string `help:"Exact subject of the email" short:"s" required:""`
	Attachment string `help:"Exact filename of the attachment" short:"a" required:""`
	Since      string `help:"Start of the received-time window, inclusive (YYYY-MM-DD or 'YYYY-MM-DD HH:MM:SS')" xor:"since"`
	Until      string `help:"End of the received-time window, inclusive (YYYY-MM-DD or 'YYYY-MM-DD HH:MM:SS')" xor:"until"`
	Today      bool   `help:"Search from the start of today until now" xor:"since,until"`
	SaveAs     string `help:"Destination path for the attachment; must contain a path separator" name:"save-as" short:"o"`

	Extract string `help:"After saving, extract this member from the attachment (requires --save-as)"`
	Out     string `help:"Directory for extracted members (with --extract)"`
	Exact   bool   `help:"Match the extract member name exactly instead of by substring"`
	Load    bool   `help:"After saving, load the attachment as a spreadsheet (requires --save-as)"`
}

// ExtractCmd unzips a member from an archive on disk.
type ExtractCmd struct {
	Archive string `arg:"" help:"Path to the zip archive"`
	Member  string `help:"Member name to extract" short:"m" required:""`
	Out     string `help:"Destination directory" short:"o" required:""`
	Exact   bool   `help:"Match the member name exactly instead of by substring"`
}

// TableCmd handles spreadsheet operations
type TableCmd struct {
	Show TableShowCmd `cmd:"" help:"Load a spreadsheet and print its contents"`
}

type TableShowCmd struct {
	Path  string `arg:"" help:"Path to the xlsx workbook" type:"existingfile"`
	Limit int    `help:"Maximum number of rows to print (0 = all)" short:"n"`
}

type FoldersCmd struct{}

// VersionCmd shows version information
type VersionCmd struct{}
