package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		json    bool
		verbose bool
		quiet   bool
	}{
		{"default", false, false, false},
		{"json mode", true, false, false},
		{"verbose mode", false, true, false},
		{"quiet mode", false, false, true},
		{"all options", true, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := New(tt.json, tt.verbose, tt.quiet)
			if f == nil {
				t.Fatal("expected non-nil formatter")
			}
			if f.JSON != tt.json {
				t.Errorf("JSON = %v, want %v", f.JSON, tt.json)
			}
			if f.Verbose != tt.verbose {
				t.Errorf("Verbose = %v, want %v", f.Verbose, tt.verbose)
			}
			if f.Quiet != tt.quiet {
				t.Errorf("Quiet = %v, want %v", f.Quiet, tt.quiet)
			}
			if f.Writer == nil {
				t.Error("expected Writer to be set")
			}
		})
	}
}

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	f := New(true, false, false)
	f.Writer = &buf

	if err := f.PrintJSON(map[string]string{"key": "value"}); err != nil {
		t.Fatalf("PrintJSON() error = %v", err)
	}

	var decoded map[string]string
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["key"] != "value" {
		t.Errorf("key = %q, want %q", decoded["key"], "value")
	}
}

func TestColorDisabled(t *testing.T) {
	tests := []struct {
		name string
		f    *Formatter
	}{
		{"no color", &Formatter{NoColor: true}},
		{"json mode", &Formatter{JSON: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.f.Color(Red, "text"); got != "text" {
				t.Errorf("Color() = %q, want plain %q", got, "text")
			}
		})
	}
}

func TestColorEnabled(t *testing.T) {
	f := &Formatter{}
	got := f.Color(Green, "ok")
	if !strings.HasPrefix(got, Green) || !strings.HasSuffix(got, Reset) {
		t.Errorf("Color() = %q, want wrapped in codes", got)
	}
}

func TestPrintSuccess(t *testing.T) {
	var buf bytes.Buffer
	f := New(false, false, false)
	f.Writer = &buf
	f.NoColor = true

	f.PrintSuccess("saved")
	if !strings.Contains(buf.String(), "saved") {
		t.Errorf("output = %q, want to contain %q", buf.String(), "saved")
	}
}

func TestPrintSuccessQuiet(t *testing.T) {
	var buf bytes.Buffer
	f := New(false, false, true)
	f.Writer = &buf

	f.PrintSuccess("saved")
	if buf.Len() != 0 {
		t.Errorf("quiet mode produced output: %q", buf.String())
	}
}

func TestPrintWarning(t *testing.T) {
	t.Run("text mode", func(t *testing.T) {
		var buf bytes.Buffer
		f := New(false, false, false)
		f.Writer = &buf
		f.NoColor = true

		f.PrintWarning("foo.txt is not a zip file; it cannot be unzipped")

		out := buf.String()
		if !strings.Contains(out, "Warning:") {
			t.Errorf("output = %q, want Warning: prefix", out)
		}
		if !strings.Contains(out, "not a zip file") {
			t.Errorf("output = %q, want warning message", out)
		}
	})

	t.Run("json mode", func(t *testing.T) {
		var buf bytes.Buffer
		f := New(true, false, false)
		f.Writer = &buf

		f.PrintWarning("could not find member")

		var decoded map[string]string
		if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
			t.Fatalf("output is not valid JSON: %v", err)
		}
		if decoded["warning"] != "could not find member" {
			t.Errorf("warning = %q, want %q", decoded["warning"], "could not find member")
		}
	})
}

func TestVerbosef(t *testing.T) {
	tests := []struct {
		name    string
		verbose bool
		quiet   bool
		want    bool
	}{
		{"verbose on", true, false, true},
		{"verbose off", false, false, false},
		{"verbose but quiet", true, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			f := New(false, tt.verbose, tt.quiet)
			f.Writer = &buf
			f.NoColor = true

			f.Verbosef("searching %s", "INBOX")

			got := strings.Contains(buf.String(), "searching INBOX")
			if got != tt.want {
				t.Errorf("output = %q, printed = %v, want %v", buf.String(), got, tt.want)
			}
		})
	}
}

func TestTableWriter(t *testing.T) {
	var buf bytes.Buffer
	f := New(false, false, false)
	f.Writer = &buf
	f.NoColor = true

	table := f.NewTable("NAME", "SIZE")
	table.AddRow("report.zip", "1024")
	table.AddRow("data.csv", "88")
	table.Flush()

	out := buf.String()
	for _, want := range []string{"NAME", "SIZE", "report.zip", "data.csv"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}
