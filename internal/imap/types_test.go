package imap

import (
	"encoding/json"
	"testing"
)

func TestFolderInfoJSON(t *testing.T) {
	info := FolderInfo{
		Name:       "INBOX/Reports",
		Delimiter:  "/",
		Attributes: []string{"\\HasNoChildren"},
	}

	data, err := json.Marshal(info)
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}

	var result FolderInfo
	if err := json.Unmarshal(data, &result); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	if result.Name != info.Name {
		t.Errorf("Name = %q, want %q", result.Name, info.Name)
	}
	if result.Delimiter != info.Delimiter {
		t.Errorf("Delimiter = %q, want %q", result.Delimiter, info.Delimiter)
	}
	if len(result.Attributes) != len(info.Attributes) {
		t.Errorf("Attributes length = %d, want %d", len(result.Attributes), len(info.Attributes))
	}
}
