// Package archive extracts named members from zip files.
package archive

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Request names one member (exactly or by substring) to extract from a zip
// archive into a destination directory.
type Request struct {
	ArchivePath string
	MemberName  string
	DestDir     string
	// Exact requires full name equality; otherwise any member containing
	// MemberName as a substring matches.
	Exact bool
}

// Result reports what an extraction did. A non-empty Warning means the
// request was a soft failure (source not a zip, or no member matched) and
// nothing was extracted beyond Members.
type Result struct {
	// Path is the destination path of the last extracted member.
	Path string `json:"path,omitempty"`
	// Members lists every extracted member name in archive order.
	Members []string `json:"members,omitempty"`
	Warning string   `json:"warning,omitempty"`
}

// Extract copies every matching member of the archive into the destination
// directory. Substring mode may match several members; all are extracted and
// the last one's path is reported. A source that is not a valid zip and a
// member that does not exist are warnings, not errors; failures writing an
// extracted member are errors.
func Extract(req Request) (*Result, error) {
	if req.MemberName == "" {
		return nil, errors.New("member name must not be empty")
	}
	if req.DestDir == "" {
		return nil, errors.New("destination directory must not be empty")
	}

	r, err := zip.OpenReader(req.ArchivePath)
	if err != nil {
		if errors.Is(err, zip.ErrInsecurePath) {
			r.Close()
			return nil, fmt.Errorf("archive %s has member names escaping the destination: %w", req.ArchivePath, err)
		}
		return &Result{Warning: fmt.Sprintf("%s is not a zip file; it cannot be unzipped", req.ArchivePath)}, nil
	}
	defer r.Close()

	res := &Result{}
	for _, member := range r.File {
		if req.Exact {
			if member.Name != req.MemberName {
				continue
			}
		} else if !strings.Contains(member.Name, req.MemberName) {
			continue
		}

		path, err := extractMember(member, req.DestDir)
		if err != nil {
			return nil, err
		}
		res.Path = path
		res.Members = append(res.Members, member.Name)
	}

	if len(res.Members) == 0 {
		res.Warning = fmt.Sprintf("could not find member %q in %s", req.MemberName, req.ArchivePath)
	}
	return res, nil
}

func extractMember(member *zip.File, destDir string) (string, error) {
	path := filepath.Join(destDir, filepath.FromSlash(member.Name))

	// Member names are attacker-supplied; never write outside destDir.
	cleanDest := filepath.Clean(destDir)
	if path != cleanDest && !strings.HasPrefix(path, cleanDest+string(os.PathSeparator)) {
		return "", fmt.Errorf("member %q escapes destination directory %s", member.Name, destDir)
	}

	if member.FileInfo().IsDir() {
		if err := os.MkdirAll(path, 0755); err != nil {
			return "", fmt.Errorf("creating directory %s: %w", path, err)
		}
		return path, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("creating directory %s: %w", filepath.Dir(path), err)
	}

	src, err := member.Open()
	if err != nil {
		return "", fmt.Errorf("opening member %q: %w", member.Name, err)
	}
	defer src.Close()

	dst, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", path, err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return "", fmt.Errorf("extracting member %q to %s: %w", member.Name, path, err)
	}
	if err := dst.Close(); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}
