package sheet

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"
	"google.golang.org/api/drive/v3"
)

// Revision identifies the latest saved version of the spreadsheet.
type Revision struct {
	ID       string
	Modified time.Time
}

func (r Revision) String() string {
	return fmt.Sprintf("%v %v", r.ID, r.Modified.Format(time.RFC3339))
}

// Revision returns the most recent Drive revision of the spreadsheet.
func (c *Client) Revision(ctx context.Context) (*Revision, error) {
	if c == nil || !c.connected {
		return nil, ErrNotConnected
	}

	return getRevision(ctx, c.gdrive, c.spreadsheet.SpreadsheetId)
}

func getRevision(ctx context.Context, gdrive *drive.Service, fileId string) (*Revision, error) {
	page := ""
	latest := Revision{
		ID:       "",
		Modified: time.Time{},
	}

	for {
		call := gdrive.Revisions.List(fileId).Context(ctx)
		if page != "" {
			call.PageToken(page)
		}

		revisions, err := call.Do()
		if err != nil {
			return nil, err
		}

		for _, revision := range revisions.Revisions {
			datetime, err := time.Parse(time.RFC3339Nano, revision.ModifiedTime)
			if err != nil {
				return nil, err
			}

			if latest.Modified.Before(datetime) {
				latest.ID = revision.Id
				latest.Modified = datetime
			}
		}

		if page = revisions.NextPageToken; page == "" {
			break
		}
	}

	if latest.Modified.IsZero() {
		return nil, fmt.Errorf("Unable to identify latest revision for file ID %s", fileId)
	}

	return &latest, nil
}

// LoadRevision reads the revision ID recorded by a previous run. A missing file
// is not an error and returns an empty ID.
func LoadRevision(fs afero.Fs, file string) (string, error) {
	if exists, err := afero.Exists(fs, file); err != nil {
		return "", err
	} else if !exists {
		return "", nil
	}

	bytes, err := afero.ReadFile(fs, file)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(bytes)), nil
}

// SaveRevision records the revision ID for the next run.
func SaveRevision(fs afero.Fs, file string, revision *Revision) error {
	if revision == nil {
		return nil
	}

	if err := fs.MkdirAll(filepath.Dir(file), 0755); err != nil {
		return err
	}

	return afero.WriteFile(fs, file, []byte(revision.ID+"\n"), 0644)
}
