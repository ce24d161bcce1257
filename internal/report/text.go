package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirseerhq/sirseer-scout/internal/github"
)

// TextLog writes the plain-text report incrementally while enumeration
// is still running. Each repository becomes one block tagged with its
// listing page and 1-based index within that page:
//
//	[page 2 #14] Hello-World
//	  url: https://github.com/octocat/Hello-World
//	  description: My first repository on GitHub!
//	  language: C
//	  tags: demo, tutorial
//
// Blocks are flushed per page so a run interrupted mid-enumeration
// leaves the pages fetched so far on disk.
type TextLog struct {
	output    io.Writer
	count     int
	closeFunc func() error
}

// NewTextLog creates a text log that writes to w.
func NewTextLog(w io.Writer) *TextLog {
	return &TextLog{output: w}
}

// NewTextLogFile creates a text log backed by filename, truncating any
// prior content. The caller must call Close() when done.
func NewTextLogFile(filename string) (*TextLog, error) {
	file, err := os.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create text report: %w", err)
	}

	return &TextLog{
		output:    file,
		closeFunc: file.Close,
	}, nil
}

// AppendPage writes one block per summary for a single listing page.
func (l *TextLog) AppendPage(page int, summaries []github.Summary) error {
	var b strings.Builder
	for i, s := range summaries {
		fmt.Fprintf(&b, "[page %d #%d] %s\n", page, i+1, s.Name)
		fmt.Fprintf(&b, "  url: %s\n", s.URL)
		fmt.Fprintf(&b, "  description: %s\n", s.Description)
		fmt.Fprintf(&b, "  language: %s\n", s.TopLanguage)
		fmt.Fprintf(&b, "  tags: %s\n\n", strings.Join(s.Tags, ", "))
	}

	if _, err := io.WriteString(l.output, b.String()); err != nil {
		return fmt.Errorf("failed to append page %d: %w", page, err)
	}

	l.count += len(summaries)
	return nil
}

// Count returns the number of blocks written.
func (l *TextLog) Count() int {
	return l.count
}

// Close closes the underlying writer if it's a file.
func (l *TextLog) Close() error {
	if l.closeFunc != nil {
		return l.closeFunc()
	}
	return nil
}
