// Package report renders stakeholder documents from a compiled
// engagement summary. Each supported format has one writer; Render
// picks the writer by format tag and returns a filename-addressed
// document for the store to persist.
//
// The stakeholder tag addresses the document (filename, heading) only;
// stakeholder-specific content redaction is not implemented.
package report

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/audithound/audithound/pkg/engagement"
	"github.com/audithound/audithound/pkg/executor"
	"github.com/audithound/audithound/pkg/program"
	"github.com/audithound/audithound/pkg/summary"
)

// ErrUnknownFormat indicates an unsupported report format tag.
var ErrUnknownFormat = errors.New("report: unknown format")

// Input carries everything a writer may need. Program may be nil and
// Results empty; writers degrade to summary-only content.
type Input struct {
	Engagement  *engagement.Engagement
	Program     *program.WorkProgram
	Results     map[string]executor.Result
	Summary     summary.EngagementSummary
	Stakeholder string
	GeneratedAt time.Time
}

// Document is a rendered, filename-addressed report.
type Document struct {
	Filename string
	Content  []byte
}

type writerFunc func(Input) ([]byte, error)

// writers maps format tags to their renderers and file extensions.
var writers = map[string]struct {
	render writerFunc
	ext    string
}{
	"dashboard": {writeDashboard, "txt"},
	"html":      {writeHTML, "html"},
	"markdown":  {writeMarkdown, "md"},
	"json":      {writeJSON, "json"},
	"csv":       {writeCSV, "csv"},
	"pdf":       {writePDF, "pdf"},
}

// Formats returns the supported format tags, sorted.
func Formats() []string {
	formats := make([]string, 0, len(writers))
	for f := range writers {
		formats = append(formats, f)
	}
	sort.Strings(formats)
	return formats
}

// Render produces the document for one stakeholder/format pair.
func Render(in Input, format string) (Document, error) {
	w, ok := writers[format]
	if !ok {
		return Document{}, fmt.Errorf("%w: %q (supported: %s)",
			ErrUnknownFormat, format, strings.Join(Formats(), ", "))
	}
	content, err := w.render(in)
	if err != nil {
		return Document{}, fmt.Errorf("report: rendering %s: %w", format, err)
	}
	return Document{
		Filename: filename(in.Stakeholder, format, w.ext, in.GeneratedAt),
		Content:  content,
	}, nil
}

// filename addresses a document by stakeholder, format, and date.
func filename(stakeholder, format, ext string, at time.Time) string {
	tag := strings.ToLower(strings.ReplaceAll(stakeholder, " ", "-"))
	return fmt.Sprintf("%s-%s-%s.%s", tag, format, at.Format("2006-01-02"), ext)
}

// sortedResults returns the results in workstream-name order, for
// writers that emit per-workstream rows.
func sortedResults(in Input) []executor.Result {
	if in.Program != nil {
		// Program order when available.
		out := make([]executor.Result, 0, len(in.Results))
		for _, ws := range in.Program.Workstreams {
			if r, ok := in.Results[ws.Name]; ok {
				out = append(out, r)
			}
		}
		return out
	}
	names := make([]string, 0, len(in.Results))
	for name := range in.Results {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]executor.Result, 0, len(names))
	for _, name := range names {
		out = append(out, in.Results[name])
	}
	return out
}
