// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/sowmyalt/edu2job/internal/engine"
	"github.com/sowmyalt/edu2job/internal/reconcile"
	"github.com/sowmyalt/edu2job/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// PrintResult outputs the ranked predictions with their status and scores.
func (p *Printer) PrintResult(res engine.Result) {
	if len(res.Predictions) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Status:   %s\n", res.Status))
	if res.ModelID != "" {
		sb.WriteString(fmt.Sprintf("Model:    %s\n", res.ModelID))
	}
	if res.RuleMatched {
		sb.WriteString("Source:   curated rules\n")
	} else {
		sb.WriteString("Source:   classifier\n")
	}
	sb.WriteString("\n")

	count := min(len(res.Predictions), maxItemsToShow)
	for i := 0; i < count; i++ {
		pred := res.Predictions[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, pred.Role))
		sb.WriteString(fmt.Sprintf("    Confidence: %.2f  Match: %d\n", pred.Confidence, pred.MatchScore))
		if len(pred.MissingSkills) > 0 {
			sb.WriteString(fmt.Sprintf("    Skills: %s\n", strings.Join(pred.MissingSkills, ", ")))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}
	if len(res.Predictions) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more", len(res.Predictions)-maxItemsToShow))
	}

	p.printBox("ROLE PREDICTIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintResolutions outputs how each categorical feature was matched to the vocabulary.
func (p *Printer) PrintResolutions(resolutions []reconcile.Resolution) {
	if len(resolutions) == 0 {
		return
	}

	var sb strings.Builder
	for _, r := range resolutions {
		marker := "✓"
		if r.Miss() {
			marker = "⚠"
		}
		method := string(r.Method)
		if r.Method == reconcile.MethodApproximate {
			method = fmt.Sprintf("%s %.2f", method, r.Score)
		}
		fmt.Fprintf(&sb, "%s %s (%s): %q -> %q\n", marker, r.Feature, method, r.Raw, r.Label)
	}

	p.printBox("FEATURE RECONCILIATION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSummary outputs the served model description.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintSummary(s engine.Summary) {
	if !s.Trained {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "⚠ NO MODEL TRAINED")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Model:    %s\n", s.ModelID))
	if s.TrainedAt != nil {
		sb.WriteString(fmt.Sprintf("Trained:  %s\n", s.TrainedAt.Format("2006-01-02 15:04:05")))
	}
	sb.WriteString(fmt.Sprintf("Examples: %d\n", s.Examples))
	sb.WriteString(fmt.Sprintf("Trees:    %d\n", s.Trees))
	sb.WriteString(fmt.Sprintf("Classes:  %d\n", s.Classes))

	if len(s.Vocabulary) > 0 {
		sb.WriteString("\nVocabulary:\n")
		cols := make([]string, 0, len(s.Vocabulary))
		for col := range s.Vocabulary {
			cols = append(cols, col)
		}
		sort.Strings(cols)
		for _, col := range cols {
			sb.WriteString(fmt.Sprintf("  • %-16s %d\n", col, s.Vocabulary[col]))
		}
	}

	p.printBox("MODEL SUMMARY", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintNameValues outputs a ranked count list such as the role distribution.
func (p *Printer) PrintNameValues(title string, items []types.NameValue) {
	if len(items) == 0 {
		p.printBox(title, "(no data)")
		return
	}

	var sb strings.Builder
	for i, item := range items {
		sb.WriteString(fmt.Sprintf("%2d. %-40s %d\n", i+1, item.Name, item.Value))
	}
	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}

// PrintDegreeTrends outputs the top roles per degree.
func (p *Printer) PrintDegreeTrends(trends []types.DegreeTrend) {
	if len(trends) == 0 {
		p.printBox("DEGREE TRENDS", "(no data)")
		return
	}

	var sb strings.Builder
	for i, trend := range trends {
		sb.WriteString(trend.Degree + "\n")
		for _, rc := range trend.TopRoles {
			sb.WriteString(fmt.Sprintf("  • %s (%d)\n", rc.Role, rc.Count))
		}
		if i < len(trends)-1 {
			sb.WriteString("\n")
		}
	}
	p.printBox("DEGREE TRENDS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCareerPaths outputs the curated progressions for a domain.
func (p *Printer) PrintCareerPaths(paths types.CareerPaths) {
	var sb strings.Builder
	for i, path := range paths.Paths {
		sb.WriteString(fmt.Sprintf("%s [%s]\n", path.Title, path.Growth))
		sb.WriteString(fmt.Sprintf("  %s\n", path.Roles))
		if i < len(paths.Paths)-1 {
			sb.WriteString("\n")
		}
	}
	if paths.Insight != "" {
		sb.WriteString("\n" + paths.Insight + "\n")
	}
	p.printBox("CAREER PATHS", strings.TrimSuffix(sb.String(), "\n"))
}
