// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/job-matcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted CLI output
type Printer struct {
	out   io.Writer
	limit int
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out, limit: maxItemsToShow}
}

// WithLimit sets how many list items are shown before eliding the rest.
func (p *Printer) WithLimit(n int) *Printer {
	if n > 0 {
		p.limit = n
	}
	return p
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
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, clip(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// clip shortens s to at most n runes, marking the cut with "...".
func clip(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// PrintParsedQuery outputs the structured intent extracted from a query.
func (p *Printer) PrintParsedQuery(q *types.ParsedQuery) {
	if q == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Query:       %s\n", q.OriginalQuery))
	sb.WriteString(fmt.Sprintf("Confidence:  %d%%\n", q.Confidence))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Job type:    %s\n", orDash(types.StringValue(q.JobType))))
	sb.WriteString(fmt.Sprintf("Experience:  %s\n", orDash(types.StringValue(q.Experience))))
	sb.WriteString(fmt.Sprintf("Industry:    %s\n", orDash(types.StringValue(q.Industry))))
	sb.WriteString(fmt.Sprintf("Location:    %s\n", orDash(types.StringValue(q.Location))))
	sb.WriteString(fmt.Sprintf("Salary:      %s\n", formatSalaryRange(q.Salary)))
	sb.WriteString(fmt.Sprintf("Skills:      %s\n", orDash(strings.Join(q.Skills, ", "))))
	sb.WriteString(fmt.Sprintf("Terms:       %s", orDash(strings.Join(q.SearchTerms, " "))))

	p.printBox("PARSED QUERY", sb.String())
}

func formatSalaryRange(r *types.SalaryRange) string {
	switch {
	case r == nil:
		return "-"
	case r.Max == nil:
		return fmt.Sprintf("$%d+", r.Min)
	default:
		return fmt.Sprintf("$%d - $%d", r.Min, *r.Max)
	}
}

// PrintRecommendations outputs ranked recommendations with scores and reasons.
func (p *Printer) PrintRecommendations(recs []types.ScoredRecommendation) {
	if len(recs) == 0 {
		p.printBox("RECOMMENDATIONS", "No recommendations found")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total recommendations: %d\n\n", len(recs)))

	count := min(len(recs), p.limit)
	for i := 0; i < count; i++ {
		rec := recs[i]
		sb.WriteString(fmt.Sprintf("#%d  %s @ %s\n", rec.RecommendationRank, rec.Title, rec.Company))
		sb.WriteString(fmt.Sprintf("    Score: %d", rec.RecommendationScore))
		if rec.Source != "" {
			sb.WriteString(fmt.Sprintf(" (%s)", rec.Source))
		}
		sb.WriteString("\n")
		for _, reason := range rec.MatchingReasons {
			sb.WriteString(fmt.Sprintf("    • %s\n", reason))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(recs) > count {
		sb.WriteString(fmt.Sprintf("\n... and %d more recommendations", len(recs)-count))
	}

	p.printBox("RECOMMENDATIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSearchResults outputs one page of search results.
func (p *Printer) PrintSearchResults(resp *types.SearchResponse) {
	if resp == nil {
		return
	}

	var sb strings.Builder
	mode := "keyword"
	if resp.NaturalLang {
		mode = "natural language"
	}
	sb.WriteString(fmt.Sprintf("Matches: %d (%s search)\n", resp.Total, mode))
	sb.WriteString(fmt.Sprintf("Page %d of %d\n", resp.Pagination.CurrentPage, resp.Pagination.TotalPages))

	count := min(len(resp.Data), p.limit)
	for i := 0; i < count; i++ {
		job := resp.Data[i]
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("• %s @ %s\n", job.Title, job.Company))
		sb.WriteString(fmt.Sprintf("  %s", orDash(job.Location)))
		if resp.NaturalLang {
			sb.WriteString(fmt.Sprintf(" | relevance %d", job.RelevanceScore))
		}
		sb.WriteString("\n")
		if len(job.MatchingSkills) > 0 {
			sb.WriteString(fmt.Sprintf("  [%s]\n", strings.Join(job.MatchingSkills, ", ")))
		}
	}

	if len(resp.Data) > count {
		sb.WriteString(fmt.Sprintf("\n... and %d more on this page", len(resp.Data)-count))
	}

	p.printBox("SEARCH RESULTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintTrending outputs trending jobs with their trend scores.
func (p *Printer) PrintTrending(resp *types.TrendingResponse) {
	if resp == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Algorithm: %s, timeframe: %s\n", resp.Algorithm, resp.Timeframe))

	count := min(len(resp.Data), p.limit)
	for i := 0; i < count; i++ {
		job := resp.Data[i]
		sb.WriteString(fmt.Sprintf("\n#%d  %s @ %s\n", i+1, job.Title, job.Company))
		sb.WriteString(fmt.Sprintf("    Trend: %.2f (%s)", job.TrendScore, job.Source))
	}

	if len(resp.Data) > count {
		sb.WriteString(fmt.Sprintf("\n\n... and %d more", len(resp.Data)-count))
	}

	p.printBox("TRENDING JOBS", sb.String())
}
