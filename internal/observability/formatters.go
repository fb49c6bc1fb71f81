// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-extractor/internal/types"
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

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n-3]) + "..."
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

func moreLine(sb *strings.Builder, total int, noun string) {
	if total > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more %s", total-maxItemsToShow, noun))
	}
}

func dateSpan(start, end string) string {
	switch {
	case start == "" && end == "":
		return ""
	case start == "":
		return end
	case end == "":
		return start
	}
	return start + " – " + end
}

// PrintCandidate outputs the resume owner identity.
func (p *Printer) PrintCandidate(info types.CandidateInfo) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:     %s\n", info.Name))
	sb.WriteString(fmt.Sprintf("Email:    %s\n", info.Email))
	sb.WriteString(fmt.Sprintf("Phone:    %s\n", info.Phone))
	sb.WriteString(fmt.Sprintf("Location: %s", info.Location))
	p.printBox("CANDIDATE", sb.String())
}

// PrintSegments outputs the routing decision of every segment.
func (p *Printer) PrintSegments(results []*types.SegmentResult) {
	if len(results) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total segments: %d\n\n", len(results)))
	for i, r := range results {
		var status string
		switch {
		case r.Skipped:
			status = "skipped (blank)"
		case !r.Classified:
			status = "unclassified"
		default:
			status = fmt.Sprintf("%s (%.2f)", r.Label, r.LabelScore)
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", r.Position, status))
		if len(r.Errors) > 0 {
			sb.WriteString(fmt.Sprintf("    failed: %s\n", strings.Join(r.Errors, ", ")))
		}
		if i == maxItemsToShow*2-1 && len(results) > maxItemsToShow*2 {
			sb.WriteString(fmt.Sprintf("\n... and %d more segments", len(results)-maxItemsToShow*2))
			break
		}
	}
	p.printBox("SEGMENTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintExperience outputs the extracted job entries.
func (p *Printer) PrintExperience(entries []types.ExperienceRecord) {
	if len(entries) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(entries), maxItemsToShow)
	for i := 0; i < count; i++ {
		e := entries[i]
		sb.WriteString(fmt.Sprintf("• %s\n", e.JobTitle))
		if e.Company != "" {
			sb.WriteString(fmt.Sprintf("  %s\n", e.Company))
		}
		if span := dateSpan(e.StartDate, e.EndDate); span != "" {
			sb.WriteString(fmt.Sprintf("  %s\n", span))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}
	moreLine(&sb, len(entries), "entries")
	p.printBox("EXPERIENCE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintEducation outputs the extracted education entries.
func (p *Printer) PrintEducation(entries []types.EducationRecord) {
	if len(entries) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(entries), maxItemsToShow)
	for i := 0; i < count; i++ {
		e := entries[i]
		degree := e.Degree
		if degree == "" {
			degree = "(no degree)"
		}
		sb.WriteString(fmt.Sprintf("• %s\n", degree))
		if e.Institution != "" {
			sb.WriteString(fmt.Sprintf("  %s\n", e.Institution))
		}
		if span := dateSpan(e.StartDate, e.EndDate); span != "" {
			sb.WriteString(fmt.Sprintf("  %s\n", span))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}
	moreLine(&sb, len(entries), "entries")
	p.printBox("EDUCATION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSkills outputs the pooled skills and languages.
func (p *Printer) PrintSkills(skills, languages []string) {
	if len(skills) == 0 && len(languages) == 0 {
		return
	}

	var sb strings.Builder
	if len(skills) > 0 {
		sb.WriteString(fmt.Sprintf("Skills (%d):\n", len(skills)))
		for _, line := range wrap(skills, boxWidth-6) {
			sb.WriteString(fmt.Sprintf("  %s\n", line))
		}
	}
	if len(languages) > 0 {
		sb.WriteString(fmt.Sprintf("Languages: %s\n", strings.Join(languages, ", ")))
	}
	p.printBox("SKILLS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCertifications outputs the extracted certifications.
func (p *Printer) PrintCertifications(certs []types.CertificationRecord) {
	if len(certs) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(certs), maxItemsToShow)
	for i := 0; i < count; i++ {
		c := certs[i]
		sb.WriteString(fmt.Sprintf("• %s", c.Title))
		if c.Date != "" {
			sb.WriteString(fmt.Sprintf(" (%s)", c.Date))
		}
		sb.WriteString("\n")
	}
	moreLine(&sb, len(certs), "certifications")
	p.printBox("CERTIFICATIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintActivities outputs the extracted activities, projects and awards.
func (p *Printer) PrintActivities(activities []types.ActivityRecord) {
	if len(activities) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(activities), maxItemsToShow)
	for i := 0; i < count; i++ {
		a := activities[i]
		sb.WriteString(fmt.Sprintf("• %s\n", a.Title))
		if a.Organization != "" {
			sb.WriteString(fmt.Sprintf("  %s\n", a.Organization))
		}
	}
	moreLine(&sb, len(activities), "activities")
	p.printBox("ACTIVITIES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRecord outputs every section of a record.
func (p *Printer) PrintRecord(rec *types.ResumeRecord) {
	if rec == nil {
		return
	}
	p.PrintCandidate(rec.Candidate)
	p.PrintEducation(rec.Education)
	p.PrintExperience(rec.Experience)
	p.PrintSkills(rec.Skills, rec.Languages)
	p.PrintCertifications(rec.Certifications)
	p.PrintActivities(rec.Activities)
	if len(rec.UnclassifiedText) > 0 {
		fmt.Fprintf(p.out, "%d segment(s) kept as unclassified text\n", len(rec.UnclassifiedText)) //nolint:errcheck
	}
}

// PrintFailures outputs the extractors that degraded to empty results.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintFailures(results []*types.SegmentResult) {
	var sb strings.Builder
	failed := 0
	for _, r := range results {
		if len(r.Errors) == 0 {
			continue
		}
		failed++
		sb.WriteString(fmt.Sprintf("⚠ segment %s (%s)\n", r.SegmentID, r.Label))
		sb.WriteString(fmt.Sprintf("  %s\n", strings.Join(r.Errors, ", ")))
	}

	if failed == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO EXTRACTOR FAILURES")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}
	p.printBox(fmt.Sprintf("EXTRACTOR FAILURES (%d segments)", failed), strings.TrimSuffix(sb.String(), "\n"))
}

// wrap joins items with commas into lines of at most width runes.
func wrap(items []string, width int) []string {
	var lines []string
	var cur string
	for _, it := range items {
		next := it
		if cur != "" {
			next = cur + ", " + it
		}
		if cur != "" && utf8.RuneCountInString(next) > width {
			lines = append(lines, cur+",")
			cur = it
			continue
		}
		cur = next
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return lines
}
