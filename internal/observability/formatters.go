// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/career-mentor/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
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

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintRequest outputs the inputs that will be sent to the provider.
func (p *Printer) PrintRequest(provider, model, input string) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Provider: %s\n", provider))
	sb.WriteString(fmt.Sprintf("Model:    %s\n", model))
	sb.WriteString("\n")
	sb.WriteString(input)
	p.printBox("LLM Request", sb.String())
}

// PrintCareerSuggestion outputs a human-readable summary of a suggestion.
func (p *Printer) PrintCareerSuggestion(suggestion *types.CareerSuggestion) {
	if suggestion == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Career:  %s\n", suggestion.Career))
	sb.WriteString("\n")
	sb.WriteString("Reasons:\n")
	for _, line := range strings.Split(suggestion.Reasons, "\n") {
		sb.WriteString(fmt.Sprintf("  %s\n", line))
	}

	p.printBox("Career Suggestion", sb.String())
}

// PrintInterviewQuestions outputs a numbered question list.
func (p *Printer) PrintInterviewQuestions(set *types.InterviewQuestionSet) {
	if set == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Role: %s\n", set.Role))
	sb.WriteString("\n")
	for i, q := range set.Questions {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, q))
	}

	p.printBox("Interview Questions", sb.String())
}
