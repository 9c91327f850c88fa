package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/jonathan/career-mentor/internal/llm"
	"github.com/jonathan/career-mentor/internal/mentor"
	"github.com/jonathan/career-mentor/internal/observability"
	"github.com/jonathan/career-mentor/internal/types"
	"github.com/spf13/cobra"
)

var (
	interviewRole     string
	interviewProvider string
	interviewModel    string
	interviewAPIKey   string
	interviewVerbose  bool
)

var interviewCmd = &cobra.Command{
	Use:   "interview",
	Short: "Generate interview questions for a job role",
	Long: `Generate tailored interview questions for a job role.

Makes a single LLM call and prints a numbered list of questions.

Examples:
  career_mentor interview --role "Data Scientist"
  career_mentor interview -r "Backend Engineer" --provider openai`,
	RunE: runInterview,
}

func init() {
	interviewCmd.Flags().StringVarP(&interviewRole, "role", "r", "", "Job role to generate questions for (required)")
	interviewCmd.Flags().StringVar(&interviewProvider, "provider", "gemini", "LLM provider (gemini or openai)")
	interviewCmd.Flags().StringVar(&interviewModel, "model", "", "Override the default model for the provider")
	interviewCmd.Flags().StringVar(&interviewAPIKey, "api-key", "", "API key (overrides env var)")
	interviewCmd.Flags().BoolVar(&interviewVerbose, "verbose", false, "Show detailed request information")
	rootCmd.AddCommand(interviewCmd)
}

func runInterview(_ *cobra.Command, _ []string) error {
	req := types.InterviewRequest{Role: interviewRole}
	if !req.Complete() {
		return fmt.Errorf("--role is required")
	}

	apiKey := resolveAPIKey(interviewAPIKey, interviewProvider)
	if apiKey == "" {
		return fmt.Errorf("API key is required (set GEMINI_API_KEY or OPENAI_API_KEY, or use --api-key)")
	}

	cfg := buildLLMConfig(interviewProvider, interviewModel)
	if interviewVerbose {
		observability.NewPrinter(os.Stderr).PrintRequest(interviewProvider, cfg.GetModel(llm.TierStandard), "Role: "+req.Role)
	}

	gen := mentor.New(cfg)
	set, err := gen.InterviewQuestions(context.Background(), req, apiKey)
	if err != nil {
		return fmt.Errorf("failed to generate interview questions: %w", err)
	}

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#8BE9FD")).
		Bold(true)
	questionStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#E9E9F4"))

	fmt.Println()
	fmt.Println(headerStyle.Render("Interview questions for " + set.Role))
	fmt.Println()
	for i, q := range set.Questions {
		fmt.Println(questionStyle.Render(fmt.Sprintf("%d. %s", i+1, q)))
	}

	return nil
}
