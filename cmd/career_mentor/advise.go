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
	adviseInterests string
	adviseSkills    string
	adviseGoals     string
	adviseProvider  string
	adviseModel     string
	adviseAPIKey    string
	adviseVerbose   bool
)

var adviseCmd = &cobra.Command{
	Use:   "advise",
	Short: "Suggest a career path from your interests, skills, and goals",
	Long: `Suggest a suitable career based on free-text interests, skills, and goals.

Makes a single LLM call and prints the suggested career with reasoning.

Examples:
  career_mentor advise --interests "machine learning" --skills "Python, statistics" --goals "work at a startup"
  career_mentor advise -i "design" -s "Figma, CSS" -g "lead a product team" --provider openai`,
	RunE: runAdvise,
}

func init() {
	adviseCmd.Flags().StringVarP(&adviseInterests, "interests", "i", "", "Your interests (required)")
	adviseCmd.Flags().StringVarP(&adviseSkills, "skills", "s", "", "Your skills (required)")
	adviseCmd.Flags().StringVarP(&adviseGoals, "goals", "g", "", "Your goals (required)")
	adviseCmd.Flags().StringVar(&adviseProvider, "provider", "gemini", "LLM provider (gemini or openai)")
	adviseCmd.Flags().StringVar(&adviseModel, "model", "", "Override the default model for the provider")
	adviseCmd.Flags().StringVar(&adviseAPIKey, "api-key", "", "API key (overrides env var)")
	adviseCmd.Flags().BoolVar(&adviseVerbose, "verbose", false, "Show detailed request information")
	rootCmd.AddCommand(adviseCmd)
}

func runAdvise(_ *cobra.Command, _ []string) error {
	req := types.GuidanceRequest{
		Interests: adviseInterests,
		Skills:    adviseSkills,
		Goals:     adviseGoals,
	}
	if !req.Complete() {
		return fmt.Errorf("all of --interests, --skills, and --goals are required")
	}

	apiKey := resolveAPIKey(adviseAPIKey, adviseProvider)
	if apiKey == "" {
		return fmt.Errorf("API key is required (set GEMINI_API_KEY or OPENAI_API_KEY, or use --api-key)")
	}

	cfg := buildLLMConfig(adviseProvider, adviseModel)
	if adviseVerbose {
		input := fmt.Sprintf("Interests: %s\nSkills:    %s\nGoals:     %s", req.Interests, req.Skills, req.Goals)
		observability.NewPrinter(os.Stderr).PrintRequest(adviseProvider, cfg.GetModel(llm.TierStandard), input)
	}

	gen := mentor.New(cfg)
	suggestion, err := gen.CareerGuidance(context.Background(), req, apiKey)
	if err != nil {
		return fmt.Errorf("failed to generate career guidance: %w", err)
	}

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#F780FF")).
		Bold(true)
	bodyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#E9E9F4"))

	fmt.Println()
	fmt.Println(headerStyle.Render("Suggested career: " + suggestion.Career))
	fmt.Println()
	fmt.Println(bodyStyle.Render(suggestion.Reasons))

	return nil
}
