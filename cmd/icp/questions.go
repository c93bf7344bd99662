package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hyperengineering/icp/internal/onboarding"
	"github.com/hyperengineering/icp/internal/types"
)

var questionsJSON bool

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Print the onboarding questionnaire",
	Args:  cobra.NoArgs,
	RunE:  runQuestions,
}

func init() {
	questionsCmd.Flags().BoolVar(&questionsJSON, "json", false, "Output in JSON format")
}

func runQuestions(cmd *cobra.Command, args []string) error {
	resp := types.QuestionsResponse{
		TotalSteps:      onboarding.TotalSteps,
		Steps:           onboarding.Questionnaire(),
		WearableDevices: onboarding.WearableDevices(),
	}
	out := cmd.OutOrStdout()
	if questionsJSON {
		return printJSON(out, resp)
	}

	for _, s := range resp.Steps {
		fmt.Fprintf(out, "Step %d/%d  %s\n", s.Number, resp.TotalSteps, s.Question)
		if s.HelperText != "" {
			fmt.Fprintf(out, "  %s\n", s.HelperText)
		}
		for _, o := range s.Options {
			fmt.Fprintf(out, "  - %s\n", o)
		}
		if s.Classifier != "" {
			fmt.Fprintf(out, "  -> %s\n", s.Classifier)
		}
		fmt.Fprintln(out)
	}
	fmt.Fprintf(out, "Wearables: %s\n", strings.Join(resp.WearableDevices, ", "))
	return nil
}
