package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"alfredoptarigan/hr-toolkit/internal/services"
)

var feedbackCmd = &cobra.Command{
	Use:   "feedback",
	Short: "Analyze employee feedback for sentiment and attrition risk",
	Long:  "Analyze employee feedback for sentiment and attrition risk. Without --text the feedback is read interactively.",
	RunE:  runFeedback,
}

var feedbackText string

func init() {
	feedbackCmd.Flags().StringVarP(&feedbackText, "text", "t", "", "Feedback text to analyze")

	rootCmd.AddCommand(feedbackCmd)
}

var feedbackPrompt = promptui.Prompt{
	Label: "Employee feedback",
}

func runFeedback(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	text := feedbackText
	if !cmd.Flags().Changed("text") {
		var err error
		text, err = feedbackPrompt.Run()
		if err != nil {
			if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
				return nil
			}
			return fmt.Errorf("reading feedback: %w", err)
		}
	}

	rt, err := setup(ctx)
	if err != nil {
		return err
	}
	defer rt.logger.Sync() //nolint:errcheck

	outcome, err := services.NewFeedbackAnalyzer(rt.model, rt.logger).Analyze(ctx, text)
	if err != nil {
		return err
	}

	return printJSON(cmd.OutOrStdout(), outcome)
}
