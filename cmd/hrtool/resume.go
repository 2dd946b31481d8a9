package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"alfredoptarigan/hr-toolkit/internal/services"
)

var resumeCmd = &cobra.Command{
	Use:   "resume",
	Short: "Score a resume file against a job description",
	RunE:  runResume,
}

var (
	resumeFile string
	jobFile    string
	jobText    string
	jobURL     string
)

func init() {
	resumeCmd.Flags().StringVarP(&resumeFile, "file", "f", "", "Path to the resume (.pdf, .docx or .txt)")
	resumeCmd.Flags().StringVar(&jobFile, "job-file", "", "Path to a plain text job description")
	resumeCmd.Flags().StringVar(&jobText, "job", "", "Job description text (defaults to a Software Engineer posting)")
	resumeCmd.Flags().StringVar(&jobURL, "job-url", "", "URL of a job posting to fetch")
	_ = resumeCmd.MarkFlagRequired("file")
	resumeCmd.MarkFlagsMutuallyExclusive("job-file", "job", "job-url")

	rootCmd.AddCommand(resumeCmd)
}

func runResume(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	rt, err := setup(ctx)
	if err != nil {
		return err
	}
	defer rt.logger.Sync() //nolint:errcheck

	jobDescription, err := resolveJobDescription(ctx, jobText, jobFile, jobURL, services.NewJobFetcher(rt.cfg.Fetch.Timeout))
	if err != nil {
		return err
	}

	screener := services.NewResumeScreener(services.NewLexicon(), services.NewTextExtractor(), rt.model, rt.logger)

	outcome, err := screener.Analyze(ctx, services.Document{Path: resumeFile}, jobDescription)
	if err != nil {
		return err
	}

	return printJSON(cmd.OutOrStdout(), outcome)
}

type postingFetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

func resolveJobDescription(ctx context.Context, text, file, url string, fetcher postingFetcher) (string, error) {
	switch {
	case strings.TrimSpace(text) != "":
		return text, nil
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("failed to read job description file: %w", err)
		}
		return string(data), nil
	case url != "":
		return fetcher.Fetch(ctx, url)
	default:
		return services.DefaultJobDescription, nil
	}
}
