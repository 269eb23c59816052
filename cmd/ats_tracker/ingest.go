package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-tracker/internal/extract"
	"github.com/jonathan/ats-tracker/internal/ingestion"
	"github.com/jonathan/ats-tracker/internal/observability"
)

var (
	ingestResume     string
	ingestJob        string
	ingestJobURL     string
	ingestName       string
	ingestUseBrowser bool
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Ingest a resume or job description into the database",
	Long:  "Read a resume file (txt, pdf, docx) or a job description from a file or URL, extract its terms, and store it.",
	RunE:  runIngest,
}

func init() {
	ingestCmd.Flags().StringVarP(&ingestResume, "resume", "r", "", "Path to a resume file")
	ingestCmd.Flags().StringVarP(&ingestJob, "job", "j", "", "Path to a job description text file")
	ingestCmd.Flags().StringVarP(&ingestJobURL, "job-url", "u", "", "URL to fetch a job posting from")
	ingestCmd.Flags().StringVarP(&ingestName, "name", "n", "", "Display name (defaults to file name or inferred title)")
	ingestCmd.Flags().BoolVar(&ingestUseBrowser, "use-browser", false, "Use a headless browser for SPA job boards")
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, _ []string) error {
	set := 0
	for _, flag := range []string{ingestResume, ingestJob, ingestJobURL} {
		if flag != "" {
			set++
		}
	}
	if set != 1 {
		return fmt.Errorf("exactly one of --resume, --job, or --job-url must be provided")
	}

	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	ctx := cmd.Context()
	database, err := openDB(ctx)
	if err != nil {
		return err
	}
	defer database.Close()

	printer := observability.NewPrinter(os.Stdout)

	if ingestResume != "" {
		data, err := os.ReadFile(ingestResume)
		if err != nil {
			return fmt.Errorf("failed to read resume file: %w", err)
		}
		text, warning, err := ingestion.ReadUpload(filepath.Base(ingestResume), data)
		if err != nil {
			return fmt.Errorf("failed to extract resume text: %w", err)
		}
		if warning != "" {
			fmt.Fprintf(os.Stderr, "Warning: %s\n", warning)
		}

		name := ingestName
		if name == "" {
			name = filepath.Base(ingestResume)
		}
		model := extract.BuildResumeModel(text)
		rec, err := database.AddResume(ctx, name, text, *model)
		if err != nil {
			return err
		}

		fmt.Printf("Stored resume %s (%s)\n", rec.ID, name)
		if verbose {
			printer.PrintResumeModel(model)
		}
		return nil
	}

	var text, sourceURL string
	if ingestJob != "" {
		data, err := os.ReadFile(ingestJob)
		if err != nil {
			return fmt.Errorf("failed to read job file: %w", err)
		}
		text = ingestion.CleanText(string(data))
	} else {
		fetched, _, err := ingestion.IngestFromURL(ctx, ingestJobURL, ingestUseBrowser, logger)
		if err != nil {
			return fmt.Errorf("failed to fetch job posting: %w", err)
		}
		text = fetched
		sourceURL = ingestJobURL
	}

	model := extract.BuildJobModel(text)
	title := ingestName
	if title == "" {
		title = model.Title
	}
	rec, err := database.AddJob(ctx, title, text, sourceURL, *model)
	if err != nil {
		return err
	}

	fmt.Printf("Stored job %s (%s)\n", rec.ID, title)
	if verbose {
		printer.PrintJobModel(model)
	}
	return nil
}
