package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-tracker/internal/search"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Run a boolean query over stored resumes",
	Long: `Run a recruiter-style boolean query over the raw text of every stored resume.

Queries support AND, OR, NOT (case-insensitive), parentheses, and quoted
phrases, e.g.:

  ats_tracker search '(scrum OR "project management") AND jira NOT internship'`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]

	ctx := cmd.Context()
	database, err := openDB(ctx)
	if err != nil {
		return err
	}
	defer database.Close()

	resumes, err := database.ListResumeTexts(ctx)
	if err != nil {
		return err
	}

	docs := make([]search.Document, len(resumes))
	for i, rec := range resumes {
		docs[i] = search.Document{ID: rec.ID, Name: rec.Name, Text: rec.RawText}
	}

	hits := search.Run(query, docs)
	if len(hits) == 0 {
		fmt.Printf("No matches in %d resumes.\n", len(docs))
		return nil
	}

	fmt.Printf("%d of %d resumes match:\n", len(hits), len(docs))
	for _, hit := range hits {
		fmt.Printf("  %s  %s\n", hit.ID, hit.Name)
	}
	return nil
}
