package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-tracker/internal/config"
	"github.com/jonathan/ats-tracker/internal/extract"
	"github.com/jonathan/ats-tracker/internal/observability"
	"github.com/jonathan/ats-tracker/internal/scoring"
	"github.com/jonathan/ats-tracker/internal/types"
)

const sampleResume = `Summary
Project manager with CRM implementation experience.
Experience
Project Manager - 2022 - Present
Led customer relationship management rollout using Salesforce and Jira.
Skills
Project management, CRM, Jira
`

const sampleJob = `Project Manager
Required: Project management, CRM, Jira
Preferred: Change management
`

var selfcheckJSON bool

var selfcheckCmd = &cobra.Command{
	Use:   "selfcheck",
	Short: "Score a built-in sample pair end to end",
	Long:  "Extract and score a built-in sample resume against a sample job description, exercising the full pipeline without a database. Useful as a smoke test.",
	RunE:  runSelfcheck,
}

func init() {
	selfcheckCmd.Flags().BoolVar(&selfcheckJSON, "json", false, "Print the raw match result as JSON")
	rootCmd.AddCommand(selfcheckCmd)
}

// selfCheck runs extraction and scoring on the built-in sample pair.
func selfCheck() *types.MatchResult {
	resume := extract.BuildResumeModel(sampleResume)
	job := extract.BuildJobModel(sampleJob)
	return scoring.Score(resume, job, sampleResume, sampleJob, config.DefaultScoring(), nil)
}

func runSelfcheck(_ *cobra.Command, _ []string) error {
	result := selfCheck()

	if selfcheckJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintMatchResult("sample resume", result)
	printer.PrintKnockout(result.Knockout)

	if result.Scores.Final <= 0 {
		return fmt.Errorf("selfcheck produced a zero final score")
	}
	fmt.Println("Selfcheck OK")
	return nil
}
