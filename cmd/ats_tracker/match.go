package main

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/ats-tracker/internal/db"
	"github.com/jonathan/ats-tracker/internal/observability"
	"github.com/jonathan/ats-tracker/internal/scoring"
	"github.com/jonathan/ats-tracker/internal/types"
)

const matchWorkers = 4

var (
	matchResumeID string
	matchJobIDs   []string
	matchScoring  string
	matchNorms    string
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score a stored resume against job descriptions",
	Long:  "Score one resume against selected jobs (or all of them), record the runs, and print a ranked table with knockout verdicts.",
	RunE:  runMatch,
}

func init() {
	matchCmd.Flags().StringVarP(&matchResumeID, "resume", "r", "", "Resume UUID (required)")
	matchCmd.Flags().StringSliceVarP(&matchJobIDs, "job", "j", nil, "Job UUIDs (default: all stored jobs)")
	matchCmd.Flags().StringVar(&matchScoring, "scoring-config", "", "Path to scoring config JSON")
	matchCmd.Flags().StringVar(&matchNorms, "normalization", "", "Path to normalization map JSON")
	matchCmd.MarkFlagRequired("resume") //nolint:errcheck
	rootCmd.AddCommand(matchCmd)
}

type rankedMatch struct {
	job    *db.JobRecord
	result *types.MatchResult
}

func runMatch(cmd *cobra.Command, _ []string) error {
	resumeID, err := uuid.Parse(matchResumeID)
	if err != nil {
		return fmt.Errorf("invalid resume id: %w", err)
	}

	cfg, err := loadScoring(matchScoring)
	if err != nil {
		return err
	}
	synonyms, err := loadNormalization(matchNorms)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	database, err := openDB(ctx)
	if err != nil {
		return err
	}
	defer database.Close()

	resume, err := database.GetResume(ctx, resumeID)
	if err != nil {
		return err
	}

	jobs, err := resolveJobs(ctx, database, matchJobIDs)
	if err != nil {
		return err
	}
	if len(jobs) == 0 {
		return fmt.Errorf("no jobs to match; ingest one first")
	}

	if _, err := database.SnapshotConfig(ctx, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to snapshot scoring config: %v\n", err)
	}

	ranked := make([]rankedMatch, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(matchWorkers)
	for i, job := range jobs {
		g.Go(func() error {
			result := scoring.Score(&resume.Extracted, &job.Extracted,
				resume.RawText, job.RawText, cfg, synonyms)
			if _, err := database.AddRun(gctx, resume.ID, job.ID, *result); err != nil {
				return err
			}
			ranked[i] = rankedMatch{job: job, result: result}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].result.Scores.Final > ranked[j].result.Scores.Final
	})

	fmt.Printf("Resume: %s (%s)\n\n", resume.Name, resume.ID)
	for i, m := range ranked {
		verdict := "pass"
		if !m.result.Knockout.Passed {
			verdict = "KNOCKOUT"
		}
		fmt.Printf("#%d  %-30s  final=%.3f  must=%.2f  nice=%.2f  [%s]\n",
			i+1, m.job.Title,
			m.result.Scores.Final,
			m.result.Scores.MustHave,
			m.result.Scores.NiceToHave,
			verdict)
	}

	if verbose {
		printer := observability.NewPrinter(os.Stdout)
		for _, m := range ranked {
			fmt.Println()
			printer.PrintMatchResult(m.job.Title, m.result)
			printer.PrintKnockout(m.result.Knockout)
		}
	}
	return nil
}

// resolveJobs loads the requested jobs with raw text, or every stored
// job when ids is empty.
func resolveJobs(ctx context.Context, database *db.DB, ids []string) ([]*db.JobRecord, error) {
	if len(ids) == 0 {
		all, err := database.ListJobs(ctx)
		if err != nil {
			return nil, err
		}
		ids = make([]string, len(all))
		for i, rec := range all {
			ids[i] = rec.ID.String()
		}
	}

	jobs := make([]*db.JobRecord, 0, len(ids))
	for _, raw := range ids {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid job id %q: %w", raw, err)
		}
		rec, err := database.GetJob(ctx, id)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, rec)
	}
	return jobs, nil
}
