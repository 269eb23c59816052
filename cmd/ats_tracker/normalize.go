package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/ats-tracker/internal/normalize"
)

var normalizeFile string

var normalizeCmd = &cobra.Command{
	Use:   "normalize",
	Short: "Manage the term normalization map",
	Long:  "List, add, or import synonym entries that canonicalize raw term spellings before scoring.",
}

var normalizeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List synonym entries",
	RunE:  runNormalizeList,
}

var normalizeAddCmd = &cobra.Command{
	Use:   "add <raw=canonical> ...",
	Short: "Add synonym entries",
	Long:  `Add synonym entries as raw=canonical pairs, e.g. "k8s=Kubernetes" "golang=Go". Existing entries are overwritten.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runNormalizeAdd,
}

var normalizeImportCmd = &cobra.Command{
	Use:   "import <job-id>",
	Short: "Import unmapped terms from a stored job",
	Long:  "Register every job term that has no synonym entry yet as its own canonical form, so the map can be hand-edited afterwards.",
	Args:  cobra.ExactArgs(1),
	RunE:  runNormalizeImport,
}

func init() {
	normalizeCmd.PersistentFlags().StringVarP(&normalizeFile, "file", "f", "normalization.json", "Path to the normalization map")
	normalizeCmd.AddCommand(normalizeListCmd, normalizeAddCmd, normalizeImportCmd)
	rootCmd.AddCommand(normalizeCmd)
}

func runNormalizeList(_ *cobra.Command, _ []string) error {
	m, err := normalize.Load(normalizeFile)
	if err != nil {
		return err
	}
	if len(m.Synonyms) == 0 {
		fmt.Println("No synonym entries.")
		return nil
	}

	keys := make([]string, 0, len(m.Synonyms))
	for key := range m.Synonyms {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Printf("  %-24s -> %s\n", key, m.Synonyms[key])
	}
	return nil
}

func runNormalizeAdd(_ *cobra.Command, args []string) error {
	pairs, err := parseSynonymPairs(args)
	if err != nil {
		return err
	}

	m, err := normalize.Load(normalizeFile)
	if err != nil {
		return err
	}
	for raw, canonical := range pairs {
		m.Synonyms[raw] = canonical
	}
	if err := m.Save(normalizeFile); err != nil {
		return err
	}

	fmt.Printf("Added %d entries to %s\n", len(pairs), normalizeFile)
	return nil
}

func runNormalizeImport(cmd *cobra.Command, args []string) error {
	jobID, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid job id: %w", err)
	}

	ctx := cmd.Context()
	database, err := openDB(ctx)
	if err != nil {
		return err
	}
	defer database.Close()

	job, err := database.GetJob(ctx, jobID)
	if err != nil {
		return err
	}

	m, err := normalize.Load(normalizeFile)
	if err != nil {
		return err
	}

	unmapped := make([]string, 0)
	for _, term := range job.Extracted.Terms {
		if !m.Has(term) {
			unmapped = append(unmapped, term)
		}
	}
	m.AddSynonyms(unmapped)

	if err := m.Save(normalizeFile); err != nil {
		return err
	}

	fmt.Printf("Imported %d unmapped terms from job %q into %s\n",
		len(unmapped), job.Title, normalizeFile)
	return nil
}

// parseSynonymPairs parses raw=canonical arguments into lowercase-keyed pairs.
func parseSynonymPairs(args []string) (map[string]string, error) {
	pairs := make(map[string]string, len(args))
	for _, arg := range args {
		raw, canonical, found := strings.Cut(arg, "=")
		raw = strings.ToLower(strings.TrimSpace(raw))
		canonical = strings.TrimSpace(canonical)
		if !found || raw == "" || canonical == "" {
			return nil, fmt.Errorf("invalid synonym pair %q, expected raw=canonical", arg)
		}
		pairs[raw] = canonical
	}
	return pairs, nil
}
