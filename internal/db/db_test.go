package db

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ats-tracker/internal/config"
	"github.com/jonathan/ats-tracker/internal/types"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration test")
	}
	database, err := Connect(context.Background(), url)
	require.NoError(t, err)
	t.Cleanup(database.Close)
	return database
}

func TestResumeLifecycle(t *testing.T) {
	database := testDB(t)
	ctx := context.Background()

	model := types.ResumeModel{
		Sections: map[string]string{"skills": "Go, PostgreSQL"},
		Terms:    []string{"Go", "PostgreSQL"},
	}
	rec, err := database.AddResume(ctx, "test-resume", "Skills\nGo, PostgreSQL", model)
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, rec.ID)
	defer func() {
		require.NoError(t, database.DeleteResume(ctx, rec.ID))
	}()

	got, err := database.GetResume(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "test-resume", got.Name)
	assert.Equal(t, model.Terms, got.Extracted.Terms)

	list, err := database.ListResumes(ctx)
	require.NoError(t, err)
	found := false
	for _, r := range list {
		if r.ID == rec.ID {
			found = true
			assert.Empty(t, r.RawText)
		}
	}
	assert.True(t, found)
}

func TestDeleteResume_NotFound(t *testing.T) {
	database := testDB(t)

	err := database.DeleteResume(context.Background(), uuid.New())
	assert.Error(t, err)
}

func TestRunLifecycle(t *testing.T) {
	database := testDB(t)
	ctx := context.Background()

	resume, err := database.AddResume(ctx, "run-resume", "text", types.ResumeModel{})
	require.NoError(t, err)
	defer database.DeleteResume(ctx, resume.ID)

	job, err := database.AddJob(ctx, "Engineer", "text", "", types.JobModel{Title: "Engineer"})
	require.NoError(t, err)
	defer database.DeleteJob(ctx, job.ID)

	_, err = database.LatestRun(ctx, resume.ID, job.ID)
	assert.ErrorIs(t, err, ErrNoRuns)

	first := types.MatchResult{Scores: types.Scores{Final: 0.4}}
	_, err = database.AddRun(ctx, resume.ID, job.ID, first)
	require.NoError(t, err)

	second := types.MatchResult{Scores: types.Scores{Final: 0.7}}
	_, err = database.AddRun(ctx, resume.ID, job.ID, second)
	require.NoError(t, err)

	latest, err := database.LatestRun(ctx, resume.ID, job.ID)
	require.NoError(t, err)
	assert.InDelta(t, 0.7, latest.Result.Scores.Final, 1e-9)

	runs, err := database.ListRuns(ctx, resume.ID)
	require.NoError(t, err)
	assert.Len(t, runs, 2)
}

func TestSnapshotConfig(t *testing.T) {
	database := testDB(t)

	id, err := database.SnapshotConfig(context.Background(), config.DefaultScoring())
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)
}
