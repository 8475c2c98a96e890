package services

import (
	"testing"

	"jobconnect/internal/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobseekerService_ToggleSaveJob(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	jobService, _, _, seekerService := newTestServices()
	employer := createEmployer(t, db, "emp@test.io")
	seeker := createJobseeker(t, db, "seeker@test.io")
	job := createJob(t, db, jobService, employer.ID, "Engineer")

	saved, err := seekerService.ToggleSaveJob(db, seeker.ID, job.ID)
	require.NoError(t, err)
	assert.True(t, saved)

	list, err := seekerService.GetSavedJobs(db, seeker.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Engineer", list[0].Job.Title)

	// Second toggle removes the bookmark.
	saved, err = seekerService.ToggleSaveJob(db, seeker.ID, job.ID)
	require.NoError(t, err)
	assert.False(t, saved)

	list, err = seekerService.GetSavedJobs(db, seeker.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestJobseekerService_ToggleSaveJob_MissingJob(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	_, _, _, seekerService := newTestServices()
	seeker := createJobseeker(t, db, "seeker@test.io")

	_, err := seekerService.ToggleSaveJob(db, seeker.ID, "missing-job")
	assert.ErrorIs(t, err, apperrors.ErrJobNotFound)
}

func TestJobseekerService_GetSavedJobs_SkipsDanglingJobs(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	jobService, _, _, seekerService := newTestServices()
	employer := createEmployer(t, db, "emp@test.io")
	seeker := createJobseeker(t, db, "seeker@test.io")
	kept := createJob(t, db, jobService, employer.ID, "Kept Job")
	doomed := createJob(t, db, jobService, employer.ID, "Doomed Job")

	_, err := seekerService.ToggleSaveJob(db, seeker.ID, kept.ID)
	require.NoError(t, err)
	_, err = seekerService.ToggleSaveJob(db, seeker.ID, doomed.ID)
	require.NoError(t, err)

	require.NoError(t, jobService.DeleteJob(db, employer.ID, doomed.ID))

	list, err := seekerService.GetSavedJobs(db, seeker.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Kept Job", list[0].Job.Title)
}

func TestJobseekerService_SavedJobsAreScopedPerUser(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	jobService, _, _, seekerService := newTestServices()
	employer := createEmployer(t, db, "emp@test.io")
	a := createJobseeker(t, db, "a@test.io")
	b := createJobseeker(t, db, "b@test.io")
	job := createJob(t, db, jobService, employer.ID, "Engineer")

	_, err := seekerService.ToggleSaveJob(db, a.ID, job.ID)
	require.NoError(t, err)

	list, err := seekerService.GetSavedJobs(db, b.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}
