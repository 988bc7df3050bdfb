package service

import (
	"context"
	"educanvas_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUserDashboard(t *testing.T) {
	env := newTestEnv(t)

	d, err := env.dashboard.GetUserDashboard(context.Background(), "u1")
	require.NoError(t, err)

	assert.Equal(t, "Alex Johnson", d.User.Name)
	require.Len(t, d.Courses, 3)

	got := map[string]int{}
	for _, c := range d.Courses {
		got[c.ID] = c.Percentage
		assert.NotNil(t, c.LastAccessed, c.ID)
	}
	assert.Equal(t, map[string]int{"c1": 20, "c3": 100, "c4": 100}, got)
	assert.Equal(t, "c1", d.Courses[0].ID)

	assert.Equal(t, 3, d.Stats.Enrolled)
	assert.Equal(t, 1, d.Stats.InProgress)
	assert.Equal(t, 2, d.Stats.Finished)
	assert.Equal(t, 0, d.Stats.CompletedCourses)
	assert.Equal(t, 60, d.Stats.RemainingMinutes)
}

func TestGetUserDashboardReflectsProgressAndEnrollment(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.progress.CompleteLesson(ctx, "u1", "c1", "l2")
	require.NoError(t, err)
	_, err = env.users.Enroll("u1", "c2")
	require.NoError(t, err)

	d, err := env.dashboard.GetUserDashboard(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, d.Courses, 4)
	assert.Equal(t, []string{"c1", "c2", "c3", "c4"}, []string{d.Courses[0].ID, d.Courses[1].ID, d.Courses[2].ID, d.Courses[3].ID})
	assert.Equal(t, 40, d.Courses[0].Percentage)
	assert.Equal(t, 0, d.Courses[1].Percentage)
	assert.Nil(t, d.Courses[1].LastAccessed)
	assert.Equal(t, 2, d.Stats.InProgress)
	assert.Contains(t, d.User.EnrolledCourses, "c2")
}

func TestGetUserDashboardUnknownUser(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.dashboard.GetUserDashboard(context.Background(), "ghost")
	assert.ErrorIs(t, err, util.ErrUserNotFound)
}
