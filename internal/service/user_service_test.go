package service

import (
	"context"
	"educanvas_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnroll(t *testing.T) {
	env := newTestEnv(t)

	added, err := env.users.Enroll("u1", "c5")
	require.NoError(t, err)
	assert.True(t, added)
	assert.True(t, env.users.IsEnrolled("u1", "c5"))

	added, err = env.users.Enroll("u1", "c5")
	require.NoError(t, err)
	assert.False(t, added)

	added, err = env.users.Enroll("u1", "c1")
	require.NoError(t, err)
	assert.False(t, added)

	profile, err := env.users.GetProfile("u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"c1", "c3", "c4", "c5"}, profile.EnrolledCourses)
}

func TestEnrollErrors(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.users.Enroll("u1", "c404")
	assert.ErrorIs(t, err, util.ErrCourseNotFound)
	assert.False(t, env.users.IsEnrolled("u1", "c404"))

	_, err = env.users.Enroll("ghost", "c1")
	assert.ErrorIs(t, err, util.ErrUserNotFound)
}

func TestEnrolledCoursesInCatalogOrder(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.users.Enroll("u1", "c2")
	require.NoError(t, err)

	assert.Equal(t, []string{"c1", "c2", "c3", "c4"}, ids(env.users.EnrolledCourses("u1")))
	assert.Empty(t, env.users.EnrolledCourses("ghost"))
}

func TestCourseDetail(t *testing.T) {
	env := newTestEnv(t)

	d, err := env.courses.CourseDetail(context.Background(), "u1", "c1")
	require.NoError(t, err)
	assert.Equal(t, "c1", d.Course.ID)
	assert.Equal(t, 5, d.TotalLessons)
	assert.Equal(t, 75, d.LessonDuration)
	assert.Equal(t, "12h", d.DurationText)
	assert.Equal(t, "Jun 15, 2023", d.CreatedText)
	assert.True(t, d.Free)
	assert.True(t, d.Enrolled)
	assert.Equal(t, 20, d.Percentage)

	d, err = env.courses.CourseDetail(context.Background(), "u1", "c2")
	require.NoError(t, err)
	assert.False(t, d.Free)
	assert.False(t, d.Enrolled)
	assert.Equal(t, "16h", d.DurationText)

	_, err = env.courses.CourseDetail(context.Background(), "u1", "nope")
	assert.ErrorIs(t, err, util.ErrCourseNotFound)
}

func TestCatalogFacetsAndLessons(t *testing.T) {
	env := newTestEnv(t)

	facets := env.catalog.Facets()
	assert.Equal(t, []string{"Web Development", "Data Science", "Design", "Mobile Development", "Artificial Intelligence", "Blockchain"}, facets.Categories)
	assert.Len(t, facets.Difficulties, 3)
	assert.Equal(t, "HTML", facets.Tags[0])

	course, at, lesson, err := env.catalog.FindLesson("c1", "l4")
	require.NoError(t, err)
	assert.Equal(t, "c1", course.ID)
	assert.Equal(t, cursor(1, 0), at)
	assert.Equal(t, "l4", lesson.ID)

	_, _, _, err = env.catalog.FindLesson("c1", "l9")
	assert.ErrorIs(t, err, util.ErrLessonNotFound)
}

func TestSummaryExcerpt(t *testing.T) {
	env := newTestEnv(t)
	c1, err := env.catalog.FindCourse("c1")
	require.NoError(t, err)

	s := Summary(c1)
	assert.Equal(t, util.TruncateText(c1.Description, util.ExcerptLength), s.Excerpt)
	assert.Len(t, []rune(s.Excerpt), util.ExcerptLength+3)
	assert.True(t, s.Free)
	assert.Equal(t, "12h", s.DurationText)
}
