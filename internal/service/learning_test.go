package service

import (
	"context"
	"educanvas_backend/internal/model"
	"educanvas_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cursor(m, l int) model.LessonCursor {
	return model.LessonCursor{Module: m, Lesson: l}
}

func TestLessonNavigation(t *testing.T) {
	env := newTestEnv(t)
	c1, err := env.catalog.FindCourse("c1")
	require.NoError(t, err)

	first, ok := FirstLesson(c1)
	require.True(t, ok)
	assert.Equal(t, cursor(0, 0), first)

	next, ok := NextLesson(c1, cursor(0, 0))
	assert.True(t, ok)
	assert.Equal(t, cursor(0, 1), next)

	next, ok = NextLesson(c1, cursor(0, 2))
	assert.True(t, ok)
	assert.Equal(t, cursor(1, 0), next)

	prev, ok := PrevLesson(c1, cursor(1, 0))
	assert.True(t, ok)
	assert.Equal(t, cursor(0, 2), prev)

	prev, ok = PrevLesson(c1, cursor(0, 0))
	assert.False(t, ok)
	assert.Equal(t, cursor(0, 0), prev)

	next, ok = NextLesson(c1, cursor(1, 1))
	assert.False(t, ok)
	assert.Equal(t, cursor(1, 1), next)
}

func TestLessonNavigationSkipsEmptyModules(t *testing.T) {
	course := &model.Course{
		ID: "x",
		Modules: []model.CourseModule{
			{ID: "m0"},
			{ID: "m1", Lessons: []model.Lesson{{ID: "a"}}},
			{ID: "m2"},
			{ID: "m3", Lessons: []model.Lesson{{ID: "b"}, {ID: "c"}}},
		},
	}

	first, ok := FirstLesson(course)
	require.True(t, ok)
	assert.Equal(t, cursor(1, 0), first)

	next, ok := NextLesson(course, first)
	assert.True(t, ok)
	assert.Equal(t, cursor(3, 0), next)

	prev, ok := PrevLesson(course, cursor(3, 0))
	assert.True(t, ok)
	assert.Equal(t, cursor(1, 0), prev)

	assert.False(t, Valid(course, cursor(0, 0)))
	assert.False(t, Valid(course, cursor(4, 0)))
	assert.False(t, Valid(course, cursor(-1, 0)))

	_, ok = FirstLesson(&model.Course{Modules: []model.CourseModule{{ID: "empty"}}})
	assert.False(t, ok)
}

func TestLessonViewDefaultsToFirstLesson(t *testing.T) {
	env := newTestEnv(t)

	view, err := env.learning.LessonView(context.Background(), "u1", "c1", nil)
	require.NoError(t, err)
	assert.Equal(t, cursor(0, 0), view.Cursor)
	assert.Equal(t, "l1", view.Lesson.ID)
	assert.Equal(t, "Web Development Fundamentals", view.CourseName)
	assert.Nil(t, view.Prev)
	require.NotNil(t, view.Next)
	assert.Equal(t, cursor(0, 1), *view.Next)
	assert.Equal(t, 20, view.Percentage)

	require.NotNil(t, view.Lesson.Completed)
	assert.True(t, *view.Lesson.Completed)
	require.Len(t, view.Outline, 2)
	assert.True(t, view.Outline[0].Lessons[0].Completed)
	assert.False(t, view.Outline[0].Lessons[1].Completed)
	assert.Equal(t, 40, view.Outline[0].Duration)
	assert.Equal(t, cursor(1, 1), view.Outline[1].Lessons[1].Cursor)
}

func TestLessonViewInvalidCursor(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	c := cursor(1, 5)
	_, err := env.learning.LessonView(ctx, "u1", "c1", &c)
	assert.ErrorIs(t, err, util.ErrLessonNotFound)

	_, err = env.learning.LessonView(ctx, "u1", "missing", nil)
	assert.ErrorIs(t, err, util.ErrCourseNotFound)
}

func TestLessonViewDoesNotMutateCatalog(t *testing.T) {
	env := newTestEnv(t)
	before, _ := env.catalog.FindCourse("c1")

	_, err := env.progress.MarkLessonComplete(context.Background(), "u1", "c1", "l2")
	require.NoError(t, err)
	_, err = env.learning.LessonView(context.Background(), "u1", "c1", nil)
	require.NoError(t, err)

	after, _ := env.catalog.FindCourse("c1")
	assert.Equal(t, before, after)
}

func TestAdvance(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	view, err := env.learning.Advance(ctx, "u1", "c1", cursor(0, 2))
	require.NoError(t, err)
	assert.Equal(t, cursor(1, 0), view.Cursor)
	assert.Equal(t, "l4", view.Lesson.ID)
	assert.Equal(t, 40, view.Percentage)
	assert.True(t, view.Outline[0].Lessons[2].Completed)

	p, _ := env.progress.GetProgress(ctx, "u1", "c1")
	assert.Equal(t, []string{"l1", "l3"}, p.CompletedLessons)
}

func TestAdvanceOnLastLessonStays(t *testing.T) {
	env := newTestEnv(t)

	view, err := env.learning.Advance(context.Background(), "u1", "c3", cursor(0, 0))
	require.NoError(t, err)
	assert.Equal(t, cursor(0, 0), view.Cursor)
	assert.Nil(t, view.Next)
	assert.Equal(t, 100, view.Percentage)
}

func TestAdvanceInvalidCursor(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.learning.Advance(context.Background(), "u1", "c1", cursor(2, 0))
	assert.ErrorIs(t, err, util.ErrLessonNotFound)
}
