package seed

import (
	"context"
	"educanvas_backend/internal/config"
	"educanvas_backend/internal/model"
	"educanvas_backend/internal/util"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultFixture(t *testing.T) {
	f, err := Default()
	require.NoError(t, err)

	require.Len(t, f.Users, 1)
	assert.Equal(t, "u1", f.Users[0].ID)
	assert.Equal(t, []string{"c1", "c3", "c4"}, f.Users[0].EnrolledCourses)
	assert.Empty(t, f.Users[0].CompletedCourses)

	require.Len(t, f.Courses, 6)
	ids := make([]string, 0, len(f.Courses))
	for _, c := range f.Courses {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []string{"c1", "c2", "c3", "c4", "c5", "c6"}, ids)

	c1 := f.Courses[0]
	assert.Equal(t, "Web Development Fundamentals", c1.Title)
	assert.Equal(t, model.Beginner, c1.Difficulty)
	assert.Equal(t, 5, c1.TotalLessons())
	assert.Equal(t, 75, c1.LessonDuration())
	assert.True(t, c1.IsFree())
	assert.Equal(t, 2023, c1.Created.Year())

	require.NotNil(t, f.Courses[1].Price)
	assert.InDelta(t, 49.99, *f.Courses[1].Price, 1e-9)

	require.Len(t, f.Progress, 3)
	assert.Equal(t, "c1", f.Progress[0].CourseID)
	assert.Equal(t, []string{"l1"}, f.Progress[0].CompletedLessons)
	require.NotNil(t, f.Progress[0].LastAccessed)
	assert.Equal(t, 14, f.Progress[0].LastAccessed.Hour())
	assert.NotNil(t, f.Progress[0].QuizScores)
}

const minimalFixture = `{
  "users": [{"id": "u9", "name": "Test", "email": "t@example.com", "role": "student", "enrolledCourses": ["x1"]}],
  "courses": [{
    "id": "x1", "title": "X", "category": "Cat", "difficulty": "Advanced", "duration": 10,
    "instructor": {"id": "i9", "name": "Teacher"},
    "rating": %s,
    "modules": [{"id": "m1", "title": "M", "lessons": [{"id": "l1", "title": "L", "type": "%s", "duration": 5}]}],
    "created": "2024-01-01T00:00:00Z", "updated": "2024-01-02T00:00:00Z"
  }],
  "progress": [{"userId": "u9", "courseId": "x1", "completedLessons": ["l1", "l1"]}]
}`

func fixtureJSON(rating, lessonType string) string {
	s := strings.Replace(minimalFixture, "%s", rating, 1)
	return strings.Replace(s, "%s", lessonType, 1)
}

func TestParseNormalizesProgress(t *testing.T) {
	f, err := Parse(strings.NewReader(fixtureJSON("3.5", "video")))
	require.NoError(t, err)

	assert.Equal(t, []string{"l1"}, f.Progress[0].CompletedLessons)
	assert.NotNil(t, f.Progress[0].QuizScores)
	assert.Nil(t, f.Progress[0].LastAccessed)
	assert.NotNil(t, f.Users[0].CompletedCourses)
}

func TestParseRejectsInvalidData(t *testing.T) {
	cases := map[string]string{
		"rating above five":   fixtureJSON("5.5", "video"),
		"unknown lesson type": fixtureJSON("4", "podcast"),
		"malformed json":      `{"users": [`,
		"unknown field":       `{"users": [], "extra": 1}`,
		"no users":            `{"users": [], "courses": []}`,
		"dangling progress":   `{"users": [{"id": "u1", "name": "A", "email": "a@example.com", "role": "student"}], "progress": [{"userId": "u1", "courseId": "nope"}]}`,
		"dangling enrollment": `{"users": [{"id": "u1", "name": "A", "email": "a@example.com", "role": "student", "enrolledCourses": ["nope"]}]}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(body))
			assert.Error(t, err)
		})
	}
}

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixture.json")
	require.NoError(t, os.WriteFile(path, []byte(fixtureJSON("4", "quiz")), 0o644))

	f, err := Load(context.Background(), FileSource{Path: path})
	require.NoError(t, err)
	assert.Equal(t, "x1", f.Courses[0].ID)
	assert.Equal(t, model.LessonQuiz, f.Courses[0].Modules[0].Lessons[0].Type)
}

func TestFileSourceMissing(t *testing.T) {
	_, err := Load(context.Background(), FileSource{Path: filepath.Join(t.TempDir(), "missing.json")})
	assert.Error(t, err)
}

func TestNewSource(t *testing.T) {
	src, err := NewSource(&config.FixtureConfig{Source: "embed"})
	require.NoError(t, err)
	assert.IsType(t, EmbedSource{}, src)

	src, err = NewSource(&config.FixtureConfig{Source: "file", Path: "/tmp/x.json"})
	require.NoError(t, err)
	assert.Equal(t, "file:/tmp/x.json", src.Name())

	src, err = NewSource(&config.FixtureConfig{
		Source:        "minio",
		MinioEndpoint: "127.0.0.1:9000",
		MinioBucket:   "educanvas",
		MinioObject:   "fixture.json",
	})
	require.NoError(t, err)
	assert.Equal(t, "minio:educanvas/fixture.json", src.Name())

	_, err = NewSource(&config.FixtureConfig{Source: "ftp"})
	assert.ErrorIs(t, err, util.ErrUnknownFixtureSource)
}
