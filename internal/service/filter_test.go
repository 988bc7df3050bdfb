package service

import (
	"educanvas_backend/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

func ids(courses []model.Course) []string {
	out := make([]string, 0, len(courses))
	for _, c := range courses {
		out = append(out, c.ID)
	}
	return out
}

func TestFilterCourses(t *testing.T) {
	env := newTestEnv(t)
	all := env.catalog.ListCourses()

	cases := []struct {
		name  string
		query CourseQuery
		want  []string
	}{
		{"empty query keeps everything in order", CourseQuery{}, []string{"c1", "c2", "c3", "c4", "c5", "c6"}},
		{"search is case insensitive", CourseQuery{SearchTerm: "html"}, []string{"c1"}},
		{"search upper case", CourseQuery{SearchTerm: "HTML"}, []string{"c1"}},
		{"search matches tags", CourseQuery{SearchTerm: "smart contracts"}, []string{"c6"}},
		{"search matches description", CourseQuery{SearchTerm: "datasets"}, []string{"c2"}},
		{"search without hits", CourseQuery{SearchTerm: "cobol"}, []string{}},
		{"beginner difficulty", CourseQuery{Difficulties: []model.Difficulty{model.Beginner}}, []string{"c1", "c3", "c5"}},
		{"advanced difficulty", CourseQuery{Difficulties: []model.Difficulty{model.Advanced}}, []string{}},
		{"category membership", CourseQuery{Categories: []string{"Design", "Blockchain"}}, []string{"c3", "c6"}},
		{"tag intersection", CourseQuery{Tags: []string{"JavaScript"}}, []string{"c1", "c4"}},
		{"any selected tag", CourseQuery{Tags: []string{"Machine Learning", "iOS"}}, []string{"c2", "c4", "c5"}},
		{"category and tag are anded", CourseQuery{Categories: []string{"Design"}, Tags: []string{"AI"}}, []string{}},
		{"search and difficulty", CourseQuery{SearchTerm: "learning", Difficulties: []model.Difficulty{model.Beginner}}, []string{"c5"}},
		{"tags are exact", CourseQuery{Tags: []string{"javascript"}}, []string{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ids(FilterCourses(all, tc.query)))
		})
	}
}

func TestFilterCoursesPreservesInputOrder(t *testing.T) {
	env := newTestEnv(t)
	all := env.catalog.ListCourses()
	reversed := make([]model.Course, len(all))
	for i := range all {
		reversed[len(all)-1-i] = all[i]
	}

	got := FilterCourses(reversed, CourseQuery{Difficulties: []model.Difficulty{model.Beginner}})
	assert.Equal(t, []string{"c5", "c3", "c1"}, ids(got))
}

func TestFilterCoursesDoesNotMutateInput(t *testing.T) {
	env := newTestEnv(t)
	all := env.catalog.ListCourses()

	_ = FilterCourses(all, CourseQuery{SearchTerm: "design"})
	assert.Equal(t, []string{"c1", "c2", "c3", "c4", "c5", "c6"}, ids(all))
}

func TestCourseQueryToggles(t *testing.T) {
	var q CourseQuery

	q.ToggleCategory("Design")
	q.ToggleCategory("Blockchain")
	q.ToggleTag("AI")
	q.ToggleDifficulty(model.Beginner)
	assert.Equal(t, []string{"Design", "Blockchain"}, q.Categories)
	assert.Equal(t, 4, q.ActiveFilters())

	q.ToggleCategory("Design")
	assert.Equal(t, []string{"Blockchain"}, q.Categories)

	q.ToggleDifficulty(model.Beginner)
	assert.Empty(t, q.Difficulties)

	q.SearchTerm = "web"
	q.ClearAll()
	assert.Equal(t, CourseQuery{}, q)
	assert.Equal(t, 0, q.ActiveFilters())
}

func TestToggleDoesNotAliasOriginal(t *testing.T) {
	original := []string{"a", "b", "c"}
	got := toggle(original, "a")

	assert.Equal(t, []string{"b", "c"}, got)
	assert.Equal(t, []string{"a", "b", "c"}, original)
}
