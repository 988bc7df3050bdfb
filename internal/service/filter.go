package service

import (
	"educanvas_backend/internal/model"
	"strings"
)

// CourseQuery 课程浏览页的搜索与筛选条件，各选项集合为空时不过滤
type CourseQuery struct {
	SearchTerm   string             `form:"search" json:"search"`
	Categories   []string           `form:"category" json:"categories"`
	Difficulties []model.Difficulty `form:"difficulty" json:"difficulties" binding:"omitempty,dive,oneof=Beginner Intermediate Advanced"`
	Tags         []string           `form:"tag" json:"tags"`
}

// FilterCourses 搜索词、分类、难度、标签四个条件同时满足才保留，结果保持输入顺序。
// 搜索词不区分大小写，匹配标题、简介或任一标签的子串。
func FilterCourses(courses []model.Course, q CourseQuery) []model.Course {
	term := strings.ToLower(q.SearchTerm)
	categories := toSet(q.Categories)
	difficulties := toSet(q.Difficulties)
	tags := toSet(q.Tags)

	out := make([]model.Course, 0, len(courses))
	for _, c := range courses {
		if term != "" && !matchesTerm(&c, term) {
			continue
		}
		if len(categories) > 0 && !categories[c.Category] {
			continue
		}
		if len(difficulties) > 0 && !difficulties[c.Difficulty] {
			continue
		}
		if len(tags) > 0 && !anyTag(c.Tags, tags) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func matchesTerm(c *model.Course, term string) bool {
	if strings.Contains(strings.ToLower(c.Title), term) ||
		strings.Contains(strings.ToLower(c.Description), term) {
		return true
	}
	for _, t := range c.Tags {
		if strings.Contains(strings.ToLower(t), term) {
			return true
		}
	}
	return false
}

func anyTag(courseTags []string, selected map[string]bool) bool {
	for _, t := range courseTags {
		if selected[t] {
			return true
		}
	}
	return false
}

func toSet[T comparable](items []T) map[T]bool {
	set := make(map[T]bool, len(items))
	for _, it := range items {
		set[it] = true
	}
	return set
}

// toggle 已选中则移除，否则追加到末尾
func toggle[T comparable](items []T, v T) []T {
	for i, it := range items {
		if it == v {
			return append(items[:i:i], items[i+1:]...)
		}
	}
	return append(items, v)
}

func (q *CourseQuery) ToggleCategory(category string) {
	q.Categories = toggle(q.Categories, category)
}

func (q *CourseQuery) ToggleDifficulty(d model.Difficulty) {
	q.Difficulties = toggle(q.Difficulties, d)
}

func (q *CourseQuery) ToggleTag(tag string) {
	q.Tags = toggle(q.Tags, tag)
}

// ClearAll 清空搜索词和全部筛选
func (q *CourseQuery) ClearAll() {
	*q = CourseQuery{}
}

// ActiveFilters 已选中的筛选项数量，不含搜索词
func (q *CourseQuery) ActiveFilters() int {
	return len(toSet(q.Categories)) + len(toSet(q.Difficulties)) + len(toSet(q.Tags))
}
