package service

import (
	"educanvas_backend/internal/model"
	"math"
)

// Percentage round(100 * completed / total)，total 为 0 时返回 0，结果限制在 [0,100]
func Percentage(completed, total int) int {
	if total <= 0 || completed <= 0 {
		return 0
	}
	if completed >= total {
		return 100
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

// CompletedInCourse 已完成记录中属于该课程的课时数，未知课时ID不计入
func CompletedInCourse(course *model.Course, p model.Progress) int {
	if len(p.CompletedLessons) == 0 {
		return 0
	}
	done := toSet(p.CompletedLessons)
	n := 0
	for _, m := range course.Modules {
		for _, l := range m.Lessons {
			if done[l.ID] {
				n++
			}
		}
	}
	return n
}

// CompletionPercentage 每次调用都重新计算，不缓存
func CompletionPercentage(course *model.Course, p model.Progress) int {
	return Percentage(CompletedInCourse(course, p), course.TotalLessons())
}

// ModuleBreakdown 各模块的完成情况，顺序与课程大纲一致
func ModuleBreakdown(course *model.Course, p model.Progress) []model.ModuleProgress {
	done := toSet(p.CompletedLessons)
	out := make([]model.ModuleProgress, 0, len(course.Modules))
	for _, m := range course.Modules {
		completed := 0
		for _, l := range m.Lessons {
			if done[l.ID] {
				completed++
			}
		}
		total := len(m.Lessons)
		out = append(out, model.ModuleProgress{
			ModuleID:   m.ID,
			Title:      m.Title,
			Completed:  completed,
			Total:      total,
			Percentage: Percentage(completed, total),
			Done:       total > 0 && completed == total,
		})
	}
	return out
}

// remainingMinutes 未完成课时的分钟数之和
func remainingMinutes(course *model.Course, p model.Progress) int {
	done := toSet(p.CompletedLessons)
	total := 0
	for _, m := range course.Modules {
		for _, l := range m.Lessons {
			if !done[l.ID] {
				total += l.Duration
			}
		}
	}
	return total
}

// Summarize 汇总课程进度
func Summarize(course *model.Course, p model.Progress) *model.CourseProgress {
	completed := CompletedInCourse(course, p)
	total := course.TotalLessons()
	pct := Percentage(completed, total)
	return &model.CourseProgress{
		CourseID:         course.ID,
		CompletedLessons: p.CompletedLessons,
		Completed:        completed,
		TotalLessons:     total,
		Percentage:       pct,
		RemainingMinutes: remainingMinutes(course, p),
		Finished:         total > 0 && completed == total,
		LastAccessed:     p.LastAccessed,
		QuizScores:       p.QuizScores,
		Modules:          ModuleBreakdown(course, p),
	}
}
