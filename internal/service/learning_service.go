package service

import (
	"context"
	"educanvas_backend/internal/model"
	"educanvas_backend/internal/util"
	"fmt"
)

type LearningService struct {
	Catalog  *CatalogService
	Progress *ProgressService
}

func NewLearningService(catalog *CatalogService, progress *ProgressService) *LearningService {
	return &LearningService{Catalog: catalog, Progress: progress}
}

// LessonView 学习页数据；cursor 为空时定位到第一个课时
func (s *LearningService) LessonView(ctx context.Context, userID, courseID string, cursor *model.LessonCursor) (*model.LessonView, error) {
	course, err := s.Catalog.FindCourse(courseID)
	if err != nil {
		return nil, err
	}

	var at model.LessonCursor
	if cursor == nil {
		first, ok := FirstLesson(course)
		if !ok {
			return nil, fmt.Errorf("course %s has no lessons: %w", courseID, util.ErrLessonNotFound)
		}
		at = first
	} else {
		at = *cursor
		if !Valid(course, at) {
			return nil, fmt.Errorf("lesson %d/%d in course %s: %w", at.Module, at.Lesson, courseID, util.ErrLessonNotFound)
		}
	}

	p, err := s.Progress.GetProgress(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}
	return buildLessonView(course, at, p), nil
}

// Advance 将当前课时标记完成后前进到下一个课时，最后一个课时停留原地
func (s *LearningService) Advance(ctx context.Context, userID, courseID string, cursor model.LessonCursor) (*model.LessonView, error) {
	course, err := s.Catalog.FindCourse(courseID)
	if err != nil {
		return nil, err
	}
	if !Valid(course, cursor) {
		return nil, fmt.Errorf("lesson %d/%d in course %s: %w", cursor.Module, cursor.Lesson, courseID, util.ErrLessonNotFound)
	}

	lesson := course.Modules[cursor.Module].Lessons[cursor.Lesson]
	if _, err := s.Progress.MarkLessonComplete(ctx, userID, courseID, lesson.ID); err != nil {
		return nil, err
	}

	next, _ := NextLesson(course, cursor)
	p, err := s.Progress.GetProgress(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}
	return buildLessonView(course, next, p), nil
}

func buildLessonView(course *model.Course, at model.LessonCursor, p model.Progress) *model.LessonView {
	done := toSet(p.CompletedLessons)

	outline := make([]model.OutlineModule, 0, len(course.Modules))
	for mi, m := range course.Modules {
		om := model.OutlineModule{
			ID:       m.ID,
			Title:    m.Title,
			Duration: m.Duration(),
			Lessons:  make([]model.OutlineLesson, 0, len(m.Lessons)),
		}
		for li, l := range m.Lessons {
			om.Lessons = append(om.Lessons, model.OutlineLesson{
				ID:        l.ID,
				Title:     l.Title,
				Type:      l.Type,
				Duration:  l.Duration,
				Completed: done[l.ID],
				Cursor:    model.LessonCursor{Module: mi, Lesson: li},
			})
		}
		outline = append(outline, om)
	}

	// 课时的 completed 以用户进度为准，覆盖目录数据中的静态标记
	module := course.Modules[at.Module]
	module.Lessons = make([]model.Lesson, len(course.Modules[at.Module].Lessons))
	for li, l := range course.Modules[at.Module].Lessons {
		completed := done[l.ID]
		l.Completed = &completed
		module.Lessons[li] = l
	}
	lesson := module.Lessons[at.Lesson]

	view := &model.LessonView{
		CourseID:   course.ID,
		CourseName: course.Title,
		Cursor:     at,
		Module:     module,
		Lesson:     lesson,
		Outline:    outline,
		Percentage: CompletionPercentage(course, p),
	}
	if prev, ok := PrevLesson(course, at); ok {
		view.Prev = &prev
	}
	if next, ok := NextLesson(course, at); ok {
		view.Next = &next
	}
	return view
}
