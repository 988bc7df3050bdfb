package service

import (
	"educanvas_backend/internal/model"
	"educanvas_backend/internal/repository"
	"educanvas_backend/internal/util"
	"fmt"
)

type CatalogService struct {
	CourseRepo *repository.CourseRepository
}

func NewCatalogService(courseRepo *repository.CourseRepository) *CatalogService {
	return &CatalogService{CourseRepo: courseRepo}
}

func (s *CatalogService) ListCourses() []model.Course {
	return s.CourseRepo.List()
}

func (s *CatalogService) FindCourse(id string) (*model.Course, error) {
	c, err := s.CourseRepo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("find course %s: %w", id, err)
	}
	return c, nil
}

// SearchCourses 在完整目录上应用筛选条件
func (s *CatalogService) SearchCourses(q CourseQuery) []model.Course {
	return FilterCourses(s.CourseRepo.List(), q)
}

func (s *CatalogService) Facets() *model.CourseFacets {
	return &model.CourseFacets{
		Categories:   s.CourseRepo.Categories(),
		Difficulties: append([]model.Difficulty(nil), model.Difficulties...),
		Tags:         s.CourseRepo.Tags(),
	}
}

// FindLesson 返回课时及其位置
func (s *CatalogService) FindLesson(courseID, lessonID string) (*model.Course, model.LessonCursor, *model.Lesson, error) {
	c, err := s.FindCourse(courseID)
	if err != nil {
		return nil, model.LessonCursor{}, nil, err
	}
	for mi, m := range c.Modules {
		for li := range m.Lessons {
			if m.Lessons[li].ID == lessonID {
				lesson := m.Lessons[li]
				return c, model.LessonCursor{Module: mi, Lesson: li}, &lesson, nil
			}
		}
	}
	return c, model.LessonCursor{}, nil, fmt.Errorf("find lesson %s in course %s: %w", lessonID, courseID, util.ErrLessonNotFound)
}

func Summary(c *model.Course) model.CourseSummary {
	return model.CourseSummary{
		ID:              c.ID,
		Title:           c.Title,
		Description:     c.Description,
		Excerpt:         util.TruncateText(c.Description, util.ExcerptLength),
		Instructor:      c.Instructor,
		Thumbnail:       c.Thumbnail,
		Category:        c.Category,
		Tags:            c.Tags,
		Difficulty:      c.Difficulty,
		Duration:        c.Duration,
		DurationText:    util.FormatDuration(c.Duration),
		Rating:          c.Rating,
		Reviews:         c.Reviews,
		EnrollmentCount: c.EnrollmentCount,
		Price:           c.Price,
		Free:            c.IsFree(),
	}
}

func Summaries(courses []model.Course) []model.CourseSummary {
	out := make([]model.CourseSummary, 0, len(courses))
	for i := range courses {
		out = append(out, Summary(&courses[i]))
	}
	return out
}
