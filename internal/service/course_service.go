package service

import (
	"context"
	"educanvas_backend/internal/model"
	"educanvas_backend/internal/util"
)

// CourseService 组合目录、报名与进度，生成课程详情
type CourseService struct {
	Users    *UserService
	Catalog  *CatalogService
	Progress *ProgressService
}

func NewCourseService(users *UserService, catalog *CatalogService, progress *ProgressService) *CourseService {
	return &CourseService{Users: users, Catalog: catalog, Progress: progress}
}

// CourseDetail 课程详情页
func (s *CourseService) CourseDetail(ctx context.Context, userID, courseID string) (*model.CourseDetail, error) {
	c, err := s.Catalog.FindCourse(courseID)
	if err != nil {
		return nil, err
	}
	p, err := s.Progress.GetProgress(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}

	return &model.CourseDetail{
		Course:         *c,
		TotalLessons:   c.TotalLessons(),
		LessonDuration: c.LessonDuration(),
		DurationText:   util.FormatDuration(c.Duration),
		Free:           c.IsFree(),
		CreatedText:    util.FormatDate(c.Created),
		UpdatedText:    util.FormatDate(c.Updated),
		Enrolled:       s.Users.IsEnrolled(userID, courseID),
		Percentage:     CompletionPercentage(c, p),
	}, nil
}
