package service

import (
	"context"
	"educanvas_backend/internal/model"
)

type DashboardService struct {
	Users    *UserService
	Progress *ProgressService
}

func NewDashboardService(users *UserService, progress *ProgressService) *DashboardService {
	return &DashboardService{Users: users, Progress: progress}
}

// GetUserDashboard 已报名课程及其完成度
func (s *DashboardService) GetUserDashboard(ctx context.Context, userID string) (*model.Dashboard, error) {
	user, err := s.Users.GetProfile(userID)
	if err != nil {
		return nil, err
	}

	courses := s.Users.EnrolledCourses(userID)
	dashboard := &model.Dashboard{
		User:    *user,
		Courses: make([]model.EnrolledCourse, 0, len(courses)),
	}

	for i := range courses {
		c := &courses[i]
		p, err := s.Progress.GetProgress(ctx, userID, c.ID)
		if err != nil {
			return nil, err
		}

		pct := CompletionPercentage(c, p)
		dashboard.Courses = append(dashboard.Courses, model.EnrolledCourse{
			CourseSummary: Summary(c),
			Percentage:    pct,
			LastAccessed:  p.LastAccessed,
		})

		if pct == 100 {
			dashboard.Stats.Finished++
		} else {
			dashboard.Stats.InProgress++
		}
		dashboard.Stats.RemainingMinutes += remainingMinutes(c, p)
	}

	dashboard.Stats.Enrolled = len(dashboard.Courses)
	dashboard.Stats.CompletedCourses = len(user.CompletedCourses)
	return dashboard, nil
}
