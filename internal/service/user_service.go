package service

import (
	"educanvas_backend/internal/model"
	"educanvas_backend/internal/repository"
	"educanvas_backend/pkg/logger"
	"educanvas_backend/pkg/monitoring"
	"fmt"

	"go.uber.org/zap"
)

type UserService struct {
	UserRepo       *repository.UserRepository
	EnrollmentRepo *repository.EnrollmentRepository
	Catalog        *CatalogService
}

func NewUserService(userRepo *repository.UserRepository, enrollmentRepo *repository.EnrollmentRepository, catalog *CatalogService) *UserService {
	return &UserService{
		UserRepo:       userRepo,
		EnrollmentRepo: enrollmentRepo,
		Catalog:        catalog,
	}
}

func (s *UserService) GetUser(id string) (*model.User, error) {
	u, err := s.UserRepo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("find user %s: %w", id, err)
	}
	return u, nil
}

// GetProfile 用户信息，enrolledCourses 包含运行期间新增的报名
func (s *UserService) GetProfile(id string) (*model.User, error) {
	u, err := s.GetUser(id)
	if err != nil {
		return nil, err
	}
	u.EnrolledCourses = s.EnrollmentRepo.CourseIDs(id)
	return u, nil
}

func (s *UserService) ListUsers() []model.User {
	users := s.UserRepo.List()
	for i := range users {
		users[i].EnrolledCourses = s.EnrollmentRepo.CourseIDs(users[i].ID)
	}
	return users
}

func (s *UserService) IsEnrolled(userID, courseID string) bool {
	return s.EnrollmentRepo.IsEnrolled(userID, courseID)
}

// Enroll 重复报名是无操作，返回是否新增
func (s *UserService) Enroll(userID, courseID string) (bool, error) {
	if _, err := s.GetUser(userID); err != nil {
		return false, err
	}
	if _, err := s.Catalog.FindCourse(courseID); err != nil {
		return false, err
	}

	added := s.EnrollmentRepo.Enroll(userID, courseID)
	if added {
		monitoring.Enrollments.WithLabelValues(courseID).Inc()
		logger.Log.Info("User enrolled", zap.String("user_id", userID), zap.String("course_id", courseID))
	}
	return added, nil
}

// EnrolledCourses 已报名课程，按目录顺序
func (s *UserService) EnrolledCourses(userID string) []model.Course {
	enrolled := toSet(s.EnrollmentRepo.CourseIDs(userID))
	out := make([]model.Course, 0, len(enrolled))
	for _, c := range s.Catalog.ListCourses() {
		if enrolled[c.ID] {
			out = append(out, c)
		}
	}
	return out
}
