package repository

import (
	"educanvas_backend/internal/model"
	"sync"
)

// EnrollmentRepository 报名关系，独立于不可变的 User 记录
type EnrollmentRepository struct {
	mu      sync.RWMutex
	courses map[string][]string
}

// NewEnrollmentRepository 以用户自带的 enrolledCourses 作为初始报名
func NewEnrollmentRepository(users []model.User) *EnrollmentRepository {
	r := &EnrollmentRepository{courses: make(map[string][]string, len(users))}
	for _, u := range users {
		for _, id := range u.EnrolledCourses {
			r.Enroll(u.ID, id)
		}
	}
	return r
}

// Enroll 重复报名不产生变化，返回是否新增
func (r *EnrollmentRepository) Enroll(userID, courseID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range r.courses[userID] {
		if id == courseID {
			return false
		}
	}
	r.courses[userID] = append(r.courses[userID], courseID)
	return true
}

func (r *EnrollmentRepository) IsEnrolled(userID, courseID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.courses[userID] {
		if id == courseID {
			return true
		}
	}
	return false
}

// CourseIDs 按报名先后顺序
func (r *EnrollmentRepository) CourseIDs(userID string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]string{}, r.courses[userID]...)
}
