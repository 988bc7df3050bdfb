package model

type UserRole string

const (
	RoleStudent    UserRole = "student"
	RoleInstructor UserRole = "instructor"
	RoleAdmin      UserRole = "admin"
)

// swagger:model User
type User struct {
	ID               string   `json:"id" validate:"required"`
	Name             string   `json:"name" validate:"required"`
	Email            string   `json:"email" validate:"required,email"`
	Avatar           string   `json:"avatar"`
	Role             UserRole `json:"role" validate:"oneof=student instructor admin"`
	EnrolledCourses  []string `json:"enrolledCourses"`
	CompletedCourses []string `json:"completedCourses"`
}
