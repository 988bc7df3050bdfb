package repository

import (
	"educanvas_backend/internal/model"
	"educanvas_backend/internal/util"
)

// UserRepository 演示用户，进程生命周期内不可变
type UserRepository struct {
	users map[string]model.User
	order []string
}

func NewUserRepository(users []model.User) *UserRepository {
	r := &UserRepository{users: make(map[string]model.User, len(users))}
	for _, u := range users {
		if _, ok := r.users[u.ID]; !ok {
			r.order = append(r.order, u.ID)
		}
		r.users[u.ID] = u
	}
	return r
}

func (r *UserRepository) FindByID(id string) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, util.ErrUserNotFound
	}
	u.EnrolledCourses = append([]string{}, u.EnrolledCourses...)
	u.CompletedCourses = append([]string{}, u.CompletedCourses...)
	return &u, nil
}

func (r *UserRepository) List() []model.User {
	out := make([]model.User, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.users[id])
	}
	return out
}
