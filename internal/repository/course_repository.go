package repository

import (
	"educanvas_backend/internal/model"
	"educanvas_backend/internal/util"
)

// CourseRepository 只读课程目录，加载后不再修改，无需加锁
type CourseRepository struct {
	courses []model.Course
	index   map[string]int
}

func NewCourseRepository(courses []model.Course) *CourseRepository {
	r := &CourseRepository{
		courses: append([]model.Course(nil), courses...),
		index:   make(map[string]int, len(courses)),
	}
	for i, c := range r.courses {
		r.index[c.ID] = i
	}
	return r
}

// List 按目录原始顺序返回
func (r *CourseRepository) List() []model.Course {
	return append([]model.Course(nil), r.courses...)
}

func (r *CourseRepository) FindByID(id string) (*model.Course, error) {
	i, ok := r.index[id]
	if !ok {
		return nil, util.ErrCourseNotFound
	}
	c := r.courses[i]
	return &c, nil
}

func (r *CourseRepository) Count() int {
	return len(r.courses)
}

// Categories 去重后的分类，保持首次出现的顺序
func (r *CourseRepository) Categories() []string {
	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, c := range r.courses {
		if !seen[c.Category] {
			seen[c.Category] = true
			out = append(out, c.Category)
		}
	}
	return out
}

// Tags 去重后的标签，保持首次出现的顺序
func (r *CourseRepository) Tags() []string {
	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, c := range r.courses {
		for _, t := range c.Tags {
			if !seen[t] {
				seen[t] = true
				out = append(out, t)
			}
		}
	}
	return out
}
