package service

import "educanvas_backend/internal/model"

// Valid 游标是否指向课程内的某个课时
func Valid(course *model.Course, c model.LessonCursor) bool {
	return c.Module >= 0 && c.Module < len(course.Modules) &&
		c.Lesson >= 0 && c.Lesson < len(course.Modules[c.Module].Lessons)
}

// FirstLesson 第一个非空模块的第一个课时
func FirstLesson(course *model.Course) (model.LessonCursor, bool) {
	for mi := range course.Modules {
		if len(course.Modules[mi].Lessons) > 0 {
			return model.LessonCursor{Module: mi, Lesson: 0}, true
		}
	}
	return model.LessonCursor{}, false
}

// NextLesson 同模块下一个课时，否则下一个非空模块的第一个课时。
// 已是最后一个课时返回原位置和 false。
func NextLesson(course *model.Course, c model.LessonCursor) (model.LessonCursor, bool) {
	if !Valid(course, c) {
		return c, false
	}
	if c.Lesson < len(course.Modules[c.Module].Lessons)-1 {
		return model.LessonCursor{Module: c.Module, Lesson: c.Lesson + 1}, true
	}
	for mi := c.Module + 1; mi < len(course.Modules); mi++ {
		if len(course.Modules[mi].Lessons) > 0 {
			return model.LessonCursor{Module: mi, Lesson: 0}, true
		}
	}
	return c, false
}

// PrevLesson 同模块上一个课时，否则上一个非空模块的最后一个课时。
// 已是第一个课时返回原位置和 false。
func PrevLesson(course *model.Course, c model.LessonCursor) (model.LessonCursor, bool) {
	if !Valid(course, c) {
		return c, false
	}
	if c.Lesson > 0 {
		return model.LessonCursor{Module: c.Module, Lesson: c.Lesson - 1}, true
	}
	for mi := c.Module - 1; mi >= 0; mi-- {
		if n := len(course.Modules[mi].Lessons); n > 0 {
			return model.LessonCursor{Module: mi, Lesson: n - 1}, true
		}
	}
	return c, false
}
