package util

import "errors"

var (
	ErrUserNotFound         = errors.New("用户不存在")
	ErrCourseNotFound       = errors.New("course not found")
	ErrLessonNotFound       = errors.New("lesson not found")
	ErrNotAQuiz             = errors.New("lesson is not a quiz")
	ErrInvalidScore         = errors.New("quiz score must be between 0 and 100")
	ErrUnknownFixtureSource = errors.New("unknown fixture source")
	ErrUnknownStorageDriver = errors.New("unknown progress storage driver")
)
