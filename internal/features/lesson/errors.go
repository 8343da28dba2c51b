package lesson

import "errors"

var (
	ErrLessonNotFound = errors.New("lesson not found")
	ErrCourseNotFound = errors.New("course not found")
	ErrTitleRequired  = errors.New("lesson title is required")
	ErrModuleRequired = errors.New("lesson module name is required")
)
