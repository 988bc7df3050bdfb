package model

import (
	"time"
)

type Difficulty string

const (
	Beginner     Difficulty = "Beginner"
	Intermediate Difficulty = "Intermediate"
	Advanced     Difficulty = "Advanced"
)

// Difficulties 按难度递增的固定顺序
var Difficulties = []Difficulty{Beginner, Intermediate, Advanced}

type LessonType string

const (
	LessonVideo      LessonType = "video"
	LessonReading    LessonType = "reading"
	LessonQuiz       LessonType = "quiz"
	LessonAssignment LessonType = "assignment"
)

type Instructor struct {
	ID     string `json:"id" validate:"required"`
	Name   string `json:"name" validate:"required"`
	Avatar string `json:"avatar"`
}

// swagger:model Lesson
type Lesson struct {
	ID          string     `json:"id" validate:"required"`
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description"`
	Type        LessonType `json:"type" validate:"oneof=video reading quiz assignment"`
	Duration    int        `json:"duration" validate:"gte=0"` // 分钟
	Content     string     `json:"content"`                   // 视频地址或正文
	Completed   *bool      `json:"completed,omitempty"`
}

// swagger:model CourseModule
type CourseModule struct {
	ID          string   `json:"id" validate:"required"`
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description"`
	Lessons     []Lesson `json:"lessons" validate:"dive"`
}

// Duration 模块内所有课时的分钟数之和
func (m *CourseModule) Duration() int {
	total := 0
	for _, l := range m.Lessons {
		total += l.Duration
	}
	return total
}

// swagger:model Course
type Course struct {
	ID              string         `json:"id" validate:"required"`
	Title           string         `json:"title" validate:"required"`
	Description     string         `json:"description"`
	Instructor      Instructor     `json:"instructor"`
	Thumbnail       string         `json:"thumbnail"`
	Category        string         `json:"category" validate:"required"`
	Tags            []string       `json:"tags"`
	Difficulty      Difficulty     `json:"difficulty" validate:"oneof=Beginner Intermediate Advanced"`
	Duration        int            `json:"duration" validate:"gte=0"` // 分钟
	Modules         []CourseModule `json:"modules" validate:"dive"`
	EnrollmentCount int            `json:"enrollmentCount" validate:"gte=0"`
	Rating          float64        `json:"rating" validate:"gte=0,lte=5"`
	Reviews         int            `json:"reviews" validate:"gte=0"`
	Price           *float64       `json:"price" validate:"omitempty,gte=0"` // nil 表示免费
	Created         time.Time      `json:"created"`
	Updated         time.Time      `json:"updated"`
}

func (c *Course) IsFree() bool {
	return c.Price == nil
}

func (c *Course) TotalLessons() int {
	total := 0
	for _, m := range c.Modules {
		total += len(m.Lessons)
	}
	return total
}

// LessonDuration 所有课时分钟数之和，与课程标称时长 Duration 无关
func (c *Course) LessonDuration() int {
	total := 0
	for i := range c.Modules {
		total += c.Modules[i].Duration()
	}
	return total
}
