package model

import (
	"time"
)

// swagger:model Progress
type Progress struct {
	UserID           string             `json:"userId"`
	CourseID         string             `json:"courseId"`
	CompletedLessons []string           `json:"completedLessons"` // 按完成先后排列，无重复
	LastAccessed     *time.Time         `json:"lastAccessed"`
	QuizScores       map[string]float64 `json:"quizScores"`
}

// NewProgress 返回尚未学习时的空进度
func NewProgress(userID, courseID string) Progress {
	return Progress{
		UserID:           userID,
		CourseID:         courseID,
		CompletedLessons: []string{},
		QuizScores:       map[string]float64{},
	}
}

func (p *Progress) HasCompleted(lessonID string) bool {
	for _, id := range p.CompletedLessons {
		if id == lessonID {
			return true
		}
	}
	return false
}

// Clone 深拷贝，存储层对外只返回副本
func (p Progress) Clone() Progress {
	out := p
	out.CompletedLessons = append([]string{}, p.CompletedLessons...)
	out.QuizScores = make(map[string]float64, len(p.QuizScores))
	for k, v := range p.QuizScores {
		out.QuizScores[k] = v
	}
	if p.LastAccessed != nil {
		t := *p.LastAccessed
		out.LastAccessed = &t
	}
	return out
}

// LessonCompletion 课时完成记录（MySQL驱动）
type LessonCompletion struct {
	BaseModel
	UserID   string `gorm:"size:64;not null;uniqueIndex:idx_completion"`
	CourseID string `gorm:"size:64;not null;uniqueIndex:idx_completion"`
	LessonID string `gorm:"size:64;not null;uniqueIndex:idx_completion"`
}

func (LessonCompletion) TableName() string {
	return "lesson_completions"
}

// CourseAccess 最近访问时间（MySQL驱动）
type CourseAccess struct {
	UserID       string    `gorm:"primaryKey;size:64"`
	CourseID     string    `gorm:"primaryKey;size:64"`
	LastAccessed time.Time `gorm:"not null"`
}

func (CourseAccess) TableName() string {
	return "course_accesses"
}

// QuizScore 测验成绩（MySQL驱动）
type QuizScore struct {
	UserID    string  `gorm:"primaryKey;size:64"`
	CourseID  string  `gorm:"primaryKey;size:64"`
	QuizID    string  `gorm:"primaryKey;size:64"`
	Score     float64 `gorm:"not null"`
	UpdatedAt time.Time
}

func (QuizScore) TableName() string {
	return "quiz_scores"
}
