package model

import "time"

// ModuleProgress 单个模块的完成情况
type ModuleProgress struct {
	ModuleID   string `json:"moduleId"`
	Title      string `json:"title"`
	Completed  int    `json:"completed"`
	Total      int    `json:"total"`
	Percentage int    `json:"percentage"`
	Done       bool   `json:"done"`
}

// CourseProgress 某用户在某课程上的进度汇总
type CourseProgress struct {
	CourseID         string             `json:"courseId"`
	CompletedLessons []string           `json:"completedLessons"`
	Completed        int                `json:"completed"`
	TotalLessons     int                `json:"totalLessons"`
	Percentage       int                `json:"percentage"`
	RemainingMinutes int                `json:"remainingMinutes"`
	Finished         bool               `json:"finished"`
	LastAccessed     *time.Time         `json:"lastAccessed"`
	QuizScores       map[string]float64 `json:"quizScores"`
	Modules          []ModuleProgress   `json:"modules"`
}

// CourseSummary 课程列表卡片
type CourseSummary struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Excerpt         string     `json:"excerpt"`
	Instructor      Instructor `json:"instructor"`
	Thumbnail       string     `json:"thumbnail"`
	Category        string     `json:"category"`
	Tags            []string   `json:"tags"`
	Difficulty      Difficulty `json:"difficulty"`
	Duration        int        `json:"duration"`
	DurationText    string     `json:"durationText"`
	Rating          float64    `json:"rating"`
	Reviews         int        `json:"reviews"`
	EnrollmentCount int        `json:"enrollmentCount"`
	Price           *float64   `json:"price"`
	Free            bool       `json:"free"`
}

// CourseDetail 课程详情页
type CourseDetail struct {
	Course         Course `json:"course"`
	TotalLessons   int    `json:"totalLessons"`
	LessonDuration int    `json:"lessonDuration"`
	DurationText   string `json:"durationText"`
	Free           bool   `json:"free"`
	CreatedText    string `json:"createdText"`
	UpdatedText    string `json:"updatedText"`
	Enrolled       bool   `json:"enrolled"`
	Percentage     int    `json:"percentage"`
}

// CourseFacets 课程筛选面板的可选项
type CourseFacets struct {
	Categories   []string     `json:"categories"`
	Difficulties []Difficulty `json:"difficulties"`
	Tags         []string     `json:"tags"`
}

// LessonCursor 学习页中当前课时的位置（模块下标、课时下标）
type LessonCursor struct {
	Module int `json:"module" form:"module" binding:"gte=0"`
	Lesson int `json:"lesson" form:"lesson" binding:"gte=0"`
}

// OutlineLesson 学习页侧边栏中的课时
type OutlineLesson struct {
	ID        string       `json:"id"`
	Title     string       `json:"title"`
	Type      LessonType   `json:"type"`
	Duration  int          `json:"duration"`
	Completed bool         `json:"completed"`
	Cursor    LessonCursor `json:"cursor"`
}

type OutlineModule struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	Duration int             `json:"duration"`
	Lessons  []OutlineLesson `json:"lessons"`
}

// LessonView 学习页数据
type LessonView struct {
	CourseID   string          `json:"courseId"`
	CourseName string          `json:"courseName"`
	Cursor     LessonCursor    `json:"cursor"`
	Module     CourseModule    `json:"module"`
	Lesson     Lesson          `json:"lesson"`
	Prev       *LessonCursor   `json:"prev"`
	Next       *LessonCursor   `json:"next"`
	Outline    []OutlineModule `json:"outline"`
	Percentage int             `json:"percentage"`
}

// EnrolledCourse 仪表盘中的已报名课程
type EnrolledCourse struct {
	CourseSummary
	Percentage   int        `json:"progress"`
	LastAccessed *time.Time `json:"lastAccessed"`
}

type DashboardStats struct {
	Enrolled         int `json:"enrolled"`
	InProgress       int `json:"inProgress"`
	Finished         int `json:"finished"`
	CompletedCourses int `json:"completedCourses"`
	RemainingMinutes int `json:"remainingMinutes"`
}

type Dashboard struct {
	User    User             `json:"user"`
	Courses []EnrolledCourse `json:"courses"`
	Stats   DashboardStats   `json:"stats"`
}
