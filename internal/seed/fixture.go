package seed

import (
	"context"
	"educanvas_backend/internal/model"
	"educanvas_backend/pkg/logger"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

//go:embed data/fixture.json
var embeddedFixture []byte

// Fixture 课程目录、演示用户以及初始学习进度
type Fixture struct {
	Users    []model.User     `json:"users" validate:"required,min=1,dive"`
	Courses  []model.Course   `json:"courses" validate:"dive"`
	Progress []model.Progress `json:"progress"`
}

var validate = validator.New()

// Load 从数据源读取并校验
func Load(ctx context.Context, src Source) (*Fixture, error) {
	start := time.Now()

	rc, err := src.Open(ctx)
	if err != nil {
		return nil, fmt.Errorf("open fixture from %s: %w", src.Name(), err)
	}
	defer rc.Close()

	f, err := Parse(rc)
	if err != nil {
		return nil, fmt.Errorf("load fixture from %s: %w", src.Name(), err)
	}

	logger.Log.Info("Fixture loaded",
		zap.String("source", src.Name()),
		zap.Int("courses", len(f.Courses)),
		zap.Int("users", len(f.Users)),
		zap.Int("progress", len(f.Progress)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return f, nil
}

// Default 内置数据
func Default() (*Fixture, error) {
	return Load(context.Background(), EmbedSource{})
}

func Parse(r io.Reader) (*Fixture, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var f Fixture
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode fixture: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	f.normalize()
	return &f, nil
}

// Validate 字段约束之外还检查ID唯一以及进度引用的用户、课程存在
func (f *Fixture) Validate() error {
	if err := validate.Struct(f); err != nil {
		return fmt.Errorf("invalid fixture: %w", err)
	}

	users := make(map[string]bool, len(f.Users))
	for _, u := range f.Users {
		if users[u.ID] {
			return fmt.Errorf("invalid fixture: duplicate user id %q", u.ID)
		}
		users[u.ID] = true
	}

	courses := make(map[string]*model.Course, len(f.Courses))
	for i := range f.Courses {
		c := &f.Courses[i]
		if _, ok := courses[c.ID]; ok {
			return fmt.Errorf("invalid fixture: duplicate course id %q", c.ID)
		}
		courses[c.ID] = c
	}

	for _, u := range f.Users {
		for _, id := range u.EnrolledCourses {
			if _, ok := courses[id]; !ok {
				return fmt.Errorf("invalid fixture: user %q enrolled in unknown course %q", u.ID, id)
			}
		}
	}

	for _, p := range f.Progress {
		if !users[p.UserID] {
			return fmt.Errorf("invalid fixture: progress for unknown user %q", p.UserID)
		}
		if _, ok := courses[p.CourseID]; !ok {
			return fmt.Errorf("invalid fixture: progress for unknown course %q", p.CourseID)
		}
	}

	return nil
}

// normalize 去除重复的已完成课时，补齐空集合
func (f *Fixture) normalize() {
	for i := range f.Progress {
		p := &f.Progress[i]
		seen := make(map[string]bool, len(p.CompletedLessons))
		lessons := make([]string, 0, len(p.CompletedLessons))
		for _, id := range p.CompletedLessons {
			if !seen[id] {
				seen[id] = true
				lessons = append(lessons, id)
			}
		}
		p.CompletedLessons = lessons
		if p.QuizScores == nil {
			p.QuizScores = map[string]float64{}
		}
	}
	for i := range f.Users {
		if f.Users[i].EnrolledCourses == nil {
			f.Users[i].EnrolledCourses = []string{}
		}
		if f.Users[i].CompletedCourses == nil {
			f.Users[i].CompletedCourses = []string{}
		}
	}
}
