package repository

import (
	"context"
	"educanvas_backend/internal/model"
	"sync"
	"time"
)

// ProgressRepository 学习进度存储，按 (用户, 课程) 区分。
// 记录不存在时 Get 返回空进度而不是错误。
type ProgressRepository interface {
	Get(ctx context.Context, userID, courseID string) (model.Progress, error)
	// MarkLessonComplete 课时已完成时不做任何修改，返回 false
	MarkLessonComplete(ctx context.Context, userID, courseID, lessonID string, at time.Time) (bool, error)
	SaveQuizScore(ctx context.Context, userID, courseID, quizID string, score float64, at time.Time) error
	// Import 写入初始进度，已存在的记录保持不变
	Import(ctx context.Context, progress []model.Progress) error
	Driver() string
}

type progressKey struct {
	userID   string
	courseID string
}

// MemoryProgressRepository 进程内存储
type MemoryProgressRepository struct {
	mu      sync.RWMutex
	records map[progressKey]*model.Progress
}

func NewMemoryProgressRepository() *MemoryProgressRepository {
	return &MemoryProgressRepository{records: make(map[progressKey]*model.Progress)}
}

func (r *MemoryProgressRepository) Driver() string {
	return "memory"
}

func (r *MemoryProgressRepository) Get(ctx context.Context, userID, courseID string) (model.Progress, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.records[progressKey{userID, courseID}]
	if !ok {
		return model.NewProgress(userID, courseID), nil
	}
	return p.Clone(), nil
}

// record 调用方需持有写锁
func (r *MemoryProgressRepository) record(userID, courseID string) *model.Progress {
	key := progressKey{userID, courseID}
	p, ok := r.records[key]
	if !ok {
		np := model.NewProgress(userID, courseID)
		p = &np
		r.records[key] = p
	}
	return p
}

func (r *MemoryProgressRepository) MarkLessonComplete(ctx context.Context, userID, courseID, lessonID string, at time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := r.record(userID, courseID)
	if p.HasCompleted(lessonID) {
		return false, nil
	}
	p.CompletedLessons = append(p.CompletedLessons, lessonID)
	p.LastAccessed = &at
	return true, nil
}

func (r *MemoryProgressRepository) SaveQuizScore(ctx context.Context, userID, courseID, quizID string, score float64, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := r.record(userID, courseID)
	p.QuizScores[quizID] = score
	p.LastAccessed = &at
	return nil
}

func (r *MemoryProgressRepository) Import(ctx context.Context, progress []model.Progress) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range progress {
		key := progressKey{p.UserID, p.CourseID}
		if _, ok := r.records[key]; ok {
			continue
		}
		cp := p.Clone()
		r.records[key] = &cp
	}
	return nil
}
