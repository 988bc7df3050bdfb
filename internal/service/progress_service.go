package service

import (
	"context"
	"educanvas_backend/internal/model"
	"educanvas_backend/internal/repository"
	"educanvas_backend/internal/util"
	"educanvas_backend/pkg/logger"
	"educanvas_backend/pkg/monitoring"
	"educanvas_backend/pkg/tracing"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

type ProgressService struct {
	ProgressRepo repository.ProgressRepository
	Catalog      *CatalogService
	Now          func() time.Time
}

func NewProgressService(progressRepo repository.ProgressRepository, catalog *CatalogService) *ProgressService {
	return &ProgressService{
		ProgressRepo: progressRepo,
		Catalog:      catalog,
		Now:          time.Now,
	}
}

// GetProgress 从未学习过的课程（包括不存在的课程）返回空进度
func (s *ProgressService) GetProgress(ctx context.Context, userID, courseID string) (model.Progress, error) {
	ctx, span := tracing.Start(ctx, "ProgressService.GetProgress",
		attribute.String("user_id", userID), attribute.String("course_id", courseID))
	p, err := s.ProgressRepo.Get(ctx, userID, courseID)
	tracing.End(span, err)
	if err != nil {
		return p, fmt.Errorf("get progress %s/%s: %w", userID, courseID, err)
	}
	return p, nil
}

// MarkLessonComplete 不校验课程或课时是否存在；重复标记不会更新最近访问时间
func (s *ProgressService) MarkLessonComplete(ctx context.Context, userID, courseID, lessonID string) (bool, error) {
	ctx, span := tracing.Start(ctx, "ProgressService.MarkLessonComplete",
		attribute.String("user_id", userID),
		attribute.String("course_id", courseID),
		attribute.String("lesson_id", lessonID))

	added, err := s.ProgressRepo.MarkLessonComplete(ctx, userID, courseID, lessonID, s.Now())
	tracing.End(span, err)
	if err != nil {
		return false, fmt.Errorf("mark lesson %s complete: %w", lessonID, err)
	}

	if added {
		monitoring.LessonsCompleted.WithLabelValues(courseID).Inc()
		logger.Log.Info("Lesson completed",
			zap.String("user_id", userID),
			zap.String("course_id", courseID),
			zap.String("lesson_id", lessonID),
		)
	}
	return added, nil
}

// CompleteLesson 校验课时属于该课程后标记完成，返回最新进度汇总
func (s *ProgressService) CompleteLesson(ctx context.Context, userID, courseID, lessonID string) (*model.CourseProgress, error) {
	course, _, _, err := s.Catalog.FindLesson(courseID, lessonID)
	if err != nil {
		return nil, err
	}
	if _, err := s.MarkLessonComplete(ctx, userID, courseID, lessonID); err != nil {
		return nil, err
	}
	return s.courseProgress(ctx, userID, course)
}

// RecordQuizScore 只接受测验类型课时，分数范围 [0,100]
func (s *ProgressService) RecordQuizScore(ctx context.Context, userID, courseID, quizID string, score float64) (*model.CourseProgress, error) {
	course, _, lesson, err := s.Catalog.FindLesson(courseID, quizID)
	if err != nil {
		return nil, err
	}
	if lesson.Type != model.LessonQuiz {
		return nil, fmt.Errorf("record score for %s: %w", quizID, util.ErrNotAQuiz)
	}
	if score < util.MinQuizScore || score > util.MaxQuizScore {
		return nil, fmt.Errorf("record score %v: %w", score, util.ErrInvalidScore)
	}

	ctx, span := tracing.Start(ctx, "ProgressService.RecordQuizScore",
		attribute.String("course_id", courseID), attribute.String("quiz_id", quizID))
	err = s.ProgressRepo.SaveQuizScore(ctx, userID, courseID, quizID, score, s.Now())
	tracing.End(span, err)
	if err != nil {
		return nil, fmt.Errorf("save quiz score: %w", err)
	}

	monitoring.QuizScores.WithLabelValues(courseID).Observe(score)
	logger.Log.Info("Quiz score recorded",
		zap.String("user_id", userID),
		zap.String("course_id", courseID),
		zap.String("quiz_id", quizID),
		zap.Float64("score", score),
	)
	return s.courseProgress(ctx, userID, course)
}

// CourseProgress 进度汇总；课程不存在时按空课程汇总，返回空进度
func (s *ProgressService) CourseProgress(ctx context.Context, userID, courseID string) (*model.CourseProgress, error) {
	course, err := s.Catalog.FindCourse(courseID)
	if errors.Is(err, util.ErrCourseNotFound) {
		course = &model.Course{ID: courseID}
	} else if err != nil {
		return nil, err
	}
	return s.courseProgress(ctx, userID, course)
}

func (s *ProgressService) courseProgress(ctx context.Context, userID string, course *model.Course) (*model.CourseProgress, error) {
	p, err := s.GetProgress(ctx, userID, course.ID)
	if err != nil {
		return nil, err
	}
	return Summarize(course, p), nil
}

// Import 写入初始进度
func (s *ProgressService) Import(ctx context.Context, progress []model.Progress) error {
	if err := s.ProgressRepo.Import(ctx, progress); err != nil {
		return fmt.Errorf("import progress into %s: %w", s.ProgressRepo.Driver(), err)
	}
	logger.Log.Info("Progress imported",
		zap.String("driver", s.ProgressRepo.Driver()),
		zap.Int("records", len(progress)),
	)
	return nil
}
