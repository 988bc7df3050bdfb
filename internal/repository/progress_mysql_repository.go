package repository

import (
	"context"
	"educanvas_backend/internal/model"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormProgressRepository MySQL 存储：完成记录、最近访问、测验成绩分三张表
type GormProgressRepository struct {
	DB *gorm.DB
}

func NewGormProgressRepository(db *gorm.DB) *GormProgressRepository {
	return &GormProgressRepository{DB: db}
}

func (r *GormProgressRepository) Driver() string {
	return "mysql"
}

func (r *GormProgressRepository) Migrate() error {
	return r.DB.AutoMigrate(
		&model.LessonCompletion{},
		&model.CourseAccess{},
		&model.QuizScore{},
	)
}

func (r *GormProgressRepository) Get(ctx context.Context, userID, courseID string) (model.Progress, error) {
	p := model.NewProgress(userID, courseID)
	db := r.DB.WithContext(ctx)

	var completions []model.LessonCompletion
	if err := db.Where("user_id = ? AND course_id = ?", userID, courseID).
		Order("id ASC").
		Find(&completions).Error; err != nil {
		return p, err
	}
	for _, c := range completions {
		p.CompletedLessons = append(p.CompletedLessons, c.LessonID)
	}

	var access model.CourseAccess
	err := db.Where("user_id = ? AND course_id = ?", userID, courseID).Take(&access).Error
	switch {
	case err == nil:
		t := access.LastAccessed
		p.LastAccessed = &t
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return p, err
	}

	var scores []model.QuizScore
	if err := db.Where("user_id = ? AND course_id = ?", userID, courseID).Find(&scores).Error; err != nil {
		return p, err
	}
	for _, s := range scores {
		p.QuizScores[s.QuizID] = s.Score
	}

	return p, nil
}

func (r *GormProgressRepository) MarkLessonComplete(ctx context.Context, userID, courseID, lessonID string, at time.Time) (bool, error) {
	added := false
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&model.LessonCompletion{
			UserID:   userID,
			CourseID: courseID,
			LessonID: lessonID,
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		added = true
		return touchAccess(tx, userID, courseID, at)
	})
	return added, err
}

func (r *GormProgressRepository) SaveQuizScore(ctx context.Context, userID, courseID, quizID string, score float64, at time.Time) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "course_id"}, {Name: "quiz_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"score", "updated_at"}),
		}).Create(&model.QuizScore{
			UserID:    userID,
			CourseID:  courseID,
			QuizID:    quizID,
			Score:     score,
			UpdatedAt: at,
		}).Error
		if err != nil {
			return err
		}
		return touchAccess(tx, userID, courseID, at)
	})
}

func (r *GormProgressRepository) Import(ctx context.Context, progress []model.Progress) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, p := range progress {
			// 已有记录的课程保持原样
			exists, err := hasProgress(tx, p.UserID, p.CourseID)
			if err != nil {
				return err
			}
			if exists {
				continue
			}

			for _, lessonID := range p.CompletedLessons {
				if err := insertIgnore(tx, &model.LessonCompletion{
					UserID:   p.UserID,
					CourseID: p.CourseID,
					LessonID: lessonID,
				}); err != nil {
					return err
				}
			}
			if p.LastAccessed != nil {
				if err := insertIgnore(tx, &model.CourseAccess{
					UserID:       p.UserID,
					CourseID:     p.CourseID,
					LastAccessed: *p.LastAccessed,
				}); err != nil {
					return err
				}
			}
			for quizID, score := range p.QuizScores {
				if err := insertIgnore(tx, &model.QuizScore{
					UserID:   p.UserID,
					CourseID: p.CourseID,
					QuizID:   quizID,
					Score:    score,
				}); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

func hasProgress(tx *gorm.DB, userID, courseID string) (bool, error) {
	for _, m := range []interface{}{&model.LessonCompletion{}, &model.CourseAccess{}, &model.QuizScore{}} {
		var n int64
		if err := tx.Model(m).Where("user_id = ? AND course_id = ?", userID, courseID).Count(&n).Error; err != nil {
			return false, err
		}
		if n > 0 {
			return true, nil
		}
	}
	return false, nil
}

func insertIgnore(tx *gorm.DB, value interface{}) error {
	return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(value).Error
}

func touchAccess(tx *gorm.DB, userID, courseID string, at time.Time) error {
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "course_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"last_accessed"}),
	}).Create(&model.CourseAccess{
		UserID:       userID,
		CourseID:     courseID,
		LastAccessed: at,
	}).Error
}
