package repository

import (
	"context"
	"educanvas_backend/internal/model"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

// maxTxRetries 乐观锁冲突时的最大重试次数
const maxTxRetries = 10

// RedisProgressRepository Redis 存储
//
//	{prefix}:progress:{user}:{course}:lessons  ZSET，score 为全局递增序号，保证完成顺序
//	{prefix}:progress:{user}:{course}:access   STRING，RFC3339Nano
//	{prefix}:progress:{user}:{course}:quiz     HASH，quizId -> score
//	{prefix}:progress:seq                      INCR 计数器
type RedisProgressRepository struct {
	Redis  *redis.Client
	Prefix string
}

func NewRedisProgressRepository(rdb *redis.Client, prefix string) *RedisProgressRepository {
	return &RedisProgressRepository{Redis: rdb, Prefix: prefix}
}

func (r *RedisProgressRepository) Driver() string {
	return "redis"
}

func (r *RedisProgressRepository) key(userID, courseID, suffix string) string {
	return fmt.Sprintf("%s:progress:%s:%s:%s", r.Prefix, userID, courseID, suffix)
}

func (r *RedisProgressRepository) seqKey() string {
	return r.Prefix + ":progress:seq"
}

func (r *RedisProgressRepository) Get(ctx context.Context, userID, courseID string) (model.Progress, error) {
	p := model.NewProgress(userID, courseID)

	pipe := r.Redis.Pipeline()
	lessonsCmd := pipe.ZRange(ctx, r.key(userID, courseID, "lessons"), 0, -1)
	accessCmd := pipe.Get(ctx, r.key(userID, courseID, "access"))
	quizCmd := pipe.HGetAll(ctx, r.key(userID, courseID, "quiz"))
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return p, err
	}

	lessons, err := lessonsCmd.Result()
	if err != nil {
		return p, err
	}
	p.CompletedLessons = append(p.CompletedLessons, lessons...)

	raw, err := accessCmd.Result()
	switch {
	case err == nil:
		t, perr := time.Parse(time.RFC3339Nano, raw)
		if perr != nil {
			return p, fmt.Errorf("parse last accessed: %w", perr)
		}
		p.LastAccessed = &t
	case !errors.Is(err, redis.Nil):
		return p, err
	}

	scores, err := quizCmd.Result()
	if err != nil {
		return p, err
	}
	for quizID, v := range scores {
		score, perr := strconv.ParseFloat(v, 64)
		if perr != nil {
			return p, fmt.Errorf("parse quiz score %s: %w", quizID, perr)
		}
		p.QuizScores[quizID] = score
	}

	return p, nil
}

// MarkLessonComplete WATCH 完成集合，完成记录与最近访问时间在同一事务中写入
func (r *RedisProgressRepository) MarkLessonComplete(ctx context.Context, userID, courseID, lessonID string, at time.Time) (bool, error) {
	lessonsKey := r.key(userID, courseID, "lessons")
	accessKey := r.key(userID, courseID, "access")

	added := false
	txf := func(tx *redis.Tx) error {
		added = false

		// 已完成的课时不占用序号
		if _, err := tx.ZScore(ctx, lessonsKey, lessonID).Result(); err == nil {
			return nil
		} else if !errors.Is(err, redis.Nil) {
			return err
		}

		seq, err := tx.Incr(ctx, r.seqKey()).Result()
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.ZAddNX(ctx, lessonsKey, &redis.Z{Score: float64(seq), Member: lessonID})
			pipe.Set(ctx, accessKey, at.UTC().Format(time.RFC3339Nano), 0)
			return nil
		})
		if err != nil {
			return err
		}
		added = true
		return nil
	}

	for i := 0; i < maxTxRetries; i++ {
		err := r.Redis.Watch(ctx, txf, lessonsKey)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			return false, err
		}
		return added, nil
	}
	return false, fmt.Errorf("mark lesson %s: %w", lessonID, redis.TxFailedErr)
}

func (r *RedisProgressRepository) SaveQuizScore(ctx context.Context, userID, courseID, quizID string, score float64, at time.Time) error {
	_, err := r.Redis.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, r.key(userID, courseID, "quiz"), quizID, strconv.FormatFloat(score, 'f', -1, 64))
		pipe.Set(ctx, r.key(userID, courseID, "access"), at.UTC().Format(time.RFC3339Nano), 0)
		return nil
	})
	return err
}

func (r *RedisProgressRepository) Import(ctx context.Context, progress []model.Progress) error {
	for _, p := range progress {
		existing, err := r.Get(ctx, p.UserID, p.CourseID)
		if err != nil {
			return err
		}
		if len(existing.CompletedLessons) > 0 || existing.LastAccessed != nil || len(existing.QuizScores) > 0 {
			continue
		}

		for _, lessonID := range p.CompletedLessons {
			seq, err := r.Redis.Incr(ctx, r.seqKey()).Result()
			if err != nil {
				return err
			}
			if err := r.Redis.ZAddNX(ctx, r.key(p.UserID, p.CourseID, "lessons"), &redis.Z{Score: float64(seq), Member: lessonID}).Err(); err != nil {
				return err
			}
		}
		if p.LastAccessed != nil {
			if err := r.Redis.SetNX(ctx, r.key(p.UserID, p.CourseID, "access"), p.LastAccessed.UTC().Format(time.RFC3339Nano), 0).Err(); err != nil {
				return err
			}
		}
		for quizID, score := range p.QuizScores {
			if err := r.Redis.HSetNX(ctx, r.key(p.UserID, p.CourseID, "quiz"), quizID, strconv.FormatFloat(score, 'f', -1, 64)).Err(); err != nil {
				return err
			}
		}
	}
	return nil
}
