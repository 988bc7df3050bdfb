package service

import (
	"context"
	"educanvas_backend/internal/repository"
	"educanvas_backend/internal/seed"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

type testEnv struct {
	catalog   *CatalogService
	progress  *ProgressService
	users     *UserService
	learning  *LearningService
	dashboard *DashboardService
	courses   *CourseService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	f, err := seed.Default()
	require.NoError(t, err)

	catalog := NewCatalogService(repository.NewCourseRepository(f.Courses))

	progressRepo := repository.NewMemoryProgressRepository()
	require.NoError(t, progressRepo.Import(context.Background(), f.Progress))
	progress := NewProgressService(progressRepo, catalog)
	progress.Now = func() time.Time { return fixedNow }

	users := NewUserService(
		repository.NewUserRepository(f.Users),
		repository.NewEnrollmentRepository(f.Users),
		catalog,
	)

	return &testEnv{
		catalog:   catalog,
		progress:  progress,
		users:     users,
		learning:  NewLearningService(catalog, progress),
		dashboard: NewDashboardService(users, progress),
		courses:   NewCourseService(users, catalog, progress),
	}
}
