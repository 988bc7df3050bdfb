package app

import (
	"context"
	"educanvas_backend/internal/config"
	"educanvas_backend/internal/controller"
	"educanvas_backend/internal/middleware"
	"educanvas_backend/internal/repository"
	"educanvas_backend/internal/seed"
	"educanvas_backend/internal/service"
	"educanvas_backend/internal/util"
	"educanvas_backend/pkg/async"
	"educanvas_backend/pkg/configwatcher"
	"educanvas_backend/pkg/database"
	"educanvas_backend/pkg/logger"
	"educanvas_backend/pkg/monitoring"
	"educanvas_backend/pkg/security"
	"educanvas_backend/pkg/tracing"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	// 配置文件所在目录，用于热更新
	ConfigDir string
	Router    *gin.Engine
	DB        *gorm.DB
	Redis     *redis.Client
	Tracer    *sdktrace.TracerProvider

	latency         *async.Delayer
	limiter         *security.RateLimiter
	configCallbacks []func(*config.Config)
	stop            chan struct{}
}

type repositories struct {
	course     *repository.CourseRepository
	user       *repository.UserRepository
	enrollment *repository.EnrollmentRepository
	progress   repository.ProgressRepository
}

type services struct {
	catalog   *service.CatalogService
	progress  *service.ProgressService
	user      *service.UserService
	course    *service.CourseService
	learning  *service.LearningService
	dashboard *service.DashboardService
}

type controllers struct {
	course    *controller.CourseController
	progress  *controller.ProgressController
	learning  *controller.LearningController
	dashboard *controller.DashboardController
	user      *controller.UserController
	health    *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// applyConfig 配置热更新，只调整可在运行期变更的部分
func (a *App) applyConfig(cfg *config.Config) {
	for _, callback := range a.configCallbacks {
		callback(cfg)
	}
}

// initProgressStore 按 storage.driver 选择进度存储
func (a *App) initProgressStore(cfg *config.Config) (repository.ProgressRepository, error) {
	switch cfg.Storage.Driver {
	case util.StorageMemory:
		return repository.NewMemoryProgressRepository(), nil

	case util.StorageMySQL:
		db, err := database.InitDB(&cfg.Database, cfg.Server.Mode)
		if err != nil {
			return nil, fmt.Errorf("init database: %w", err)
		}
		a.DB = db

		repo := repository.NewGormProgressRepository(db)
		if err := repo.Migrate(); err != nil {
			return nil, fmt.Errorf("migrate progress tables: %w", err)
		}
		return repo, nil

	case util.StorageRedis:
		rdb, err := database.InitRedis(&cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("init redis: %w", err)
		}
		a.Redis = rdb
		return repository.NewRedisProgressRepository(rdb, cfg.Redis.Prefix), nil
	}

	return nil, fmt.Errorf("%w: %q", util.ErrUnknownStorageDriver, cfg.Storage.Driver)
}

func (a *App) initRepositories(f *seed.Fixture, progress repository.ProgressRepository) *repositories {
	return &repositories{
		course:     repository.NewCourseRepository(f.Courses),
		user:       repository.NewUserRepository(f.Users),
		enrollment: repository.NewEnrollmentRepository(f.Users),
		progress:   progress,
	}
}

func (a *App) initServices(repos *repositories) *services {
	s := &services{}

	s.catalog = service.NewCatalogService(repos.course)
	s.progress = service.NewProgressService(repos.progress, s.catalog)
	s.user = service.NewUserService(repos.user, repos.enrollment, s.catalog)
	s.course = service.NewCourseService(s.user, s.catalog, s.progress)
	s.learning = service.NewLearningService(s.catalog, s.progress)
	s.dashboard = service.NewDashboardService(s.user, s.progress)

	return s
}

func (a *App) initControllers(s *services, repos *repositories) *controllers {
	return &controllers{
		course:    controller.NewCourseController(s.catalog, s.course, s.user, a.latency),
		progress:  controller.NewProgressController(s.progress),
		learning:  controller.NewLearningController(s.learning),
		dashboard: controller.NewDashboardController(s.dashboard),
		user:      controller.NewUserController(s.user),
		health:    controller.NewHealthController(a.DB, a.Redis, repos.progress),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(middleware.RequestID())
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(a.limiter.Middleware())

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) (*App, error) {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	app := &App{
		Config:  cfg,
		latency: async.NewDelayer(cfg.Latency.Catalog),
		limiter: security.NewRateLimiter(cfg.RateLimit.MaxRequests, cfg.RateLimit.Window()),
		stop:    make(chan struct{}),
	}

	src, err := seed.NewSource(&cfg.Fixture)
	if err != nil {
		return nil, err
	}
	loadCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	fixture, err := seed.Load(loadCtx, src)
	if err != nil {
		return nil, err
	}

	progressStore, err := app.initProgressStore(cfg)
	if err != nil {
		return nil, err
	}
	logger.Log.Info("Progress storage ready", zap.String("driver", progressStore.Driver()))

	repos := app.initRepositories(fixture, progressStore)
	logger.Log.Info("Catalog ready", zap.Int("courses", repos.course.Count()))
	services := app.initServices(repos)
	if err := services.progress.Import(loadCtx, fixture.Progress); err != nil {
		return nil, err
	}
	controllers := app.initControllers(services, repos)

	// 监控初始化
	monitoring.Init()

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer(cfg.Tracing.ServiceName, cfg.Tracing.CollectorEndpoint)
		if err != nil {
			return nil, fmt.Errorf("init tracing: %w", err)
		}
		app.Tracer = tp
	}

	if cfg.Server.Mode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, controllers, repos, cfg)

	app.RegisterConfigCallback(logger.Reload)
	app.RegisterConfigCallback(func(c *config.Config) {
		app.latency.Set(c.Latency.Catalog)
		app.limiter.Update(c.RateLimit.MaxRequests, c.RateLimit.Window())
		logger.Log.Info("Runtime settings updated",
			zap.Duration("catalog_latency", c.Latency.Catalog),
			zap.Int("rate_limit", c.RateLimit.MaxRequests),
		)
	})

	app.limiter.StartCleanup(app.stop)

	return app, nil
}

// Close 释放后台任务与外部连接
func (a *App) Close() {
	select {
	case <-a.stop:
	default:
		close(a.stop)
	}

	if a.Tracer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.Tracer.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}

	if a.DB != nil {
		if sqlDB, err := a.DB.DB(); err == nil {
			sqlDB.Close()
		}
	}
	if a.Redis != nil {
		a.Redis.Close()
	}

	logger.Log.Sync()
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if a.ConfigDir != "" {
		configFile := filepath.Join(a.ConfigDir, "config.yaml")
		if err := configwatcher.WatchConfig(ctx, configFile, a.applyConfig); err != nil {
			logger.Log.Warn("Config hot reload disabled", zap.String("file", configFile), zap.Error(err))
		}
	}

	// 启动服务器
	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal("listen", zap.Error(err))
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}

	a.Close()
	logger.Log.Info("Server exiting")
}
