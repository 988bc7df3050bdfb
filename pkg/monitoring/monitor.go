package monitoring

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "endpoint"},
	)

	LessonsCompleted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "educanvas_lessons_completed_total",
			Help: "Lessons newly marked complete",
		},
		[]string{"course_id"},
	)

	QuizScores = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "educanvas_quiz_score",
			Help:    "Recorded quiz scores",
			Buckets: prometheus.LinearBuckets(0, 10, 11),
		},
		[]string{"course_id"},
	)

	Enrollments = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "educanvas_enrollments_total",
			Help: "New course enrollments",
		},
		[]string{"course_id"},
	)
)

var once sync.Once

// Init 注册指标，重复调用无副作用
func Init() {
	once.Do(func() {
		prometheus.MustRegister(RequestCounter)
		prometheus.MustRegister(RequestDuration)
		prometheus.MustRegister(LessonsCompleted)
		prometheus.MustRegister(QuizScores)
		prometheus.MustRegister(Enrollments)
	})
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start).Seconds()
		status := c.Writer.Status()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}

		RequestCounter.WithLabelValues(
			c.Request.Method,
			endpoint,
			strconv.Itoa(status),
		).Inc()

		RequestDuration.WithLabelValues(
			c.Request.Method,
			endpoint,
		).Observe(duration)
	}
}

func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
