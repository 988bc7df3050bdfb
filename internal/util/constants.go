package util

// 课程详情页展示的日期格式，例如 Jun 15, 2023
const DisplayDateFormat = "Jan 2, 2006"

// 课程卡片简介的最大字符数
const ExcerptLength = 120

// 进度存储驱动
const (
	StorageMemory = "memory"
	StorageMySQL  = "mysql"
	StorageRedis  = "redis"
)

// 课程数据来源
const (
	FixtureEmbed = "embed"
	FixtureFile  = "file"
	FixtureMinio = "minio"
)

const (
	// 演示环境通过请求头指定当前用户
	HeaderUserID  = "X-User-ID"
	ContextUserID = "userID"

	HeaderRequestID = "X-Request-ID"
)

const (
	MinQuizScore = 0
	MaxQuizScore = 100
)
