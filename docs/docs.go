// Package docs 接口文档，与 controller 中的 swag 注解保持一致
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/health": {
            "get": {
                "description": "检查服务状态",
                "produces": ["application/json"],
                "tags": ["系统"],
                "summary": "健康检查",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/util.Response"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/util.Response"}}
                }
            }
        },
        "/api/users": {
            "get": {
                "produces": ["application/json"],
                "tags": ["用户"],
                "summary": "获取演示用户列表",
                "responses": {
                    "200": {"description": "成功", "schema": {"$ref": "#/definitions/util.Response"}}
                }
            }
        },
        "/api/courses": {
            "get": {
                "description": "按关键字、分类、难度、标签筛选课程，条件之间为“且”关系，同一条件的多个取值为“或”关系",
                "produces": ["application/json"],
                "tags": ["课程"],
                "summary": "获取课程列表",
                "parameters": [
                    {"type": "string", "description": "关键字，匹配标题、描述和标签，不区分大小写", "name": "search", "in": "query"},
                    {"type": "array", "items": {"type": "string"}, "collectionFormat": "multi", "description": "分类", "name": "category", "in": "query"},
                    {"type": "array", "items": {"type": "string", "enum": ["Beginner", "Intermediate", "Advanced"]}, "collectionFormat": "multi", "description": "难度", "name": "difficulty", "in": "query"},
                    {"type": "array", "items": {"type": "string"}, "collectionFormat": "multi", "description": "标签", "name": "tag", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/util.Response"}}
                }
            }
        },
        "/api/courses/facets": {
            "get": {
                "description": "返回全部分类、难度和标签",
                "produces": ["application/json"],
                "tags": ["课程"],
                "summary": "获取课程筛选项",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/util.Response"}}
                }
            }
        },
        "/api/courses/categories": {
            "get": {
                "produces": ["application/json"],
                "tags": ["课程"],
                "summary": "获取课程分类",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/util.Response"}}
                }
            }
        },
        "/api/courses/tags": {
            "get": {
                "produces": ["application/json"],
                "tags": ["课程"],
                "summary": "获取课程标签",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/util.Response"}}
                }
            }
        },
        "/api/courses/{id}": {
            "get": {
                "description": "包含课程大纲、时长、是否已报名以及当前用户的完成度",
                "produces": ["application/json"],
                "tags": ["课程"],
                "summary": "获取课程详情",
                "parameters": [
                    {"type": "string", "description": "用户ID", "name": "X-User-ID", "in": "header"},
                    {"type": "string", "description": "课程ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/util.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/util.Response"}}
                }
            }
        },
        "/api/courses/{id}/enroll": {
            "post": {
                "description": "新报名返回 201，重复报名返回 200",
                "produces": ["application/json"],
                "tags": ["课程"],
                "summary": "报名课程",
                "parameters": [
                    {"type": "string", "description": "用户ID", "name": "X-User-ID", "in": "header"},
                    {"type": "string", "description": "课程ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/util.Response"}},
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/util.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/util.Response"}}
                }
            }
        },
        "/api/courses/{id}/progress": {
            "get": {
                "description": "未学习过的课程返回空进度",
                "produces": ["application/json"],
                "tags": ["学习进度"],
                "summary": "获取课程进度",
                "parameters": [
                    {"type": "string", "description": "用户ID", "name": "X-User-ID", "in": "header"},
                    {"type": "string", "description": "课程ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/util.Response"}}
                }
            }
        },
        "/api/courses/{id}/lessons/{lessonId}/complete": {
            "post": {
                "description": "重复标记不会改变进度",
                "produces": ["application/json"],
                "tags": ["学习进度"],
                "summary": "标记课时完成",
                "parameters": [
                    {"type": "string", "description": "用户ID", "name": "X-User-ID", "in": "header"},
                    {"type": "string", "description": "课程ID", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "课时ID", "name": "lessonId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/util.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/util.Response"}}
                }
            }
        },
        "/api/courses/{id}/quizzes/{quizId}/score": {
            "post": {
                "description": "只接受测验类型的课时，成绩范围 0-100，重复提交覆盖之前的成绩",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["学习进度"],
                "summary": "提交测验成绩",
                "parameters": [
                    {"type": "string", "description": "用户ID", "name": "X-User-ID", "in": "header"},
                    {"type": "string", "description": "课程ID", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "测验课时ID", "name": "quizId", "in": "path", "required": true},
                    {"description": "成绩", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controller.QuizScoreRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/util.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/util.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/util.Response"}}
                }
            }
        },
        "/api/courses/{id}/learn": {
            "get": {
                "description": "返回当前课时、课程大纲、上一个/下一个课时以及完成度",
                "produces": ["application/json"],
                "tags": ["学习"],
                "summary": "获取学习页",
                "parameters": [
                    {"type": "string", "description": "用户ID", "name": "X-User-ID", "in": "header"},
                    {"type": "string", "description": "课程ID", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "description": "模块下标", "name": "module", "in": "query"},
                    {"type": "integer", "description": "课时下标", "name": "lesson", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/util.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/util.Response"}}
                }
            }
        },
        "/api/courses/{id}/learn/next": {
            "post": {
                "description": "将当前课时标记为完成并返回下一个课时，最后一个课时停留原地",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["学习"],
                "summary": "完成当前课时并前进",
                "parameters": [
                    {"type": "string", "description": "用户ID", "name": "X-User-ID", "in": "header"},
                    {"type": "string", "description": "课程ID", "name": "id", "in": "path", "required": true},
                    {"description": "当前课时位置", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.LessonCursor"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/util.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/util.Response"}}
                }
            }
        },
        "/api/dashboard": {
            "get": {
                "description": "获取用户已报名课程及各课程完成度",
                "produces": ["application/json"],
                "tags": ["仪表盘"],
                "summary": "获取仪表盘数据",
                "parameters": [
                    {"type": "string", "description": "用户ID", "name": "X-User-ID", "in": "header"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/util.Response"}}
                }
            }
        },
        "/api/profile": {
            "get": {
                "description": "enrolledCourses 包含运行期间新增的报名",
                "produces": ["application/json"],
                "tags": ["用户"],
                "summary": "获取当前用户信息",
                "parameters": [
                    {"type": "string", "description": "用户ID", "name": "X-User-ID", "in": "header"}
                ],
                "responses": {
                    "200": {"description": "成功", "schema": {"$ref": "#/definitions/util.Response"}},
                    "401": {"description": "未授权", "schema": {"$ref": "#/definitions/util.Response"}}
                }
            }
        },
        "/api/profile/courses": {
            "get": {
                "produces": ["application/json"],
                "tags": ["用户"],
                "summary": "获取已报名课程",
                "parameters": [
                    {"type": "string", "description": "用户ID", "name": "X-User-ID", "in": "header"}
                ],
                "responses": {
                    "200": {"description": "成功", "schema": {"$ref": "#/definitions/util.Response"}}
                }
            }
        }
    },
    "definitions": {
        "controller.QuizScoreRequest": {
            "type": "object",
            "required": ["score"],
            "properties": {
                "score": {"type": "number", "maximum": 100, "minimum": 0}
            }
        },
        "model.LessonCursor": {
            "type": "object",
            "properties": {
                "lesson": {"type": "integer", "minimum": 0},
                "module": {"type": "integer", "minimum": 0}
            }
        },
        "util.Response": {
            "type": "object",
            "properties": {
                "code": {"type": "integer"},
                "data": {},
                "message": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "EduCanvas 后端 API",
	Description:      "EduCanvas 在线学习平台的后端服务：课程目录、筛选、学习进度与仪表盘。",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
