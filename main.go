// @title EduCanvas 后端 API
// @version 1.0
// @description EduCanvas 在线学习平台的后端服务：课程目录、筛选、学习进度与仪表盘。

// @host localhost:8080
// @BasePath /

package main

import (
	"educanvas_backend/internal/app"
	"educanvas_backend/internal/config"
	"flag"
	"log"
)

func main() {
	// 命令行参数
	configDir := flag.String("config", "configs", "配置文件所在目录")
	checkOnly := flag.Bool("check", false, "只加载配置与课程数据，完成后退出")
	flag.Parse()

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application, err := app.NewApp(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}
	application.ConfigDir = *configDir

	if *checkOnly {
		application.Close()
		log.Println("配置与课程数据校验通过，退出程序")
		return
	}

	application.Run()
}
