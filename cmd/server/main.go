package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/pitchlab/mocap-backend-go/internal/api"
	"github.com/pitchlab/mocap-backend-go/internal/config"
	"github.com/pitchlab/mocap-backend-go/internal/database"
	"github.com/pitchlab/mocap-backend-go/internal/monitoring"
	"github.com/pitchlab/mocap-backend-go/internal/service"
)

func main() {
	// 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// 初始化数据库
	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
		log.Fatal("Failed to create data directory:", err)
	}
	db, err := database.Open(database.Config{Path: cfg.DBPath})
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer db.Close()

	// 初始化动作数据服务
	motionService := service.NewMotionService(monitoring.NewLogObserver(), nil, service.NewDatasetStore())

	// 初始化路由
	router := api.SetupRouter(cfg, db, motionService)

	// 启动服务器
	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
