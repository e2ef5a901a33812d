// @title Scales Practice 后端 API
// @version 1.0
// @description 音阶与琶音练习集生成服务。
// @termsOfService http://swagger.io/terms/

// @contact.name API支持
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8000
// @BasePath /

package main

import (
	"flag"
	"log"

	"scales_practice_backend/internal/app"
	"scales_practice_backend/internal/config"
	"scales_practice_backend/pkg/configwatcher"
	"scales_practice_backend/pkg/logger"
)

func main() {
	// 命令行参数
	migrateOnly := flag.Bool("migrate-only", false, "只执行目录初始化，完成后退出")
	migrate := flag.Bool("migrate", false, "启动时执行目录初始化")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 设置迁移标志
	cfg.ForceMigrate = *migrate || *migrateOnly
	cfg.MigrateOnly = *migrateOnly

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	// 初始化完成后直接退出
	if *migrateOnly {
		log.Println("目录初始化完成，退出程序")
		return
	}

	go configwatcher.WatchConfig("configs/config.yaml", func(newCfg *config.Config) {
		*application.Config = *newCfg
	})

	application.Run()
}
