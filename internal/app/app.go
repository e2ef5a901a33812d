package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"scales_practice_backend/internal/config"
	"scales_practice_backend/internal/controller"
	"scales_practice_backend/internal/repository"
	"scales_practice_backend/internal/service"
	"scales_practice_backend/pkg/database"
	"scales_practice_backend/pkg/logger"
	"scales_practice_backend/pkg/monitoring"
	"scales_practice_backend/pkg/security"
	"scales_practice_backend/pkg/tracing"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	services        *services
	configCallbacks []func(*config.Config)
}

type repositories struct {
	scale        *repository.ScaleRepository
	arpeggio     *repository.ArpeggioRepository
	practice     *repository.PracticeRepository
	setting      *repository.SettingRepository
	selectionSet *repository.SelectionSetRepository
}

type services struct {
	catalog      *service.CatalogService
	practice     *service.PracticeService
	settings     *service.SettingsService
	selectionSet *service.SelectionSetService
}

type controllers struct {
	scale        *controller.ScaleController
	arpeggio     *controller.ArpeggioController
	practice     *controller.PracticeController
	settings     *controller.SettingsController
	selectionSet *controller.SelectionSetController
	health       *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		scale:        repository.NewScaleRepository(db),
		arpeggio:     repository.NewArpeggioRepository(db),
		practice:     repository.NewPracticeRepository(db),
		setting:      repository.NewSettingRepository(db),
		selectionSet: repository.NewSelectionSetRepository(db),
	}
}

func (a *App) initServices(repos *repositories) *services {
	return &services{
		catalog:      service.NewCatalogService(repos.scale, repos.arpeggio),
		practice:     service.NewPracticeService(repos.scale, repos.arpeggio, repos.practice, repos.setting),
		settings:     service.NewSettingsService(repos.setting),
		selectionSet: service.NewSelectionSetService(repos.selectionSet, repos.scale, repos.arpeggio),
	}
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		scale:        controller.NewScaleController(s.catalog),
		arpeggio:     controller.NewArpeggioController(s.catalog),
		practice:     controller.NewPracticeController(s.practice),
		settings:     controller.NewSettingsController(s.settings),
		selectionSet: controller.NewSelectionSetController(s.selectionSet),
		health:       controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 100000
	}
	windowMinutes := cfg.RateLimit.WindowMinutes
	if windowMinutes <= 0 {
		windowMinutes = 1
	}
	router.Use(security.RateLimiter(maxRequests, time.Duration(windowMinutes)*time.Minute))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	app := &App{
		Config: cfg,
		DB:     db,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos)
	app.services = services
	controllers := app.initControllers(services, db)

	// 启动时目录初始化（-migrate / -migrate-only）
	if cfg.ForceMigrate || cfg.MigrateOnly {
		result, err := services.catalog.InitDatabase()
		if err != nil {
			logger.Log.Fatal("Failed to initialize catalog", zap.Error(err))
		}
		logger.Log.Info("Catalog initialized",
			zap.Int64("scales", result.Scales),
			zap.Int64("arpeggios", result.Arpeggios))
	}

	// 监控初始化
	monitoring.Init()

	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("scales-practice", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		defer func() {
			if err := tp.Shutdown(context.Background()); err != nil {
				logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
			}
		}()
	}

	app.registerRoutes(router, controllers)

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	// 启动服务器
	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
