/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-09-02 10:35:28
 * @LastEditTime: 2026-02-12 16:15:28
 * @LastEditors: 安知鱼
 */
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/anzhiyu-c/arsip-app/internal/app/listener"
	"github.com/anzhiyu-c/arsip-app/internal/app/middleware"
	"github.com/anzhiyu-c/arsip-app/internal/app/task"
	"github.com/anzhiyu-c/arsip-app/internal/infra/persistence/database"
	ent_impl "github.com/anzhiyu-c/arsip-app/internal/infra/persistence/ent"
	"github.com/anzhiyu-c/arsip-app/internal/infra/router"
	"github.com/anzhiyu-c/arsip-app/internal/infra/storage"
	"github.com/anzhiyu-c/arsip-app/internal/pkg/changefeed"
	"github.com/anzhiyu-c/arsip-app/internal/pkg/event"
	"github.com/anzhiyu-c/arsip-app/internal/pkg/version"
	"github.com/anzhiyu-c/arsip-app/pkg/config"
	"github.com/anzhiyu-c/arsip-app/pkg/constant"
	agenda_handler "github.com/anzhiyu-c/arsip-app/pkg/handler/agenda"
	archive_handler "github.com/anzhiyu-c/arsip-app/pkg/handler/archive"
	audit_handler "github.com/anzhiyu-c/arsip-app/pkg/handler/audit"
	lifecycle_handler "github.com/anzhiyu-c/arsip-app/pkg/handler/lifecycle"
	realtime_handler "github.com/anzhiyu-c/arsip-app/pkg/handler/realtime"
	reference_handler "github.com/anzhiyu-c/arsip-app/pkg/handler/reference"
	"github.com/anzhiyu-c/arsip-app/pkg/idgen"
	agenda_service "github.com/anzhiyu-c/arsip-app/pkg/service/agenda"
	archive_service "github.com/anzhiyu-c/arsip-app/pkg/service/archive"
	audit_service "github.com/anzhiyu-c/arsip-app/pkg/service/audit"
	lifecycle_service "github.com/anzhiyu-c/arsip-app/pkg/service/lifecycle"
	reference_service "github.com/anzhiyu-c/arsip-app/pkg/service/reference"
)

// App 聚合了应用运行所需的全部组件。
type App struct {
	cfg        *config.Config
	engine     *gin.Engine
	taskBroker *task.Broker
	sqlDB      *sql.DB
	eventBus   *event.EventBus
	appVersion string
}

func (a *App) PrintBanner() {
	banner := `

       █████╗ ██████╗ ███████╗██╗██████╗
      ██╔══██╗██╔══██╗██╔════╝██║██╔══██╗
      ███████║██████╔╝███████╗██║██████╔╝
      ██╔══██║██╔══██╗╚════██║██║██╔═══╝
      ██║  ██║██║  ██║███████║██║██║
      ╚═╝  ╚═╝╚═╝  ╚═╝╚══════╝╚═╝╚═╝

`
	log.Println(banner)
	log.Println("--------------------------------------------------------")
	log.Printf(" Arsip App - Version: %s", version.GetVersionString())
	log.Println("--------------------------------------------------------")
}

// NewApp 是应用的构造函数，它执行所有的初始化和依赖注入工作
func NewApp() (*App, func(), error) {
	// 在初始化早期获取版本信息
	appVersion := version.GetVersion()

	// --- Phase 1: 加载外部配置 ---
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("加载配置失败: %w", err)
	}

	// --- Phase 2: 初始化基础设施 ---
	sqlDB, err := database.NewSQLDB(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("创建数据库连接池失败: %w", err)
	}
	entClient, err := database.NewEntClient(sqlDB, cfg)
	if err != nil {
		sqlDB.Close()
		return nil, nil, err
	}

	// Redis 是变更通知的载体，连接失败直接终止启动
	redisClient, err := database.NewRedisClient(context.Background(), cfg)
	if err != nil {
		sqlDB.Close()
		return nil, nil, fmt.Errorf("redis 初始化失败: %w", err)
	}

	cleanup := func() {
		log.Println("执行清理操作：关闭数据库连接...")
		sqlDB.Close()
		log.Println("关闭 Redis 连接...")
		redisClient.Close()
	}

	// --- Phase 2.5: 初始化 ID 编码器 ---
	if err := idgen.InitSqidsEncoder(); err != nil {
		return nil, cleanup, fmt.Errorf("初始化 ID 编码器失败: %w", err)
	}
	log.Println("✅ ID 编码器初始化成功")

	// --- Phase 3: 初始化数据仓库层 ---
	docRepo := ent_impl.NewEntDocumentRepository(entClient)
	partnerRepo := ent_impl.NewEntPartnerRepository(entClient)
	staffRepo := ent_impl.NewEntStaffRepository(entClient)
	advisorRepo := ent_impl.NewEntAdvisorRepository(entClient)
	agendaRepo := ent_impl.NewEntAgendaRepository(entClient)
	auditRepo := ent_impl.NewEntAuditRepository(entClient)
	lifecycleRepo := ent_impl.NewEntLifecycleRepository(entClient)

	// --- Phase 4: 初始化存储提供者 ---
	var provider storage.IStorageProvider
	switch driver := cfg.GetString(config.KeyStorageDriver); driver {
	case "", "local":
		basePath := cfg.GetString(config.KeyStorageBasePath)
		if basePath == "" {
			basePath = "./data/storage"
		}
		provider = storage.NewLocalProvider(basePath, cfg.GetString(config.KeyStorageSigningSecret))
		log.Printf("✅ 本地存储已就绪, 根目录: %s", basePath)
	case "s3":
		provider, err = storage.NewAWSS3Provider(context.Background(), storage.S3Config{
			Server:    cfg.GetString(config.KeyS3Server),
			Bucket:    cfg.GetString(config.KeyStorageBucket),
			AccessKey: cfg.GetString(config.KeyS3AccessKey),
			SecretKey: cfg.GetString(config.KeyS3SecretKey),
		})
		if err != nil {
			return nil, cleanup, fmt.Errorf("初始化 S3 存储失败: %w", err)
		}
		log.Printf("✅ S3 存储已就绪, 桶: %s", cfg.GetString(config.KeyStorageBucket))
	default:
		return nil, cleanup, fmt.Errorf("不支持的存储驱动: %s", driver)
	}

	// --- Phase 5: 初始化业务逻辑层 ---
	eventBus := event.NewEventBus()
	feed := changefeed.NewFeed(redisClient)

	auditSvc := audit_service.NewAuditService(eventBus, auditRepo)
	// 构造时即完成订阅，审计流水的落库在事件总线上异步进行
	_ = listener.NewAuditListener(eventBus, auditRepo)

	maxUpload := cfg.GetInt64(config.KeyStorageMaxUploadSize)
	if maxUpload <= 0 {
		maxUpload = constant.DefaultMaxUploadBytes
	}
	archiveSvc := archive_service.NewArchiveService(docRepo, partnerRepo, provider, auditSvc, feed, maxUpload)
	referenceSvc := reference_service.NewReferenceService(partnerRepo, staffRepo, advisorRepo, auditSvc, feed)
	agendaSvc := agenda_service.NewAgendaService(agendaRepo, partnerRepo, auditSvc, feed)
	lifecycleSvc := lifecycle_service.NewLifecycleService(lifecycleRepo, auditSvc, feed)

	taskBroker := task.NewBroker(provider, docRepo)

	// --- Phase 6: 初始化中间件与处理器 ---
	mw := middleware.NewMiddleware([]byte(cfg.GetString(config.KeyJWTSecret)))

	archiveHandler := archive_handler.NewHandler(archiveSvc, provider)
	referenceHandler := reference_handler.NewHandler(referenceSvc)
	agendaHandler := agenda_handler.NewHandler(agendaSvc)
	lifecycleHandler := lifecycle_handler.NewHandler(lifecycleSvc)
	auditHandler := audit_handler.NewHandler(auditSvc)
	realtimeHandler := realtime_handler.NewHandler(feed)

	// --- Phase 7: 初始化路由 ---
	appRouter := router.NewRouter(
		archiveHandler,
		referenceHandler,
		agendaHandler,
		lifecycleHandler,
		auditHandler,
		realtimeHandler,
		mw,
	)

	// --- Phase 8: 配置 Gin 引擎 ---
	if cfg.GetBool(config.KeyServerDebug) {
		gin.SetMode(gin.DebugMode)
		log.Println("运行模式: Debug (Gin 将打印详细路由日志)")
	} else {
		gin.SetMode(gin.ReleaseMode)
		log.Println("运行模式: Release (Gin 启动日志已禁用)")
	}

	engine := gin.Default()
	err = engine.SetTrustedProxies([]string{"127.0.0.1", "::1", "10.0.0.0/8", "172.16.0.0/12", "192.168.0.0/16"})
	if err != nil {
		return nil, cleanup, fmt.Errorf("设置信任代理失败: %w", err)
	}
	engine.ForwardedByClientIP = true
	engine.Use(middleware.Cors())
	appRouter.Setup(engine)

	app := &App{
		cfg:        cfg,
		engine:     engine,
		taskBroker: taskBroker,
		sqlDB:      sqlDB,
		eventBus:   eventBus,
		appVersion: appVersion,
	}

	return app, cleanup, nil
}

func (a *App) Config() *config.Config {
	return a.cfg
}

func (a *App) Engine() *gin.Engine {
	return a.engine
}

func (a *App) EventBus() *event.EventBus {
	return a.eventBus
}

func (a *App) Run() error {
	if err := a.taskBroker.RegisterJobs(); err != nil {
		return fmt.Errorf("注册后台任务失败: %w", err)
	}
	a.taskBroker.Start()

	port := a.cfg.GetString(config.KeyServerPort)
	if port == "" {
		port = "8091"
	}
	fmt.Printf("应用程序启动成功，正在监听端口: %s\n", port)

	return a.engine.Run(":" + port)
}

func (a *App) Stop() {
	if a.taskBroker != nil {
		a.taskBroker.Stop()
		log.Println("任务调度器已停止。")
	}
	if a.eventBus != nil {
		a.eventBus.Shutdown()
		log.Println("事件总线已停止。")
	}
}
