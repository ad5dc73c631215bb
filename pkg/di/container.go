package di

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"roomies-api/application/serviceimpl"
	"roomies-api/domain/ports"
	"roomies-api/domain/repositories"
	"roomies-api/domain/services"
	"roomies-api/infrastructure/messaging"
	natspkg "roomies-api/infrastructure/nats"
	"roomies-api/infrastructure/postgres"
	redispkg "roomies-api/infrastructure/redis"
	"roomies-api/infrastructure/storage"
	"roomies-api/infrastructure/websocket"
	"roomies-api/interfaces/api/handlers"
	"roomies-api/pkg/config"
	"roomies-api/pkg/logger"
)

type Container struct {
	Config *config.Config

	// Infrastructure
	DB          *gorm.DB
	RedisClient *redispkg.Client // session store (optional)
	NATSClient  *natspkg.Client  // task event bus (optional)
	Storage     ports.StoragePort

	// Repositories
	UserRepository repositories.UserRepository
	TaskRepository repositories.TaskRepository

	// Services
	UserService    services.UserService
	TaskService    services.TaskService
	SessionService services.SessionService

	// Messaging + WebSocket
	TaskEventPublisher ports.TaskEventPublisherPort
	WSManager          *websocket.Manager
	TaskBroadcaster    *websocket.TaskBroadcaster
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Initialize() error {
	if err := c.initConfig(); err != nil {
		return err
	}

	if err := c.initLogger(); err != nil {
		return err
	}

	if err := c.initInfrastructure(); err != nil {
		return err
	}

	c.initRepositories()
	c.initServices()
	c.initBroadcasting()

	return nil
}

func (c *Container) initConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	c.Config = cfg
	return nil
}

func (c *Container) initLogger() error {
	logConfig := logger.Config{
		Level:      c.Config.Log.Level,
		Format:     c.Config.Log.Format,
		Output:     c.Config.Log.Output,
		FilePath:   c.Config.Log.FilePath,
		MaxSize:    c.Config.Log.MaxSize,
		MaxBackups: c.Config.Log.MaxBackups,
		MaxAge:     c.Config.Log.MaxAge,
		Compress:   c.Config.Log.Compress,
	}

	if err := logger.Init(logConfig); err != nil {
		return err
	}

	logger.Info("Logger initialized",
		"level", c.Config.Log.Level,
		"format", c.Config.Log.Format,
		"output", c.Config.Log.Output,
	)
	return nil
}

func (c *Container) initInfrastructure() error {
	dbConfig := postgres.DatabaseConfig{
		Host:     c.Config.Database.Host,
		Port:     c.Config.Database.Port,
		User:     c.Config.Database.User,
		Password: c.Config.Database.Password,
		DBName:   c.Config.Database.DBName,
		SSLMode:  c.Config.Database.SSLMode,
	}

	db, err := postgres.NewDatabase(dbConfig)
	if err != nil {
		return err
	}
	c.DB = db
	logger.Info("Database connected", "host", c.Config.Database.Host, "db", c.Config.Database.DBName)

	if err := postgres.Migrate(db); err != nil {
		return err
	}
	logger.Info("Database migrated")

	// Redis เป็น optional: ล่มหรือไม่ config ก็ fallback เป็น in-memory sessions
	if c.Config.Redis.Enabled {
		redisClient, err := redispkg.NewClient(redispkg.ClientConfig{
			URL:      c.Config.Redis.URL,
			Password: c.Config.Redis.Password,
			DB:       c.Config.Redis.DB,
		})
		if err != nil {
			logger.Warn("Redis initialization failed (sessions fall back to memory)", "error", err)
		} else {
			c.RedisClient = redisClient
			logger.Info("Redis client initialized", "url", c.Config.Redis.URL)
		}
	}

	// NATS เป็น optional เหมือนกัน: ไม่มี bus ก็แค่ไม่มี live feed
	if c.Config.NATS.Enabled {
		natsClient, err := natspkg.NewClient(natspkg.ClientConfig{URL: c.Config.NATS.URL})
		if err != nil {
			logger.Warn("NATS initialization failed (task events disabled)", "error", err)
		} else {
			c.NATSClient = natsClient
			c.TaskEventPublisher = messaging.NewNATSTaskEventPublisher(natsClient.Conn())
			logger.Info("NATS client initialized", "url", c.Config.NATS.URL)
		}
	}

	return c.initStorage()
}

// initStorage สร้าง avatar storage adapter ตาม config
func (c *Container) initStorage() error {
	switch c.Config.Storage.Type {
	case "s3":
		s3Config := storage.S3StorageConfig{
			Endpoint:  c.Config.Storage.S3.Endpoint,
			AccessKey: c.Config.Storage.S3.AccessKey,
			SecretKey: c.Config.Storage.S3.SecretKey,
			Bucket:    c.Config.Storage.S3.Bucket,
			UseSSL:    c.Config.Storage.S3.UseSSL,
			Region:    c.Config.Storage.S3.Region,
			PublicURL: c.Config.Storage.S3.PublicURL,
		}
		s3Storage, err := storage.NewS3Storage(s3Config)
		if err != nil {
			return fmt.Errorf("failed to initialize S3 storage: %w", err)
		}
		c.Storage = s3Storage
		logger.Info("S3 storage initialized",
			"endpoint", c.Config.Storage.S3.Endpoint,
			"bucket", c.Config.Storage.S3.Bucket,
		)

	default:
		localConfig := storage.LocalStorageConfig{
			BasePath: c.Config.Storage.BasePath,
			BaseURL:  c.Config.Storage.BaseURL,
		}
		localStorage, err := storage.NewLocalStorage(localConfig)
		if err != nil {
			return fmt.Errorf("failed to initialize local storage: %w", err)
		}
		c.Storage = localStorage
		logger.Info("Local storage initialized", "path", c.Config.Storage.BasePath)
	}

	return nil
}

func (c *Container) initRepositories() {
	c.UserRepository = postgres.NewUserRepository(c.DB)
	c.TaskRepository = postgres.NewTaskRepository(c.DB)
	logger.Info("Repositories initialized")
}

func (c *Container) initServices() {
	c.UserService = serviceimpl.NewUserService(c.UserRepository, c.Config.JWT.Secret)
	c.TaskService = serviceimpl.NewTaskService(c.TaskRepository, c.UserRepository, c.TaskEventPublisher)
	c.SessionService = serviceimpl.NewSessionService(
		c.RedisClient,
		time.Duration(c.Config.Session.MaxAge)*time.Second,
	)
	logger.Info("Services initialized", "session_store", c.sessionStoreName())
}

// initBroadcasting ต่อ task events เข้า websocket clients (เฉพาะตอนมี NATS)
func (c *Container) initBroadcasting() {
	c.WSManager = websocket.NewManager()

	if c.NATSClient == nil {
		logger.Warn("Task broadcasting disabled (NATS not available)")
		return
	}

	subscriber := messaging.NewNATSTaskEventSubscriber(c.NATSClient.Conn())
	c.TaskBroadcaster = websocket.NewTaskBroadcaster(subscriber, c.WSManager)
	if err := c.TaskBroadcaster.Start(); err != nil {
		logger.Warn("Task broadcaster failed to start", "error", err)
		c.TaskBroadcaster = nil
		return
	}
	logger.Info("Task broadcaster started")
}

func (c *Container) sessionStoreName() string {
	if c.RedisClient != nil {
		return "redis"
	}
	return "memory"
}

func (c *Container) GetConfig() *config.Config {
	return c.Config
}

// GetHandlerServices รวม services สำหรับสร้าง handlers
func (c *Container) GetHandlerServices() *handlers.Services {
	return &handlers.Services{
		UserService:    c.UserService,
		TaskService:    c.TaskService,
		SessionService: c.SessionService,
		StoragePort:    c.Storage,
		JWTSecret:      c.Config.JWT.Secret,
		SessionCookie:  c.Config.Session.CookieName,
		SessionMaxAge:  c.Config.Session.MaxAge,
	}
}

func (c *Container) Cleanup() error {
	if c.TaskBroadcaster != nil {
		c.TaskBroadcaster.Stop()
	}

	if c.NATSClient != nil {
		if err := c.NATSClient.Close(); err != nil {
			logger.Warn("NATS close failed", "error", err)
		}
	}

	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			logger.Warn("Redis close failed", "error", err)
		}
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err == nil {
			return sqlDB.Close()
		}
	}

	return nil
}
