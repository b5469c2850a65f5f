// Package app provides the dependency injection container for the application.
package app

import (
	"os"
	"os/user"
	"strings"

	"github.com/runoshun/kipp/internal/chat"
	"github.com/runoshun/kipp/internal/domain"
	"github.com/runoshun/kipp/internal/infra/config"
	"github.com/runoshun/kipp/internal/infra/logging"
	"github.com/runoshun/kipp/internal/storage"
	"github.com/runoshun/kipp/internal/usecase"
)

// UsernameEnv overrides the name shown on the user's badge.
const UsernameEnv = "KIPP_CHAT_TEST_USERNAME"

// TaskListKind tags task list files written by the store.
const TaskListKind = "tasklist"

// Config holds the application paths.
type Config struct {
	WorkDir string // Directory holding the local .kipp.toml
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Store         domain.TaskListStore
	Logger        domain.Logger
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager

	// Pointer fields
	AppConfig *domain.Config

	// Configuration
	Config Config

	closeLogger func() error
}

// New creates a new Container for the given working directory.
// Config errors are returned; warnings are left on AppConfig.Warnings.
func New(dir string) (*Container, error) {
	cfg := Config{WorkDir: dir}

	configLoader := config.NewLoader(dir)
	appConfig, err := configLoader.Load()
	if err != nil {
		return nil, err
	}

	logger := logging.New(appConfig.Log.Dir, logging.ParseLevel(appConfig.Log.Level))

	return &Container{
		Store:         storage.New[domain.TaskListRecord](TaskListKind),
		Logger:        logger,
		ConfigLoader:  configLoader,
		ConfigManager: config.NewManager(dir),
		AppConfig:     appConfig,
		Config:        cfg,
		closeLogger:   logger.Close,
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg Config, appConfig *domain.Config, store domain.TaskListStore, logger domain.Logger) *Container {
	if appConfig == nil {
		appConfig = domain.NewDefaultConfig()
	}
	return &Container{
		Store:     store,
		Logger:    logger,
		AppConfig: appConfig,
		Config:    cfg,
	}
}

// Close releases resources held by the container.
func (c *Container) Close() error {
	if c.closeLogger == nil {
		return nil
	}
	return c.closeLogger()
}

// NewSession returns a chat session bound to the configured store.
func (c *Container) NewSession() *chat.Session {
	return chat.NewSession(c.Store, chat.Config{
		StorePath: c.AppConfig.Storage.Path,
		OnRepeat:  c.AppConfig.Completion.OnRepeat,
	}, c.Logger)
}

// Username returns the name shown on the user's badge.
// The environment override wins, then config, then the OS account.
func (c *Container) Username() string {
	if name := strings.TrimSpace(os.Getenv(UsernameEnv)); name != "" {
		return name
	}
	if c.AppConfig.User.Name != "" {
		return c.AppConfig.User.Name
	}
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return domain.DefaultUserName
}

// UseCase factory methods

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.ConfigLoader)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}
