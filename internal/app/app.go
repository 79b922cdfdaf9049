package app

import (
	"context"
	"fmt"
	"os"
	"syscall"

	"github.com/rs/zerolog"
	"golang.org/x/term"

	"github.com/andy/billfold/internal/config"
	"github.com/andy/billfold/internal/crypto"
	"github.com/andy/billfold/internal/id"
	"github.com/andy/billfold/internal/pdf"
	"github.com/andy/billfold/internal/repository"
	"github.com/andy/billfold/internal/service"
	"github.com/andy/billfold/internal/store"
)

// App is the dependency injection container for all application components
type App struct {
	Config *config.Config
	DB     *store.DB
	KV     store.KV
	Log    zerolog.Logger
	IDs    id.Provider

	// Repositories
	BusinessRepo repository.BusinessRepository
	ClientRepo   repository.ClientRepository
	InvoiceRepo  repository.InvoiceRepository
	SettingsRepo repository.SettingsRepository

	// Services
	Dashboard *service.DashboardService
	PDF       *pdf.Generator

	logFile *os.File
}

// New creates a new App instance, initializing all dependencies
// It handles:
// 1. Loading config
// 2. Getting encryption key from keyring
// 3. Opening database
// 4. Running migrations
// 5. Creating repositories and services
func New(ctx context.Context) (*App, error) {
	cfg, err := config.LoadDefault()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return NewWithConfig(ctx, cfg)
}

// NewWithConfig creates an App with a provided config (useful for testing)
func NewWithConfig(ctx context.Context, cfg *config.Config) (*App, error) {
	// Ensure all necessary directories exist
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("failed to create directories: %w", err)
	}

	// Log to a file: stdout belongs to the TUI
	logFile, err := os.OpenFile(cfg.Log.Path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	logger := zerolog.New(logFile).With().Timestamp().Logger()

	// Get keyring for secure password storage
	keyring := crypto.NewKeyring()

	// Try to get existing encryption key
	password, err := keyring.GetKey()
	if err != nil {
		// No key exists, prompt user to set one
		fmt.Println("Setting up database encryption for the first time...")
		password, err = promptForPassword()
		if err != nil {
			logFile.Close()
			return nil, fmt.Errorf("failed to set password: %w", err)
		}

		// Store the key in keyring
		if err := keyring.SetKey(password); err != nil {
			logFile.Close()
			return nil, fmt.Errorf("failed to store encryption key: %w", err)
		}
	}

	// Open the database with encryption
	database, err := store.Open(cfg.Database.Path, password)
	if err != nil {
		logFile.Close()
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Run migrations to ensure schema is up to date
	if err := database.RunMigrations(); err != nil {
		database.Close()
		logFile.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	kv := store.NewKV(database)
	ids := id.NewProvider()

	// Create repositories
	businessRepo := repository.NewBusinessRepo(kv)
	clientRepo := repository.NewClientRepo(kv, ids)
	invoiceRepo := repository.NewInvoiceRepo(kv)
	settingsRepo := repository.NewSettingsRepo(kv)

	logger.Info().Str("db", cfg.Database.Path).Msg("app initialized")

	return &App{
		Config:       cfg,
		DB:           database,
		KV:           kv,
		Log:          logger,
		IDs:          ids,
		BusinessRepo: businessRepo,
		ClientRepo:   clientRepo,
		InvoiceRepo:  invoiceRepo,
		SettingsRepo: settingsRepo,
		Dashboard:    service.NewDashboardService(invoiceRepo),
		PDF:          pdf.NewGenerator(),
		logFile:      logFile,
	}, nil
}

// NewEditor creates a fresh invoice editing session.
func (a *App) NewEditor() *service.Editor {
	return service.NewEditor(a.InvoiceRepo, a.BusinessRepo, a.IDs, a.Log)
}

// Close cleanly shuts down the application
func (a *App) Close() error {
	var err error
	if a.DB != nil {
		err = a.DB.Close()
	}
	if a.logFile != nil {
		a.logFile.Close()
	}
	return err
}

// SaveConfig saves the current configuration to disk
func (a *App) SaveConfig() error {
	return a.Config.Save(config.DefaultConfigPath())
}

// promptForPassword prompts user for a new database password (first run)
// This should be called when keyring has no stored key
func promptForPassword() (string, error) {
	fmt.Println()
	fmt.Println("Your invoice data will be encrypted with a password.")
	fmt.Println("This password will be stored securely in your system keyring.")
	fmt.Println()
	fmt.Print("Enter a password for database encryption: ")

	// Read password securely (no echo)
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println() // New line after password input
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	if len(password) == 0 {
		return "", fmt.Errorf("password cannot be empty")
	}

	// Confirm password
	fmt.Print("Confirm password: ")
	confirm, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println() // New line after confirmation
	if err != nil {
		return "", fmt.Errorf("failed to read confirmation: %w", err)
	}

	// Check if passwords match
	if string(password) != string(confirm) {
		return "", fmt.Errorf("passwords do not match")
	}

	fmt.Println()
	fmt.Println("✓ Database encryption configured successfully")
	fmt.Println()

	return string(password), nil
}
