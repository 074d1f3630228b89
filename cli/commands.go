// Package cli implements the inkwell subcommands: running the API server
// and managing the Badger database underneath it.
package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"inkwell/app/auth"
	"inkwell/app/routes"
	"inkwell/config"

	"github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// HandleCommand dispatches a CLI subcommand.
func HandleCommand(args []string) {
	cmd := args[0]
	switch cmd {
	case "serve":
		serve()
	case "init":
		initDB()
	case "clean":
		clean()
	case "backup":
		backup()
	case "restore":
		if len(args) < 2 {
			fmt.Println("Error: backup file path required for restore")
			os.Exit(1)
		}
		restore(args[1])
	}
}

func loadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	return cfg
}

// serve runs the API server until SIGINT/SIGTERM, then shuts down
// gracefully.
func serve() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	cfg := loadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	db, err := badger.Open(badger.DefaultOptions(cfg.DB.Path).WithLogger(nil))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	defer db.Close()

	tokens := auth.NewTokenManager(cfg.Auth.Secret, cfg.Auth.TokenTTL)
	router := routes.SetupRoutes(db, tokens, cfg.CORS.Origins)

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router,
	}

	go func() {
		log.Info().Str("addr", cfg.Server.Addr).Msg("starting blog API server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// initDB initializes a new empty database
func initDB() {
	cfg := loadConfig()
	dbPath := cfg.DB.Path

	if _, err := os.Stat(dbPath); err == nil {
		fmt.Println("Database already exists. Use 'clean' first if you want to reinitialize.")
		return
	}

	if err := os.MkdirAll(dbPath, 0755); err != nil {
		log.Fatal().Err(err).Msg("failed to create database directory")
	}

	db, err := badger.Open(badger.DefaultOptions(dbPath).WithLogger(nil))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}
	defer db.Close()

	fmt.Println("Database initialized successfully")
}

// clean removes the database
func clean() {
	cfg := loadConfig()
	dbPath := cfg.DB.Path

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		fmt.Println("Database is already clean (does not exist)")
		return
	}

	fmt.Print("Are you sure you want to clean the database? This cannot be undone. [y/N] ")
	var response string
	fmt.Scanln(&response)
	if response != "y" && response != "Y" {
		fmt.Println("Operation cancelled")
		return
	}

	if err := os.RemoveAll(dbPath); err != nil {
		log.Fatal().Err(err).Msg("failed to clean database")
	}
	fmt.Println("Database cleaned successfully")
}

// backup creates a backup of the database
func backup() {
	cfg := loadConfig()
	dbPath := cfg.DB.Path

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		fmt.Println("No database exists to backup")
		return
	}

	backupDir := "data/backups"
	if err := os.MkdirAll(backupDir, 0755); err != nil {
		log.Fatal().Err(err).Msg("failed to create backup directory")
	}

	db, err := badger.Open(badger.DefaultOptions(dbPath).WithLogger(nil))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	defer db.Close()

	backupFile := filepath.Join(backupDir, fmt.Sprintf("backup_%d.db", time.Now().Unix()))
	f, err := os.Create(backupFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create backup file")
	}
	defer f.Close()

	if _, err := db.Backup(f, 0); err != nil {
		log.Fatal().Err(err).Msg("failed to backup database")
	}

	fmt.Printf("Database backed up successfully to %s\n", backupFile)
}

// restore restores the database from a backup
func restore(backupFile string) {
	cfg := loadConfig()
	dbPath := cfg.DB.Path

	if _, err := os.Stat(backupFile); os.IsNotExist(err) {
		fmt.Printf("Backup file does not exist: %s\n", backupFile)
		return
	}

	if _, err := os.Stat(dbPath); err == nil {
		fmt.Print("Existing database found. Do you want to replace it? [y/N] ")
		var response string
		fmt.Scanln(&response)
		if response != "y" && response != "Y" {
			fmt.Println("Operation cancelled")
			return
		}
		if err := os.RemoveAll(dbPath); err != nil {
			log.Fatal().Err(err).Msg("failed to remove existing database")
		}
	}

	if err := os.MkdirAll(dbPath, 0755); err != nil {
		log.Fatal().Err(err).Msg("failed to create database directory")
	}

	db, err := badger.Open(badger.DefaultOptions(dbPath).WithLogger(nil))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	defer db.Close()

	f, err := os.Open(backupFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open backup file")
	}
	defer f.Close()

	if err := db.Load(f, 4); err != nil {
		log.Fatal().Err(err).Msg("failed to restore database")
	}

	fmt.Println("Database restored successfully")
}
