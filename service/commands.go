package service

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"pressroom/app/config"

	"github.com/dgraph-io/badger/v4"
	"github.com/klauspost/compress/gzip"
)

// osExit is a variable to allow testing exit behavior
var osExit = os.Exit

// HandleDBCommand handles db subcommands
func HandleDBCommand(args []string) {
	if len(args) < 1 {
		printDBHelp()
		osExit(1)
	}

	cfg, err := config.Load(configPathFromArgs(args))
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	cmd := args[0]
	switch cmd {
	case "init":
		initDB(cfg.DataDir)
	case "clean":
		clean(cfg.DataDir)
	case "backup":
		backup(cfg.DataDir)
	case "restore":
		if len(args) < 2 {
			fmt.Println("Error: backup file path required for restore")
			osExit(1)
		}
		restore(cfg.DataDir, args[1])
	case "help":
		printDBHelp()
	default:
		fmt.Printf("Unknown db command: %s\n\n", cmd)
		printDBHelp()
		osExit(1)
	}
}

// printDBHelp prints help for db subcommands
func printDBHelp() {
	helpText := `Usage: pressroom db <command> [options]

Commands:
  init                           Initialize a new empty database
  clean                          Remove the blog database
  backup                         Create a gzipped backup of the database
  restore [file]                 Restore database from a backup
  help                           Display this help message
`
	fmt.Println(helpText)
}

// initDB initializes a new empty database
func initDB(dataDir string) {
	if _, err := os.Stat(dataDir); err == nil {
		fmt.Println("Database already exists. Use 'clean' first if you want to reinitialize.")
		return
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create database directory: %v", err)
	}

	opts := badger.DefaultOptions(dataDir)
	db, err := badger.Open(opts)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	fmt.Println("Database initialized successfully")
}

// clean removes the database
func clean(dataDir string) {
	if _, err := os.Stat(dataDir); os.IsNotExist(err) {
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

	if err := os.RemoveAll(dataDir); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}
	fmt.Println("Database cleaned successfully")
}

// backup streams the database through a gzip writer into data/backups
func backup(dataDir string) {
	if _, err := os.Stat(dataDir); os.IsNotExist(err) {
		fmt.Println("No database exists to backup")
		return
	}

	backupDir := "data/backups"
	if err := os.MkdirAll(backupDir, 0755); err != nil {
		log.Fatalf("Failed to create backup directory: %v", err)
	}

	opts := badger.DefaultOptions(dataDir)
	db, err := badger.Open(opts)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	backupFile := filepath.Join(backupDir, fmt.Sprintf("backup_%d.db.gz", time.Now().Unix()))
	f, err := os.Create(backupFile)
	if err != nil {
		log.Fatalf("Failed to create backup file: %v", err)
	}
	defer f.Close()

	gz := gzip.NewWriter(f)
	if _, err := db.Backup(gz, 0); err != nil {
		log.Fatalf("Failed to backup database: %v", err)
	}
	if err := gz.Close(); err != nil {
		log.Fatalf("Failed to finish backup: %v", err)
	}

	fmt.Printf("Database backed up successfully to %s\n", backupFile)
}

// restore restores the database from a gzipped backup
func restore(dataDir, backupFile string) {
	if _, err := os.Stat(backupFile); os.IsNotExist(err) {
		fmt.Printf("Backup file does not exist: %s\n", backupFile)
		return
	}

	if _, err := os.Stat(dataDir); err == nil {
		fmt.Print("Existing database found. Do you want to replace it? [y/N] ")
		var response string
		fmt.Scanln(&response)
		if response != "y" && response != "Y" {
			fmt.Println("Operation cancelled")
			return
		}
		if err := os.RemoveAll(dataDir); err != nil {
			log.Fatalf("Failed to remove existing database: %v", err)
		}
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create database directory: %v", err)
	}

	opts := badger.DefaultOptions(dataDir)
	db, err := badger.Open(opts)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	f, err := os.Open(backupFile)
	if err != nil {
		log.Fatalf("Failed to open backup file: %v", err)
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		log.Fatalf("Failed to read backup file: %v", err)
	}
	defer gz.Close()

	if err := db.Load(gz, 16); err != nil {
		log.Fatalf("Failed to restore database: %v", err)
	}

	fmt.Println("Database restored successfully")
}
