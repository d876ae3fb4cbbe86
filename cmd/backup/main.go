package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/marianoprofesorhistoria-cmd/cordoba-montessori-app/internal/config"
	"github.com/marianoprofesorhistoria-cmd/cordoba-montessori-app/internal/database"
	"github.com/marianoprofesorhistoria-cmd/cordoba-montessori-app/internal/service"
)

func main() {
	// Define subcommands
	exportCmd := flag.NewFlagSet("export", flag.ExitOnError)
	importCmd := flag.NewFlagSet("import", flag.ExitOnError)

	// Export flags
	exportOutput := exportCmd.String("output", "", "Output file path (default: backup_YYYYMMDD_HHMMSS.json)")

	// Import flags
	importInput := importCmd.String("input", "", "Input file path (required)")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Run migrations to ensure schema is up to date
	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Create backup service
	backupService := service.NewBackupService(db)

	switch os.Args[1] {
	case "export":
		exportCmd.Parse(os.Args[2:])
		handleExport(backupService, *exportOutput)

	case "import":
		importCmd.Parse(os.Args[2:])
		if *importInput == "" {
			fmt.Println("Error: -input flag is required")
			importCmd.PrintDefaults()
			os.Exit(1)
		}
		handleImport(backupService, *importInput)

	default:
		printUsage()
		os.Exit(1)
	}
}

func handleExport(backupService *service.BackupService, outputPath string) {
	// Generate default filename if not provided
	if outputPath == "" {
		timestamp := time.Now().Format("20060102_150405")
		outputPath = fmt.Sprintf("backup_%s.json", timestamp)
	}

	// Ensure directory exists
	dir := filepath.Dir(outputPath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatalf("Failed to create output directory: %v", err)
		}
	}

	backup, err := backupService.Export(outputPath)
	if err != nil {
		log.Fatalf("Export failed: %v", err)
	}

	fmt.Printf("Exported to %s\n", outputPath)
	fmt.Printf("  courses: %d, students: %d, evaluations: %d, activities: %d, grades: %d\n",
		len(backup.Courses), len(backup.Students), len(backup.Evaluations),
		len(backup.Activities), len(backup.Grades))
}

func handleImport(backupService *service.BackupService, inputPath string) {
	backup, err := backupService.Import(inputPath)
	if err != nil {
		log.Fatalf("Import failed: %v", err)
	}

	fmt.Printf("Imported from %s (exported at %s)\n", inputPath, backup.ExportedAt.Format(time.RFC3339))
	fmt.Printf("  courses: %d, students: %d, evaluations: %d, activities: %d, grades: %d\n",
		len(backup.Courses), len(backup.Students), len(backup.Evaluations),
		len(backup.Activities), len(backup.Grades))
}

func printUsage() {
	fmt.Println("Usage: backup <command> [flags]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  export  Write all collection snapshots to a JSON file")
	fmt.Println("  import  Restore all collection snapshots from a JSON file")
}
