package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/marianoprofesorhistoria-cmd/cordoba-montessori-app/internal/config"
	"github.com/marianoprofesorhistoria-cmd/cordoba-montessori-app/internal/database"
	"github.com/marianoprofesorhistoria-cmd/cordoba-montessori-app/internal/handlers"
	"github.com/marianoprofesorhistoria-cmd/cordoba-montessori-app/internal/repository"
	"github.com/marianoprofesorhistoria-cmd/cordoba-montessori-app/internal/store"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database with config (supports sqlite, postgres, mysql)
	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Printf("Database connection established (type: %s)", cfg.DatabaseType)

	// Run migrations
	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Migrations completed successfully")

	// Build the store over the snapshot repository and load or seed every
	// collection
	snapshotRepo := repository.NewSnapshotRepository(db)
	recordStore := store.New(snapshotRepo)
	if err := recordStore.Load(); err != nil {
		log.Fatalf("Failed to load record store: %v", err)
	}

	log.Println("Record store loaded")

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(recordStore)
	courseHandler := handlers.NewCourseHandler(recordStore)
	studentHandler := handlers.NewStudentHandler(recordStore)
	evaluationHandler := handlers.NewEvaluationHandler(recordStore)
	gradeHandler := handlers.NewGradeHandler(recordStore)
	calendarHandler := handlers.NewCalendarHandler(recordStore)
	reportHandler := handlers.NewReportHandler(recordStore)

	// Setup routes
	mux := http.NewServeMux()

	// Profile
	mux.HandleFunc("POST /api/login", authHandler.Login)
	mux.HandleFunc("POST /api/logout", authHandler.Logout)
	mux.HandleFunc("GET /api/profile", authHandler.GetProfile)
	mux.HandleFunc("PUT /api/profile", authHandler.UpdateProfile)

	// Courses
	mux.HandleFunc("GET /api/courses", courseHandler.ListCourses)
	mux.HandleFunc("POST /api/courses", courseHandler.CreateCourse)
	mux.HandleFunc("GET /api/courses/{id}", courseHandler.GetCourse)

	// Students
	mux.HandleFunc("GET /api/students", studentHandler.ListAllStudents)
	mux.HandleFunc("POST /api/students", studentHandler.CreateStudent)
	mux.HandleFunc("PATCH /api/students/{id}", studentHandler.UpdateStudent)
	mux.HandleFunc("DELETE /api/students/{id}", studentHandler.DeleteStudent)
	mux.HandleFunc("GET /api/courses/{id}/students", studentHandler.ListCourseStudents)
	mux.HandleFunc("POST /api/courses/{id}/students/bulk", studentHandler.BulkImport)

	// Evaluations
	mux.HandleFunc("GET /api/courses/{id}/evaluations", evaluationHandler.ListCourseEvaluations)
	mux.HandleFunc("POST /api/evaluations", evaluationHandler.CreateEvaluation)
	mux.HandleFunc("PUT /api/evaluations/{id}", evaluationHandler.UpdateEvaluation)
	mux.HandleFunc("DELETE /api/evaluations/{id}", evaluationHandler.DeleteEvaluation)

	// Grades
	mux.HandleFunc("PUT /api/grades", gradeHandler.UpdateGrade)
	mux.HandleFunc("GET /api/courses/{id}/grades", gradeHandler.ListCourseGrades)

	// Calendar
	mux.HandleFunc("GET /api/activities", calendarHandler.ListActivities)
	mux.HandleFunc("POST /api/activities", calendarHandler.CreateActivity)
	mux.HandleFunc("DELETE /api/activities/{id}", calendarHandler.DeleteActivity)
	mux.HandleFunc("GET /api/calendar/day", calendarHandler.DayEvents)

	// Reports
	mux.HandleFunc("GET /api/courses/{id}/averages", reportHandler.CourseAverages)
	mux.HandleFunc("GET /api/courses/{id}/performance", reportHandler.CoursePerformance)
	mux.HandleFunc("GET /api/courses/{id}/gradesheet", reportHandler.GradeSheet)

	// Wrap with logging middleware
	handler := handlers.Logging(mux)

	// Start server
	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on http://localhost%s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")

	// Final flush so the stored snapshots match memory even if a
	// mid-session write failed
	if err := recordStore.Flush(); err != nil {
		log.Printf("Warning: final flush failed: %v", err)
	}
}
