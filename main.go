package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	api "taskflow-backend/cmd/api"
	activitydomain "taskflow-backend/internal/activity/domain"
	activityRepo "taskflow-backend/internal/activity/repository"
	categorydomain "taskflow-backend/internal/category/domain"
	categoryRepo "taskflow-backend/internal/category/repository"
	categoryUsecase "taskflow-backend/internal/category/usecase"
	taskdomain "taskflow-backend/internal/task/domain"
	taskRepo "taskflow-backend/internal/task/repository"
	"taskflow-backend/internal/task/scheduler"
	taskUsecase "taskflow-backend/internal/task/usecase"
	"taskflow-backend/pkg/config"
	"taskflow-backend/pkg/database"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&taskdomain.Task{}, &categorydomain.Category{}, &activitydomain.Entry{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	taskRepository := taskRepo.NewGormTaskRepository(db)
	categoryRepository := categoryRepo.NewGormCategoryRepository(db)
	activityRepository := activityRepo.NewGormActivityRepository(db)

	// Initialize use cases
	taskUsecaseInstance := taskUsecase.NewTaskUsecase(taskRepository, activityRepository)
	categoryUsecaseInstance := categoryUsecase.NewCategoryUsecase(categoryRepository)

	if err := categoryUsecaseInstance.SeedDefaults(); err != nil {
		log.Fatal("Failed to seed categories:", err)
	}

	// Start the nightly auto-archiver (no-op unless ARCHIVE_AFTER is set)
	archiver := scheduler.NewArchiver(taskUsecaseInstance, cfg.ArchiveAfter)
	if err := archiver.Start(cfg.ArchiveAt); err != nil {
		log.Fatal("Failed to start archiver:", err)
	}
	defer archiver.Stop()

	// Initialize HTTP handler
	handler := api.NewHandler(taskUsecaseInstance, categoryUsecaseInstance, activityRepository)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler.Engine(),
	}

	go func() {
		log.Printf("Server starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server:", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown: %v", err)
	}
	log.Println("Shutdown complete.")
}
