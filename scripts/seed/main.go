package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/skillpath/skillpath-server-go/internal/features/course"
	"github.com/skillpath/skillpath-server-go/internal/features/lesson"
	"github.com/skillpath/skillpath-server-go/pkg/config"
	"github.com/skillpath/skillpath-server-go/pkg/logger"
)

func strPtr(s string) *string { return &s }

type seedLesson struct {
	title      string
	moduleName string
	duration   string
}

type seedCourse struct {
	course  course.CreateInput
	lessons []seedLesson
}

var catalog = []seedCourse{
	{
		course: course.CreateInput{
			Title:       "Introduction to Web Development",
			Description: "Learn the fundamentals of HTML, CSS and JavaScript from scratch.",
			Duration:    strPtr("6 hours"),
			Level:       strPtr("Beginner"),
			Tags:        []string{"web", "html", "css", "javascript"},
		},
		lessons: []seedLesson{
			{"What is the Web?", "Getting Started", "10 min"},
			{"Setting Up Your Editor", "Getting Started", "15 min"},
			{"HTML Basics", "HTML Foundations", "25 min"},
			{"Semantic Markup", "HTML Foundations", "20 min"},
			{"CSS Selectors", "Styling with CSS", "30 min"},
			{"Flexbox Layouts", "Styling with CSS", "35 min"},
		},
	},
	{
		course: course.CreateInput{
			Title:       "Go for Backend Engineers",
			Description: "Build production HTTP services in Go, from routing to deployment.",
			Duration:    strPtr("9 hours"),
			Level:       strPtr("Intermediate"),
			Tags:        []string{"go", "backend", "api"},
		},
		lessons: []seedLesson{
			{"Why Go?", "Orientation", "10 min"},
			{"Project Layout", "Orientation", "15 min"},
			{"Handlers and Routing", "HTTP Services", "30 min"},
			{"Middleware Patterns", "HTTP Services", "25 min"},
			{"Talking to Postgres", "Persistence", "40 min"},
		},
	},
	{
		course: course.CreateInput{
			Title:       "SQL Fundamentals",
			Description: "Query, join and aggregate data with confidence.",
			Duration:    strPtr("4 hours"),
			Level:       strPtr("Beginner"),
			Tags:        []string{"sql", "databases"},
		},
		lessons: []seedLesson{
			{"Tables and Rows", "Core Concepts", "15 min"},
			{"SELECT and WHERE", "Core Concepts", "20 min"},
			{"Joins Explained", "Working with Relations", "30 min"},
			{"Grouping and Aggregates", "Working with Relations", "25 min"},
		},
	},
}

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	appLogger, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		appLogger.Error("Failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Get underlying SQL connection
	sqlDB, err := db.DB()
	if err != nil {
		appLogger.Error("Failed to get SQL DB", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer sqlDB.Close()

	// Test connection
	ctx := context.Background()
	if err := sqlDB.PingContext(ctx); err != nil {
		appLogger.Error("Failed to ping database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	appLogger.Info("Database connection established")

	seeded := 0
	for _, entry := range catalog {
		// Skip courses that already exist so the script stays idempotent.
		var count int64
		if err := db.Table("courses").Where("title = ?", entry.course.Title).Count(&count).Error; err != nil {
			appLogger.Error("Failed to check existing course", slog.String("error", err.Error()))
			os.Exit(1)
		}
		if count > 0 {
			appLogger.Info("Course already exists, skipping", slog.String("title", entry.course.Title))
			continue
		}

		crs, err := course.Create(db, entry.course)
		if err != nil {
			appLogger.Error("Failed to create course",
				slog.String("title", entry.course.Title),
				slog.String("error", err.Error()))
			os.Exit(1)
		}

		for i, lsn := range entry.lessons {
			duration := lsn.duration
			_, err := lesson.Create(db, lesson.CreateInput{
				CourseID:   crs.ID,
				Title:      lsn.title,
				ModuleName: lsn.moduleName,
				OrderIndex: i,
				Duration:   &duration,
			})
			if err != nil {
				appLogger.Error("Failed to create lesson",
					slog.String("title", lsn.title),
					slog.String("error", err.Error()))
				os.Exit(1)
			}
		}

		appLogger.Info("Seeded course",
			slog.String("title", crs.Title),
			slog.Int("lessons", len(entry.lessons)))
		seeded++
	}

	fmt.Printf("\n✅ Seeded %d courses!\n", seeded)
}
