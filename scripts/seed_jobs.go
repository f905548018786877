package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"alfredoptarigan/resume-matcher/internal/config"
	applog "alfredoptarigan/resume-matcher/internal/logger"
	"alfredoptarigan/resume-matcher/internal/models"
	"alfredoptarigan/resume-matcher/internal/repositories"
)

var demoJobs = []models.Job{
	{
		Title:       "Backend Engineer",
		Company:     "Acme Corp",
		Location:    "Remote",
		Description: "Build and operate the services behind our hiring platform.",
		Skills:      "golang, postgres, docker, kubernetes, aws",
	},
	{
		Title:       "Frontend Developer",
		Company:     "Brightside Labs",
		Location:    "Jakarta",
		Description: "Own the candidate facing web app.",
		Skills:      "javascript, typescript, react, css, html",
	},
	{
		Title:       "Data Scientist",
		Company:     "Northwind Analytics",
		Location:    "Singapore",
		Description: "Model hiring funnels and ship ranking experiments.",
		Skills:      "python, machine learning, sql, pytorch, data analysis",
	},
	{
		Title:       "Full Stack Engineer",
		Company:     "Acme Corp",
		Location:    "Remote",
		Description: "Work across the API and the dashboard.",
		Skills:      "node, express, react, mongodb, git",
	},
	{
		Title:       "Platform Engineer",
		Company:     "Cloudy Co",
		Location:    "Bandung",
		Description: "Keep our clusters healthy.",
		Skills:      "linux, docker, kubernetes, gcp, redis",
	},
}

func main() {
	cfg := config.Load()

	zl, err := applog.New(cfg.Server.LogJSON, true)
	if err != nil {
		log.Fatalf("❌ Failed to create logger: %v", err)
	}
	defer zl.Sync()

	if !cfg.EnvFileLoaded {
		zl.Info("No .env file found. Using default values.")
	}

	zl.Info("🚀 Starting job seeding...", zap.String("job_store", cfg.JobStore))

	var jobs repositories.JobRepository
	switch cfg.JobStore {
	case config.JobStoreMongo:
		db, err := config.ConnectMongo(cfg)
		if err != nil {
			zl.Fatal("❌ Failed to connect to MongoDB", zap.Error(err))
		}
		jobs = repositories.NewMongoJobRepository(db)
	default:
		db, err := config.InitDatabase(cfg, zl)
		if err != nil {
			zl.Fatal("❌ Failed to initialize database", zap.Error(err))
		}
		jobs = repositories.NewJobRepository(db)
	}

	ctx := context.Background()
	successCount := 0
	failCount := 0

	for i := range demoJobs {
		job := demoJobs[i]
		if err := jobs.Create(ctx, &job); err != nil {
			zl.Error("❌ Failed to seed job", zap.String("title", job.Title), zap.Error(err))
			failCount++
			continue
		}

		zl.Info("✅ Seeded job",
			zap.String("id", job.ID.String()),
			zap.String("title", job.Title),
			zap.Strings("skills", job.SkillProfile()),
		)
		successCount++
	}

	zl.Info("📊 Seeding Summary", zap.Int("success", successCount), zap.Int("failed", failCount))

	if failCount > 0 {
		zl.Warn("⚠️  Some jobs failed to seed. Check the logs above.")
	} else {
		zl.Info("🎉 All jobs seeded successfully!")
	}
}
