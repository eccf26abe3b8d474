// @title Daytrack API
// @description API for the daily-tracking app "Daytrack"
// @BasePath /api
// @schemes http
package main

import (
	"context"
	"log"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rpillai/daytrack/internal/api"
	"github.com/rpillai/daytrack/internal/blob"
	"github.com/rpillai/daytrack/internal/repository"
	"github.com/rpillai/daytrack/internal/service"
	"github.com/rpillai/daytrack/pkg/cleanup"
	"github.com/rpillai/daytrack/pkg/config"
	"github.com/rpillai/daytrack/pkg/entity"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	defer cleanup.CleanUp()

	var conn repository.PgConnection
	backend := cfg.GetStringDefault("STORAGE_BACKEND", "memory")
	if backend == "postgres" {
		dbCfg := repository.PGCfg{
			Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
			Username: cfg.GetString("POSTGRES_USER"),
			Password: cfg.GetString("POSTGRES_PASSWORD"),
			DB:       cfg.GetString("POSTGRES_DB"),
		}
		pool, err := pgxpool.New(context.Background(), dbCfg.ConnString())
		if err != nil {
			log.Fatal("creating pgx pool error: " + err.Error())
		}
		err = pool.Ping(context.Background())
		if err != nil {
			log.Fatal("error while pinging pgx pool: " + err.Error())
		}
		cleanup.Register(&cleanup.Job{
			Name: "closing pgxpool",
			F: func() error {
				pool.Close()
				return nil
			},
		})
		conn = pool
	}

	var blobs blob.Backend = blob.NewInlineBackend()
	if cfg.GetStringDefault("BLOB_BACKEND", "inline") == "s3" {
		awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
			awsconfig.WithRegion(cfg.GetString("S3_REGION")),
		)
		if err != nil {
			log.Fatal("loading aws config error: " + err.Error())
		}
		blobs = blob.NewS3Backend(
			s3.NewFromConfig(awsCfg),
			cfg.GetString("S3_BUCKET"),
			cfg.GetString("S3_PUBLIC_URL"),
		)
	}

	documentsService := service.NewDocuments(service.DocumentStores{
		College:         newStore[entity.CollegeDocument](backend, conn, "college_documents"),
		Internships:     newStore[entity.Internship](backend, conn, "internship_documents"),
		InternshipFiles: newStore[entity.InternshipFile](backend, conn, "internship_files"),
		Certifications:  newStore[entity.Certification](backend, conn, "certification_documents"),
		Links:           newStore[entity.DocumentLink](backend, conn, "document_links"),
	}, blobs)

	serv := api.New(&api.ServicesList{
		Goals:            service.NewCompletableEntries(newStore[entity.Goal](backend, conn, "goals")),
		Tasks:            service.NewCompletableEntries(newStore[entity.Task](backend, conn, "tasks")),
		NegativeThoughts: service.NewEntries(newStore[entity.NegativeThought](backend, conn, "negative_thoughts")),
		PositiveThoughts: service.NewEntries(newStore[entity.PositiveThought](backend, conn, "positive_thoughts")),
		EnergyLogs:       service.NewEntries(newStore[entity.EnergyLog](backend, conn, "energy_logs")),
		WellnessLogs:     service.NewEntries(newStore[entity.WellnessLog](backend, conn, "wellness_logs")),
		Communications:   service.NewCompletableEntries(newStore[entity.Communication](backend, conn, "communications")),
		Entertainment:    service.NewCompletableEntries(newStore[entity.Entertainment](backend, conn, "entertainment")),
		Technologies:     service.NewEntries(newStore[entity.Technology](backend, conn, "technologies")),
		Topics:           service.NewEntries(newStore[entity.Topic](backend, conn, "topics")),
		Streaks:          service.NewStreaks(newStore[entity.Streak](backend, conn, "streaks")),
		Documents:        documentsService,
	})
	err := serv.Run(cfg.GetStringDefault("API_ADDRESS", ":5000"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
}

// newStore picks the persistence backend for one record family.
func newStore[T any, R repository.RecordPtr[T]](backend string, conn repository.PgConnection, family string) repository.Store[R] {
	if backend == "postgres" {
		return repository.NewRecordsRepoWithConn[T, R](conn, family)
	}
	return repository.NewMemoryStore[R]()
}
