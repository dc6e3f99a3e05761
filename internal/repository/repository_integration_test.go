package repository_test

import (
	"errors"
	"io"
	"log"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jobdesk/jobdesk-go/internal/domain/job"
	"github.com/jobdesk/jobdesk-go/internal/domain/user"
	"github.com/jobdesk/jobdesk-go/internal/repository"
	"github.com/jobdesk/jobdesk-go/internal/testutils"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	gormDB *gorm.DB
	repos  *repository.Repos
)

func TestMain(m *testing.M) {
	sqlDB, cleanup := testutils.SetupPostgresForIntegration()

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn: sqlDB,
	}), &gorm.Config{
		Logger: logger.New(
			log.New(io.Discard, "", log.LstdFlags),
			logger.Config{
				SlowThreshold:             time.Second,
				LogLevel:                  logger.Silent,
				IgnoreRecordNotFoundError: true,
				Colorful:                  false,
			},
		),
	})
	if err != nil {
		log.Fatal(err)
	}

	if err := gdb.AutoMigrate(&user.User{}, &job.Job{}, &job.Application{}); err != nil {
		log.Fatal(err)
	}

	gormDB = gdb
	repos = repository.New(gdb)

	code := m.Run()
	cleanup()
	os.Exit(code)
}

func resetTables(t *testing.T) {
	t.Helper()
	require.NoError(t, gormDB.Exec("DELETE FROM applications").Error)
	require.NoError(t, gormDB.Exec("DELETE FROM jobs").Error)
	require.NoError(t, gormDB.Exec("DELETE FROM hr_users").Error)
}

func seedJob(t *testing.T, j job.Job) job.Job {
	t.Helper()
	require.NoError(t, repos.Job.Create(&j))
	return j
}

func TestJobListFilters(t *testing.T) {
	resetTables(t)

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	senior := seedJob(t, job.Job{
		Title:       "Senior Go Engineer",
		Description: "Own backend services end to end.",
		Location:    "Berlin",
		Experience:  "5+ years",
		CreatedAt:   base.Add(2 * time.Hour),
	})
	frontend := seedJob(t, job.Job{
		Title:       "Frontend Developer",
		Description: "React dashboards for recruiters.",
		Location:    "Remote",
		Experience:  "0-2 years",
		CreatedAt:   base.Add(1 * time.Hour),
	})
	analyst := seedJob(t, job.Job{
		Title:       "Data Analyst",
		Description: "Reporting over golang pipelines.",
		Location:    "Hamburg",
		Experience:  "2-5 years",
		CreatedAt:   base,
	})

	t.Run("no filter returns everything newest first", func(t *testing.T) {
		jobs, err := repos.Job.List(job.Filter{})
		require.NoError(t, err)
		require.Len(t, jobs, 3)
		require.Equal(t, senior.ID, jobs[0].ID)
		require.Equal(t, frontend.ID, jobs[1].ID)
		require.Equal(t, analyst.ID, jobs[2].ID)
	})

	t.Run("keyword matches title or description case-insensitively", func(t *testing.T) {
		jobs, err := repos.Job.List(job.Filter{Keyword: "go"})
		require.NoError(t, err)
		require.Len(t, jobs, 2)
		require.Equal(t, senior.ID, jobs[0].ID)
		require.Equal(t, analyst.ID, jobs[1].ID)
	})

	t.Run("location matches case-insensitively", func(t *testing.T) {
		jobs, err := repos.Job.List(job.Filter{Location: "berlin"})
		require.NoError(t, err)
		require.Len(t, jobs, 1)
		require.Equal(t, senior.ID, jobs[0].ID)
	})

	t.Run("experience bucket matches as substring", func(t *testing.T) {
		jobs, err := repos.Job.List(job.Filter{Experience: "5+"})
		require.NoError(t, err)
		require.Len(t, jobs, 1)
		require.Equal(t, senior.ID, jobs[0].ID)
	})

	t.Run("all bucket disables the experience filter", func(t *testing.T) {
		jobs, err := repos.Job.List(job.Filter{Experience: "all"})
		require.NoError(t, err)
		require.Len(t, jobs, 3)
	})

	t.Run("combined filters intersect", func(t *testing.T) {
		jobs, err := repos.Job.List(job.Filter{Keyword: "go", Location: "Berlin"})
		require.NoError(t, err)
		require.Len(t, jobs, 1)
		require.Equal(t, senior.ID, jobs[0].ID)
	})
}

func TestJobUpdatePatchesOnlySuppliedColumns(t *testing.T) {
	resetTables(t)

	j := seedJob(t, job.Job{
		Title:       "Backend Engineer",
		Description: "original",
		Location:    "Berlin",
		Positions:   3,
	})

	updated, err := repos.Job.Update(j.ID, map[string]interface{}{"title": "Platform Engineer"})
	require.NoError(t, err)
	require.Equal(t, "Platform Engineer", updated.Title)
	require.Equal(t, "original", updated.Description)
	require.Equal(t, "Berlin", updated.Location)
	require.Equal(t, 3, updated.Positions)
}

func TestJobGetByIDMissingRow(t *testing.T) {
	resetTables(t)

	_, err := repos.Job.GetByID(uuid.New())
	require.True(t, errors.Is(err, gorm.ErrRecordNotFound),
		"a missing row must surface as gorm.ErrRecordNotFound, got %v", err)
}

func TestApplicationListJoinsJobTitles(t *testing.T) {
	resetTables(t)

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	j := seedJob(t, job.Job{Title: "QA Engineer"})

	older := job.Application{JobID: j.ID, Name: "Early Bird", Phone: "111", Email: "early@example.com", CreatedAt: base}
	require.NoError(t, repos.Application.Create(&older))

	orphan := job.Application{JobID: uuid.New(), Name: "Ghost", Phone: "222", Email: "ghost@example.com", CreatedAt: base.Add(time.Hour)}
	require.NoError(t, repos.Application.Create(&orphan))

	rows, err := repos.Application.ListWithJobTitle()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	require.Equal(t, orphan.ID, rows[0].ID)
	require.Equal(t, "", rows[0].JobTitle)

	require.Equal(t, older.ID, rows[1].ID)
	require.Equal(t, "QA Engineer", rows[1].JobTitle)
}

func TestExecTx(t *testing.T) {
	t.Run("rolls back every write on error", func(t *testing.T) {
		resetTables(t)

		txErr := errors.New("abort")
		err := repos.ExecTx(func(tx *repository.Repos) error {
			if err := tx.Job.Create(&job.Job{Title: "Doomed"}); err != nil {
				return err
			}
			return txErr
		})
		require.True(t, errors.Is(err, txErr))

		jobs, listErr := repos.Job.List(job.Filter{})
		require.NoError(t, listErr)
		require.Empty(t, jobs)
	})

	t.Run("commits related writes together", func(t *testing.T) {
		resetTables(t)

		var created job.Job
		err := repos.ExecTx(func(tx *repository.Repos) error {
			created = job.Job{Title: "Open Role"}
			if err := tx.Job.Create(&created); err != nil {
				return err
			}
			a := job.Application{JobID: created.ID, Name: "First", Phone: "333", Email: "first@example.com"}
			return tx.Application.Create(&a)
		})
		require.NoError(t, err)

		jobs, err := repos.Job.List(job.Filter{})
		require.NoError(t, err)
		require.Len(t, jobs, 1)

		rows, err := repos.Application.ListWithJobTitle()
		require.NoError(t, err)
		require.Len(t, rows, 1)
		require.Equal(t, "Open Role", rows[0].JobTitle)
	})
}
