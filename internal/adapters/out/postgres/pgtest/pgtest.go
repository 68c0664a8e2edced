// Package pgtest starts a migrated PostgreSQL container for integration tests
// and inserts the reference rows the order logic depends on.
package pgtest

import (
	"context"
	"fmt"
	"time"

	"photoflow/internal/adapters/out/postgres/migrations"
	"photoflow/internal/core/domain/model/kernel"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Database struct {
	Container *postgres.PostgresContainer
	DB        *gorm.DB
	DSN       string
}

// Start runs postgres:15-alpine, applies the goose migrations and opens gorm.
func Start(ctx context.Context) (*Database, error) {
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("start postgres container: %w", err)
	}

	d := &Database{Container: container}
	if d.DSN, err = container.ConnectionString(ctx, "sslmode=disable"); err != nil {
		_ = d.Terminate(ctx)
		return nil, err
	}

	if err = migrations.Up(ctx, d.DSN); err != nil {
		_ = d.Terminate(ctx)
		return nil, err
	}

	d.DB, err = gorm.Open(postgresdriver.Open(d.DSN), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		_ = d.Terminate(ctx)
		return nil, err
	}

	return d, nil
}

// Truncate empties every table between tests.
func (d *Database) Truncate() error {
	return d.DB.Exec(`TRUNCATE TABLE order_status_history, editor_checklists, order_checklists,
		orders, subscriptions, plans, users, workspaces CASCADE`).Error
}

func (d *Database) Terminate(ctx context.Context) error {
	if d.Container == nil {
		return nil
	}
	return d.Container.Terminate(ctx)
}

func (d *Database) InsertWorkspace(name, address string) (kernel.UUID, error) {
	id := kernel.NewUUID()
	err := d.DB.Exec(`INSERT INTO workspaces (id, name, address) VALUES (?, ?, ?)`,
		id.Bytes(), name, address).Error
	return id, err
}

func (d *Database) InsertUser(email, role string, workspaceID *kernel.UUID) (kernel.UUID, error) {
	id := kernel.NewUUID()
	var ws any
	if workspaceID != nil {
		ws = workspaceID.Bytes()
	}
	err := d.DB.Exec(`INSERT INTO users (id, email, role, workspace_id) VALUES (?, ?, ?, ?)`,
		id.Bytes(), email, role, ws).Error
	return id, err
}

// InsertBasicPlan inserts plan BASIC: 10000 per month, 100 photos and 2 videos
// included, 100 per extra photo, 2500 per extra video.
func (d *Database) InsertBasicPlan() error {
	return d.DB.Exec(`INSERT INTO plans (code, name, monthly_price, yearly_monthly_price, photos_per_month,
		videos_per_month, extra_photo_price, extra_video_price)
		VALUES ('BASIC', 'Basic', 10000, 8500, 100, 2, 100, 2500)`).Error
}

func (d *Database) InsertSubscription(workspaceID kernel.UUID, planCode, cycle, status string) (kernel.UUID, error) {
	id := kernel.NewUUID()
	err := d.DB.Exec(`INSERT INTO subscriptions (id, workspace_id, plan_code, billing_cycle, status)
		VALUES (?, ?, ?, ?, ?)`, id.Bytes(), workspaceID.Bytes(), planCode, cycle, status).Error
	return id, err
}
