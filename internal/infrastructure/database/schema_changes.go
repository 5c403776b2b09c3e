package database

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SchemaChange is one forward-only, additive change applied after the
// auto-migration pass. Changes run in declaration order exactly once; the
// applied set is recorded in schema_migrations.
type SchemaChange struct {
	ID         string
	Statements []string
}

// appliedMigration is a row of the schema_migrations bookkeeping table.
type appliedMigration struct {
	ID        string    `gorm:"primaryKey;size:255"`
	AppliedAt time.Time `gorm:"not null;default:now()"`
}

func (appliedMigration) TableName() string {
	return "schema_migrations"
}

// schemaChanges lists every additive change in application order. Entries
// are append-only; never edit or reorder an applied change.
var schemaChanges = []SchemaChange{
	{
		ID: "0002_subscriptionplan_pos_limit",
		Statements: []string{
			`ALTER TABLE subscription_plans ADD COLUMN IF NOT EXISTS pos_limit integer NOT NULL DEFAULT 3`,
		},
	},
	{
		ID: "0003_subscriptionplan_free_trial",
		Statements: []string{
			`ALTER TABLE subscription_plans ADD COLUMN IF NOT EXISTS is_free_trial boolean NOT NULL DEFAULT false`,
			`ALTER TABLE subscription_plans ADD COLUMN IF NOT EXISTS trial_days integer NOT NULL DEFAULT 30`,
		},
	},
	{
		ID: "0012_invitation_status",
		Statements: []string{
			`ALTER TABLE invitations ADD COLUMN IF NOT EXISTS status varchar(50) NOT NULL DEFAULT 'PENDING'`,
			`UPDATE invitations SET status = 'PENDING' WHERE status IS NULL OR status = ''`,
		},
	},
}

// ChangeRecorder tracks which schema changes have already run.
type ChangeRecorder interface {
	IsApplied(id string) (bool, error)
	MarkApplied(id string) error
}

// gormRecorder records applied changes in the schema_migrations table.
type gormRecorder struct {
	db *gorm.DB
}

func (r *gormRecorder) IsApplied(id string) (bool, error) {
	var count int64
	err := r.db.Model(&appliedMigration{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *gormRecorder) MarkApplied(id string) error {
	return r.db.Create(&appliedMigration{ID: id, AppliedAt: time.Now()}).Error
}

// ApplySchemaChanges runs every pending schema change in order.
func ApplySchemaChanges(db *gorm.DB, logger *zap.Logger) error {
	if err := db.AutoMigrate(&appliedMigration{}); err != nil {
		return fmt.Errorf("failed to prepare schema_migrations table: %w", err)
	}

	executor := func(statement string) error {
		return db.Exec(statement).Error
	}
	return runSchemaChanges(schemaChanges, &gormRecorder{db: db}, executor, logger)
}

// runSchemaChanges executes pending changes through the given executor,
// skipping anything the recorder knows about.
func runSchemaChanges(changes []SchemaChange, recorder ChangeRecorder, execute func(string) error, logger *zap.Logger) error {
	for _, change := range changes {
		applied, err := recorder.IsApplied(change.ID)
		if err != nil {
			return fmt.Errorf("failed to check schema change %s: %w", change.ID, err)
		}
		if applied {
			continue
		}

		logger.Info("Applying schema change", zap.String("id", change.ID))
		for _, statement := range change.Statements {
			if err := execute(statement); err != nil {
				return fmt.Errorf("failed to apply schema change %s: %w", change.ID, err)
			}
		}

		if err := recorder.MarkApplied(change.ID); err != nil {
			return fmt.Errorf("failed to record schema change %s: %w", change.ID, err)
		}
	}
	return nil
}
