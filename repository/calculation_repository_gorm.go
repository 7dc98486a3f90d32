package repository

import (
	"context"
	"strings"
	"time"

	"finance-engine/domain"

	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// CalculationRepositoryGorm stores calculations in a SQL database through gorm.
type CalculationRepositoryGorm struct {
	db *gorm.DB
}

// OpenSQLite opens (creating if needed) the sqlite database at dsn and migrates the schema.
func OpenSQLite(dsn string) (*CalculationRepositoryGorm, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		// Set generated timestamps in UTC
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to database")
	}

	// Every connection to :memory: is a separate database
	if strings.Contains(dsn, ":memory:") {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, errors.Wrap(err, "failed to get database handle")
		}
		sqlDB.SetMaxOpenConns(1)
	}

	return NewCalculationRepositoryGorm(db)
}

// NewCalculationRepositoryGorm migrates the calculation table on db.
func NewCalculationRepositoryGorm(db *gorm.DB) (*CalculationRepositoryGorm, error) {
	if err := db.AutoMigrate(&domain.Calculation{}); err != nil {
		return nil, errors.Wrap(err, "failed to migrate calculations")
	}
	log.Debug().Str("dialect", db.Dialector.Name()).Msg("calculation store ready")
	return &CalculationRepositoryGorm{db: db}, nil
}

func (r *CalculationRepositoryGorm) Save(ctx context.Context, calc domain.Calculation) error {
	if err := r.db.WithContext(ctx).Create(&calc).Error; err != nil {
		return errors.Wrapf(err, "saving %s calculation", calc.Tool)
	}
	return nil
}

func (r *CalculationRepositoryGorm) Recent(ctx context.Context, limit int) ([]domain.Calculation, error) {
	var calcs []domain.Calculation
	err := r.db.WithContext(ctx).
		Order("created_at desc").
		Limit(limit).
		Find(&calcs).Error
	if err != nil {
		return nil, errors.Wrap(err, "listing calculations")
	}
	return calcs, nil
}

// Close releases the underlying connection pool
func (r *CalculationRepositoryGorm) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
