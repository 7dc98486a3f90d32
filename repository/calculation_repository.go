package repository

import (
	"context"

	"finance-engine/domain"
)

// CalculationRepository keeps the audit log of completed calculations.
type CalculationRepository interface {
	Save(ctx context.Context, calc domain.Calculation) error
	// Recent returns up to limit records, newest first.
	Recent(ctx context.Context, limit int) ([]domain.Calculation, error)
}
