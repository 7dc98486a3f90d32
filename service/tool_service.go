package service

import (
	"context"
	"encoding/json"
	"fmt"

	"finance-engine/calculator"
	"finance-engine/domain"
	"finance-engine/repository"

	"github.com/cespare/xxhash/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Limits bounds what the tool service will compute
type Limits struct {
	MaxSimulationMonths int
}

// ToolService runs calculator input bundles with caching and an audit log.
type ToolService struct {
	cache  repository.CacheRepository
	repo   repository.CalculationRepository
	limits Limits
}

// NewToolService creates a ToolService. A zero MaxSimulationMonths uses DefaultMaxSimulationMonths.
func NewToolService(
	cache repository.CacheRepository,
	repo repository.CalculationRepository,
	limits Limits,
) *ToolService {
	if limits.MaxSimulationMonths <= 0 {
		limits.MaxSimulationMonths = DefaultMaxSimulationMonths
	}
	return &ToolService{cache: cache, repo: repo, limits: limits}
}

// Calculate runs calc, serving repeated inputs from the cache. Validation
// errors from the calculator are returned unchanged and never cached.
func (s *ToolService) Calculate(ctx context.Context, calc calculator.Calculation) (calculator.Result, error) {
	if err := s.checkHorizon(calc); err != nil {
		return calculator.Result{}, err
	}

	input, err := json.Marshal(calc)
	if err != nil {
		return calculator.Result{}, errors.Wrap(err, "encoding calculation input")
	}
	key := cacheKey(calc.Tool(), input)

	if result, ok := s.lookup(ctx, key); ok {
		return result, nil
	}

	result, err := calc.Calculate()
	if err != nil {
		log.Debug().Str("tool", string(calc.Tool())).Err(err).Msg("calculation rejected")
		return calculator.Result{}, err
	}

	s.remember(ctx, key, result)

	// Save the record (not critical if it fails)
	record, err := domain.NewCalculation(string(calc.Tool()), json.RawMessage(input), result)
	if err == nil {
		err = s.repo.Save(ctx, record)
	}
	if err != nil {
		log.Warn().Str("tool", string(calc.Tool())).Err(err).Msg("failed to save calculation")
	}

	return result, nil
}

// History returns recent calculations, newest first. limit is clamped to
// 1..MaxHistoryLimit; zero means DefaultHistoryLimit.
func (s *ToolService) History(ctx context.Context, limit int) ([]domain.Calculation, error) {
	switch {
	case limit == 0:
		limit = DefaultHistoryLimit
	case limit < 0:
		limit = 1
	case limit > MaxHistoryLimit:
		limit = MaxHistoryLimit
	}
	return s.repo.Recent(ctx, limit)
}

// checkHorizon rejects simulations longer than the configured limit. A horizon
// that cannot be read is left for Calculate to report in field order.
func (s *ToolService) checkHorizon(calc calculator.Calculation) error {
	sim, ok := calc.(calculator.Simulation)
	if !ok {
		return nil
	}
	months, err := sim.Horizon()
	if err != nil {
		return nil
	}
	if months > float64(s.limits.MaxSimulationMonths) {
		return &calculator.ValidationError{
			Field:   "horizon",
			Message: fmt.Sprintf("of %g months exceeds the limit of %d", months, s.limits.MaxSimulationMonths),
			Kind:    calculator.ErrDomainViolation,
		}
	}
	return nil
}

func (s *ToolService) lookup(ctx context.Context, key string) (calculator.Result, bool) {
	cached, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		log.Warn().Str("key", key).Err(err).Msg("cache lookup failed")
		return calculator.Result{}, false
	}
	if !ok {
		return calculator.Result{}, false
	}

	var result calculator.Result
	if err := json.Unmarshal([]byte(cached), &result); err != nil {
		log.Warn().Str("key", key).Err(err).Msg("discarding unreadable cache entry")
		return calculator.Result{}, false
	}
	log.Debug().Str("key", key).Msg("cache hit")
	return result, true
}

func (s *ToolService) remember(ctx context.Context, key string, result calculator.Result) {
	data, err := json.Marshal(result)
	if err == nil {
		err = s.cache.Set(ctx, key, string(data))
	}
	if err != nil {
		log.Warn().Str("key", key).Err(err).Msg("failed to cache calculation")
	}
}

func cacheKey(tool calculator.Tool, input []byte) string {
	return fmt.Sprintf("%s:%s:%016x", cacheKeyPrefix, tool, xxhash.Sum64(input))
}
