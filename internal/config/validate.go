package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	if c.Database.StatementTimeout < 0 || c.Database.LockTimeout < 0 {
		return fmt.Errorf("database timeouts must be >= 0")
	}

	if c.RateLimit.RequestsPerMinute < 0 {
		return fmt.Errorf("rate_limit.requests_per_minute must be >= 0 (got %d)", c.RateLimit.RequestsPerMinute)
	}

	if err := c.Costing.validate(); err != nil {
		return fmt.Errorf("costing: %w", err)
	}

	return nil
}

func (s *CostingConfig) validate() error {
	if s.OperatorsCount < 0 {
		return fmt.Errorf("operators_count must be >= 0 (got %d)", s.OperatorsCount)
	}
	if s.RecalcConcurrency <= 0 {
		return fmt.Errorf("recalc_concurrency must be > 0 (got %d)", s.RecalcConcurrency)
	}

	var err error
	if s.LaborRatePerHour, err = parseAmount("labor_rate_per_hour", s.LaborRatePerHourRaw, nil); err != nil {
		return err
	}
	if s.LossPercent, err = parseAmount("loss_percent", s.LossPercentRaw, &hundred); err != nil {
		return err
	}
	if s.UtilityPercent, err = parseAmount("utility_percent", s.UtilityPercentRaw, &hundred); err != nil {
		return err
	}

	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return fmt.Errorf("timezone: %w", err)
	}
	s.Location = loc

	return nil
}

// parseAmount parses a non-negative decimal, optionally bounded above.
func parseAmount(field, raw string, upper *decimal.Decimal) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, nil
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%s: invalid decimal %q: %w", field, raw, err)
	}
	if d.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("%s must be >= 0 (got %s)", field, d)
	}
	if upper != nil && d.GreaterThan(*upper) {
		return decimal.Decimal{}, fmt.Errorf("%s must be <= %s (got %s)", field, upper, d)
	}
	return d, nil
}
