package pricing

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/shopspring/decimal"

	"github.com/KirkDiggler/playtime/internal/models"
)

// Block is the billing increment
const Block = 15 * time.Minute

// PricingError is a custom error type for tariff errors
type PricingError string

// Error implements the error interface
func (e PricingError) Error() string {
	return string(e)
}

const (
	ErrEmptyTariff       PricingError = "tariff has no steps"
	ErrStepNotBlock      PricingError = "tariff step minutes must be a positive multiple of 15"
	ErrDuplicateStep     PricingError = "tariff has duplicate step minutes"
	ErrNotMonotonic      PricingError = "tariff amounts must not decrease as duration grows"
	ErrNegativeAmount    PricingError = "tariff amounts must not be negative"
	ErrInvalidAmount     PricingError = "tariff amount is not a decimal"
	ErrInvalidExtraBlock PricingError = "tariff extra block amount is not a decimal"
)

// Step prices every duration up to Minutes
type Step struct {
	Minutes int
	Amount  decimal.Decimal
}

// Tariff maps a duration to a base amount. Durations are rounded up to a
// whole number of blocks; the smallest step covering the blocks applies.
// Durations past the last step pay the last step plus ExtraBlock for each
// additional block.
type Tariff struct {
	Currency   string
	Steps      []Step
	ExtraBlock decimal.Decimal
}

type tariffFile struct {
	Currency   string     `toml:"currency"`
	ExtraBlock string     `toml:"extra_block"`
	Steps      []stepFile `toml:"step"`
}

type stepFile struct {
	Minutes int    `toml:"minutes"`
	Amount  string `toml:"amount"`
}

// LoadTariff reads and validates a TOML tariff file
func LoadTariff(path string) (*Tariff, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tariff %s: %w", path, err)
	}
	return ParseTariff(data)
}

// ParseTariff decodes and validates a TOML tariff document
func ParseTariff(data []byte) (*Tariff, error) {
	var raw tariffFile
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode tariff: %w", err)
	}

	t := &Tariff{Currency: raw.Currency, ExtraBlock: decimal.Zero}
	if raw.ExtraBlock != "" {
		extra, err := decimal.NewFromString(raw.ExtraBlock)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidExtraBlock, raw.ExtraBlock)
		}
		t.ExtraBlock = extra
	}

	for _, st := range raw.Steps {
		amount, err := decimal.NewFromString(st.Amount)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, st.Amount)
		}
		t.Steps = append(t.Steps, Step{Minutes: st.Minutes, Amount: amount})
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Validate sorts the steps and checks the table is monotonically non-decreasing
func (t *Tariff) Validate() error {
	if len(t.Steps) == 0 {
		return ErrEmptyTariff
	}
	if t.ExtraBlock.IsNegative() {
		return ErrNegativeAmount
	}

	sort.Slice(t.Steps, func(i, j int) bool { return t.Steps[i].Minutes < t.Steps[j].Minutes })

	blockMinutes := int(Block / time.Minute)
	for i, st := range t.Steps {
		if st.Minutes <= 0 || st.Minutes%blockMinutes != 0 {
			return fmt.Errorf("%w: %d", ErrStepNotBlock, st.Minutes)
		}
		if st.Amount.IsNegative() {
			return ErrNegativeAmount
		}
		if i == 0 {
			continue
		}
		prev := t.Steps[i-1]
		if prev.Minutes == st.Minutes {
			return fmt.Errorf("%w: %d", ErrDuplicateStep, st.Minutes)
		}
		if st.Amount.LessThan(prev.Amount) {
			return fmt.Errorf("%w: %d minutes", ErrNotMonotonic, st.Minutes)
		}
	}
	return nil
}

// Blocks returns the number of billing blocks needed to cover d
func Blocks(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int((d + Block - 1) / Block)
}

// Base returns the undiscounted amount for d
func (t *Tariff) Base(d time.Duration) decimal.Decimal {
	blocks := Blocks(d)
	if blocks == 0 {
		return decimal.Zero
	}

	blockMinutes := int(Block / time.Minute)
	minutes := blocks * blockMinutes
	for _, st := range t.Steps {
		if st.Minutes >= minutes {
			return st.Amount
		}
	}

	last := t.Steps[len(t.Steps)-1]
	extra := blocks - last.Minutes/blockMinutes
	return last.Amount.Add(t.ExtraBlock.Mul(decimal.NewFromInt(int64(extra))))
}

// Price returns the amount for d, discounted by promo when it is active on
// today. The result is rounded to two decimal places. The same inputs always
// yield the same price.
func (t *Tariff) Price(d time.Duration, promo *models.Promotion, today time.Time) decimal.Decimal {
	amount := t.Base(d)
	if promo != nil && promo.IsActiveOn(today) {
		amount = amount.Mul(decimal.NewFromInt(1).Sub(promo.Rate))
	}
	return amount.Round(2)
}
