package database

import (
	"errors"
	"fmt"
	"strings"
)

// The write path never pre-validates; the store's constraints are the single
// source of truth for validity. These sentinels are what a failed constraint
// surfaces as, matched with errors.Is.
var (
	// ErrUniquenessViolation: the natural key triple is already registered.
	ErrUniquenessViolation = errors.New("uniqueness violation")

	// ErrReferentialIntegrityViolation: a write references a worker that does
	// not exist, including one deregistered concurrently mid-transaction.
	ErrReferentialIntegrityViolation = errors.New("referential integrity violation")

	// ErrRangeViolation: a measurement is outside its declared inclusive range.
	ErrRangeViolation = errors.New("range violation")

	// ErrDomainViolation: a stress level outside the enumerated set.
	ErrDomainViolation = errors.New("domain violation")
)

// stressLevelCheck is the named constraint that separates a domain violation
// from the measurement range checks. Must match the migration.
const stressLevelCheck = "chk_stress_predictions_stress_level"

// ClassifyError maps a driver constraint failure onto the violation taxonomy.
// Anything that is not a recognized constraint failure passes through as-is.
func ClassifyError(err error) error {
	if err == nil {
		return nil
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return fmt.Errorf("%w: %v", ErrUniquenessViolation, err)
	case strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return fmt.Errorf("%w: %v", ErrReferentialIntegrityViolation, err)
	case strings.Contains(msg, "CHECK constraint failed"):
		if strings.Contains(msg, stressLevelCheck) {
			return fmt.Errorf("%w: %v", ErrDomainViolation, err)
		}
		return fmt.Errorf("%w: %v", ErrRangeViolation, err)
	}

	return err
}
