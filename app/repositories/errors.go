package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/shashiranjanraj/warehouse/pkg/database"
	"github.com/shashiranjanraj/warehouse/pkg/logger"
	"github.com/shashiranjanraj/warehouse/pkg/metrics"
)

// ErrConflict is the generic store conflict. Every constraint error below
// wraps it, so errors.Is(err, ErrConflict) holds for all of them.
var ErrConflict = errors.New("conflict")

var (
	ErrDuplicateEmail       = fmt.Errorf("%w: a supplier with this email already exists", ErrConflict)
	ErrDuplicatePhone       = fmt.Errorf("%w: a supplier with this phone already exists", ErrConflict)
	ErrDuplicateDescription = fmt.Errorf("%w: a product with this description already exists", ErrConflict)
	ErrDuplicateAddress     = fmt.Errorf("%w: a storage with this address already exists", ErrConflict)
	ErrDuplicateLink        = fmt.Errorf("%w: link already exists", ErrConflict)
	ErrNegativeLeftover     = fmt.Errorf("%w: leftover cannot be negative", ErrConflict)
	ErrUnknownReference     = fmt.Errorf("%w: referenced record does not exist", ErrConflict)
)

// ErrNotFound is returned by lookups that require an existing parent row.
var ErrNotFound = errors.New("not found")

// leftoverCheck is the check constraint on products_and_storages.leftover.
const leftoverCheck = "leftover_non_negative"

// rule maps a violation to a domain error. A rule without names matches every
// violation of its kind.
type rule struct {
	kind   database.Kind
	names  []string
	target error
}

func (r rule) matches(v *database.Violation) bool {
	if v.Kind != r.kind {
		return false
	}
	if len(r.names) == 0 {
		return true
	}
	for _, name := range r.names {
		if v.Names(name) {
			return true
		}
	}
	return false
}

// translate turns store errors into domain errors. Constraint violations
// matching a rule become that rule's error, unmatched ones become
// ErrConflict; both keep the driver error in the chain. Anything else is
// logged under op and returned unchanged.
func translate(ctx context.Context, op string, err error, rules ...rule) error {
	if err == nil {
		return nil
	}

	v, ok := database.Classify(err)
	if !ok {
		if !errors.Is(err, context.Canceled) && !errors.Is(err, ErrNotFound) {
			logger.WithCtx(ctx).Error("repository: operation failed", "op", op, "error", err)
		}
		return err
	}

	metrics.RecordStoreError(v.Kind.String())

	for _, r := range rules {
		if r.matches(v) {
			return fmt.Errorf("%w: %w", r.target, v)
		}
	}
	logger.WithCtx(ctx).Warn("repository: unclassified constraint violation", "op", op, "kind", v.Kind.String(), "constraint", v.Constraint, "error", err)
	return fmt.Errorf("%w: %w", ErrConflict, v)
}
