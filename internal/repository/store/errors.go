package store

import (
	"fmt"

	"github.com/Rrens/jusoor-api/internal/domain"
)

// storeErr tags a driver error as a storage failure.
func storeErr(op string, err error) error {
	return fmt.Errorf("%w: failed to %s: %w", domain.ErrStoreFailure, op, err)
}
