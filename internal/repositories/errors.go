package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5"
)

// ErrNotFound is returned when a lookup matches no row. Handlers translate
// it to 404 without masking.
var ErrNotFound = errors.New("record not found")

// notFound normalizes pgx's no-rows error to the package sentinel
func notFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
