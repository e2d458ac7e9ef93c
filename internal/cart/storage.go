package cart

import (
	"errors"

	"github.com/fjod/go_storefront/internal/domain"
)

// ErrNoSavedCart is returned by Storage.Load when nothing has been
// persisted yet.
var ErrNoSavedCart = errors.New("no saved cart")

// Storage persists the cart-line sequence between runs. Consumers define
// this interface, not the file implementation; it exists so the reducer and
// store logic can be tested without touching disk.
type Storage interface {
	Load() ([]domain.CartLine, error)
	Save(lines []domain.CartLine) error
}
