package memory

import (
	"context"

	"github.com/lattice-dev/lattice/pkg/ports"
)

// Contributors implements ports.ContributorSource with a fixed list.
type Contributors struct {
	Names []string
}

var _ ports.ContributorSource = (*Contributors)(nil)

// Fetch returns the configured names.
func (c *Contributors) Fetch(ctx context.Context) ([]string, error) {
	return append([]string(nil), c.Names...), nil
}
