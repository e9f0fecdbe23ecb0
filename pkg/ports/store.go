package ports

import "context"

// KeyValueStore defines persistent string key-value storage.
// Used for team-id persistence, the anonymous analytics id and
// legacy-token cleanup.
type KeyValueStore interface {
	// Get retrieves the value for a key.
	// Returns domain.ErrKeyNotFound if the key does not exist.
	Get(ctx context.Context, key string) (string, error)

	// Set stores the value for a key.
	Set(ctx context.Context, key, value string) error

	// Delete removes a key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
