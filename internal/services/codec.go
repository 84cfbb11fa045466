package services

import (
	"context"
	"encoding/json"

	"github.com/mindcare-app/mindcare/internal/logging"
	"github.com/mindcare-app/mindcare/internal/repositories/kv"
)

// getJSON loads and decodes a stored JSON value into out. A missing key
// leaves out at its zero value and returns false. A value that fails to
// decode is treated the same way, with a warning: a corrupt record must not
// take the whole app down, the worst case is starting that record over.
func getJSON(ctx context.Context, repo kv.Repository, log logging.Logger, key string, out any) (bool, error) {
	raw, err := repo.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if raw == nil {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		log.Warn(ctx, "discarding corrupt stored value", "key", key, "error", err)
		return false, nil
	}
	return true, nil
}

// setJSON encodes v and stores it under key.
func setJSON(ctx context.Context, repo kv.Repository, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return repo.Set(ctx, key, raw)
}
