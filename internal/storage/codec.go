package storage

import (
	"encoding/json"
	"fmt"
)

// GetJSON reads the record under key and unmarshals it into v. Returns
// false when no record exists, leaving v untouched.
func GetJSON(p Provider, key string, v any) (bool, error) {
	raw, ok, err := p.Get(key)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}

	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return false, fmt.Errorf("failed to decode record %q: %w", key, err)
	}

	return true, nil
}

// SetJSON marshals v and stores it under key, replacing any prior value.
func SetJSON(p Provider, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode record %q: %w", key, err)
	}

	return p.Set(key, string(data))
}
