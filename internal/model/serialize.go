package model

import (
	"encoding/json"
	"fmt"
)

// jsonIndent is the indentation used for the persisted file.
const jsonIndent = "  "

// MarshalStores encodes stores as a pretty-printed JSON array.
// A store without phones is written with an empty "phones" array, never null.
func MarshalStores(stores []Store) ([]byte, error) {
	out := make([]Store, len(stores))
	for i, s := range stores {
		if s.Phones == nil {
			s.Phones = []string{}
		}
		out[i] = s
	}

	data, err := json.MarshalIndent(out, "", jsonIndent)
	if err != nil {
		return nil, fmt.Errorf("failed to encode stores: %w", err)
	}
	return append(data, '\n'), nil
}

// UnmarshalStores decodes a JSON array of stores.
// Missing fields are left at their zero value. A top-level null decodes to
// an empty list.
func UnmarshalStores(data []byte) ([]Store, error) {
	var stores []Store
	if err := json.Unmarshal(data, &stores); err != nil {
		return nil, fmt.Errorf("failed to parse stores: %w", err)
	}
	if stores == nil {
		stores = []Store{}
	}
	return stores, nil
}
