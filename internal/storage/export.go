package storage

import (
	"encoding/json"
	"fmt"

	"github.com/habitheroapp/habithero/internal/models"
)

// Export serializes the document to human-readable JSON, the interchange
// format shared with Import.
func Export(data models.AppData) ([]byte, error) {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize document: %w", err)
	}
	return raw, nil
}

// Import parses an exported document. Malformed input fails with ErrParse
// and nothing is applied; the caller replaces its document only on success.
func Import(raw []byte) (models.AppData, error) {
	var data models.AppData
	if err := json.Unmarshal(raw, &data); err != nil {
		return models.AppData{}, fmt.Errorf("%w: %v", ErrParse, err)
	}
	for i, h := range data.Habits {
		if h.ID == "" {
			return models.AppData{}, fmt.Errorf("%w: habit %d has no id", ErrParse, i)
		}
	}
	normalize(&data)
	return data, nil
}
