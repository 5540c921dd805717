package service

import (
	"encoding/json"
	"strings"

	"go.uber.org/zap"
	"gorm.io/datatypes"
)

// corruptedMarker is what a browser produces when an object is coerced to a
// string before submission instead of being serialized.
const corruptedMarker = "[object Object]"

// ParseFeatures tolerantly decodes the client-supplied features value.
// Depending on the transport path the client sends either structured JSON or
// a stringified version of it, so the value is accepted as any valid JSON
// document. Corrupted or unparseable input yields nil (stored as NULL) and is
// logged; it is never surfaced as an error.
func ParseFeatures(raw string) datatypes.JSON {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	if strings.Contains(raw, corruptedMarker) {
		zap.S().Warnw("invalid features string detected, storing null", "value", raw)
		return nil
	}
	if !json.Valid([]byte(raw)) {
		zap.S().Warnw("features value is not valid JSON, storing null", "value", raw)
		return nil
	}
	return datatypes.JSON(raw)
}
