package snowdata

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaURL = "schema://snowin/snapshot.json"

// snapshotSchema describes the JSON accepted by Parse.
var snapshotSchema = map[string]any{
	"type":     "object",
	"required": []any{"rider", "weather", "resorts", "equipment", "news", "session", "leaderboard", "profile"},
	"properties": map[string]any{
		"rider": map[string]any{
			"type":     "object",
			"required": []any{"name", "level", "total_xp"},
			"properties": map[string]any{
				"name":     map[string]any{"type": "string", "minLength": 1},
				"level":    map[string]any{"type": "integer", "minimum": 0},
				"total_xp": map[string]any{"type": "integer", "minimum": 0},
				"sessions": map[string]any{"type": "integer", "minimum": 0},
				"badges":   map[string]any{"type": "integer", "minimum": 0},
			},
		},
		"weather": map[string]any{
			"type":     "object",
			"required": []any{"location", "temperature_c", "sky"},
			"properties": map[string]any{
				"location":      map[string]any{"type": "string"},
				"temperature_c": map[string]any{"type": "integer"},
				"sky":           map[string]any{"type": "string"},
				"icon":          map[string]any{"type": "string"},
				"conditions":    map[string]any{"type": "array", "items": labelled("title", "value")},
			},
		},
		"resorts": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type":     "object",
				"required": []any{"name"},
				"properties": map[string]any{
					"name":   map[string]any{"type": "string", "minLength": 1},
					"status": map[string]any{"type": "string"},
				},
			},
		},
		"equipment": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":     "object",
				"required": []any{"name", "status"},
				"properties": map[string]any{
					"name":    map[string]any{"type": "string"},
					"status":  map[string]any{"type": "string"},
					"battery": percent(),
				},
			},
		},
		"news": map[string]any{"type": "array", "items": labelled("title", "description")},
		"session": map[string]any{
			"type":     "object",
			"required": []any{"stats", "tricks"},
			"properties": map[string]any{
				"stats": map[string]any{
					"type":     "object",
					"required": []any{"duration_seconds", "distance_km", "xp_earned", "avg_speed_kmh"},
					"properties": map[string]any{
						"duration_seconds": map[string]any{"type": "integer", "minimum": 0},
						"distance_km":      map[string]any{"type": "number", "minimum": 0},
						"xp_earned":        map[string]any{"type": "integer", "minimum": 0},
						"avg_speed_kmh":    map[string]any{"type": "number", "minimum": 0},
					},
				},
				"tricks": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type":     "object",
						"required": []any{"name", "time", "xp", "outcome"},
						"properties": map[string]any{
							"name":    map[string]any{"type": "string", "minLength": 1},
							"time":    map[string]any{"type": "string", "pattern": "^[0-2][0-9]:[0-5][0-9]$"},
							"xp":      map[string]any{"type": "integer", "minimum": 0},
							"outcome": map[string]any{"type": "string", "pattern": "^(?i)(perfect|partial|failed)$"},
						},
					},
				},
			},
		},
		"leaderboard": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"podium": map[string]any{
					"type":     "array",
					"maxItems": 3,
					"items": map[string]any{
						"type":     "object",
						"required": []any{"rank", "name", "score"},
						"properties": map[string]any{
							"rank":  map[string]any{"type": "integer", "minimum": 1, "maximum": 3},
							"name":  map[string]any{"type": "string"},
							"score": map[string]any{"type": "integer", "minimum": 0},
						},
					},
				},
				"categories": map[string]any{"type": "array", "items": labelled("title", "leader")},
				"friends": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type":     "object",
						"required": []any{"rank", "name", "xp"},
						"properties": map[string]any{
							"rank": map[string]any{"type": "integer", "minimum": 1},
							"name": map[string]any{"type": "string"},
							"xp":   map[string]any{"type": "integer", "minimum": 0},
						},
					},
				},
			},
		},
		"profile": map[string]any{
			"type":     "object",
			"required": []any{"device"},
			"properties": map[string]any{
				"device": map[string]any{
					"type":     "object",
					"required": []any{"name", "battery", "firmware"},
					"properties": map[string]any{
						"name":     map[string]any{"type": "string"},
						"battery":  percent(),
						"firmware": map[string]any{"type": "string"},
					},
				},
				"stats":    map[string]any{"type": "array", "items": labelled("title", "value")},
				"settings": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
				"friends":  map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			},
		},
	},
}

func labelled(required ...string) map[string]any {
	req := make([]any, 0, len(required))
	for _, r := range required {
		req = append(req, r)
	}
	return map[string]any{"type": "object", "required": req}
}

func percent() map[string]any {
	return map[string]any{"type": "integer", "minimum": 0, "maximum": 100}
}

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// compiledSchema compiles snapshotSchema on first use.
func compiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The compiler wants a decoded JSON value, so round-trip the Go literal.
		defBytes, err := json.Marshal(snapshotSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var def any
		if err := json.Unmarshal(defBytes, &def); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}

// Parse decodes and validates a JSON snapshot.
func Parse(raw []byte) (*Snapshot, error) {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, &ErrInvalidSnapshot{Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	sch, err := compiledSchema()
	if err != nil {
		return nil, fmt.Errorf("compile snapshot schema: %w", err)
	}
	if err := sch.Validate(doc); err != nil {
		return nil, &ErrInvalidSnapshot{Err: fmt.Errorf("schema validation failed: %w", err)}
	}

	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, &ErrInvalidSnapshot{Err: err}
	}
	if err := snap.Validate(); err != nil {
		return nil, err
	}
	return &snap, nil
}
