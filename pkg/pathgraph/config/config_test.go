package config_test

import (
	"testing"
	"time"

	"github.com/randalmurphal/pathgraph/pkg/pathgraph/config"
	"github.com/stretchr/testify/assert"
)

// TestHas verifies key presence checks.
func TestHas(t *testing.T) {
	cfg := config.New(map[string]any{"present": 1})
	assert.True(t, cfg.Has("present"))
	assert.False(t, cfg.Has("absent"))

	empty := config.New(nil)
	assert.False(t, empty.Has("anything"))
}

// TestString verifies string extraction with defaults.
func TestString(t *testing.T) {
	tests := []struct {
		name       string
		data       map[string]any
		key        string
		defaultVal string
		want       string
	}{
		{"key exists", map[string]any{"name": "alice"}, "name", "default", "alice"},
		{"key missing", map[string]any{"other": "value"}, "name", "default", "default"},
		{"empty string", map[string]any{"name": ""}, "name", "default", ""},
		{"wrong type", map[string]any{"name": 123}, "name", "default", "default"},
		{"nil map", nil, "name", "default", "default"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New(tt.data)
			assert.Equal(t, tt.want, cfg.String(tt.key, tt.defaultVal))
		})
	}
}

// TestBool verifies boolean extraction with defaults.
func TestBool(t *testing.T) {
	tests := []struct {
		name       string
		data       map[string]any
		defaultVal bool
		want       bool
	}{
		{"true value", map[string]any{"flag": true}, false, true},
		{"false value", map[string]any{"flag": false}, true, false},
		{"missing", map[string]any{}, true, true},
		{"wrong type", map[string]any{"flag": "yes"}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New(tt.data)
			assert.Equal(t, tt.want, cfg.Bool("flag", tt.defaultVal))
		})
	}
}

// TestInt verifies integer extraction across the decoder-produced types.
func TestInt(t *testing.T) {
	tests := []struct {
		name       string
		data       map[string]any
		defaultVal int
		want       int
	}{
		{"int", map[string]any{"n": 42}, 0, 42},
		{"int64", map[string]any{"n": int64(42)}, 0, 42},
		{"whole float", map[string]any{"n": 42.0}, 0, 42},
		{"fractional float", map[string]any{"n": 42.5}, 7, 7},
		{"missing", map[string]any{}, 7, 7},
		{"wrong type", map[string]any{"n": "42"}, 7, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New(tt.data)
			assert.Equal(t, tt.want, cfg.Int("n", tt.defaultVal))
		})
	}
}

// TestFloat verifies float extraction with numeric widening.
func TestFloat(t *testing.T) {
	cfg := config.New(map[string]any{
		"f":   1.5,
		"i":   2,
		"i64": int64(3),
		"s":   "nope",
	})

	assert.Equal(t, 1.5, cfg.Float("f", 0))
	assert.Equal(t, 2.0, cfg.Float("i", 0))
	assert.Equal(t, 3.0, cfg.Float("i64", 0))
	assert.Equal(t, 9.0, cfg.Float("s", 9))
	assert.Equal(t, 9.0, cfg.Float("missing", 9))
}

// TestDuration verifies duration extraction with various input types.
func TestDuration(t *testing.T) {
	tests := []struct {
		name       string
		data       map[string]any
		defaultVal time.Duration
		want       time.Duration
	}{
		{"duration string", map[string]any{"d": "250ms"}, time.Second, 250 * time.Millisecond},
		{"invalid string", map[string]any{"d": "soon"}, time.Second, time.Second},
		{"int seconds", map[string]any{"d": 2}, time.Second, 2 * time.Second},
		{"float seconds", map[string]any{"d": 0.5}, time.Second, 500 * time.Millisecond},
		{"duration value", map[string]any{"d": 3 * time.Second}, time.Second, 3 * time.Second},
		{"missing", map[string]any{}, time.Second, time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New(tt.data)
			assert.Equal(t, tt.want, cfg.Duration("d", tt.defaultVal))
		})
	}
}
