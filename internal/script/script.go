// Package script loads, validates and replays recorded intent scripts.
//
// A script is a JSON document listing user intents in order:
//
//	{
//	  "version": 1,
//	  "title": "Groceries",
//	  "intents": [
//	    {"op": "add", "text": "Buy milk"},
//	    {"op": "type", "text": "Buy eggs"},
//	    {"op": "submit"},
//	    {"op": "toggle", "text": "Buy milk"},
//	    {"op": "filter", "enabled": true},
//	    {"op": "delete", "id": "T2"}
//	  ]
//	}
//
// toggle and delete address a task by id or, when id is absent, by text.
// filter without "enabled" flips the current value.
package script

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Op is the kind of a user intent.
type Op string

const (
	OpAdd    Op = "add"
	OpToggle Op = "toggle"
	OpDelete Op = "delete"
	OpFilter Op = "filter"
	OpType   Op = "type"
	OpSubmit Op = "submit"
)

// SchemaVersion is the only supported script version.
const SchemaVersion = 1

// Intent is one recorded user gesture.
type Intent struct {
	Op      Op     `json:"op"`
	Text    string `json:"text,omitempty"`
	ID      string `json:"id,omitempty"`
	Enabled *bool  `json:"enabled,omitempty"`
}

// Script is a recorded sequence of intents.
type Script struct {
	Version int      `json:"version"`
	Title   string   `json:"title,omitempty"`
	Intents []Intent `json:"intents"`
}

// Load reads, validates and parses a script file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("load script %s: %w", path, err)
	}
	return s, nil
}

// Parse validates and decodes a script document.
func Parse(data []byte) (*Script, error) {
	result := Validate(data)
	if !result.Valid {
		return nil, errors.Join(result.Errors...)
	}

	var s Script
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	return &s, nil
}
