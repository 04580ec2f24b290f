package script

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nibzard/mytasks-go/internal/todo"
)

const groceries = `{
  "version": 1,
  "title": "Groceries",
  "intents": [
    {"op": "add", "text": "Buy milk"},
    {"op": "add", "text": "Buy milk"},
    {"op": "type", "text": "Buy eggs"},
    {"op": "submit"},
    {"op": "add", "text": "Buy bread"},
    {"op": "toggle", "text": "Buy milk"},
    {"op": "delete", "id": "T3"},
    {"op": "delete", "id": "T9"},
    {"op": "filter", "enabled": true}
  ]
}`

func errorPaths(result *ValidationResult) []string {
	var paths []string
	for _, err := range result.Errors {
		var ve *ValidationError
		if errors.As(err, &ve) {
			paths = append(paths, ve.Path)
		}
	}
	return paths
}

func TestParse(t *testing.T) {
	s, err := Parse([]byte(groceries))
	require.NoError(t, err)

	assert.Equal(t, 1, s.Version)
	assert.Equal(t, "Groceries", s.Title)
	require.Len(t, s.Intents, 9)
	assert.Equal(t, Intent{Op: OpAdd, Text: "Buy milk"}, s.Intents[0])
	require.NotNil(t, s.Intents[8].Enabled)
	assert.True(t, *s.Intents[8].Enabled)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		wantPath string
	}{
		{
			name:     "wrong version",
			doc:      `{"version": 2, "intents": []}`,
			wantPath: "version",
		},
		{
			name:     "missing intents",
			doc:      `{"version": 1}`,
			wantPath: "",
		},
		{
			name:     "unknown op",
			doc:      `{"version": 1, "intents": [{"op": "jump"}]}`,
			wantPath: "intents[0].op",
		},
		{
			name:     "toggle without target",
			doc:      `{"version": 1, "intents": [{"op": "submit"}, {"op": "toggle"}]}`,
			wantPath: "intents[1]",
		},
		{
			name:     "add without text",
			doc:      `{"version": 1, "intents": [{"op": "add"}]}`,
			wantPath: "intents[0]",
		},
		{
			name:     "unknown field",
			doc:      `{"version": 1, "intents": [{"op": "submit", "when": "now"}]}`,
			wantPath: "intents[0]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Validate([]byte(tt.doc))
			assert.False(t, result.Valid)
			assert.Contains(t, errorPaths(result), tt.wantPath)
		})
	}
}

func TestValidateAcceptsValidScript(t *testing.T) {
	result := Validate([]byte(groceries))
	assert.True(t, result.Valid, "errors: %v", result.Errors)
	assert.Empty(t, result.Errors)
}

func TestValidateInvalidJSON(t *testing.T) {
	result := Validate([]byte(`{"version": 1,`))
	assert.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0].Error(), "invalid JSON")
}

func TestParseReturnsValidationError(t *testing.T) {
	_, err := Parse([]byte(`{"version": 1, "intents": [{"op": "jump"}]}`))
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "intents[0].op", ve.Path)
}

func TestEmbeddedSchemaCompiles(t *testing.T) {
	schema, err := loadSchema()
	require.NoError(t, err)
	require.NotNil(t, schema)
}

func TestValidateIntentTargets(t *testing.T) {
	tests := []struct {
		name      string
		doc       string
		wantValid bool
	}{
		{"delete by id", `{"version": 1, "intents": [{"op": "delete", "id": "T1"}]}`, true},
		{"toggle by text", `{"version": 1, "intents": [{"op": "toggle", "text": "A"}]}`, true},
		{"filter without enabled", `{"version": 1, "intents": [{"op": "filter"}]}`, true},
		{"delete without target", `{"version": 1, "intents": [{"op": "delete"}]}`, false},
		{"missing op", `{"version": 1, "intents": [{}]}`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Validate([]byte(tt.doc))
			assert.Equal(t, tt.wantValid, result.Valid, "errors: %v", result.Errors)
		})
	}
}

func TestJSONPointerToPath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"#", ""},
		{"/version", "version"},
		{"/intents/2/op", "intents[2].op"},
		{"#/intents/0", "intents[0]"},
		{"/a~1b/c~0d", "a/b.c~d"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, jsonPointerToPath(tt.in), "pointer %q", tt.in)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "ok.json")
	require.NoError(t, os.WriteFile(path, []byte(groceries), 0644))
	s, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, s.Intents, 9)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"version": 2, "intents": []}`), 0644))
	_, err = Load(bad)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "bad.json"))

	_, err = Load(filepath.Join(dir, "missing.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReplay(t *testing.T) {
	s, err := Parse([]byte(groceries))
	require.NoError(t, err)

	store := todo.NewStore(todo.WithIDGenerator(todo.NewSequenceGenerator("T")))
	sum, err := Replay(store, s)
	require.NoError(t, err)

	// Rejected: duplicate add, delete of T9.
	assert.Equal(t, Summary{Applied: 7, Ignored: 2}, sum)

	state := store.State()
	assert.True(t, state.FilterEnabled)
	assert.Empty(t, state.PendingText)
	require.Len(t, state.Tasks, 2)
	assert.Equal(t, todo.Task{ID: "T2", Text: "Buy eggs"}, state.Tasks[0])
	assert.Equal(t, todo.Task{ID: "T1", Text: "Buy milk", Completed: true}, state.Tasks[1])

	visible := store.VisibleTasks()
	require.Len(t, visible, 1)
	assert.Equal(t, "Buy eggs", visible[0].Text)
}

func TestReplayMatchesReducers(t *testing.T) {
	s, err := Parse([]byte(`{"version": 1, "intents": [
		{"op": "add", "text": "A"},
		{"op": "add", "text": "B"},
		{"op": "toggle", "id": "T1"},
		{"op": "filter"}
	]}`))
	require.NoError(t, err)

	store := todo.NewStore(todo.WithIDGenerator(todo.NewSequenceGenerator("T")))
	_, err = Replay(store, s)
	require.NoError(t, err)

	ids := todo.NewSequenceGenerator("T")
	want := todo.State{}
	want = todo.Add(want, "A", ids)
	want = todo.Add(want, "B", ids)
	want = todo.Toggle(want, "T1")
	want = todo.SetFilter(want, true)

	assert.Equal(t, want, store.State())
}

func TestReplayUnknownTextTarget(t *testing.T) {
	store := todo.NewStore(todo.WithIDGenerator(todo.NewSequenceGenerator("T")))
	sum, err := Replay(store, &Script{Version: 1, Intents: []Intent{
		{Op: OpToggle, Text: "nothing"},
		{Op: OpDelete, Text: "nothing"},
	}})
	require.NoError(t, err)
	assert.Equal(t, Summary{Ignored: 2}, sum)
}

func TestReplayUnknownOp(t *testing.T) {
	store := todo.NewStore()
	_, err := Replay(store, &Script{Version: 1, Intents: []Intent{{Op: "jump"}}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "intent 0")
}
