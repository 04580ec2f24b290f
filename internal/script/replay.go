package script

import (
	"fmt"

	"github.com/nibzard/mytasks-go/internal/todo"
)

// Summary counts the outcome of a replay.
type Summary struct {
	Applied int
	Ignored int
}

// Replay applies the script's intents to store in order.
// Intents the store rejects (duplicates, unknown targets, empty text) are
// counted as ignored; they are not errors.
func Replay(store *todo.Store, s *Script) (Summary, error) {
	var sum Summary
	for i, intent := range s.Intents {
		applied, err := apply(store, intent)
		if err != nil {
			return sum, fmt.Errorf("intent %d: %w", i, err)
		}
		if applied {
			sum.Applied++
		} else {
			sum.Ignored++
		}
	}
	return sum, nil
}

func apply(store *todo.Store, intent Intent) (bool, error) {
	switch intent.Op {
	case OpAdd:
		return store.Add(intent.Text), nil
	case OpType:
		store.SetPendingText(intent.Text)
		return true, nil
	case OpSubmit:
		return store.Submit(), nil
	case OpToggle:
		id, ok := resolve(store, intent)
		if !ok {
			return false, nil
		}
		return store.Toggle(id), nil
	case OpDelete:
		id, ok := resolve(store, intent)
		if !ok {
			return false, nil
		}
		return store.Delete(id), nil
	case OpFilter:
		if intent.Enabled == nil {
			store.ToggleFilter()
		} else {
			store.SetFilter(*intent.Enabled)
		}
		return true, nil
	default:
		return false, fmt.Errorf("unknown op %q", intent.Op)
	}
}

// resolve returns the id an intent targets. An explicit id wins over text.
func resolve(store *todo.Store, intent Intent) (string, bool) {
	if intent.ID != "" {
		return intent.ID, true
	}
	task, ok := todo.FindByText(store.State(), intent.Text)
	if !ok {
		return "", false
	}
	return task.ID, true
}
