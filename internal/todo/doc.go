// Package todo holds the task list state and the reducers that change it.
//
// State is a plain value. Every reducer takes a State and returns a new one
// without touching the caller's task slice:
//
//	s := todo.State{}
//	s = todo.Add(s, "Buy milk", ids)
//	s = todo.Toggle(s, s.Tasks[0].ID)
//	visible := todo.VisibleTasks(todo.SetFilter(s, true))
//
// # Rules
//
//   - New tasks are prepended, so the sequence is newest first.
//   - Task text is unique across the whole sequence. Adding a text that is
//     already present, completed or not, does nothing.
//   - Adding the empty string does nothing.
//   - Toggling or deleting an unknown id does nothing.
//   - The filter only changes what VisibleTasks returns; Tasks is never
//     rewritten by it.
//
// None of these cases are errors. Store wraps the reducers for callers that
// want a mutable handle and logs rejected operations at debug level.
//
// # Identifiers
//
// Ids come from an IDGenerator. UUIDGenerator is the default; the
// deterministic SequenceGenerator ("T1", "T2", ...) is used by replay and
// tests.
package todo
