package todo

import (
	"strconv"
	"testing"
)

func benchmarkState(n int) State {
	ids := NewSequenceGenerator("T")
	s := State{}
	for i := 0; i < n; i++ {
		s = Add(s, "task "+strconv.Itoa(i), ids)
		if i%2 == 0 {
			s = Toggle(s, s.Tasks[0].ID)
		}
	}
	return s
}

func BenchmarkVisibleTasks(b *testing.B) {
	s := SetFilter(benchmarkState(100), true)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = VisibleTasks(s)
	}
}

func BenchmarkAddDuplicate(b *testing.B) {
	s := benchmarkState(100)
	ids := NewSequenceGenerator("B")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Add(s, "task 0", ids)
	}
}
