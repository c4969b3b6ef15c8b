package cli

import (
	"fmt"
	"testing"
)

func TestPrintIncoming(t *testing.T) {
	var lines []string
	origPrint := printlnFn
	printlnFn = func(args ...any) (int, error) {
		lines = append(lines, fmt.Sprint(args...))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = origPrint })

	a := &App{}
	a.printIncoming("bob", "hello")
	a.printIncoming("", "server maintenance at noon")

	want := []string{"<bob> hello", "server maintenance at noon"}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %v", len(want), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d: expected %q, got %q", i, want[i], lines[i])
		}
	}
}
