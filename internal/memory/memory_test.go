package memory

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRender_Empty(t *testing.T) {
	s := New(5)
	require.Equal(t, "", s.Render())
	require.Zero(t, s.Len())
}

func TestAppendRender_PreservesOrder(t *testing.T) {
	s := New(5)
	s.Append("first question", "first answer")
	s.Append("second question", "second answer")

	got := s.Render()
	require.Equal(t,
		"User: first question\nAssistant: first answer\n"+
			"User: second question\nAssistant: second answer\n",
		got)
}

func TestAppend_EvictsOldestBeyondCap(t *testing.T) {
	s := New(3)
	for i := 1; i <= 5; i++ {
		s.Append(fmt.Sprintf("q%d", i), fmt.Sprintf("a%d", i))
	}

	require.Equal(t, 3, s.Len())
	got := s.Render()
	require.NotContains(t, got, "q1")
	require.NotContains(t, got, "q2")
	require.Contains(t, got, "User: q3")
	require.Contains(t, got, "User: q5")
	// q3 still precedes q5 after eviction.
	require.Less(t, strings.Index(got, "q3"), strings.Index(got, "q5"))
}

func TestNew_NonPositiveCapUsesDefault(t *testing.T) {
	s := New(0)
	for i := 0; i < defaultMaxTurns+5; i++ {
		s.Append("q", "a")
	}
	require.Equal(t, defaultMaxTurns, s.Len())
}

func TestRender_AfterNTurnsContainsExactlyThoseTurns(t *testing.T) {
	s := New(50)
	const n = 7
	for i := 0; i < n; i++ {
		s.Append(fmt.Sprintf("question %d", i), fmt.Sprintf("answer %d", i))
	}
	got := s.Render()
	require.Equal(t, n, strings.Count(got, "User: "))
	require.Equal(t, n, strings.Count(got, "Assistant: "))
	for i := 0; i < n; i++ {
		require.Contains(t, got, fmt.Sprintf("question %d", i))
		require.Contains(t, got, fmt.Sprintf("answer %d", i))
	}
}
