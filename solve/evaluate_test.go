package solve

import (
	"testing"

	"github.com/mathsolve/backend/problem"
	"github.com/stretchr/testify/require"
)

func TestPointsFor(t *testing.T) {
	require.Equal(t, 5, PointsFor(problem.DifficultyEasy))
	require.Equal(t, 10, PointsFor(problem.DifficultyMedium))
	require.Equal(t, 15, PointsFor(problem.DifficultyHard))
	// unknown difficulty falls back to the easy award
	require.Equal(t, 5, PointsFor(problem.Difficulty("extreme")))
	require.Equal(t, 5, PointsFor(problem.Difficulty("")))
}

func TestEvaluateExactMatch(t *testing.T) {
	p := &problem.Problem{
		Type:          problem.TypeShortAnswer,
		CorrectAnswer: "42",
		Difficulty:    problem.DifficultyHard,
	}

	correct, points := Evaluate(p, "42")
	require.True(t, correct)
	require.Equal(t, 15, points)

	correct, points = Evaluate(p, "41")
	require.False(t, correct)
	require.Equal(t, 0, points)

	// comparison is byte-exact: no trimming, no numeric parsing
	correct, _ = Evaluate(p, " 42")
	require.False(t, correct)
	correct, _ = Evaluate(p, "42 ")
	require.False(t, correct)
	correct, _ = Evaluate(p, "")
	require.False(t, correct)
}

func TestEvaluateNoNumericEquivalence(t *testing.T) {
	p := &problem.Problem{
		Type:          problem.TypeShortAnswer,
		CorrectAnswer: "007",
		Difficulty:    problem.DifficultyEasy,
	}

	correct, _ := Evaluate(p, "7")
	require.False(t, correct)

	correct, points := Evaluate(p, "007")
	require.True(t, correct)
	require.Equal(t, 5, points)
}

func TestEvaluateMultipleChoiceCaseSensitive(t *testing.T) {
	p := &problem.Problem{
		Type:          problem.TypeMultipleChoice,
		Options:       []string{"Paris", "London", "Berlin"},
		CorrectAnswer: "Paris",
		Difficulty:    problem.DifficultyMedium,
	}

	correct, points := Evaluate(p, "Paris")
	require.True(t, correct)
	require.Equal(t, 10, points)

	correct, _ = Evaluate(p, "paris")
	require.False(t, correct)
}
