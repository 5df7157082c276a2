package solve

import "github.com/mathsolve/backend/problem"

const (
	pointsEasy     = 5
	pointsMedium   = 10
	pointsHard     = 15
	pointsFallback = 5
)

// PointsFor maps a difficulty to the points a solver earns for it. Unknown
// difficulty values fall back to the easy award.
func PointsFor(d problem.Difficulty) int {
	switch d {
	case problem.DifficultyEasy:
		return pointsEasy
	case problem.DifficultyMedium:
		return pointsMedium
	case problem.DifficultyHard:
		return pointsHard
	default:
		return pointsFallback
	}
}

// Evaluate decides whether submittedAnswer solves p and, if so, how many
// points it is worth. The comparison is byte-exact string equality: no
// trimming, case folding or numeric parsing. Multiple-choice submissions
// are always one of the option strings, and short answers are restricted
// to canonical integer strings on both sides, so exact match suffices.
// A stored answer of "007" will not match a submitted "7"; that is a
// documented limitation, not a defect.
//
// Evaluate is a pure decision function; all mutation belongs to Submit.
func Evaluate(p *problem.Problem, submittedAnswer string) (correct bool, pointsEarned int) {
	if p.CorrectAnswer != submittedAnswer {
		return false, 0
	}
	return true, PointsFor(p.Difficulty)
}
