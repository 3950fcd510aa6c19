package gradebus

import "math"

// Grading scale boundaries, inclusive lower bounds.
const (
	letterA = 90.0
	letterB = 80.0
	letterC = 70.0
	letterD = 60.0
)

// Percentage converts a raw score into a percentage rounded to two decimal
// places. A non-positive max yields 0 rather than NaN.
func Percentage(score float64, maxScore float64) float64 {
	if maxScore <= 0 {
		return 0
	}

	pct := score / maxScore * 100

	return math.Round(pct*100) / 100
}

// Letter maps a percentage to the letter grade on the standard scale.
func Letter(percent float64) string {
	switch {
	case percent >= letterA:
		return "A"
	case percent >= letterB:
		return "B"
	case percent >= letterC:
		return "C"
	case percent >= letterD:
		return "D"
	default:
		return "F"
	}
}

// Summarize computes the average percentage and overall letter across the
// specified grades. Each grade is weighted equally regardless of max score.
func Summarize(grds []Grade) Summary {
	if len(grds) == 0 {
		return Summary{Letter: "F"}
	}

	var sum float64
	for _, grd := range grds {
		sum += Percentage(grd.Score, grd.MaxScore)
	}

	avg := math.Round(sum/float64(len(grds))*100) / 100

	return Summary{
		Grades:         len(grds),
		AveragePercent: avg,
		Letter:         Letter(avg),
	}
}
