package gradebus_test

import (
	"testing"

	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/gradebus"
	"github.com/google/go-cmp/cmp"
)

func Test_Percentage(t *testing.T) {
	table := []struct {
		name  string
		score float64
		max   float64
		want  float64
	}{
		{"full marks", 50, 50, 100},
		{"two thirds", 2, 3, 66.67},
		{"zero score", 0, 100, 0},
		{"zero max", 10, 0, 0},
		{"negative max", 10, -5, 0},
		{"rounds half up", 1, 8, 12.5},
	}

	for _, tt := range table {
		t.Run(tt.name, func(t *testing.T) {
			got := gradebus.Percentage(tt.score, tt.max)
			if got != tt.want {
				t.Errorf("Percentage(%g, %g) = %g, want %g", tt.score, tt.max, got, tt.want)
			}
		})
	}
}

func Test_Letter(t *testing.T) {
	table := []struct {
		percent float64
		want    string
	}{
		{100, "A"},
		{90, "A"},
		{89.99, "B"},
		{80, "B"},
		{79.99, "C"},
		{70, "C"},
		{69.99, "D"},
		{60, "D"},
		{59.99, "F"},
		{0, "F"},
	}

	for _, tt := range table {
		if got := gradebus.Letter(tt.percent); got != tt.want {
			t.Errorf("Letter(%g) = %q, want %q", tt.percent, got, tt.want)
		}
	}
}

func Test_Summarize(t *testing.T) {
	table := []struct {
		name string
		grds []gradebus.Grade
		want gradebus.Summary
	}{
		{
			name: "empty",
			grds: nil,
			want: gradebus.Summary{Grades: 0, AveragePercent: 0, Letter: "F"},
		},
		{
			name: "single grade",
			grds: []gradebus.Grade{
				{Score: 45, MaxScore: 50},
			},
			want: gradebus.Summary{Grades: 1, AveragePercent: 90, Letter: "A"},
		},
		{
			name: "equal weight across different max scores",
			grds: []gradebus.Grade{
				{Score: 10, MaxScore: 10},
				{Score: 50, MaxScore: 100},
			},
			want: gradebus.Summary{Grades: 2, AveragePercent: 75, Letter: "C"},
		},
		{
			name: "boundary average",
			grds: []gradebus.Grade{
				{Score: 58, MaxScore: 100},
				{Score: 62, MaxScore: 100},
			},
			want: gradebus.Summary{Grades: 2, AveragePercent: 60, Letter: "D"},
		},
	}

	for _, tt := range table {
		t.Run(tt.name, func(t *testing.T) {
			got := gradebus.Summarize(tt.grds)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Summarize() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
