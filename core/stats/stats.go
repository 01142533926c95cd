// Package stats computes course statistics over all registered students.
package stats

import (
	"github.com/trezcool/progress/core/course"
	"github.com/trezcool/progress/core/student"
)

// Report labels, in display order
const (
	LabelMostPopular     = "Most popular"
	LabelLeastPopular    = "Least popular"
	LabelHighestActivity = "Highest activity"
	LabelLowestActivity  = "Lowest activity"
	LabelEasiest         = "Easiest course"
	LabelHardest         = "Hardest course"
)

// Report holds course names for each statistic, in catalog order.
// All lists are empty when nobody has earned any points.
type Report struct {
	MostPopular     []string
	LeastPopular    []string
	HighestActivity []string
	LowestActivity  []string
	Easiest         []string
	Hardest         []string
}

// Section is a labelled Report list.
type Section struct {
	Label   string
	Courses []string
}

func (r Report) Sections() []Section {
	return []Section{
		{LabelMostPopular, r.MostPopular},
		{LabelLeastPopular, r.LeastPopular},
		{LabelHighestActivity, r.HighestActivity},
		{LabelLowestActivity, r.LowestActivity},
		{LabelEasiest, r.Easiest},
		{LabelHardest, r.Hardest},
	}
}

// CourseTotals aggregates the activity of every enrolled student in one course.
type CourseTotals struct {
	Course      course.Course
	Enrolments  int // students with points in the course
	Points      int
	Submissions int
}

// AverageScore is the mean number of points per submission, 0 without points.
func (t CourseTotals) AverageScore() float64 {
	if t.Points == 0 || t.Submissions == 0 {
		return 0
	}
	return float64(t.Points) / float64(t.Submissions)
}

// Totals aggregates `students` per course, in catalog order.
func Totals(students []student.Student, catalog course.Catalog) []CourseTotals {
	totals := make([]CourseTotals, len(catalog))
	for i, c := range catalog {
		totals[i].Course = c
		for _, stu := range students {
			if points := stu.Points[c.Name]; points > 0 {
				totals[i].Enrolments++
				totals[i].Points += points
				totals[i].Submissions += stu.Submissions[c.Name]
			}
		}
	}
	return totals
}

// Compute builds the statistics Report.
//
// Each course is compared against the catalog-wide maximum first, then the minimum:
// a course equal to both (e.g. uniform values) only lands in the "high" list.
func Compute(students []student.Student, catalog course.Catalog) Report {
	var report Report
	totals := Totals(students, catalog)

	var active bool
	for _, t := range totals {
		if t.Points > 0 {
			active = true
			break
		}
	}
	if !active {
		return report
	}

	enrolments := make([]float64, len(totals))
	submissions := make([]float64, len(totals))
	averages := make([]float64, len(totals))
	for i, t := range totals {
		enrolments[i] = float64(t.Enrolments)
		submissions[i] = float64(t.Submissions)
		averages[i] = t.AverageScore()
	}

	report.MostPopular, report.LeastPopular = extremes(totals, enrolments)
	report.HighestActivity, report.LowestActivity = extremes(totals, submissions)
	report.Easiest, report.Hardest = extremes(totals, averages)
	return report
}

// extremes splits courses into those at the maximum of `values` and,
// for the others, those at the minimum.
func extremes(totals []CourseTotals, values []float64) (high, low []string) {
	maxVal, minVal := values[0], values[0]
	for _, v := range values[1:] {
		if v > maxVal {
			maxVal = v
		}
		if v < minVal {
			minVal = v
		}
	}
	for i, v := range values {
		if v == maxVal {
			high = append(high, totals[i].Course.Name)
		} else if v == minVal {
			low = append(low, totals[i].Course.Name)
		}
	}
	return high, low
}
