package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trezcool/progress/core/course"
	"github.com/trezcool/progress/core/student"
)

// newStudent builds a student from {course: {points, submissions}}.
func newStudent(id int, ledger map[string][2]int) student.Student {
	stu := student.Student{
		ID:          id,
		Points:      make(map[string]int),
		Submissions: make(map[string]int),
	}
	for name, ps := range ledger {
		stu.Points[name] = ps[0]
		stu.Submissions[name] = ps[1]
	}
	return stu
}

func TestCompute(t *testing.T) {
	catalog := course.DefaultCatalog()
	threeCourses := course.Catalog{
		{Name: "A", CompletionThreshold: 100},
		{Name: "B", CompletionThreshold: 100},
		{Name: "C", CompletionThreshold: 100},
	}

	// enrolments A=5, B=5, C=2
	var popular []student.Student
	for id := 1; id <= 5; id++ {
		ledger := map[string][2]int{"A": {10, 1}, "B": {10, 1}}
		if id <= 2 {
			ledger["C"] = [2]int{10, 1}
		}
		popular = append(popular, newStudent(id, ledger))
	}

	tests := []struct {
		name     string
		students []student.Student
		catalog  course.Catalog
		want     Report
	}{
		{name: "no students", catalog: catalog},
		{
			name:     "students without points",
			students: []student.Student{newStudent(1, nil), newStudent(2, map[string][2]int{"DSA": {0, 0}})},
			catalog:  catalog,
		},
		{
			name:     "ties on popularity",
			students: popular,
			catalog:  threeCourses,
			want: Report{
				MostPopular:     []string{"A", "B"},
				LeastPopular:    []string{"C"},
				HighestActivity: []string{"A", "B"},
				LowestActivity:  []string{"C"},
				Easiest:         []string{"A", "B", "C"},
			},
		},
		{
			name: "zero activity courses count as least popular and hardest",
			students: []student.Student{
				newStudent(1, map[string][2]int{"Python": {8, 2}, "DSA": {7, 1}}),
				newStudent(2, map[string][2]int{"Python": {4, 1}}),
			},
			catalog: catalog,
			want: Report{
				MostPopular:     []string{"Python"},
				LeastPopular:    []string{"Databases", "Flask"},
				HighestActivity: []string{"Python"},
				LowestActivity:  []string{"Databases", "Flask"},
				Easiest:         []string{"DSA"},
				Hardest:         []string{"Databases", "Flask"},
			},
		},
		{
			name:     "single course: max wins over min",
			students: []student.Student{newStudent(1, map[string][2]int{"A": {5, 1}})},
			catalog:  course.Catalog{{Name: "A", CompletionThreshold: 10}},
			want: Report{
				MostPopular:     []string{"A"},
				HighestActivity: []string{"A"},
				Easiest:         []string{"A"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compute(tt.students, tt.catalog))
		})
	}
}

func TestReport_Sections(t *testing.T) {
	r := Report{MostPopular: []string{"DSA"}, Hardest: []string{"Flask"}}
	sections := r.Sections()

	labels := make([]string, 0, len(sections))
	for _, s := range sections {
		labels = append(labels, s.Label)
	}
	assert.Equal(t, []string{
		"Most popular", "Least popular", "Highest activity", "Lowest activity", "Easiest course", "Hardest course",
	}, labels)
	assert.Equal(t, []string{"DSA"}, sections[0].Courses)
	assert.Equal(t, []string{"Flask"}, sections[5].Courses)
}

func TestCourseTotals_AverageScore(t *testing.T) {
	assert.Equal(t, 0.0, CourseTotals{}.AverageScore())
	assert.Equal(t, 2.5, CourseTotals{Points: 5, Submissions: 2}.AverageScore())
}
