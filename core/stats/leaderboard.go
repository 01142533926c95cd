package stats

import (
	"fmt"
	"sort"

	"github.com/trezcool/progress/core/course"
	"github.com/trezcool/progress/core/student"
)

// Learner is a leaderboard row.
type Learner struct {
	ID         int
	Points     int
	Completion float64 // share of the completion threshold, 1 = completed
}

// CompletionString formats Completion as a percentage with one decimal, e.g. "12.5%".
func (l Learner) CompletionString() string {
	return fmt.Sprintf("%.1f%%", l.Completion*100)
}

// TopLearners ranks the students with points in `c`: most points first, then lowest ID.
func TopLearners(c course.Course, students []student.Student) []Learner {
	learners := make([]Learner, 0, len(students))
	for _, stu := range students {
		points := stu.Points[c.Name]
		if points <= 0 {
			continue
		}
		learners = append(learners, Learner{
			ID:         stu.ID,
			Points:     points,
			Completion: c.Completion(points),
		})
	}
	sort.Slice(learners, func(i, j int) bool {
		if learners[i].Points != learners[j].Points {
			return learners[i].Points > learners[j].Points
		}
		return learners[i].ID < learners[j].ID
	})
	return learners
}
