package student

import (
	"time"

	"github.com/trezcool/progress/core"
	"github.com/trezcool/progress/core/course"
)

type Student struct {
	ID          int             `json:"id"`
	FirstName   string          `json:"first_name"`
	LastName    string          `json:"last_name"`
	Email       string          `json:"email"`
	Points      map[string]int  `json:"points"`      // {course name: accumulated points}
	Submissions map[string]int  `json:"submissions"` // {course name: non-zero point additions}
	Notified    map[string]bool `json:"notified"`    // {course name: completion announced}
	CreatedAt   time.Time       `json:"created_at"`  // UTC
	UpdatedAt   time.Time       `json:"updated_at"`  // UTC
}

func newStudent(ns NewStudent, catalog course.Catalog) Student {
	now := time.Now().UTC()
	stu := Student{
		FirstName:   ns.FirstName,
		LastName:    ns.LastName,
		Email:       ns.Email,
		Points:      make(map[string]int, len(catalog)),
		Submissions: make(map[string]int, len(catalog)),
		Notified:    make(map[string]bool, len(catalog)),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, c := range catalog {
		stu.Points[c.Name] = 0
		stu.Submissions[c.Name] = 0
		stu.Notified[c.Name] = false
	}
	return stu
}

func (s Student) FullName() string {
	return s.FirstName + " " + s.LastName
}

// AddPoints records a submission worth `points` in `courseName`.
// Zero (or negative) points are ignored: they are not a submission.
func (s *Student) AddPoints(courseName string, points int) bool {
	if points <= 0 {
		return false
	}
	if s.Points == nil {
		s.Points = make(map[string]int)
	}
	if s.Submissions == nil {
		s.Submissions = make(map[string]int)
	}
	s.Points[courseName] += points
	s.Submissions[courseName]++
	return true
}

// HasCompleted reports whether the points in `c` are exactly its completion threshold.
func (s Student) HasCompleted(c course.Course) bool {
	return s.Points[c.Name] == c.CompletionThreshold
}

func (s *Student) MarkNotified(courseName string) {
	if s.Notified == nil {
		s.Notified = make(map[string]bool)
	}
	s.Notified[courseName] = true
}

// Clone returns a deep copy of the Student; repositories never hand out their own maps.
func (s Student) Clone() Student {
	c := s
	c.Points = make(map[string]int, len(s.Points))
	for k, v := range s.Points {
		c.Points[k] = v
	}
	c.Submissions = make(map[string]int, len(s.Submissions))
	for k, v := range s.Submissions {
		c.Submissions[k] = v
	}
	c.Notified = make(map[string]bool, len(s.Notified))
	for k, v := range s.Notified {
		c.Notified[k] = v
	}
	return c
}

// NewStudent contains information needed to register a new Student.
type NewStudent struct {
	FirstName string `json:"first_name" validate:"required,firstname"`
	LastName  string `json:"last_name" validate:"required,lastname"`
	Email     string `json:"email" validate:"required,emailaddr"`
}

func (ns *NewStudent) Validate(svc *Service) error {
	ns.FirstName = core.CleanString(ns.FirstName)
	ns.LastName = core.CleanString(ns.LastName)
	ns.Email = core.CleanString(ns.Email)

	if err := svc.validate.Struct(ns); err != nil {
		return svc.credentialsError(err)
	}
	return svc.checkUniqueness(ns.Email)
}

// PointsUpdate is the amount of points earned in a course by a single submission.
type PointsUpdate struct {
	Course string `json:"course"`
	Points int    `json:"points"`
}

// PointsRequest is a parsed `<id> <points>...` line.
type PointsRequest struct {
	ID      string
	Updates []PointsUpdate
}
