package testutil

import (
	"testing"

	"github.com/trezcool/progress/core"
	"github.com/trezcool/progress/core/course"
	"github.com/trezcool/progress/core/student"
	"github.com/trezcool/progress/storage/database/inmem"
)

// IDStart is the first student ID handed out by NewStudentService.
const IDStart = 10000

// NopLogger drops every event.
type NopLogger struct{}

var _ core.Logger = NopLogger{}

func (NopLogger) Debug(string, ...interface{}) {}
func (NopLogger) Info(string, ...interface{})  {}
func (NopLogger) Warn(string, ...interface{})  {}
func (NopLogger) Error(string, ...interface{}) {}
func (NopLogger) Fatal(string, ...interface{}) {}

// NewStudentService returns a student.Service backed by a fresh in-memory DB and the default catalog.
func NewStudentService(t *testing.T) *student.Service {
	t.Helper()
	db, err := inmemdb.Open(IDStart)
	if err != nil {
		t.Fatalf("NewStudentService() failed: %v", err)
	}
	validate, translator := core.NewValidator()
	return student.NewService(inmemdb.NewStudentRepository(db), course.DefaultCatalog(), validate, translator, NopLogger{})
}

func CreateStudent(t *testing.T, svc *student.Service, firstName, lastName, email string) student.Student {
	t.Helper()
	stu, err := svc.Register(student.NewStudent{FirstName: firstName, LastName: lastName, Email: email})
	if err != nil {
		t.Fatalf("CreateStudent() failed: %v", err)
	}
	return stu
}

// AddPoints adds `points` (one per catalog course, in order) to the student.
func AddPoints(t *testing.T, svc *student.Service, id int, points ...int) student.Student {
	t.Helper()
	updates := make([]student.PointsUpdate, 0, len(points))
	for i, c := range svc.Catalog() {
		if i < len(points) {
			updates = append(updates, student.PointsUpdate{Course: c.Name, Points: points[i]})
		}
	}
	stu, err := svc.AddPoints(id, updates)
	if err != nil {
		t.Fatalf("AddPoints() failed: %v", err)
	}
	return stu
}
