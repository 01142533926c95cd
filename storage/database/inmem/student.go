package inmemdb

import (
	"time"

	"github.com/trezcool/progress/core/student"
)

type studentRepository struct {
	db *studentTable
}

var _ student.Repository = (*studentRepository)(nil) // interface compliance check

func NewStudentRepository(db *DB) student.Repository {
	return &studentRepository{db: db.student}
}

func (repo *studentRepository) query() []student.Student {
	students := make([]student.Student, 0, len(repo.db.order))
	for _, id := range repo.db.order {
		students = append(students, repo.db.table[id].Clone())
	}
	return students
}

func (repo *studentRepository) emailTaken(email string) bool {
	for _, stu := range repo.db.table {
		if stu.Email == email {
			return true
		}
	}
	return false
}

func (repo *studentRepository) CheckEmailUniqueness(email string) error {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if repo.emailTaken(email) {
		return student.ErrEmailExists
	}
	return nil
}

func (repo *studentRepository) CreateStudent(stu student.Student) (student.Student, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	// re-checked under the write lock
	if repo.emailTaken(stu.Email) {
		return student.Student{}, student.ErrEmailExists
	}

	stu = stu.Clone()
	stu.ID = repo.db.nextID
	repo.db.nextID++
	repo.db.table[stu.ID] = &stu
	repo.db.order = append(repo.db.order, stu.ID)
	return stu.Clone(), nil
}

func (repo *studentRepository) QueryAllStudents() ([]student.Student, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return repo.query(), nil
}

func (repo *studentRepository) GetStudentByID(id int) (student.Student, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if stu, ok := repo.db.table[id]; ok {
		return stu.Clone(), nil
	}
	return student.Student{}, student.ErrNotFound
}

func (repo *studentRepository) CountStudents() (int, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return len(repo.db.order), nil
}

func (repo *studentRepository) AddStudentPoints(id int, updates []student.PointsUpdate) (student.Student, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	stu, ok := repo.db.table[id]
	if !ok {
		return student.Student{}, student.ErrNotFound
	}
	for _, u := range updates {
		stu.AddPoints(u.Course, u.Points)
	}
	stu.UpdatedAt = time.Now().UTC()
	return stu.Clone(), nil
}

func (repo *studentRepository) MarkStudentNotified(id int, courseName string) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	stu, ok := repo.db.table[id]
	if !ok {
		return student.ErrNotFound
	}
	stu.MarkNotified(courseName)
	stu.UpdatedAt = time.Now().UTC()
	return nil
}
