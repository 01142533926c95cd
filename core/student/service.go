package student

import (
	"fmt"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/trezcool/progress/core"
	"github.com/trezcool/progress/core/course"
)

type (
	Repository interface {
		CheckEmailUniqueness(email string) error
		// CreateStudent assigns the next ID; it fails with ErrEmailExists if the email is taken.
		CreateStudent(stu Student) (Student, error)
		// QueryAllStudents returns students in registration order.
		QueryAllStudents() ([]Student, error)
		GetStudentByID(id int) (Student, error)
		CountStudents() (int, error)
		AddStudentPoints(id int, updates []PointsUpdate) (Student, error)
		MarkStudentNotified(id int, courseName string) error
	}

	Service struct {
		repo       Repository
		catalog    course.Catalog
		validate   *validator.Validate
		translator ut.Translator
		logger     core.Logger
	}
)

func NewService(
	repo Repository,
	catalog course.Catalog,
	validate *validator.Validate,
	translator ut.Translator,
	logger core.Logger,
) *Service {
	InitValidators(validate, translator)
	return &Service{
		repo:       repo,
		catalog:    catalog,
		validate:   validate,
		translator: translator,
		logger:     logger,
	}
}

func (svc *Service) Catalog() course.Catalog { return svc.catalog }

func (svc *Service) checkUniqueness(email string) error {
	if err := svc.repo.CheckEmailUniqueness(email); err != nil {
		return svc.uniquenessError(err)
	}
	return nil
}

func (svc *Service) uniquenessError(err error) error {
	if errors.Cause(err) == ErrEmailExists {
		return core.NewValidationError(ErrEmailExists, core.FieldError{Field: "email", Error: ErrEmailExists.Error()})
	}
	return err
}

// Register validates `ns` and creates the Student.
func (svc *Service) Register(ns NewStudent) (Student, error) {
	if err := ns.Validate(svc); err != nil {
		return Student{}, err
	}
	stu, err := svc.repo.CreateStudent(newStudent(ns, svc.catalog))
	if err != nil {
		return Student{}, svc.uniquenessError(err)
	}
	svc.logger.Info(fmt.Sprintf("student %d registered", stu.ID), stu)
	return stu, nil
}

// FindByID looks up a Student from a typed ID; malformed IDs are simply not found.
func (svc *Service) FindByID(idText string) (Student, error) {
	id, err := ParseID(idText)
	if err != nil {
		return Student{}, err
	}
	return svc.GetByID(id)
}

func (svc *Service) GetByID(id int) (Student, error) {
	return svc.repo.GetStudentByID(id)
}

func (svc *Service) QueryAll() ([]Student, error) {
	return svc.repo.QueryAllStudents()
}

func (svc *Service) Count() (int, error) {
	return svc.repo.CountStudents()
}

// ListIDs returns the IDs of all students in registration order.
func (svc *Service) ListIDs() ([]int, error) {
	students, err := svc.repo.QueryAllStudents()
	if err != nil {
		return nil, err
	}
	ids := make([]int, 0, len(students))
	for _, stu := range students {
		ids = append(ids, stu.ID)
	}
	return ids, nil
}

// AddPoints adds the points of each update to the Student's ledger.
// Zero-point updates are skipped; negative points or unknown courses are rejected as a whole.
func (svc *Service) AddPoints(id int, updates []PointsUpdate) (Student, error) {
	cleaned := make([]PointsUpdate, 0, len(updates))
	for _, u := range updates {
		if u.Points < 0 {
			return Student{}, ErrIncorrectPointsFormat
		}
		c, ok := svc.catalog.Lookup(u.Course)
		if !ok {
			return Student{}, errors.Wrap(ErrUnknownCourse, u.Course)
		}
		cleaned = append(cleaned, PointsUpdate{Course: c.Name, Points: u.Points})
	}
	stu, err := svc.repo.AddStudentPoints(id, cleaned)
	if err != nil {
		return Student{}, err
	}
	svc.logger.Debug(fmt.Sprintf("points updated for student %d", id), map[string]interface{}{"updates": cleaned}, stu)
	return stu, nil
}

// MarkNotified records that the completion of `courseName` has been announced to the Student.
func (svc *Service) MarkNotified(id int, courseName string) error {
	return svc.repo.MarkStudentNotified(id, courseName)
}
