// Package notify announces course completions to students.
package notify

import (
	"context"
	"fmt"
	"net/mail"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/trezcool/progress/core"
	"github.com/trezcool/progress/core/student"
)

const (
	completionSubject  = "Your Learning Progress"
	completionTemplate = "course_completed"
)

func init() {
	core.MustRegisterEmailTemplate(completionTemplate,
		"Hello, {{.FirstName}} {{.LastName}}! You have accomplished our {{.Course}} course!")
}

// Notification is emitted once per (student, course) when the student's points reach the completion threshold.
type Notification struct {
	ID        uuid.UUID
	StudentID int
	Email     string
	FirstName string
	LastName  string
	Course    string
}

func (n Notification) Message() *core.EmailMessage {
	return &core.EmailMessage{
		To:           []mail.Address{{Name: n.FirstName + " " + n.LastName, Address: n.Email}},
		Subject:      completionSubject,
		TemplateName: completionTemplate,
		TemplateData: n,
	}
}

type Notifier struct {
	students *student.Service
	mailSvc  core.EmailService
	logger   core.Logger
}

func NewNotifier(students *student.Service, mailSvc core.EmailService, logger core.Logger) *Notifier {
	return &Notifier{
		students: students,
		mailSvc:  mailSvc,
		logger:   logger,
	}
}

// Pending lists the completions not announced yet, in registration then catalog order.
func (n *Notifier) Pending() ([]Notification, error) {
	all, err := n.students.QueryAll()
	if err != nil {
		return nil, err
	}
	var pending []Notification
	for _, stu := range all {
		for _, c := range n.students.Catalog() {
			if stu.HasCompleted(c) && !stu.Notified[c.Name] {
				pending = append(pending, Notification{
					ID:        uuid.New(),
					StudentID: stu.ID,
					Email:     stu.Email,
					FirstName: stu.FirstName,
					LastName:  stu.LastName,
					Course:    c.Name,
				})
			}
		}
	}
	return pending, nil
}

// Scan sends every pending completion email and returns how many distinct students were notified.
// A (student, course) pair is marked notified only once its email went out.
func (n *Notifier) Scan(ctx context.Context) (int, error) {
	pending, err := n.Pending()
	if err != nil {
		return 0, errors.Wrap(err, "listing pending notifications")
	}

	notified := make(map[int]bool)
	for _, notif := range pending {
		if err := n.mailSvc.SendMessages(ctx, notif.Message()); err != nil {
			return len(notified), errors.Wrapf(err, "notifying student %d", notif.StudentID)
		}
		if err := n.students.MarkNotified(notif.StudentID, notif.Course); err != nil {
			return len(notified), errors.Wrapf(err, "marking student %d notified", notif.StudentID)
		}
		notified[notif.StudentID] = true
		n.logger.Info(fmt.Sprintf("student %d notified of %s completion", notif.StudentID, notif.Course),
			map[string]interface{}{"notification_id": notif.ID.String()})
	}
	return len(notified), nil
}
