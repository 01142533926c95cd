package main

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/trezcool/progress/core/student"
)

// credentialsMessage is the feedback printed for a rejected registration.
func credentialsMessage(err error) (string, bool) {
	if errors.Is(err, student.ErrEmailExists) {
		return "This email is already taken.", true
	}
	if reason, ok := student.InvalidReason(err); ok {
		return "Incorrect " + reason.String() + ".", true
	}
	return "", false
}

func (cli *commandLine) addStudent(line string) error {
	if line == backCmd {
		count, err := cli.stuSvc.Count()
		if err != nil {
			return errors.Wrap(err, "counting students")
		}
		cli.printf("Total %d students have been added.\n", count)
		cli.toMenu()
		return nil
	}

	ns, err := student.ParseCredentials(line)
	if err == nil {
		_, err = cli.stuSvc.Register(ns)
	}
	if err != nil {
		msg, ok := credentialsMessage(err)
		if !ok {
			return errors.Wrap(err, "registering student")
		}
		cli.println(msg)
		return nil
	}
	cli.println("The student has been added.")
	return nil
}

func (cli *commandLine) find(line string) error {
	if line == backCmd {
		cli.toMenu()
		return nil
	}

	stu, err := cli.stuSvc.FindByID(line)
	if err != nil {
		if errors.Cause(err) == student.ErrNotFound {
			cli.printf("No student is found for id=%s\n", line)
			return nil
		}
		return errors.Wrap(err, "finding student")
	}

	catalog := cli.stuSvc.Catalog()
	points := make([]string, 0, len(catalog))
	for _, c := range catalog {
		points = append(points, fmt.Sprintf("%s=%d", c.Name, stu.Points[c.Name]))
	}
	cli.printf("%d points: %s\n", stu.ID, strings.Join(points, ", "))
	return nil
}

func (cli *commandLine) list() error {
	ids, err := cli.stuSvc.ListIDs()
	if err != nil {
		return errors.Wrap(err, "listing students")
	}
	if len(ids) == 0 {
		cli.println("No students found")
		return nil
	}
	cli.println("Students:")
	for _, id := range ids {
		cli.println(id)
	}
	return nil
}
