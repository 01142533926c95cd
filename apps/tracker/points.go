package main

import (
	"github.com/pkg/errors"

	"github.com/trezcool/progress/core/student"
)

func (cli *commandLine) addPoints(line string) error {
	if line == backCmd {
		cli.toMenu()
		return nil
	}

	req, err := student.ParsePoints(line, cli.stuSvc.Catalog())
	if err != nil {
		cli.println("Incorrect points format")
		return nil
	}

	stu, err := cli.stuSvc.FindByID(req.ID)
	if err == nil {
		_, err = cli.stuSvc.AddPoints(stu.ID, req.Updates)
	}
	switch errors.Cause(err) {
	case nil:
		cli.println("Points updated")
	case student.ErrNotFound:
		cli.printf("No student is found for id=%s\n", req.ID)
	case student.ErrIncorrectPointsFormat:
		cli.println("Incorrect points format")
	default:
		return errors.Wrap(err, "adding points")
	}
	return nil
}
