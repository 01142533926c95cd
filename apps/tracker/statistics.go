package main

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/trezcool/progress/core/stats"
)

func (cli *commandLine) statistics() error {
	cli.println("Type the name of a course to see details or 'back' to quit:")

	students, err := cli.stuSvc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "querying students")
	}
	for _, section := range stats.Compute(students, cli.stuSvc.Catalog()).Sections() {
		courses := "n/a"
		if len(section.Courses) > 0 {
			courses = strings.Join(section.Courses, ", ")
		}
		cli.printf("%s: %s\n", section.Label, courses)
	}
	return nil
}

func (cli *commandLine) courseDetails(line string) error {
	if line == backCmd {
		cli.toMenu()
		return nil
	}

	c, ok := cli.stuSvc.Catalog().Lookup(line)
	if !ok {
		cli.println("Unknown course.")
		return nil
	}

	students, err := cli.stuSvc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "querying students")
	}
	cli.println(c.Name)
	cli.printf("%-5s %-6s completed\n", "id", "points")
	for _, l := range stats.TopLearners(c, students) {
		cli.printf("%-5d %-6d %s\n", l.ID, l.Points, l.CompletionString())
	}
	return nil
}
