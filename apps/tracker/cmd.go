package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/trezcool/progress/core"
	"github.com/trezcool/progress/core/notify"
	"github.com/trezcool/progress/core/student"
)

const banner = "Learning progress tracker"

// mode is the state of the dialogue: the main menu or one of the sub-menus.
type mode int

const (
	modeMenu mode = iota
	modeAddStudents
	modeAddPoints
	modeFind
	modeStatistics
)

const backCmd = "back"

type commandLine struct {
	stuSvc   *student.Service
	notifier *notify.Notifier
	logger   core.Logger
	out      io.Writer
	prompt   string // printed before reading each line, empty when not interactive
	mode     mode
}

func (cli *commandLine) println(a ...interface{}) {
	_, _ = fmt.Fprintln(cli.out, a...)
}

func (cli *commandLine) printf(format string, a ...interface{}) {
	_, _ = fmt.Fprintf(cli.out, format, a...)
}

// run reads commands from `in` until `exit` or the end of the input.
func (cli *commandLine) run(ctx context.Context, in io.Reader) error {
	cli.println(banner)

	scanner := bufio.NewScanner(in)
	for {
		if cli.prompt != "" {
			cli.printf("%s", cli.prompt)
		}
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return errors.Wrap(err, "reading input")
			}
			return nil
		}

		if err := cli.handle(ctx, strings.TrimSpace(scanner.Text())); err != nil {
			if core.IsShutdown(err) {
				return nil
			}
			return err
		}
	}
}

func (cli *commandLine) handle(ctx context.Context, line string) error {
	switch cli.mode {
	case modeAddStudents:
		return cli.addStudent(line)
	case modeAddPoints:
		return cli.addPoints(line)
	case modeFind:
		return cli.find(line)
	case modeStatistics:
		return cli.courseDetails(line)
	default:
		return cli.menu(ctx, line)
	}
}

func (cli *commandLine) menu(ctx context.Context, cmd string) error {
	switch cmd {
	case "add students":
		cli.println("Enter student credentials or 'back' to return:")
		cli.mode = modeAddStudents
	case "add points":
		cli.println("Enter an id and points or 'back' to return.")
		cli.mode = modeAddPoints
	case "find":
		cli.println("Enter an id or 'back' to return")
		cli.mode = modeFind
	case "statistics":
		if err := cli.statistics(); err != nil {
			return err
		}
		cli.mode = modeStatistics
	case "notify":
		return cli.notify(ctx)
	case "list":
		return cli.list()
	case backCmd:
		cli.println("Enter 'exit' to exit the program.")
	case "exit":
		cli.println("Bye!")
		return core.NewShutdownError("exit requested")
	case "":
		cli.println("No input")
	default:
		cli.println("Unknown command!")
	}
	return nil
}

// toMenu leaves the current sub-menu.
func (cli *commandLine) toMenu() {
	cli.mode = modeMenu
}
