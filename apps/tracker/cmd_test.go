package main

import (
	"bytes"
	"context"
	"io/ioutil"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/stretchr/testify/require"
	"golang.org/x/term"

	"github.com/trezcool/progress/core"
	"github.com/trezcool/progress/core/notify"
	emailsvc "github.com/trezcool/progress/services/email"
	testutil "github.com/trezcool/progress/tests"
)

func setup(t *testing.T) (*commandLine, *bytes.Buffer) {
	svc := testutil.NewStudentService(t)
	out := new(bytes.Buffer)
	return &commandLine{
		stuSvc:   svc,
		notifier: notify.NewNotifier(svc, emailsvc.NewConsoleService(out), testutil.NopLogger{}),
		logger:   testutil.NopLogger{},
		out:      out,
	}, out
}

func lines(ls ...string) string {
	return strings.Join(ls, "\n") + "\n"
}

func assertTranscript(t *testing.T, want, got string) {
	t.Helper()
	if want == got {
		return
	}
	diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	t.Errorf("unexpected output:\n%s", diff)
}

type cliTest struct {
	name  string
	input []string
	want  []string // without the banner
}

func Test_commandLine_run(t *testing.T) {
	tests := []cliTest{
		{
			name:  "main menu",
			input: []string{"", "   ", "hello", "back", "list", "exit", "list"},
			want: []string{
				"No input",
				"No input",
				"Unknown command!",
				"Enter 'exit' to exit the program.",
				"No students found",
				"Bye!",
			},
		},
		{
			name:  "end of input",
			input: []string{"list"},
			want:  []string{"No students found"},
		},
		{
			name: "add students",
			input: []string{
				"add students",
				"John Doe jdoe@mail.net",
				"Jane Doe jdoe@mail.net",
				"help",
				"J. Doe name@domain.com",
				"John D. name@domain.com",
				"John Doe email",
				"  Jean-Clause van Helsing jc@google.it  ",
				"back",
				"list",
				"exit",
			},
			want: []string{
				"Enter student credentials or 'back' to return:",
				"The student has been added.",
				"This email is already taken.",
				"Incorrect credentials.",
				"Incorrect first name.",
				"Incorrect last name.",
				"Incorrect email.",
				"The student has been added.",
				"Total 2 students have been added.",
				"Students:",
				"10000",
				"10001",
				"Bye!",
			},
		},
		{
			name: "add points and find",
			input: []string{
				"add students", "John Doe jdoe@mail.net", "back",
				"add points",
				"10000 8 7 7 5",
				"10000 7 7 7",
				"10000 -1 2 2 2",
				"imaginary 1 1 1 1",
				"10001 1 1 1 1",
				"10000 2 0 0 0",
				"back",
				"find",
				"10000",
				"10001",
				"abc",
				"back",
				"exit",
			},
			want: []string{
				"Enter student credentials or 'back' to return:",
				"The student has been added.",
				"Total 1 students have been added.",
				"Enter an id and points or 'back' to return.",
				"Points updated",
				"Incorrect points format",
				"Incorrect points format",
				"No student is found for id=imaginary",
				"No student is found for id=10001",
				"Points updated",
				"Enter an id or 'back' to return",
				"10000 points: Python=10, DSA=7, Databases=7, Flask=5",
				"No student is found for id=10001",
				"No student is found for id=abc",
				"Bye!",
			},
		},
		{
			name:  "statistics without students",
			input: []string{"statistics", "python", "back", "exit"},
			want: []string{
				"Type the name of a course to see details or 'back' to quit:",
				"Most popular: n/a",
				"Least popular: n/a",
				"Highest activity: n/a",
				"Lowest activity: n/a",
				"Easiest course: n/a",
				"Hardest course: n/a",
				"Python",
				"id    points completed",
				"Bye!",
			},
		},
		{
			name: "statistics",
			input: []string{
				"add students", "John Doe jdoe@mail.net", "Jane Roe jane@mail.net", "back",
				"add points", "10000 8 7 7 5", "10001 4 0 0 0", "back",
				"statistics", "Java", "python", "FLASK", "back",
				"exit",
			},
			want: []string{
				"Enter student credentials or 'back' to return:",
				"The student has been added.",
				"The student has been added.",
				"Total 2 students have been added.",
				"Enter an id and points or 'back' to return.",
				"Points updated",
				"Points updated",
				"Type the name of a course to see details or 'back' to quit:",
				"Most popular: Python",
				"Least popular: DSA, Databases, Flask",
				"Highest activity: Python",
				"Lowest activity: DSA, Databases, Flask",
				"Easiest course: DSA, Databases",
				"Hardest course: Flask",
				"Unknown course.",
				"Python",
				"id    points completed",
				"10000 8      1.3%",
				"10001 4      0.7%",
				"Flask",
				"id    points completed",
				"10000 5      0.9%",
				"Bye!",
			},
		},
		{
			name: "notify",
			input: []string{
				"add students", "John Doe jdoe@mail.net", "Jane Roe jane@mail.net", "back",
				"add points", "10000 600 400 0 0", "10001 0 0 0 550", "back",
				"notify",
				"notify",
				"exit",
			},
			want: []string{
				"Enter student credentials or 'back' to return:",
				"The student has been added.",
				"The student has been added.",
				"Total 2 students have been added.",
				"Enter an id and points or 'back' to return.",
				"Points updated",
				"Points updated",
				"To: jdoe@mail.net",
				"Re: Your Learning Progress",
				"Hello, John Doe! You have accomplished our Python course!",
				"To: jdoe@mail.net",
				"Re: Your Learning Progress",
				"Hello, John Doe! You have accomplished our DSA course!",
				"To: jane@mail.net",
				"Re: Your Learning Progress",
				"Hello, Jane Roe! You have accomplished our Flask course!",
				"Total 2 students have been notified.",
				"Total 0 students have been notified.",
				"Bye!",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cli, out := setup(t)
			err := cli.run(context.Background(), strings.NewReader(lines(tt.input...)))
			require.NoError(t, err)
			assertTranscript(t, lines(append([]string{banner}, tt.want...)...), out.String())
		})
	}
}

type failingMailer struct{}

func (failingMailer) SendMessages(context.Context, ...*core.EmailMessage) error {
	return errors.New("sendgrid status: 503")
}

func Test_commandLine_notifyFailure(t *testing.T) {
	cli, out := setup(t)
	cli.notifier = notify.NewNotifier(cli.stuSvc, failingMailer{}, testutil.NopLogger{})

	stu := testutil.CreateStudent(t, cli.stuSvc, "John", "Doe", "jdoe@mail.net")
	testutil.AddPoints(t, cli.stuSvc, stu.ID, 600)

	require.NoError(t, cli.run(context.Background(), strings.NewReader(lines("notify", "list", "exit"))))
	assertTranscript(t, lines(
		banner,
		"Could not send notifications: notifying student 10000: sendgrid status: 503",
		"Total 0 students have been notified.",
		"Students:",
		"10000",
		"Bye!",
	), out.String())

	// the completion is still pending
	pending, err := cli.notifier.Pending()
	require.NoError(t, err)
	require.Len(t, pending, 1)
}

func Test_commandLine_prompt(t *testing.T) {
	cli, out := setup(t)
	cli.prompt = "> "

	require.NoError(t, cli.run(context.Background(), strings.NewReader("list\nexit\n")))
	assertTranscript(t, banner+"\n> No students found\n> Bye!\n", out.String())
}

func Test_start(t *testing.T) {
	isTerminalFunc = func(int) bool { return false }
	defer func() { isTerminalFunc = term.IsTerminal }()

	in, err := ioutil.TempFile(t.TempDir(), "input")
	require.NoError(t, err)
	defer in.Close()
	_, err = in.WriteString(lines("add students", "John Doe jdoe@mail.net", "back", "list", "exit"))
	require.NoError(t, err)
	_, err = in.Seek(0, 0)
	require.NoError(t, err)

	out := new(bytes.Buffer)
	require.NoError(t, start(in, out))
	assertTranscript(t, lines(
		banner,
		"Enter student credentials or 'back' to return:",
		"The student has been added.",
		"Total 1 students have been added.",
		"Students:",
		"10000",
		"Bye!",
	), out.String())
}
