package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/trezcool/progress/core"
	"github.com/trezcool/progress/core/course"
	"github.com/trezcool/progress/core/notify"
	"github.com/trezcool/progress/core/student"
	emailsvc "github.com/trezcool/progress/services/email"
	logsvc "github.com/trezcool/progress/services/logger"
	inmemdb "github.com/trezcool/progress/storage/database/inmem"
)

var isTerminalFunc = term.IsTerminal // mockable

func main() {
	if err := start(os.Stdin, os.Stdout); err != nil {
		os.Exit(1)
	}
}

func start(in *os.File, out io.Writer) error {
	// =========================================================================
	// Set up Dependencies

	conf, err := core.NewConfig()
	if err != nil {
		log.Printf("loading config: %v", err)
		return err
	}

	interactive := isTerminalFunc(int(in.Fd()))

	// logs go to stderr, and are muted in an interactive session unless debugging
	var logOut io.Writer = os.Stderr
	if interactive && !conf.Debug {
		logOut = io.Discard
	}
	logger := logsvc.NewRollbarLogger(
		log.New(logOut, "TRACKER : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	logger.Enable(conf.RollbarToken != "" && !conf.Debug)

	db, err := inmemdb.Open(conf.IDStart)
	if err != nil {
		logger.Error(fmt.Sprintf("opening database: %v", err), err)
		return err
	}

	catalog, err := course.NewCatalog(conf.Courses)
	if err != nil {
		logger.Error(fmt.Sprintf("loading course catalog: %v", err), err)
		return err
	}
	logger.Debug("course catalog loaded: " + strings.Join(catalog.Names(), ", "))

	var mailSvc core.EmailService
	switch conf.MailBackend {
	case core.MailBackendSendgrid:
		mailSvc = emailsvc.NewSendgridService(conf, logger)
	default:
		mailSvc = emailsvc.NewConsoleService(out)
	}

	validate, translator := core.NewValidator()
	stuSvc := student.NewService(inmemdb.NewStudentRepository(db), catalog, validate, translator, logger)

	// =========================================================================
	// Start CLI

	logger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build))
	defer logger.Info("Application stopped")

	cli := &commandLine{
		stuSvc:   stuSvc,
		notifier: notify.NewNotifier(stuSvc, mailSvc, logger),
		logger:   logger,
		out:      out,
	}
	if interactive {
		cli.prompt = conf.Prompt
	}
	if err := cli.run(context.Background(), in); err != nil {
		logger.Error(fmt.Sprintf("command loop: %v", err), err)
		return err
	}
	return nil
}
