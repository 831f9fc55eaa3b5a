package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	txStdLib "github.com/Thiht/transactor/stdlib"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/benjamonnguyen/studygo"
	"github.com/benjamonnguyen/studygo/jsonfile"
	"github.com/benjamonnguyen/studygo/sqlite"
)

var logger studygo.Logger

func main() {
	// conf
	conf := studygo.LoadConfig()
	f, err := openLogFile(conf.LogPath)
	if err != nil {
		panic(err)
	}
	defer f.Close() //nolint:errcheck
	logger = configLogger(conf.LogLevel, f)
	logger.Info("loaded config", "config", conf)

	// repo
	var taskRepo studygo.TaskRepo
	switch conf.Backend {
	case "json":
		taskRepo = jsonfile.NewTaskRepo(conf.DataFile, logger)
	default:
		conn, err := sqlite.Open(conf.DatabaseURL)
		if err != nil {
			logger.Error("failed database open", "error", err)
			os.Exit(1)
		}
		if err := conn.Migrate(); err != nil {
			logger.Error("failed migration", "error", err)
			os.Exit(1)
		}
		defer conn.Close() //nolint:errcheck

		trx, dbGetter := txStdLib.NewTransactor(conn.DB(), txStdLib.NestedTransactionsSavepoints)
		taskRepo = sqlite.NewTaskRepo(trx, dbGetter, logger)
	}

	// load tasks into the store
	timeout, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	tasks, err := taskRepo.LoadTasks(timeout)
	cancel()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	store := studygo.NewTaskStore(tasks...)
	if store.Len() == 0 {
		seedSampleTasks(store)
		timeout, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := taskRepo.SaveTasks(timeout, store.List(studygo.Filter{})); err != nil {
			logger.Error("failed seeding save", "error", err)
		}
		cancel()
	}

	// start program
	fmt.Println(colorize(colorYellow, logo))
	fmt.Printf("\nEnter \"/h\" for help\n\n")

	userinput := textinput.New()
	userinput.Focus()
	userinput.CharLimit = 280
	userinput.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("221"))

	m := model{
		l:          logger,
		timeFormat: conf.TimeFormat,
		dailyHours: conf.DailyHours,
		store:      store,
		taskRepo:   taskRepo,
		cmdTimeout: 3 * time.Second,
		userinput:  userinput,
		vp:         viewport.New(0, 0),
	}

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		logger.Error(err.Error())
	}
}

// openLogFile creates the log's parent directory if needed so a first run
// on a fresh machine does not fail on ~/.studygo.
func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o744); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_RDWR|os.O_APPEND, 0o666)
}

func configLogger(level string, w io.Writer) studygo.Logger {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		panic(err)
	}

	return log.NewWithOptions(w, log.Options{
		Level: lvl,
	})
}
