package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/benjamonnguyen/studygo"
	"github.com/benjamonnguyen/studygo/schedule"
)

const logo = `
	███████╗████████╗██╗   ██╗██████╗ ██╗   ██╗ ██████╗  ██████╗
	██╔════╝╚══██╔══╝██║   ██║██╔══██╗╚██╗ ██╔╝██╔════╝ ██╔═══██╗
	███████╗   ██║   ██║   ██║██║  ██║ ╚████╔╝ ██║  ███╗██║   ██║
	╚════██║   ██║   ██║   ██║██║  ██║  ╚██╔╝  ██║   ██║██║   ██║
	███████║   ██║   ╚██████╔╝██████╔╝   ██║   ╚██████╔╝╚██████╔╝
	╚══════╝   ╚═╝    ╚═════╝ ╚═════╝    ╚═╝    ╚═════╝  ╚═════╝`

const commandHelp = `COMMANDS:
  /ls [subject=<s>] [type=<t>] [done|todo]: list tasks
  /a <title> | <subject> | <days until deadline> | <priority 1-5> | <hours> | <difficulty 1-5> | <type>: add a task
     trailing fields are optional, e.g. "/a Read chapter 4 | Biology | 3"
  /p <n> <percent>: set task n's progress
  /e <n> <field>=<value> ...: edit task n (title, subject, days, priority, hours, difficulty, type)
  /x <n>: delete task n
  /plan [mon tue wed thu fri sat sun]: generate a weekly plan from available hours per day
  /sched: show the current plan
  /export [dir]: export the current plan as JSON and text
  /q: save and quit
`

type model struct {
	// children
	vp        viewport.Model
	userinput textinput.Model

	// supplied
	l        studygo.Logger
	store    *studygo.TaskStore
	taskRepo studygo.TaskRepo

	// state
	visible  []studygo.Task
	plan     *schedule.WeeklyPlan
	alerts   []string
	quitting bool
	h        int

	// configuration
	cmdTimeout time.Duration
	timeFormat string
	dailyHours float64
}

func (m model) Init() tea.Cmd {
	return tea.Batch(func() tea.Msg { return InitMsg{} }, textinput.Blink)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var tiCmd, vpCmd, cmd tea.Cmd

	m, cmd = m.updateParent(msg)

	// update children

	m.userinput, tiCmd = m.userinput.Update(msg)

	switch msg.(type) {
	case tea.KeyMsg:
		// vp updates on KeyMsg was causing a view flickering bug
	default:
		m.vp, vpCmd = m.vp.Update(msg)
	}

	return m, tea.Batch(tiCmd, vpCmd, cmd)
}

func (m model) updateParent(msg tea.Msg) (model, tea.Cmd) {
	switch msg := msg.(type) {
	case InitMsg:
		m.showTasks(studygo.Filter{})
		return m, nil
	case ErrorMsg:
		m.addAlert(msg.err.Error(), colorRed)
		return m, nil
	case ExportedMsg:
		m.addAlert("exported "+strings.Join(msg.files, ", "), colorCyan)
		return m, nil
	case tea.WindowSizeMsg:
		m.h = msg.Height
		m.userinput.Width = msg.Width
		m.vp.Width = msg.Width
		m.resizeViewport()
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter:
			input := strings.TrimSpace(m.userinput.Value())
			m.userinput.Reset()
			if input == "" {
				return m, nil
			}

			var cmd tea.Cmd
			m.alerts = nil
			m, cmd = m.handleInput(input)
			m.resizeViewport()
			return m, cmd
		case tea.KeyCtrlC:
			return m.endProgram()
		}
	}
	return m, nil
}

func (m model) handleInput(input string) (model, tea.Cmd) {
	if !strings.HasPrefix(input, "/") {
		m.addAlert("unknown input; enter \"/h\" for help", colorYellow)
		return m, nil
	}

	parts := strings.SplitN(input, " ", 2)
	var arg string
	if len(parts) > 1 {
		arg = strings.TrimSpace(parts[1])
	}

	switch parts[0] {
	case "/ls":
		filter, err := parseFilter(arg)
		if err != nil {
			m.addAlert(err.Error(), colorYellow)
			return m, nil
		}
		m.showTasks(filter)
		return m, nil
	case "/a":
		if arg == "" {
			m.addAlert("usage: /a <title> | <subject> | <days> | <priority> | <hours> | <difficulty> | <type>", colorYellow)
			return m, nil
		}
		task, err := parseAddArgs(arg)
		if err != nil {
			m.addAlert(err.Error(), colorYellow)
			return m, nil
		}
		if _, err := m.store.Create(task); err != nil {
			m.addAlert(err.Error(), colorRed)
			return m, nil
		}
		m.showTasks(studygo.Filter{})
		return m, m.saveCmd()
	case "/p":
		id, rest, err := m.resolveTask(arg)
		if err != nil {
			m.addAlert(err.Error(), colorYellow)
			return m, nil
		}
		completion, err := parsePercent(rest)
		if err != nil {
			m.addAlert(err.Error(), colorYellow)
			return m, nil
		}
		if err := m.store.Update(id, studygo.UpdateFields{Completion: &completion}); err != nil {
			m.addAlert(err.Error(), colorRed)
			return m, nil
		}
		m.showTasks(studygo.Filter{})
		return m, m.saveCmd()
	case "/e":
		id, rest, err := m.resolveTask(arg)
		if err != nil {
			m.addAlert(err.Error(), colorYellow)
			return m, nil
		}
		fields, err := parseEditArgs(rest, time.Now())
		if err != nil {
			m.addAlert(err.Error(), colorYellow)
			return m, nil
		}
		if err := m.store.Update(id, fields); err != nil {
			m.addAlert(err.Error(), colorRed)
			return m, nil
		}
		m.showTasks(studygo.Filter{})
		return m, m.saveCmd()
	case "/x":
		id, _, err := m.resolveTask(arg)
		if err != nil {
			m.addAlert(err.Error(), colorYellow)
			return m, nil
		}
		if err := m.store.Delete(id); err != nil {
			m.addAlert(err.Error(), colorRed)
			return m, nil
		}
		m.showTasks(studygo.Filter{})
		return m, m.saveCmd()
	case "/plan":
		budget, err := parseBudget(arg, m.dailyHours)
		if err != nil {
			m.addAlert(err.Error(), colorYellow)
			return m, nil
		}
		plan, err := schedule.Generate(m.store.Active(), budget, schedule.Options{})
		if err != nil {
			m.addAlert(err.Error(), colorRed)
			return m, nil
		}
		m.plan = plan
		m.showPlan()
		return m, nil
	case "/sched":
		if m.plan == nil {
			m.addAlert("no plan yet; generate one with /plan", colorYellow)
			return m, nil
		}
		m.showPlan()
		return m, nil
	case "/export":
		if m.plan == nil {
			m.addAlert("no plan to export; generate one with /plan", colorYellow)
			return m, nil
		}
		plan := m.plan
		dir := arg
		return m, func() tea.Msg {
			files, err := exportPlan(plan, dir)
			if err != nil {
				return ErrorMsg{err: err}
			}
			return ExportedMsg{files: files}
		}
	case "/h":
		m.addAlert(commandHelp, colorYellow)
		return m, nil
	case "/q":
		return m.endProgram()
	}

	m.addAlert("unknown command; enter \"/h\" for help", colorYellow)
	return m, nil
}

// resolveTask maps a 1-based index into the last listed tasks to a task id.
// The rest of the argument is returned for further parsing.
func (m model) resolveTask(arg string) (id uuid.UUID, rest string, err error) {
	fields := strings.SplitN(arg, " ", 2)
	if len(fields) > 1 {
		rest = strings.TrimSpace(fields[1])
	}
	n, convErr := strconv.Atoi(fields[0])
	if convErr != nil || n < 1 || n > len(m.visible) {
		return uuid.Nil, "", fmt.Errorf("provide a task number between 1 and %d", len(m.visible))
	}
	return m.visible[n-1].ID, rest, nil
}

// saveCmd snapshots the store and persists it off the update loop.
func (m model) saveCmd() tea.Cmd {
	snapshot := m.store.List(studygo.Filter{})
	return func() tea.Msg {
		timeout, cancel := m.newTimeout()
		defer cancel()
		if err := m.taskRepo.SaveTasks(timeout, snapshot); err != nil {
			return ErrorMsg{err: err}
		}
		return nil
	}
}

func (m *model) showTasks(f studygo.Filter) {
	m.visible = m.store.List(f)
	m.vp.SetContent(renderTasks(m.visible, m.timeFormat))
}

func (m *model) showPlan() {
	m.vp.SetContent(renderPlan(m.plan, m.timeFormat))
}

func (m model) endProgram() (model, tea.Cmd) {
	m.quitting = true
	timeout, cancel := m.newTimeout()
	defer cancel()
	if err := m.taskRepo.SaveTasks(timeout, m.store.List(studygo.Filter{})); err != nil {
		logger.Error(err.Error())
	}
	return m, tea.Quit
}

func (m model) renderFooter() string {
	if m.quitting {
		return ""
	}

	var footer strings.Builder
	footer.WriteRune('\n')
	footer.WriteString(m.userinput.View())
	footer.WriteString("\n\n")

	if len(m.alerts) > 0 {
		footer.WriteString(strings.Join(m.alerts, "\n"))
		footer.WriteString("\n\n")
	} else {
		footer.WriteString(faintStyle.Render("(ctrl+c to quit)"))
		footer.WriteRune('\n')
	}

	return footer.String()
}

func (m model) View() string {
	return lipgloss.JoinVertical(0, m.vp.View(), m.renderFooter())
}

func (m model) newTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), m.cmdTimeout)
}

func (m *model) addAlert(alert string, c color) {
	m.alerts = append(m.alerts, colorize(c, alert))
}

func (m *model) resizeViewport() {
	footerHeight := lipgloss.Height(m.renderFooter())
	m.vp.Height = max(0, m.h-footerHeight)
}
