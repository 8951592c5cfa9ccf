package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"tempo/internal/config"
	"tempo/internal/dateutil"
	"tempo/internal/task"
)

// modalKind is the save-dialog state: closed, creating a task for the
// selected day, or editing an existing task's text.
type modalKind int

const (
	modalClosed modalKind = iota
	modalCreate
	modalEdit
)

type modalState struct {
	kind   modalKind
	editID string
}

type tickMsg time.Time

type Model struct {
	store  *task.Store
	cfg    config.Config
	today  time.Time
	now    time.Time
	sel    time.Time
	filter task.Filter
	cursor int
	modal  modalState
	input  textinput.Model
	status string

	confirmDel bool
	pendingDel *task.Task

	// countdowns holds the latest per-task countdown for the visible
	// incomplete tasks, rewritten by the ticker without a store round trip.
	countdowns map[string]task.Countdown
}

func Run(store *task.Store, cfg config.Config) error {
	program := tea.NewProgram(New(store, cfg, time.Now()))
	_, err := program.Run()
	return err
}

// New builds the model around a fixed "today"; the selected day starts there.
func New(store *task.Store, cfg config.Config, now time.Time) Model {
	ti := textinput.New()
	ti.Placeholder = createHint
	ti.CharLimit = 256
	ti.Width = 40

	m := Model{
		store:  store,
		cfg:    cfg,
		today:  now,
		now:    now,
		sel:    now,
		filter: task.Filter(strings.ToLower(cfg.DefaultFilter)),
		input:  ti,
		status: "Press 'a' to add, space to toggle, 'd' to delete.",
	}
	m.refreshCountdowns()
	return m
}

const (
	createHint = "e.g. Quarterly strategy review..."
	editHint   = "Edit task..."
)

func (m Model) Init() tea.Cmd {
	return tickCmd()
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.now = time.Time(msg)
		m.refreshCountdowns()
		return m, tickCmd()
	case tea.KeyMsg:
		if m.modal.kind != modalClosed {
			return m.updateModal(msg.String(), msg)
		}
		if m.confirmDel {
			return m.updateDeleteConfirm(msg.String())
		}
		return m.updateBrowse(msg.String())
	case tea.WindowSizeMsg:
		m.input.Width = msg.Width - 10
	}
	return m, nil
}

// visibleTasks is the selected day's slice of the store after filtering,
// in store order.
func (m Model) visibleTasks() []task.Task {
	return m.filter.Apply(m.store.ByDate(dateutil.FormatKey(m.sel)))
}

// refreshCountdowns recomputes countdown text for every visible incomplete
// task. Completed tasks never get one, and a task whose date key does not
// parse is skipped.
func (m *Model) refreshCountdowns() {
	fresh := make(map[string]task.Countdown)
	for _, t := range m.visibleTasks() {
		if t.Completed {
			continue
		}
		cd, err := task.CountdownFor(t.Date, m.now)
		if err != nil {
			continue
		}
		fresh[t.ID] = cd
	}
	m.countdowns = fresh
}

func (m Model) updateBrowse(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "ctrl+c", m.cfg.Keys.Quit:
		return m, tea.Quit
	case m.cfg.Keys.Down, "down":
		m.cursor = clampCursor(m.cursor+1, len(m.visibleTasks()))
	case m.cfg.Keys.Up, "up":
		if m.cursor > 0 {
			m.cursor = clampCursor(m.cursor-1, len(m.visibleTasks()))
		}
	case m.cfg.Keys.PrevDay, "left":
		return m.selectDate(m.sel.AddDate(0, 0, -1))
	case m.cfg.Keys.NextDay, "right":
		return m.selectDate(m.sel.AddDate(0, 0, 1))
	case m.cfg.Keys.PrevMonth:
		return m.selectDate(m.sel.AddDate(0, -1, 0))
	case m.cfg.Keys.NextMonth:
		return m.selectDate(m.sel.AddDate(0, 1, 0))
	case m.cfg.Keys.Today:
		return m.selectDate(m.today)
	case m.cfg.Keys.Filter:
		m.filter = m.filter.Next()
		m.cursor = 0
		m.refreshCountdowns()
		m.status = "Filter: " + string(m.filter)
	case m.cfg.Keys.Toggle:
		tasks := m.visibleTasks()
		if len(tasks) == 0 {
			return m, nil
		}
		t := tasks[m.cursor]
		if err := m.store.ToggleComplete(t.ID); err != nil {
			m.status = fmt.Sprintf("save failed, changes not stored: %v", err)
		} else {
			m.status = "Toggled task"
		}
		m.cursor = clampCursor(m.cursor, len(m.visibleTasks()))
		m.refreshCountdowns()
	case m.cfg.Keys.Add:
		m.modal = modalState{kind: modalCreate}
		m.input.SetValue("")
		m.input.Placeholder = createHint
		m.input.Focus()
		m.status = "New task for " + dateutil.FormatKey(m.sel)
	case m.cfg.Keys.Edit:
		tasks := m.visibleTasks()
		if len(tasks) == 0 {
			m.status = "No tasks to edit"
			return m, nil
		}
		t := tasks[m.cursor]
		m.modal = modalState{kind: modalEdit, editID: t.ID}
		m.input.SetValue(t.Text)
		m.input.Placeholder = editHint
		m.input.Focus()
		m.status = "Editing task #" + idFragment(t.ID)
	case m.cfg.Keys.Delete:
		tasks := m.visibleTasks()
		if len(tasks) == 0 {
			return m, nil
		}
		t := tasks[m.cursor]
		m.confirmDel = true
		m.pendingDel = &t
		m.status = fmt.Sprintf("Delete \"%s\"? y/n", t.Text)
	}
	return m, nil
}

// selectDate moves the selection and re-derives everything that hangs off
// it: task cursor, countdowns, header, stats.
func (m Model) selectDate(d time.Time) (tea.Model, tea.Cmd) {
	m.sel = d
	m.cursor = 0
	m.refreshCountdowns()
	return m, nil
}

func (m Model) updateModal(key string, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key {
	case m.cfg.Keys.Cancel, "esc":
		m.modal = modalState{}
		m.input.SetValue("")
		m.input.Blur()
		m.status = "Cancelled"
		return m, nil
	case m.cfg.Keys.Confirm, "enter":
		text := strings.TrimSpace(m.input.Value())
		if text == "" {
			// Keep the modal open; an empty save is a no-op.
			return m, nil
		}
		var err error
		if m.modal.kind == modalEdit {
			err = m.store.Update(m.modal.editID, text)
		} else {
			_, err = m.store.Create(text, dateutil.FormatKey(m.sel))
		}
		if err != nil {
			m.status = fmt.Sprintf("save failed, changes not stored: %v", err)
		} else if m.modal.kind == modalEdit {
			m.status = "Updated task"
		} else {
			m.status = "Added task"
		}
		m.modal = modalState{}
		m.input.SetValue("")
		m.input.Blur()
		m.refreshCountdowns()
		return m, nil
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m Model) updateDeleteConfirm(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "n", "N", m.cfg.Keys.Cancel, "esc":
		m.status = "Delete cancelled"
		m.confirmDel = false
		m.pendingDel = nil
		return m, nil
	case "y", "Y":
		if m.pendingDel == nil {
			m.status = "Nothing to delete"
			m.confirmDel = false
			return m, nil
		}
		if err := m.store.Delete(m.pendingDel.ID); err != nil {
			m.status = fmt.Sprintf("save failed, changes not stored: %v", err)
		} else {
			m.status = "Deleted task"
		}
		m.confirmDel = false
		m.pendingDel = nil
		m.cursor = clampCursor(m.cursor, len(m.visibleTasks()))
		m.refreshCountdowns()
		return m, nil
	default:
		return m, nil
	}
}

func idFragment(id string) string {
	if len(id) <= 4 {
		return id
	}
	return id[len(id)-4:]
}

func clampCursor(cur, n int) int {
	if n <= 0 {
		return 0
	}
	if cur < 0 {
		return 0
	}
	if cur >= n {
		return n - 1
	}
	return cur
}
