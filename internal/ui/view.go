package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tempo/internal/calendar"
	"tempo/internal/config"
	"tempo/internal/dateutil"
	"tempo/internal/task"
)

var (
	colorAccent = lipgloss.Color("69")
	colorMuted  = lipgloss.Color("241")
	colorGreen  = lipgloss.Color("42")
	colorYellow = lipgloss.Color("214")
	colorRed    = lipgloss.Color("196")

	styleTitle    = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	styleMuted    = lipgloss.NewStyle().Foreground(colorMuted)
	styleToday    = lipgloss.NewStyle().Bold(true).Underline(true)
	styleSelected = lipgloss.NewStyle().Reverse(true)
	styleUrgent   = lipgloss.NewStyle().Bold(true).Foreground(colorRed)
	styleDone     = lipgloss.NewStyle().Strikethrough(true).Foreground(colorMuted)
)

func badgeStyle(c task.BadgeClass) lipgloss.Style {
	switch c {
	case task.BadgePositive:
		return lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
	case task.BadgeStrong:
		return lipgloss.NewStyle().Bold(true).Foreground(colorRed)
	case task.BadgeWarning:
		return lipgloss.NewStyle().Bold(true).Foreground(colorYellow)
	default:
		return styleMuted
	}
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(styleTitle.Render(calendar.Title(m.sel.Year(), m.sel.Month())))
	b.WriteString("\n")
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(m.renderCalendar())
	b.WriteString("\n")
	b.WriteString(m.renderTaskDeck())
	b.WriteString("\n")
	b.WriteString(m.renderStats())
	b.WriteString("\n\n")

	if m.modal.kind != modalClosed {
		label := "New task"
		if m.modal.kind == modalEdit {
			label = "Edit task"
		}
		b.WriteString(label + ": ")
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
	}

	b.WriteString(m.status)
	b.WriteString("\n")
	b.WriteString(styleMuted.Render(renderHelp(m.cfg.Keys)))
	return b.String()
}

func (m Model) renderHeader() string {
	line := fmt.Sprintf("%s, %d %s %d",
		m.sel.Weekday(), m.sel.Day(), m.sel.Month(), m.sel.Year())
	if dateutil.SameDay(m.sel, m.today) {
		return line + styleMuted.Render("  ·  today's plan")
	}
	return line + styleMuted.Render(fmt.Sprintf("  ·  plan for %d/%d", m.sel.Day(), int(m.sel.Month())))
}

func (m Model) renderCalendar() string {
	var b strings.Builder
	b.WriteString(styleMuted.Render("Su Mo Tu We Th Fr Sa"))
	b.WriteString("\n")

	cells := calendar.Grid(m.sel.Year(), m.sel.Month(), m.today, m.sel)
	for i, c := range cells {
		label := fmt.Sprintf("%2d", c.Day)
		switch {
		case c.Kind != calendar.CurrentMonth:
			label = styleMuted.Render(label)
		case c.Selected:
			label = styleSelected.Render(label)
		case c.Today:
			label = styleToday.Render(label)
		}
		b.WriteString(label)
		if (i+1)%7 == 0 {
			b.WriteString("\n")
		} else {
			b.WriteString(" ")
		}
	}
	return b.String()
}

func (m Model) renderTaskDeck() string {
	tasks := m.visibleTasks()
	var b strings.Builder
	b.WriteString(styleMuted.Render("Filter: "+string(m.filter)) + "\n")
	if len(tasks) == 0 {
		b.WriteString("Nothing here for this filter.\n")
		return b.String()
	}
	for i, t := range tasks {
		b.WriteString(m.renderCard(i, t))
	}
	return b.String()
}

func (m Model) renderCard(i int, t task.Task) string {
	cursor := " "
	if m.cursor == i && m.modal.kind == modalClosed {
		cursor = ">"
	}
	checkbox := "[ ]"
	if t.Completed {
		checkbox = "[x]"
	}

	badge := task.PriorityBadge(t, m.today)
	text := t.Text
	if t.Completed {
		text = styleDone.Render(text)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s %s %s %s\n",
		cursor, checkbox, badgeStyle(badge.Class).Render("["+badge.Label+"]"),
		text, styleMuted.Render("#"+idFragment(t.ID)))

	if cd, ok := m.countdowns[t.ID]; ok {
		line := "      " + cd.Text
		if cd.Urgent {
			line = styleUrgent.Render(line)
		} else {
			line = styleMuted.Render(line)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func (m Model) renderStats() string {
	completed, pending := task.MonthStats(m.store.Tasks(), m.sel.Month())
	return styleMuted.Render(fmt.Sprintf("%s: %d completed · %d pending", m.sel.Month(), completed, pending))
}

func renderHelp(k config.Keymap) string {
	return fmt.Sprintf("%s/%s move · %s/%s day · %s/%s month · %s today · %s filter · %s add · %s edit · %s toggle · %s delete · %s quit",
		k.Up, k.Down, k.PrevDay, k.NextDay, k.PrevMonth, k.NextMonth,
		k.Today, k.Filter, k.Add, k.Edit, k.Toggle, k.Delete, k.Quit)
}
