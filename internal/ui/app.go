package ui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/omr-muhammad/quran-tracker-app/internal/data"
	"github.com/omr-muhammad/quran-tracker-app/internal/review"
	"github.com/omr-muhammad/quran-tracker-app/internal/version"
)

type mode int

const (
	modeNormal mode = iota
	modeAddRange
	modeSetDays
	modeMissed
)

// Model is the interactive view over the persisted document: today's
// assignment on top, the full cycle schedule below.
type Model struct {
	store *data.Store
	loc   *time.Location
	now   func() time.Time

	theme Theme
	mode  mode
	input textinput.Model

	width  int
	height int
	status string
	errMsg string

	// Derived from the document on every refresh.
	doc        data.Document
	schedule   []review.Entry
	cycleStart string
	todayIdx   int
	carry      *review.Entry
}

func NewModel(store *data.Store, loc *time.Location) Model {
	ti := textinput.New()
	ti.CharLimit = 32
	ti.Width = 30

	m := Model{
		store: store,
		loc:   loc,
		now:   time.Now,
		input: ti,
	}
	m.refresh()
	if m.shouldPromptMissed() {
		m.mode = modeMissed
	}
	return m
}

// refresh recomputes every derived value from a fresh snapshot.
// Schedules are never cached across mutations.
func (m *Model) refresh() {
	m.doc = m.store.Document()
	m.theme = ThemeFor(m.doc.Theme)

	now := m.now().In(m.loc)
	schedule, err := review.Generate(m.doc.Ranges, m.doc.Settings.ReviewDays, m.doc.Settings.StartWeekday())
	if err != nil {
		m.errMsg = err.Error()
		schedule = nil
	}
	m.schedule = schedule
	m.cycleStart = review.CycleStart(m.doc.Settings.StartWeekday(), m.doc.CurrentCycle.StartDate, now)
	m.todayIdx = review.CurrentDayIndex(m.doc.Settings.ReviewDays, m.cycleStart, now)

	m.carry = nil
	yesterday := review.DateKey(now.AddDate(0, 0, -1))
	if e, ok := review.Carryover(m.doc.CompletionHistory, m.schedule, m.todayIdx, yesterday); ok {
		m.carry = &e
	}
}

// shouldPromptMissed mirrors the missed-day dialog: ask about
// yesterday only when neither yesterday nor today has a record yet.
func (m *Model) shouldPromptMissed() bool {
	if len(m.doc.Ranges) == 0 {
		return false
	}
	now := m.now().In(m.loc)
	_, yesterdayDone := m.doc.CompletionHistory[review.DateKey(now.AddDate(0, 0, -1))]
	_, todayDone := m.doc.CompletionHistory[review.DateKey(now)]
	return !yesterdayDone && !todayDone
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch m.mode {
		case modeAddRange, modeSetDays:
			return m.updateInput(msg)
		case modeMissed:
			return m.updateMissed(msg.String())
		default:
			return m.updateNormal(msg.String())
		}
	}
	return m, nil
}

func (m Model) updateNormal(k string) (tea.Model, tea.Cmd) {
	m.status = ""
	m.errMsg = ""

	switch k {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit

	case "enter", " ":
		if m.todayIdx < 0 || m.todayIdx >= len(m.schedule) {
			m.status = "لا يوجد ورد اليوم"
			return m, nil
		}
		today := review.DateKey(m.now().In(m.loc))
		if err := m.store.MarkComplete(today); err != nil {
			m.errMsg = "تعذر الحفظ: " + err.Error()
			return m, nil
		}
		m.refresh()
		m.status = "تم الحمد لله ✓"

	case "c":
		yesterday := review.DateKey(m.now().In(m.loc).AddDate(0, 0, -1))
		if err := m.store.MarkCarriedOver(yesterday); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.refresh()
		m.status = "تم ترحيل ورد الأمس"

	case "i":
		yesterday := review.DateKey(m.now().In(m.loc).AddDate(0, 0, -1))
		if err := m.store.IgnoreMissed(yesterday); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.refresh()
		m.status = "تم تجاهل ورد الأمس"

	case "a":
		m.mode = modeAddRange
		m.input.Placeholder = "start end  (e.g. 1 50)"
		m.input.SetValue("")
		m.input.Focus()

	case "d":
		m.mode = modeSetDays
		m.input.Placeholder = fmt.Sprintf("review days (1-%d)", review.MaxDays)
		m.input.SetValue("")
		m.input.Focus()

	case "w":
		next := m.doc.Settings.StartWeekday().Next(1)
		if err := m.store.UpdateSettings(func(s *data.Settings) { s.StartDay = next.Key() }); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.refresh()
		m.status = "يبدأ الجدول يوم " + next.Name()

	case "t":
		theme := "light"
		if m.doc.Theme == "light" {
			theme = "dark"
		}
		if err := m.store.SetTheme(theme); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.refresh()

	case "r":
		today := review.DateKey(m.now().In(m.loc))
		if err := m.store.RestartCycle(today); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.refresh()
		m.status = fmt.Sprintf("بدأت دورة جديدة (%d)", m.doc.CurrentCycle.CycleNumber)
	}

	return m, nil
}

func (m Model) updateMissed(k string) (tea.Model, tea.Cmd) {
	yesterday := review.DateKey(m.now().In(m.loc).AddDate(0, 0, -1))
	switch k {
	case "c":
		if err := m.store.MarkCarriedOver(yesterday); err != nil {
			m.errMsg = err.Error()
		} else {
			m.status = "تم ترحيل ورد الأمس"
		}
		m.mode = modeNormal
		m.refresh()
	case "i":
		if err := m.store.IgnoreMissed(yesterday); err != nil {
			m.errMsg = err.Error()
		} else {
			m.status = "تم تجاهل ورد الأمس"
		}
		m.mode = modeNormal
		m.refresh()
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.mode = modeNormal
	}
	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeNormal
		m.input.Blur()
		return m, nil
	case "enter":
		value := strings.TrimSpace(m.input.Value())
		m.input.Blur()
		if m.mode == modeAddRange {
			m.submitRange(value)
		} else {
			m.submitDays(value)
		}
		m.mode = modeNormal
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) submitRange(value string) {
	fields := strings.Fields(value)
	if len(fields) != 2 {
		m.errMsg = "أدخل رقمين: البداية والنهاية"
		return
	}
	start, end, res := review.ValidateRangeInput(fields[0], fields[1], m.doc.Ranges, "")
	if !res.OK {
		m.errMsg = res.Reason
		return
	}
	if _, err := m.store.AddRange(start, end); err != nil {
		m.errMsg = "تعذر الحفظ: " + err.Error()
		return
	}
	m.refresh()
	m.status = fmt.Sprintf("أضيف النطاق %d-%d", start, end)
}

func (m *Model) submitDays(value string) {
	n, err := strconv.Atoi(value)
	if err != nil {
		m.errMsg = "أدخل عددًا صحيحًا"
		return
	}
	if res := review.ValidateDays(n); !res.OK {
		m.errMsg = res.Reason
		return
	}
	if err := m.store.UpdateSettings(func(s *data.Settings) { s.ReviewDays = n }); err != nil {
		m.errMsg = "تعذر الحفظ: " + err.Error()
		return
	}
	m.refresh()
	m.status = "مدة المراجعة: " + review.CountDays(n)
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderBanner())
	b.WriteString("\n")

	if m.mode == modeMissed {
		b.WriteString(m.theme.Border.Render(
			m.theme.Accent.Render("ورد الأمس") + "\n" +
				m.theme.Value.Render("لم يتم ورد الأمس. هل تتجاهله أم ترحله لليوم؟") + "\n" +
				m.theme.Hint.Render("c ترحيل · i تجاهل · esc لاحقًا"),
		))
		b.WriteString("\n")
	}

	if m.mode == modeAddRange || m.mode == modeSetDays {
		title := "إضافة نطاق"
		if m.mode == modeSetDays {
			title = "أيام المراجعة"
		}
		b.WriteString(m.theme.Border.Render(
			m.theme.Label.Render(title) + "\n" + m.input.View(),
		))
		b.WriteString("\n")
	}

	b.WriteString(m.renderSchedule())
	b.WriteString("\n")
	b.WriteString(m.statusBar())

	return b.String()
}

func (m Model) renderBanner() string {
	verse := m.theme.Hint.Render("تَعاهَدُوا القُرْآنَ، فَوالذي نَفْسِي بيَدِهِ لَهو أشَدُّ تَفَصِّيًا مِنَ الإبِلِ في عُقُلِها.")

	if len(m.doc.Ranges) == 0 || len(m.schedule) == 0 {
		return m.theme.Border.Render(verse + "\n\n" +
			m.theme.Value.Render("لم يتم إضافة محفوظ بعد") + "\n" +
			m.theme.Hint.Render("اضغط a لإضافة نطاق"))
	}

	var body strings.Builder
	body.WriteString(verse)
	body.WriteString("\n\n")

	if m.todayIdx >= 0 && m.todayIdx < len(m.schedule) {
		today := m.schedule[m.todayIdx]
		done := m.doc.CompletionHistory[review.DateKey(m.now().In(m.loc))].Completed

		body.WriteString(m.theme.Title.Render(fmt.Sprintf("ورد %s - %s", today.DayName, review.CountPages(today.PageCount))))
		body.WriteString("\n")
		body.WriteString(m.theme.Value.Render(review.FormatSegments(today.Segments)))
		if done {
			body.WriteString("\n")
			body.WriteString(m.theme.Success.Render("✓ تم الحمد لله"))
		}
	} else {
		body.WriteString(m.theme.Value.Render("لا يوجد ورد اليوم — الدورة خارج نطاقها الحالي"))
	}

	if m.carry != nil {
		body.WriteString("\n\n")
		body.WriteString(m.theme.Accent.Render("ورد مُرحَّل: "))
		body.WriteString(m.theme.Value.Render(fmt.Sprintf("%s (%s)",
			review.FormatSegments(m.carry.Segments), review.CountPages(m.carry.PageCount))))
	}

	return m.theme.Border.Render(body.String())
}

func (m Model) renderSchedule() string {
	if len(m.schedule) == 0 {
		return ""
	}

	var rows []string
	for i, e := range m.schedule {
		marker := "  "
		style := m.theme.Value
		if i == m.todayIdx {
			marker = "◀ "
			style = m.theme.Accent
		}
		rows = append(rows, fmt.Sprintf("%s%s  %s %s",
			marker,
			m.theme.Label.Render(e.DayName),
			style.Render(review.FormatSegments(e.Segments)),
			m.theme.Hint.Render(fmt.Sprintf("(%d)", e.PageCount)),
		))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) statusBar() string {
	if m.errMsg != "" {
		return m.theme.Error.Render(m.errMsg)
	}
	if m.status != "" {
		return m.theme.Success.Render(m.status)
	}
	return m.theme.Hint.Render(version.GetShortVersion() +
		" · enter تم · c ترحيل · i تجاهل · a نطاق · d أيام · w يوم البداية · r دورة جديدة · t مظهر · q خروج")
}

// Run opens the interactive view over an already-open store.
func Run(store *data.Store, loc *time.Location) error {
	p := tea.NewProgram(NewModel(store, loc), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
