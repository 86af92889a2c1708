package utils

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/omr-muhammad/quran-tracker-app/internal/review"
)

// OutputFormat represents different output formats
type OutputFormat string

const (
	FormatDefault OutputFormat = "default"
	FormatTable   OutputFormat = "table"
	FormatJSON    OutputFormat = "json"
	FormatCSV     OutputFormat = "csv"
	FormatQuiet   OutputFormat = "quiet"
)

// RenderConfig contains configuration for output rendering
type RenderConfig struct {
	Format OutputFormat
	Width  int
	Color  bool
}

// DefaultRenderConfig returns a default render configuration
func DefaultRenderConfig() *RenderConfig {
	width := 100
	if colEnv := os.Getenv("COLUMNS"); colEnv != "" {
		if v, err := strconv.Atoi(colEnv); err == nil && v > 40 {
			width = v
		}
	}
	return &RenderConfig{
		Format: FormatDefault,
		Width:  width,
		Color:  true,
	}
}

// Renderer handles output formatting
type Renderer struct {
	config *RenderConfig
	styles *Styles
}

// Styles contains lipgloss styles for different elements
type Styles struct {
	Title     lipgloss.Style
	Separator lipgloss.Style
	Meta      lipgloss.Style
	Day       lipgloss.Style
	Pages     lipgloss.Style
	Done      lipgloss.Style
	Today     lipgloss.Style
	Warning   lipgloss.Style
	Error     lipgloss.Style
}

// NewRenderer creates a new renderer with the given config
func NewRenderer(config *RenderConfig) *Renderer {
	if config == nil {
		config = DefaultRenderConfig()
	}
	return &Renderer{
		config: config,
		styles: initStyles(config.Color),
	}
}

func initStyles(color bool) *Styles {
	styles := &Styles{}

	if color {
		styles.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A6E3A1"))
		styles.Separator = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))
		styles.Meta = lipgloss.NewStyle().Faint(true)
		styles.Day = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#89B4FA"))
		styles.Pages = lipgloss.NewStyle().Foreground(lipgloss.Color("#F2CDCD"))
		styles.Done = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1"))
		styles.Today = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F9E2AF"))
		styles.Warning = lipgloss.NewStyle().Foreground(lipgloss.Color("#FAB387"))
		styles.Error = lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8"))
	} else {
		styles.Title = lipgloss.NewStyle().Bold(true)
		styles.Separator = lipgloss.NewStyle()
		styles.Meta = lipgloss.NewStyle()
		styles.Day = lipgloss.NewStyle().Bold(true)
		styles.Pages = lipgloss.NewStyle()
		styles.Done = lipgloss.NewStyle()
		styles.Today = lipgloss.NewStyle().Bold(true)
		styles.Warning = lipgloss.NewStyle()
		styles.Error = lipgloss.NewStyle()
	}

	return styles
}

// Styles exposes the style set for commands that print one-off lines.
func (r *Renderer) Styles() *Styles { return r.styles }

// ScheduleRow pairs a generated entry with its presentation flags.
type ScheduleRow struct {
	Index     int           `json:"day"`
	Entry     review.Entry  `json:"entry"`
	IsToday   bool          `json:"isToday"`
	Completed bool          `json:"completed,omitempty"`
}

// RenderSchedule renders the cycle's schedule in the configured format.
func (r *Renderer) RenderSchedule(rows []ScheduleRow) (string, error) {
	switch r.config.Format {
	case FormatJSON:
		return r.renderJSON(rows)
	case FormatCSV:
		return r.renderCSV(rows), nil
	case FormatTable:
		return r.renderTable(rows), nil
	case FormatQuiet:
		return r.renderQuiet(rows), nil
	default:
		return r.renderDefault(rows), nil
	}
}

func (r *Renderer) renderDefault(rows []ScheduleRow) string {
	var builder strings.Builder

	builder.WriteString(r.styles.Title.Render("جدول المراجعة"))
	builder.WriteString("\n")
	builder.WriteString(r.styles.Separator.Render(strings.Repeat("─", minInt(r.config.Width, 60))))
	builder.WriteString("\n")

	for _, row := range rows {
		day := r.styles.Day.Render(row.Entry.DayName)
		if row.IsToday {
			day = r.styles.Today.Render("◀ " + row.Entry.DayName)
		}
		pages := r.styles.Pages.Render(review.FormatSegments(row.Entry.Segments))
		count := r.styles.Meta.Render("(" + review.CountPages(row.Entry.PageCount) + ")")

		builder.WriteString(fmt.Sprintf("%s  %s %s", day, pages, count))
		if row.Completed {
			builder.WriteString("  " + r.styles.Done.Render("✓"))
		}
		builder.WriteString("\n")
	}

	return builder.String()
}

func (r *Renderer) renderTable(rows []ScheduleRow) string {
	var builder strings.Builder

	builder.WriteString("Day\tName\tPages\tCount\tToday\n")
	builder.WriteString(strings.Repeat("-", minInt(r.config.Width, 60)))
	builder.WriteString("\n")

	for _, row := range rows {
		today := ""
		if row.IsToday {
			today = "*"
		}
		builder.WriteString(strings.Join([]string{
			strconv.Itoa(row.Index + 1),
			row.Entry.DayKey,
			review.FormatSegments(row.Entry.Segments),
			strconv.Itoa(row.Entry.PageCount),
			today,
		}, "\t"))
		builder.WriteString("\n")
	}

	return builder.String()
}

func (r *Renderer) renderJSON(rows []ScheduleRow) (string, error) {
	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return string(data), nil
}

func (r *Renderer) renderCSV(rows []ScheduleRow) string {
	var builder strings.Builder

	builder.WriteString("day,day_key,start_page,end_page,page_count,segments\n")
	for _, row := range rows {
		builder.WriteString(strings.Join([]string{
			strconv.Itoa(row.Index + 1),
			row.Entry.DayKey,
			strconv.Itoa(row.Entry.StartPage),
			strconv.Itoa(row.Entry.EndPage),
			strconv.Itoa(row.Entry.PageCount),
			escapeCSV(review.FormatSegments(row.Entry.Segments)),
		}, ","))
		builder.WriteString("\n")
	}

	return builder.String()
}

// renderQuiet prints one segment list per day (for scripting).
func (r *Renderer) renderQuiet(rows []ScheduleRow) string {
	var builder strings.Builder
	for _, row := range rows {
		builder.WriteString(review.FormatSegments(row.Entry.Segments))
		builder.WriteString("\n")
	}
	return builder.String()
}

// RenderRanges prints the memorized range list in display order.
func (r *Renderer) RenderRanges(ranges []review.Range) string {
	var builder strings.Builder

	builder.WriteString(r.styles.Title.Render("المحفوظ"))
	builder.WriteString("  ")
	builder.WriteString(r.styles.Meta.Render(review.CountPages(review.TotalPages(ranges))))
	builder.WriteString("\n")
	builder.WriteString(r.styles.Separator.Render(strings.Repeat("─", minInt(r.config.Width, 60))))
	builder.WriteString("\n")

	if len(ranges) == 0 {
		builder.WriteString(r.styles.Meta.Render("لم يتم إضافة محفوظ بعد"))
		builder.WriteString("\n")
		return builder.String()
	}

	for _, rg := range ranges {
		builder.WriteString(fmt.Sprintf("%s  %s %s\n",
			r.styles.Meta.Render("["+rg.ID+"]"),
			r.styles.Pages.Render(fmt.Sprintf("%d-%d", rg.Start, rg.End)),
			r.styles.Meta.Render("("+review.CountPages(rg.Pages())+")"),
		))
	}

	return builder.String()
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func escapeCSV(s string) string {
	if strings.Contains(s, ",") || strings.Contains(s, "\"") || strings.Contains(s, "\n") {
		s = strings.ReplaceAll(s, "\"", "\"\"")
		return "\"" + s + "\""
	}
	return s
}
