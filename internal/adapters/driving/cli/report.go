package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/gutentopics/gutentopics/internal/core/domain"
)

const timeLayout = "2006-01-02 15:04:05"

// reportStyles colours analysis reports. The zero value renders plain text.
type reportStyles struct {
	enabled bool
	title   lipgloss.Style
	label   lipgloss.Style
	topic   lipgloss.Style
	muted   lipgloss.Style
	warning lipgloss.Style
}

// newReportStyles returns coloured styles when w is a terminal.
func newReportStyles(w io.Writer) reportStyles {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return reportStyles{}
	}

	r := lipgloss.NewRenderer(w)
	return reportStyles{
		enabled: true,
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED")),
		label:   r.NewStyle().Foreground(lipgloss.Color("#6C7086")),
		topic:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#06B6D4")),
		muted:   r.NewStyle().Faint(true),
		warning: r.NewStyle().Foreground(lipgloss.Color("#F9E2AF")),
	}
}

func (s reportStyles) render(style lipgloss.Style, text string) string {
	if !s.enabled {
		return text
	}
	return style.Render(text)
}

// writeReport prints one analysis in human-readable form.
func writeReport(w io.Writer, a *domain.Analysis) {
	s := newReportStyles(w)

	fmt.Fprintf(w, "%s\n\n", s.render(s.title, fmt.Sprintf("Analysis %s", a.ID)))
	fmt.Fprintf(w, "  %s %s\n", s.render(s.label, "Name:   "), a.Name)
	fmt.Fprintf(w, "  %s %d\n", s.render(s.label, "Tokens: "), a.TokenCount)
	fmt.Fprintf(w, "  %s %s\n", s.render(s.label, "Created:"), a.CreatedAt.Format(timeLayout))

	assigned := a.Assignment()
	if !assigned.HasTopic() {
		fmt.Fprintf(w, "  %s %s\n\n", s.render(s.label, "Topic:  "),
			s.render(s.warning, "no confident topic found"))
		return
	}
	fmt.Fprintf(w, "  %s %d (probability %.2f)\n\n", s.render(s.label, "Topic:  "),
		assigned.TopicID, assigned.Probability)

	for _, id := range a.Result.Topics() {
		fmt.Fprintf(w, "%s %s\n", s.render(s.topic, fmt.Sprintf("Topic %d:", id)), a.Result.TopicsWords[id])

		members := a.Result.DocumentsForTopics[id]
		if len(members) == 0 {
			fmt.Fprintf(w, "  %s\n\n", s.render(s.muted, "no known books share this topic"))
			continue
		}
		fmt.Fprintf(w, "  %s %s\n\n", s.render(s.label, "Known books:"), strings.Join(members, ", "))
	}
}

// writeSummaryLine prints one analysis as a single list row.
func writeSummaryLine(w io.Writer, a *domain.Analysis) {
	topic := "none"
	if assigned := a.Assignment(); assigned.HasTopic() {
		topic = fmt.Sprintf("%d", assigned.TopicID)
	}
	fmt.Fprintf(w, "  %s  %-30s  topic %-5s  %6d tokens  %s\n",
		a.ID, a.Name, topic, a.TokenCount, a.CreatedAt.Format(timeLayout))
}
