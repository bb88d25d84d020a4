package reports

import (
	"fmt"
	"strings"

	"job-efficiency/internal/models"

	"github.com/charmbracelet/lipgloss"
)

const notAvailable = "n/a"

type styles struct {
	title    lipgloss.Style
	panel    lipgloss.Style
	section  lipgloss.Style
	label    lipgloss.Style
	value    lipgloss.Style
	dim      lipgloss.Style
	ok       lipgloss.Style
	warn     lipgloss.Style
	bad      lipgloss.Style
	bucketHd lipgloss.Style
}

func defaultStyles(noColor bool) styles {
	basePanel := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	if noColor {
		plain := lipgloss.NewStyle()
		return styles{
			title:    plain,
			panel:    basePanel,
			section:  plain,
			label:    plain,
			value:    plain,
			dim:      plain,
			ok:       plain,
			warn:     plain,
			bad:      plain,
			bucketHd: plain,
		}
	}

	return styles{
		title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")).Background(lipgloss.Color("24")).Padding(0, 1),
		panel:    basePanel.BorderForeground(lipgloss.Color("61")),
		section:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")).Background(lipgloss.Color("60")).Padding(0, 1),
		label:    lipgloss.NewStyle().Foreground(lipgloss.Color("109")),
		value:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")),
		dim:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		ok:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		warn:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		bad:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		bucketHd: lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Underline(true),
	}
}

// SummaryRenderer formats an efficiency summary for a terminal. Windows are rendered side by side.
type SummaryRenderer struct {
	styles styles
}

func NewSummaryRenderer(noColor bool) *SummaryRenderer {
	return &SummaryRenderer{styles: defaultStyles(noColor)}
}

func (r *SummaryRenderer) Render(summary *models.EfficiencySummary) string {
	header := r.styles.title.Render(" JOB EFFICIENCY ") + "  " +
		r.styles.label.Render("state filter: ") + r.styles.value.Render(string(summary.StateFilter))

	windows := lipgloss.JoinHorizontal(lipgloss.Top,
		r.renderWindow(summary.Last7Days),
		" ",
		r.renderWindow(summary.Last30Days),
	)

	return lipgloss.JoinVertical(lipgloss.Left, header, windows) + "\n"
}

func (r *SummaryRenderer) renderWindow(window models.WindowSummary) string {
	lines := []string{
		r.styles.section.Render(fmt.Sprintf("Last %d days", window.Days)),
		r.row("jobs considered", fmt.Sprintf("%d", window.JobsConsidered)),
		"",
		r.styles.bucketHd.Render("requested (min / median / max)"),
		r.row("cpus", formatRange(window.RequestedCPU, formatCount)),
		r.row("gpus", formatRange(window.RequestedGPU, formatCount)),
		r.row("memory", formatRange(window.RequestedMemory, formatBytes)),
		r.row("runtime", formatRange(window.RequestedRuntime, formatSeconds)),
		"",
		r.styles.bucketHd.Render("efficiency (mean / p50 / p90)"),
		r.metricRow("cpu", window.CPU),
		r.metricRow("memory", window.Memory.MetricSummary),
		r.metricRow("runtime", window.Runtime),
		"",
		r.row("max used memory", formatOptionalBytes(window.Memory.MaxUsedBytes)),
		r.row("avg used memory", formatOptionalBytes(window.Memory.AvgUsedBytes)),
		"",
		r.styles.bucketHd.Render("buckets   0-25  25-50  50-75  75+"),
		r.bucketRow("cpu", window.CPU.Buckets),
		r.bucketRow("memory", window.Memory.Buckets),
		r.bucketRow("runtime", window.Runtime.Buckets),
	}

	return r.styles.panel.Render(strings.Join(lines, "\n"))
}

func (r *SummaryRenderer) row(label, value string) string {
	return r.styles.label.Render(fmt.Sprintf("%-16s", label)) + " " + r.styles.value.Render(value)
}

func (r *SummaryRenderer) metricRow(label string, metric models.MetricSummary) string {
	if metric.Count == 0 {
		return r.styles.label.Render(fmt.Sprintf("%-16s", label)) + " " + r.styles.dim.Render(notAvailable)
	}
	return r.styles.label.Render(fmt.Sprintf("%-16s", label)) + " " +
		r.percent(metric.Mean) + " / " + r.percent(metric.P50) + " / " + r.percent(metric.P90) +
		r.styles.dim.Render(fmt.Sprintf("  (%d jobs)", metric.Count))
}

// percent colours a value by how much of the request was used.
func (r *SummaryRenderer) percent(value *float64) string {
	if value == nil {
		return r.styles.dim.Render(notAvailable)
	}
	text := fmt.Sprintf("%.2f%%", *value)
	switch {
	case *value >= 75:
		return r.styles.ok.Render(text)
	case *value >= 25:
		return r.styles.warn.Render(text)
	default:
		return r.styles.bad.Render(text)
	}
}

func (r *SummaryRenderer) bucketRow(label string, buckets models.EfficiencyBuckets) string {
	return r.styles.label.Render(fmt.Sprintf("%-9s", label)) + " " + r.styles.value.Render(
		fmt.Sprintf("%4d  %5d  %5d  %3d", buckets.Below25, buckets.From25To50, buckets.From50To75, buckets.From75AndUp))
}

func formatRange(summary models.RangeSummary, format func(float64) string) string {
	if summary.Count == 0 || summary.Min == nil || summary.Median == nil || summary.Max == nil {
		return notAvailable
	}
	return format(*summary.Min) + " / " + format(*summary.Median) + " / " + format(*summary.Max)
}

func formatCount(value float64) string {
	if value == float64(int64(value)) {
		return fmt.Sprintf("%d", int64(value))
	}
	return fmt.Sprintf("%.1f", value)
}

var byteUnits = []string{"B", "KiB", "MiB", "GiB", "TiB", "PiB", "EiB"}

func formatBytes(value float64) string {
	unit := 0
	for value >= 1024 && unit < len(byteUnits)-1 {
		value /= 1024
		unit++
	}
	if unit == 0 {
		return fmt.Sprintf("%d B", int64(value))
	}
	return fmt.Sprintf("%.1f %s", value, byteUnits[unit])
}

func formatOptionalBytes(value *int64) string {
	if value == nil {
		return notAvailable
	}
	return formatBytes(float64(*value))
}

func formatSeconds(value float64) string {
	seconds := int64(value)
	return fmt.Sprintf("%d:%02d:%02d", seconds/3600, (seconds%3600)/60, seconds%60)
}
