package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/radioctl/internal/render"
)

const volumeBarWidth = render.BarWidth * 2

// View implements tea.Model.
func (m Model) View() string {
	styles := m.theme.Styles()

	sections := []string{
		m.renderHeader(),
		styles.Panel.Render(m.renderNowPlaying()),
		styles.Panel.Render(m.renderPresets()),
	}
	if m.status != "" {
		style := styles.SuccessText
		if m.statusIsErr {
			style = styles.DangerText
		}
		sections = append(sections, style.Padding(0, 1).Render(m.status))
	}
	sections = append(sections, styles.Footer.Render(m.help.View(m.keys)))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	header := styles.Logo.Render("radioctl") + " " + styles.MutedText.Render(m.address)
	switch snap := m.snapshot; {
	case snap.IsOffline():
		header += "  " + styles.DangerText.Render("offline")
	case snap.LastError != nil:
		header += "  " + styles.DangerText.Render("poll failed")
	}
	return styles.Header.Render(header)
}

func (m Model) renderNowPlaying() string {
	styles := m.theme.Styles()
	snap := m.snapshot
	if !snap.HasData {
		return styles.FaintText.Render("Waiting for device...")
	}
	var b strings.Builder
	sentence := render.PlaybackSentence(snap.Playback)
	if snap.Playback.Playing() {
		b.WriteString(styles.Text.Render(sentence))
	} else {
		b.WriteString(styles.MutedText.Render(sentence))
	}
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("Volume "))
	b.WriteString(m.theme.VolumeBar(snap.Volume, volumeBarWidth))
	b.WriteString(styles.Text.Render(fmt.Sprintf(" %d/%d", snap.Volume.Current, snap.Volume.Max)))
	return b.String()
}

func (m Model) renderPresets() string {
	styles := m.theme.Styles()
	var b strings.Builder
	b.WriteString(styles.AccentText.Bold(true).Render("Presets"))
	b.WriteString("\n")

	if m.presetsErr != nil {
		b.WriteString(styles.DangerText.Render("Error getting presets"))
		return b.String()
	}
	if len(m.presets) == 0 {
		b.WriteString(styles.FaintText.Render("No presets"))
		return b.String()
	}
	for i, p := range m.presets {
		line := fmt.Sprintf("%2d  %s", p.Index, p.Title)
		if i == m.selectedRow {
			b.WriteString(styles.Selected.Render("› " + line))
		} else {
			b.WriteString(styles.Text.Render("  " + line))
		}
		if i < len(m.presets)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
