package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/sheacoding/jumprocket/internal/config"
	"github.com/sheacoding/jumprocket/internal/game"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("11"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	accentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("14"))

	alertStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("9"))

	flashStyle = lipgloss.NewStyle().
			Bold(true).
			Reverse(true).
			Foreground(lipgloss.Color("10"))

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("11"))

	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(1, 3)
)

// renderSnapshot dispatches to the per-state views.
func renderSnapshot(snap game.Snapshot, cfg config.System, fuel progress.Model, width int, hint string) string {
	var body string
	switch snap.State {
	case game.StateIdle:
		body = renderIdle(hint)
	case game.StateDifficultySelect:
		body = renderDifficultySelect(snap)
	case game.StatePlaying:
		body = renderPlaying(snap, cfg, fuel)
	case game.StatePaused:
		body = renderPaused(snap)
	case game.StateResetConfirm:
		body = renderResetConfirm(snap)
	case game.StateLaunching:
		body = renderLaunching(snap, fuel)
	case game.StateResult:
		body = renderResult(snap, cfg)
	default:
		body = "..."
	}

	framed := frameStyle.Render(body)
	if width > lipgloss.Width(framed) {
		framed = lipgloss.PlaceHorizontal(width, lipgloss.Center, framed)
	}
	return framed
}

func renderIdle(hint string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("JUMP ROCKET"))
	b.WriteString("\n\n")
	b.WriteString("    /\\\n   /  \\\n  |    |\n  | JR |\n  |    |\n /|    |\\\n  ######\n")
	b.WriteString("\n")
	b.WriteString("Jump twice to fuel up, or press enter\n\n")
	if hint != "" {
		b.WriteString(dimStyle.Render(fmt.Sprintf("suggested level: %s", hint)))
		b.WriteString("\n\n")
	}
	b.WriteString(dimStyle.Render("space jump  ·  enter start  ·  q quit"))
	return b.String()
}

func renderDifficultySelect(snap game.Snapshot) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("SELECT DIFFICULTY"))
	b.WriteString("\n\n")

	for d := game.Easy; d <= game.Hard; d++ {
		label := fmt.Sprintf(" %-6s ", strings.ToUpper(d.String()))
		if d == snap.Cursor {
			b.WriteString(selectedStyle.Render("▶" + label))
		} else {
			b.WriteString(dimStyle.Render(" " + label))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Target: %d jumps in %ds\n",
		snap.CursorTargets.Jumps, snap.CursorTargets.Time))
	b.WriteString(fmt.Sprintf("Launch at %d%% fuel\n\n", snap.Cursor.FuelThreshold()))
	b.WriteString(dimStyle.Render("enter next  ·  r confirm"))
	return b.String()
}

func renderPlaying(snap game.Snapshot, cfg config.System, fuel progress.Model) string {
	s := snap.Session

	var b strings.Builder
	b.WriteString(titleStyle.Render("FUELING"))
	b.WriteString("  ")
	b.WriteString(dimStyle.Render(s.Difficulty.String()))
	if snap.FlashActive && snap.ShowNow {
		b.WriteString("  ")
		b.WriteString(flashStyle.Render(" TARGET REACHED "))
	}
	b.WriteString("\n\n")

	rocket := "  |    |"
	if s.Jumping() {
		rocket = "  | /\\ |"
	}
	b.WriteString(rocket + "\n\n")

	b.WriteString(fuel.ViewAs(float64(s.Fuel) / 100.0))
	b.WriteString(fmt.Sprintf("  %d%%\n\n", s.Fuel))

	b.WriteString(fmt.Sprintf("Jumps     %d\n", s.JumpCount))
	b.WriteString(fmt.Sprintf("Time      %s\n", formatDuration(s.Elapsed)))
	b.WriteString(fmt.Sprintf("Pace      %.0f/min\n", snap.JumpsPerMinute))
	b.WriteString(fmt.Sprintf("Calories  %.1f\n", snap.LiveCalories))

	if cfg.TargetsEnabled {
		b.WriteString("\n")
		b.WriteString(renderTargetLine("jumps", snap.JumpsAchieved))
		b.WriteString(renderTargetLine("time", snap.TimeAchieved))
		b.WriteString(renderTargetLine("calories", snap.CaloriesAchieved))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("space jump  ·  enter pause  ·  r reset"))
	return b.String()
}

func renderTargetLine(name string, achieved bool) string {
	if achieved {
		return doneStyle.Render("✓ "+name) + "\n"
	}
	return dimStyle.Render("· "+name) + "\n"
}

func renderPaused(snap game.Snapshot) string {
	s := snap.Session

	var b strings.Builder
	b.WriteString(titleStyle.Render("PAUSED"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Jumps  %d\n", s.JumpCount))
	b.WriteString(fmt.Sprintf("Fuel   %d%%\n", s.Fuel))
	b.WriteString(fmt.Sprintf("Time   %s\n\n", formatDuration(s.Elapsed)))
	b.WriteString(dimStyle.Render("enter resume  ·  r reset"))
	return b.String()
}

func renderResetConfirm(snap game.Snapshot) string {
	var b strings.Builder
	b.WriteString(alertStyle.Render("RESET SESSION?"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%d jumps will be discarded.\n\n", snap.Session.JumpCount))
	b.WriteString(dimStyle.Render("enter cancel  ·  r confirm reset"))
	return b.String()
}

func renderLaunching(snap game.Snapshot, fuel progress.Model) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("LIFTOFF"))
	b.WriteString("\n\n")
	b.WriteString("    /\\\n   /  \\\n  | JR |\n /|    |\\\n  ######\n   ^^^^\n  ^^^^^^\n")
	b.WriteString("\n")
	b.WriteString(fuel.ViewAs(float64(snap.Session.Fuel) / 100.0))
	b.WriteString("\n")
	return b.String()
}

func renderResult(snap game.Snapshot, cfg config.System) string {
	s := snap.Session
	seconds := int(s.Elapsed.Seconds())
	freq := game.AvgFrequency(s.JumpCount, seconds)

	var b strings.Builder
	b.WriteString(titleStyle.Render("FLIGHT REPORT"))
	b.WriteString("\n\n")
	b.WriteString(accentStyle.Render(fmt.Sprintf("Height  %dm", s.FlightHeight)))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Score      %d\n", s.Difficulty.Score(cfg, s.JumpCount, seconds, freq)))
	b.WriteString(fmt.Sprintf("Jumps      %d\n", s.JumpCount))
	b.WriteString(fmt.Sprintf("Time       %s\n", formatDuration(s.Elapsed)))
	b.WriteString(fmt.Sprintf("Calories   %.1f\n", s.Difficulty.Calories(s.JumpCount, seconds)))
	b.WriteString(fmt.Sprintf("Jump est.  %.2fm\n", game.EstimatedJumpHeight(freq)))
	b.WriteString(fmt.Sprintf("Intensity  %.1f/10\n", game.Intensity(freq*60, s.Elapsed)))

	if s.Difficulty.TargetAchieved(cfg, s.JumpCount, seconds) {
		b.WriteString("\n")
		b.WriteString(doneStyle.Render("✓ target achieved"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("enter back to start"))
	return b.String()
}

func formatDuration(d time.Duration) string {
	total := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
