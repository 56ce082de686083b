// Package console is a terminal front end for one game: it renders snapshots
// and events as text and submits a move each time the user presses enter.
package console

import (
	"fmt"
	"maps"
	"slices"
	"snakes/engine"
	"snakes/game"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type model struct {
	eng      *engine.Engine
	last     *engine.MoveResult
	err      error
	quitting bool
}

func newModel(eng *engine.Engine) model {
	return model{eng: eng}
}

// Run blocks until the user quits.
func Run(eng *engine.Engine) error {
	_, err := tea.NewProgram(newModel(eng)).Run()
	return err
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "enter", " ":
			if m.eng.State().Terminal() {
				return m, nil
			}
			result, err := m.eng.SubmitHumanMove()
			if err != nil {
				m.err = err
				return m, nil
			}
			m.last = &result
		}
	}
	return m, nil
}

func (m model) View() string {
	snap := m.eng.Snapshot()
	var s strings.Builder

	fmt.Fprintf(&s, "Welcome to Snakes and Ladders! Difficulty: %s\n", snap.Difficulty)
	fmt.Fprintf(&s, "Snakes:   %s\n", formatJumps(snap.Hazards))
	fmt.Fprintf(&s, "Ladders:  %s\n", formatJumps(snap.Boosts))
	fmt.Fprintf(&s, "Power-ups: %s\n\n", formatPowerUps(snap.PowerUps))

	if m.last != nil {
		for _, e := range m.last.Player.Events {
			if line := FormatEvent(e); line != "" {
				s.WriteString(line + "\n")
			}
		}
		if m.last.AI != nil {
			s.WriteString("AI rolling...\n")
			for _, e := range m.last.AI.Events {
				if line := FormatEvent(e); line != "" {
					s.WriteString(line + "\n")
				}
			}
		}
		s.WriteString("\n")
	}

	fmt.Fprintf(&s, "Player at %d, AI at %d\n", snap.PlayerPosition, snap.AIPosition)

	switch snap.State {
	case engine.PlayerWon:
		s.WriteString("\nPlayer wins the game!\n")
	case engine.AIWon:
		s.WriteString("\nAI wins the game!\n")
	default:
		if !m.quitting {
			s.WriteString("Press Enter to roll...\n")
		}
	}
	if m.err != nil {
		fmt.Fprintf(&s, "error: %v\n", m.err)
	}
	s.WriteString("Press q to quit.\n")
	return s.String()
}

// FormatEvent renders one event as a line of text. Generic power-up notices
// render as nothing when a more specific event follows them.
func FormatEvent(e game.Event) string {
	who := title(e.Agent)
	switch e.Kind {
	case game.EventRoll:
		if e.Adjusted() {
			return fmt.Sprintf("%s rolled %d but plays it safe with %d.", who, e.Raw, e.Roll)
		}
		return fmt.Sprintf("%s rolled %d.", who, e.Roll)
	case game.EventOvershoot:
		return fmt.Sprintf("%s would overshoot to %d and stays at %d.", who, e.Target, e.Square)
	case game.EventHazard:
		return fmt.Sprintf("%s hit a snake at %d and slides down to %d!", who, e.Square, e.Target)
	case game.EventHazardIgnored:
		return fmt.Sprintf("%s avoids snake at %d!", who, e.Square)
	case game.EventBoost:
		return fmt.Sprintf("%s climbs a ladder from %d to %d!", who, e.Square, e.Target)
	case game.EventPowerUp:
		if game.PowerUp(e.Detail) == game.SnakeImmunity && e.Agent != game.AI {
			return fmt.Sprintf("%s found a snake immunity charm, but only the AI can use it.", who)
		}
		return ""
	case game.EventTeleport:
		return fmt.Sprintf("%s teleported to %d!", who, e.Target)
	case game.EventExtraRoll:
		return fmt.Sprintf("%s gets an extra roll!", who)
	case game.EventImmunity:
		return fmt.Sprintf("%s gained snake immunity!", who)
	default:
		return ""
	}
}

func title(a game.Agent) string {
	if a == game.AI {
		return "AI"
	}
	return "Player"
}

func formatJumps(jumps map[int]int) string {
	if len(jumps) == 0 {
		return "none"
	}
	parts := make([]string, 0, len(jumps))
	for _, src := range slices.Sorted(maps.Keys(jumps)) {
		parts = append(parts, fmt.Sprintf("%d->%d", src, jumps[src]))
	}
	return strings.Join(parts, " ")
}

func formatPowerUps(p game.PowerUps) string {
	if len(p) == 0 {
		return "none"
	}
	parts := make([]string, 0, len(p))
	for _, square := range slices.Sorted(maps.Keys(p)) {
		parts = append(parts, fmt.Sprintf("%d:%s", square, p[square]))
	}
	return strings.Join(parts, " ")
}
