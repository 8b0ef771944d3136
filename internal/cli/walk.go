package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/spf13/cobra"

	"github.com/smasonuk/walkthrough"
)

// walkRate is the tick rate of the terminal navigator, in Hz.
const walkRate = 60

func (c *CLI) walkCommand() *cobra.Command {
	var (
		count      int
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "walk --count N",
		Short: "Step through a gallery of N exhibits in the terminal",
		Long: `Step through a gallery of N exhibits in the terminal.

The navigation engine runs exactly as in the gallery window, at 60 frames
per second, and the camera's distance and angle to its target are shown as
it eases in. Use ←/→ to move, l to lock or unlock navigation, q to quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runWalk(cmd.Context(), count, configPath)
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 8, "number of exhibits")
	cmd.Flags().StringVar(&configPath, "config", "", "layout config file (TOML)")
	return cmd
}

func (c *CLI) runWalk(ctx context.Context, count int, configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if count < 0 {
		return errors.New("walk: count must not be negative")
	}

	// The engine's own logging would tear the TUI, so it stays quiet here.
	eng := walkthrough.New(cfg, nil, walkthrough.WithLogger(log.New(io.Discard)))
	eng.Initialize(count)

	final, err := tea.NewProgram(newWalkModel(eng), tea.WithContext(ctx)).Run()
	if err != nil {
		return fmt.Errorf("walk: %w", err)
	}
	if m, ok := final.(walkModel); ok {
		c.Logger.Info("walk finished", "waypoint", m.engine.CurrentWaypointIndex(), "frames", m.frames)
	}
	return nil
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second/walkRate, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// walkModel drives an engine from key presses and a fixed-rate tick.
type walkModel struct {
	engine *walkthrough.Engine
	frames int
}

func newWalkModel(eng *walkthrough.Engine) walkModel {
	return walkModel{engine: eng}
}

func (m walkModel) Init() tea.Cmd {
	return tick()
}

func (m walkModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "right", "d":
			m.engine.Next()
		case "left", "a":
			m.engine.Previous()
		case "l":
			m.engine.SetLocked(!m.engine.Locked())
		case "home":
			m.engine.JumpTo(0, false)
		case "end":
			m.engine.JumpTo(m.engine.WaypointCount()-1, false)
		}
	case tickMsg:
		m.engine.Advance(1.0 / walkRate)
		m.frames++
		return m, tick()
	}
	return m, nil
}

func (m walkModel) View() string {
	eng := m.engine
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Gallery walk"))
	b.WriteString("\n\n")

	idx := eng.CurrentWaypointIndex()
	target := eng.CurrentTarget()
	where := "intro"
	if target.HasExhibit() {
		p := eng.Plan().Placements[target.Exhibit]
		where = fmt.Sprintf("exhibit %d on the %s wall", target.Exhibit, p.Wall)
	}
	fmt.Fprintf(&b, "Waypoint  %s  %s\n",
		StyleNumber.Render(fmt.Sprintf("%d / %d", idx, eng.WaypointCount()-1)),
		StyleValue.Render(where))

	pos := eng.Pose().Position
	fmt.Fprintf(&b, "Camera    %s\n", StyleValue.Render(fmt.Sprintf("%.2f, %.2f, %.2f", pos.X(), pos.Y(), pos.Z())))

	dist, angle := eng.Remaining()
	fmt.Fprintf(&b, "Remaining %s  %s\n",
		StyleNumber.Render(fmt.Sprintf("%.3f m", dist)),
		StyleNumber.Render(fmt.Sprintf("%.2f°", mgl64.RadToDeg(angle))))

	fmt.Fprintf(&b, "Status    %s\n\n", m.status())
	b.WriteString(StyleDim.Render("←/→ move  l lock  q quit"))
	b.WriteString("\n")
	return b.String()
}

func (m walkModel) status() string {
	switch {
	case m.engine.Locked():
		return StyleWarning.Render("locked")
	case m.engine.Arrived():
		return StyleSuccess.Render("arrived")
	default:
		return StyleValue.Render("moving")
	}
}
