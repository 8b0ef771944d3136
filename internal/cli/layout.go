package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/spf13/cobra"

	"github.com/smasonuk/walkthrough"
	"github.com/smasonuk/walkthrough/internal/catalog"
)

// layoutCommand prints the gallery layout without opening a window.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		count       int
		catalogPath string
		configPath  string
	)

	cmd := &cobra.Command{
		Use:   "layout (--count N | --catalog gallery.yaml)",
		Short: "Print the room, wall allocation and waypoints for a gallery",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd.OutOrStdout(), count, catalogPath, configPath)
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 0, "number of exhibits")
	cmd.Flags().StringVarP(&catalogPath, "catalog", "c", "", "catalog file (YAML)")
	cmd.Flags().StringVar(&configPath, "config", "", "layout config file (TOML)")
	cmd.MarkFlagsOneRequired("count", "catalog")
	cmd.MarkFlagsMutuallyExclusive("count", "catalog")

	return cmd
}

func (c *CLI) runLayout(w io.Writer, count int, catalogPath, configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	var titles []string
	if catalogPath != "" {
		cat, err := catalog.Load(catalogPath)
		if err != nil {
			return err
		}
		count = cat.Len()
		for _, item := range cat.Items {
			titles = append(titles, item.Title)
		}
	}
	if count < 0 {
		return errors.New("layout: count must not be negative")
	}

	plan := walkthrough.NewPlan(count, cfg.Layout)
	c.Logger.Debug("layout computed", "exhibits", plan.ExhibitCount(), "waypoints", len(plan.Waypoints))
	_, err = fmt.Fprintln(w, renderLayout(plan, titles))
	return err
}

// renderLayout formats plan as three tables. titles, when given, label the
// waypoints by exhibit.
func renderLayout(plan *walkthrough.Plan, titles []string) string {
	var b strings.Builder

	room := plan.Room
	b.WriteString(StyleTitle.Render("Room"))
	b.WriteString("\n")
	b.WriteString(newTable("Width", "Length", "Height", "Exhibits").
		Row(meters(room.Width), meters(room.Length), meters(room.WallHeight), strconv.Itoa(plan.ExhibitCount())).
		Render())
	b.WriteString("\n\n")

	b.WriteString(StyleTitle.Render("Walls"))
	b.WriteString("\n")
	walls := newTable("Wall", "Length", "Share", "Count", "First at", "Spacing")
	for _, a := range plan.Allocations {
		walls.Row(
			a.Wall.ID.String(),
			meters(a.Wall.Length),
			fmt.Sprintf("%d + %.3f", a.Floor, a.Remainder),
			strconv.Itoa(a.Count),
			meters(a.StartOffset),
			meters(a.SegmentSize),
		)
	}
	b.WriteString(walls.Render())
	b.WriteString("\n\n")

	b.WriteString(StyleTitle.Render("Waypoints"))
	b.WriteString("\n")
	wps := newTable("#", "Exhibit", "Wall", "Camera (x, z)", "Exhibit (x, z)", "Facing", "Title")
	for i, wp := range plan.Waypoints {
		cam := fmt.Sprintf("%.2f, %.2f", wp.Position.X(), wp.Position.Z())
		if !wp.HasExhibit() {
			wps.Row(strconv.Itoa(i), "intro", "", cam, "", "", "")
			continue
		}
		p := plan.Placements[wp.Exhibit]
		title := ""
		if wp.Exhibit < len(titles) {
			title = titles[wp.Exhibit]
		}
		wps.Row(
			strconv.Itoa(i),
			strconv.Itoa(wp.Exhibit),
			p.Wall.String(),
			cam,
			fmt.Sprintf("%.2f, %.2f", p.Position.X(), p.Position.Z()),
			fmt.Sprintf("%.0f°", mgl64.RadToDeg(p.RotY)),
			title,
		)
	}
	b.WriteString(wps.Render())
	return b.String()
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleBorder).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 { // header
				return styleHeader.Padding(0, 1)
			}
			return StyleValue.Padding(0, 1)
		})
}

func meters(v float64) string {
	return fmt.Sprintf("%.2f m", v)
}
