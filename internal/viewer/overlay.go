package viewer

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/smasonuk/walkthrough/internal/catalog"
)

// The debug font is 6x16 pixels per glyph.
const (
	glyphWidth  = 6
	lineHeight  = 16
	overlayPad  = 24
	overlayMaxW = 560
)

var (
	overlayShade = color.RGBA{R: 0, G: 0, B: 0, A: 170}
	overlayPanel = color.RGBA{R: 40, G: 40, B: 40, A: 235}
	buttonColor  = color.RGBA{R: 20, G: 20, B: 20, A: 140}
)

// wrapText breaks s into lines of at most width runes, on spaces where
// possible. Existing newlines are kept.
func wrapText(s string, width int) []string {
	if width < 1 {
		width = 1
	}
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := ""
		for _, w := range words {
			for len([]rune(w)) > width {
				if line != "" {
					lines = append(lines, line)
					line = ""
				}
				r := []rune(w)
				lines = append(lines, string(r[:width]))
				w = string(r[width:])
			}
			switch {
			case line == "":
				line = w
			case len([]rune(line))+1+len([]rune(w)) <= width:
				line += " " + w
			default:
				lines = append(lines, line)
				line = w
			}
		}
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// detailLines is the overlay text for item.
func detailLines(item catalog.Item, width int) []string {
	title := item.Title
	if title == "" {
		title = "Untitled"
	}
	lines := wrapText(title, width)
	if item.Author != "" {
		lines = append(lines, wrapText("by "+item.Author, width)...)
	}
	if item.Description != "" {
		lines = append(lines, "")
		lines = append(lines, wrapText(item.Description, width)...)
	}
	lines = append(lines, "", "[Esc] or click to close")
	return lines
}

func drawOverlay(screen *ebiten.Image, item catalog.Item) {
	b := screen.Bounds()
	w, h := float32(b.Dx()), float32(b.Dy())
	vector.DrawFilledRect(screen, 0, 0, w, h, overlayShade, false)

	panelW := min(overlayMaxW, b.Dx()-2*overlayPad)
	lines := detailLines(item, (panelW-2*overlayPad)/glyphWidth)
	panelH := len(lines)*lineHeight + 2*overlayPad
	x := (b.Dx() - panelW) / 2
	y := max((b.Dy()-panelH)/2, overlayPad)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(panelW), float32(panelH), overlayPanel, true)

	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, x+overlayPad, y+overlayPad+i*lineHeight)
	}
}

func drawNavButton(screen *ebiten.Image, x, y int, label string) {
	vector.DrawFilledRect(screen, float32(x), float32(y), buttonSize, buttonSize, buttonColor, true)
	ebitenutil.DebugPrintAt(screen, label, x+(buttonSize-len(label)*glyphWidth)/2, y+(buttonSize-lineHeight)/2)
}

func hudText(index, count int, title string) string {
	if index == 0 {
		return fmt.Sprintf("%s  (%d exhibits)  [->] start", title, count-1)
	}
	return fmt.Sprintf("%d / %d", index, count-1)
}
