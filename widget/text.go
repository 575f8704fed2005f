package widget

import (
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	tui "github.com/grindlemire/go-tuikit"
)

// Align controls horizontal placement of text lines.
type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Text paints Content inside its area, wrapping at word boundaries.
// Lines that do not fit vertically are dropped.
type Text struct {
	Content string
	Style   tcell.Style
	Align   Align
	Layout  tui.LayoutStyle
}

// Update implements tui.Component.
func (t Text) Update(_ *tui.Hooks, u *tui.Updater) {
	u.SetLayoutStyle(t.Layout)
}

// Draw implements tui.Component.
func (t Text) Draw(d *tui.Drawer) {
	area := d.Area
	for i, line := range Wrap(t.Content, area.Width) {
		if i >= area.Height {
			return
		}
		x := area.X
		switch w := runewidth.StringWidth(line); t.Align {
		case AlignCenter:
			x += (area.Width - w) / 2
		case AlignRight:
			x += area.Width - w
		}
		d.Text(x, area.Y+i, line, t.Style)
	}
}

// Wrap splits s into lines no wider than width cells. Explicit newlines are
// kept; words longer than width are broken.
func Wrap(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		lines = append(lines, wrapParagraph(para, width)...)
	}
	return lines
}

func wrapParagraph(para string, width int) []string {
	words := strings.Fields(para)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	var cur strings.Builder
	curW := 0
	flush := func() {
		lines = append(lines, cur.String())
		cur.Reset()
		curW = 0
	}

	for _, word := range words {
		ww := runewidth.StringWidth(word)
		if curW > 0 && curW+1+ww <= width {
			cur.WriteByte(' ')
			cur.WriteString(word)
			curW += 1 + ww
			continue
		}
		if curW > 0 {
			flush()
		}
		for ww > width {
			head := runewidth.Truncate(word, width, "")
			if head == "" {
				// a single rune wider than the line
				_, size := utf8.DecodeRuneInString(word)
				head = word[:size]
			}
			lines = append(lines, head)
			word = word[len(head):]
			ww = runewidth.StringWidth(word)
		}
		cur.WriteString(word)
		curW = ww
	}
	if curW > 0 {
		flush()
	}
	return lines
}
