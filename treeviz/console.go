package treeviz

import (
	"io"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// ConsoleConfig configures console output.
type ConsoleConfig struct {
	Width   int            // line width in fixed-width ‘en’s; 0 means unlimited
	Context *uax11.Context // context for string width calculation, may be nil
}

// Console is a type for outputting tree snapshots to a console with a fixed
// width font. Trees are printed sideways: the root is at the left margin,
// right subtrees above and left subtrees below their parent.
type Console struct {
	config ConsoleConfig
	colors map[Color]*color.Color
	note   *color.Color
}

var setupGraphemes sync.Once

// NewConsole creates a new console printer.
//
// If config is nil, a heuristic will create a config from the current
// terminal's properties. colors is a map from node colors to display colors.
// It may contain just a subset of the colors; nil selects a default palette.
func NewConsole(config *ConsoleConfig, colors map[Color]*color.Color) *Console {
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	c := &Console{note: color.New(color.Faint)}
	if config == nil {
		config = ConfigFromTerminal()
	}
	c.config = *config
	if c.config.Context == nil {
		c.config.Context = uax11.LatinContext
	}
	if colors == nil {
		c.colors = makeDefaultPalette()
	} else {
		c.colors = colors
	}
	return c
}

func makeDefaultPalette() map[Color]*color.Color {
	return map[Color]*color.Color{
		Uncolored: color.New(color.FgBlue),
		Red:       color.New(color.FgRed, color.Bold),
		Black:     color.New(color.FgHiBlack, color.Bold),
	}
}

// Print outputs a snapshot to w. An empty tree prints as a single "∅" line.
func (c *Console) Print(root *Node, w io.Writer) error {
	if root == nil {
		_, err := io.WriteString(w, "∅\n")
		return err
	}
	return c.print(root, w, "", "")
}

func (c *Console) print(n *Node, w io.Writer, prefix, connector string) error {
	above, below := prefix+"│   ", prefix+"    "
	switch connector {
	case "":
		above, below = prefix, prefix
	case "┌── ":
		above, below = prefix+"    ", prefix+"│   "
	}
	if n.Right != nil {
		if err := c.print(n.Right, w, above, "┌── "); err != nil {
			return err
		}
	}
	if err := c.line(n, w, prefix+connector); err != nil {
		return err
	}
	if n.Left != nil {
		return c.print(n.Left, w, below, "└── ")
	}
	return nil
}

func (c *Console) line(n *Node, w io.Writer, lead string) error {
	if _, err := io.WriteString(w, lead); err != nil {
		return err
	}
	label, note := n.Label, n.Note
	if c.config.Width > 0 {
		room := c.config.Width - c.width(lead)
		label = c.truncate(label, room)
		room -= c.width(label) + 1
		note = c.truncate(note, room)
	}
	if col, ok := c.colors[n.Color]; ok {
		if _, err := col.Fprint(w, label); err != nil {
			return err
		}
	} else if _, err := io.WriteString(w, label); err != nil {
		return err
	}
	if note != "" {
		if _, err := io.WriteString(w, " "); err != nil {
			return err
		}
		if _, err := c.note.Fprint(w, note); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// width measures s in ‘en’s. ASCII is one en per byte; uax11 contexts may
// report Latin digits as wide.
func (c *Console) width(s string) int {
	if s == "" {
		return 0
	}
	if isASCII(s) {
		return len(s)
	}
	return uax11.StringWidth(grapheme.StringFromString(s), c.config.Context)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// truncate shortens s to at most room ‘en’s, marking the cut with an ellipsis.
func (c *Console) truncate(s string, room int) string {
	if room <= 0 {
		return ""
	}
	if c.width(s) <= room {
		return s
	}
	var b strings.Builder
	for _, r := range s {
		if c.width(b.String()+string(r))+1 > room {
			break
		}
		b.WriteRune(r)
	}
	return b.String() + "…"
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating a console config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and sets the ConsoleConfig.Width parameter accordingly.
func ConfigFromTerminal() *ConsoleConfig {
	config := &ConsoleConfig{}
	if term.IsTerminal(0) {
		w, _, err := term.GetSize(0)
		if err != nil {
			config.Width = 80
		} else if w > 20 {
			config.Width = w - 2
		} else {
			config.Width = 20
		}
	}
	tracer().P("format", "console").Debugf("setting line width to %d en", config.Width)
	return config
}
