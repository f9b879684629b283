package cli

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"sync"
	"unicode"

	"github.com/dakv/rb-tree/envutil"
)

const (
	boxTopLeft     = "╒"
	boxBottomLeft  = "└"
	boxTopRight    = "╕"
	boxBottomRight = "┘"
	boxSide        = "│"
	boxTop         = "═"
	boxBottom      = "─"
	ellipsis       = "…"
)

const (
	AlignLeft = iota
	AlignCenter
	AlignRight
)

// DefaultTerminalWidth is used when the terminal size cannot be read.
const DefaultTerminalWidth = 80

// suppressBanner is read once from RBPLAY_NO_BANNER.
var suppressBanner = sync.OnceValue(func() bool { //nolint:gochecknoglobals
	return envutil.Bool("RBPLAY_NO_BANNER", envutil.Default(false)).ValueOrElse(false)
})

// BannerAutoWidth is Banner sized to the terminal.
func BannerAutoWidth(s string, alignment int) string {
	if suppressBanner() {
		return s + "\n"
	}

	_, w, err := TerminalDimensions()
	if err != nil || w == 0 {
		w = DefaultTerminalWidth
	}

	return Banner(s, int(w), alignment) //nolint:gosec // Terminal width is bounded by screen size
}

// Banner draws s inside a box width columns wide. Lines too long for the box
// are cut with an ellipsis. It returns "" for a non-positive width or an
// unknown alignment.
func Banner(s string, width int, alignment int) string {
	if suppressBanner() {
		return s + "\n"
	}

	if width <= 2 || alignment < AlignLeft || alignment > AlignRight {
		return ""
	}

	inner := width - 2

	var out strings.Builder

	out.WriteString(boxTopLeft + strings.Repeat(boxTop, inner) + boxTopRight)

	for _, line := range strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n") {
		out.WriteString("\n" + boxSide + pad(line, inner, alignment) + boxSide)
	}

	out.WriteString("\n" + boxBottomLeft + strings.Repeat(boxBottom, inner) + boxBottomRight)

	return out.String()
}

// pad fits text into width printable columns.
func pad(text string, width int, alignment int) string {
	length := countGraphic(text)
	if length > width {
		text, length = truncateGraphic(text, width-1)
		text += ellipsis
	}

	gap := max(width-length, 0)

	switch alignment {
	case AlignCenter:
		return strings.Repeat(" ", gap/2) + text + strings.Repeat(" ", gap-gap/2) //nolint:mnd
	case AlignRight:
		return strings.Repeat(" ", gap) + text
	default:
		return text + strings.Repeat(" ", gap)
	}
}

func countGraphic(s string) int {
	count := 0

	for _, r := range s {
		if unicode.IsGraphic(r) {
			count++
		}
	}

	return count
}

// truncateGraphic keeps the runes before the n-th printable one and returns
// them with n.
func truncateGraphic(s string, n int) (string, int) {
	var out strings.Builder

	count := 0

	for _, r := range s {
		if unicode.IsGraphic(r) {
			count++
		}

		if count >= n {
			break
		}

		out.WriteRune(r)
	}

	return out.String(), count
}

// TerminalDimensions returns (rows, cols, err) as reported by stty.
func TerminalDimensions() (uint, uint, error) {
	tty, err := os.Open("/dev/tty")
	if err != nil {
		return 0, 0, err
	}

	defer tty.Close() //nolint:errcheck

	cmd := exec.Command("stty", "size")
	cmd.Stdin = tty

	out, err := cmd.Output()
	if err != nil {
		return 0, 0, err
	}

	return parse(string(out))
}

// parse reads the "rows cols" output of stty size.
func parse(input string) (uint, uint, error) {
	rows, cols, ok := strings.Cut(strings.TrimSpace(input), " ")
	if !ok {
		return 0, 0, fmt.Errorf("unexpected stty output %q", input) //nolint:err113
	}

	r, err := strconv.ParseUint(rows, 10, 32)
	if err != nil {
		return 0, 0, err
	}

	c, err := strconv.ParseUint(cols, 10, 32)
	if err != nil {
		return 0, 0, err
	}

	return uint(r), uint(c), nil
}
