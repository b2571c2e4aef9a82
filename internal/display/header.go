package display

import (
	"fmt"
	"os"

	"github.com/charmbracelet/x/term"
)

const title = "Select recipes"

// renderHeader returns the title line with a running selection count.
func renderHeader(selected, total int) string {
	return titleStyle.Render(title) + "  " +
		countStyle.Render(fmt.Sprintf("%d of %d selected", selected, total))
}

// termWidth returns the current terminal column count, or 80 as fallback.
func termWidth() int {
	if w, _, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 0 {
		return w
	}
	return 80
}
