package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// bar returns a plain width-cell bar filled to done/total.
func bar(done, total, width int) string {
	if width < 2 {
		width = 2
	}
	filled := 0
	if total > 0 {
		filled = done * width / total
	}
	filled = max(0, min(filled, width))
	return strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
}

// RenderProgress renders completion like [████░░░░] 3/8.
// Green from two thirds up, yellow from one third, red below.
func RenderProgress(done, total, width int) string {
	style := StyleGreen
	switch {
	case total <= 0 || done*3 < total:
		style = StyleRed
	case done*3 < total*2:
		style = StyleYellow
	}
	return fmt.Sprintf("[%s] %d/%d", style.Render(bar(done, total, width)), done, total)
}

// RenderTimer renders the per-word countdown. The bar turns yellow at half
// time and red in the last five seconds.
func RenderTimer(left, total, width int) string {
	style := StyleGreen
	switch {
	case left <= 5:
		style = StyleRed
	case left*2 <= total:
		style = StyleYellow
	}
	return fmt.Sprintf("%s %s", style.Render(bar(left, total, width)), style.Render(fmt.Sprintf("%2ds", left)))
}
