package session

import "fmt"

const (
	clearLine   = "\033[2K"
	clearScreen = "\033[2J"
)

func cursorUp(n int) string {
	return fmt.Sprintf("\033[%dA", n)
}
