// Package input reads terminal keystrokes and maps them to the game's
// high-level intents. Raw events pass through a debounce layer and a
// binding table before anything game-specific sees them.
package input

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

var stdinReader *bufio.Reader

// ReadLine reads one line of plain text from stdin, for prompts that
// want free text (journal notes, deduction answers).
func ReadLine() (string, error) {
	if stdinReader == nil {
		stdinReader = bufio.NewReader(os.Stdin)
	}
	line, err := stdinReader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// readByte reads a single byte from stdin in raw mode.
func readByte() (byte, error) {
	buf := make([]byte, 1)
	_, err := os.Stdin.Read(buf)
	return buf[0], err
}

// readArrow resolves an ESC-led sequence into an arrow code. Returns
// the code, or the bytes to treat as ordinary input when the sequence
// was not an arrow.
func readArrow(first byte) (string, []byte) {
	if first != 0x1b {
		return "", []byte{first}
	}

	b2, err := readByte()
	if err != nil {
		return "", nil
	}
	if b2 != '[' && b2 != 'O' {
		return "", []byte{first, b2}
	}

	b3, err := readByte()
	if err != nil {
		return "", nil
	}
	switch b3 {
	case 'A':
		return "arrow_up", nil
	case 'B':
		return "arrow_down", nil
	case 'C':
		return "arrow_right", nil
	case 'D':
		return "arrow_left", nil
	default:
		return "", nil
	}
}

// ReadKey reads one keystroke in raw mode. Arrow keys and bound single
// characters return immediately; anything else collects a word finished
// with Enter (so compass words like "ne" still work). Ctrl+C returns
// the quit code.
func ReadKey() (string, error) {
	stdinReader = nil

	oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		return "", fmt.Errorf("raw mode: %w", err)
	}
	defer term.Restore(int(os.Stdin.Fd()), oldState)

	b1, err := readByte()
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}

	if code, _ := readArrow(b1); code != "" {
		fmt.Println()
		return code, nil
	}

	switch b1 {
	case 3: // Ctrl+C
		fmt.Println()
		return "quit", nil
	case '\n', '\r':
		return "", nil
	}

	if b1 < 32 || b1 >= 127 {
		return "", nil
	}

	if isImmediate(b1) {
		fmt.Println()
		return string(b1), nil
	}

	word := []byte{b1}
	fmt.Print(string(b1))
	for {
		b, err := readByte()
		if err != nil {
			break
		}
		switch {
		case b == 0x1b:
			readArrow(b) // swallow stray arrows mid-word
		case b == 127 || b == 8:
			if len(word) > 0 {
				word = word[:len(word)-1]
				fmt.Print("\b \b")
			}
		case b == '\n' || b == '\r':
			fmt.Println()
			return strings.ToLower(string(word)), nil
		case b == 3:
			fmt.Println()
			return "quit", nil
		case b >= 32 && b < 127:
			word = append(word, b)
			fmt.Print(string(b))
		}
	}
	return strings.ToLower(string(word)), nil
}

// isImmediate reports whether a single keypress is a complete command
// on its own. Compass letters stay out of this set so "ne" and friends
// can be typed in full.
func isImmediate(b byte) bool {
	switch b {
	case 'i', 'c', 'x', 'v', 'q', '.', '?', 'j', 'd':
		return true
	default:
		return false
	}
}
