package term

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"
)

// Terminal обеспечивает интерактивный ввод через терминал.
type Terminal struct {
	in          *bufio.Reader
	out         io.Writer
	interactive bool
}

// NewTerminal создает новый экземпляр Terminal поверх стандартного ввода.
func NewTerminal() *Terminal {
	return &Terminal{
		in:          bufio.NewReader(os.Stdin),
		out:         os.Stdout,
		interactive: term.IsTerminal(int(os.Stdin.Fd())),
	}
}

// NewTerminalWithIO создает Terminal с заданными потоками, для тестов.
func NewTerminalWithIO(in io.Reader, out io.Writer, interactive bool) *Terminal {
	return &Terminal{
		in:          bufio.NewReader(in),
		out:         out,
		interactive: interactive,
	}
}

// PromptPath запрашивает путь с подсказкой значения по умолчанию.
// Пустой ввод и неинтерактивное окружение молча дают значение по умолчанию.
func (t *Terminal) PromptPath(prompt, defaultPath string) string {
	if !t.interactive {
		return defaultPath
	}

	fmt.Fprintf(t.out, "%s [default: %s]: ", prompt, defaultPath)
	line, err := t.in.ReadString('\n')
	if err != nil && line == "" {
		return defaultPath
	}

	line = strings.TrimSpace(line)
	if line == "" {
		return defaultPath
	}
	return expandUser(line)
}

// expandUser раскрывает ведущую тильду в домашнюю директорию пользователя.
func expandUser(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}
