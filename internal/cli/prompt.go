package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"bookshelf/internal/entity"
)

// readLine prints prompt and returns the next input line without its
// terminator. Lines of any length are accepted. It returns io.EOF once input
// is exhausted.
func (l *Loop) readLine(prompt string) (string, error) {
	l.print(prompt)
	line, err := l.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read input: %w", err)
		}
		if line == "" {
			return "", io.EOF
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// readInt prompts until the input parses as an integer.
func (l *Loop) readInt(prompt string) (int, error) {
	for {
		line, err := l.readLine(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil {
			return n, nil
		}
		l.println("Invalid number!")
	}
}

// readCategory prompts until the input names a category, echoing the valid
// names before each attempt.
func (l *Loop) readCategory(prompt string) (entity.Category, error) {
	for {
		l.println("Available: " + categoryList())
		line, err := l.readLine(prompt)
		if err != nil {
			return "", err
		}
		c, err := entity.ParseCategory(line)
		if err == nil {
			return c, nil
		}
		l.println("Invalid category, try again.")
	}
}

func categoryList() string {
	cats := entity.Categories()
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = c.String()
	}
	return "[" + strings.Join(names, ", ") + "]"
}
