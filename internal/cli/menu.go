package cli

import (
	"strconv"
	"strings"
)

// Command is a numeric menu selector.
type Command int

const (
	CommandAdd Command = iota + 1
	CommandViewAll
	CommandSearchByCategory
	CommandSearchByID
	CommandDelete
	CommandUpdate
	CommandExit
)

var commandLabels = map[Command]string{
	CommandAdd:              "Add Book",
	CommandViewAll:          "View All Books",
	CommandSearchByCategory: "Search Books by Category",
	CommandSearchByID:       "Search Book by ID",
	CommandDelete:           "Delete Book by ID",
	CommandUpdate:           "Update Book by ID",
	CommandExit:             "Exit",
}

// Valid reports whether c is one of the menu selectors.
func (c Command) Valid() bool {
	_, ok := commandLabels[c]
	return ok
}

func (c Command) String() string {
	if l, ok := commandLabels[c]; ok {
		return l
	}
	return "Command(" + strconv.Itoa(int(c)) + ")"
}

// menu renders the numbered command list shown before every selection.
func menu() string {
	var sb strings.Builder
	sb.WriteString("\n")
	for c := CommandAdd; c <= CommandExit; c++ {
		sb.WriteString(strconv.Itoa(int(c)))
		sb.WriteString(". ")
		sb.WriteString(c.String())
		if c != CommandExit {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
