// Package cli drives the interactive book menu over a text stream.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"bookshelf/internal/book"
	"bookshelf/internal/entity"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BookService is the set of shelf operations the menu needs.
type BookService interface {
	Add(ctx context.Context, title, author string, category entity.Category) (entity.Book, error)
	List(ctx context.Context) ([]entity.Book, error)
	Get(ctx context.Context, id int) (entity.Book, error)
	ByCategory(ctx context.Context, category entity.Category) ([]entity.Book, error)
	Delete(ctx context.Context, id int) error
	Update(ctx context.Context, id int, p book.Patch) (entity.Book, error)
	Empty() bool
	Full() bool
}

// State is the lifecycle of a Loop.
type State int

const (
	StateRunning State = iota
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

const banner = "=== Book Management System ==="

// Loop reads one menu selection per iteration and runs the matching command
// against the service until Exit is chosen or input ends.
type Loop struct {
	svc       BookService
	in        *bufio.Reader
	out       io.Writer
	log       *zap.Logger
	state     State
	sessionID string
}

// NewLoop creates a loop reading from in and writing to out. A nil logger
// disables logging.
func NewLoop(svc BookService, in io.Reader, out io.Writer, log *zap.Logger) *Loop {
	if log == nil {
		log = zap.NewNop()
	}
	id := uuid.NewString()
	return &Loop{
		svc:       svc,
		in:        bufio.NewReader(in),
		out:       out,
		log:       log.With(zap.String("session_id", id)),
		state:     StateRunning,
		sessionID: id,
	}
}

// State returns the current lifecycle state.
func (l *Loop) State() State { return l.state }

// SessionID identifies this session in log output.
func (l *Loop) SessionID() string { return l.sessionID }

// Run processes commands until the loop terminates. Closed input ends the
// session the same way Exit does.
func (l *Loop) Run(ctx context.Context) error {
	l.log.Debug("session started")
	l.println(banner)

	for l.state == StateRunning {
		l.println(menu())
		line, err := l.readLine("Enter choice: ")
		if err != nil {
			return l.stop(err)
		}

		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			l.println("Error: Enter a number!")
			continue
		}

		if err := l.dispatch(ctx, Command(n)); err != nil {
			return l.stop(err)
		}
	}

	l.log.Debug("session ended")
	return nil
}

func (l *Loop) dispatch(ctx context.Context, cmd Command) error {
	l.log.Debug("command selected", zap.Int("selector", int(cmd)), zap.Stringer("command", cmd))

	switch cmd {
	case CommandAdd:
		return l.addBook(ctx)
	case CommandViewAll:
		return l.viewBooks(ctx)
	case CommandSearchByCategory:
		return l.searchByCategory(ctx)
	case CommandSearchByID:
		return l.searchByID(ctx)
	case CommandDelete:
		return l.deleteBook(ctx)
	case CommandUpdate:
		return l.updateBook(ctx)
	case CommandExit:
		l.println("Exiting...")
		l.state = StateTerminated
		return nil
	default:
		l.println("Invalid choice!")
		return nil
	}
}

// stop ends the session. Input exhaustion is a normal shutdown; anything
// else is returned to the caller.
func (l *Loop) stop(err error) error {
	l.state = StateTerminated
	if errors.Is(err, io.EOF) {
		l.log.Debug("input closed, ending session")
		return nil
	}
	l.log.Error("session aborted", zap.Error(err))
	return err
}

func (l *Loop) print(s string) {
	_, _ = io.WriteString(l.out, s)
}

func (l *Loop) println(s string) {
	_, _ = fmt.Fprintln(l.out, s)
}
