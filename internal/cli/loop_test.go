package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"bookshelf/internal/book"
	"bookshelf/internal/entity"
	"bookshelf/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const availableLine = "Available: [FICTION, SCIENCE, HISTORY, TECHNOLOGY, COMICS]"

func newTestLoop(t *testing.T, capacity int, seeded bool, input string) (*Loop, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	return NewLoop(testutil.NewService(t, capacity, seeded), strings.NewReader(input), out, nil), out
}

func run(t *testing.T, l *Loop) {
	t.Helper()
	require.NoError(t, l.Run(context.Background()))
	assert.Equal(t, StateTerminated, l.State())
}

func TestLoop_Exit(t *testing.T) {
	l, out := newTestLoop(t, 5, false, "7\n")
	assert.Equal(t, StateRunning, l.State())
	assert.NotEmpty(t, l.SessionID())

	run(t, l)

	want := banner + "\n" + menu() + "\nEnter choice: Exiting...\n"
	assert.Equal(t, want, out.String())
}

func TestLoop_InputClosed(t *testing.T) {
	l, out := newTestLoop(t, 5, false, "")

	run(t, l)

	assert.NotContains(t, out.String(), "Exiting...")
}

func TestLoop_Selector(t *testing.T) {
	t.Run("non-numeric", func(t *testing.T) {
		l, out := newTestLoop(t, 5, false, "abc\n\n7\n")
		run(t, l)
		assert.Equal(t, 2, strings.Count(out.String(), "Error: Enter a number!"))
		assert.Equal(t, 3, strings.Count(out.String(), "1. Add Book"))
	})

	t.Run("out of range", func(t *testing.T) {
		l, out := newTestLoop(t, 5, false, "0\n8\n7\n")
		run(t, l)
		assert.Equal(t, 2, strings.Count(out.String(), "Invalid choice!"))
	})

	t.Run("surrounding spaces", func(t *testing.T) {
		l, out := newTestLoop(t, 5, false, " 7 \n")
		run(t, l)
		assert.Contains(t, out.String(), "Exiting...")
	})
}

func TestLoop_AddAndView(t *testing.T) {
	l, out := newTestLoop(t, 5, false, "2\n1\n Dune \nFrank Herbert\nfiction\n2\n7\n")

	run(t, l)

	got := out.String()
	assert.Contains(t, got, "No books available.")
	assert.Contains(t, got, "Enter Book Title : ")
	assert.Contains(t, got, "Enter Author Name: ")
	assert.Contains(t, got, availableLine+"\nEnter Category: ")
	assert.Contains(t, got, "Book added successfully!")
	assert.Contains(t, got, "\n--- All Books ---\n[1] Dune by Frank Herbert (FICTION)\n")
}

func TestLoop_AddRepromptsCategory(t *testing.T) {
	l, out := newTestLoop(t, 5, false, "1\nt\na\npoetry\n\nScience\n7\n")

	run(t, l)

	got := out.String()
	assert.Equal(t, 3, strings.Count(got, availableLine))
	assert.Equal(t, 2, strings.Count(got, "Invalid category, try again."))
	assert.Contains(t, got, "Book added successfully!")
}

func TestLoop_AddWhenFull(t *testing.T) {
	l, out := newTestLoop(t, 2, true, "1\n7\n")

	run(t, l)

	assert.Contains(t, out.String(), "Storage is full.")
	assert.NotContains(t, out.String(), "Enter Book Title")
}

func TestLoop_SearchByCategory(t *testing.T) {
	t.Run("matches", func(t *testing.T) {
		l, out := newTestLoop(t, 5, true, "3\nhistory\n7\n")
		run(t, l)
		assert.Contains(t, out.String(), "\nBooks in HISTORY:\n[3] The Guns of August by Barbara W. Tuchman (HISTORY)\n")
	})

	t.Run("none", func(t *testing.T) {
		l, out := newTestLoop(t, 5, false, "3\ncomics\n7\n")
		run(t, l)
		assert.Contains(t, out.String(), "None found.")
	})
}

func TestLoop_SearchByID(t *testing.T) {
	t.Run("empty store skips prompt", func(t *testing.T) {
		l, out := newTestLoop(t, 5, false, "4\n7\n")
		run(t, l)
		assert.Contains(t, out.String(), "No books available.")
		assert.NotContains(t, out.String(), "Enter Book ID")
	})

	t.Run("reprompts on bad number", func(t *testing.T) {
		l, out := newTestLoop(t, 5, true, "4\nx\n5\n7\n")
		run(t, l)
		assert.Equal(t, 1, strings.Count(out.String(), "Invalid number!"))
		assert.Contains(t, out.String(), "Found: [5] Watchmen by Alan Moore (COMICS)")
	})

	t.Run("not found", func(t *testing.T) {
		l, out := newTestLoop(t, 5, true, "4\n42\n7\n")
		run(t, l)
		assert.Contains(t, out.String(), "Book ID 42 not found.")
	})
}

func TestLoop_Delete(t *testing.T) {
	t.Run("empty store", func(t *testing.T) {
		l, out := newTestLoop(t, 5, false, "5\n7\n")
		run(t, l)
		assert.Contains(t, out.String(), "No books to delete.")
	})

	t.Run("removes and keeps order", func(t *testing.T) {
		l, out := newTestLoop(t, 5, true, "5\n3\n5\n3\n2\n7\n")
		run(t, l)

		got := out.String()
		assert.Contains(t, got, "Book deleted.")
		assert.Contains(t, got, "Book ID 3 not found.")
		listing := got[strings.LastIndex(got, "--- All Books ---"):]
		assert.Less(t, strings.Index(listing, "[2]"), strings.Index(listing, "[4]"))
		assert.Less(t, strings.Index(listing, "[4]"), strings.Index(listing, "[5]"))
		assert.NotContains(t, listing, "[3]")
	})
}

func TestLoop_Update(t *testing.T) {
	t.Run("empty store", func(t *testing.T) {
		l, out := newTestLoop(t, 5, false, "6\n7\n")
		run(t, l)
		assert.Contains(t, out.String(), "No books to update.")
	})

	t.Run("unknown id skips field prompts", func(t *testing.T) {
		l, out := newTestLoop(t, 5, true, "6\n9\n7\n")
		run(t, l)
		assert.Contains(t, out.String(), "Book ID 9 not found.")
		assert.NotContains(t, out.String(), "New Title")
	})

	t.Run("title and category", func(t *testing.T) {
		l, out := newTestLoop(t, 5, true, "6\n1\nThe Dispossessed\n\nY\nsCience\n7\n")
		run(t, l)
		assert.Contains(t, out.String(), "Updated: [1] The Dispossessed by Ursula K. Le Guin (SCIENCE)")
	})

	t.Run("blank keeps everything", func(t *testing.T) {
		l, out := newTestLoop(t, 5, true, "6\n2\n   \n\nn\n7\n")
		run(t, l)
		assert.Contains(t, out.String(), "Updated: [2] A Brief History of Time by Stephen Hawking (SCIENCE)")
		assert.NotContains(t, out.String(), "Enter new Category")
	})
}

func TestLoop_CapacityScenario(t *testing.T) {
	input := testutil.Input(
		"5", "3", // delete id 3
		"1", "Sandman", "Neil Gaiman", "comics", // new id 6
		"1", // full again
		"2",
		"7",
	)
	l, out := newTestLoop(t, 5, true, input)

	run(t, l)

	got := out.String()
	assert.Contains(t, got, "[6] Sandman by Neil Gaiman (COMICS)")
	assert.Contains(t, got, "Storage is full.")
	assert.NotContains(t, got, "[3] ")
}

func TestLoop_OversizedLines(t *testing.T) {
	long := strings.Repeat("x", 70000)

	t.Run("title", func(t *testing.T) {
		l, out := newTestLoop(t, 5, false, testutil.Input("1", long, "author", "fiction", "2", "7"))

		run(t, l)

		got := out.String()
		assert.Contains(t, got, "Book added successfully!")
		assert.Contains(t, got, "[1] "+long+" by author (FICTION)")
		assert.Contains(t, got, "Exiting...")
	})

	t.Run("selector", func(t *testing.T) {
		l, out := newTestLoop(t, 5, false, testutil.Input(long, "7"))

		run(t, l)

		assert.Contains(t, out.String(), "Error: Enter a number!")
		assert.Contains(t, out.String(), "Exiting...")
	})
}

func TestLoop_LastLineWithoutNewline(t *testing.T) {
	l, out := newTestLoop(t, 5, false, "9\r\n7")

	run(t, l)

	assert.Contains(t, out.String(), "Invalid choice!")
	assert.Contains(t, out.String(), "Exiting...")
}

type failingService struct {
	BookService
	err error
}

func (f failingService) List(context.Context) ([]entity.Book, error) { return nil, f.err }

func TestLoop_UnexpectedServiceError(t *testing.T) {
	svc := failingService{BookService: book.NewService(book.NewMemoryRepository(1), nil), err: errors.New("boom")}
	out := &bytes.Buffer{}
	l := NewLoop(svc, strings.NewReader("2\n7\n"), out, nil)

	run(t, l)

	assert.Contains(t, out.String(), "Error: boom")
}

type brokenReader struct{}

func (brokenReader) Read([]byte) (int, error) { return 0, errors.New("tty gone") }

func TestLoop_ReadError(t *testing.T) {
	svc := book.NewService(book.NewMemoryRepository(1), nil)
	l := NewLoop(svc, brokenReader{}, &bytes.Buffer{}, nil)

	err := l.Run(context.Background())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "tty gone")
	assert.Equal(t, StateTerminated, l.State())
}

func TestMenu(t *testing.T) {
	want := "\n1. Add Book\n2. View All Books\n3. Search Books by Category\n4. Search Book by ID\n5. Delete Book by ID\n6. Update Book by ID\n7. Exit"
	assert.Equal(t, want, menu())
	assert.False(t, Command(0).Valid())
	assert.True(t, CommandExit.Valid())
	assert.Equal(t, "Command(9)", Command(9).String())
}
