// Package menu implements the interactive text menu for the catalog.
//
// The menu owns every prompt and retry loop. It hands only validated
// values to the catalog and recovers from unknown ids by reporting them
// and returning to the main menu; any other catalog error ends the session.
package menu

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/agentstation/bookshelf/pkg/constants"
	"github.com/agentstation/bookshelf/pkg/errors"
	"github.com/agentstation/bookshelf/pkg/library"
	"github.com/agentstation/bookshelf/pkg/logging"
)

// Store is the part of the catalog the menu drives.
type Store interface {
	Books() []library.Book
	Add(title, author string, year int) (library.Book, error)
	Remove(id int) error
	Search(query string) []library.Book
	ChangeStatus(id int, status library.Status) (library.Book, error)
}

// Action is a numbered main menu entry.
type Action int

// Main menu entries, numbered as shown to the user.
const (
	ActionExit Action = iota
	ActionAdd
	ActionRemove
	ActionSearch
	ActionList
	ActionChangeStatus
)

var actionLabels = map[Action]string{
	ActionAdd:          "Add book",
	ActionRemove:       "Remove book",
	ActionSearch:       "Search",
	ActionList:         "List books",
	ActionChangeStatus: "Change status",
	ActionExit:         "Exit",
}

// String returns the menu label of the action.
func (a Action) String() string {
	if label, ok := actionLabels[a]; ok {
		return label
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// Menu is an interactive session over a Store.
type Menu struct {
	store  Store
	in     *bufio.Reader
	out    io.Writer
	logger *zerolog.Logger
	now    func() time.Time
}

// Option configures a Menu.
type Option func(*Menu)

// WithInput reads answers from r instead of standard input.
func WithInput(r io.Reader) Option {
	return func(m *Menu) {
		if r != nil {
			m.in = bufio.NewReader(r)
		}
	}
}

// WithOutput writes prompts and results to w instead of standard output.
func WithOutput(w io.Writer) Option {
	return func(m *Menu) {
		if w != nil {
			m.out = w
		}
	}
}

// WithLogger sets the logger for session diagnostics.
func WithLogger(logger *zerolog.Logger) Option {
	return func(m *Menu) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithClock sets the clock used for the upper bound of the year prompt.
func WithClock(now func() time.Time) Option {
	return func(m *Menu) {
		if now != nil {
			m.now = now
		}
	}
}

// New creates a menu over store.
func New(store Store, opts ...Option) *Menu {
	m := &Menu{
		store:  store,
		in:     bufio.NewReader(os.Stdin),
		out:    os.Stdout,
		logger: logging.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Run shows the main menu until the user exits, input ends or ctx is
// cancelled. Those three cases return nil.
func (m *Menu) Run(ctx context.Context) error {
	m.logger.Debug().Msg("Interactive menu started")
	defer m.logger.Debug().Msg("Interactive menu stopped")

	for {
		if ctx.Err() != nil {
			m.println()
			return nil
		}

		m.printMenu()
		answer, err := m.readLine("Choose an action: ")
		if err != nil {
			return ignoreEOF(err)
		}

		n, convErr := strconv.Atoi(answer)
		action := Action(n)
		if _, known := actionLabels[action]; convErr != nil || !known {
			m.printf("Unknown option %q, enter a number from 0 to %d.\n", answer, int(ActionChangeStatus))
			continue
		}
		if action == ActionExit {
			m.println("Goodbye.")
			return nil
		}

		m.logger.Debug().Stringer("action", action).Msg("Menu action selected")
		if err := m.dispatch(action); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			if errors.IsNotFound(err) {
				m.printf("%v\n", err)
				continue
			}
			return err
		}
	}
}

func (m *Menu) dispatch(action Action) error {
	switch action {
	case ActionAdd:
		return m.addBook()
	case ActionRemove:
		return m.removeBook()
	case ActionSearch:
		return m.searchBooks()
	case ActionList:
		m.List()
		return nil
	case ActionChangeStatus:
		return m.changeStatus()
	}
	return nil
}

func (m *Menu) printMenu() {
	m.println()
	for _, a := range []Action{ActionAdd, ActionRemove, ActionSearch, ActionList, ActionChangeStatus, ActionExit} {
		m.printf("%d. %s\n", int(a), a)
	}
}

func (m *Menu) addBook() error {
	title, err := m.readNonEmpty("Title: ")
	if err != nil {
		return err
	}
	author, err := m.readNonEmpty("Author: ")
	if err != nil {
		return err
	}
	year, err := m.readYear("Year: ")
	if err != nil {
		return err
	}

	book, err := m.store.Add(title, author, year)
	if err != nil {
		return err
	}
	m.printf("Book added with ID %d.\n", *book.ID)
	return nil
}

func (m *Menu) removeBook() error {
	id, err := m.readInt("Book ID to remove: ")
	if err != nil {
		return err
	}
	if err := m.store.Remove(id); err != nil {
		return err
	}
	m.printf("Book %d removed.\n", id)
	return nil
}

func (m *Menu) searchBooks() error {
	query, err := m.readLine("Search by title, author or year: ")
	if err != nil {
		return err
	}

	results := m.store.Search(query)
	if len(results) == 0 {
		m.println("No books found.")
		return nil
	}
	for _, b := range results {
		m.printBook(b)
	}
	return nil
}

func (m *Menu) changeStatus() error {
	id, err := m.readInt("Book ID: ")
	if err != nil {
		return err
	}
	status, err := m.ChooseStatus()
	if err != nil {
		return err
	}

	book, err := m.store.ChangeStatus(id, status)
	if err != nil {
		return err
	}
	m.printf("Book %d is now %s.\n", *book.ID, book.Status)
	return nil
}

// List prints every book in catalog order and returns their ids in the
// same order.
func (m *Menu) List() []int {
	books := m.store.Books()
	if len(books) == 0 {
		m.println("The library is empty.")
	}

	ids := make([]int, 0, len(books))
	for _, b := range books {
		m.printBook(b)
		ids = append(ids, b.IDValue())
	}
	return ids
}

// ChooseStatus lists the statuses by number and asks until a listed
// number is entered.
func (m *Menu) ChooseStatus() (library.Status, error) {
	for _, c := range library.Statuses() {
		m.printf("%d. %s\n", c.Index, c.Status)
	}
	for {
		n, err := m.readInt("New status: ")
		if err != nil {
			return library.StatusInStock, err
		}
		if status, ok := library.StatusByIndex(n); ok {
			return status, nil
		}
		m.printf("No status numbered %d.\n", n)
	}
}

func (m *Menu) printBook(b library.Book) {
	m.printf("ID: %d, Title: %s, Author: %s, Year: %d, Status: %s\n",
		b.IDValue(), b.Title, b.Author, b.Year, b.Status)
}

// readLine prompts once and returns the trimmed answer. A final line
// without a newline is still returned; io.EOF comes only once input is
// exhausted.
func (m *Menu) readLine(prompt string) (string, error) {
	m.printf("%s", prompt)
	line, err := m.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (m *Menu) readNonEmpty(prompt string) (string, error) {
	for {
		s, err := m.readLine(prompt)
		if err != nil {
			return "", err
		}
		if s != "" {
			return s, nil
		}
		m.println("A value is required.")
	}
}

func (m *Menu) readInt(prompt string) (int, error) {
	for {
		s, err := m.readLine(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(s)
		if err == nil {
			return n, nil
		}
		m.printf("%q is not a whole number.\n", s)
	}
}

func (m *Menu) readYear(prompt string) (int, error) {
	maxYear := m.now().Year()
	for {
		year, err := m.readInt(prompt)
		if err != nil {
			return 0, err
		}
		if year >= constants.MinYear && year <= maxYear {
			return year, nil
		}
		m.printf("Year must be between %d and %d.\n", constants.MinYear, maxYear)
	}
}

func (m *Menu) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(m.out, format, args...)
}

func (m *Menu) println(args ...any) {
	_, _ = fmt.Fprintln(m.out, args...)
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
