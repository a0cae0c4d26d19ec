package errors_test

import (
	"fmt"

	"github.com/agentstation/bookshelf/pkg/errors"
)

// Example demonstrates basic error creation and checking.
func Example() {
	err := errors.BookNotFound(42)

	if errors.IsNotFound(err) {
		fmt.Println("Book not found")
	}

	// Output: Book not found
}

// Example_parseError shows how load failures are classified.
func Example_parseError() {
	err := errors.NewParseError("json", "library.json", "record 2: missing field status", nil)

	switch {
	case errors.IsDecode(err):
		fmt.Println("catalog file is corrupt")
	case errors.IsIO(err):
		fmt.Println("catalog file is unreadable")
	}

	// Output: catalog file is corrupt
}
