package library

import "fmt"

// Status is the availability of a book.
type Status int

// Book statuses. The zero value is StatusInStock.
const (
	StatusInStock Status = iota // on the shelf
	StatusGiven                 // lent out
)

// statusLabels are the display and storage values, indexed by Status.
// They match the files written by the original catalog and must not change.
var statusLabels = [...]string{
	StatusInStock: "в наличии",
	StatusGiven:   "выдана",
}

// StatusChoice pairs a status with its 1-based position in menus.
type StatusChoice struct {
	Index  int
	Status Status
}

var statusChoices = func() []StatusChoice {
	choices := make([]StatusChoice, len(statusLabels))
	for i := range statusLabels {
		choices[i] = StatusChoice{Index: i + 1, Status: Status(i)}
	}
	return choices
}()

// String returns the label of the status.
func (s Status) String() string {
	if s.Valid() {
		return statusLabels[s]
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Valid reports whether s is one of the declared statuses.
func (s Status) Valid() bool {
	return s >= 0 && int(s) < len(statusLabels)
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid status %d", int(s))
	}
	return []byte(statusLabels[s]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Unknown labels decode
// to StatusInStock.
func (s *Status) UnmarshalText(text []byte) error {
	*s, _ = ParseStatus(string(text))
	return nil
}

// ParseStatus resolves a label. It returns StatusInStock and false when the
// label is not recognised.
func ParseStatus(label string) (Status, bool) {
	for i, l := range statusLabels {
		if l == label {
			return Status(i), true
		}
	}
	return StatusInStock, false
}

// Statuses lists every status with its display index, in declaration order.
func Statuses() []StatusChoice {
	out := make([]StatusChoice, len(statusChoices))
	copy(out, statusChoices)
	return out
}

// StatusByIndex returns the status shown at the given 1-based menu index.
func StatusByIndex(index int) (Status, bool) {
	if index < 1 || index > len(statusChoices) {
		return StatusInStock, false
	}
	return statusChoices[index-1].Status, true
}
