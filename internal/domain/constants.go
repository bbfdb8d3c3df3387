package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Tab represents the active view over the shift collection
type Tab string

const (
	TabAvailable Tab = "available"
	TabBooked    Tab = "booked"
)

// IsValid returns true if the tab is one of the known values
func (t Tab) IsValid() bool {
	return t == TabAvailable || t == TabBooked
}

// Tabs список допустимых вкладок
// Используется в сообщениях об ошибках валидации
var Tabs = []Tab{TabAvailable, TabBooked}
