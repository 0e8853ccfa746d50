package cargo

import "errors"

// Operator-facing notice texts.
const (
	NoticeUnitNotFound = "Container not found"
	NoticeHoldIsEmpty  = "No containers to remove"
)

// Notice is emitted when a vessel rejects a load or unload.
type Notice struct {
	Vessel  string
	Message string
}

// Notifier receives notices. Implementations decide where they go
// (a log, a console); the domain only produces them.
type Notifier interface {
	Notify(notice Notice)
}

// NotifierFunc adapts a plain function to Notifier.
type NotifierFunc func(notice Notice)

func (f NotifierFunc) Notify(notice Notice) {
	f(notice)
}

// DiscardNotifier drops every notice.
var DiscardNotifier Notifier = NotifierFunc(func(Notice) {})

// NoticeFor maps a Hold error to the notice text. overflow is the
// vessel-specific text for ErrCapacityExceeded.
func NoticeFor(err error, overflow string) string {
	switch {
	case errors.Is(err, ErrCapacityExceeded):
		return overflow
	case errors.Is(err, ErrUnitNotFound):
		return NoticeUnitNotFound
	case errors.Is(err, ErrHoldIsEmpty):
		return NoticeHoldIsEmpty
	default:
		return err.Error()
	}
}
