// Package notice provides cargo.Notifier adapters that route vessel notices
// to a structured log or to a plain text stream.
package notice

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"cargo/internal/core/domain/model/cargo"
)

// SlogNotifier logs every notice at warn level.
type SlogNotifier struct {
	logger *slog.Logger
}

var _ cargo.Notifier = (*SlogNotifier)(nil)

// NewSlogNotifier creates a notifier that logs through logger, tagged with
// component=cargo_notice.
func NewSlogNotifier(logger *slog.Logger) *SlogNotifier {
	return &SlogNotifier{
		logger: logger.With("component", "cargo_notice"),
	}
}

func (n *SlogNotifier) Notify(notice cargo.Notice) {
	n.logger.WarnContext(context.Background(), notice.Message, "vessel", notice.Vessel)
}

// WriterNotifier writes each notice message as one line, the way an operator
// console shows it.
type WriterNotifier struct {
	w io.Writer
}

var _ cargo.Notifier = (*WriterNotifier)(nil)

func NewWriterNotifier(w io.Writer) *WriterNotifier {
	return &WriterNotifier{w: w}
}

func (n *WriterNotifier) Notify(notice cargo.Notice) {
	_, _ = fmt.Fprintln(n.w, notice.Message)
}
