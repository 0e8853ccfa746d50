package queries

import (
	"errors"

	"cargo/internal/pkg/guard"
)

var (
	ErrGetFleetReportQueryIsNotConstructed = errors.New(
		"GetFleetReportQuery must be created via NewGetFleetReportQuery constructor",
	)
)

// GetFleetReportQuery retrieves the reports of every registered vessel in
// registration order.
type GetFleetReportQuery struct {
	guard guard.ConstructorGuard
}

func NewGetFleetReportQuery() GetFleetReportQuery {
	return GetFleetReportQuery{guard: guard.NewConstructorGuard()}
}

func (q GetFleetReportQuery) Validate() error {
	return q.guard.Validate(ErrGetFleetReportQueryIsNotConstructed)
}
