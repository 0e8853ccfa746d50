package queries_test

import (
	"testing"

	"cargo/internal/adapters/out/memory"
	"cargo/internal/core/application/usecases/queries"
	"cargo/internal/core/domain/model/cargo"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/model/plane"
	"cargo/internal/core/domain/model/ship"
	"cargo/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedFleet(t *testing.T) (*memory.VesselRepository, *ship.Ship, *plane.Plane) {
	t.Helper()
	ctx := t.Context()

	s, err := ship.NewShip(kernel.NewUUID(), "Northern Star", ship.Particulars{
		MaxCapacity: 20, MaxSpeed: 25, MinDraft: 5, MaxDraft: 15,
	}, cargo.RemoveByReference, nil)
	require.NoError(t, err)
	for _, tag := range []string{"FF", "CG", "PG", "RM", "IE", "FF", "CG", "PG"} {
		require.True(t, s.AddUnit(cargo.MustNewUnit(1, tag)))
	}

	p, err := plane.NewPlane(kernel.NewUUID(), "Skylifter", plane.Particulars{MaxWeight: 10, MaxSpeed: 600},
		plane.InverseSquareRoot, cargo.RemoveByReference, nil)
	require.NoError(t, err)
	for _, tag := range []string{"FF", "CG", "PG", "IE", "FF"} {
		require.True(t, p.AddUnit(cargo.MustNewUnit(2, tag)))
	}

	repo := memory.NewVesselRepository()
	require.NoError(t, repo.Add(ctx, s))
	require.NoError(t, repo.Add(ctx, p))
	return repo, s, p
}

func TestNewGetVesselReportQuery(t *testing.T) {
	id := kernel.NewUUID()

	query, err := queries.NewGetVesselReportQuery(id)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.True(t, id.IsEqual(query.VesselID()))

	_, err = queries.NewGetVesselReportQuery(kernel.UUID{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	var zero queries.GetVesselReportQuery
	assert.ErrorIs(t, zero.Validate(), queries.ErrGetVesselReportQueryIsNotConstructed)
}

func TestGetVesselReportQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	repo, s, p := seedFleet(t)
	handler := queries.NewGetVesselReportQueryHandler(repo)

	t.Run("ship", func(t *testing.T) {
		query, err := queries.NewGetVesselReportQuery(s.ID())
		require.NoError(t, err)

		report, err := handler.Handle(ctx, query)

		require.NoError(t, err)
		assert.Equal(t, "Northern Star", report.Name)
		assert.Equal(t, 8, report.TotalLoad)
		assert.Equal(t,
			"Cargo: 8 TEU\nDraft: 9.00 meters\nSpeed: 20.00 knots\nComposition:\nRM PG\nPG CG\nCG FF\nFF IE\n",
			report.Report)
	})

	t.Run("plane", func(t *testing.T) {
		query, err := queries.NewGetVesselReportQuery(p.ID())
		require.NoError(t, err)

		report, err := handler.Handle(ctx, query)

		require.NoError(t, err)
		assert.True(t, p.ID().IsEqual(report.ID))
		assert.Equal(t, "Cargo: 10 TEU\nSpeed: 424.26 knots\nManifest:\nFF | CG | PG | IE | FF\n", report.Report)
	})

	t.Run("unknown vessel", func(t *testing.T) {
		query, err := queries.NewGetVesselReportQuery(kernel.NewUUID())
		require.NoError(t, err)

		_, err = handler.Handle(ctx, query)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("zero value query", func(t *testing.T) {
		_, err := handler.Handle(ctx, queries.GetVesselReportQuery{})

		require.ErrorIs(t, err, queries.ErrGetVesselReportQueryIsNotConstructed)
	})
}
