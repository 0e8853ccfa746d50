package plane_test

import (
	"math"
	"testing"

	"cargo/internal/core/domain/model/cargo"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/model/plane"
	"cargo/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var demoParticulars = plane.Particulars{MaxWeight: 10, MaxSpeed: 600}

func createPlane(
	t *testing.T,
	model plane.DecayModel,
	policy cargo.RemovalPolicy,
) (*plane.Plane, *[]cargo.Notice) {
	t.Helper()
	notices := &[]cargo.Notice{}
	notifier := cargo.NotifierFunc(func(n cargo.Notice) { *notices = append(*notices, n) })

	p, err := plane.NewPlane(kernel.NewUUID(), "Skylifter", demoParticulars, model, policy, notifier)
	require.NoError(t, err)
	require.NoError(t, p.Validate())
	return p, notices
}

func loadUnits(t *testing.T, p *plane.Plane, size int, tags ...string) {
	t.Helper()
	for _, tag := range tags {
		require.True(t, p.AddUnit(cargo.MustNewUnit(size, tag)))
	}
}

func TestNewPlane(t *testing.T) {
	t.Run("should create empty plane", func(t *testing.T) {
		id := kernel.NewUUID()

		p, err := plane.NewPlane(id, "Skylifter", demoParticulars, plane.PolynomialDecay, cargo.RemoveByStack, nil)

		require.NoError(t, err)
		assert.True(t, p.ID().IsEqual(id))
		assert.Equal(t, "Skylifter", p.Name())
		assert.Equal(t, demoParticulars, p.Particulars())
		assert.Equal(t, plane.PolynomialDecay, p.DecayModel())
		assert.Equal(t, cargo.RemoveByStack, p.Policy())
		assert.Equal(t, 0, p.TotalLoad())
		assert.Empty(t, p.Units())
	})

	t.Run("should aggregate validation errors", func(t *testing.T) {
		p, err := plane.NewPlane(kernel.UUID{}, "", plane.Particulars{}, plane.DecayModelUnknown, cargo.RemoveByStack, nil)

		require.Error(t, err)
		assert.Nil(t, p)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		errorStr := err.Error()
		assert.Contains(t, errorStr, "name")
		assert.Contains(t, errorStr, "decay model")
		assert.Contains(t, errorStr, "maxWeight")
		assert.Contains(t, errorStr, "maxSpeed")
	})

	t.Run("should reject non-finite max speed", func(t *testing.T) {
		for _, speed := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
			particulars := plane.Particulars{MaxWeight: 10, MaxSpeed: speed}

			p, err := plane.NewPlane(kernel.NewUUID(), "Skylifter", particulars,
				plane.InverseSquareRoot, cargo.RemoveByStack, nil)

			require.ErrorIs(t, err, errs.ErrValueIsInvalid, "speed %g", speed)
			assert.Contains(t, err.Error(), "maxSpeed")
			assert.Nil(t, p)
		}
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		require.ErrorIs(t, (&plane.Plane{}).Validate(), plane.ErrPlaneIsNotConstructed)
	})
}

func TestPlane_CurrentSpeed(t *testing.T) {
	t.Run("empty plane flies at max speed under both models", func(t *testing.T) {
		for _, model := range []plane.DecayModel{plane.InverseSquareRoot, plane.PolynomialDecay} {
			p, _ := createPlane(t, model, cargo.RemoveByReference)

			assert.InDelta(t, 600.0, p.CurrentSpeed(), 1e-9, model.String())
		}
	})

	t.Run("inverse square root at full weight", func(t *testing.T) {
		p, _ := createPlane(t, plane.InverseSquareRoot, cargo.RemoveByReference)
		loadUnits(t, p, 2, "FF", "CG", "PG", "IE", "FF")

		assert.Equal(t, 10, p.TotalLoad())
		assert.InDelta(t, 600/math.Sqrt2, p.CurrentSpeed(), 1e-9)
	})

	t.Run("polynomial decay at half and full weight", func(t *testing.T) {
		p, _ := createPlane(t, plane.PolynomialDecay, cargo.RemoveByReference)
		loadUnits(t, p, 1, "FF", "CG", "PG", "RM", "IE")

		assert.InDelta(t, 600*(1-0.6*math.Pow(0.5, 1.5)), p.CurrentSpeed(), 1e-9)

		loadUnits(t, p, 1, "FF", "CG", "PG", "RM", "IE")
		assert.InDelta(t, 240.0, p.CurrentSpeed(), 1e-9)
	})
}

func TestPlane_AddUnit(t *testing.T) {
	t.Run("should reject overflow and leave plane unchanged", func(t *testing.T) {
		p, notices := createPlane(t, plane.InverseSquareRoot, cargo.RemoveByReference)
		loadUnits(t, p, 2, "FF", "CG", "PG", "IE")
		loadUnits(t, p, 1, "RM")
		unitsBefore := p.Units()

		assert.False(t, p.AddUnit(cargo.MustNewUnit(2, "FF")))

		assert.Equal(t, unitsBefore, p.Units())
		assert.Equal(t, 9, p.TotalLoad())
		assert.Equal(t, []cargo.Notice{{Vessel: "Skylifter", Message: "Exceeded airplane capacity"}}, *notices)

		assert.True(t, p.AddUnit(cargo.MustNewUnit(1, "FF")))
		assert.Equal(t, 10, p.TotalLoad())
	})
}

func TestPlane_Removal(t *testing.T) {
	t.Run("by-reference removes the named unit", func(t *testing.T) {
		p, notices := createPlane(t, plane.InverseSquareRoot, cargo.RemoveByReference)
		loadUnits(t, p, 2, "FF", "CG")

		assert.True(t, p.RemoveUnit(cargo.MustNewUnit(2, "FF")))
		assert.False(t, p.RemoveUnit(cargo.MustNewUnit(2, "FF")))

		assert.Equal(t, "CG", p.Manifest())
		require.Len(t, *notices, 1)
		assert.Equal(t, cargo.NoticeUnitNotFound, (*notices)[0].Message)
	})

	t.Run("by-stack pops the last unit", func(t *testing.T) {
		p, notices := createPlane(t, plane.PolynomialDecay, cargo.RemoveByStack)
		loadUnits(t, p, 2, "FF", "CG")

		unit, ok := p.PopUnit()
		assert.True(t, ok)
		assert.Equal(t, cargo.MustNewUnit(2, "CG"), unit)

		_, ok = p.PopUnit()
		assert.True(t, ok)

		_, ok = p.PopUnit()
		assert.False(t, ok)
		require.Len(t, *notices, 1)
		assert.Equal(t, cargo.NoticeHoldIsEmpty, (*notices)[0].Message)
	})
}

func TestPlane_Report(t *testing.T) {
	t.Run("should render the demo load", func(t *testing.T) {
		p, _ := createPlane(t, plane.InverseSquareRoot, cargo.RemoveByReference)
		loadUnits(t, p, 2, "FF", "CG", "PG", "IE", "FF")

		expected := "Cargo: 10 TEU\n" +
			"Speed: 424.26 knots\n" +
			"Manifest:\n" +
			"FF | CG | PG | IE | FF\n"
		assert.Equal(t, expected, p.Report())
	})

	t.Run("should render empty manifest", func(t *testing.T) {
		p, _ := createPlane(t, plane.PolynomialDecay, cargo.RemoveByReference)

		expected := "Cargo: 0 TEU\n" +
			"Speed: 600.00 knots\n" +
			"Manifest:\n" +
			"(empty)\n"
		assert.Equal(t, expected, p.Report())
	})
}
