package builder_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/airnet/builder"
	"github.com/katalvlaran/airnet/core"
)

func TestDefaultNetwork(t *testing.T) {
	g := builder.DefaultNetwork()
	assert.Equal(t, 7, g.CityCount())
	// 5 direct legs + 6 two-way routes
	assert.Equal(t, 17, g.LegCount())

	ba, err := g.Lookup("buenos aires")
	require.NoError(t, err)
	legs := g.Legs(ba)
	require.Len(t, legs, 5)
	for _, l := range legs {
		assert.True(t, l.Direct, "hub legs are direct: %s", l)
	}
	cba, err := g.Lookup("cordoba")
	require.NoError(t, err)
	for _, l := range g.Legs(cba) {
		assert.False(t, l.Direct, "routes are non-direct: %s", l)
	}
	assert.False(t, g.HasLeg(core.NewCity("Córdoba"), ba), "hub legs are one-way")
}

func TestBuildNetwork_NilConstructor(t *testing.T) {
	_, err := builder.BuildNetwork(nil, builder.Path(2), nil)
	require.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestSynthetic(t *testing.T) {
	tests := []struct {
		name         string
		ctor         builder.Constructor
		cities, legs int
	}{
		{"Star(4)", builder.Star(4), 4, 3},
		{"Path(4)", builder.Path(4), 4, 6},
		{"Complete(4)", builder.Complete(4), 4, 12},
		{"Complete(1)", builder.Complete(1), 1, 0},
		{"RandomSparse_p0(5)", builder.RandomSparse(5, 0), 5, 0},
		{"RandomSparse_p1(5)", builder.RandomSparse(5, 1), 5, 20},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildNetwork(nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.cities, g.CityCount())
			assert.Equal(t, tc.legs, g.LegCount())
		})
	}
}

func TestSynthetic_Validation(t *testing.T) {
	_, err := builder.BuildNetwork(nil, builder.Star(1))
	assert.ErrorIs(t, err, builder.ErrTooFewCities)
	_, err = builder.BuildNetwork(nil, builder.Path(1))
	assert.ErrorIs(t, err, builder.ErrTooFewCities)
	_, err = builder.BuildNetwork(nil, builder.RandomSparse(0, 0.5))
	assert.ErrorIs(t, err, builder.ErrTooFewCities)
	_, err = builder.BuildNetwork(nil, builder.RandomSparse(3, 1.5))
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)
	_, err = builder.BuildNetwork(nil, builder.RandomSparse(3, 0.5))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)
}

func TestRandomSparse_Reproducible(t *testing.T) {
	opts := []builder.BuilderOption{
		builder.WithSeed(42),
		builder.WithWeightFn(builder.IntegerWeights),
	}
	g1, err := builder.BuildNetwork(opts, builder.RandomSparse(8, 0.3))
	require.NoError(t, err)
	opts[0] = builder.WithSeed(42)
	g2, err := builder.BuildNetwork(opts, builder.RandomSparse(8, 0.3))
	require.NoError(t, err)

	require.Equal(t, g1.LegCount(), g2.LegCount())
	for _, c := range g1.Cities() {
		assert.Equal(t, g1.Legs(c), g2.Legs(c))
	}
}

func TestOptionsPanicOnNil(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithCityNames(nil) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
}

func TestWithCityNames(t *testing.T) {
	g, err := builder.BuildNetwork(
		[]builder.BuilderOption{builder.WithCityNames(func(i int) string { return string(rune('A' + i)) })},
		builder.Path(3),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, g.CityNames())
}

const networkYAML = `
cities: [Buenos Aires, Rosario]
legs:
  - {from: Buenos Aires, to: Rosario, time: 0.7, price: 60000, direct: true}
routes:
  - {a: Rosario, b: Córdoba, time: 0.9, price: 50000}
`

func TestLoadNetwork(t *testing.T) {
	g, err := builder.LoadNetwork(strings.NewReader(networkYAML))
	require.NoError(t, err)
	assert.Equal(t, []string{"Buenos Aires", "Córdoba", "Rosario"}, g.CityNames())
	assert.Equal(t, 3, g.LegCount())

	ba, _ := g.Lookup("Buenos Aires")
	require.Len(t, g.Legs(ba), 1)
	assert.Equal(t, core.Leg{From: ba, To: core.NewCity("Rosario"), Time: 0.7, Price: 60000, Direct: true}, g.Legs(ba)[0])
}

func TestLoadNetwork_Errors(t *testing.T) {
	for name, doc := range map[string]string{
		"unknown field":   "cities: [A]\nairports: [B]\n",
		"negative weight": "legs:\n  - {from: A, to: B, time: -1, price: 1}\n",
		"blank city":      "cities: ['  ']\n",
		"not yaml":        "cities: [A\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := builder.LoadNetwork(strings.NewReader(doc))
			require.Error(t, err)
			assert.True(t, errors.Is(err, builder.ErrBadNetworkSpec), "got %v", err)
		})
	}

	g, err := builder.LoadNetwork(strings.NewReader(""))
	require.NoError(t, err, "empty document is an empty network")
	assert.Zero(t, g.CityCount())
}
