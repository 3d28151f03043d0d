package clifford_test

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// TestDict_Golden pins the serialized dict of the Bell-pair element
// against a checked-in fixture, so any drift in label ordering, sign
// rendering, or YAML field names shows up as a diff.
func TestDict_Golden(t *testing.T) {
	bell := mustFold(t, 2, g("h", 0), g("cx", 0, 1))

	raw, err := yaml.Marshal(bell.ToDict())
	require.NoError(t, err)

	gld := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	gld.Assert(t, "bell_dict", raw)
}
