package netlist

import (
	"strings"
	"testing"

	"github.com/katalvlaran/ssta/rv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTokenize covers comment stripping, drop and keep separators.
func TestTokenize(t *testing.T) {
	cases := []struct {
		name string
		line string
		keep string
		want []string
	}{
		{"plain", "inv 0 y gauss (15.0, 2.0)", "(),", []string{"inv", "0", "y", "gauss", "(", "15.0", ",", "2.0", ")"}},
		{"comment only", "# nothing here", "(),", nil},
		{"trailing comment", "inv 0 y const (3) # slow corner", "(),", []string{"inv", "0", "y", "const", "(", "3", ")"}},
		{"tabs and cr", "a\tb\r", "(),", []string{"a", "b"}},
		{"empty", "", "(),", nil},
		{"tight punctuation", "y=nand(a,b)", "(),=", []string{"y", "=", "nand", "(", "a", ",", "b", ")"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tokenize(tc.line, tc.keep, " \t\r"))
		})
	}
}

// TestParseDlib_Gauss installs a gaussian arc with variance = sigma².
func TestParseDlib_Gauss(t *testing.T) {
	s := rv.NewSpace()
	gates, err := ParseDlib(strings.NewReader("inv 0 y gauss (15.0, 2.0)\n"), "lib.dlib", s)
	require.NoError(t, err)
	require.Contains(t, gates, "inv")

	d, err := gates["inv"].Delay("0", "y")
	require.NoError(t, err)

	m, err := s.Mean(d)
	require.NoError(t, err)
	assert.Equal(t, 15.0, m)

	v, err := s.Variance(d)
	require.NoError(t, err)
	assert.Equal(t, 4.0, v, "variance = sigma^2")
}

// TestParseDlib_Const: const delays carry the variance floor.
func TestParseDlib_Const(t *testing.T) {
	s := rv.NewSpace()
	gates, err := ParseDlib(strings.NewReader("buf 0 y const (3.0)\n"), "lib.dlib", s)
	require.NoError(t, err)

	d, err := gates["buf"].Delay("0", "y")
	require.NoError(t, err)
	v, err := s.Variance(d)
	require.NoError(t, err)
	assert.Equal(t, rv.MinVariance, v)
}

// TestParseDlib_MultiArc: repeated gate names accumulate arcs.
func TestParseDlib_MultiArc(t *testing.T) {
	src := `
# two-input nand plus a dff
nand 0 y gauss (24, 3)
nand 1 y gauss (20, 3)
dff  ck q gauss (30, 3.5)
dff  d  q const (0)
`
	s := rv.NewSpace()
	gates, err := ParseDlib(strings.NewReader(src), "lib.dlib", s)
	require.NoError(t, err)

	require.Len(t, gates, 2)
	assert.Len(t, gates["nand"].Arcs(), 2)
	assert.Len(t, gates["dff"].Arcs(), 2)

	_, err = gates["dff"].Delay("ck", "q")
	assert.NoError(t, err)
}

// TestParseDlib_Errors: positioned parse failures.
func TestParseDlib_Errors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		line int
	}{
		{"bad distribution", "inv 0 y uniform (1, 2)\n", 1},
		{"negative mean", "inv 0 y gauss (-1, 2)\n", 1},
		{"negative sigma", "inv 0 y gauss (1, -2)\n", 1},
		{"missing paren", "inv 0 y gauss 1, 2)\n", 1},
		{"trailing garbage", "inv 0 y gauss (1, 2) extra\n", 1},
		{"truncated", "inv 0 y gauss (1,\n", 1},
		{"second line", "inv 0 y gauss (1, 2)\nbuf 0 y gauss (oops, 1)\n", 2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := rv.NewSpace()
			_, err := ParseDlib(strings.NewReader(tc.src), "lib.dlib", s)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrParse)

			var pe *ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, "lib.dlib", pe.File)
			assert.Equal(t, tc.line, pe.Line)
		})
	}
}

// TestLoadDlib_MissingFile maps to ErrFile with the path in the message.
func TestLoadDlib_MissingFile(t *testing.T) {
	s := rv.NewSpace()
	_, err := LoadDlib("no/such/file.dlib", s)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFile)
	assert.Contains(t, err.Error(), "no/such/file.dlib")
}
