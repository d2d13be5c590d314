package testkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGOFSampleShape(t *testing.T) {
	sample := GOFSample()
	assert.Len(t, sample, 150)
	assert.Equal(t, "30", sample[0])
	assert.Equal(t, "35", sample[len(sample)-1])
}

func TestColumnsToTable(t *testing.T) {
	tbl := ColumnsToTable([]string{"x", "y"}, [][]string{{"1", "2", "3"}, {"a"}})
	assert.True(t, tbl.HasHeaders)
	assert.Equal(t, 3, tbl.NumDataRows())
	assert.Equal(t, []string{"3", ""}, tbl.Rows[3])
}

func TestNormalSampleDeterministic(t *testing.T) {
	a := NormalSample(7, 20, 10, 2)
	b := NormalSample(7, 20, 10, 2)
	assert.Equal(t, a, b)
	assert.Equal(t, []string{"1.5", "2"}, FormatFloats([]float64{1.5, 2}))
}
