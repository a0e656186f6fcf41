package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterSamplesOnlySelectedStreams(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, "x", SelectContinuous)

	require.NoError(t, w.Sample(SelectContinuous, 1.0, 2.5))
	require.NoError(t, w.Sample(SelectQuantized, 1.0, 9.9)) // not selected, no-op
	require.NoError(t, w.Flush())

	assert.Equal(t, "1\t2.5\n", buf.String())
}

func TestSelectHasCombinesMasks(t *testing.T) {
	sel := SelectContinuous | SelectQuantized
	assert.True(t, sel.Has(SelectContinuous))
	assert.True(t, sel.Has(SelectQuantized))
	assert.False(t, sel.Has(SelectRequant))
}
