package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"mucal/calculator"
	"mucal/element"
	"mucal/model"
)

func sampleResult(t *testing.T) (*element.Record, model.Result) {
	t.Helper()
	c := calculator.NewCalculator(element.NewTable())
	res := c.Compute(26, 10000)
	require.Equal(t, model.NoError, res.Err)
	return c.Table().Lookup(26), res
}

func TestRenderJSONRoundTrip(t *testing.T) {
	rec, res := sampleResult(t)
	var buf bytes.Buffer
	require.NoError(t, render(&buf, rec, res, "json"))

	var got model.Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, res, got)
}

func TestRenderYAMLRoundTrip(t *testing.T) {
	rec, res := sampleResult(t)
	var buf bytes.Buffer
	require.NoError(t, render(&buf, rec, res, "yaml"))

	var got model.Result
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, res, got)
}

func TestRenderText(t *testing.T) {
	rec, res := sampleResult(t)
	var buf bytes.Buffer
	require.NoError(t, render(&buf, rec, res, "text"))

	out := buf.String()
	assert.Contains(t, out, "Fe (Z=26)")
	assert.Contains(t, out, "吸收边")
	assert.Contains(t, out, "总截面")
}

func TestRenderTextConstantsOnly(t *testing.T) {
	c := calculator.NewCalculator(element.NewTable())
	res := c.Compute(26, 0)
	require.Equal(t, model.ErrBadEnergy, res.Err)

	var buf bytes.Buffer
	require.NoError(t, render(&buf, c.Table().Lookup(26), res, "text"))

	out := buf.String()
	assert.Contains(t, out, "原子量")
	assert.False(t, strings.Contains(out, "总截面"), "常数查询不应输出截面")
}

func TestRenderUnknownFormat(t *testing.T) {
	rec, res := sampleResult(t)
	var buf bytes.Buffer
	assert.Error(t, render(&buf, rec, res, "xml"))
}
