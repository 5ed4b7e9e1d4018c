package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mucal/element"
	"mucal/model"
)

func newTestCalculator(t *testing.T) *Calculator {
	t.Helper()
	return NewCalculator(element.NewTable())
}

func TestComputeNegativeEnergy(t *testing.T) {
	c := newTestCalculator(t)
	res := c.Compute(26, -1.0)
	assert.Equal(t, model.ErrBadEnergy, res.Err)
	// 与能量无关的字段仍然填充
	assert.Equal(t, 26, res.Z)
	assert.Equal(t, "Fe", res.Symbol)
	assert.InDelta(t, 55.845, res.AtWeight, 1e-9)
	assert.Zero(t, res.Total)
	assert.Zero(t, res.Mu)
}

func TestComputeConstantsOnly(t *testing.T) {
	// 能量为 0 是合法的常数查询，错误码仅作提示
	c := newTestCalculator(t)
	res := c.Compute(26, 0)
	assert.Equal(t, model.ErrBadEnergy, res.Err)
	assert.InDelta(t, 55.845, res.AtWeight, 1e-9)
	assert.InDelta(t, 7.874, res.Density, 1e-9)
	assert.Greater(t, res.KYield, 0.0)
	assert.Zero(t, res.Photo)
	assert.Zero(t, res.Mu)
}

// 能量下行穿过 K、L3、M 边时壳层依次 K -> L -> M1 -> N，各转换恰好一次
func TestShellSelectionMonotonic(t *testing.T) {
	c := newTestCalculator(t)
	rec := c.table.Lookup(79)
	require.NotNil(t, rec)

	energies := []float64{
		rec.Edges.K + 1000, rec.Edges.K, rec.Edges.K - 1,
		rec.Edges.L3 + 1, rec.Edges.L3, rec.Edges.L3 - 1,
		rec.Edges.M + 1, rec.Edges.M, rec.Edges.M - 1,
		100, 10,
	}
	order := map[string]int{"K": 0, "L": 1, "M1": 2, "N": 3}
	seen := make(map[string]bool)
	prev := -1
	for _, e := range energies {
		res := c.Compute(79, e)
		require.Equal(t, model.NoError, res.Err, "E=%g", e)
		idx, ok := order[res.Shell]
		require.True(t, ok, "壳层 %q", res.Shell)
		assert.GreaterOrEqual(t, idx, prev, "E=%g 壳层不应回退", e)
		prev = idx
		seen[res.Shell] = true
	}
	for s := range order {
		assert.True(t, seen[s], "壳层 %s 未出现", s)
	}
}

// 低 Z 元素没有 L、M 边，K 边以下直接落到 N 壳层
func TestShellSelectionLowZ(t *testing.T) {
	c := newTestCalculator(t)
	rec := c.table.Lookup(6)
	require.NotNil(t, rec)
	assert.Zero(t, rec.Edges.L3)
	assert.Zero(t, rec.Edges.M)

	res := c.Compute(6, rec.Edges.K+10)
	assert.Equal(t, "K", res.Shell)
	res = c.Compute(6, rec.Edges.K-10)
	assert.Equal(t, "N", res.Shell)
}

// L 子边边界上的跳跃比修正：L1 及以上不修正，[L2, L1) 除以 L1 跳跃比，
// [L3, L2) 除以 L1、L2 跳跃比之积
func TestJumpRatioBoundaries(t *testing.T) {
	c := newTestCalculator(t)
	for _, z := range []int{50, 79, 92} {
		rec := c.table.Lookup(z)
		require.NotNil(t, rec, "Z=%d", z)

		atL1 := c.Compute(z, rec.Edges.L1)
		require.Equal(t, "L", atL1.Shell, "Z=%d", z)
		assert.InEpsilon(t, mcmaster(rec.Edges.L1, rec.LFit), atL1.Photo, 1e-12, "Z=%d L1 不应修正", z)

		atL2 := c.Compute(z, rec.Edges.L2)
		require.Equal(t, "L", atL2.Shell, "Z=%d", z)
		assert.InEpsilon(t, mcmaster(rec.Edges.L2, rec.LFit)/rec.Jumps.L1, atL2.Photo, 1e-12, "Z=%d", z)

		atL3 := c.Compute(z, rec.Edges.L3)
		require.Equal(t, "L", atL3.Shell, "Z=%d", z)
		assert.InEpsilon(t, mcmaster(rec.Edges.L3, rec.LFit)/(rec.Jumps.L1*rec.Jumps.L2), atL3.Photo, 1e-12, "Z=%d", z)

		// 刚好低于 L1 时已经进入修正区
		below := c.Compute(z, rec.Edges.L1-0.001)
		assert.Less(t, below.Photo, mcmaster(rec.Edges.L1-0.001, rec.LFit), "Z=%d", z)
	}
}

// 吸收系数恒等式：mu = (photo + coherent + incoherent) * density / conversion
func TestAbsorptionIdentity(t *testing.T) {
	c := newTestCalculator(t)
	cases := []struct {
		z  int
		ev float64
	}{
		{1, 100}, {6, 8000}, {13, 1000}, {26, 10000}, {26, 7112},
		{29, 20000}, {50, 4200}, {79, 13000}, {82, 10000}, {92, 120000},
	}
	for _, tc := range cases {
		res := c.Compute(tc.z, tc.ev)
		require.Equal(t, model.NoError, res.Err, "Z=%d E=%g", tc.z, tc.ev)
		rec := c.table.Lookup(tc.z)

		assert.InEpsilon(t, res.Photo+res.Coherent+res.Incoherent, res.Total, 1e-12, "Z=%d E=%g", tc.z, tc.ev)
		assert.InEpsilon(t, res.Total*rec.Density/rec.Conversion, res.Mu, 1e-12, "Z=%d E=%g", tc.z, tc.ev)
		assert.Greater(t, res.Photo, 0.0)
		assert.Greater(t, res.Coherent, 0.0)
		assert.Greater(t, res.Incoherent, 0.0)
	}
}

// 数据表标定点回归
func TestGoldenValues(t *testing.T) {
	c := newTestCalculator(t)
	golden := []struct {
		z     int
		ev    float64
		shell string
		photo float64
		coh   float64
		inc   float64
		total float64
		mu    float64
	}{
		{6, 8000.0, "K", 49.58678425, 2.29384911, 2.53123085, 54.41186421, 6.166019898},
		{13, 1000.0, "L", 40991.19965, 87.50076533, 2.289932383, 41080.99035, 2474.774339},
		{26, 10000.0, "K", 15632.29986, 44.0981413, 11.70000003, 15688.098, 1332.181668},
		{29, 20000.0, "K", 3596.01496, 22.56408711, 15.30197666, 3633.881024, 308.5833855},
		{50, 4200.0, "L", 216725.5797, 498.6752516, 16.99206865, 217241.247, 8056.648254},
		{79, 13000.0, "L", 52074.20671, 365.1660937, 38.06076759, 52477.43357, 3100.047038},
		{82, 10000.0, "M1", 41401.60679, 551.9114367, 36.89999939, 41990.41823, 1385.282522},
		{92, 120000.0, "K", 3982.503305, 16.245261, 56.09328722, 4054.841853, 194.4174788},
		{92, 16500.0, "M1", 17067.08988, 372.4238612, 46.73246618, 17486.2462, 838.4129452},
	}
	for _, g := range golden {
		res := c.Compute(g.z, g.ev)
		require.Equal(t, model.NoError, res.Err, "Z=%d E=%g", g.z, g.ev)
		assert.Equal(t, g.shell, res.Shell, "Z=%d E=%g", g.z, g.ev)
		assert.InEpsilon(t, g.photo, res.Photo, 1e-6, "Z=%d E=%g photo", g.z, g.ev)
		assert.InEpsilon(t, g.coh, res.Coherent, 1e-6, "Z=%d E=%g coherent", g.z, g.ev)
		assert.InEpsilon(t, g.inc, res.Incoherent, 1e-6, "Z=%d E=%g incoherent", g.z, g.ev)
		assert.InEpsilon(t, g.total, res.Total, 1e-6, "Z=%d E=%g total", g.z, g.ev)
		assert.InEpsilon(t, g.mu, res.Mu, 1e-6, "Z=%d E=%g mu", g.z, g.ev)
	}
}

func TestMucalResolveFailure(t *testing.T) {
	c := newTestCalculator(t)
	cases := []struct {
		symbol string
		zHint  int
		want   model.ErrCode
	}{
		{"", 0, model.ErrNoInput},
		{"", -3, model.ErrBadZ},
		{"Fe", 27, model.ErrNoZMatch},
		{"Po", 0, model.ErrNoData},
		{"Xx", 0, model.ErrBadName},
	}
	for _, tc := range cases {
		res, code := c.Mucal(tc.symbol, tc.zHint, 10000, false)
		assert.Equal(t, tc.want, code, "%s/%d", tc.symbol, tc.zHint)
		assert.Equal(t, tc.want, res.Err)
		// 解析失败时不进入计算，结果字段全部清零
		assert.Zero(t, res.Z)
		assert.Zero(t, res.AtWeight)
		assert.Zero(t, res.Total)
	}
}

func TestMucalSuccess(t *testing.T) {
	c := newTestCalculator(t)
	res, code := c.Mucal("Fe", 0, 10000, false)
	require.Equal(t, model.NoError, code)
	assert.Equal(t, 26, res.Z)
	assert.Equal(t, "K", res.Shell)
	assert.Greater(t, res.Mu, 0.0)

	byZ, code2 := c.Mucal("", 26, 10000, true)
	require.Equal(t, model.NoError, code2)
	assert.Equal(t, res, byZ)
}

func TestMucalConstantsOnly(t *testing.T) {
	c := newTestCalculator(t)
	res, code := c.Mucal("Fe", 0, 0, false)
	assert.Equal(t, model.ErrBadEnergy, code)
	assert.Equal(t, 26, res.Z)
	assert.InDelta(t, 55.845, res.AtWeight, 1e-9)
	assert.Zero(t, res.Total)
}

func TestMessageCovered(t *testing.T) {
	codes := []model.ErrCode{
		model.NoError, model.ErrNoInput, model.ErrBadZ, model.ErrNoZMatch,
		model.ErrNoData, model.ErrBadName, model.ErrBadEnergy, model.ErrInternal,
	}
	for _, code := range codes {
		assert.NotEmpty(t, Message(code), code.String())
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg := LoadConfig("testdata/no_such_file.ini")
	assert.Equal(t, "text", cfg.Format)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.UseKeV)
}
