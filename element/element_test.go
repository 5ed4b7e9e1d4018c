package element

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mucal/model"
)

func TestResolveAllElements(t *testing.T) {
	table := NewTable()
	for z := 1; z <= ZMax; z++ {
		if noDataZ[z] {
			continue
		}
		rec := table.Lookup(z)
		require.NotNil(t, rec, "Z=%d", z)

		got, code := table.Resolve(rec.Symbol, z)
		assert.Equal(t, model.NoError, code, "Z=%d", z)
		assert.Equal(t, z, got, "Z=%d", z)
	}
}

func TestResolveRules(t *testing.T) {
	table := NewTable()
	cases := []struct {
		name   string
		symbol string
		zHint  int
		wantZ  int
		want   model.ErrCode
	}{
		{"无输入", "", 0, 0, model.ErrNoInput},
		{"负原子序数", "", -5, 0, model.ErrBadZ},
		{"仅符号", "Fe", 0, 26, model.NoError},
		{"符号大小写不敏感", "fe", 0, 26, model.NoError},
		{"符号带空白", " Cu ", 0, 29, model.NoError},
		{"符号与序数一致", "Fe", 26, 26, model.NoError},
		{"符号与序数冲突", "Fe", 27, 0, model.ErrNoZMatch},
		{"仅序数", "", 26, 26, model.NoError},
		{"无数据符号", "Po", 0, 0, model.ErrNoData},
		{"无数据序数", "", 84, 0, model.ErrNoData},
		{"序数超界", "", 95, 0, model.ErrNoData},
		{"未知符号", "Xx", 0, 0, model.ErrBadName},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			z, code := table.Resolve(tc.symbol, tc.zHint)
			assert.Equal(t, tc.want, code)
			assert.Equal(t, tc.wantZ, z)
		})
	}
}

func TestLookupExcluded(t *testing.T) {
	table := NewTable()
	for z := range noDataZ {
		assert.Nil(t, table.Lookup(z), "Z=%d", z)
		// 符号仍可解析到 Z，但 Resolve 报 NoData
		assert.Equal(t, z, table.SymbolToZ(symbolTable[z]), "Z=%d", z)
	}
	assert.Nil(t, table.Lookup(0))
	assert.Nil(t, table.Lookup(ZMax+1))
}

func TestTableIntegrity(t *testing.T) {
	table := NewTable()
	for z := 1; z <= ZMax; z++ {
		if noDataZ[z] {
			continue
		}
		rec := table.Lookup(z)
		require.NotNil(t, rec, "Z=%d", z)

		assert.Equal(t, z, rec.Z)
		assert.NotEmpty(t, rec.Symbol)
		assert.Equal(t, z, table.SymbolToZ(rec.Symbol), "符号查询应回到 Z=%d", z)

		assert.Greater(t, rec.AtWeight, 0.0, "Z=%d", z)
		assert.Greater(t, rec.Density, 0.0, "Z=%d", z)
		assert.InEpsilon(t, rec.AtWeight*model.AmuGram, rec.Conversion, 1e-12, "Z=%d", z)

		// 非零吸收边严格递减：K > L1 > L2 > L3 > M
		edges := []float64{rec.Edges.K, rec.Edges.L1, rec.Edges.L2, rec.Edges.L3, rec.Edges.M}
		prev := 0.0
		first := true
		for i, e := range edges {
			if e == 0 {
				continue
			}
			if !first {
				assert.Less(t, e, prev, "Z=%d 边 %d 应低于上一条边", z, i)
			}
			prev = e
			first = false
		}
		assert.Greater(t, rec.Edges.K, 0.0, "Z=%d 必须有 K 边", z)

		assert.GreaterOrEqual(t, rec.Jumps.L1, 1.0, "Z=%d", z)
		assert.GreaterOrEqual(t, rec.Jumps.L2, 1.0, "Z=%d", z)
		assert.GreaterOrEqual(t, rec.Jumps.L3, 1.0, "Z=%d", z)

		assert.GreaterOrEqual(t, rec.KYield, 0.0, "Z=%d", z)
		assert.Less(t, rec.KYield, 1.0, "Z=%d", z)
	}
}

func TestSymbolUnique(t *testing.T) {
	seen := make(map[string]int)
	for z := 1; z <= ZMax; z++ {
		s := symbolTable[z]
		require.NotEmpty(t, s, "Z=%d", z)
		_, dup := seen[s]
		require.False(t, dup, "符号 %s 重复", s)
		seen[s] = z
	}
}

func TestCanonical(t *testing.T) {
	assert.Equal(t, "Fe", canonical("FE"))
	assert.Equal(t, "Fe", canonical("fe"))
	assert.Equal(t, "H", canonical(" h "))
	assert.Equal(t, "", canonical(""))
}
