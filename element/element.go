package element

import (
	"strings"

	"mucal/model"
)

// 元素数据表
// McMaster (1969) 经验拟合数据，进程启动时构建一次，构建后只读，可并发查询

const (
	// 数据表覆盖 Z = 1..ZMax，其中 7 个元素无数据
	ZMax = 94

	zTableSize = ZMax + 1
	fitTerms   = 4
)

// 无数据元素：Po At Fr Ra Ac Pa Np
var noDataZ = map[int]bool{
	84: true,
	85: true,
	87: true,
	88: true,
	89: true,
	91: true,
	93: true,
}

// NoData 报告 z 是否属于无数据元素
func NoData(z int) bool {
	return noDataZ[z]
}

// 吸收边能量，单位 eV；0 表示该 Z 不存在此壳层
type Edges struct {
	K  float64
	L1 float64
	L2 float64
	L3 float64
	M  float64
}

// L 系子边跳跃比，无量纲，均 >= 1
type JumpRatios struct {
	L1 float64
	L2 float64
	L3 float64
}

// 一个元素的全部数据
type Record struct {
	Z          int
	Symbol     string
	AtWeight   float64 // g/mol
	Density    float64 // g/cm^3
	Conversion float64 // barns/atom -> cm^2/g 除数
	Edges      Edges
	Jumps      JumpRatios

	// 光电吸收拟合系数，按壳层
	KFit [fitTerms]float64
	LFit [fitTerms]float64
	MFit [fitTerms]float64
	NFit [fitTerms]float64

	// 散射拟合系数
	CohFit [fitTerms]float64
	IncFit [fitTerms]float64

	// 荧光产额
	KYield float64
	LYield float64
}

type Table struct {
	records  [zTableSize]*Record
	bySymbol map[string]int
}

// NewTable 由静态数据表装配元素记录，无数据的 Z 对应条目为 nil
func NewTable() *Table {
	t := &Table{
		bySymbol: make(map[string]int, ZMax),
	}
	for z := 1; z <= ZMax; z++ {
		// 无数据元素仍注册符号，Resolve 才能区分 NoData 和 BadName
		if s := symbolTable[z]; s != "" {
			t.bySymbol[s] = z
		}
		if noDataZ[z] {
			continue
		}
		r := &Record{
			Z:          z,
			Symbol:     symbolTable[z],
			AtWeight:   atWeightTable[z],
			Density:    densityTable[z],
			Conversion: atWeightTable[z] * model.AmuGram,
			Edges: Edges{
				K:  kEdgeTable[z],
				L1: l1EdgeTable[z],
				L2: l2EdgeTable[z],
				L3: l3EdgeTable[z],
				M:  mEdgeTable[z],
			},
			Jumps: JumpRatios{
				L1: l1JumpTable[z],
				L2: l2JumpTable[z],
				L3: l3JumpTable[z],
			},
			KFit:   kFitTable[z],
			LFit:   lFitTable[z],
			MFit:   mFitTable[z],
			NFit:   nFitTable[z],
			CohFit: cohFitTable[z],
			IncFit: incFitTable[z],
			KYield: kYieldTable[z],
			LYield: lYieldTable[z],
		}
		t.records[z] = r
	}
	return t
}

// Lookup 按原子序数查询，无数据时返回 nil
func (t *Table) Lookup(z int) *Record {
	if z < 1 || z > ZMax {
		return nil
	}
	return t.records[z]
}

// SymbolToZ 按元素符号查询原子序数，大小写不敏感，未知符号返回 0
func (t *Table) SymbolToZ(symbol string) int {
	return t.bySymbol[canonical(symbol)]
}

// 符号规范化：首字母大写，其余小写
func canonical(symbol string) string {
	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		return ""
	}
	return strings.ToUpper(symbol[:1]) + strings.ToLower(symbol[1:])
}

// Resolve 把用户给出的元素符号和/或原子序数校验为可计算的原子序数。
// 规则按序判定，首个命中即返回：
//  1. 符号与 Z 均未给出 -> ErrNoInput
//  2. Z 为负 -> ErrBadZ
//  3. 给了符号则按符号查 Z；Z 同时给出且与查得值不一致 -> ErrNoZMatch
//  4. 未给符号时直接取 Z
//  5. 无数据元素 -> ErrNoData
//  6. Z 超出数据表范围 -> ErrNoData
//  7. 符号未知 -> ErrBadName
func (t *Table) Resolve(symbol string, zHint int) (int, model.ErrCode) {
	symbol = canonical(symbol)
	if symbol == "" && zHint == 0 {
		return 0, model.ErrNoInput
	}
	if zHint < 0 {
		return 0, model.ErrBadZ
	}

	z := zHint
	if symbol != "" {
		z = t.bySymbol[symbol]
		if z != 0 && zHint != 0 && zHint != z {
			return 0, model.ErrNoZMatch
		}
	}

	if noDataZ[z] {
		return 0, model.ErrNoData
	}
	if z > ZMax {
		return 0, model.ErrNoData
	}
	if z == 0 {
		return 0, model.ErrBadName
	}
	return z, model.NoError
}
