package model

// 共享类型与常量
// 能量单位 eV，截面单位 barns/atom

// 错误码，按校验顺序排列，首个命中即返回
type ErrCode int

const (
	NoError      ErrCode = iota
	ErrNoInput           // 元素符号和原子序数均未给出
	ErrBadZ              // 原子序数为负
	ErrNoZMatch          // 元素符号与原子序数不一致
	ErrNoData            // 该元素无数据，或 Z 超出数据表范围
	ErrBadName           // 未知的元素符号
	ErrBadEnergy         // 光子能量为负；能量为 0 表示仅查询元素常数，同样置此码
	ErrInternal          // 内部错误，校验过的输入不可达
)

func (e ErrCode) String() string {
	switch e {
	case NoError:
		return "no_error"
	case ErrNoInput:
		return "no_input"
	case ErrBadZ:
		return "bad_z"
	case ErrNoZMatch:
		return "no_z_match"
	case ErrNoData:
		return "no_data"
	case ErrBadName:
		return "bad_name"
	case ErrBadEnergy:
		return "bad_energy"
	case ErrInternal:
		return "internal"
	}
	return "unknown"
}

// barns/atom 换算到 cm^2/g 的除数：conversion = 原子量 * AmuGram
const AmuGram = 1.66042

// 一次计算的结果，每次调用新建，调用之间无共享状态
type Result struct {
	Z          int     `json:"z" yaml:"z"`
	Symbol     string  `json:"symbol" yaml:"symbol"`
	AtWeight   float64 `json:"at_weight" yaml:"at_weight"`     // g/mol
	Density    float64 `json:"density" yaml:"density"`         // g/cm^3
	Shell      string  `json:"shell" yaml:"shell"`             // 选中的吸收壳层 K/L/M1/N
	Photo      float64 `json:"photo" yaml:"photo"`             // 光电吸收截面 barns/atom
	Coherent   float64 `json:"coherent" yaml:"coherent"`       // 相干散射截面 barns/atom
	Incoherent float64 `json:"incoherent" yaml:"incoherent"`   // 非相干散射截面 barns/atom
	Total      float64 `json:"total" yaml:"total"`             // 总截面 barns/atom
	Mu         float64 `json:"mu" yaml:"mu"`                   // 密度归一吸收系数
	KYield     float64 `json:"k_yield" yaml:"k_yield"`         // K 系荧光产额
	LYield     float64 `json:"l_yield" yaml:"l_yield"`         // L 系荧光产额
	Err        ErrCode `json:"err" yaml:"err"`
}
