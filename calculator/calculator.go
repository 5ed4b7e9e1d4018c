package calculator

import (
	"math"

	log "github.com/sirupsen/logrus"

	"mucal/element"
	"mucal/model"
)

// 截面计算
// 输入能量单位 eV，拟合在 keV 域内求值

// 吸收壳层
type shell int

const (
	shellK shell = iota
	shellL
	shellM1
	shellN
)

func (s shell) String() string {
	switch s {
	case shellK:
		return "K"
	case shellL:
		return "L"
	case shellM1:
		return "M1"
	case shellN:
		return "N"
	}
	return "?"
}

type Calculator struct {
	table *element.Table
}

func NewCalculator(table *element.Table) *Calculator {
	return &Calculator{table: table}
}

func (c *Calculator) Table() *element.Table {
	return c.table
}

// mcmaster 经验拟合求值：sigma = exp(a0 + a1*x + a2*x^2 + a3*x^3)，x = ln(E/keV)
// 返回值单位 barns/atom
func mcmaster(energyEV float64, fit [4]float64) float64 {
	x := math.Log(energyEV / 1000.0)
	return math.Exp(fit[0] + x*(fit[1]+x*(fit[2]+x*fit[3])))
}

// 按吸收边从高到低选择壳层；边值为 0 表示该壳层不存在，视为能量低于此边
func selectShell(rec *element.Record, energyEV float64) shell {
	switch {
	case rec.Edges.K > 0 && energyEV >= rec.Edges.K:
		return shellK
	case rec.Edges.L3 > 0 && energyEV >= rec.Edges.L3:
		return shellL
	case rec.Edges.M > 0 && energyEV >= rec.Edges.M:
		return shellM1
	default:
		return shellN
	}
}

// Compute 对校验过的原子序数计算给定光子能量下的截面。
// 原子序数、原子量等与能量无关的字段总是填充；能量为负置 ErrBadEnergy，
// 能量为 0 表示仅查询元素常数，同样置 ErrBadEnergy 作为提示码。
func (c *Calculator) Compute(z int, energyEV float64) model.Result {
	rec := c.table.Lookup(z)
	if rec == nil {
		// 前置条件被破坏，Resolve 之后不应出现
		log.WithFields(log.Fields{"z": z}).Error("原子序数未经校验")
		return model.Result{Z: z, Err: model.ErrInternal}
	}

	res := model.Result{
		Z:        z,
		Symbol:   rec.Symbol,
		AtWeight: rec.AtWeight,
		Density:  rec.Density,
		KYield:   rec.KYield,
		LYield:   rec.LYield,
	}

	if energyEV < 0 {
		res.Err = model.ErrBadEnergy
		return res
	}
	if energyEV == 0 {
		res.Err = model.ErrBadEnergy
		return res
	}

	sh := selectShell(rec, energyEV)
	res.Shell = sh.String()

	var photo float64
	switch sh {
	case shellK:
		photo = mcmaster(energyEV, rec.KFit)
	case shellL:
		photo = mcmaster(energyEV, rec.LFit)
		// L 系子边之间按跳跃比修正：L1 之上不修正，
		// [L2, L1) 除以 L1 跳跃比，[L3, L2) 除以 L1、L2 跳跃比之积
		if energyEV < rec.Edges.L1 {
			if energyEV >= rec.Edges.L2 {
				photo /= rec.Jumps.L1
			} else {
				photo /= rec.Jumps.L1 * rec.Jumps.L2
			}
		}
	case shellM1:
		photo = mcmaster(energyEV, rec.MFit)
	case shellN:
		photo = mcmaster(energyEV, rec.NFit)
	default:
		// 校验过的输入不可达
		log.WithFields(log.Fields{"z": z, "energy": energyEV}).Error("壳层选择失败")
		res.Err = model.ErrInternal
		return res
	}

	res.Photo = photo
	res.Coherent = mcmaster(energyEV, rec.CohFit)
	res.Incoherent = mcmaster(energyEV, rec.IncFit)
	res.Total = res.Photo + res.Coherent + res.Incoherent
	res.Mu = res.Total * rec.Density / rec.Conversion
	return res
}

// Mucal 统一入口：先解析元素，再计算截面。
// verbose 只控制是否记录诊断日志，错误码总是随结果返回
func (c *Calculator) Mucal(symbol string, zHint int, energyEV float64, verbose bool) (model.Result, model.ErrCode) {
	z, code := c.table.Resolve(symbol, zHint)
	if code != model.NoError {
		if verbose {
			log.WithFields(log.Fields{
				"symbol": symbol,
				"z":      zHint,
			}).Warn(Message(code))
		}
		return model.Result{Err: code}, code
	}

	res := c.Compute(z, energyEV)
	if verbose && res.Err != model.NoError {
		log.WithFields(log.Fields{
			"z":      z,
			"energy": energyEV,
		}).Warn(Message(res.Err))
	}
	return res, res.Err
}

// Message 给出错误码对应的诊断文案，展示方式由调用方决定
func Message(code model.ErrCode) string {
	switch code {
	case model.NoError:
		return "计算完成"
	case model.ErrNoInput:
		return "请给出元素符号或原子序数"
	case model.ErrBadZ:
		return "原子序数不能为负"
	case model.ErrNoZMatch:
		return "元素符号与原子序数不一致"
	case model.ErrNoData:
		return "该元素无 McMaster 数据"
	case model.ErrBadName:
		return "未知的元素符号"
	case model.ErrBadEnergy:
		return "光子能量无效；能量为 0 时仅返回元素常数"
	case model.ErrInternal:
		return "内部错误"
	}
	return "未知错误"
}
