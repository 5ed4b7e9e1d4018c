package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"mucal/calculator"
	"mucal/element"
	"mucal/logger"
	"mucal/model"
)

// 命令行前端：把四个逻辑输入交给 calculator，展示结果
// 所有校验都在核心完成，这里只做编解码

var (
	flagSymbol  string
	flagZ       int
	flagEnergy  float64
	flagKeV     bool
	flagFormat  string
	flagVerbose bool
	flagConfig  string
)

var rootCmd = &cobra.Command{
	Use:          "mucal",
	Short:        "计算元素对给定光子能量的 X 射线吸收与散射截面",
	Long:         "按 McMaster (1969) 经验拟合表计算光电吸收、相干/非相干散射截面及密度归一吸收系数。能量为 0 时仅输出元素常数。",
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVarP(&flagSymbol, "symbol", "s", "", "元素符号，如 Fe")
	rootCmd.Flags().IntVarP(&flagZ, "znum", "z", 0, "原子序数")
	rootCmd.Flags().Float64VarP(&flagEnergy, "energy", "e", 0, "光子能量，eV（0 表示仅查询元素常数）")
	rootCmd.Flags().BoolVar(&flagKeV, "kev", false, "能量按 keV 解释")
	rootCmd.Flags().StringVarP(&flagFormat, "format", "f", "", "输出格式 text / json / yaml")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "失败时记录诊断信息")
	rootCmd.Flags().StringVarP(&flagConfig, "config", "c", "conf/config.ini", "配置文件路径")
}

func run(cmd *cobra.Command, args []string) error {
	cfg := calculator.LoadConfig(flagConfig)
	logger.Setup(cfg.LogFile, cfg.LogLevel)

	format := cfg.Format
	if flagFormat != "" {
		format = flagFormat
	}
	verbose := flagVerbose || cfg.Verbose

	energy := flagEnergy
	if flagKeV || cfg.UseKeV {
		energy *= 1000
	}

	c := calculator.NewCalculator(element.NewTable())
	res, code := c.Mucal(flagSymbol, flagZ, energy, verbose)
	if code != model.NoError && code != model.ErrBadEnergy {
		return fmt.Errorf("%s: %s", code, calculator.Message(code))
	}

	// BadEnergy 且能量为 0 是合法的常数查询，只有负能量按失败处理
	if code == model.ErrBadEnergy && energy < 0 {
		return fmt.Errorf("%s: %s", code, calculator.Message(code))
	}

	return render(cmd.OutOrStdout(), c.Table().Lookup(res.Z), res, format)
}

func render(w io.Writer, rec *element.Record, res model.Result, format string) error {
	switch format {
	case "", "text":
		renderText(w, rec, res)
		return nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case "yaml":
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(res); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("未知输出格式: %s", format)
}

func renderText(w io.Writer, rec *element.Record, res model.Result) {
	fmt.Fprintf(w, "%s (Z=%d)\n", res.Symbol, res.Z)
	fmt.Fprintf(w, "  原子量      %10.4f g/mol\n", res.AtWeight)
	fmt.Fprintf(w, "  密度        %10.4g g/cm^3\n", res.Density)
	if rec != nil {
		fmt.Fprintf(w, "  吸收边 (eV) K=%.1f L1=%.1f L2=%.1f L3=%.1f M=%.1f\n",
			rec.Edges.K, rec.Edges.L1, rec.Edges.L2, rec.Edges.L3, rec.Edges.M)
		fmt.Fprintf(w, "  跳跃比      L1=%.3f L2=%.3f L3=%.3f\n",
			rec.Jumps.L1, rec.Jumps.L2, rec.Jumps.L3)
	}
	fmt.Fprintf(w, "  荧光产额    K=%.4g L=%.4g\n", res.KYield, res.LYield)

	if res.Err == model.ErrBadEnergy {
		// 常数查询，无截面输出
		return
	}

	fmt.Fprintf(w, "  壳层        %s\n", res.Shell)
	fmt.Fprintf(w, "  光电吸收    %12.4f barns/atom\n", res.Photo)
	fmt.Fprintf(w, "  相干散射    %12.4f barns/atom\n", res.Coherent)
	fmt.Fprintf(w, "  非相干散射  %12.4f barns/atom\n", res.Incoherent)
	fmt.Fprintf(w, "  总截面      %12.4f barns/atom\n", res.Total)
	fmt.Fprintf(w, "  吸收系数    %12.6f\n", res.Mu)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
