package calculator

import (
	"gopkg.in/ini.v1"
)

// 运行配置，缺省值在配置文件缺失时生效

type Config struct {
	Format  string // 输出格式 text / json / yaml
	UseKeV  bool   // 能量输入单位是否为 keV
	Verbose bool

	LogFile  string
	LogLevel string
}

func defaultConfig() Config {
	return Config{
		Format:   "text",
		LogLevel: "info",
	}
}

// LoadConfig 读取 ini 配置，文件缺失或无法解析时返回缺省配置
func LoadConfig(path string) Config {
	cfg := defaultConfig()
	file, err := ini.Load(path)
	if err != nil {
		return cfg
	}

	cfg.Format = file.Section("mucal").Key("format").MustString("text")
	cfg.UseKeV = file.Section("mucal").Key("kev").MustBool(false)
	cfg.Verbose = file.Section("mucal").Key("verbose").MustBool(false)
	cfg.LogFile = file.Section("log").Key("file").MustString("")
	cfg.LogLevel = file.Section("log").Key("level").MustString("info")
	return cfg
}
