package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"rfmatch/maths"
	"rfmatch/matching"
	"rfmatch/unit"
)

// config 合并配置文件、环境变量与命令行参数后的取值
type config struct {
	Z0       float64
	Freq     float64
	FreqUnit unit.Unit
	CapUnit  unit.Unit
	IndUnit  unit.Unit
	Points   int
	Imp      maths.Representation
	ZScale   matching.ZScale
	Q        float64
	QNet     float64
	Verbose  bool
	Out      string
}

// app 命令共享的状态
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     config
	undo    func()
}

func persistentFlags(fs *pflag.FlagSet) {
	fs.Float64("z0", 50, "参考阻抗(Ω)")
	fs.Float64("freq", 1, "频率")
	fs.String("freq-unit", "GHz", "频率单位")
	fs.String("cap-unit", "pF", "电容单位")
	fs.String("ind-unit", "nH", "电感单位")
	fs.Int("points", 10, "每段轨迹采样数")
	fs.String("imp", string(maths.ZRI), "阻抗表示 zri|yri|gma|gri|rc")
	fs.String("z-scale", string(matching.Single), "端口模式 se|diff")
	fs.Float64("q", 1, "L 节并联元件的 Q")
	fs.Float64("q-net", 5, "Pi/Tee 网络的 Q")
	fs.BoolP("verbose", "v", false, "输出调试日志")
	fs.StringP("out", "o", "", "输出文件")
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}
	root := &cobra.Command{
		Use:           "rfmatch",
		Short:         "圆图轨迹与阻抗匹配网络计算",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.configure(cmd); err != nil {
				return err
			}
			return a.logger()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = zap.L().Sync()
			if a.undo != nil {
				a.undo()
			}
		},
	}
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "YAML 配置文件")
	persistentFlags(root.PersistentFlags())

	root.AddCommand(
		a.matchCmd(),
		a.arcCmd(),
		a.conjCmd(),
		a.convertCmd(),
		a.renderCmd(),
	)
	return root
}

// configure 读取配置，优先级：参数 > 环境变量 > 配置文件 > 缺省值
func (a *app) configure(cmd *cobra.Command) error {
	v := a.v
	v.SetEnvPrefix("RFMATCH")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	if a.cfgFile != "" {
		v.SetConfigFile(a.cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("config %s: %w", a.cfgFile, err)
		}
	}

	units := map[string]*unit.Unit{
		"freq-unit": &a.cfg.FreqUnit,
		"cap-unit":  &a.cfg.CapUnit,
		"ind-unit":  &a.cfg.IndUnit,
	}
	for key, dst := range units {
		u, ok := unit.Lookup(v.GetString(key))
		if !ok {
			return fmt.Errorf("%s: unit %q not recognized", key, v.GetString(key))
		}
		*dst = u
	}
	a.cfg.Z0 = v.GetFloat64("z0")
	a.cfg.Freq = v.GetFloat64("freq")
	a.cfg.Points = v.GetInt("points")
	a.cfg.Imp = maths.Representation(v.GetString("imp"))
	a.cfg.ZScale = matching.ZScale(v.GetString("z-scale"))
	a.cfg.Q = v.GetFloat64("q")
	a.cfg.QNet = v.GetFloat64("q-net")
	a.cfg.Verbose = v.GetBool("verbose")
	a.cfg.Out = v.GetString("out")
	return nil
}

func (a *app) logger() error {
	var (
		logger *zap.Logger
		err    error
	)
	if a.cfg.Verbose {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return err
	}
	a.undo = zap.ReplaceGlobals(logger)
	return nil
}

func (a *app) frequency() unit.Frequency {
	return unit.NewFrequency(a.cfg.Freq, a.cfg.FreqUnit)
}
