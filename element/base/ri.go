package base

import (
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"rfmatch/element"
	"rfmatch/maths"
	"rfmatch/unit"
)

var (
	ErrMissingValue = errors.New("missing element value") // 参数不足
	ErrEmptyLUT     = errors.New("empty impedance table") // 查找表为空
)

// LUT 频率-阻抗查找表，每行 [f(Hz), re(Ω), im(Ω)]，频率升序
type LUT [][3]float64

// At 查表
// 低于首行取首行，高于末行取末行，其余线性插值
func (lut LUT) At(freq float64) (complex128, error) {
	if len(lut) == 0 {
		return 0, ErrEmptyLUT
	}
	i := sort.Search(len(lut), func(i int) bool { return lut[i][0] > freq })
	switch i {
	case 0:
		return complex(lut[0][1], lut[0][2]), nil
	case len(lut):
		last := lut[len(lut)-1]
		return complex(last[1], last[2]), nil
	}
	lo, hi := lut[i-1], lut[i]
	frac := (freq - lo[0]) / (hi[0] - lo[0])
	return complex(maths.Lerp(lo[1], hi[1], frac), maths.Lerp(lo[2], hi[2], frac)), nil
}

// riValueNum 各标签需要的参数个数
var riValueNum = map[string]int{
	"bb": 2, "sr": 1, "pr": 1,
	"sc": 2, "pc": 2, "si": 2, "pi": 2,
	"xfmr": 4, "rlc": 3, "rl": 2, "rc": 2,
	"tl": 1, "so": 1, "ss": 1, "customZ": 0,
}

// CalcRI 按元件标签计算归一化阻抗 (re, im) 与物理长度(m)
// freq 为基本单位频率(Hz)，units 不足时按基本单位处理
func CalcRI(vals []float64, units []unit.Unit, lut LUT, tag string, freq, z0 float64, diff, verbose bool) (ret [3]float64, err error) {
	n, ok := riValueNum[tag]
	if !ok {
		return ret, fmt.Errorf("%w: %q", element.ErrNotRecognized, tag)
	}
	if len(vals) < n {
		return ret, fmt.Errorf("%w: %s 需要 %d 个参数，得到 %d", ErrMissingValue, tag, n, len(vals))
	}
	params := make([]element.Param, len(vals))
	for i, v := range vals {
		params[i].Val = v
		if i < len(units) {
			params[i].Unit = units[i]
		}
	}
	f := unit.NewFrequency(freq, unit.Base)
	w := f.W()

	switch tag {
	case "bb":
		r, x := vals[0], vals[1]
		if diff {
			r, x = r/2, x/2
		}
		ret = [3]float64{r / z0, x / z0, 0}
	case "rl":
		ret = [3]float64{params[0].SI() / z0, w * params[1].SI() / z0, 0}
	case "rc":
		ret = [3]float64{1 / params[0].SI() / z0, -1 / (w * params[1].SI()) / z0, 0}
	case "tl", "so", "ss":
		ret[2] = unit.Length(params[0].Val, params[0].Unit, freq, 1)
	case "customZ":
		z, err := lut.At(freq)
		if err != nil {
			return ret, err
		}
		ret = [3]float64{real(z) / z0, imag(z) / z0, 0}
	default:
		e, err := element.New(tag, params[:n], element.Series)
		if err != nil {
			return ret, err
		}
		z := e.Impedance(f) / complex(z0, 0)
		ret = [3]float64{real(z), imag(z), 0}
	}
	if verbose {
		zap.L().Debug("base.CalcRI",
			zap.String("tag", tag), zap.Float64s("vals", vals),
			zap.Float64("freq", freq), zap.Float64("z0", z0), zap.Bool("diff", diff),
			zap.Float64s("ret", ret[:]))
	}
	return ret, nil
}
