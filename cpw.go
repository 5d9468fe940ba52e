// Package cpw 共面波导谐振器设计。
//
// Design 维护当前选择的传输线、输入输出耦合与基板变体，支持按注册名称热替换
// 单个元件、按名称更新参数、对称耦合，以及设计文件的加载与导出。
package cpw

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"

	"cpw/coupling"
	"cpw/line"
	"cpw/load"
	"cpw/maths"
	"cpw/param"
	"cpw/resonator"
	"cpw/substrate"
	"cpw/types"
)

// ErrSymmetricOutput 对称模式下直接修改输出耦合
var ErrSymmetricOutput = errors.New("output coupling follows input coupling in symmetric mode")

// Category 元件类别
type Category string

// 元件类别
const (
	TransitionLine Category = "transition_line"
	InputCoupling  Category = "input_coupling"
	OutputCoupling Category = "output_coupling"
	Substrate      Category = "substrate"
)

// 默认选择
var (
	DefaultTransitionLine = "geometric"
	DefaultCoupling       = "simplified"
	DefaultSubstrate      = "effective"
)

// Selection 当前选择的变体名称
type Selection struct {
	TransitionLine string `json:"transition_line"`
	InputCoupling  string `json:"input_coupling"`
	OutputCoupling string `json:"output_coupling"`
	Substrate      string `json:"substrate"`
}

// Design 谐振器设计
type Design struct {
	selection Selection
	symmetric bool
	mode      int
	resonator *resonator.Resonator
	logger    *slog.Logger
}

// NewDesign 以默认选择创建设计
func NewDesign() (*Design, error) {
	tl, _, err := line.Catalog.New(DefaultTransitionLine, nil)
	if err != nil {
		return nil, err
	}
	in, _, err := coupling.Catalog.New(DefaultCoupling, nil)
	if err != nil {
		return nil, err
	}
	out, _, err := coupling.Catalog.New(DefaultCoupling, nil)
	if err != nil {
		return nil, err
	}
	sub, _, err := substrate.Catalog.New(DefaultSubstrate, nil)
	if err != nil {
		return nil, err
	}
	r, err := resonator.New(tl, in, out, sub)
	if err != nil {
		return nil, err
	}
	return &Design{
		selection: Selection{
			TransitionLine: DefaultTransitionLine,
			InputCoupling:  DefaultCoupling,
			OutputCoupling: DefaultCoupling,
			Substrate:      DefaultSubstrate,
		},
		mode:      1,
		resonator: r,
		logger:    slog.Default(),
	}, nil
}

// SetLogger 设置日志
func (d *Design) SetLogger(logger *slog.Logger) { d.logger = logger }

func (d *Design) Resonator() *resonator.Resonator { return d.resonator }
func (d *Design) Selection() Selection            { return d.selection }
func (d *Design) Symmetric() bool                 { return d.symmetric }

// Mode 默认谐振模式序号
func (d *Design) Mode() int { return d.mode }

// SetMode 设置默认谐振模式序号，超出范围时截断到 [1, MaxMode]
func (d *Design) SetMode(n int) { d.mode = ClampMode(n) }

// ClampMode 截断谐振模式序号
func ClampMode(n int) int {
	return int(math.Max(1, math.Min(float64(n), float64(types.MaxMode))))
}

// Select 按注册名称替换某一类别的元件，其余元件保持不变。
// 名称与当前选择相同时不做任何事。
func (d *Design) Select(cat Category, name string) error {
	switch cat {
	case TransitionLine:
		if name == d.selection.TransitionLine {
			return nil
		}
		tl, _, err := line.Catalog.New(name, nil)
		if err != nil {
			return err
		}
		if err := d.resonator.SetTransitionLine(tl); err != nil {
			return err
		}
		d.selection.TransitionLine = name
	case InputCoupling:
		if name == d.selection.InputCoupling {
			return nil
		}
		c, _, err := coupling.Catalog.New(name, nil)
		if err != nil {
			return err
		}
		if err := d.resonator.SetInputCoupling(c); err != nil {
			return err
		}
		d.selection.InputCoupling = name
		if d.symmetric {
			return d.mirror()
		}
	case OutputCoupling:
		if d.symmetric {
			return ErrSymmetricOutput
		}
		if name == d.selection.OutputCoupling {
			return nil
		}
		c, _, err := coupling.Catalog.New(name, nil)
		if err != nil {
			return err
		}
		if err := d.resonator.SetOutputCoupling(c); err != nil {
			return err
		}
		d.selection.OutputCoupling = name
	case Substrate:
		if name == d.selection.Substrate {
			return nil
		}
		sub, _, err := substrate.Catalog.New(name, nil)
		if err != nil {
			return err
		}
		d.resonator.SetSubstrate(sub)
		d.selection.Substrate = name
	default:
		return fmt.Errorf("category %q: %w", cat, types.ErrUnknownVariant)
	}
	d.logger.Debug("元件替换", "category", cat, "variant", name)
	return nil
}

// component 类别对应的当前元件
func (d *Design) component(cat Category) (param.Component, error) {
	switch cat {
	case TransitionLine:
		return d.resonator.TransitionLine(), nil
	case InputCoupling:
		return d.resonator.InputCoupling(), nil
	case OutputCoupling:
		return d.resonator.OutputCoupling(), nil
	case Substrate:
		if sub := d.resonator.Substrate(); sub != nil {
			return sub, nil
		}
		return nil, types.MissingSubstrate(string(Substrate))
	}
	return nil, fmt.Errorf("category %q: %w", cat, types.ErrUnknownVariant)
}

// Update 按名称更新当前元件参数。未识别的名称被忽略并记录日志；
// 任一参数无效时该类别的参数保持不变。
func (d *Design) Update(cat Category, params map[string]maths.Vector) error {
	if d.symmetric && cat == OutputCoupling {
		return ErrSymmetricOutput
	}
	c, err := d.component(cat)
	if err != nil {
		return err
	}
	unknown, err := c.Bindings().Apply(params)
	if len(unknown) > 0 {
		d.logger.Warn("忽略未知参数", "category", cat, "type", c.TypeName(), "names", unknown)
	}
	if err != nil {
		return err
	}
	if d.symmetric && cat == InputCoupling {
		return d.mirror()
	}
	return nil
}

// SetSymmetric 切换对称模式。开启时输出耦合立即复制输入耦合的变体与参数。
func (d *Design) SetSymmetric(on bool) error {
	d.symmetric = on
	if on {
		return d.mirror()
	}
	return nil
}

// mirror 以输入耦合的变体与参数创建独立的输出耦合
func (d *Design) mirror() error {
	in := d.resonator.InputCoupling()
	out, _, err := coupling.Catalog.New(d.selection.InputCoupling, values(in))
	if err != nil {
		return err
	}
	if err := d.resonator.SetOutputCoupling(out); err != nil {
		return err
	}
	d.selection.OutputCoupling = d.selection.InputCoupling
	return nil
}

// values 读取元件全部注册参数
func values(c param.Component) map[string]maths.Vector {
	return c.Bindings().Values(c.Parameters().Names())
}

// Apply 应用设计文件。先构造全部元件，全部成功后再替换。
func (d *Design) Apply(f *load.File) error {
	sel := d.selection
	pick := func(name, current string) string {
		if name == "" {
			return current
		}
		return name
	}
	sel.TransitionLine = pick(f.TransitionLine.Type, sel.TransitionLine)
	sel.InputCoupling = pick(f.InputCoupling.Type, sel.InputCoupling)
	sel.Substrate = pick(f.Substrate.Type, sel.Substrate)
	outSpec := f.InputCoupling
	if f.OutputCoupling != nil {
		outSpec = *f.OutputCoupling
		sel.OutputCoupling = pick(outSpec.Type, sel.OutputCoupling)
	} else if f.Symmetric {
		sel.OutputCoupling = sel.InputCoupling
	} else {
		outSpec = load.Component{}
	}

	tl, unknown, err := line.Catalog.New(sel.TransitionLine, f.TransitionLine.Params)
	if err != nil {
		return err
	}
	d.ignored(TransitionLine, unknown)
	in, unknown, err := coupling.Catalog.New(sel.InputCoupling, f.InputCoupling.Params)
	if err != nil {
		return err
	}
	d.ignored(InputCoupling, unknown)
	out, unknown, err := coupling.Catalog.New(sel.OutputCoupling, outSpec.Params)
	if err != nil {
		return err
	}
	d.ignored(OutputCoupling, unknown)
	sub, unknown, err := substrate.Catalog.New(sel.Substrate, f.Substrate.Params)
	if err != nil {
		return err
	}
	d.ignored(Substrate, unknown)

	r, err := resonator.New(tl, in, out, sub)
	if err != nil {
		return err
	}
	d.resonator, d.selection, d.symmetric = r, sel, f.Symmetric
	if f.Mode > 0 {
		d.SetMode(f.Mode)
	}
	return nil
}

func (d *Design) ignored(cat Category, names []string) {
	if len(names) > 0 {
		d.logger.Warn("忽略未知参数", "category", cat, "names", names)
	}
}

// Load 加载设计文件
func (d *Design) Load(r io.Reader) error {
	f, err := load.Load(r)
	if err != nil {
		return err
	}
	return d.Apply(f)
}

// LoadFile 按文件名加载设计文件
func (d *Design) LoadFile(filename string) error {
	f, err := load.LoadFile(filename)
	if err != nil {
		return err
	}
	return d.Apply(f)
}

// File 当前设计的文件描述
func (d *Design) File() *load.File {
	f := &load.File{
		Mode:      d.mode,
		Symmetric: d.symmetric,
		TransitionLine: load.Component{
			Type: d.selection.TransitionLine, Params: values(d.resonator.TransitionLine()),
		},
		InputCoupling: load.Component{
			Type: d.selection.InputCoupling, Params: values(d.resonator.InputCoupling()),
		},
		Substrate: load.Component{Type: d.selection.Substrate},
	}
	if !d.symmetric {
		f.OutputCoupling = &load.Component{
			Type: d.selection.OutputCoupling, Params: values(d.resonator.OutputCoupling()),
		}
	}
	if sub := d.resonator.Substrate(); sub != nil {
		f.Substrate.Params = values(sub)
	}
	return f
}

// Export 导出设计文件
func (d *Design) Export(w io.Writer) error { return d.File().Export(w) }

// ExportFile 按文件名导出设计文件
func (d *Design) ExportFile(filename string) error { return d.File().ExportFile(filename) }
