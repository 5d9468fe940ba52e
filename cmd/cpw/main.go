// Command cpw 计算共面波导谐振器的谐振频率、品质因数与 S21 响应。
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"cpw"
	"cpw/maths"
	"cpw/resonator"
	"cpw/sweep"
	"cpw/types"
)

func main() {
	opts := NewOptions()
	opts.AddFlags(pflag.CommandLine)
	pflag.Parse()

	level := slog.LevelInfo
	if opts.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(opts, os.Stdout); err != nil {
		slog.Error("运行失败", "err", err)
		os.Exit(1)
	}
}

// report JSON 报告内容
type report struct {
	Summary        *cpw.Summary    `json:"summary"`
	SelfConsistent maths.Vector    `json:"w_n_self_consistent,omitempty"`
	Sweeps         []*sweep.Record `json:"sweeps,omitempty"`
	Table          []sweep.Row     `json:"table,omitempty"`
}

func run(opts *Options, out io.Writer) error {
	if err := opts.Complete(); err != nil {
		return err
	}
	if err := opts.Validate(); err != nil {
		return err
	}
	if opts.ListOptions {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(cpw.AvailableOptions())
	}

	design, err := cpw.NewDesign()
	if err != nil {
		return err
	}
	design.SetMode(opts.Mode)
	if opts.Design != "" {
		if err := design.LoadFile(opts.Design); err != nil {
			return err
		}
		slog.Info("加载设计文件", "file", opts.Design, "selection", design.Selection())
		if opts.fs == nil || !opts.fs.Changed("mode") {
			opts.Mode = design.Mode()
		}
	}
	if opts.Export != "" {
		if err := design.ExportFile(opts.Export); err != nil {
			return err
		}
		slog.Info("导出设计文件", "file", opts.Export)
	}

	rep := report{}
	if rep.Summary, err = design.Summary(opts.Mode); err != nil {
		return err
	}
	printSummary(out, rep.Summary)

	if opts.SelfConsistent {
		w, err := design.Resonator().ResonanceFrequencySelfConsistent(rep.Summary.Mode)
		if err != nil {
			return err
		}
		rep.SelfConsistent = w
		fmt.Fprintf(out, "w_n (self-consistent) = %v rad/s\n", w)
	}

	if opts.Table {
		if rep.Table, err = sweep.Table(design.Resonator(), rep.Summary.Mode, sweep.TableCapacitance); err != nil {
			return err
		}
		if err := sweep.WriteTable(out, rep.Table); err != nil {
			return err
		}
	}

	if !opts.sweeps() {
		return nil
	}
	if rep.Sweeps, err = sweeps(opts, design.Resonator(), rep.Summary.Mode); err != nil {
		return err
	}
	if s21 := lookup(rep.Sweeps, sweep.Magnitude); s21 != nil {
		if f, y, ok := s21.Peak(sweep.Magnitude); ok {
			slog.Info("S21 峰值", "f_GHz", f, "dB", y)
		}
	}
	return writeReports(opts, rep)
}

// sweeps 依次运行频率扫描与耦合扫描。多值参数无法形成单条曲线时跳过该扫描。
func sweeps(opts *Options, r *resonator.Resonator, n int) ([]*sweep.Record, error) {
	var records []*sweep.Record
	for _, s := range []struct {
		name string
		run  func() (*sweep.Record, error)
	}{
		{"s21", func() (*sweep.Record, error) { return sweep.Around(r, n, opts.Span, opts.Points) }},
		{"coupling", func() (*sweep.Record, error) { return sweep.CouplingRange(r, n, opts.Points) }},
	} {
		rec, err := s.run()
		if errors.Is(err, types.ErrShapeMismatch) {
			slog.Warn("跳过扫描", "sweep", s.name, "err", err)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%s 扫描: %w", s.name, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// lookup 第一个包含指定曲线的记录
func lookup(records []*sweep.Record, name string) *sweep.Record {
	for _, rec := range records {
		if _, ok := rec.Lookup(name); ok {
			return rec
		}
	}
	return nil
}

func printSummary(w io.Writer, s *cpw.Summary) {
	fmt.Fprintf(w, "selection: %s / %s / %s / %s\n",
		s.Selection.TransitionLine, s.Selection.InputCoupling, s.Selection.OutputCoupling, s.Selection.Substrate)
	fmt.Fprintf(w, "n = %d\n", s.Mode)
	fmt.Fprintf(w, "w_n = %v rad/s\n", s.AngularFrequency)
	fmt.Fprintf(w, "f_n = %v Hz\n", s.Frequency)
	fmt.Fprintf(w, "Q_i = %v\nQ_e = %v\nQ   = %v\n", s.QInternal, s.QExternal, s.QTotal)
}

func writeReports(opts *Options, rep report) error {
	if opts.JSON != "" {
		if err := writeFile(opts.JSON, func(w io.Writer) error {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(rep)
		}); err != nil {
			return err
		}
		slog.Info("写入报告", "format", "json", "file", opts.JSON)
	}
	if opts.HTML != "" {
		charts := &sweep.Charts{Records: rep.Sweeps}
		if err := writeFile(opts.HTML, charts.Render); err != nil {
			return err
		}
		slog.Info("写入报告", "format", "html", "file", opts.HTML)
	}
	if opts.Plot != "" {
		if s21 := lookup(rep.Sweeps, sweep.Magnitude); s21 == nil {
			slog.Warn("没有 S21 曲线，跳过绘图", "file", opts.Plot)
		} else {
			if err := s21.SavePlot(opts.Plot, sweep.Magnitude); err != nil {
				return err
			}
			slog.Info("写入报告", "format", "plot", "file", opts.Plot)
		}
	}
	if opts.XLSX != "" {
		if err := sweep.SaveXLSX(opts.XLSX, rep.Sweeps...); err != nil {
			return err
		}
		slog.Info("写入报告", "format", "xlsx", "file", opts.XLSX)
	}
	return nil
}

func writeFile(name string, render func(io.Writer) error) error {
	file, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := render(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
