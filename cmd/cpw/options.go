package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/pflag"

	"cpw"
	"cpw/sweep"
)

// Options 命令行配置
type Options struct {
	Design         string  // 设计文件
	Export         string  // 导出当前设计
	Mode           int     // 谐振模式序号
	SelfConsistent bool    // 自洽谐振频率
	Span           float64 // 频率扫描相对宽度
	Points         int     // 频率扫描点数
	Table          bool    // 输出耦合电容表
	ListOptions    bool    // 输出可选变体
	JSON           string  // JSON 报告
	HTML           string  // 网页图表
	Plot           string  // 图片
	XLSX           string  // 工作簿
	Verbose        bool    // 调试日志

	fs *pflag.FlagSet
}

// NewOptions 默认配置
func NewOptions() *Options {
	return &Options{
		Mode:   1,
		Span:   sweep.DefaultSpan,
		Points: sweep.DefaultPoints,
	}
}

// AddFlags 绑定命令行参数
func (opts *Options) AddFlags(fs *pflag.FlagSet) {
	if fs == nil {
		fs = pflag.CommandLine
	}
	opts.fs = fs

	fs.StringVarP(&opts.Design, "design", "d", opts.Design, "YAML design file.")
	fs.StringVar(&opts.Export, "export", opts.Export, "Write the effective design to this YAML file.")
	fs.IntVarP(&opts.Mode, "mode", "n", opts.Mode, "Resonance mode number, clamped to [1, 1000].")
	fs.BoolVar(&opts.SelfConsistent, "self-consistent", opts.SelfConsistent,
		"Also report the self-consistent resonance frequency.")
	fs.Float64Var(&opts.Span, "span", opts.Span, "Relative half width of the S21 frequency sweep.")
	fs.IntVar(&opts.Points, "points", opts.Points, "Number of S21 sweep points.")
	fs.BoolVar(&opts.Table, "table", opts.Table, "Print the coupling capacitance table.")
	fs.BoolVar(&opts.ListOptions, "options", opts.ListOptions, "Print available variants and parameter ranges as JSON.")
	fs.StringVar(&opts.JSON, "json", opts.JSON, "Write summary and sweeps as JSON.")
	fs.StringVar(&opts.HTML, "html", opts.HTML, "Write sweep charts as HTML.")
	fs.StringVar(&opts.Plot, "plot", opts.Plot, "Write the |S21| curve as an image (png, svg, pdf).")
	fs.StringVar(&opts.XLSX, "xlsx", opts.XLSX, "Write sweeps as an Excel workbook.")
	fs.BoolVarP(&opts.Verbose, "verbose", "v", opts.Verbose, "Enable debug logging.")
}

// Complete 参数后处理
func (opts *Options) Complete() error {
	if mode := cpw.ClampMode(opts.Mode); mode != opts.Mode {
		slog.Warn("模式序号超出范围", "mode", opts.Mode, "clamped", mode)
		opts.Mode = mode
	}
	return nil
}

// Validate 参数校验
func (opts *Options) Validate() error {
	if opts.Span <= 0 || opts.Span >= 1 {
		return fmt.Errorf("--span must be in (0, 1), got %g", opts.Span)
	}
	if opts.Points < 2 {
		return fmt.Errorf("--points must be at least 2, got %d", opts.Points)
	}
	return nil
}

// sweeps 是否需要频率扫描
func (opts *Options) sweeps() bool {
	return opts.JSON != "" || opts.HTML != "" || opts.Plot != "" || opts.XLSX != ""
}
