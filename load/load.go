// Package load 谐振器设计文件（YAML）的读取与导出。
//
// 示例：
//
//	mode: 1
//	symmetric: true
//	transition_line:
//	  type: geometric
//	  params: {length: 0.028449, width: 1.0e-5}
//	input_coupling:
//	  type: simplified
//	  params: {capacitance: [1.0e-15, 4.0e-15]}
//	substrate:
//	  type: effective
//
// 参数值可以是数值或数值列表，列表按数组批量计算。
package load

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"sigs.k8s.io/yaml"

	"cpw/maths"
)

// Component 元件描述
type Component struct {
	Type   string                  `json:"type,omitempty"`   // 注册名称，空表示保留当前选择
	Params map[string]maths.Vector `json:"params,omitempty"` // 参数值
}

// File 设计文件
type File struct {
	Mode           int        `json:"mode,omitempty"`      // 谐振模式序号
	Symmetric      bool       `json:"symmetric,omitempty"` // 输出耦合跟随输入耦合
	TransitionLine Component  `json:"transition_line"`
	InputCoupling  Component  `json:"input_coupling"`
	OutputCoupling *Component `json:"output_coupling,omitempty"`
	Substrate      Component  `json:"substrate"`
}

// LoadString 加载设计文件
func LoadString(s string) (*File, error) {
	return Load(strings.NewReader(s))
}

// LoadFile 按文件名加载设计文件
func LoadFile(filename string) (*File, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	f, err := Load(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return f, nil
}

// Load 加载设计文件，未知字段视为错误
func Load(r io.Reader) (*File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var f File
	if err := yaml.UnmarshalStrict(data, &f); err != nil {
		return nil, fmt.Errorf("设计文件解析: %w", err)
	}
	if f.Mode < 0 {
		return nil, fmt.Errorf("设计文件: 模式序号无效 %d", f.Mode)
	}
	if f.Symmetric && f.OutputCoupling != nil {
		return nil, fmt.Errorf("设计文件: 对称模式下不能指定 output_coupling")
	}
	return &f, nil
}

// Export 导出设计文件
func (f *File) Export(w io.Writer) error {
	data, err := yaml.Marshal(f)
	if err != nil {
		return err
	}
	_, err = io.Copy(w, bytes.NewReader(data))
	return err
}

// ExportFile 按文件名导出设计文件
func (f *File) ExportFile(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := f.Export(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
