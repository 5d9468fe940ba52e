package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpw/sweep"
)

func parse(t *testing.T, args ...string) *Options {
	t.Helper()
	opts := NewOptions()
	fs := pflag.NewFlagSet("cpw", pflag.ContinueOnError)
	opts.AddFlags(fs)
	require.NoError(t, fs.Parse(args))
	return opts
}

func TestValidate(t *testing.T) {
	assert.NoError(t, parse(t).Validate())
	assert.Error(t, parse(t, "--span", "0").Validate())
	assert.Error(t, parse(t, "--span", "1.5").Validate())
	assert.Error(t, parse(t, "--points", "1").Validate())

	opts := parse(t, "-n", "0")
	require.NoError(t, opts.Complete())
	assert.Equal(t, 1, opts.Mode)
}

func TestRunSummary(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(parse(t, "--table", "--self-consistent"), &out))
	assert.Contains(t, out.String(), "selection: geometric / simplified / simplified / effective")
	assert.Contains(t, out.String(), "w_n (self-consistent)")
	assert.Contains(t, out.String(), "C (fF) | f0 (GHz)")
}

func TestRunOptions(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(parse(t, "--options"), &out))
	var got map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Contains(t, got, "transition_lines")
}

// TestRunReports 设计文件加载与全部报告输出
func TestRunReports(t *testing.T) {
	dir := t.TempDir()
	design := filepath.Join(dir, "design.yaml")
	require.NoError(t, os.WriteFile(design, []byte(`
mode: 2
transition_line: {type: distributed}
symmetric: true
input_coupling: {type: simplified, params: {capacitance: 1.0e-14}}
`), 0o644))
	path := func(name string) string { return filepath.Join(dir, name) }

	var out bytes.Buffer
	opts := parse(t,
		"--design", design,
		"--points", "101",
		"--export", path("export.yaml"),
		"--json", path("report.json"),
		"--html", path("report.html"),
		"--plot", path("s21.svg"),
		"--xlsx", path("report.xlsx"),
	)
	require.NoError(t, run(opts, &out))
	assert.Contains(t, out.String(), "n = 2")

	for _, name := range []string{"export.yaml", "report.json", "report.html", "s21.svg", "report.xlsx"} {
		info, err := os.Stat(path(name))
		require.NoError(t, err, name)
		assert.Positive(t, info.Size(), name)
	}
	var rep report
	data, err := os.ReadFile(path("report.json"))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &rep))
	assert.Len(t, rep.Sweeps, 2)
	assert.Equal(t, 2, rep.Summary.Mode)
}

// TestRunArrayParameters 多值参数跳过频率扫描，其余报告照常输出
func TestRunArrayParameters(t *testing.T) {
	dir := t.TempDir()
	design := filepath.Join(dir, "design.yaml")
	require.NoError(t, os.WriteFile(design, []byte(`
symmetric: true
input_coupling: {type: simplified, params: {capacitance: [1.0e-15, 4.0e-15]}}
`), 0o644))
	path := func(name string) string { return filepath.Join(dir, name) }

	var out bytes.Buffer
	opts := parse(t,
		"--design", design,
		"--points", "11",
		"--json", path("report.json"),
		"--plot", path("s21.svg"),
		"--xlsx", path("report.xlsx"),
	)
	require.NoError(t, run(opts, &out))

	var rep report
	data, err := os.ReadFile(path("report.json"))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &rep))
	require.Len(t, rep.Sweeps, 1)
	_, ok := rep.Sweeps[0].Lookup(sweep.CouplingK)
	assert.True(t, ok)

	_, err = os.Stat(path("s21.svg"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(path("report.xlsx"))
	assert.NoError(t, err)
}

func TestRunMissingDesign(t *testing.T) {
	var out bytes.Buffer
	assert.Error(t, run(parse(t, "--design", filepath.Join(t.TempDir(), "none.yaml")), &out))
}
