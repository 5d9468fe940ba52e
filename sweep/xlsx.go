package sweep

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"cpw/types"
)

// sheetName 工作表名称最长 31 字符且不能包含 []:*?/\
func sheetName(title string, i int) string {
	name := strings.Map(func(r rune) rune {
		if strings.ContainsRune(`[]:*?/\`, r) {
			return '_'
		}
		return r
	}, title)
	if name == "" {
		name = "sweep"
	}
	if r := []rune(name); len(r) > 28 {
		name = string(r[:28])
	}
	if i > 0 {
		name = fmt.Sprintf("%s_%d", name, i)
	}
	return name
}

// Workbook 每个记录一张工作表
func Workbook(records ...*Record) (*excelize.File, error) {
	f := excelize.NewFile()
	for i, rec := range records {
		if err := writeSheet(f, rec, i); err != nil {
			f.Close()
			return nil, err
		}
	}
	return f, nil
}

func writeSheet(f *excelize.File, rec *Record, i int) error {
	sheet := sheetName(rec.Title, i)
	if i == 0 {
		if err := f.SetSheetName("Sheet1", sheet); err != nil {
			return err
		}
	} else if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	header := []interface{}{label(rec.XName, rec.XUnit)}
	for _, s := range rec.Series {
		if len(s.Y) != len(rec.X) {
			return fmt.Errorf("%s: 曲线 %s 长度 %d 与横轴 %d 不符: %w", sheet, s.Name, len(s.Y), len(rec.X), types.ErrShapeMismatch)
		}
		header = append(header, label(s.Name, s.Unit))
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for row := range rec.X {
		values := []interface{}{cell(rec.X[row])}
		for _, s := range rec.Series {
			values = append(values, cell(s.Y[row]))
		}
		name, err := excelize.CoordinatesToCellName(1, row+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, name, &values); err != nil {
			return err
		}
	}
	return nil
}

// cell 非有限值以文本写入
func cell(x float64) interface{} {
	if finite(x) {
		return x
	}
	return strconv.FormatFloat(x, 'g', -1, 64)
}

// WriteXLSX 输出工作簿
func WriteXLSX(w io.Writer, records ...*Record) error {
	f, err := Workbook(records...)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Write(w)
}

// SaveXLSX 保存工作簿
func SaveXLSX(filename string, records ...*Record) error {
	f, err := Workbook(records...)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.SaveAs(filename)
}
