package sweep

import (
	"fmt"
	"io"

	"cpw/maths"
	"cpw/resonator"
)

// TableCapacitance 常用耦合电容取值
var TableCapacitance = maths.Of(
	56.4e-15, 48.6e-15, 42.9e-15, 35.4e-15, 26.4e-15, 18.0e-15,
	11.3e-15, 3.98e-15, 0.44e-15, 0.38e-15, 0.32e-15, 0.24e-15,
)

// Row 耦合电容表的一行
type Row struct {
	Capacitance float64 `json:"capacitance"` // F
	Frequency   float64 `json:"frequency"`   // GHz
	LoadedQ     float64 `json:"loaded_q"`    // Q_L
	KFactor     float64 `json:"k_factor"`    // w_n·C·R
}

// Table 以耦合电容列表计算谐振频率、负载品质因数与耦合强度
func Table(r *resonator.Resonator, n int, capacitance maths.Vector) ([]Row, error) {
	rec, err := Coupling(r, n, capacitance)
	if err != nil {
		return nil, err
	}
	f, _ := rec.Lookup(Frequency)
	q, _ := rec.Lookup(LoadedQ)
	k, _ := rec.Lookup(CouplingK)
	rows := make([]Row, len(rec.X))
	for i := range rows {
		rows[i] = Row{
			Capacitance: rec.X[i] * FemtoFarad,
			Frequency:   f.Y[i],
			LoadedQ:     q.Y[i],
			KFactor:     k.Y[i],
		}
	}
	return rows, nil
}

// WriteTable 文本表格输出
func WriteTable(w io.Writer, rows []Row) error {
	if _, err := fmt.Fprintf(w, "C (fF) | f0 (GHz) |    Q_L   | k_factor\n"); err != nil {
		return err
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "%6.3g | %8.5g | %8.2g | %8.2g\n",
			r.Capacitance/FemtoFarad, r.Frequency, r.LoadedQ, r.KFactor); err != nil {
			return err
		}
	}
	return nil
}
