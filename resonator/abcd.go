package resonator

import (
	"cpw/maths"
)

// ABCDMatrix 逐频率计算 M_in·M_tl·M_out。
// 耦合只取阻抗虚部作为串联电抗，实部在 S21 中作为端口电阻。
func (r *Resonator) ABCDMatrix(w maths.Vector) ([]maths.Matrix2, error) {
	zin, err := r.input.Impedance(w)
	if err != nil {
		return nil, err
	}
	zout, err := r.output.Impedance(w)
	if err != nil {
		return nil, err
	}
	gamma, err := r.line.Gamma(w)
	if err != nil {
		return nil, err
	}
	z0, err := r.line.Z0()
	if err != nil {
		return nil, err
	}
	length := r.line.Length()
	n, err := maths.Broadcast(w, length, z0, zin.Imag(), zout.Imag(), gamma.Real())
	if err != nil {
		return nil, err
	}
	out := make([]maths.Matrix2, n)
	for i := range out {
		gl := gamma.At(i) * complex(length.At(i), 0)
		out[i] = maths.Cascade(
			maths.SeriesImpedance(complex(0, imag(zin.At(i)))),
			maths.Line(gl, complex(z0.At(i), 0)),
			maths.SeriesImpedance(complex(0, imag(zout.At(i)))),
		)
	}
	return out, nil
}

// S21 正向传输系数 2/(A + B/R_out + C·R_in + D·R_in/R_out)
func (r *Resonator) S21(w maths.Vector) (maths.CVector, error) {
	abcd, err := r.ABCDMatrix(w)
	if err != nil {
		return nil, err
	}
	zin, err := r.input.Impedance(w)
	if err != nil {
		return nil, err
	}
	zout, err := r.output.Impedance(w)
	if err != nil {
		return nil, err
	}
	out := make(maths.CVector, len(abcd))
	for i, m := range abcd {
		rin, rout := complex(real(zin.At(i)), 0), complex(real(zout.At(i)), 0)
		out[i] = 2 / (m.A() + m.B()/rout + m.C()*rin + m.D()*rin/rout)
	}
	return out, nil
}
