package axpybench

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-q15/q15"
)

// SpectrumPeak describes the strongest bin of the quantization error
// spectrum. Level is single-sided amplitude in dB relative to full scale.
type SpectrumPeak struct {
	Bin   int
	Level float64
}

// floatReference computes the unquantized AXPY in float64, clipped to the
// representable Q15 interval the saturating kernel clamps to.
func floatReference(a, b []q15.Sample, alpha q15.Sample) []float64 {
	out := make([]float64, len(a))
	wideAlpha := alpha.Float64()
	hi := q15.MaxSample.Float64()
	lo := q15.MinSample.Float64()

	for i := range out {
		v := a[i].Float64() + wideAlpha*b[i].Float64()
		if v > hi {
			v = hi
		}
		if v < lo {
			v = lo
		}
		out[i] = v
	}
	return out
}

// quantizationError returns got - ideal elementwise as float64.
func quantizationError(ideal []float64, got []q15.Sample) []float64 {
	gotF := make([]float64, len(got))
	q15.ToFloat64(gotF, got)

	err := make([]float64, len(ideal))
	for i := range err {
		err[i] = gotF[i] - ideal[i]
	}
	return err
}

// signalToNoise returns the ratio of reference signal power to quantization
// error power in dB. Returns +Inf when the error is exactly zero.
func signalToNoise(ideal []float64, got []q15.Sample) float64 {
	errSig := quantizationError(ideal, got)

	errSq := make([]float64, len(errSig))
	refSq := make([]float64, len(ideal))
	vecmath.MulBlock(errSq, errSig, errSig)
	vecmath.MulBlock(refSq, ideal, ideal)

	var errPower, refPower float64
	for i := range errSq {
		errPower += errSq[i]
		refPower += refSq[i]
	}

	if errPower == 0 {
		return math.Inf(1)
	}
	if refPower == 0 {
		return math.Inf(-1)
	}

	return 10 * math.Log10(refPower/errPower)
}

// errorSpectrumPeak locates the strongest non-DC bin in the spectrum of the
// quantization error signal.
func errorSpectrumPeak(errSig []float64) (SpectrumPeak, error) {
	fftSize := nextPowerOf2(len(errSig))

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return SpectrumPeak{}, fmt.Errorf("axpybench: failed to create FFT plan: %w", err)
	}

	in := make([]complex128, fftSize)
	for i, v := range errSig {
		in[i] = complex(v, 0)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return SpectrumPeak{}, fmt.Errorf("axpybench: FFT failed: %w", err)
	}

	binCount := fftSize/2 + 1
	if binCount < 2 {
		return SpectrumPeak{}, fmt.Errorf("axpybench: error signal too short for spectrum analysis: %d samples", len(errSig))
	}

	re := make([]float64, binCount)
	im := make([]float64, binCount)
	for i := 0; i < binCount; i++ {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}

	power := make([]float64, binCount)
	vecmath.Power(power, re, im)

	peakBin := 1
	for i := 2; i < binCount; i++ {
		if power[i] > power[peakBin] {
			peakBin = i
		}
	}

	// Single-sided amplitude relative to full scale.
	amplitude := 2 * math.Sqrt(power[peakBin]) / float64(fftSize)
	level := math.Inf(-1)
	if amplitude > 0 {
		level = 20 * math.Log10(amplitude)
	}

	return SpectrumPeak{Bin: peakBin, Level: level}, nil
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p *= 2
	}

	return p
}
