package profile

import (
	"math"
	"testing"
)

func TestGaussian2DPeakAtMean(t *testing.T) {
	g := Gaussian2D{
		Amplitude: 100,
		XMean:     25,
		YMean:     40,
		XStdDev:   3,
		YStdDev:   5,
		Theta:     0.7,
	}

	peak := g.Eval(g.XMean, g.YMean)
	if math.Abs(peak-g.Amplitude) > 1e-12 {
		t.Errorf("peak = %v, want %v", peak, g.Amplitude)
	}

	// Any offset from the mean must evaluate below the peak.
	offsets := [][2]float64{{1, 0}, {0, 1}, {-2, 3}, {4, -1}}
	for _, off := range offsets {
		v := g.Eval(g.XMean+off[0], g.YMean+off[1])
		if v >= peak {
			t.Errorf("Eval at offset %v = %v, want < %v", off, v, peak)
		}
	}
}

func TestGaussian2DCircularSymmetry(t *testing.T) {
	g := Gaussian2D{Amplitude: 1, XMean: 0, YMean: 0, XStdDev: 2, YStdDev: 2}

	// A circular Gaussian only depends on radius, regardless of theta.
	r := 3.0
	want := g.Eval(r, 0)
	for _, th := range []float64{0, 0.3, math.Pi / 4, 1.9} {
		g.Theta = th
		got := g.Eval(r*math.Cos(1.1), r*math.Sin(1.1))
		if math.Abs(got-want) > 1e-12 {
			t.Errorf("theta=%v: Eval = %v, want %v", th, got, want)
		}
	}
}

func TestGaussian2DRotation(t *testing.T) {
	// theta=pi/2 swaps the major axis from x onto y.
	g := Gaussian2D{Amplitude: 1, XStdDev: 4, YStdDev: 1, Theta: math.Pi / 2}

	alongY := g.Eval(0, 2)
	alongX := g.Eval(2, 0)
	if alongY <= alongX {
		t.Errorf("rotated Gaussian: Eval(0,2)=%v should exceed Eval(2,0)=%v", alongY, alongX)
	}

	unrot := Gaussian2D{Amplitude: 1, XStdDev: 4, YStdDev: 1}
	if math.Abs(alongY-unrot.Eval(2, 0)) > 1e-12 {
		t.Errorf("90 degree rotation: got %v, want %v", alongY, unrot.Eval(2, 0))
	}
}

func TestGaussian2DOneSigma(t *testing.T) {
	g := Gaussian2D{Amplitude: 10, XMean: 5, YMean: 5, XStdDev: 2, YStdDev: 3}

	want := 10 * math.Exp(-0.5)
	if got := g.Eval(5+2, 5); math.Abs(got-want) > 1e-12 {
		t.Errorf("one sigma along x: got %v, want %v", got, want)
	}
	if got := g.Eval(5, 5+3); math.Abs(got-want) > 1e-12 {
		t.Errorf("one sigma along y: got %v, want %v", got, want)
	}
}

func TestAmplitudeFromFlux(t *testing.T) {
	amp := AmplitudeFromFlux(100, 2, 3)
	want := 100 / (2 * math.Pi * 2 * 3)
	if math.Abs(amp-want) > 1e-12 {
		t.Errorf("AmplitudeFromFlux = %v, want %v", amp, want)
	}
}

func TestTotalFluxRoundTrip(t *testing.T) {
	g := Gaussian2D{
		Amplitude: AmplitudeFromFlux(750, 3.1, 1.8),
		XStdDev:   3.1,
		YStdDev:   1.8,
	}
	if got := g.TotalFlux(); math.Abs(got-750) > 1e-9 {
		t.Errorf("TotalFlux = %v, want 750", got)
	}
}
