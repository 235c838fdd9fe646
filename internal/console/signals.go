package console

import (
	"fmt"
	"math"
)

// Unit controls how a gauge value is printed.
type Unit int

const (
	UnitRatio   Unit = iota // 0.45
	UnitPercent             // 45%
	UnitCount               // 13000
	UnitMillis              // 220 ms
	UnitMillisFine          // 7.0 ms
	UnitTorque              // 18.2 Nm
)

// Format renders v for display.
func (u Unit) Format(v float64) string {
	switch u {
	case UnitPercent:
		return fmt.Sprintf("%.0f%%", v*100)
	case UnitCount:
		return fmt.Sprintf("%.0f", v)
	case UnitMillis:
		return fmt.Sprintf("%.0f ms", v)
	case UnitMillisFine:
		return fmt.Sprintf("%.1f ms", v)
	case UnitTorque:
		return fmt.Sprintf("%.1f Nm", v)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}

// Gauge is one named synthetic quantity.
type Gauge struct {
	Label string
	Value float64
	// Scale is the value that fills the bar completely.
	Scale float64
	Unit  Unit
}

// Norm maps Value into [0, 1] for bar rendering.
func (g Gauge) Norm() float64 {
	if g.Scale <= 0 {
		return 0
	}
	return clamp01(g.Value / g.Scale)
}

// Text returns the formatted value.
func (g Gauge) Text() string { return g.Unit.Format(g.Value) }

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func wave(base, amp, freq, t float64) float64 { return base + amp*math.Sin(freq*t) }

func cwave(base, amp, freq, t float64) float64 { return base + amp*math.Cos(freq*t) }

func absWave(base, amp, freq, t float64) float64 { return base + amp*math.Abs(math.Sin(freq*t)) }

func absCwave(base, amp, freq, t float64) float64 { return base + amp*math.Abs(math.Cos(freq*t)) }

// Generate computes the gauges of mode at t seconds since start. It is pure:
// the same inputs always give the same readings.
func Generate(mode Mode, t float64) []Gauge {
	switch mode {
	case Robotics:
		return []Gauge{
			{"loop latency", wave(80, 40, 0.55, t), 200, UnitMillis},
			{"actuator load", cwave(0.35, 0.18, 0.37, t), 1, UnitPercent},
			{"path jitter", absWave(4, 2.5, 0.72, t), 20, UnitMillisFine},
			{"joint torque", cwave(18, 2, 0.6, t), 30, UnitTorque},
			{"faults/min", absWave(0.2, 0.5, 0.63, t), 3, UnitRatio},
			{"sensor trust", 0.89 - 0.10*math.Abs(math.Sin(0.27*t)), 1, UnitPercent},
		}
	case Cloud:
		return []Gauge{
			{"p95 latency", wave(260, 110, 0.29, t), 400, UnitMillis},
			{"node load", cwave(0.42, 0.22, 0.31, t), 1, UnitPercent},
			{"requests/min", wave(19_000, 7_000, 0.21, t), 30_000, UnitCount},
			{"errors/min", absWave(1.0, 1.2, 0.45, t), 3, UnitRatio},
			{"queue depth", cwave(0.62, 0.28, 0.26, t), 1, UnitRatio},
			{"sla trust", 0.87 - 0.12*math.Abs(math.Sin(0.23*t)), 1, UnitPercent},
		}
	case DataForensics:
		return []Gauge{
			{"anomalies", absWave(0.2, 0.6, 0.27, t), 1, UnitRatio},
			{"hash shift", absCwave(0.1, 0.4, 0.36, t), 1, UnitRatio},
			{"records/min", wave(9_500, 3_000, 0.18, t), 15_000, UnitCount},
			{"trace jitter", absWave(6.5, 4, 0.63, t), 20, UnitMillisFine},
			{"evidence trust", 0.93 - 0.06*math.Abs(math.Sin(0.31*t)), 1, UnitPercent},
		}
	case Sandbox:
		return []Gauge{
			{"pattern", wave(0.5, 0.5, 0.19, t), 1, UnitRatio},
			{"entropy", absCwave(0, 1, 0.23, t), 1, UnitRatio},
			{"synth load", cwave(0.30, 0.30, 0.36, t), 1, UnitPercent},
		}
	default:
		return []Gauge{
			{"latency p95", wave(220, 90, 0.33, t), 400, UnitMillis},
			{"service load", cwave(0.18, 0.12, 0.27, t), 1, UnitPercent},
			{"tokens/min", wave(13_000, 5_000, 0.19, t), 25_000, UnitCount},
			{"errors/min", absWave(0.5, 0.8, 0.41, t), 3, UnitRatio},
			{"queue depth", cwave(0.45, 0.25, 0.23, t), 1, UnitRatio},
			{"sampler jitter", absWave(7, 3, 0.51, t), 20, UnitMillisFine},
			{"trust score", 0.92 - 0.08*math.Abs(math.Sin(0.17*t)), 1, UnitPercent},
		}
	}
}

// SystemGauges returns the mode-independent cpu/mem/disk/net panel.
func SystemGauges(t float64) []Gauge {
	return []Gauge{
		{"cpu load", absWave(0.40, 0.25, 0.41, t), 1, UnitPercent},
		{"memory", absCwave(0.55, 0.20, 0.27, t), 1, UnitPercent},
		{"disk io", absWave(0.30, 0.35, 0.31, t), 1, UnitPercent},
		{"net jitter", absCwave(0.20, 0.40, 0.22, t), 1, UnitPercent},
	}
}

// SyntheticLine formats the per-mode log line emitted by a firing tick.
func SyntheticLine(mode Mode, t float64) string {
	switch mode {
	case Robotics:
		return fmt.Sprintf("ROB[path] jitter=%.1fms torque=%.1fNm",
			wave(4, 3, 0.4, t), cwave(18, 2, 0.6, t))
	case Cloud:
		return fmt.Sprintf("CLD[node] p95=%.0fms q_depth=%.2f",
			wave(210, 85, 0.33, t), cwave(0.4, 0.3, 0.21, t))
	case DataForensics:
		return fmt.Sprintf("DFX[trace] anomalies=%.2f hash_shift=%.2f",
			absWave(0.2, 0.6, 0.27, t), absCwave(0.1, 0.4, 0.36, t))
	case Sandbox:
		return fmt.Sprintf("SBX[synth] pattern=%.2f entropy=%.2f",
			math.Sin(0.19*t), math.Abs(math.Cos(0.23*t)))
	default:
		return fmt.Sprintf("AI[core] step=%d temp=%.2f drift=%.3f",
			int(t*12), wave(0.9, 0.1, 0.3, t), math.Cos(0.17*t))
	}
}
