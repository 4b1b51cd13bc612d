package config

// ApplyAdaptiveThresholds fills thresholds left at their zero default with a
// hardware estimate, preserving explicit values.
func ApplyAdaptiveThresholds(t Tuning) Tuning {
	if t.KaratsubaThreshold == 0 {
		t.KaratsubaThreshold = EstimateKaratsubaThreshold(DetectCPUFeatures())
	}
	return t
}

// EstimateKaratsubaThreshold provides a heuristic Karatsuba cut-over without
// running benchmarks. Fast multiply-accumulate hardware makes the schoolbook
// kernel competitive for longer operands.
func EstimateKaratsubaThreshold(f CPUFeatures) int {
	wordSize := 32 << (^uint(0) >> 63)
	if wordSize == 32 {
		return 24
	}
	if f.ADX && f.BMI2 {
		return 48
	}
	return 40
}
