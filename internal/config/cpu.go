package config

import (
	"strings"

	"golang.org/x/sys/cpu"
)

// CPUFeatures lists the instruction set extensions that influence tuning.
type CPUFeatures struct {
	ADX   bool // x86 multi-precision add-carry
	BMI2  bool // x86 MULX
	AVX2  bool
	ASIMD bool // arm64 Advanced SIMD
}

// DetectCPUFeatures reports the features of the running CPU.
func DetectCPUFeatures() CPUFeatures {
	return CPUFeatures{
		ADX:   cpu.X86.HasADX,
		BMI2:  cpu.X86.HasBMI2,
		AVX2:  cpu.X86.HasAVX2,
		ASIMD: cpu.ARM64.HasASIMD,
	}
}

func (f CPUFeatures) String() string {
	var names []string
	if f.ADX {
		names = append(names, "adx")
	}
	if f.BMI2 {
		names = append(names, "bmi2")
	}
	if f.AVX2 {
		names = append(names, "avx2")
	}
	if f.ASIMD {
		names = append(names, "asimd")
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ",")
}
