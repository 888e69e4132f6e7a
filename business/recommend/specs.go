package recommend

import (
	"regexp"
	"strconv"
	"strings"

	"myLaptopHub/domain"
)

// CPU performance tiers, ordered strongest first.
const (
	CPUHighEnd    = "high_end"
	CPUMidRange   = "mid_range"
	CPUBalanced   = "balanced"
	CPUEntryLevel = "entry_level"
)

const (
	GPUDedicated  = "dedicated"
	GPUIntegrated = "integrated"
	GPUBalanced   = "balanced"
)

var (
	dedicatedGPURe  = regexp.MustCompile(`(?i)RTX \d{4}|GTX \d{4}|Radeon RX`)
	highEndCPURe    = regexp.MustCompile(`(?i)i[579]|Ryzen [79]`)
	gamingLaptopRe  = regexp.MustCompile(`(?i)rtx|gtx|rog|alienware|predator`)
	integratedGPURe = regexp.MustCompile(`intel uhd|iris xe|radeon graphics`)
	rtxScoreRe      = regexp.MustCompile(`RTX (\d{4})`)
	ramSizeRe       = regexp.MustCompile(`(?i)(\d+)\s*GB`)
	gpuModelRe      = regexp.MustCompile(`(?i)(rtx|gtx)\s*(\d{3,4})`)
)

func isDedicatedGPU(gpu string) bool {
	return dedicatedGPURe.MatchString(gpu)
}

func isHighEndCPU(cpu string) bool {
	return highEndCPURe.MatchString(cpu)
}

func isGamingLaptop(l domain.Laptop) bool {
	return gamingLaptopRe.MatchString(l.Brand.Name + " " + l.Model)
}

func classifyGPU(gpu string) string {
	gpu = strings.ToLower(gpu)
	if integratedGPURe.MatchString(gpu) {
		return GPUIntegrated
	}
	if strings.Contains(gpu, "rtx") || strings.Contains(gpu, "gtx") || strings.Contains(gpu, "radeon rx") {
		return GPUDedicated
	}
	return "unknown"
}

func classifyCPUTier(cpu string) string {
	cpu = strings.ToLower(cpu)
	switch {
	case strings.Contains(cpu, "i9") || strings.Contains(cpu, "ryzen 9") || strings.Contains(cpu, "ryzen 7"):
		return CPUHighEnd
	case strings.Contains(cpu, "i7") || strings.Contains(cpu, "ryzen 5"):
		return CPUMidRange
	case strings.Contains(cpu, "i5") || strings.Contains(cpu, "ryzen 3"):
		return CPUBalanced
	default:
		return CPUEntryLevel
	}
}

// extractRAM pulls the gigabyte figure out of a spec string like "16GB DDR5".
func extractRAM(ram string, fallback int) int {
	m := ramSizeRe.FindStringSubmatch(ram)
	if m == nil {
		return fallback
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return fallback
	}
	return n
}

// specScore adds hand-tuned bonuses and penalties on top of the lexical
// score. Hard mismatches short-circuit with a negative score so the
// laptop drops out of the positive-score filter.
func specScore(l domain.Laptop, qc QueryContext, cfg Config) float64 {
	score := 0.0

	if qc.Weight("gpu") >= 3 && !isDedicatedGPU(l.GPU) {
		return -10
	}
	if qc.Weight("cpu") >= 3 && !isHighEndCPU(l.CPU) {
		return -5
	}

	if qc.Weight("price") >= 3 {
		score += priceScore(l.Price, cfg.PriceTarget)
	}
	if qc.Weight("gpu") >= 3 {
		score += gpuScore(l.GPU)
	}

	ram := extractRAM(l.RAM, 0)

	switch qc.Category {
	case CategoryOffice:
		if isGamingLaptop(l) {
			return -20
		}
		if ram < 8 {
			return -10
		}
	case CategoryGaming:
		if !isDedicatedGPU(l.GPU) {
			return -20
		}
		if ram < 8 {
			return -10
		}
	case CategoryEditing:
		if !isHighEndCPU(l.CPU) {
			return -20
		}
		if ram < 16 {
			return -10
		}
	case CategoryStudent:
		if ram < 4 {
			return -10
		}
		if l.Price > cfg.StudentPriceCap {
			return -5
		}
	}

	return score
}

func gpuFamilyModel(gpu string) (family, model string) {
	m := gpuModelRe.FindStringSubmatch(gpu)
	if m == nil {
		return "", ""
	}
	return strings.ToLower(m[1]), m[2]
}

func cpuVendor(cpu string) string {
	cpu = strings.ToLower(cpu)
	switch {
	case strings.Contains(cpu, "ryzen") || strings.Contains(cpu, "amd"):
		return "amd"
	case strings.Contains(cpu, "intel") || strings.Contains(cpu, "core i"):
		return "intel"
	default:
		return ""
	}
}

// strictHardwareScore rewards explicitly requested hardware and
// punishes mismatches symmetrically. An exact GPU model is worth twice
// a family-only match, so "rtx 3060" ranks the RTX 3060 above other
// RTX machines that survive the hard filter.
func strictHardwareScore(l domain.Laptop, hw HardwareConstraints) float64 {
	if !hw.Any() {
		return 0
	}
	score := 0.0

	family, model := gpuFamilyModel(l.GPU)
	if hw.GPUModel != "" {
		if family == hw.GPUFamily && model == hw.GPUModel {
			score += 8
		} else {
			score -= 8
		}
	} else if hw.GPUFamily != "" {
		if family == hw.GPUFamily {
			score += 4
		} else {
			score -= 4
		}
	}

	if hw.CPUVendor != "" {
		if cpuVendor(l.CPU) == hw.CPUVendor {
			score += 4
		} else {
			score -= 4
		}
	}

	if hw.RAMSize > 0 {
		if extractRAM(l.RAM, 0) >= hw.RAMSize {
			score += 4
		} else {
			score -= 4
		}
	}

	return score
}

// meetsHardware is the hard form of the same constraints, applied at
// the filter stage. The GPU model itself stays soft so same-family
// near-misses remain in the result set, ranked below exact matches.
func meetsHardware(l domain.Laptop, hw HardwareConstraints) bool {
	if hw.GPUFamily != "" {
		if family, _ := gpuFamilyModel(l.GPU); family != hw.GPUFamily {
			return false
		}
	}
	if hw.CPUVendor != "" && cpuVendor(l.CPU) != hw.CPUVendor {
		return false
	}
	if hw.RAMSize > 0 && extractRAM(l.RAM, 0) < hw.RAMSize {
		return false
	}
	return true
}

func gpuScore(gpu string) float64 {
	m := rtxScoreRe.FindStringSubmatch(gpu)
	if m == nil {
		return 0
	}
	model, _ := strconv.Atoi(m[1])
	if model >= 3060 {
		return 5
	}
	return 3
}

// priceScore rewards closeness to the target budget, max 5 points.
func priceScore(price, target float64) float64 {
	if price <= target {
		return 5
	}
	score := 5 - ((price-target)/target)*5
	if score < 0 {
		return 0
	}
	return score
}
