package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file
type AnalysisParameters struct {
	Title       string  `yaml:"Title"`
	MaxDegree   int     `yaml:"MaxDegree"`
	Theta       float64 `yaml:"Theta"`       // Co-latitude in degrees
	Inclination float64 `yaml:"Inclination"` // Orbit inclination in degrees
	Derivatives int     `yaml:"Derivatives"` // 0 = none, 1 = first, 2 = second
}

func (ap *AnalysisParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, ap)
}

func (ap *AnalysisParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ap.Title)
	fmt.Printf("[%d]\t\t\t= Max Degree\n", ap.MaxDegree)
	fmt.Printf("%8.5f\t\t= Theta (deg)\n", ap.Theta)
	fmt.Printf("%8.5f\t\t= Inclination (deg)\n", ap.Inclination)
	fmt.Printf("[%d]\t\t\t= Derivative Level\n", ap.Derivatives)
}
