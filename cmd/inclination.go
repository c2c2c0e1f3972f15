/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/notargets/goharmonics/inclination"
)

type ModelInclination struct {
	MaxDegree   int
	Inclination float64 // degrees
	Derivatives bool
	L, M        int
}

// InclinationCmd represents the inclination command
var InclinationCmd = &cobra.Command{
	Use:   "inclination",
	Short: "Evaluate normalized inclination functions via great-circle FFT analysis",
	Long: `
Evaluates normalized inclination functions Flmp and their inclination
derivatives for all degrees, orders and indices up to a maximum degree,
using Wagner's FFT method along a sampled great circle,

goharmonics inclination `,
	Run: func(cmd *cobra.Command, args []string) {
		defer startProfile(cmd)()
		mi := &ModelInclination{}
		fmt.Println("inclination called")
		mi.MaxDegree, _ = cmd.Flags().GetInt("maxDegree")
		mi.Inclination, _ = cmd.Flags().GetFloat64("inclination")
		mi.Derivatives, _ = cmd.Flags().GetBool("derivatives")
		mi.L, _ = cmd.Flags().GetInt("degree")
		mi.M, _ = cmd.Flags().GetInt("order")
		if ipFile, _ := cmd.Flags().GetString("inputFile"); len(ipFile) != 0 {
			ap := readDeck(ipFile)
			mi.MaxDegree = ap.MaxDegree
			mi.Inclination = ap.Inclination
			mi.Derivatives = ap.Derivatives > 0
		}
		RunInclination(mi)
	},
}

func init() {
	rootCmd.AddCommand(InclinationCmd)
	InclinationCmd.Flags().IntP("maxDegree", "n", 100, "maximum degree and order")
	InclinationCmd.Flags().Float64P("inclination", "i", 109.9, "orbit inclination in degrees")
	InclinationCmd.Flags().BoolP("derivatives", "d", false, "also compute inclination derivatives")
	InclinationCmd.Flags().IntP("degree", "l", 15, "degree to print")
	InclinationCmd.Flags().IntP("order", "m", 15, "order to print")
	InclinationCmd.Flags().StringP("inputFile", "I", "", "YAML file for input parameters like:\n\t- MaxDegree\n\t- Inclination (deg)")
}

func RunInclination(mi *ModelInclination) {
	var (
		I    = mi.Inclination * math.Pi / 180
		l, m = mi.L, mi.M
	)
	F := inclination.NewFlmp(mi.MaxDegree, I, mi.Derivatives)
	fmt.Printf("Inclination = %8.4f deg, MaxDegree = %d\n",
		mi.Inclination, F.GetLMax())
	fmt.Printf("   l    m    p               Flmp")
	if mi.Derivatives {
		fmt.Printf("              dFlmp          Flmk_star")
	}
	fmt.Println()
	for p := 0; p <= l; p++ {
		fmt.Printf("%4d %4d %4d %18.12e", l, m, p, F.GetFlmp(l, m, p))
		if mi.Derivatives {
			k := l - 2*p
			fmt.Printf(" %18.12e %18.12e",
				F.GetDFlmp(l, m, p), F.GetFlmkStar(l, m, k))
		}
		fmt.Println()
	}
}
