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
	"io/ioutil"
	"math"
	"time"

	"github.com/notargets/avs/chart2d"
	utils2 "github.com/notargets/avs/utils"
	"github.com/spf13/cobra"

	"github.com/notargets/goharmonics/InputParameters"
	"github.com/notargets/goharmonics/harmonics"
	"github.com/notargets/goharmonics/utils"
)

type ModelLegendre struct {
	MaxDegree   int
	Theta       float64 // degrees
	Derivatives int
	L, M        int
	Graph       bool
	Delay       time.Duration
}

// LegendreCmd represents the legendre command
var LegendreCmd = &cobra.Command{
	Use:   "legendre",
	Short: "Evaluate fully-normalized Associated Legendre Functions at a co-latitude",
	Long: `
Evaluates fully-normalized Associated Legendre Functions and their
co-latitude derivatives at a fixed co-latitude for all degrees and orders
up to a maximum degree,

goharmonics legendre `,
	Run: func(cmd *cobra.Command, args []string) {
		defer startProfile(cmd)()
		ml := &ModelLegendre{}
		fmt.Println("legendre called")
		ml.MaxDegree, _ = cmd.Flags().GetInt("maxDegree")
		ml.Theta, _ = cmd.Flags().GetFloat64("theta")
		ml.Derivatives, _ = cmd.Flags().GetInt("derivatives")
		ml.L, _ = cmd.Flags().GetInt("degree")
		ml.M, _ = cmd.Flags().GetInt("order")
		ml.Graph, _ = cmd.Flags().GetBool("graph")
		dr, _ := cmd.Flags().GetInt("delay")
		ml.Delay = time.Duration(dr) * time.Millisecond
		if ipFile, _ := cmd.Flags().GetString("inputFile"); len(ipFile) != 0 {
			ap := readDeck(ipFile)
			ml.MaxDegree = ap.MaxDegree
			ml.Theta = ap.Theta
			ml.Derivatives = ap.Derivatives
		}
		RunLegendre(ml)
	},
}

func readDeck(ipFile string) (ap *InputParameters.AnalysisParameters) {
	data, err := ioutil.ReadFile(ipFile)
	if err != nil {
		panic(err)
	}
	ap = &InputParameters.AnalysisParameters{}
	if err = ap.Parse(data); err != nil {
		panic(err)
	}
	ap.Print()
	return
}

func init() {
	rootCmd.AddCommand(LegendreCmd)
	LegendreCmd.Flags().IntP("maxDegree", "n", 100, "maximum degree and order")
	LegendreCmd.Flags().Float64P("theta", "t", 65, "co-latitude in degrees")
	LegendreCmd.Flags().IntP("derivatives", "d", 0, "derivative level: 0 = none, 1 = first, 2 = second")
	LegendreCmd.Flags().IntP("degree", "l", 10, "degree to print / plot")
	LegendreCmd.Flags().IntP("order", "m", 5, "order to print / plot")
	LegendreCmd.Flags().StringP("inputFile", "I", "", "YAML file for input parameters like:\n\t- MaxDegree\n\t- Theta (deg)")
	LegendreCmd.Flags().BoolP("graph", "g", false, "plot the function over the co-latitude range")
	LegendreCmd.Flags().Int("delay", 0, "milliseconds of delay for plotting")
}

func RunLegendre(ml *ModelLegendre) {
	var (
		theta = ml.Theta * math.Pi / 180
		level = harmonics.DerivativeLevel(ml.Derivatives)
		l, m  = ml.L, ml.M
	)
	plm := harmonics.NewPlm(ml.MaxDegree, theta, level)
	fmt.Printf("Theta = %8.4f deg, MaxDegree = %d\n", ml.Theta, ml.MaxDegree)
	fmt.Printf("   l    m            Plm_bar                Plm\n")
	for _, mm := range []int{0, m / 2, m} {
		fmt.Printf("%4d %4d %18.12e %18.12e\n",
			l, mm, plm.GetPlmBar(l, mm), plm.GetPlm(l, mm))
	}
	if level >= harmonics.FirstDerivative {
		fmt.Printf("dPlm_bar(%d,%d)  = %18.12e\n", l, m, plm.GetDPlmBar(l, m))
	}
	if level >= harmonics.SecondDerivative {
		fmt.Printf("ddPlm_bar(%d,%d) = %18.12e\n", l, m, plm.GetDDPlmBar(l, m))
	}
	if ml.Graph {
		plotLegendre(ml.MaxDegree, l, m, ml.Delay)
	}
}

// plotLegendre sweeps the open co-latitude interval and plots Plm_bar(theta).
// The engine evaluates one co-latitude at a time, so the sweep builds one
// engine per sample.
func plotLegendre(lMax, l, m int, delay time.Duration) {
	var (
		K     = 721
		X     = utils.NewRangeVector(1, K).Scale(180. / float64(K+1))
		Y     = utils.NewVector(K)
		chart *chart2d.Chart2D
	)
	for i := 0; i < K; i++ {
		plm := harmonics.NewPlm(lMax, X.AtVec(i)*math.Pi/180, harmonics.NoDerivatives)
		Y.SetVec(i, plm.GetPlmBar(l, m))
	}
	chart = chart2d.NewChart2D(1920, 1280, float32(X.Min()), float32(X.Max()),
		float32(Y.Min()), float32(Y.Max()))
	colorMap := utils2.NewColorMap(-1, 1, 1)
	chartName := fmt.Sprintf("Plm_bar(%d,%d)", l, m)
	go chart.Plot()
	if err := chart.AddSeries(chartName, X.DataP(), Y.DataP(),
		chart2d.NoGlyph, chart2d.Solid, colorMap.GetRGB(0)); err != nil {
		panic("unable to add graph series")
	}
	if delay != 0 {
		time.Sleep(delay)
	} else {
		fmt.Println("press ctrl-C to exit the plot")
		select {}
	}
}
