/*
 * plot.go, part of gostoich
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2.1 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 * goStoich is currently developed at the Universidad de Santiago de Chile
 * (USACH)
 *
*/

//Package stoichplot draws mass-composition charts for compounds.
package stoichplot

import (
	"fmt"
	"image/color"

	stoich "github.com/rmera/gostoich"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func basicCompositionPlot(title string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "Element"
	p.Y.Label.Text = "Mass contribution (g/mol)"
	p.Add(plotter.NewGrid())
	return p
}

//CompositionPlot draws a bar chart with the contribution of each element to
//the molar mass in data. Bars follow the breakdown's order, i.e. ascending
//atomic number. The chart is saved as plotname.png.
func CompositionPlot(data *stoich.MolarMassResult, title, plotname string) error {
	if data == nil {
		panic("Given nil data")
	}
	vals := make(plotter.Values, len(data.Components))
	names := make([]string, len(data.Components))
	for i, c := range data.Components {
		vals[i] = c.Contribution
		names[i] = c.Symbol
	}
	bars, err := plotter.NewBarChart(vals, vg.Points(25))
	if err != nil {
		return err
	}
	bars.LineStyle.Width = vg.Length(0)
	bars.Color = color.RGBA{R: 60, G: 120, B: 180, A: 255}
	p := basicCompositionPlot(title)
	p.Add(bars)
	p.NominalX(names...)
	filename := fmt.Sprintf("%s.png", plotname)
	return p.Save(5*vg.Inch, 5*vg.Inch, filename)
}

//FormulaPlot computes the molar mass breakdown of formula (a nil Elementer
//selects the built-in periodic table) and plots it with CompositionPlot.
func FormulaPlot(formula, plotname string, elems stoich.Elementer) error {
	m, err := stoich.MolarMass(formula, elems)
	if err != nil {
		return err
	}
	return CompositionPlot(m, m.String(), plotname)
}
