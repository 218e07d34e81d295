// chaosgame plays the chaos game (https://en.wikipedia.org/wiki/Chaos_game)
// to generate the points of a fractal. One "x y" pair is printed per line,
// ready for a plotting tool like gnuplot:
//
//	chaosgame sierpinski-triangle > plots/sierpinski-triangle.txt
//	gnuplot> plot 'plots/sierpinski-triangle.txt' with points
//
// Watching the fractal build up:
//
//	gnuplot> do for [i=0:1000000] { plot 'plots/vicsek.txt' every ::0::i }
package main

import (
	"bufio"
	"log"
	"os"

	"gopkg.in/alecthomas/kingpin.v2"

	"chaosgame/chaos"
)

const iterations = 1000000

var preset = kingpin.Arg("preset",
	"Fractal to generate: sierpinski-triangle, square-one, square-two or vicsek.").
	Default("sierpinski-triangle").String()

func main() {
	kingpin.Parse()

	out := bufio.NewWriter(os.Stdout)
	if err := chaos.Run(out, *preset, iterations); err != nil {
		log.Fatal(err)
	}
	if err := out.Flush(); err != nil {
		log.Fatal(err)
	}
}
