package main

import (
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"runtime/pprof"
	"strings"
	"time"

	arg "github.com/alexflint/go-arg"
	"github.com/kiteco/jsmin/kite-go/lang/javascript/ast"
	"github.com/kiteco/jsmin/kite-go/lang/javascript/parser"
	"github.com/kr/pretty"
	"github.com/montanaflynn/stats"
)

func main() {
	args := struct {
		File      string `arg:"positional,required"`
		Repeat    uint64 `arg:"help:parse the same source file repeatedly (for performance)"`
		Print     bool   `arg:"help:print the AST"`
		Positions bool   `arg:"help:include node positions in the printed AST"`
		Go        bool   `arg:"help:print the AST as Go values"`
		Trace     bool   `arg:"help:trace the parser productions"`
		Time      bool   `arg:"help:print the parse duration"`
		Profile   string `arg:"help:filename to write cpu profile"`
	}{
		Repeat: 1,
		Print:  true,
		Time:   true,
	}
	arg.MustParse(&args)

	if args.Profile != "" {
		if !strings.HasSuffix(args.Profile, ".prof") {
			args.Profile = args.Profile + ".prof"
		}

		f, err := os.Create(args.Profile)
		if err != nil {
			log.Fatalln(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	src, err := ioutil.ReadFile(args.File)
	if err != nil {
		log.Fatalln(err)
	}

	opts := parser.DefaultOptions
	opts.Trace = args.Trace

	var times []float64
	var prog *ast.Program
	for i := uint64(0); i < args.Repeat; i++ {
		begin := time.Now()
		prog, err = parser.Parse(src, opts)
		if err != nil {
			log.Fatalf("%s:%v\n", args.File, err)
		}
		times = append(times, float64(time.Since(begin)))
		// only trace the first run
		opts.Trace = false
	}

	switch {
	case args.Print && args.Go:
		pretty.Println(prog)
	case args.Print && args.Positions:
		ast.PrintPositions(prog, os.Stdout, "  ")
	case args.Print:
		ast.Print(prog, os.Stdout, "  ")
	}

	if args.Time {
		fmt.Printf("Parse time (%d runs):\n", len(times))
		f, _ := stats.Median(times)
		fmt.Printf("  Median: %v\n", time.Duration(f))
		f, _ = stats.Mean(times)
		fmt.Printf("  Mean: %v\n", time.Duration(f))
		f, _ = stats.StdDevS(times)
		fmt.Printf("  StdDev: %v\n", time.Duration(f))
		f, _ = stats.Min(times)
		fmt.Printf("  Min: %v\n", time.Duration(f))
		f, _ = stats.Max(times)
		fmt.Printf("  Max: %v\n", time.Duration(f))
	}
}
