package main

import (
	"fmt"
	"io/ioutil"
	"net/http"
	"os"
	"time"

	arg "github.com/alexflint/go-arg"
	humanize "github.com/dustin/go-humanize"
	"github.com/kiteco/jsmin/kite-go/lang/javascript"
	"github.com/kiteco/jsmin/kite-go/lang/javascript/crosscheck"
	"github.com/kiteco/jsmin/kite-golib/errors"
	"github.com/kiteco/jsmin/kite-golib/kitelog"
	"github.com/montanaflynn/stats"
)

type options struct {
	Files      []string `arg:"positional" help:"files to transform, stdin if none"`
	Mangle     bool     `help:"rename local variables"`
	Toplevel   bool     `help:"also rename global variables, implies --mangle"`
	Pretty     bool     `help:"pretty print instead of minifying"`
	Indent     string   `help:"indentation when pretty printing"`
	Elide      bool     `help:"drop semicolons before closing braces"`
	Check      bool     `help:"verify that the output parses to the same program"`
	Crosscheck bool     `help:"verify that the output parses with tree-sitter"`
	Repeat     int      `help:"transform each file repeatedly and print timings"`
	Verbose    bool     `help:"print the time spent in each phase"`
	Listen     string   `help:"serve the minifier over HTTP on this address"`
}

func (o options) transform() javascript.Options {
	if o.Pretty {
		return javascript.Options{Indent: o.Indent}
	}
	return javascript.Options{
		Minify:          true,
		Mangle:          o.Mangle,
		MangleToplevel:  o.Toplevel,
		ElideSemicolons: o.Elide,
	}
}

func main() {
	args := options{Repeat: 1}
	arg.MustParse(&args)

	if args.Listen != "" {
		serve(args.Listen)
		return
	}

	logger := kitelog.New(os.Stderr, "jsmin: ")

	var errs errors.Errors
	if len(args.Files) == 0 {
		src, err := ioutil.ReadAll(os.Stdin)
		if err != nil {
			kitelog.Basic.Printf("error reading stdin: %v", err)
			os.Exit(1)
		}
		errs = errors.Append(errs, errors.WrapfOrNil(run(logger, args, "<stdin>", src), "<stdin>"))
	}
	for _, name := range args.Files {
		src, err := ioutil.ReadFile(name)
		if err == nil {
			err = run(logger, args, name, src)
		}
		errs = errors.Append(errs, errors.WrapfOrNil(err, "%s", name))
	}

	if errs != nil {
		logger.Println(errs)
		os.Exit(1)
	}
}

func serve(addr string) {
	m, err := javascript.NewMinifier(javascript.DefaultCacheSize)
	if err != nil {
		kitelog.Basic.Printf("error creating minifier: %v", err)
		os.Exit(1)
	}
	kitelog.Basic.Printf("listening on %s", addr)
	if err := http.ListenAndServe(addr, javascript.NewEndpoint(m)); err != nil {
		kitelog.Basic.Printf("error serving: %v", err)
		os.Exit(1)
	}
}

// run transforms one file and writes the result to stdout
func run(logger *kitelog.Logger, args options, name string, src []byte) error {
	opts := args.transform()

	var times []float64
	var out string
	var durations kitelog.Durations
	for i := 0; i < args.Repeat || i == 0; i++ {
		start := time.Now()
		var err error
		out, durations, err = javascript.TransformTimed(src, opts)
		if err != nil {
			return err
		}
		times = append(times, float64(time.Since(start)))
	}

	if args.Check {
		if err := javascript.Check(src, opts); err != nil {
			return errors.Wrapf(err, "round trip check failed")
		}
	}
	if args.Crosscheck {
		if err := crosscheck.Validate([]byte(out)); err != nil {
			return errors.Wrapf(err, "output rejected by tree-sitter")
		}
	}

	if _, err := fmt.Fprint(os.Stdout, out); err != nil {
		return err
	}

	logger.Printf("%s: %s -> %s (%s)", name,
		humanize.Bytes(uint64(len(src))), humanize.Bytes(uint64(len(out))), savings(len(src), len(out)))
	if args.Verbose {
		durations.Flush(logger)
	}
	if args.Repeat > 1 {
		printTimes(logger, times)
	}
	return nil
}

func savings(in, out int) string {
	if in == 0 {
		return "empty"
	}
	return fmt.Sprintf("%.1f%% of the input", 100*float64(out)/float64(in))
}

func printTimes(logger *kitelog.Logger, times []float64) {
	median, _ := stats.Median(times)
	mean, _ := stats.Mean(times)
	stddev, _ := stats.StdDevS(times)
	min, _ := stats.Min(times)
	max, _ := stats.Max(times)
	logger.Printf("%d runs: median %v, mean %v, stddev %v, min %v, max %v", len(times),
		time.Duration(median), time.Duration(mean), time.Duration(stddev), time.Duration(min), time.Duration(max))
}
