// Command redpath answers colored-path queries over instance files.
//
// Usage:
//
//	redpath -input graph.txt -variant few [flags]
//
// The answer convention on stdout keeps existing scripts working:
// none/few/many print a number (path length or red count, -1 when no
// path) followed by the witness line; alternate/some print true+witness,
// false, or !?; many prints !? when the search stayed undetermined.
// Diagnostics go to stderr through the logger, never to stdout.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/redpath/graphio"
	"github.com/katalvlaran/redpath/logger"
	"github.com/katalvlaran/redpath/solve"
)

var (
	inputPath     = flag.String("input", "", "instance file path (required)")
	variantName   = flag.String("variant", "", "query variant: none|alternate|few|some|many (required)")
	forceDirected = flag.Bool("force-directed", false, "treat every edge as directed from->to")
	modeName      = flag.String("mode", "exact", "many search mode: exact|greedy|beam")
	budget        = flag.Duration("budget", 10*time.Second, "wall-clock budget for the exact search")
	beamWidth     = flag.Int("beam", 16, "frontier width for beam mode")
	restarts      = flag.Int("restarts", 128, "walk count for greedy mode")
	seed          = flag.Int64("seed", 0, "heuristic RNG seed (0 = fixed default stream)")
	configPath    = flag.String("config", "", "optional YAML config with flag defaults")
	verbose       = flag.Bool("verbose", false, "debug logging")
)

func main() {
	flag.Parse()

	newLogger := logger.New
	if *verbose {
		newLogger = logger.NewDebug
	}
	log, err := newLogger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(log); err != nil {
		log.Error("redpath failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(log *zap.Logger) error {
	if *configPath != "" {
		if err := applyConfig(*configPath); err != nil {
			return err
		}
	}
	if *inputPath == "" || *variantName == "" {
		flag.Usage()

		return fmt.Errorf("both -input and -variant are required")
	}

	variant, err := parseVariant(*variantName)
	if err != nil {
		return err
	}
	mode, err := parseMode(*modeName)
	if err != nil {
		return err
	}

	f, err := os.Open(*inputPath)
	if err != nil {
		return err
	}
	defer f.Close()

	inst, err := graphio.Parse(f)
	if err != nil {
		return err
	}
	if declared, marked := inst.DeclaredRed, len(inst.Graph.RedIndices()); declared != marked {
		log.Warn("header red count disagrees with markers",
			zap.Int("declared", declared), zap.Int("marked", marked))
	}
	log.Debug("instance loaded",
		zap.Int("vertices", inst.Graph.Order()),
		zap.Int("edges", inst.Graph.Size()),
		zap.String("variant", variant.String()))

	opts := []solve.Option{
		solve.WithMode(mode),
		solve.WithTimeLimit(*budget),
		solve.WithBeamWidth(*beamWidth),
		solve.WithRestarts(*restarts),
		solve.WithSeed(*seed),
	}
	if *forceDirected {
		opts = append(opts, solve.WithForceDirected())
	}

	started := time.Now()
	res, err := solve.Solve(inst.Graph, inst.Source, inst.Target, variant, opts...)
	if err != nil {
		return err
	}
	log.Debug("solved", zap.Duration("elapsed", time.Since(started)))
	if res.Outcome == solve.OutcomeTrue && !res.Proven {
		log.Warn("answer is a best-effort incumbent, not a proven optimum",
			zap.Int("red_count", res.RedCount))
	}

	printResult(variant, res)

	return nil
}

// printResult emits the per-variant stdout convention.
func printResult(variant solve.Variant, res solve.Result) {
	switch variant {
	case solve.VariantAlternate, solve.VariantSome:
		switch res.Outcome {
		case solve.OutcomeTrue:
			fmt.Println("true")
			fmt.Println(strings.Join(res.Path, " "))
		case solve.OutcomeUndetermined:
			fmt.Println("!?")
		default:
			fmt.Println("false")
		}
	case solve.VariantNone:
		if res.Outcome != solve.OutcomeTrue {
			fmt.Println(-1)

			return
		}
		fmt.Println(len(res.Path) - 1)
		fmt.Println(strings.Join(res.Path, " "))
	default: // few, many
		switch res.Outcome {
		case solve.OutcomeTrue:
			fmt.Println(res.RedCount)
			fmt.Println(strings.Join(res.Path, " "))
		case solve.OutcomeUndetermined:
			fmt.Println("!?")
		default:
			fmt.Println(-1)
		}
	}
}

// applyConfig loads flag defaults from a YAML file; flags given on the
// command line keep their values.
func applyConfig(path string) error {
	viper.SetConfigFile(path)
	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("config file: %w", err)
	}

	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	for key, apply := range map[string]func() error{
		"input":          func() error { return flag.Set("input", viper.GetString("input")) },
		"variant":        func() error { return flag.Set("variant", viper.GetString("variant")) },
		"force-directed": func() error { return flag.Set("force-directed", fmt.Sprint(viper.GetBool("force-directed"))) },
		"mode":           func() error { return flag.Set("mode", viper.GetString("mode")) },
		"budget":         func() error { return flag.Set("budget", viper.GetString("budget")) },
		"beam":           func() error { return flag.Set("beam", fmt.Sprint(viper.GetInt("beam"))) },
		"restarts":       func() error { return flag.Set("restarts", fmt.Sprint(viper.GetInt("restarts"))) },
		"seed":           func() error { return flag.Set("seed", fmt.Sprint(viper.GetInt64("seed"))) },
	} {
		if !set[key] && viper.IsSet(key) {
			if err := apply(); err != nil {
				return fmt.Errorf("config key %q: %w", key, err)
			}
		}
	}

	return nil
}

func parseVariant(name string) (solve.Variant, error) {
	switch strings.ToLower(name) {
	case "none":
		return solve.VariantNone, nil
	case "alternate":
		return solve.VariantAlternate, nil
	case "few":
		return solve.VariantFew, nil
	case "some":
		return solve.VariantSome, nil
	case "many":
		return solve.VariantMany, nil
	default:
		return 0, fmt.Errorf("%w: %q", solve.ErrUnknownVariant, name)
	}
}

func parseMode(name string) (solve.SearchMode, error) {
	switch strings.ToLower(name) {
	case "exact":
		return solve.ModeExact, nil
	case "greedy":
		return solve.ModeGreedy, nil
	case "beam":
		return solve.ModeBeam, nil
	default:
		return 0, fmt.Errorf("%w: %q", solve.ErrUnknownMode, name)
	}
}
