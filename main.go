package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	"github.com/BRI-EES-House/hvac_sizing_go/hvac_sizing"
)

func main() {
	cfg, err := hvac_sizing.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	var house_data string
	flag.StringVar(&house_data, "i", "", "JSON file or URL of the building to size")

	flag.StringVar(&cfg.OutputDir, "o", cfg.OutputDir, "output directory")
	flag.IntVar(&cfg.Workers, "workers", cfg.Workers, "number of units sized at once, 0 for no limit")
	flag.BoolVar(&cfg.Debug, "debug", cfg.Debug, "development logging")
	flag.BoolVar(&cfg.XLSX, "xlsx", cfg.XLSX, "also write result_sizing.xlsx")
	flag.BoolVar(&cfg.PDF, "pdf", cfg.PDF, "also write result_sizing.pdf")

	var pprof_enable bool
	flag.BoolVar(&pprof_enable, "pprof", false, "profile the run and save it to cpu.prof")

	flag.Parse()

	if house_data == "" {
		fmt.Fprintln(os.Stderr, "the -i option is required")
		flag.Usage()
		os.Exit(2)
	}

	if err := hvac_sizing.InitLogger(cfg.Debug); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer hvac_sizing.SyncLogger()
	log := hvac_sizing.GetSugaredLogger()

	if pprof_enable {
		f, err := os.Create("cpu.prof")
		if err != nil {
			log.Fatalw("creating cpu.prof", "error", err)
		}
		defer func() {
			if err := f.Close(); err != nil {
				log.Errorw("closing cpu.prof", "error", err)
			}
		}()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatalw("starting profiler", "error", err)
		}
		defer pprof.StopCPUProfile()
	}

	start := time.Now()

	err = hvac_sizing.Run(house_data, cfg)

	log.Infow("elapsed_time", "seconds", time.Since(start).Seconds())

	if err != nil {
		log.Errorw("run failed", "error", err)
		hvac_sizing.SyncLogger()
		pprof.StopCPUProfile()
		os.Exit(1)
	}
}
