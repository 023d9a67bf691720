package main

// uartanalyze decodes logic-analyzer captures of a bit-banged serial
// line. It expects three Saleae binary digital files: the data line plus
// the bit-clock and frame-enable channels exported next to it (see
// sim.WriteSerialCaptures). Frames are recovered with a stock mode-0 SPI
// scanner and bit-reversed, since the serial line is LSB first.

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"math/bits"
	"os"

	"log/slog"

	"github.com/soypat/saleae"
	"github.com/soypat/saleae/analyzers"
	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/stat"
)

func main() {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	slog.SetDefault(slog.New(handler))
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "uartanalyze - decode Saleae digital captures of a bit-banged serial line.\n\tUsage:\n")
		flag.PrintDefaults()
	}
	data := flag.String("f-data", "data.bin", "Input filename: serial data line.")
	clk := flag.String("f-clk", "clk.bin", "Input filename: synthetic bit clock.")
	enable := flag.String("f-cs", "cs.bin", "Input filename: synthetic frame enable.")
	output := flag.String("o", "serial.txt", "Output filename for the decoded byte stream.")
	flag.Parse()

	if err := run(*data, *clk, *enable, *output); err != nil {
		log.Fatal(err.Error())
	}
}

func run(fdata, fclk, fenable, output string) error {
	dataf, err := opendigital(fdata)
	if err != nil {
		return err
	}
	clkf, err := opendigital(fclk)
	if err != nil {
		return err
	}
	enablef, err := opendigital(fenable)
	if err != nil {
		return err
	}
	spi := analyzers.SPI{}
	txs, _ := spi.Scan(clkf, enablef, dataf, dataf)
	if len(txs) == 0 {
		return errors.New("no serial frames found in capture")
	}

	fp, err := os.Create(output)
	if err != nil {
		return err
	}
	defer fp.Close()

	var starts []float64
	var decoded []byte
	for _, tx := range txs {
		starts = append(starts, tx.StartTime())
		for _, b := range tx.SDO {
			// The SPI scanner assembles MSB first; the wire is LSB first.
			decoded = append(decoded, bits.Reverse8(b))
		}
	}
	if _, err := fp.Write(decoded); err != nil {
		return err
	}
	slog.Info("decoded",
		slog.Int("frames", len(txs)),
		slog.Int("bytes", len(decoded)),
		slog.String("output", output),
	)

	// Frame spacing statistics. Jitter here means the delay primitive
	// clocking the bits is drifting.
	if len(starts) > 2 {
		gaps := make([]float64, len(starts)-1)
		for i := range gaps {
			gaps[i] = starts[i+1] - starts[i]
		}
		mean, std := stat.MeanStdDev(gaps, nil)
		small, big := gaps[0], gaps[0]
		for _, g := range gaps[1:] {
			small = min(small, g)
			big = max(big, g)
		}
		slog.Info("frame spacing",
			slog.Float64("mean_s", mean),
			slog.Float64("stddev_s", std),
			slog.Float64("min_s", small),
			slog.Float64("max_s", big),
		)
	}
	return nil
}

func opendigital(filename string) (*saleae.DigitalFile, error) {
	fp, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	df, err := saleae.ReadDigitalFile(fp)
	if err != nil {
		return nil, err
	}
	return df, nil
}

func min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

func max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}
