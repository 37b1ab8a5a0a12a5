// Command noisemap renders a horizontal slice of the configured noise sampler
// to a grayscale PNG. It exists to compare the legacy algorithm against the
// replacement candidates before committing a world to one of them.
package main

import (
	"flag"
	"image"
	"image/png"
	"log/slog"
	"math"
	"os"

	"github.com/dm-vev/strata/terrain"
)

func main() {
	var (
		confPath = flag.String("config", "terrain.toml", "path to the terrain config, created with defaults when missing")
		out      = flag.String("out", "noisemap.png", "output PNG path")
		size     = flag.Int("size", 512, "image size in pixels")
		step     = flag.Float64("step", 0.05, "world units per pixel")
		y        = flag.Float64("y", 0, "height of the sampled slice")
	)
	flag.Parse()
	log := slog.Default()

	if *size < 1 {
		log.Error("size must be at least 1 pixel", "size", *size)
		os.Exit(1)
	}

	uc, err := terrain.ReadConfig(*confPath)
	if err != nil {
		log.Error("read config: " + err.Error())
		os.Exit(1)
	}
	conf, err := uc.Config(log)
	if err != nil {
		log.Error("parse config: " + err.Error())
		os.Exit(1)
	}
	eng, err := conf.New()
	if err != nil {
		log.Error("create engine: " + err.Error())
		os.Exit(1)
	}
	defer eng.Close()

	values := make([]float64, (*size)*(*size))
	lo, hi := math.Inf(1), math.Inf(-1)
	for pz := 0; pz < *size; pz++ {
		for px := 0; px < *size; px++ {
			v := eng.Sample(float64(px)*(*step), *y, float64(pz)*(*step))
			values[pz*(*size)+px] = v
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}

	span := hi - lo
	if span == 0 {
		span = 1
	}
	img := image.NewGray(image.Rect(0, 0, *size, *size))
	for i, v := range values {
		img.Pix[i] = uint8(255 * (v - lo) / span)
	}

	f, err := os.Create(*out)
	if err != nil {
		log.Error("create output: " + err.Error())
		os.Exit(1)
	}
	if err := png.Encode(f, img); err != nil {
		log.Error("encode png: " + err.Error())
		os.Exit(1)
	}
	if err := f.Close(); err != nil {
		log.Error("close output: " + err.Error())
		os.Exit(1)
	}
	log.Info("Noise map written.", "path", *out, "algorithm", string(conf.Algorithm), "min", lo, "max", hi)
}
