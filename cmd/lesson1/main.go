// Command lesson1 walks through basic image-array operations: pixel
// access and mutation, array properties, channel split/merge and
// saturating addition.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	imgarray "github.com/ajroetker/go-imgarray"
	"github.com/ajroetker/go-imgarray/internal/config"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("lesson1: ")

	cfg, err := config.Load(".")
	if err != nil {
		log.Fatal(err)
	}
	if err := run(cfg, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(cfg config.Config, w io.Writer) error {
	// Loads as BGR.
	img, err := imgarray.Read(cfg.ImagePath)
	if err != nil {
		return err
	}
	row, col := cfg.Probe.Row, cfg.Probe.Col

	// 1. Accessing and modifying pixel values
	px, err := img.Pixel(row, col)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, px)

	blue, err := img.At(row, col, imgarray.Blue)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, blue)

	if err := img.SetPixel(row, col, 255, 255, 255); err != nil {
		return err
	}
	px, err = img.Pixel(row, col)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, px)

	// 2. Accessing image properties
	fmt.Fprintln(w, img.Shape())
	fmt.Fprintln(w, img.Size())
	fmt.Fprintln(w, img.DType())

	// Splitting and merging image channels
	planes, err := imgarray.Split(img)
	if err != nil {
		return err
	}
	merged, err := imgarray.Merge(planes...)
	if err != nil {
		return err
	}
	if !merged.Equal(img) {
		return errors.New("merged channels differ from the source image")
	}

	// Adding images: 250 + 10 saturates to 255.
	sum, err := imgarray.Add(imgarray.Vector(250), imgarray.Vector(10))
	if err != nil {
		return err
	}
	fmt.Fprintln(w, sum)
	return nil
}
