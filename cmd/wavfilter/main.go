// Command wavfilter applies a designed IIR filter to a WAV file.
//
// Usage:
//
//	wavfilter [flags] -in input.wav -out output.wav
//
// Examples:
//
//	wavfilter -in voice.wav -out voice-lp.wav -type lowpass -order 4 -cutoff 3000
//	wavfilter -in drums.wav -out drums-hp.wav -type highpass -order 2 -cutoff 80
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/cynical-media/eDSP/dsp/core"
	"github.com/cynical-media/eDSP/dsp/filter/biquad"
	"github.com/cynical-media/eDSP/dsp/filter/design"
)

func main() {
	in := flag.String("in", "", "input WAV file")
	out := flag.String("out", "", "output WAV file")
	typ := flag.String("type", "lowpass", "filter type: lowpass or highpass")
	order := flag.Int("order", 4, "filter order")
	cutoff := flag.Float64("cutoff", 1000, "cutoff frequency in Hz")
	block := flag.Int("block", 4096, "processing block size in samples per channel")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: wavfilter [flags] -in input.wav -out output.wav\n\n")
		fmt.Fprintf(os.Stderr, "Filters a WAV file through a Butterworth filter cascade.\n")
		fmt.Fprintf(os.Stderr, "Each channel is filtered independently.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *in == "" || *out == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*in, *out, *typ, *order, *cutoff, *block); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(inPath, outPath, typ string, order int, cutoff float64, block int) error {
	inFile, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer inFile.Close()

	dec := wav.NewDecoder(inFile)
	if !dec.IsValidFile() {
		return fmt.Errorf("not a valid WAV file: %s", inPath)
	}
	if err := dec.FwdToPCM(); err != nil {
		return fmt.Errorf("seek to PCM data: %w", err)
	}

	format := dec.Format()
	channels := format.NumChannels
	rate := float64(format.SampleRate)
	bitDepth := int(dec.BitDepth)

	cascades, err := designCascades(typ, order, cutoff, rate, channels)
	if err != nil {
		return err
	}

	outFile, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer outFile.Close()

	enc := wav.NewEncoder(outFile, format.SampleRate, bitDepth, channels, int(dec.WavAudioFormat))

	cfg := core.ApplyProcessorOptions(
		core.WithSampleRate(rate),
		core.WithBlockSize(block),
	)

	if err := filterPCM(dec, enc, cascades, format, bitDepth, cfg.BlockSize); err != nil {
		return err
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalize output: %w", err)
	}

	return nil
}

func designCascades(typ string, order int, cutoff, rate float64, channels int) ([]*biquad.Cascade, error) {
	cascades := make([]*biquad.Cascade, channels)
	for ch := range channels {
		var (
			c   *biquad.Cascade
			err error
		)

		switch strings.ToLower(strings.TrimSpace(typ)) {
		case "lowpass", "lp":
			c, err = design.NewButterworthLowpass(order, cutoff, rate).Design()
		case "highpass", "hp":
			c, err = design.NewButterworthHighpass(order, cutoff, rate).Design()
		default:
			return nil, fmt.Errorf("unknown filter type %q (want lowpass or highpass)", typ)
		}
		if err != nil {
			return nil, fmt.Errorf("design filter: %w", err)
		}

		cascades[ch] = c
	}

	return cascades, nil
}

// filterPCM streams PCM chunks through per-channel cascades. Samples are
// scaled to [-1, 1) for processing and clamped back to the integer range,
// since a filter can overshoot the input peak.
func filterPCM(dec *wav.Decoder, enc *wav.Encoder, cascades []*biquad.Cascade, format *audio.Format, bitDepth, blockSize int) error {
	channels := format.NumChannels
	maxVal := float64(int(1) << (bitDepth - 1))

	buf := &audio.IntBuffer{
		Format:         format,
		SourceBitDepth: bitDepth,
		Data:           make([]int, blockSize*channels),
	}

	for {
		n, err := dec.PCMBuffer(buf)
		if err != nil && err != io.EOF {
			return fmt.Errorf("read PCM data: %w", err)
		}
		if n == 0 {
			break
		}

		for i := 0; i < n; i++ {
			ch := i % channels
			x := float64(buf.Data[i]) / maxVal
			y := cascades[ch].ProcessSample(x) * maxVal
			buf.Data[i] = int(core.Clamp(y, -maxVal, maxVal-1))
		}

		chunk := &audio.IntBuffer{
			Format:         format,
			SourceBitDepth: bitDepth,
			Data:           buf.Data[:n],
		}
		if err := enc.Write(chunk); err != nil {
			return fmt.Errorf("write PCM data: %w", err)
		}
	}

	return nil
}
