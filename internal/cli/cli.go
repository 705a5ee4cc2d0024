// Package cli implements the seedselect command line.
package cli

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/hupe1980/seedselect"
	"github.com/hupe1980/seedselect/digest"
)

// CLI is the root command.
type CLI struct {
	Select    SelectCmd    `cmd:"" help:"Select n candidates from a pool"`
	Reference ReferenceCmd `cmd:"" help:"Print the reference digest of a draw"`
}

// Output holds the streams commands write to.
type Output struct {
	Stdout io.Writer
	Stderr io.Writer
}

// Stdio returns an Output bound to the process streams.
func Stdio() *Output {
	return &Output{Stdout: os.Stdout, Stderr: os.Stderr}
}

var errNoSeed = errors.New("one of --seed or --seed-hex is required")

// DrawFlags identify a single draw.
type DrawFlags struct {
	Seed      string `xor:"seed" env:"SEEDSELECT_SEED" help:"Seed as a UTF-8 string"`
	SeedHex   string `name:"seed-hex" xor:"seed" env:"SEEDSELECT_SEED_HEX" help:"Seed as hex"`
	Seq       uint64 `default:"0" env:"SEEDSELECT_SEQ" help:"Sequence number of the draw (round, epoch)"`
	Name      string `default:"" env:"SEEDSELECT_NAME" help:"Selection context name"`
	Algorithm string `default:"sha256" env:"SEEDSELECT_ALGORITHM" help:"Digest algorithm (sha256, sha512-256, sha3-256, keccak256, blake2b-256)"`
	Layout    string `default:"canonical" enum:"canonical,compat" env:"SEEDSELECT_LAYOUT" help:"Reference preimage layout"`
}

func (f *DrawFlags) validate() error {
	if f.Seed == "" && f.SeedHex == "" {
		return errNoSeed
	}
	if _, err := digest.ParseAlgorithm(f.Algorithm); err != nil {
		return err
	}
	return nil
}

func (f *DrawFlags) seed() ([]byte, error) {
	if f.SeedHex != "" {
		seed, err := hex.DecodeString(strings.TrimPrefix(f.SeedHex, "0x"))
		if err != nil {
			return nil, fmt.Errorf("--seed-hex: %w", err)
		}
		return seed, nil
	}
	if f.Seed == "" {
		return nil, errNoSeed
	}
	return []byte(f.Seed), nil
}

func (f *DrawFlags) digest() (digest.Func, error) {
	alg, err := digest.ParseAlgorithm(f.Algorithm)
	if err != nil {
		return nil, err
	}
	return digest.Provider(alg)
}

func (f *DrawFlags) layout() (seedselect.Layout, error) {
	return seedselect.ParseLayout(f.Layout)
}

// LogFlags configure diagnostics on stderr.
type LogFlags struct {
	LogLevel  string `default:"warn" enum:"debug,info,warn,error" env:"SEEDSELECT_LOG_LEVEL" help:"Log level"`
	LogFormat string `default:"text" enum:"text,json" env:"SEEDSELECT_LOG_FORMAT" help:"Log format"`
}

func (f *LogFlags) logger(w io.Writer) (*seedselect.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(f.LogLevel)); err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	if f.LogFormat == "json" {
		return seedselect.NewLogger(slog.NewJSONHandler(w, opts)), nil
	}
	return seedselect.NewLogger(slog.NewTextHandler(w, opts)), nil
}
