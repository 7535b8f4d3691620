package cli

import (
	"fmt"
	"strings"

	"github.com/morikuni/failure/v2"
	"github.com/samber/lo"
	"github.com/spf13/pflag"
)

type outputFormat string

const (
	formatAuto     outputFormat = "auto"
	formatRaw      outputFormat = "raw"
	formatMarkdown outputFormat = "markdown"
)

var outputFormats = []outputFormat{formatAuto, formatRaw, formatMarkdown}

// formatFlag selects how show prints a document
type formatFlag struct {
	Value outputFormat
}

// String implements pflag.Value.
func (f *formatFlag) String() string {
	return string(f.Value)
}

func (f *formatFlag) Set(value string) error {
	for _, v := range outputFormats {
		if string(v) == value {
			f.Value = v
			return nil
		}
	}
	names := lo.Map(outputFormats, func(v outputFormat, _ int) string { return string(v) })
	return failure.New(InvalidFormat,
		failure.Message(fmt.Sprintf("Unknown format %q, expected one of %s", value, strings.Join(names, ", "))),
		failure.Context{
			"format": value,
		},
	)
}

func (f *formatFlag) Type() string {
	return "format"
}

var _ pflag.Value = &formatFlag{}
