package cmd

import (
	"fmt"
	"io"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

// Formatter renders a command result to a writer.
type Formatter interface {
	Format(w io.Writer, data interface{}) error
}

// FormatterFunc adapts a function to the Formatter interface.
type FormatterFunc func(w io.Writer, data interface{}) error

// Format calls the wrapped function.
func (f FormatterFunc) Format(w io.Writer, data interface{}) error {
	return f(w, data)
}

func yamlFormatter() FormatterFunc {
	return func(w io.Writer, data interface{}) error {
		b, err := yaml.Marshal(data)
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	}
}

func jsonFormatter() FormatterFunc {
	return func(w io.Writer, data interface{}) error {
		b, err := jsoniter.MarshalIndent(data, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	}
}

// formatters registered per command, keyed by command path
var commandFormatters = map[*cobra.Command]map[string]Formatter{}

// addFormatFlag registers the output flag on a command, with yaml and
// json always available plus any command-specific formatters.
func addFormatFlag(cmd *cobra.Command, defaultFormat string, extra ...map[string]Formatter) {
	available := map[string]Formatter{
		"yaml": yamlFormatter(),
		"json": jsonFormatter(),
	}
	for _, m := range extra {
		for k, v := range m {
			available[k] = v
		}
	}
	if defaultFormat == "" {
		defaultFormat = "yaml"
	}
	commandFormatters[cmd] = available
	cmd.Flags().StringVarP(&portalFlags.root.format, "output", "o", defaultFormat,
		"The output format to use")
}

// print renders the data with the formatter selected on the command.
func print(cmd *cobra.Command, data interface{}) {
	available := commandFormatters[cmd]
	f, ok := available[portalFlags.root.format]
	if !ok {
		wrapFatalln(fmt.Sprintf("unknown output format %q", portalFlags.root.format), nil)
		return
	}
	if err := f.Format(os.Stdout, data); err != nil {
		wrapFatalln("format output", err)
	}
}
