// Command mustache renders a Mustache template against a YAML or JSON
// data file and writes the result to stdout.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/itsatony/go-mustache"
)

func main() {
	partialsDir := flag.String("partials-dir", "", "directory of *.mustache partials")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [--partials-dir DIR] TEMPLATE DATA\n", os.Args[0])
	}
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(flag.Arg(0), flag.Arg(1), *partialsDir); err != nil {
		fmt.Fprintln(os.Stderr, "mustache:", err)
		os.Exit(1)
	}
}

func run(templatePath, dataPath, partialsDir string) error {
	source, err := os.ReadFile(templatePath)
	if err != nil {
		return err
	}

	rawData, err := os.ReadFile(dataPath)
	if err != nil {
		return err
	}

	var decoded interface{}
	if err := yaml.Unmarshal(rawData, &decoded); err != nil {
		return fmt.Errorf("decoding %s: %w", dataPath, err)
	}
	data := mustache.FromInterface(decoded)

	opts := []mustache.Option{}
	if partialsDir != "" {
		opts = append(opts, mustache.WithPartialStore(
			mustache.NewFilesystemPartialStore(os.DirFS(partialsDir), "")))
	}
	engine, err := mustache.New(opts...)
	if err != nil {
		return err
	}

	out, err := engine.Execute(context.Background(), string(source), data)
	if err != nil {
		return err
	}

	_, err = os.Stdout.WriteString(out)
	return err
}
