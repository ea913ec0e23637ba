package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"sort"

	"golang.org/x/term"

	"github.com/propkit/javaprops/codec"
	"github.com/propkit/javaprops/props"
)

func main() {
	var (
		file        = flag.String("file", "", "Path to .properties file")
		getKey      = flag.String("get", "", "Print the value of one key and exit")
		asJSON      = flag.Bool("json", false, "Re-emit the document as JSON")
		rewrite     = flag.Bool("sort", false, "Re-emit the document as sorted properties text")
		sep         = flag.String("sep", "=", "Key/value separator for re-emitted output")
		interactive = flag.Bool("i", false, "Interactive browse mode")
	)
	flag.Parse()

	if *file == "" {
		fmt.Fprintln(os.Stderr, "Usage: propview -file <f.properties> [-get key] [-json] [-sort]")
		fmt.Fprintln(os.Stderr, "       propview -file <f.properties> -i  (interactive mode)")
		os.Exit(1)
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode needs a terminal")
			os.Exit(1)
		}
		if err := runInteractive(*file); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*file, *getKey, *sep, *asJSON, *rewrite); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(file, getKey, sep string, asJSON, rewrite bool) error {
	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	doc, err := props.Load(f)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}

	if getKey != "" {
		value, ok := doc[getKey]
		if !ok {
			return fmt.Errorf("key %q not found", getKey)
		}
		fmt.Println(value)
		return nil
	}

	if asJSON {
		out, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	if rewrite {
		w := props.NewWriter(os.Stdout)
		if err := w.SetSeparator(sep); err != nil {
			return err
		}
		if err := codec.NewEncoder().Encode(doc, w); err != nil {
			return err
		}
		return w.Flush()
	}

	// Default: summarize the document.
	keys := make([]string, 0, len(doc))
	for k := range doc {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fmt.Printf("File: %s\n", file)
	fmt.Printf("Keys: %d\n\n", len(keys))
	for _, k := range keys {
		fmt.Printf("%s=%s\n", k, doc[k])
	}
	return nil
}
