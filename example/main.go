package main

import (
	"flag"
	"fmt"
	"fsv"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

func main() {
	// Demo driver: build a view, then compose, split and substr it.
	text := flag.String("text", "Hello world", "text to view")
	filters := flag.String("filter", "all", "comma separated predicate names, composed in order")
	delim := flag.String("split", "", "delimiter to split the filtered text on")
	start := flag.Int("start", 0, "substr start")
	length := flag.Int("length", 0, "substr length, <= 0 means to the end")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	if *verbose {
		l := logrus.New()
		l.SetLevel(logrus.DebugLevel)
		fsv.SetLogger(l)
	}

	if err := run(*text, *filters, *delim, *start, *length); err != nil {
		fmt.Printf("error: %v\n", err)
		os.Exit(1)
	}
}

func run(text, filters, delim string, start, length int) error {
	fs, err := parseFilters(filters)
	if err != nil {
		return err
	}
	view := fsv.Compose(fsv.New(text), fs...)
	fmt.Printf("view   %q (size %d)\n", view.String(), view.Size())

	if delim != "" {
		for i, seg := range fsv.Split(view, fsv.New(delim)) {
			fmt.Printf("split  [%d] %q\n", i, seg.String())
		}
	}

	sub := fsv.Substr(view, start, length)
	fmt.Printf("substr %q\n", sub.String())
	return nil
}

// parseFilters resolves each name against the predicate registry.
func parseFilters(names string) ([]fsv.Filter, error) {
	var out []fsv.Filter
	for _, name := range strings.Split(names, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		f, ok := fsv.LookupPredicate(name)
		if !ok {
			return nil, fmt.Errorf("unknown predicate %q (known: %s)", name, strings.Join(fsv.PredicateNames(), ", "))
		}
		out = append(out, f)
	}
	return out, nil
}
