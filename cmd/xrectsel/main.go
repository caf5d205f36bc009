// xrectsel prints the geometry of an interactively selected screen region,
// for use by screenshot and recording scripts:
//
//	xrectsel              -> 640x480+97+153
//	xrectsel "%x,%y %wx%h" -> 97,153 640x480
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"golang.design/x/clipboard"

	"xrectsel/capture"
	"xrectsel/config"
	"xrectsel/format"
	"xrectsel/logutil"
	"xrectsel/xselect"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "xrectsel: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	captureFile := flag.String("capture", "", "save the selected region to `FILE` as PNG")
	copyOut := flag.Bool("copy", false, "also copy the rendered text to the clipboard")
	verbose := flag.Bool("v", false, "log diagnostics to stderr")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() > 1 {
		return fmt.Errorf("too many arguments; expected at most one format string")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %v", err)
	}
	logutil.Setup(cfg.EnableFileLogging, *verbose)

	fmtStr := resolveFormat(cfg, flag.Args())
	if *captureFile == "" {
		*captureFile = cfg.CaptureFile
	}
	doCopy := *copyOut || cfg.CopyToClipboard

	conn, err := xselect.Connect()
	if err != nil {
		return err
	}
	defer conn.Close()

	log.Printf("selecting region on display %q", os.Getenv("DISPLAY"))
	region, err := xselect.Select(conn)
	if err != nil {
		return fmt.Errorf("failed to select a rectangular region: %v", err)
	}
	log.Printf("selected region: %+v", region)

	var copied bytes.Buffer
	out := io.Writer(os.Stdout)
	if doCopy {
		out = io.MultiWriter(os.Stdout, &copied)
	}
	if err := format.Expand(out, fmtStr, region); err != nil {
		return err
	}

	if doCopy {
		if err := clipboard.Init(); err != nil {
			return fmt.Errorf("failed to initialize clipboard: %v", err)
		}
		clipboard.Write(clipboard.FmtText, copied.Bytes())
		log.Printf("copied %d bytes to clipboard", copied.Len())
	}

	if *captureFile != "" {
		if err := capture.Save(region, *captureFile); err != nil {
			return err
		}
		log.Printf("saved region capture to %s", *captureFile)
	}

	return nil
}

// resolveFormat picks the positional format argument when present, else the
// configured default.
func resolveFormat(cfg *config.Config, args []string) string {
	if len(args) >= 1 {
		return args[0]
	}
	return cfg.Format
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: xrectsel [options] [FORMAT]\n\n")
	fmt.Fprintf(os.Stderr, "FORMAT expands %%x %%y (left/top offset), %%X %%Y (right/bottom offset),\n")
	fmt.Fprintf(os.Stderr, "%%w %%h (size), %%b %%d (root border/depth) and %%%% (literal %%).\n")
	fmt.Fprintf(os.Stderr, "A specifier may round down to a multiple, e.g. %%[10]x. Default: %q\n\n", config.DefaultFormat)
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}
