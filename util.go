package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/xmit-co/xkey/keyring"
	"github.com/xmit-co/xkey/slip21"
)

var (
	pathColor        = color.New(color.FgHiCyan)
	fingerprintColor = color.New(color.FgHiBlack)
)

func parallelism(fallback int) int {
	if s := os.Getenv("XKEY_PARALLELISM"); s != "" {
		if v, err := strconv.Atoi(s); err == nil {
			return v
		}
	}
	if fallback > 0 {
		return fallback
	}
	return 4
}

// hasFlag removes flag from args and reports whether it was present.
func hasFlag(args []string, flag string) ([]string, bool) {
	var rest []string
	found := false
	for _, a := range args {
		if a == flag {
			found = true
			continue
		}
		rest = append(rest, a)
	}
	return rest, found
}

func modeFor(json bool) slip21.Mode {
	if json {
		return slip21.Text
	}
	return slip21.Binary
}

func printEntries(w io.Writer, k *keyring.Keyring) {
	fmt.Fprintf(w, "master %s\n", fingerprintColor.Sprint(k.Master))
	for _, e := range k.Entries {
		fmt.Fprintf(w, "%s %s\n", fingerprintColor.Sprint(e.Node.Fingerprint()), pathColor.Sprint(e.Path))
	}
}
