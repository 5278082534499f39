package main

import (
	"fmt"
	"log"
	"os"
	"syscall"

	"github.com/xmit-co/xkey/config"
	"github.com/xmit-co/xkey/keyring"
	"github.com/xmit-co/xkey/slip21"
	"golang.org/x/term"
)

func usage() {
	fmt.Println("Usage:\nxkey set-seed\nxkey derive <name|path>\nxkey node <name|path>\nxkey export [-json] <file> [name|path...]\nxkey inspect [-json] <file>")
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	command, args := os.Args[1], os.Args[2:]

	switch command {
	case "-h", "--help":
		usage()
	case "set-seed":
		setSeed()
	case "derive", "node":
		if len(args) != 1 {
			usage()
			os.Exit(1)
		}
		n := derive(loadConfig(), mustSeed(), args[0])
		if command == "derive" {
			fmt.Printf("%x\n", n.Key())
		} else {
			fmt.Println(n)
		}
	case "export":
		args, json := hasFlag(args, "-json")
		if len(args) < 1 {
			usage()
			os.Exit(1)
		}
		export(loadConfig(), mustSeed(), args[0], args[1:], modeFor(json))
	case "inspect":
		args, json := hasFlag(args, "-json")
		if len(args) != 1 {
			usage()
			os.Exit(1)
		}
		inspect(args[0], modeFor(json))
	default:
		usage()
		os.Exit(1)
	}
}

func setSeed() {
	fmt.Println("🗝️ Enter your seed as hex (no echo):")
	seed, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		log.Fatalf("🛑 Failed to read seed: %v", err)
	}
	if err := storeSeed(string(seed)); err != nil {
		log.Fatalf("🛑 Failed to store seed: %v", err)
	}
	log.Printf("✅ Seed stored in %s", seedPath)
}

func mustSeed() []byte {
	s := findSeed()
	if s == "" {
		log.Fatalf("🛑 No seed found. Set XKEY_SEED or run 'xkey set-seed'.")
	}
	seed, err := parseSeed(s)
	if err != nil {
		log.Fatalf("🛑 Invalid seed: %v", err)
	}
	return seed
}

func loadConfig() *config.XkeyConfig {
	dir := os.Getenv("XKEY_CONFIG")
	if dir == "" {
		dir = "."
	}
	cfg, err := config.Load(dir)
	if err != nil {
		log.Fatalf("🛑 Failed to load config: %v", err)
	}
	return cfg
}

func derive(cfg *config.XkeyConfig, seed []byte, nameOrPath string) slip21.Node {
	p, err := cfg.Resolve(nameOrPath)
	if err != nil {
		log.Fatalf("🛑 %v", err)
	}
	return slip21.NewMaster(seed).DerivePath(p)
}

func export(cfg *config.XkeyConfig, seed []byte, file string, names []string, mode slip21.Mode) {
	var paths []string
	if len(names) == 0 {
		paths = cfg.Paths()
	}
	for _, name := range names {
		p, err := cfg.Resolve(name)
		if err != nil {
			log.Fatalf("🛑 %v", err)
		}
		paths = append(paths, p.String())
	}
	if len(paths) == 0 {
		log.Fatalf("🛑 Nothing to export. Pass paths or declare keys in %s or %s.", config.TOMLFile, config.JSONFile)
	}

	log.Printf("🔑 Deriving %d keys…", len(paths))
	k, err := keyring.Build(slip21.NewMaster(seed), paths, parallelism(cfg.Parallelism))
	if err != nil {
		log.Fatalf("🛑 Failed to derive: %v", err)
	}
	b, err := k.Encode(mode)
	if err != nil {
		log.Fatalf("🛑 Failed to encode: %v", err)
	}
	if err := os.WriteFile(file, b, 0600); err != nil {
		log.Fatalf("🛑 Failed to write %s: %v", file, err)
	}
	fp, err := k.Fingerprint()
	if err != nil {
		log.Fatalf("🛑 Failed to fingerprint: %v", err)
	}
	log.Printf("🎁 Wrote %d keys to %s (%s, %s)", len(k.Entries), file, mode, fp)
}

func inspect(file string, mode slip21.Mode) {
	b, err := os.ReadFile(file)
	if err != nil {
		log.Fatalf("🛑 Failed to read %s: %v", file, err)
	}
	k, err := keyring.Decode(b, mode)
	if err != nil {
		log.Fatalf("🛑 Failed to decode %s: %v", file, err)
	}
	printEntries(os.Stdout, k)
}
