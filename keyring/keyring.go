// Package keyring bundles nodes derived from one master under their paths.
package keyring

import (
	"fmt"
	"sort"
	"sync"

	"github.com/xmit-co/xkey/slip21"
)

type Entry struct {
	Path string      `cbor:"1,keyasint" json:"path"`
	Node slip21.Node `cbor:"2,keyasint" json:"node"`
}

type Keyring struct {
	Master  slip21.Fingerprint `cbor:"1,keyasint" json:"master"`
	Entries []Entry            `cbor:"2,keyasint,omitempty" json:"entries"`
}

type result struct {
	index int
	entry Entry
	err   error
}

// Build derives every path from master using up to parallelism goroutines.
// Entries are sorted by path. Malformed or duplicate paths fail the whole build.
func Build(master slip21.Node, paths []string, parallelism int) (*Keyring, error) {
	if parallelism < 1 {
		parallelism = 1
	}
	seen := make(map[string]bool, len(paths))
	for _, p := range paths {
		if seen[p] {
			return nil, fmt.Errorf("duplicate path %q", p)
		}
		seen[p] = true
	}

	jobs := make(chan int)
	results := make(chan result, len(paths))
	var wg sync.WaitGroup
	for w := 0; w < min(parallelism, len(paths)); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				p, err := slip21.ParsePath(paths[i])
				if err != nil {
					results <- result{index: i, err: err}
					continue
				}
				results <- result{index: i, entry: Entry{Path: p.String(), Node: master.DerivePath(p)}}
			}
		}()
	}
	for i := range paths {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	close(results)

	entries := make([]Entry, len(paths))
	var errs []error
	for r := range results {
		if r.err != nil {
			errs = append(errs, r.err)
			continue
		}
		entries[r.index] = r.entry
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("%d paths failed to derive: %w", len(errs), errs[0])
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Path < entries[j].Path
	})
	return &Keyring{
		Master:  master.Fingerprint(),
		Entries: entries,
	}, nil
}

// Lookup returns the node stored under path.
func (k *Keyring) Lookup(path string) (slip21.Node, bool) {
	i := sort.Search(len(k.Entries), func(i int) bool {
		return k.Entries[i].Path >= path
	})
	if i < len(k.Entries) && k.Entries[i].Path == path {
		return k.Entries[i].Node, true
	}
	return slip21.Node{}, false
}
