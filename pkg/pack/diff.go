package pack

import "sort"

type DiffResult struct {
	Missing []string
	Changed []string
	Extra   []string
}

func (d DiffResult) Clean() bool {
	return len(d.Missing) == 0 &&
		len(d.Changed) == 0 &&
		len(d.Extra) == 0
}

func ComputeDiff(want, got Digests) DiffResult {
	var result DiffResult

	for path, wd := range want {
		gd, exists := got[path]
		switch {
		case !exists:
			result.Missing = append(result.Missing, path)
		case wd.Hash != gd.Hash || wd.Size != gd.Size:
			result.Changed = append(result.Changed, path)
		}
	}

	for path := range got {
		if _, exists := want[path]; !exists {
			result.Extra = append(result.Extra, path)
		}
	}

	sort.Strings(result.Missing)
	sort.Strings(result.Changed)
	sort.Strings(result.Extra)
	return result
}
