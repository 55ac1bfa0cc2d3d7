package generate_pdf

import (
	"sort"
	"strings"

	"folha-tarefa/internal/service/shift"
	"folha-tarefa/internal/storage"
)

type Group struct {
	Supervisor string
	Records    []storage.ActivityRecord
}

// GroupBySupervisor splits records by the shift's supervisor column. Names
// match ignoring case and surrounding spaces; a group is labelled with the
// first spelling in sorted order and groups come out in that order. Records
// keep their original order and blank supervisors are skipped.
func GroupBySupervisor(records []storage.ActivityRecord, s shift.Shift) []Group {
	names := map[string]bool{}
	for _, rec := range records {
		if name := strings.TrimSpace(s.Foreman(rec)); name != "" {
			names[name] = true
		}
	}

	sorted := make([]string, 0, len(names))
	for n := range names {
		sorted = append(sorted, n)
	}
	sort.Strings(sorted)

	index := map[string]int{}
	var groups []Group
	for _, n := range sorted {
		key := storage.FoldKey(n)
		if _, ok := index[key]; ok {
			continue
		}
		index[key] = len(groups)
		groups = append(groups, Group{Supervisor: n})
	}

	for _, rec := range records {
		name := strings.TrimSpace(s.Foreman(rec))
		if name == "" {
			continue
		}
		i := index[storage.FoldKey(name)]
		groups[i].Records = append(groups[i].Records, rec)
	}

	return groups
}
