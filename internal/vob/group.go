package vob

import "sort"

// Group holds the fragments of one title set in ascending sequence order.
type Group struct {
	TitleSet string
	Files    []File
}

// Size returns the combined byte size of the group's fragments.
func (g Group) Size() int64 {
	var total int64
	for _, file := range g.Files {
		total += file.Size
	}
	return total
}

// GroupByTitleSet splits files into per-title-set groups. Groups come back
// in sorted prefix order; files inside a group keep ascending sequence
// order regardless of input ordering.
func GroupByTitleSet(files []File) []Group {
	byPrefix := make(map[string][]File)
	for _, file := range files {
		byPrefix[file.TitleSet] = append(byPrefix[file.TitleSet], file)
	}

	prefixes := make([]string, 0, len(byPrefix))
	for prefix := range byPrefix {
		prefixes = append(prefixes, prefix)
	}
	sort.Strings(prefixes)

	groups := make([]Group, 0, len(prefixes))
	for _, prefix := range prefixes {
		members := byPrefix[prefix]
		sort.Slice(members, func(i, j int) bool {
			return members[i].Sequence < members[j].Sequence
		})
		groups = append(groups, Group{TitleSet: prefix, Files: members})
	}
	return groups
}
