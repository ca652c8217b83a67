package mdd

// Resolution is the outcome of matching synonym records against the species
// they claim as accepted. Every input synonym lands in exactly one place:
// attached to a species group, or in Orphans.
type Resolution struct {
	// Groups maps a species identifier to its synonyms, in input order.
	Groups map[int][]Synonym
	// Orphans are synonyms whose accepted-species identifier is absent or
	// does not match any species record. They are kept, not discarded, so
	// the caller can count and inspect them.
	Orphans []Synonym
}

// Resolve partitions synonyms into resolved and orphan records. A synonym
// resolves when its accepted-species identifier is present and matches an
// existing species identifier. Input order is preserved both inside each
// group and among orphans.
func Resolve(species []Species, synonyms []Synonym) Resolution {
	ids := make(map[int]struct{}, len(species))
	for _, sp := range species {
		ids[sp.ID] = struct{}{}
	}

	res := Resolution{Groups: make(map[int][]Synonym)}
	for _, syn := range synonyms {
		if syn.SpeciesID == nil {
			res.Orphans = append(res.Orphans, syn)
			continue
		}
		id := *syn.SpeciesID
		if _, ok := ids[id]; !ok {
			res.Orphans = append(res.Orphans, syn)
			continue
		}
		res.Groups[id] = append(res.Groups[id], syn)
	}
	return res
}

// ResolvedCount returns the number of synonyms attached to species groups.
// ResolvedCount + len(Orphans) always equals the input synonym count.
func (r Resolution) ResolvedCount() int {
	var n int
	for _, syns := range r.Groups {
		n += len(syns)
	}
	return n
}
