package types

// Report aggregates the outcome of one checker run.
// Each list keeps discovery order: walk order first, then rule order within a document.
type Report struct {
	Root             string      `json:"root"`
	DocumentsScanned int         `json:"documents_scanned"`
	MissingSections  []Violation `json:"missing_sections"`
	BannedTokens     []Violation `json:"banned_tokens"`
	MissingFiles     []Violation `json:"missing_files"`

	// PlaceholdersChecked is false when the banned-token check was switched off
	PlaceholdersChecked bool `json:"placeholders_checked"`
}

// NewReport returns an empty report for root with non-nil lists.
func NewReport(root string) *Report {
	return &Report{
		Root:            root,
		MissingSections: []Violation{},
		BannedTokens:    []Violation{},
		MissingFiles:    []Violation{},

		PlaceholdersChecked: true,
	}
}

// Add files v into the list matching its type. Unknown types are dropped.
func (r *Report) Add(v Violation) {
	switch v.Type {
	case ViolationMissingSection:
		r.MissingSections = append(r.MissingSections, v)
	case ViolationBannedToken:
		r.BannedTokens = append(r.BannedTokens, v)
	case ViolationMissingFile:
		r.MissingFiles = append(r.MissingFiles, v)
	}
}

// Passed reports whether no violation of any kind was recorded.
func (r *Report) Passed() bool {
	return len(r.MissingSections) == 0 && len(r.BannedTokens) == 0 && len(r.MissingFiles) == 0
}

// Count returns the total number of violations.
func (r *Report) Count() int {
	return len(r.MissingSections) + len(r.BannedTokens) + len(r.MissingFiles)
}

// All returns every violation in report order.
func (r *Report) All() []Violation {
	all := make([]Violation, 0, r.Count())
	all = append(all, r.MissingSections...)
	all = append(all, r.BannedTokens...)
	all = append(all, r.MissingFiles...)
	return all
}
