package importer

// Profile is the column layout of one remittance export. Parse tries each
// profile against every row until one matches a header.
type Profile struct {
	Name      string
	CaseCol   []string
	AmountCol []string
	// DateCol is optional; rows without a date leave ReceivedDate unset.
	DateCol []string
}

// Header spellings are matched case-insensitively after trimming.
var profiles = []Profile{
	{
		Name:      "county remittance",
		CaseCol:   []string{"case #", "case no", "case no."},
		AmountCol: []string{"payment amount", "warrant amount"},
		DateCol:   []string{"payment date", "warrant date"},
	},
	{
		Name:      "housing support",
		CaseCol:   []string{"case number", "case"},
		AmountCol: []string{"amount", "housing support", "hs amount"},
		DateCol:   []string{"received date", "received", "date"},
	},
}

type columns struct {
	caseIdx   int
	amountIdx int
	dateIdx   int
}

// match reports where the profile's columns sit in header, if all the
// required ones are present.
func (p Profile) match(header []string) (columns, bool) {
	cols := columns{
		caseIdx:   find(header, p.CaseCol),
		amountIdx: find(header, p.AmountCol),
		dateIdx:   find(header, p.DateCol),
	}

	return cols, cols.caseIdx >= 0 && cols.amountIdx >= 0
}

func find(header []string, names []string) int {
	for _, name := range names {
		for i, cell := range header {
			if normalize(cell) == name {
				return i
			}
		}
	}

	return -1
}
