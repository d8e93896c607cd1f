package compress

// Cell identifies one (modality, LNL) diagnosis column in a patient row.
type Cell struct {
	Modality string
	LNL      string
}

// Row is a single patient's record: a raw T-stage value plus whatever
// (modality, LNL) diagnosis entries were recorded. Missing entries are
// simply absent from Diagnoses.
type Row struct {
	RawTStage string
	Diagnoses map[Cell]bool
}

// TStageMapper maps a raw T-stage value to a coarse category
// ("early"/"late", or any caller-defined scheme).
type TStageMapper func(raw string) (string, error)

// DefaultTStageMapper implements the default early/late mapping:
// T in {0,1,2} -> "early", T in {3,4} -> "late", anything else errors.
func DefaultTStageMapper(raw string) (string, error) {
	switch raw {
	case "0", "1", "2":
		return "early", nil
	case "3", "4":
		return "late", nil
	default:
		return "", compressErrorf("DefaultTStageMapper", ErrUnknownTStage)
	}
}
