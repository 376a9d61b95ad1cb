package validation

// Result is the per-file validation outcome. It is immutable after
// construction and carries findings in detection order.
//
// The JSON shape is the documented CI-facing contract shared by the
// text and JSON renderers; field names must not change.
type Result struct {
	FilePath   string  `json:"file_path"`
	Valid      bool    `json:"valid"`
	Errors     []Error `json:"errors"`
	ErrorCount int     `json:"error_count"`
}

// NewResult assembles a Result from the findings collected for one
// file. Valid is true iff there are none. Errors is never nil so the
// wire form is always a JSON array.
func NewResult(filePath string, errs []Error) Result {
	if errs == nil {
		errs = []Error{}
	}
	return Result{
		FilePath:   filePath,
		Valid:      len(errs) == 0,
		Errors:     errs,
		ErrorCount: len(errs),
	}
}
