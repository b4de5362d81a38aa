package model

// BulkImportResult is the outcome of one spreadsheet import. It lives
// only for the duration of the upload request.
type BulkImportResult struct {
	Inserted []*User
	Updated  []*User
	Failed   []FailedRow
}

// FailedRow reports one rejected source row. Row is the 1-based row
// number in the sheet, so the first data row reports as row 2.
type FailedRow struct {
	Row    int      `json:"row"`
	Errors []string `json:"errors"`
}
