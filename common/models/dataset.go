package models

// CaseRecord holds the case-level fields extracted from a case detail page.
type CaseRecord struct {
	ID          CaseID
	Description string
	FiledDate   string
}

// DocumentRow is one entry of a case's public file table. Ordinal is the
// 1-based position of the row in the table and namespaces same-named files
// uploaded on different dates.
type DocumentRow struct {
	Ordinal     int
	Description string
	Date        string
	ListingPath string
}

// DownloadedFile is one artifact fetched from a file-listing page.
type DownloadedFile struct {
	Name string
	Path string
}

// DocumentFile pairs a table row with one file downloaded for it.
type DocumentFile struct {
	Row  DocumentRow
	File DownloadedFile
}

// DatasetRow is one line of the output table. A row exists only when a file
// was actually downloaded; cases and table rows without files contribute
// nothing.
type DatasetRow struct {
	Case     CaseRecord
	Document DocumentFile
}
