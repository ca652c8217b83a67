package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError
	WriteFileError

	// Logging errors
	CreateLogFileError

	// Configuration errors
	ReadConfigError
	ParseConfigError

	// CSV parsing errors
	CSVReadError
	CSVMissingSchemaError
	CSVMalformedRowError

	// Release metadata errors
	ReleaseParseError
	ReleaseMissingMetadataError

	// Archive errors
	ArchiveOpenError
	ArchiveEntryNotFoundError
	ArchiveEntryReadError

	// Bundle errors
	BundleInvalidMetadataError
	BundleDecodeError

	// Country aggregation errors
	CountryLookupError
)
