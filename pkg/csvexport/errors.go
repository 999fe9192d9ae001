package csvexport

import "errors"

var (
	// ErrEmptyData is returned when exporting zero rows; raised before any
	// side effect.
	ErrEmptyData = errors.New("csvexport: no data to export")

	// ErrNilSaver is returned when constructing an Exporter without a saver.
	ErrNilSaver = errors.New("csvexport: nil saver")

	// ErrSaveFailed wraps saver backend failures.
	ErrSaveFailed = errors.New("csvexport: failed to save file")

	// ErrInvalidS3Config is returned when the S3 saver configuration is incomplete.
	ErrInvalidS3Config = errors.New("csvexport: invalid S3 configuration")

	// ErrFailedToLoadAWSConfig wraps AWS SDK configuration loading failures.
	ErrFailedToLoadAWSConfig = errors.New("csvexport: failed to load AWS config")
)
