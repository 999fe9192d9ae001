// Package csvexport serializes ordered data records into CSV (or XLSX) per a
// header mapping and hands the result to a pluggable save collaborator, the
// headless equivalent of a browser download.
//
// Conversion is pure: Convert(rows, headers) renders one quoted header line
// and one line per row, with missing/nil values as empty strings and quotes
// doubled. Every field is quoted unconditionally.
//
// Saving is a capability: FileSaver writes into a local directory (optional
// UTF-8 BOM for Excel), S3Saver uploads to S3-compatible object storage.
//
// # Usage
//
//	exporter, err := csvexport.NewExporter(csvexport.NewFileSaver("exports"))
//	if err != nil {
//	    return err
//	}
//
//	headers := []csvexport.Header{
//	    {Label: "Name", Key: "name"},
//	    {Label: "Email", Key: "email"},
//	}
//	err = exporter.Export(ctx, rows, "agents_export", headers)
//
// Exporting zero rows fails with ErrEmptyData before any side effect.
package csvexport
