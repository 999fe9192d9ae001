package csvexport_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/dmitrymomot/deskkit/pkg/csvexport"
)

type recordingSaver struct {
	calls    int
	data     []byte
	filename string
}

func (s *recordingSaver) Save(ctx context.Context, data []byte, filename string) error {
	s.calls++
	s.data = data
	s.filename = filename
	return nil
}

var testHeaders = []csvexport.Header{
	{Label: "Name", Key: "name"},
	{Label: "Email", Key: "email"},
}

func TestNewExporter(t *testing.T) {
	t.Parallel()

	_, err := csvexport.NewExporter(nil)
	assert.ErrorIs(t, err, csvexport.ErrNilSaver)
}

func TestExport(t *testing.T) {
	t.Parallel()

	t.Run("empty rows rejected before any side effect", func(t *testing.T) {
		t.Parallel()

		saver := &recordingSaver{}
		exporter, err := csvexport.NewExporter(saver)
		require.NoError(t, err)

		err = exporter.Export(context.Background(), nil, "out", testHeaders)
		assert.ErrorIs(t, err, csvexport.ErrEmptyData)
		assert.Zero(t, saver.calls)
	})

	t.Run("csv extension appended when absent", func(t *testing.T) {
		t.Parallel()

		saver := &recordingSaver{}
		exporter, err := csvexport.NewExporter(saver)
		require.NoError(t, err)

		rows := []csvexport.Row{{"name": "Jordan", "email": "j@example.com"}}
		require.NoError(t, exporter.Export(context.Background(), rows, "agents_export", testHeaders))

		assert.Equal(t, "agents_export.csv", saver.filename)
		assert.Equal(t, `"Name","Email"`+"\n"+`"Jordan","j@example.com"`, string(saver.data))
	})

	t.Run("existing extension preserved", func(t *testing.T) {
		t.Parallel()

		saver := &recordingSaver{}
		exporter, err := csvexport.NewExporter(saver)
		require.NoError(t, err)

		rows := []csvexport.Row{{"name": "Jordan"}}
		require.NoError(t, exporter.Export(context.Background(), rows, "report.CSV", testHeaders))
		assert.Equal(t, "report.CSV", saver.filename)
	})
}

func TestFileSaver(t *testing.T) {
	t.Parallel()

	t.Run("writes file into directory", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		saver := csvexport.NewFileSaver(dir)

		require.NoError(t, saver.Save(context.Background(), []byte("content"), "out.csv"))

		data, err := os.ReadFile(filepath.Join(dir, "out.csv"))
		require.NoError(t, err)
		assert.Equal(t, "content", string(data))
	})

	t.Run("path components stripped from filename", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		saver := csvexport.NewFileSaver(dir)

		require.NoError(t, saver.Save(context.Background(), []byte("x"), "../../etc/passwd"))

		_, err := os.Stat(filepath.Join(dir, "passwd"))
		assert.NoError(t, err)
	})

	t.Run("BOM prefix for spreadsheet compatibility", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		saver := csvexport.NewFileSaver(dir, csvexport.WithBOM())

		require.NoError(t, saver.Save(context.Background(), []byte("a,b"), "out.csv"))

		data, err := os.ReadFile(filepath.Join(dir, "out.csv"))
		require.NoError(t, err)
		assert.Equal(t, append([]byte{0xEF, 0xBB, 0xBF}, []byte("a,b")...), data)
	})
}

type mockS3Client struct {
	input *s3.PutObjectInput
	err   error
}

func (m *mockS3Client) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	m.input = params
	if m.err != nil {
		return nil, m.err
	}
	return &s3.PutObjectOutput{}, nil
}

func TestS3Saver(t *testing.T) {
	t.Parallel()

	t.Run("missing bucket rejected", func(t *testing.T) {
		t.Parallel()

		_, err := csvexport.NewS3Saver(context.Background(), csvexport.S3Config{})
		assert.ErrorIs(t, err, csvexport.ErrInvalidS3Config)
	})

	t.Run("uploads with CSV content type and prefixed key", func(t *testing.T) {
		t.Parallel()

		client := &mockS3Client{}
		saver, err := csvexport.NewS3Saver(context.Background(),
			csvexport.S3Config{Bucket: "exports", Prefix: "tickets"},
			csvexport.WithS3Client(client),
		)
		require.NoError(t, err)

		require.NoError(t, saver.Save(context.Background(), []byte("a,b"), "out.csv"))

		require.NotNil(t, client.input)
		assert.Equal(t, "exports", *client.input.Bucket)
		assert.Equal(t, "tickets/out.csv", *client.input.Key)
		assert.Equal(t, "text/csv; charset=utf-8", *client.input.ContentType)
	})

	t.Run("backend failure wrapped", func(t *testing.T) {
		t.Parallel()

		client := &mockS3Client{err: assert.AnError}
		saver, err := csvexport.NewS3Saver(context.Background(),
			csvexport.S3Config{Bucket: "exports"},
			csvexport.WithS3Client(client),
		)
		require.NoError(t, err)

		err = saver.Save(context.Background(), []byte("a,b"), "out.csv")
		assert.ErrorIs(t, err, csvexport.ErrSaveFailed)
	})
}

func TestExportXLSX(t *testing.T) {
	t.Parallel()

	t.Run("empty rows rejected", func(t *testing.T) {
		t.Parallel()

		saver := &recordingSaver{}
		exporter, err := csvexport.NewExporter(saver)
		require.NoError(t, err)

		err = exporter.ExportXLSX(context.Background(), nil, "out", testHeaders)
		assert.ErrorIs(t, err, csvexport.ErrEmptyData)
		assert.Zero(t, saver.calls)
	})

	t.Run("workbook round-trips headers and cells", func(t *testing.T) {
		t.Parallel()

		saver := &recordingSaver{}
		exporter, err := csvexport.NewExporter(saver)
		require.NoError(t, err)

		rows := []csvexport.Row{{"name": "Jordan", "email": "j@example.com"}}
		require.NoError(t, exporter.ExportXLSX(context.Background(), rows, "agents", testHeaders))
		assert.Equal(t, "agents.xlsx", saver.filename)

		f, err := excelize.OpenReader(bytes.NewReader(saver.data))
		require.NoError(t, err)
		defer func() { _ = f.Close() }()

		got, err := f.GetCellValue("Sheet1", "A1")
		require.NoError(t, err)
		assert.Equal(t, "Name", got)

		got, err = f.GetCellValue("Sheet1", "B2")
		require.NoError(t, err)
		assert.Equal(t, "j@example.com", got)
	})
}
