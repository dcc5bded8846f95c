package report

import (
	"io"
	"regexp"
	"strings"

	"github.com/mozillazg/go-unidecode"
	"github.com/pierrec/lz4"

	"github.com/kjirawat/DADS6005-Real-Time-Midterm/domain/models"
)

var nonAlnum = regexp.MustCompile("[^a-zA-Z0-9]+")

// Slug turns a chart title into a file name stem.
func Slug(title string) string {
	s := nonAlnum.ReplaceAllString(unidecode.Unidecode(title), "_")
	s = strings.Trim(s, "_")
	if s == "" {
		return "table"
	}
	return strings.ToLower(s)
}

// WriteCSV writes t as CSV to w, lz4-compressed when compress is true.
func WriteCSV(w io.Writer, t *models.Table, compress bool) error {
	if !compress {
		_, err := io.WriteString(w, CSV(t)+"\n")
		return err
	}
	zw := lz4.NewWriter(w)
	if _, err := io.WriteString(zw, CSV(t)+"\n"); err != nil {
		zw.Close()
		return err
	}
	return zw.Close()
}
