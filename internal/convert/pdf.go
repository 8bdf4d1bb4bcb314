package convert

import (
	"bytes"
	"fmt"
	"strings"

	pdflib "github.com/ledongthuc/pdf"
)

// PDFConverter renders the text layer of a PDF. The text carries no heading
// styles, so pages become paragraphs through the plain text scanner and
// only ";;;" paragraphs affect sectioning.
type PDFConverter struct{}

func (c *PDFConverter) Convert(src []byte) (out string, err error) {
	// The reader panics on some malformed streams.
	defer func() {
		if r := recover(); r != nil {
			out, err = "", fmt.Errorf("parse pdf: %v", r)
		}
	}()

	reader, err := pdflib.NewReader(bytes.NewReader(src), int64(len(src)))
	if err != nil {
		return "", fmt.Errorf("parse pdf: %w", err)
	}

	var pages []string
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, perr := page.GetPlainText(nil)
		if perr != nil {
			continue
		}
		pages = append(pages, strings.TrimSpace(text))
	}

	// A blank line keeps page boundaries as paragraph breaks.
	return (&TextConverter{}).Convert([]byte(strings.Join(pages, "\n\n")))
}
