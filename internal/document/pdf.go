// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package document

import (
	"errors"
	"fmt"
	"os"

	"github.com/ledongthuc/pdf"
)

var errNullPage = errors.New("null page object")

// PDFLoader loads documents with ledongthuc/pdf
type PDFLoader struct{}

// NewPDFLoader creates the default PDF loader
func NewPDFLoader() *PDFLoader {
	return &PDFLoader{}
}

// Load opens the file and reads its page count. The reader panics on some
// malformed cross-reference tables, so panics are converted to a LoadError.
// The file is closed on every failure path.
func (l *PDFLoader) Load(path string) (doc Document, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer func() {
		if r := recover(); r != nil {
			doc = nil
			err = &LoadError{Path: path, Err: fmt.Errorf("malformed PDF: %v", r)}
		}
		if err != nil {
			f.Close()
		}
	}()

	info, err := f.Stat()
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	var r *pdf.Reader
	var numPages int
	withStdoutDiscarded(func() {
		r, err = pdf.NewReader(f, info.Size())
		if err == nil {
			numPages = r.NumPage()
		}
	})
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	return &pdfDocument{file: f, reader: r, numPages: numPages}, nil
}

type pdfDocument struct {
	file     *os.File
	reader   *pdf.Reader
	numPages int
}

func (d *pdfDocument) Pages() []PageRef {
	refs := make([]PageRef, 0, d.numPages)
	for i := 1; i <= d.numPages; i++ {
		refs = append(refs, PageRef{Number: i, ID: PageID(i)})
	}
	return refs
}

func (d *pdfDocument) PageText(id PageID) (text string, err error) {
	num := int(id)
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = &PageError{Page: num, Err: fmt.Errorf("%v", r)}
		}
	}()

	if num < 1 || num > d.numPages {
		return "", &PageError{Page: num, Err: fmt.Errorf("page out of range (1-%d)", d.numPages)}
	}

	withStdoutDiscarded(func() {
		p := d.reader.Page(num)
		if p.V.IsNull() {
			err = errNullPage
			return
		}
		text, err = p.GetPlainText(nil)
	})
	if err != nil {
		return "", &PageError{Page: num, Err: err}
	}
	return text, nil
}

func (d *pdfDocument) Close() error {
	return d.file.Close()
}

// withStdoutDiscarded runs fn with os.Stdout pointed at the null device. The
// PDF reader prints parser diagnostics with fmt.Printf on malformed input,
// which would otherwise interleave with match lines. Not safe for concurrent
// use.
func withStdoutDiscarded(fn func()) {
	null, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	if err != nil {
		fn()
		return
	}
	saved := os.Stdout
	os.Stdout = null
	defer func() {
		os.Stdout = saved
		null.Close()
	}()
	fn()
}
