// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package helpers builds filesystem fixtures shared by the package tests.
package helpers

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// BuildPDF returns a minimal single-font PDF with one page per entry in pages.
// Each page draws its text with a single Tj operator so extraction yields the
// text unchanged. Cross-reference offsets are computed from the buffer, so the
// output opens in both ledongthuc/pdf and pdfcpu.
func BuildPDF(pages ...string) []byte {
	// 1 catalog, 2 page tree, 3 font, then a page and a content stream per page.
	var objects []string
	kids := make([]string, len(pages))
	for i := range pages {
		kids[i] = fmt.Sprintf("%d 0 R", 4+2*i)
	}

	objects = append(objects,
		"<< /Type /Catalog /Pages 2 0 R >>",
		fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(pages)),
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>",
	)
	for i, text := range pages {
		content := fmt.Sprintf("BT /F1 12 Tf 72 712 Td (%s) Tj ET", escapeText(text))
		objects = append(objects,
			fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] "+
				"/Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>", 5+2*i),
			fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content),
		)
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)
	return buf.Bytes()
}

// BuildMalformedPDF returns BuildPDF output whose page tree lists its kids
// as a dictionary instead of an array. ledongthuc/pdf prints a parser
// diagnostic to stdout and panics on it.
func BuildMalformedPDF(pages ...string) []byte {
	return bytes.Replace(BuildPDF(pages...), []byte("/Kids ["), []byte("/Kids <<"), 1)
}

// WritePDF writes a generated PDF into dir and returns its path.
func WritePDF(t testing.TB, dir, name string, pages ...string) string {
	t.Helper()
	return WriteFile(t, dir, name, BuildPDF(pages...))
}

// WriteFile writes raw content into dir and returns its path.
func WriteFile(t testing.TB, dir, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, content, 0600); err != nil {
		t.Fatalf("failed to write fixture %s: %v", path, err)
	}
	return path
}

func escapeText(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `(`, `\(`, `)`, `\)`)
	return r.Replace(s)
}
