package report

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yacobolo/jsxattr"
)

func TestPrintResult(t *testing.T) {
	tests := []struct {
		name     string
		result   *jsxattr.Result
		contains []string
		absent   []string
	}{
		{
			name:     "all rendered",
			result:   &jsxattr.Result{FilesScanned: 2, FilesRendered: 2},
			contains: []string{"Rendered 2 of 2 documents into out"},
			absent:   []string{"Skipped", "failure", "Hint"},
		},
		{
			name:     "single document",
			result:   &jsxattr.Result{FilesScanned: 1, FilesRendered: 1},
			contains: []string{"Rendered 1 of 1 document into out"},
		},
		{
			name:     "skipped files",
			result:   &jsxattr.Result{FilesScanned: 3, FilesRendered: 2, FilesSkipped: 1},
			contains: []string{"Skipped: 1 file"},
		},
		{
			name: "failures sorted by path",
			result: &jsxattr.Result{
				FilesScanned:  3,
				FilesRendered: 1,
				Failed: []jsxattr.FileError{
					{Path: "src/z.yaml", Err: errors.New("element has no tag")},
					{Path: "src/a.yaml", Err: errors.New("decode document")},
				},
			},
			contains: []string{
				"2 failures:",
				"src/a.yaml: decode document",
				"src/z.yaml: element has no tag",
				"Hint:",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			r := &Reporter{w: &buf}
			r.PrintResult(tt.result, "out")

			got := buf.String()
			for _, s := range tt.contains {
				assert.Contains(t, got, s)
			}
			for _, s := range tt.absent {
				assert.NotContains(t, got, s)
			}
		})
	}
}

func TestPrintResult_FailureOrder(t *testing.T) {
	var buf bytes.Buffer
	r := &Reporter{w: &buf}
	r.PrintResult(&jsxattr.Result{
		FilesScanned: 2,
		Failed: []jsxattr.FileError{
			{Path: "b.yaml", Err: errors.New("x")},
			{Path: "a.yaml", Err: errors.New("y")},
		},
	}, "out")

	got := buf.String()
	require.Less(t, bytes.Index([]byte(got), []byte("a.yaml")), bytes.Index([]byte(got), []byte("b.yaml")))
}

func TestNewReporter_ForceColor(t *testing.T) {
	r := NewReporter(&bytes.Buffer{}, true)
	assert.True(t, r.UseColors())
}

func TestRenderStyle_NoColors(t *testing.T) {
	assert.Equal(t, "plain", RenderStyle(StyleRed, "plain", false))
}
