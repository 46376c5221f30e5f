package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/johnstarich/go/minspan/internal/testhelpers"
)

type testAppOptions struct {
	files map[string]string
	stdin string
}

type TestApp struct {
	App
}

func newTestApp(t *testing.T, options testAppOptions) *TestApp {
	t.Helper()
	return &TestApp{
		App: App{
			errWriter: newTestWriter(t),
			fs:        testhelpers.FSWithFiles(t, options.files),
			inReader:  strings.NewReader(options.stdin),
			outWriter: newTestWriter(t),
		},
	}
}

func (t *TestApp) Stdout() string {
	return t.outWriter.(testWriter).out.String()
}

func (t *TestApp) Stderr() string {
	return t.errWriter.(testWriter).out.String()
}

type testWriter struct {
	testingT *testing.T
	out      *bytes.Buffer
}

func newTestWriter(t *testing.T) testWriter {
	return testWriter{
		testingT: t,
		out:      bytes.NewBuffer(nil),
	}
}

func (w testWriter) Write(b []byte) (n int, err error) {
	w.testingT.Log(strings.TrimSuffix(string(b), "\n"))
	n, err = w.out.Write(b)
	return
}
