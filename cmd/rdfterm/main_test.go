package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

// run executes the root command. Flag values persist between runs, so
// every test passes the flags it depends on.
func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetErr(&out)
	RootCmd.SetArgs(args)
	require.NoError(t, RootCmd.Execute(), "rdfterm %s", strings.Join(args, " "))
	return out.String()
}

func TestParseCommand(t *testing.T) {
	out := run(t, "parse", "--in_memory", `"42"^^xsd:integer`, `"chat"@fr`, `"2020-01-02T03:04:05Z"^^xsd:dateTime`)
	assert.Contains(t, out, "'42'^^1003")
	assert.Contains(t, out, "numeric")
	assert.Contains(t, out, `"chat"@fr`)
	assert.Contains(t, out, "2020-01-02T03:04:05 (tz)")
}

func TestCompareCommand(t *testing.T) {
	out := run(t, "compare", "--in_memory", `"2"^^xsd:integer`, `"10"^^xsd:double`)
	assert.Contains(t, out, " < ")
	assert.Contains(t, out, "compatible: yes")

	out = run(t, "compare", "--in_memory", `"b"`, `<http://example.org/>`)
	assert.Contains(t, out, " > ")
	assert.Contains(t, out, "compatible: no")
}

func TestSortCommand(t *testing.T) {
	out := run(t, "sort", "--in_memory", "--reverse=false", `"10"^^xsd:integer`, `"9"^^xsd:integer`, `"-1"^^xsd:integer`)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], `"-1"`)
	assert.Contains(t, lines[1], `"9"`)
	assert.Contains(t, lines[2], `"10"`)
}

func TestEncodeDecodeCommands(t *testing.T) {
	out := run(t, "encode", "--in_memory", "--format", "wire", `"1.5"^^xsd:double`)
	wire := strings.TrimSpace(out)
	assert.Equal(t, "00001000"+"3ff8000000000000", wire)

	out = run(t, "decode", "--in_memory", "--record=false", wire)
	assert.Contains(t, out, "'1.5'^^1000")

	out = run(t, "encode", "--in_memory", "--format", "record", `"1.50"^^xsd:double`)
	record := strings.TrimSpace(out)
	out = run(t, "decode", "--in_memory", "--record", record)
	assert.Contains(t, out, "'1.50'^^1000")

	out = run(t, "encode", "--in_memory", "--format", "text", `"x"@en`)
	assert.Equal(t, "'x'^^3", strings.TrimSpace(out))
}

func TestEvalCommand(t *testing.T) {
	out := run(t, "eval", "--in_memory", "--list=false", "+", `"1"^^xsd:integer`, `"2"^^xsd:double`)
	assert.Equal(t, `"3"^^<http://www.w3.org/2001/XMLSchema#double>`, strings.TrimSpace(out))

	out = run(t, "eval", "--in_memory", "--list=false", "lt", `"a"`, `"1"^^xsd:integer`)
	assert.Contains(t, out, "absent")

	out = run(t, "eval", "--in_memory", "--list=false", "bound", "UNDEF")
	assert.Contains(t, out, `"false"`)

	out = run(t, "eval", "--list")
	assert.Contains(t, out, "langmatches")
}

func TestIndexCommands(t *testing.T) {
	dir := t.TempDir()
	flags := []string{"--in_memory=false", "--dir", dir, "--locale", "en"}
	cmd := func(args ...string) []string { return append(args, flags...) }

	out := run(t, cmd("index", "put", `"b"`, `"a"`, `"3"^^xsd:integer`, `"a"`)...)
	assert.Contains(t, out, "added 3 of 4 terms")

	out = run(t, cmd("index", "scan", "--from", "", "--to", "", "--group", "", "--limit", "0")...)
	ia := strings.Index(out, `"a"`)
	ib := strings.Index(out, `"b"`)
	require.True(t, ia >= 0 && ib >= 0, out)
	assert.Less(t, ia, ib)

	out = run(t, cmd("index", "scan", "--from", "", "--to", "", "--group", `"0"^^xsd:integer`, "--limit", "0")...)
	assert.Contains(t, out, `"3"`)
	assert.NotContains(t, out, `"a"`)

	out = run(t, cmd("index", "delete", `"b"`)...)
	assert.Contains(t, out, "removed 1 of 1 terms")

	out = run(t, cmd("index", "stats")...)
	assert.Contains(t, out, "| terms")
	assert.Contains(t, out, "| 2 ")
}

func TestIndexLoadCommand(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "data.nt")
	require.NoError(t, os.WriteFile(file, []byte(`<http://example.org/a> <http://example.org/p> "x"@en .
<http://example.org/a> <http://example.org/p> "2"^^<http://www.w3.org/2001/XMLSchema#integer> .
`), 0o644))

	out := run(t, "index", "load", "--content_type", "", "--in_memory=false", "--dir", filepath.Join(dir, "db"), file)
	assert.Contains(t, out, "2 statements, 4 new terms")
}

func TestTypesCommand(t *testing.T) {
	out := run(t, "types", "--in_memory")
	assert.Contains(t, out, "0x1003")
	assert.Contains(t, out, "http://www.w3.org/2001/XMLSchema#integer")
}
