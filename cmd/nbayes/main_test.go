package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestDemo(t *testing.T) {
	out := execute(t, "demo")
	require.Contains(t, out, "love my dalmation: negative")
	require.Contains(t, out, "stupid garbage: positive")
}

func TestImportEvaluateClassify(t *testing.T) {
	dir := t.TempDir()
	for i := 1; i <= 10; i++ {
		writeFile(t, filepath.Join(dir, "spam", fmt.Sprintf("%d.txt", i)),
			"Buy cheap pills online! Winner offer, click now for free money.")
		writeFile(t, filepath.Join(dir, "ham", fmt.Sprintf("%d.txt", i)),
			"Hi team, the project meeting agenda for tomorrow is attached. Thanks.")
	}
	db := filepath.Join(dir, "corpus.db")

	out := execute(t, "import", "--db", db, "--dir", dir)
	require.Contains(t, out, "imported 20 documents")

	out = execute(t, "evaluate", "--db", db)
	require.Contains(t, out, "round 1: error rate 0.00% (0/4)")
	require.Contains(t, out, "mean error rate: 0.00%")

	out = execute(t, "classify", "--db", db, "cheap pills for free")
	require.Equal(t, "positive\n", out)
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
}
