package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sowmyalt/edu2job/internal/config"
)

// writeCorpus writes a small two-role corpus and returns its path.
func writeCorpus(t *testing.T) string {
	t.Helper()
	var sb strings.Builder
	sb.WriteString("Degree,Specialization,College_Name,CGPA,Certificates,Graduation_Year,Job_Role\n")
	for i := 0; i < 10; i++ {
		fmt.Fprintf(&sb, "B.Sc,Physics,Anna University,7.0-7.9,%d,2022,Data Scientist\n", i%2)
		fmt.Fprintf(&sb, "B.Tech,CSE,NIT Trichy,8.5,%d,2024,Software Developer\n", i%3)
	}
	path := filepath.Join(t.TempDir(), "corpus.csv")
	require.NoError(t, os.WriteFile(path, []byte(sb.String()), 0644))
	return path
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func testConfig(corpusPath string) config.Config {
	cfg := config.Config{CorpusPath: corpusPath, Trees: 10}
	return cfg.MergeWithDefaults(config.Defaults())
}

func noEnv(string) string { return "" }

func changedSet(names ...string) func(string) bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return func(name string) bool { return set[name] }
}
