package gamedata

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
)

// WordsFile represents the structure of words.yaml.
type WordsFile struct {
	Words []string `yaml:"words"`
}

// LoadWords loads the embedded word list from words.yaml.
func LoadWords() ([]string, error) {
	file, err := Load[WordsFile]("words.yaml")
	if err != nil {
		return nil, err
	}
	return file.Words, nil
}

// ReadWordFile reads a word list from disk.
//
// Files ending in .yaml, .yml or .json hold either a bare list or a
// mapping with a "words" key. Anything else is read as plain text with one
// word per line; blank lines and lines starting with '#' are skipped.
func ReadWordFile(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read word file %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		words, err := decodeWordList(content)
		if err != nil {
			return nil, fmt.Errorf("failed to parse word file %s: %w", path, err)
		}
		return words, nil
	default:
		return readLines(content)
	}
}

func decodeWordList(content []byte) ([]string, error) {
	var list []string
	if err := yaml.Unmarshal(content, &list); err == nil {
		return list, nil
	}

	var file WordsFile
	if err := yaml.Unmarshal(content, &file); err != nil {
		return nil, err
	}
	return file.Words, nil
}

func readLines(content []byte) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(bytes.NewReader(content))
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	return out, sc.Err()
}
