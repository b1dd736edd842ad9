// Package help 提供 HELP 命令输出的文本。
package help

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
)

//go:embed help.txt
var embedded string

// Provider 返回要逐行输出的帮助文本
type Provider interface {
	Lines() ([]string, error)
}

type embeddedProvider struct{}

// Embedded 编译进二进制的默认帮助文本
func Embedded() Provider {
	return embeddedProvider{}
}

func (embeddedProvider) Lines() ([]string, error) {
	return readLines(strings.NewReader(embedded))
}

type fileProvider struct {
	path string
}

// File 每次调用都重新读取 path，便于不重启就修改帮助文本
func File(path string) Provider {
	return fileProvider{path: path}
}

func (p fileProvider) Lines() ([]string, error) {
	f, err := os.Open(p.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	lines, err := readLines(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", p.path, err)
	}
	return lines, nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}
