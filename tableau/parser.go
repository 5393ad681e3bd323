package tableau

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseYAML reads a Problem from r in YAML form: a premises list of
// prefix-notation statements, plus an optional name and description.
func ParseYAML(r io.Reader) (*Problem, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("could not read problem: %v", err)
	}
	var pb Problem
	if err := yaml.Unmarshal(data, &pb); err != nil {
		return nil, fmt.Errorf("could not parse problem: %v", err)
	}
	if err := pb.Validate(); err != nil {
		return nil, err
	}
	return &pb, nil
}

// ParseText reads a Problem from r in plain text form: one premise per line.
// Blank lines and lines starting with '#' are ignored.
func ParseText(r io.Reader) (*Problem, error) {
	var pb Problem
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		pb.Premises = append(pb.Premises, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read premises: %v", err)
	}
	if err := pb.Validate(); err != nil {
		return nil, err
	}
	return &pb, nil
}
