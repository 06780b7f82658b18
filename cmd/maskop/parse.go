package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rogpeppe/maskset/mask"
)

// parseMask parses a mask argument as described in the
// package documentation.
func parseMask(arg string) (mask.Mask, error) {
	text := arg
	if path, ok := strings.CutPrefix(arg, "@"); ok {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("cannot read mask: %w", err)
		}
		text = string(data)
	} else if arg == "-" {
		return mask.Mask{}, nil
	}
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	indices := make([]int, 0, len(fields))
	for _, f := range fields {
		i, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("invalid mask %q: bad index %q", arg, f)
		}
		indices = append(indices, i)
	}
	m, err := mask.New(indices...)
	if err != nil {
		return nil, fmt.Errorf("invalid mask %q: %w", arg, err)
	}
	return m, nil
}

func parseMasks(args []string) ([]mask.Mask, error) {
	masks := make([]mask.Mask, len(args))
	for i, arg := range args {
		m, err := parseMask(arg)
		if err != nil {
			return nil, err
		}
		masks[i] = m
	}
	return masks, nil
}

// formatMask returns m as a comma-separated list.
func formatMask(m mask.Mask) string {
	var buf strings.Builder
	for i, x := range m {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(strconv.Itoa(x))
	}
	return buf.String()
}
