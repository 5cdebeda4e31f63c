package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"suanpan/internal/partition"
)

var errMissingGroupOrder = errors.New("group order required (-r)")

// parsePartition reads a comma-separated part list; "-" or "" is the empty
// partition. Parts may carry surrounding whitespace.
func parsePartition(s string) (partition.Partition, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "-" {
		return nil, nil
	}
	fields := strings.Split(s, ",")
	parts := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("partition %q: %w", s, err)
		}
		parts = append(parts, v)
	}
	p, err := partition.New(parts...)
	if err != nil {
		return nil, fmt.Errorf("partition %q: %w", s, err)
	}
	return p, nil
}

// parseQuotient reads a semicolon-separated tuple of partitions.
func parseQuotient(s string) ([]partition.Partition, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	fields := strings.Split(s, ";")
	tuple := make([]partition.Partition, len(fields))
	for i, f := range fields {
		p, err := parsePartition(f)
		if err != nil {
			return nil, fmt.Errorf("quotient component %d: %w", i, err)
		}
		tuple[i] = p
	}
	return tuple, nil
}

// parseCharges reads a comma-separated integer tuple.
func parseCharges(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	fields := strings.Split(s, ",")
	charges := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("charges %q: %w", s, err)
		}
		charges[i] = v
	}
	return charges, nil
}

// formatTuple renders a partition tuple in the CLI's own syntax, so output can
// be fed back into build --quotient.
func formatTuple(tuple []partition.Partition) string {
	out := make([]string, len(tuple))
	for i, p := range tuple {
		if len(p) == 0 {
			out[i] = "-"
			continue
		}
		parts := make([]string, len(p))
		for j, v := range p {
			parts[j] = strconv.Itoa(v)
		}
		out[i] = strings.Join(parts, ",")
	}
	return strings.Join(out, ";")
}
