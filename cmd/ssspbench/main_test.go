package main

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/bmssp/analysis"
	"github.com/katalvlaran/bmssp/verify"
)

func TestStatus(t *testing.T) {
	good := []analysis.Row{{N: 10}}
	bad := []analysis.Row{{N: 10}, {N: 20}}
	bad[1].Verify.Mismatches = []verify.Mismatch{{Vertex: 4, Got: 3, Want: 2}}
	interrupted := fmt.Errorf("analysis: n=500 density=0.2: %w", context.Canceled)

	cases := []struct {
		name string
		rows []analysis.Row
		err  error
		want int
	}{
		{"complete and clean", good, nil, exitOK},
		{"complete with mismatch", bad, nil, exitMismatch},
		{"interrupted but clean so far", good, interrupted, exitInterrupted},
		{"interrupted before any row", nil, interrupted, exitInterrupted},
		{"interrupted with mismatch", bad, interrupted, exitMismatch},
		{"runtime failure", good, errors.New("boom"), exitError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, status(tc.rows, tc.err))
		})
	}
}
