package main

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/alexanderramin/launchweek/internal/viewstate"
	"github.com/stretchr/testify/assert"
)

func TestReportError(t *testing.T) {
	var buf bytes.Buffer
	reportError(&buf, fmt.Errorf("%w: %q", viewstate.ErrInvalidSelection, "festivo"))

	assert.Equal(t, "Error: invalid selection: \"festivo\"\n", buf.String())
}
