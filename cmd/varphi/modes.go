package main

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

type triMode string

const (
	modeAuto triMode = "auto"
	modeOn   triMode = "on"
	modeOff  triMode = "off"
)

func readTriMode(flag, value string) (triMode, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return modeAuto, nil
	case "on":
		return modeOn, nil
	case "off":
		return modeOff, nil
	default:
		return "", fmt.Errorf("invalid %s value %q (expected auto|on|off)", flag, value)
	}
}

func readColorMode(value string) (triMode, error) { return readTriMode("color", value) }

func readUIMode(value string) (triMode, error) { return readTriMode("--ui", value) }

// enabledFor resolves auto against whether f is a terminal.
func (m triMode) enabledFor(f *os.File) bool {
	switch m {
	case modeOn:
		return true
	case modeOff:
		return false
	default:
		return isTerminal(f)
	}
}

type diagFormat string

const (
	formatPretty diagFormat = "pretty"
	formatShort  diagFormat = "short"
	formatJSON   diagFormat = "json"
)

func readDiagFormat(value string) (diagFormat, error) {
	switch f := diagFormat(strings.ToLower(strings.TrimSpace(value))); f {
	case formatPretty, formatShort, formatJSON:
		return f, nil
	case "":
		return formatPretty, nil
	default:
		return "", fmt.Errorf("unknown format %q (expected pretty|short|json)", value)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
