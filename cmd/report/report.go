// Package report renders scan results.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/farzaaaan/dupnames/cmd/models"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var ErrUnknownFormat = errors.New("unknown output format")

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "", "txt":
		return FormatText, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Write renders rep to w in the given format.
func Write(w io.Writer, format Format, rep models.Report) error {
	if rep.Groups == nil {
		rep.Groups = []models.Group{}
	}
	switch format {
	case FormatText:
		return writeText(w, rep)
	case FormatJSON:
		data, err := json.MarshalIndent(rep, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rep); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func writeText(w io.Writer, rep models.Report) error {
	if len(rep.Groups) == 0 {
		_, err := fmt.Fprintln(w, "No duplicate files found.")
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d sets of duplicate files:\n", len(rep.Groups))
	for _, g := range rep.Groups {
		fmt.Fprintf(&b, "File: %s\n", g.Name)
		for _, p := range g.Paths {
			fmt.Fprintf(&b, "  - %s\n", p)
		}
		b.WriteString("\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}
