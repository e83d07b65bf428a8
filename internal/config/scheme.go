package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/riskibarqy/sunday-dashboard/internal/domain/lineup"
	"github.com/riskibarqy/sunday-dashboard/internal/domain/player"
)

type schemeFile struct {
	Order      []string `yaml:"order"`
	Flex       string   `yaml:"flex"`
	DoubleSlot []string `yaml:"double_slot"`
}

// LoadLineupScheme builds the ranking scheme. A scheme file wins over the CSV variables;
// with neither set the default scheme is returned.
func LoadLineupScheme(path, orderCSV, doubleSlotCSV string) (lineup.Scheme, error) {
	path = strings.TrimSpace(path)
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return lineup.Scheme{}, fmt.Errorf("read LINEUP_SCHEME_FILE: %w", err)
		}
		return parseSchemeYAML(raw)
	}

	defaults := lineup.DefaultScheme()
	order := defaults.Order
	if items := splitCSV(orderCSV); len(items) > 0 {
		order = toPositions(items)
	}

	var doubles []player.Position
	if items := splitCSV(doubleSlotCSV); len(items) > 0 {
		doubles = toPositions(items)
	} else {
		for pos := range defaults.DoubleSlot {
			doubles = append(doubles, pos)
		}
	}

	scheme, err := lineup.NewScheme(order, defaults.Flex, doubles)
	if err != nil {
		return lineup.Scheme{}, fmt.Errorf("parse LINEUP_SCHEME: %w", err)
	}
	return scheme, nil
}

func parseSchemeYAML(raw []byte) (lineup.Scheme, error) {
	var doc schemeFile
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return lineup.Scheme{}, fmt.Errorf("parse LINEUP_SCHEME_FILE: %w", err)
	}

	flex := player.Position(doc.Flex)
	if strings.TrimSpace(doc.Flex) == "" {
		flex = player.PositionFlex
	}

	scheme, err := lineup.NewScheme(toPositions(doc.Order), flex, toPositions(doc.DoubleSlot))
	if err != nil {
		return lineup.Scheme{}, fmt.Errorf("parse LINEUP_SCHEME_FILE: %w", err)
	}
	return scheme, nil
}

func toPositions(items []string) []player.Position {
	out := make([]player.Position, 0, len(items))
	for _, item := range items {
		out = append(out, player.ParsePosition(item))
	}
	return out
}
