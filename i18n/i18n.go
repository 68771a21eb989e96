// Package i18n holds the message catalog for the menu and status text.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys
const (
	MenuTitleKey       = "Please enter your choice in pattern"
	MenuOptionKey      = "\tEnter %d for %s"
	MenuQuitKey        = "\tEnter 0 to quit"
	InvalidChoiceKey   = "%q is not a menu choice, enter a number from 0 to %d"
	StatusKey          = "%s | generation %d of %d | %d alive"
	RunInterruptedKey  = "Run of %s stopped after %d generations"
	RunSummaryKey      = "%s: %d generations, %d births, %d deaths, peak population %d"
	PatternPulsarKey   = "Pulsar"
	PatternGlidersKey  = "Gliders"
	PatternGunKey      = "Glider Cannon: Gosper's Glider Gun"
	PatternQueenBeeKey = "Queen Bee Shuttle"
)

var supportedTags = []language.Tag{
	language.English,
	language.MustParse("pt-BR"),
}

var tagMatcher = language.NewMatcher(supportedTags)

// Supported returns the list of supported language tags.
func Supported() []language.Tag {
	tags := make([]language.Tag, len(supportedTags))
	copy(tags, supportedTags)
	return tags
}

// Default returns the default language tag.
func Default() language.Tag {
	return language.English
}

// ResolveTag matches a user supplied language string against the catalog.
// The bool is false when the value could not be parsed and the default was
// used.
func ResolveTag(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return Default(), true
	}
	tag, err := language.Parse(value)
	if err != nil {
		return Default(), false
	}
	_, idx, conf := tagMatcher.Match(tag)
	if conf == language.No {
		return Default(), true
	}
	return supportedTags[idx], true
}

// Printer returns a message printer for the supplied tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}
