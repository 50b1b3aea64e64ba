package main

import (
	"context"
	"errors"
	"log/slog"
	"strings"
)

// Relationship is the category a caller belongs to. The zero value,
// RelationshipUnknown, is used for anything not listed below.
type Relationship int

const (
	RelationshipUnknown Relationship = iota
	RelationshipFriend
	RelationshipFamily
	RelationshipProfessor
	RelationshipRecruiter
	RelationshipTeammate
	RelationshipWork
)

var relationshipNames = map[Relationship]string{
	RelationshipUnknown:   "unknown",
	RelationshipFriend:    "friend",
	RelationshipFamily:    "family",
	RelationshipProfessor: "professor",
	RelationshipRecruiter: "recruiter",
	RelationshipTeammate:  "teammate",
	RelationshipWork:      "work",
}

// ParseRelationship maps a stored relationship string to its category
func ParseRelationship(s string) Relationship {
	s = strings.ToLower(strings.TrimSpace(s))
	for r, name := range relationshipNames {
		if name == s {
			return r
		}
	}
	return RelationshipUnknown
}

func (r Relationship) String() string {
	if name, ok := relationshipNames[r]; ok {
		return name
	}
	return relationshipNames[RelationshipUnknown]
}

// Style is how the assistant should talk to a category of caller
type Style struct {
	Tone        string `json:"tone"`
	DetailLevel string `json:"detail_level"`
}

var styles = map[Relationship]Style{
	RelationshipFriend:    {Tone: "casual", DetailLevel: "low"},
	RelationshipFamily:    {Tone: "warm", DetailLevel: "medium"},
	RelationshipProfessor: {Tone: "formal", DetailLevel: "high"},
	RelationshipRecruiter: {Tone: "professional", DetailLevel: "high"},
	RelationshipTeammate:  {Tone: "professional", DetailLevel: "medium"},
	RelationshipWork:      {Tone: "professional", DetailLevel: "medium"},
	RelationshipUnknown:   {Tone: "polite", DetailLevel: "low"},
}

// Style returns the communication style for the category, falling back
// to the unknown-caller style.
func (r Relationship) Style() Style {
	if s, ok := styles[r]; ok {
		return s
	}
	return styles[RelationshipUnknown]
}

// StyleFor maps a relationship string straight to a style
func StyleFor(relationship string) Style {
	return ParseRelationship(relationship).Style()
}

// CallerResolver looks callers up in the profile store
type CallerResolver struct {
	store  Store
	logger *slog.Logger
}

// NewCallerResolver creates a resolver over the given store
func NewCallerResolver(store Store, logger *slog.Logger) *CallerResolver {
	return &CallerResolver{store: store, logger: logger.With("component", "resolver")}
}

// Resolve returns the caller's profile. It never fails: unknown numbers get
// the "Unknown Caller" profile and storage errors get a plainer "Caller" one
// so the call can always proceed.
func (c *CallerResolver) Resolve(ctx context.Context, phone string) CallerProfile {
	p, err := c.store.GetCallerProfile(ctx, phone)
	if errors.Is(err, ErrProfileNotFound) {
		c.logger.Info("new caller", "phone", phone)
		return unknownCaller(phone)
	}
	if err != nil {
		c.logger.Error("failed to get caller profile", "phone", phone, "err", err)
		return CallerProfile{
			PhoneNumber:  phone,
			Name:         "Caller",
			Relationship: RelationshipUnknown.String(),
			Tone:         "neutral",
		}
	}
	return *p
}

// unknownCaller is the profile returned for numbers with no stored contact
func unknownCaller(phone string) CallerProfile {
	return CallerProfile{
		PhoneNumber:  phone,
		Name:         "Unknown Caller",
		Relationship: RelationshipUnknown.String(),
		Tone:         "neutral",
	}
}
