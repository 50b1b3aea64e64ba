package main

import (
	"context"
	"testing"
)

func TestParseRelationship(t *testing.T) {
	cases := map[string]Relationship{
		"friend":     RelationshipFriend,
		" Family ":   RelationshipFamily,
		"PROFESSOR":  RelationshipProfessor,
		"recruiter":  RelationshipRecruiter,
		"teammate":   RelationshipTeammate,
		"work":       RelationshipWork,
		"unknown":    RelationshipUnknown,
		"":           RelationshipUnknown,
		"landlord":   RelationshipUnknown,
		"best-buddy": RelationshipUnknown,
	}
	for in, want := range cases {
		if got := ParseRelationship(in); got != want {
			t.Fatalf("ParseRelationship(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestStyleFor(t *testing.T) {
	cases := []struct {
		relationship string
		tone         string
		detail       string
	}{
		{"friend", "casual", "low"},
		{"family", "warm", "medium"},
		{"professor", "formal", "high"},
		{"recruiter", "professional", "high"},
		{"teammate", "professional", "medium"},
		{"work", "professional", "medium"},
		{"unknown", "polite", "low"},
		{"someone else", "polite", "low"},
	}
	for _, tc := range cases {
		s := StyleFor(tc.relationship)
		if s.Tone != tc.tone || s.DetailLevel != tc.detail {
			t.Fatalf("StyleFor(%q) = %+v, want %s/%s", tc.relationship, s, tc.tone, tc.detail)
		}
	}

	if got := Relationship(99).Style(); got != RelationshipUnknown.Style() {
		t.Fatalf("out of range relationship should use the unknown style, got %+v", got)
	}
	if got := Relationship(99).String(); got != "unknown" {
		t.Fatalf("out of range relationship should print unknown, got %q", got)
	}
}

func TestResolveUnknownCaller(t *testing.T) {
	resolver := NewCallerResolver(newTestDB(t), discardLogger())

	got := resolver.Resolve(context.Background(), "+15559990000")
	want := CallerProfile{PhoneNumber: "+15559990000", Name: "Unknown Caller", Relationship: "unknown", Tone: "neutral"}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestResolveKnownCaller(t *testing.T) {
	db := newTestDB(t)
	ana := CallerProfile{PhoneNumber: "+1555", Name: "Ana", Relationship: "friend", Tone: "casual", Topics: "travel"}
	if err := db.UpsertCallerProfile(context.Background(), ana); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	got := NewCallerResolver(db, discardLogger()).Resolve(context.Background(), "+1555")
	if got != ana {
		t.Fatalf("expected %+v, got %+v", ana, got)
	}
}

func TestResolveStorageFailure(t *testing.T) {
	store := &failingStore{Store: newTestDB(t), failProfile: true}

	got := NewCallerResolver(store, discardLogger()).Resolve(context.Background(), "+1555")
	if got.Name != "Caller" || got.Relationship != "unknown" || got.Tone != "neutral" {
		t.Fatalf("unexpected fallback profile: %+v", got)
	}
}
