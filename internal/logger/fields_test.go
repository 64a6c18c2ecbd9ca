package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestStringFields(t *testing.T) {
	fields := StringFields(
		StringField{Key: "  file  ", Value: "  alice.json  "},
		StringField{Key: "ignored", Value: "   "},
		StringField{Key: "   ", Value: "empty key"},
	)

	if len(fields) != 1 {
		t.Fatalf("expected 1 field, got %d", len(fields))
	}

	if fields[0].Key != "file" || fields[0].String != "alice.json" {
		t.Fatalf("unexpected file field: %+v", fields[0])
	}

	empty := StringFields()
	if len(empty) != 0 {
		t.Fatalf("expected empty fields, got %d", len(empty))
	}
}

func TestWithFields(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	enriched := WithFields(logger, zap.String("foo", "bar"))
	enriched.Info("test log")

	entries := observed.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	ctx := entries[0].ContextMap()
	if ctx["foo"] != "bar" {
		t.Fatalf("expected field to be bar, got %q", ctx["foo"])
	}

	enriched = WithFields(nil, zap.String("baz", "qux"))
	if enriched == nil {
		t.Fatalf("expected fallback logger when nil provided")
	}

	// Ensure logging with the fallback logger does not panic.
	enriched.Info("another log")
}

func TestRunFields(t *testing.T) {
	fields := RunFields("run-1", " questions.json ", "")
	if len(fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(fields))
	}

	if fields[0].Key != FieldRunID || fields[0].String != "run-1" {
		t.Fatalf("unexpected run id field: %+v", fields[0])
	}

	if fields[1].Key != FieldQuestionList || fields[1].String != "questions.json" {
		t.Fatalf("unexpected question list field: %+v", fields[1])
	}

	if empty := RunFields("", "", ""); len(empty) != 0 {
		t.Fatalf("expected empty fields, got %d", len(empty))
	}
}

func TestWithRunFields(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)

	enriched := WithRunFields(zap.New(core), "run-2", "questions.json", "applications")
	enriched.Info("test log")

	entries := observed.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	ctx := entries[0].ContextMap()
	if ctx[FieldRunID] != "run-2" {
		t.Fatalf("expected run id run-2, got %q", ctx[FieldRunID])
	}

	if ctx[FieldApplicationsDir] != "applications" {
		t.Fatalf("expected applications dir field, got %q", ctx[FieldApplicationsDir])
	}

	enriched = WithRunFields(nil, "run-2", "", "")
	if enriched == nil {
		t.Fatalf("expected fallback logger when nil provided")
	}

	enriched.Info("another log")
}
