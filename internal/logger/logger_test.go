package logger

import "testing"

func TestNewLogrus(t *testing.T) {
	log := NewLogrus()
	if log == nil {
		t.Fatal("NewLogrus returned nil")
	}

	// Chained field loggers must be independent instances.
	child := log.WithField("component", "collector")
	if child == log {
		t.Error("WithField returned the same logger")
	}

	grandchild := child.WithFields(map[string]interface{}{"root": "."})
	if grandchild == nil {
		t.Fatal("WithFields returned nil")
	}
}

func TestNewLogrusWithLevel_FallsBackToInfo(t *testing.T) {
	log := NewLogrusWithLevel("not-a-level")
	if log == nil {
		t.Fatal("NewLogrusWithLevel returned nil")
	}
	log.Info("level fallback works")
}
