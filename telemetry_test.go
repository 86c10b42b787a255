package enumkit

import (
	"testing"

	"github.com/gostdlib/base/context"

	"github.com/bearlytools/enumkit/errors"
)

func TestRecordParseFailure(t *testing.T) {
	canceled, cancel := context.WithCancel(context.Background())
	cancel()

	// The first failure may come from any context, the counter must not depend on it.
	recordParseFailure(canceled, "Permission", errors.TypeFormat)
	first := parseFailures
	if first == nil {
		t.Fatalf("TestRecordParseFailure: counter was not created")
	}

	recordParseFailure(context.Background(), "Level", errors.TypeNotDefined)
	if parseFailures != first {
		t.Errorf("TestRecordParseFailure: counter was rebuilt for a later context")
	}
}
