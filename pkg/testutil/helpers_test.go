package testutil

import (
	"testing"
)

func TestReferenceConfigurationIsValid(t *testing.T) {
	conf := ReferenceConfiguration()
	if err := conf.Validate(); err != nil {
		t.Errorf("ReferenceConfiguration() should validate, got error: %v", err)
	}
	if warnings := conf.ValidateConfiguration(); len(warnings) != 0 {
		t.Errorf("ReferenceConfiguration() should produce no warnings, got %v", warnings)
	}
}
