package failure

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitCodeFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ExitCode
	}{
		{"nil is success", nil, ExitSuccess},
		{"validation", Validation("bad input"), ExitValidation},
		{"domain rule", DomainRule("rule failed"), ExitDomain},
		{"config", Config("bad config"), ExitRuntime},
		{"output", Output("render failed"), ExitRuntime},
		{"base", New("base"), ExitRuntime},
		{"unclassified", errors.New("boom"), ExitRuntime},
		{"wrapped validation", fmt.Errorf("parse: %w", Validation("bad")), ExitValidation},
		{"wrapped domain", fmt.Errorf("plan: %w", DomainRule("rule")), ExitDomain},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCodeFor(tt.err))
		})
	}
}

func TestExitCodeValues(t *testing.T) {
	assert.Equal(t, 0, int(ExitSuccess))
	assert.Equal(t, 2, int(ExitValidation))
	assert.Equal(t, 3, int(ExitDomain))
	assert.Equal(t, 4, int(ExitRuntime))
}

func TestExitCodeForKindIsTotal(t *testing.T) {
	for k := range kindNames {
		code := ExitCodeForKind(k)
		assert.Contains(t, []ExitCode{ExitValidation, ExitDomain, ExitRuntime}, code, "kind %s", k)
	}
	assert.Equal(t, ExitRuntime, ExitCodeForKind(Kind(99)))
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindUnclassified, KindOf(errors.New("x")))
	assert.Equal(t, KindConfig, KindOf(Config("x")))
	assert.Equal(t, KindOutput, KindOf(fmt.Errorf("write: %w", Output("x"))))

	// Outermost controlled failure wins.
	inner := Config("missing file")
	outer := Wrap(KindDomainRule, inner, "rule check")
	assert.Equal(t, KindDomainRule, KindOf(outer))
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "simulated validation failure", Validation("simulated validation failure").Error())
	assert.Equal(t, "field: bad", Validationf("%s: %s", "field", "bad").Error())

	cause := errors.New("permission denied")
	w := Wrap(KindOutput, cause, "write output")
	assert.Equal(t, "write output: permission denied", w.Error())
	assert.ErrorIs(t, w, cause)
	assert.Equal(t, "config", KindConfig.String())
	assert.Equal(t, "kind(42)", Kind(42).String())
}

func TestErrorIsMatchesKind(t *testing.T) {
	err := fmt.Errorf("load: %w", Config("bad level"))
	assert.True(t, errors.Is(err, &Error{Kind: KindConfig}))
	assert.False(t, errors.Is(err, &Error{Kind: KindOutput}))
}
