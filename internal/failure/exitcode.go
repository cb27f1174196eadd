package failure

// ExitCode is a canonical process exit code. Scripts depend on these values.
type ExitCode int

const (
	ExitSuccess    ExitCode = 0
	ExitValidation ExitCode = 2
	ExitDomain     ExitCode = 3
	ExitRuntime    ExitCode = 4
)

// ExitCodeFor maps a failure to its exit code. A nil error is success.
// Only validation and domain-rule failures get distinct codes.
func ExitCodeFor(err error) ExitCode {
	if err == nil {
		return ExitSuccess
	}
	return ExitCodeForKind(KindOf(err))
}

// ExitCodeForKind is total over Kind.
func ExitCodeForKind(k Kind) ExitCode {
	switch k {
	case KindValidation:
		return ExitValidation
	case KindDomainRule:
		return ExitDomain
	default:
		return ExitRuntime
	}
}
