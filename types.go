package jsonvalue

// Severity expresses the severity level for enforcement findings.
type Severity int

const (
	Ignore Severity = iota
	Warn
	Error
)

// Strictness configures enforcement for duplicate object keys. The default
// (Ignore) keeps the wire-level last-write-wins behavior; Warn records an
// issue without failing; Error aborts the parse.
type Strictness struct {
	OnDuplicateKey Severity
}

// ParseOpt bundles parsing options.
type ParseOpt struct {
	Strictness Strictness
	// MaxDepth bounds container nesting. Zero means unlimited; set it when
	// parsing adversarial input.
	MaxDepth int
	// MaxBytes bounds consumed input bytes. Zero means unlimited.
	MaxBytes int64
	// FailFast aborts on the first enforcement finding even in Warn mode.
	FailFast bool
}

func lastOpt(opts []ParseOpt) ParseOpt {
	if len(opts) > 0 {
		return opts[len(opts)-1]
	}
	return ParseOpt{}
}
