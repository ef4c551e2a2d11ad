// Package provider contains the adapters around the external
// translation backends. Every adapter exposes the same contract:
// attempt once, never propagate an error, report the outcome as an
// explicit status the orchestrator can match on.
package provider

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

// Status classifies the outcome of a single adapter attempt.
type Status string

const (
	// StatusTranslated means the backend produced usable text.
	StatusTranslated Status = "translated"
	// StatusUnavailable means the adapter is not configured; no
	// outbound call was made and the attempt does not count as a
	// failure.
	StatusUnavailable Status = "unavailable"
	// StatusFailed means the backend was called and did not produce a
	// translation (network error, timeout, malformed or echoed
	// response). Final for the request; there are no retries.
	StatusFailed Status = "failed"
)

// Request carries one translation attempt's input. Display names are
// resolved by the caller so adapters can build prompts without a
// catalog dependency.
type Request struct {
	SourceCode string
	TargetCode string
	SourceName string
	TargetName string
	Text       string
}

// Attempt is the result of one adapter call. Failures travel as
// values, not errors, so the priority-fallback loop stays declarative.
type Attempt struct {
	Text   string
	Status Status
	Err    error // set only for StatusFailed, for observability
}

func Translated(text string) Attempt {
	return Attempt{Text: text, Status: StatusTranslated}
}

func Unavailable() Attempt {
	return Attempt{Status: StatusUnavailable}
}

func Failed(err error) Attempt {
	return Attempt{Status: StatusFailed, Err: err}
}

// Adapter wraps one external translation backend.
type Adapter interface {
	// Name identifies the backend in logs and persisted records.
	Name() string
	// Configured reports whether the required credential/endpoint is
	// present. Unconfigured adapters are skipped without an attempt.
	Configured() bool
	// Translate performs a single bounded attempt. It must never
	// panic or return past an error; every failure maps to an
	// Attempt with StatusFailed.
	Translate(ctx context.Context, req Request) Attempt
}

// Adapter name constants
const (
	AdapterOllama    = "ollama"
	AdapterOpenAI    = "openai"
	AdapterAnthropic = "anthropic"
	AdapterGoogle    = "google-translate"
)

// defaultTimeout bounds each adapter's outbound call.
const defaultTimeout = 15 * time.Second

// echoGuardMinLen is the minimum input length (in runes) at which an
// output byte-identical to the input is treated as a non-translation.
// Some backends echo the input on failure instead of erroring.
const echoGuardMinLen = 4

var (
	errEmptyResponse = errors.New("backend returned empty response")
	errEchoedInput   = errors.New("backend echoed input unchanged")
)

// finish validates backend output and maps it to an Attempt.
func finish(input, output string) Attempt {
	output = strings.TrimSpace(output)
	if output == "" {
		return Failed(errEmptyResponse)
	}
	if output == input && utf8.RuneCountInString(input) >= echoGuardMinLen {
		return Failed(errEchoedInput)
	}
	return Translated(output)
}
