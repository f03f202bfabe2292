// Package actions adapts the tool to the CI platform it runs on.
//
// It covers the platform's logging primitives (GitHub workflow commands when
// running inside GitHub Actions, colored console output elsewhere), the
// environment variables the platform provides, and the conversion of a
// failed run into a single human-readable failure message.
package actions
