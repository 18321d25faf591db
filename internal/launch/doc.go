// SPDX-License-Identifier: MPL-2.0

// Package launch runs the startup sequence: activate a located virtual
// environment, install the declared dependencies, and start the application
// as a child process, propagating its exit status.
//
// The sequence is strictly linear and one-shot — there is no supervision, no
// retry, and no timeout. The child inherits standard input/output/error so
// the launcher is a transparent passthrough.
package launch
