// SPDX-License-Identifier: MPL-2.0

// pylot is a one-shot launcher for Python applications: it locates a virtual
// environment, activates it, installs declared dependencies, and starts the
// application, exiting with the application's own exit code.
package main

func main() {
	Execute()
}
