// Package harness provides utilities for integration testing the inkan CLI.
// It handles binary compilation, environment isolation, and command execution.
//
// Environment variables managed:
//   - INKAN_HOME: Isolated per test (temp directory)
//   - INKAN_DEBUG: Disabled to reduce noise
//   - INKAN_PROMPT: Disabled so missing values fail instead of prompting
//   - GIT_EDITOR: Set to a no-op so commits never open an editor
package harness
