// Copyright (c) 2025 Gatepass
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package httperrors provides user-friendly error handling for HTTP requests.
package httperrors

import (
	"errors"
	"fmt"
	"net"
	"strings"
	"syscall"

	"github.com/pterm/pterm"
)

// FormatNetworkError converts technical HTTP/network errors into
// user-friendly messages. It detects common failure modes (timeout, DNS,
// connection refused, TLS, server errors) and prints troubleshooting
// hints before returning a wrapped error for logging.
func FormatNetworkError(err error, context string) error {
	if err == nil {
		return nil
	}

	displayErrorMessage(err, context)

	return fmt.Errorf("network error: %w", err)
}

// displayErrorMessage shows a formatted message based on the error type.
func displayErrorMessage(err error, context string) {
	errStr := err.Error()

	switch {
	case isTimeoutError(err):
		showTimeoutError(context)
	case isDNSError(err):
		showDNSError(context)
	case isConnectionRefusedError(err):
		showConnectionRefusedError(context)
	case isTLSError(err):
		showTLSError(context)
	case isServerError(errStr):
		showServerError(context, errStr)
	default:
		showGenericError(context, errStr)
	}
}

// isTimeoutError checks if the error is a timeout.
func isTimeoutError(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "timeout") ||
		strings.Contains(errStr, "deadline exceeded")
}

// isDNSError checks if the error is a DNS resolution failure.
func isDNSError(err error) bool {
	var dnsErr *net.DNSError
	return errors.As(err, &dnsErr)
}

// isConnectionRefusedError checks if the connection was refused.
func isConnectionRefusedError(err error) bool {
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return errors.Is(opErr.Err, syscall.ECONNREFUSED)
	}
	return strings.Contains(strings.ToLower(err.Error()), "connection refused")
}

// isTLSError checks if the error comes from the TLS handshake.
func isTLSError(err error) bool {
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "tls") ||
		strings.Contains(errStr, "certificate") ||
		strings.Contains(errStr, "handshake")
}

// isServerError checks if the error indicates a server-side problem.
func isServerError(errStr string) bool {
	lower := strings.ToLower(errStr)
	return strings.Contains(lower, "500") ||
		strings.Contains(lower, "502") ||
		strings.Contains(lower, "503") ||
		strings.Contains(lower, "504") ||
		strings.Contains(lower, "internal server error") ||
		strings.Contains(lower, "bad gateway") ||
		strings.Contains(lower, "service unavailable") ||
		strings.Contains(lower, "gateway timeout")
}

func showTimeoutError(context string) {
	pterm.Printf("⏱️  Connection timeout while %s\n", context)
	pterm.Println()
	pterm.Println("The auth service took too long to respond. This could mean:")
	pterm.Println("  • Slow internet connection")
	pterm.Println("  • Server is under heavy load")
	pterm.Println("  • Network firewall is blocking the connection")
	pterm.Println()
	pterm.Println("Please try again in a few moments.")
	pterm.Println()
}

func showDNSError(context string) {
	pterm.Printf("🌐 Cannot resolve server address while %s\n", context)
	pterm.Println()
	pterm.Println("Unable to look up the auth service host. Please check:")
	pterm.Println("  • Your internet connection is working")
	pterm.Println("  • The configured base URL (gatepass config, GATEPASS_BASE_URL)")
	pterm.Println("  • No DNS-level blocking (corporate firewall, parental controls)")
	pterm.Println()
}

func showConnectionRefusedError(context string) {
	pterm.Printf("🚫 Connection refused while %s\n", context)
	pterm.Println()
	pterm.Println("The auth service is not accepting connections. This could mean:")
	pterm.Println("  • The service is temporarily down")
	pterm.Println("  • Firewall is blocking the connection")
	pterm.Println("  • Wrong base URL or port")
	pterm.Println()
	pterm.Println("Please try again later or contact support.")
	pterm.Println()
}

func showTLSError(context string) {
	pterm.Printf("🔒 Secure connection failed while %s\n", context)
	pterm.Println()
	pterm.Println("The TLS handshake with the auth service failed. Please check:")
	pterm.Println("  • Your system clock is correct")
	pterm.Println("  • No TLS-intercepting proxy is rewriting certificates")
	pterm.Println()
}

func showServerError(context, errStr string) {
	pterm.Printf("⚠️  Server error while %s\n", context)
	pterm.Println()
	pterm.Println("The auth service reported an internal problem.")
	pterm.Println("This is usually temporary; please try again shortly.")
	pterm.Println()
}

func showGenericError(context, errStr string) {
	pterm.Printf("❌ Network error while %s\n", context)
	pterm.Println()
	pterm.Printf("Details: %s\n", errStr)
	pterm.Println()
}
