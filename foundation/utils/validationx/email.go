// File: email.go
// Title: Email Validators
// Description: Syntax, domain list and DNS validators for email addresses
//              and the chain that combines them according to EmailOptions.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Email format validator based on net/mail
// - 2026-10-15 v0.3.0: Local part and domain rules, domain lists, DNS step

package validationx

import (
	"context"
	"net"
	"net/mail"
	"regexp"
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/net/idna"

	mdwlog "github.com/msto63/stringy/foundation/core/log"
	"github.com/msto63/stringy/foundation/core/validation"
)

// DefaultDNSTimeout bounds a single DNS lookup of the email check
const DefaultDNSTimeout = 5 * time.Second

const (
	maxLocalPart = 64
	maxAddress   = 254
)

var reLabel = regexp.MustCompile(`^[a-z0-9](?:[a-z0-9-]{0,61}[a-z0-9])?$`)

var logger atomic.Pointer[mdwlog.Logger]

func init() {
	logger.Store(mdwlog.Discard().WithName("validationx"))
}

// SetLogger installs the logger used for DNS diagnostics
func SetLogger(l *mdwlog.Logger) {
	if l == nil {
		l = mdwlog.Discard()
	}
	logger.Store(l.WithName("validationx"))
}

// Resolver is the part of *net.Resolver the DNS step needs
type Resolver interface {
	LookupMX(ctx context.Context, name string) ([]*net.MX, error)
	LookupHost(ctx context.Context, host string) ([]string, error)
}

// EmailOptions switches the optional steps of the email check. The zero
// value checks syntax only.
type EmailOptions struct {
	ExampleDomainCheck   bool
	TypoInDomainCheck    bool
	TemporaryDomainCheck bool
	DNSCheck             bool

	// DNSTimeout defaults to DefaultDNSTimeout
	DNSTimeout time.Duration
	// Resolver defaults to net.DefaultResolver
	Resolver Resolver
}

// ===============================
// Chain
// ===============================

// EmailChain builds the validator chain for opts. The chain stops at the
// first failing step.
func EmailChain(opts EmailOptions) *validation.ValidatorChain {
	resolver := opts.Resolver
	if resolver == nil {
		resolver = net.DefaultResolver
	}
	timeout := opts.DNSTimeout
	if timeout <= 0 {
		timeout = DefaultDNSTimeout
	}

	return validation.NewValidatorChain("email").
		StopOnFirstError(true).
		Add(validation.Required("email")).
		Add(EmailSyntax).
		Add(validation.When(opts.ExampleDomainCheck, ExampleDomain, "exampleDomain")).
		Add(validation.When(opts.TypoInDomainCheck, TypoDomain, "typoDomain")).
		Add(validation.When(opts.TemporaryDomainCheck, TemporaryDomain, "temporaryDomain")).
		Add(validation.When(opts.DNSCheck, DNSDomain(resolver, timeout), "dns"))
}

// ValidateEmail runs the email chain and returns the detailed result
func ValidateEmail(ctx context.Context, email string, opts EmailOptions) validation.ValidationResult {
	return EmailChain(opts).ValidateWithContext(ctx, email)
}

// IsEmail reports whether email passes the checks selected by opts
func IsEmail(email string, opts EmailOptions) bool {
	return IsEmailContext(context.Background(), email, opts)
}

// IsEmailContext is IsEmail with a caller supplied context for the DNS step
func IsEmailContext(ctx context.Context, email string, opts EmailOptions) bool {
	return ValidateEmail(ctx, email, opts).Valid
}

// ===============================
// Syntax
// ===============================

// EmailSyntax validates the address format: a single addr-spec without
// display name, a local part of at most 64 octets without leading, trailing
// or doubled dots, and a domain that is either a bracketed IP literal or a
// host name of valid labels after IDNA conversion.
var EmailSyntax validation.ValidatorFunc = func(value interface{}) validation.ValidationResult {
	str, ok := validation.StringOf(value)
	if !ok {
		return validation.NewValidationError(validation.CodeType, "value must be a string")
	}

	local, domain, ok := splitAddress(str)
	if !ok || len(str) > maxAddress {
		return invalidEmail(str, "must be a valid email address")
	}
	if addr, err := mail.ParseAddress(str); err != nil || addr.Name != "" || addr.Address != str {
		return invalidEmail(str, "must be a valid email address")
	}
	if len(local) > maxLocalPart || strings.HasPrefix(local, ".") || strings.HasSuffix(local, ".") || strings.Contains(local, "..") {
		return invalidEmail(str, "local part is malformed")
	}
	if !validDomain(domain) {
		return invalidEmail(str, "domain is malformed")
	}

	return validation.NewValidationResult()
}

func invalidEmail(value, message string) validation.ValidationResult {
	result := validation.NewValidationErrorWithField(validation.CodeEmail, "email", message, value)
	result.Errors[0].Expected = "local@domain"
	return result
}

func splitAddress(s string) (local, domain string, ok bool) {
	at := strings.LastIndexByte(s, '@')
	if at <= 0 || at == len(s)-1 {
		return "", "", false
	}
	return s[:at], s[at+1:], true
}

func validDomain(domain string) bool {
	if strings.HasPrefix(domain, "[") && strings.HasSuffix(domain, "]") {
		literal := strings.TrimPrefix(domain[1:len(domain)-1], "IPv6:")
		return net.ParseIP(literal) != nil
	}

	ascii, err := idna.Lookup.ToASCII(domain)
	if err != nil {
		return false
	}
	labels := strings.Split(ascii, ".")
	if len(labels) < 2 {
		return false
	}
	for _, label := range labels {
		if !reLabel.MatchString(label) {
			return false
		}
	}
	tld := labels[len(labels)-1]
	return len(tld) >= 2 && strings.Trim(tld, "0123456789") != ""
}

// domainOf returns the lowercase ASCII domain of an address that passed
// EmailSyntax
func domainOf(value interface{}) string {
	str, _ := validation.StringOf(value)
	_, domain, _ := splitAddress(str)
	if ascii, err := idna.Lookup.ToASCII(domain); err == nil {
		domain = ascii
	}
	return strings.ToLower(domain)
}

// ===============================
// Domain Lists
// ===============================

// ExampleDomain rejects reserved example and test domains
var ExampleDomain validation.ValidatorFunc = func(value interface{}) validation.ValidationResult {
	domain := domainOf(value)
	if exampleDomains[domain] {
		return domainError(value, "uses a reserved example domain")
	}
	for _, suffix := range exampleSuffixes {
		if strings.HasSuffix(domain, suffix) {
			return domainError(value, "uses a reserved example domain")
		}
	}
	return validation.NewValidationResult()
}

// TypoDomain rejects common misspellings of large mail providers and of
// top level domains
var TypoDomain validation.ValidatorFunc = func(value interface{}) validation.ValidationResult {
	domain := domainOf(value)
	if typoDomains[domain] {
		return domainError(value, "domain looks like a typo")
	}
	if i := strings.LastIndexByte(domain, '.'); i >= 0 && typoTLDs[domain[i+1:]] {
		return domainError(value, "top level domain looks like a typo")
	}
	return validation.NewValidationResult()
}

// TemporaryDomain rejects disposable mail services, including their subdomains
var TemporaryDomain validation.ValidatorFunc = func(value interface{}) validation.ValidationResult {
	domain := domainOf(value)
	for d := domain; d != ""; {
		if temporaryDomains[d] {
			return domainError(value, "uses a disposable mail service")
		}
		_, rest, found := strings.Cut(d, ".")
		if !found {
			break
		}
		d = rest
	}
	return validation.NewValidationResult()
}

func domainError(value interface{}, message string) validation.ValidationResult {
	return validation.NewValidationErrorWithField(validation.CodeEmailDomain, "email", message, value)
}

// ===============================
// DNS
// ===============================

// DNSDomain returns a validator that requires the domain to have an MX
// record, or an address record when no MX exists. Each lookup is bounded
// by timeout.
func DNSDomain(resolver Resolver, timeout time.Duration) validation.Validator {
	return validation.ContextValidatorFunc(func(ctx context.Context, value interface{}) validation.ValidationResult {
		domain := domainOf(value)
		if strings.HasPrefix(domain, "[") {
			return validation.NewValidationResult()
		}

		lookupCtx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		mx, err := resolver.LookupMX(lookupCtx, domain)
		if err == nil && len(mx) > 0 {
			return validation.NewValidationResult()
		}
		if err != nil {
			logger.Load().Debug("MX lookup failed", mdwlog.Fields{"domain": domain, "error": err})
		}

		hosts, err := resolver.LookupHost(lookupCtx, domain)
		if err == nil && len(hosts) > 0 {
			return validation.NewValidationResult()
		}
		if err != nil {
			logger.Load().Debug("host lookup failed", mdwlog.Fields{"domain": domain, "error": err})
		}

		return validation.NewValidationErrorWithField(validation.CodeEmailDNS, "email", "domain has no mail host", value)
	})
}
