// File: domains.go
// Title: Email Domain Lists
// Description: Reserved example domains, common misspellings of large mail
//              providers and disposable mail services.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package validationx

// RFC 2606 and RFC 6761 names
var exampleDomains = map[string]bool{
	"example.com": true,
	"example.net": true,
	"example.org": true,
	"example.edu": true,
	"example":     true,
	"test":        true,
	"invalid":     true,
	"localhost":   true,
}

var exampleSuffixes = []string{".example", ".test", ".invalid", ".localhost"}

var typoDomains = map[string]bool{
	"gmial.com": true, "gmai.com": true, "gamil.com": true, "gmaill.com": true,
	"gnail.com": true, "gmal.com": true, "gmail.co": true, "gmail.cm": true,
	"googlemail.co": true,
	"hotmial.com": true, "hotmal.com": true, "hotmai.com": true, "hotnail.com": true,
	"hotmail.co": true, "homail.com": true,
	"yaho.com": true, "yahooo.com": true, "yhoo.com": true, "yahoo.co": true,
	"outlok.com": true, "outloo.com": true, "outlook.co": true,
	"iclod.com": true, "icloud.co": true,
	"gmx.ne": true, "gmx.dee": true, "web.dee": true, "t-online.dee": true,
}

// misspelled top level domains
var typoTLDs = map[string]bool{
	"con": true, "cmo": true, "ocm": true, "vom": true, "xom": true, "comm": true,
	"nte": true, "ent": true, "nett": true,
	"ogr": true, "rog": true, "orgg": true,
	"dee": true, "ed": true,
}

var temporaryDomains = map[string]bool{
	"10minutemail.com":  true,
	"burnermail.io":     true,
	"discard.email":     true,
	"dispostable.com":   true,
	"emailondeck.com":   true,
	"fakeinbox.com":     true,
	"getnada.com":       true,
	"guerrillamail.com": true,
	"guerrillamail.net": true,
	"mailinator.com":    true,
	"maildrop.cc":       true,
	"mailnesia.com":     true,
	"mintemail.com":     true,
	"mohmal.com":        true,
	"sharklasers.com":   true,
	"spamgourmet.com":   true,
	"temp-mail.org":     true,
	"tempmail.com":      true,
	"tempr.email":       true,
	"throwawaymail.com": true,
	"trashmail.com":     true,
	"yopmail.com":       true,
	"trash-mail.com":    true,
	"wegwerfemail.de":   true,
	"spambog.com":       true,
	"einrot.com":        true,
	"mailcatch.com":     true,
	"mytemp.email":      true,
	"tempinbox.com":     true,
	"jetable.org":       true,
}
